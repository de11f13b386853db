// Package gate decides whether a request may reach business logic.
//
// A gate looks at the validation findings collected for a request by an
// upstream validation stage and returns an explicit Decision:
//   - Forward: no findings, the next handler in the chain should run.
//   - Rejected: one or more findings, the request ends here with a
//     400 response whose body is {"errors": [...]}.
//
// The package knows nothing about HTTP frameworks. The Echo adapter lives in
// the middleware package and dispatches on the Decision.
package gate

import (
	"fmt"
	"net/http"
)

// ErrorsKey is the top-level key of a rejection body.
const ErrorsKey = "errors"

// Findings is the capability the gate needs from a validation result.
//
// D is the descriptor type. Its shape belongs to whichever validator
// produced it; the gate only copies descriptors into the response.
type Findings[D any] interface {
	IsEmpty() bool
	Array() []D
}

// Body is the JSON body of a rejection.
type Body[D any] struct {
	Errors []D `json:"errors"`
}

// Response is what the surrounding framework must write for a rejected request.
type Response[D any] struct {
	Status int
	Body   Body[D]
}

// Failure is the error class behind every rejection.
//
// It is not a fault: invalid input is an expected outcome, it is never
// retried, and the findings it carries are returned to the caller verbatim.
type Failure[D any] struct {
	Findings []D
}

func (f *Failure[D]) Error() string {
	return fmt.Sprintf("validation failed: %d finding(s)", len(f.Findings))
}

// Decision is the terminal state of a gate check.
//
// The zero value is a Forward decision.
type Decision[D any] struct {
	rejected bool
	findings []D
}

// Forwarded reports whether the pipeline should continue.
func (d Decision[D]) Forwarded() bool {
	return !d.rejected
}

// Rejected reports whether the pipeline must stop with Response().
func (d Decision[D]) Rejected() bool {
	return d.rejected
}

// Response returns the 400 response of a rejected decision.
// ok is false for forwarded decisions, which write nothing.
func (d Decision[D]) Response() (resp Response[D], ok bool) {
	if !d.rejected {
		return Response[D]{}, false
	}

	errors := make([]D, len(d.findings))
	copy(errors, d.findings)

	return Response[D]{
		Status: http.StatusBadRequest,
		Body:   Body[D]{Errors: errors},
	}, true
}

// Err returns a *Failure for rejected decisions and nil otherwise.
func (d Decision[D]) Err() error {
	if !d.rejected {
		return nil
	}
	return &Failure[D]{Findings: d.findings}
}

// Check decides on a set of findings.
//
// It only reads findings. A nil Findings is treated as empty, so a route
// mounted without a validation stage is simply forwarded.
func Check[D any](findings Findings[D]) Decision[D] {
	if findings == nil || findings.IsEmpty() {
		return Decision[D]{}
	}

	return Decision[D]{
		rejected: true,
		findings: findings.Array(),
	}
}
