package validation

// Finding describes one reason why submitted input was rejected.
//
// Example:
//
//	{ "field": "email", "message": "must be a valid email address", "value": "nope" }
type Finding struct {
	// Field is the JSON name (or dotted path) of the offending input.
	Field string `json:"field"`

	// Message is the human-readable reason.
	Message string `json:"message"`

	// Value is the rejected value, when one was supplied.
	Value any `json:"value,omitempty"`
}

// Findings is the ordered result of validating one request.
//
// An empty Findings means the request is valid.
type Findings []Finding

// IsEmpty reports whether validation produced no findings.
func (f Findings) IsEmpty() bool {
	return len(f) == 0
}

// Array returns the findings in order.
//
// The returned slice is a copy, so callers can't reorder or edit the
// findings attached to a request.
func (f Findings) Array() []Finding {
	out := make([]Finding, len(f))
	copy(out, f)
	return out
}
