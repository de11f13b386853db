package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/vamoose/internal/errs"
	"github.com/deppfellow/vamoose/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"
)

// Validate is the validation stage placed in front of the gate.
//
// For every request it allocates a fresh *T, binds the request into it and,
// if *T implements validation.Validatable, validates it. The payload and
// the findings are attached to the context and the chain always continues:
// deciding what findings mean is the gate's job.
//
// Bodies that can't be read at all (malformed JSON, wrong content type) are
// not findings; they are returned as errors for the global error handler.
func Validate[T any]() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			payload := new(T)
			findings, err := bindAndCheck(c, payload)
			if err != nil {
				return err
			}

			duration := time.Since(start)

			validation.SetPayload(c, payload)
			validation.Attach(c, findings)

			GetLogger(c).Debug().
				Dur("validation_duration", duration).
				Int("findings", len(findings)).
				Msg("request validated")

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				txn.AddAttribute("validation.duration_ms", duration.Milliseconds())
				txn.AddAttribute("validation.findings", len(findings))
			}

			return next(c)
		}
	}
}

func bindAndCheck(c echo.Context, payload any) (validation.Findings, error) {
	if err := c.Bind(payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return validation.Findings{validation.TypeMismatch(typeErr)}, nil
		}

		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) && echoErr.Code == http.StatusBadRequest {
			detail := http.StatusText(http.StatusBadRequest)
			if msg, ok := echoErr.Message.(string); ok {
				detail = msg
			}
			return nil, errs.NewBadRequestError(
				"Request body could not be parsed",
				true,
				nil,
				[]errs.FieldError{{Field: "body", Error: detail}},
				nil,
			)
		}

		return nil, err
	}

	v, ok := payload.(validation.Validatable)
	if !ok {
		return nil, nil
	}

	findings, err := validation.Check(v)
	if err != nil {
		return nil, fmt.Errorf("validating %T: %w", payload, err)
	}

	return findings, nil
}
