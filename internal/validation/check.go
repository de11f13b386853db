package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
// - Define a request struct with validator tags (`validate:"required,email"`)
// - Implement Validate() error that runs validation.Struct(req)
// - Return validator.ValidationErrors, CustomValidationErrors, or both joined with errors.Join
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
// This is used for validation errors that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
	Value   any
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// validate is shared by every payload. *validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names ("start_date") instead of Go names ("StartDate").
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Struct validates s against its `validate` tags using the shared validator.
func Struct(s any) error {
	return validate.Struct(s)
}

// Check runs v.Validate() and converts the outcome into findings.
//
// A non-nil error is returned only when Validate fails for a reason that is
// not a validation finding (e.g. validator.InvalidValidationError).
func Check(v Validatable) (Findings, error) {
	return Collect(v.Validate())
}

// Collect converts a validation error into ordered findings.
//
// Supported inputs:
//   - validator.ValidationErrors (struct tag failures)
//   - CustomValidationErrors (hand-written rules)
//   - any error wrapping several of the above (errors.Join)
func Collect(err error) (Findings, error) {
	if err == nil {
		return nil, nil
	}

	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		var findings Findings
		for _, e := range multi.Unwrap() {
			more, err := Collect(e)
			if err != nil {
				return nil, err
			}
			findings = append(findings, more...)
		}
		return findings, nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		findings := make(Findings, 0, len(validationErrors))
		for _, fe := range validationErrors {
			findings = append(findings, Finding{
				Field:   fieldPath(fe),
				Message: messageFor(fe),
				Value:   rejectedValue(fe.Value()),
			})
		}
		return findings, nil
	}

	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		findings := make(Findings, 0, len(customErrors))
		for _, ce := range customErrors {
			findings = append(findings, Finding{
				Field:   ce.Field,
				Message: ce.Message,
				Value:   rejectedValue(ce.Value),
			})
		}
		return findings, nil
	}

	return nil, fmt.Errorf("validation: unsupported error: %w", err)
}

// TypeMismatch turns a JSON decoding type error into a finding, so that
// {"travelers": "two"} is reported like any other invalid field.
func TypeMismatch(err *json.UnmarshalTypeError) Finding {
	var msg string
	switch err.Type.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		msg = "must be a number"
	case reflect.Bool:
		msg = "must be a boolean"
	case reflect.String:
		msg = "must be a string"
	case reflect.Slice, reflect.Array:
		msg = "must be a list"
	case reflect.Map, reflect.Struct:
		msg = "must be an object"
	default:
		msg = "has an invalid type"
	}

	return Finding{
		Field:   err.Field,
		Message: msg,
	}
}

// fieldPath drops the root struct name from the namespace:
// "TripPlanRequest.start_date" -> "start_date".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// messageFor converts a validator.FieldError into a user-friendly message.
func messageFor(err validator.FieldError) string {
	switch err.Tag() {
	case "required", "required_with", "required_without":
		return "is required"

	case "min":
		// min tag means:
		// - for strings: minimum length
		// - for numbers: minimum value
		if err.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", err.Param())
		}
		return fmt.Sprintf("must be at least %s", err.Param())

	case "max":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", err.Param())
		}
		return fmt.Sprintf("must not exceed %s", err.Param())

	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", err.Param())

	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", err.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())

	case "email":
		return "must be a valid email address"

	case "e164":
		return "must be a valid phone number with country code"

	case "uuid", "uuid4":
		return "must be a valid UUID"

	case "datetime":
		if err.Param() == "2006-01-02" {
			return "must be a date in YYYY-MM-DD format"
		}
		return fmt.Sprintf("must match the format %s", err.Param())

	case "iso4217":
		return "must be a valid ISO 4217 currency code"

	case "url", "http_url":
		return "must be a valid URL"

	case "dive":
		// dive is used when validating slices/arrays and one of the nested items fails.
		return "some items are invalid"

	default:
		// Fallback for tags not explicitly handled above.
		if err.Param() != "" {
			return fmt.Sprintf("failed %s:%s", err.Tag(), err.Param())
		}
		return fmt.Sprintf("failed %s", err.Tag())
	}
}

// rejectedValue normalizes nil pointers/maps/slices to an untyped nil so the
// "value" key is omitted from JSON instead of rendering as null.
func rejectedValue(v any) any {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return nil
		}
	}

	return v
}
