package validation

import "github.com/labstack/echo/v4"

const (
	// FindingsKey stores the Findings of the current request in Echo context.
	FindingsKey = "validation_findings"

	// PayloadKey stores the bound request payload in Echo context.
	PayloadKey = "validation_payload"
)

// Attach stores findings on the request. A later Attach replaces them.
func Attach(c echo.Context, findings Findings) {
	c.Set(FindingsKey, findings)
}

// FindingsFrom returns the findings attached to the request.
//
// It returns an empty Findings when no validation stage ran.
func FindingsFrom(c echo.Context) Findings {
	if findings, ok := c.Get(FindingsKey).(Findings); ok {
		return findings
	}
	return nil
}

// SetPayload stores the bound payload on the request.
func SetPayload(c echo.Context, payload any) {
	c.Set(PayloadKey, payload)
}

// PayloadFrom returns the payload bound by the validation stage as *T.
func PayloadFrom[T any](c echo.Context) (*T, bool) {
	payload, ok := c.Get(PayloadKey).(*T)
	if !ok || payload == nil {
		return nil, false
	}
	return payload, true
}
