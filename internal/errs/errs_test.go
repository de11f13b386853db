package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBadRequestError_Defaults(t *testing.T) {
	err := NewBadRequestError("Invalid request body", false, nil, nil, nil)

	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Invalid request body", err.Error())
}

func TestNewBadRequestError_CustomCode(t *testing.T) {
	code := "TRIP_INVALID"
	err := NewBadRequestError("bad trip", true, &code, []FieldError{{Field: "body", Error: "empty"}}, nil)

	assert.Equal(t, "TRIP_INVALID", err.Code)
	assert.True(t, err.Override)
	require.Len(t, err.Errors, 1)
}

func TestHTTPError_IsMatchesAnyHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("enqueue: %w", NewNotFoundError("missing", false, nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))
}

func TestHTTPError_WithMessageCopies(t *testing.T) {
	base := NewInternalServerError()
	custom := base.WithMessage("queue unavailable")

	assert.Equal(t, "Internal Server Error", base.Message)
	assert.Equal(t, "queue unavailable", custom.Message)
	assert.Equal(t, base.Status, custom.Status)
}

func TestNewServiceUnavailableError_CarriesRetryAction(t *testing.T) {
	err := NewServiceUnavailableError("Inquiries are temporarily unavailable")

	body, jsonErr := json.Marshal(err)
	require.NoError(t, jsonErr)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "SERVICE_UNAVAILABLE", decoded["code"])
	assert.Equal(t, float64(503), decoded["status"])

	action := decoded["action"].(map[string]any)
	assert.Equal(t, "retry", action["type"])
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "UNSUPPORTED_MEDIA_TYPE", MakeUpperCaseWithUnderscores("Unsupported Media Type"))
}
