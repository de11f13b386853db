package middleware

import (
	"net/http"
	"testing"

	"github.com/deppfellow/vamoose/internal/errs"
	"github.com/deppfellow/vamoose/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactPayload struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age" validate:"omitempty,gte=18"`
}

func (p *contactPayload) Validate() error {
	return validation.Struct(p)
}

// unvalidated has no Validate method; binding alone must still work.
type unvalidated struct {
	Note string `json:"note"`
}

func runValidate[T any](t *testing.T, body string) (echo.Context, bool, error) {
	t.Helper()

	e := echo.New()
	c, _ := newJSONContext(e, http.MethodPost, "/", body)

	reached := false
	err := Validate[T]()(func(c echo.Context) error {
		reached = true
		return nil
	})(c)

	return c, reached, err
}

func TestValidate_ValidPayload(t *testing.T) {
	c, reached, err := runValidate[contactPayload](t, `{"name":"Ana","email":"ana@example.com"}`)
	require.NoError(t, err)
	assert.True(t, reached)

	assert.True(t, validation.FindingsFrom(c).IsEmpty())

	payload, ok := validation.PayloadFrom[contactPayload](c)
	require.True(t, ok)
	assert.Equal(t, "Ana", payload.Name)
}

func TestValidate_AttachesFindingsAndContinues(t *testing.T) {
	c, reached, err := runValidate[contactPayload](t, `{"email":"nope"}`)
	require.NoError(t, err)
	assert.True(t, reached, "the validation stage never halts; the gate does")

	findings := validation.FindingsFrom(c)
	require.Len(t, findings, 2)
	assert.Equal(t, "name", findings[0].Field)
	assert.Equal(t, "is required", findings[0].Message)
	assert.Equal(t, "email", findings[1].Field)
	assert.Equal(t, "must be a valid email address", findings[1].Message)
}

func TestValidate_TypeMismatchBecomesFinding(t *testing.T) {
	c, reached, err := runValidate[contactPayload](t, `{"name":"Ana","email":"ana@example.com","age":"old"}`)
	require.NoError(t, err)
	assert.True(t, reached)

	assert.Equal(t, validation.Findings{{Field: "age", Message: "must be a number"}}, validation.FindingsFrom(c))
}

func TestValidate_MalformedJSONIsBadRequest(t *testing.T) {
	_, reached, err := runValidate[contactPayload](t, `{"name":`)
	require.Error(t, err)
	assert.False(t, reached)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "body", httpErr.Errors[0].Field)
}

func TestValidate_FreshPayloadPerRequest(t *testing.T) {
	first, _, err := runValidate[contactPayload](t, `{"name":"Ana","email":"ana@example.com"}`)
	require.NoError(t, err)
	second, _, err := runValidate[contactPayload](t, `{"email":"bo@example.com"}`)
	require.NoError(t, err)

	a, _ := validation.PayloadFrom[contactPayload](first)
	b, _ := validation.PayloadFrom[contactPayload](second)
	assert.NotSame(t, a, b)
	assert.Empty(t, b.Name)
}

func TestValidate_NonValidatablePayload(t *testing.T) {
	c, reached, err := runValidate[unvalidated](t, `{"note":"hi"}`)
	require.NoError(t, err)
	assert.True(t, reached)
	assert.True(t, validation.FindingsFrom(c).IsEmpty())
}

func TestValidateThenGate_Pipeline(t *testing.T) {
	e := echo.New()
	g := NewValidationGate(newTestServer(t, nil))

	reached := 0
	h := Validate[contactPayload]()(g.Check()(func(c echo.Context) error {
		reached++
		return c.NoContent(http.StatusNoContent)
	}))

	c, rec := newJSONContext(e, http.MethodPost, "/", `{"name":"","email":"ana@example.com"}`)
	require.NoError(t, h(c))
	assert.Equal(t, 0, reached)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[{"field":"name","message":"is required","value":""}]}`, rec.Body.String())

	c, rec = newJSONContext(e, http.MethodPost, "/", `{"name":"Ana","email":"ana@example.com"}`)
	require.NoError(t, h(c))
	assert.Equal(t, 1, reached)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
