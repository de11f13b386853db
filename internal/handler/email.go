package handler

import (
	"net/http"

	"github.com/deppfellow/vamoose/internal/errs"
	"github.com/deppfellow/vamoose/internal/lib/email"
	"github.com/deppfellow/vamoose/internal/server"
	"github.com/labstack/echo/v4"
)

// EmailHandler renders e-mail templates with sample data. It is only
// routed outside production.
type EmailHandler struct {
	Handler
}

// NewEmailHandler constructs an EmailHandler.
func NewEmailHandler(s *server.Server) *EmailHandler {
	return &EmailHandler{
		Handler: NewHandler(s),
	}
}

// Preview renders the template named by the :template path parameter.
func (h *EmailHandler) Preview(c echo.Context) error {
	name := c.Param("template")
	if !email.Known(name) {
		return errs.NewNotFoundError("Email template not found", true, nil)
	}

	html, err := h.server.Email.Render(email.Template(name), email.PreviewData[name])
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.HTML(http.StatusOK, html)
}
