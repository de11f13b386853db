package middleware

import (
	"github.com/deppfellow/vamoose/internal/gate"
	"github.com/deppfellow/vamoose/internal/server"
	"github.com/deppfellow/vamoose/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ValidationGate mounts gate.Check on Echo routes.
type ValidationGate struct {
	server *server.Server
}

// NewValidationGate constructs the gate middleware.
func NewValidationGate(s *server.Server) *ValidationGate {
	return &ValidationGate{server: s}
}

// Check reads the findings attached by Validate and dispatches on the
// decision:
//   - forwarded: nothing is written and next runs once;
//   - rejected: 400 {"errors": [...]} is written and next never runs.
//
// Routes without a validation stage have no findings and are forwarded.
func (g *ValidationGate) Check() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision := gate.Check[validation.Finding](validation.FindingsFrom(c))
			txn := newrelic.FromContext(c.Request().Context())

			resp, rejected := decision.Response()
			if !rejected {
				if txn != nil {
					txn.AddAttribute("validation.status", "success")
				}
				return next(c)
			}

			GetLogger(c).Warn().
				Err(decision.Err()).
				Int("findings", len(resp.Body.Errors)).
				Msg("request rejected by validation gate")

			if txn != nil {
				txn.AddAttribute("validation.status", "failed")
				txn.NoticeError(nrpkgerrors.Wrap(decision.Err()))
			}

			return c.JSON(resp.Status, resp.Body)
		}
	}
}
