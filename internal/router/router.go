// Package router builds the Echo instance: it installs the global
// middleware stack and mounts the system and API route groups.
package router

import (
	"github.com/deppfellow/vamoose/internal/handler"
	"github.com/deppfellow/vamoose/internal/middleware"
	"github.com/deppfellow/vamoose/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter returns a configured Echo instance.
//
// Middleware order matters: tracing starts the transaction, the request ID
// exists before the context logger reads it, and recovery wraps everything
// below it.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	m := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = m.Global.GlobalErrorHandler

	router.Use(
		m.Tracing.NewRelicMiddleware(),
		m.Tracing.EnhanceTracing(),
		middleware.RequestID(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.CORS(),
		m.Global.Secure(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
	)

	registerSystemRoutes(router, h, s.Config.Observability.IsProduction())

	v1 := router.Group("/api/v1")
	registerTripRoutes(v1, h, m)
	registerInquiryRoutes(v1, h, m)

	return router
}
