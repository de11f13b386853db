package router

import (
	"github.com/deppfellow/vamoose/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes mounts endpoints that sit outside the API:
// health, docs and their static assets, and (outside production) e-mail
// template previews.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, production bool) {
	r.GET("/status", h.Health.CheckHealth)

	r.Static("/static", handler.StaticDir)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)

	if !production {
		r.GET("/emails/preview/:template", h.Email.Preview)
	}
}
