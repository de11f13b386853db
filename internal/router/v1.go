package router

import (
	"net/http"

	"github.com/deppfellow/vamoose/internal/handler"
	"github.com/deppfellow/vamoose/internal/middleware"
	"github.com/deppfellow/vamoose/internal/model"
	"github.com/labstack/echo/v4"
)

// Every payload route runs Validate[Req] then the gate, in that order, as
// route-level middleware. A request with findings never reaches the handler.

func registerTripRoutes(g *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	trips := g.Group("/trips")

	validated := []echo.MiddlewareFunc{
		middleware.Validate[model.TripRequest](),
		m.Gate.Check(),
	}

	trips.POST("/plan",
		handler.Handle(h.Trip.Plan, http.StatusOK),
		validated...)

	trips.POST("/validate",
		handler.HandleNoContent(h.Trip.Check, http.StatusNoContent),
		validated...)

	trips.POST("/calendar",
		handler.HandleFile(h.Trip.Calendar, http.StatusOK, handler.CalendarFilename, handler.CalendarContentType),
		validated...)
}

func registerInquiryRoutes(g *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	g.POST("/inquiries",
		handler.Handle(h.Inquiry.Submit, http.StatusAccepted),
		middleware.Validate[model.InquiryRequest](),
		m.Gate.Check())
}
