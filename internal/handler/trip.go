package handler

import (
	"github.com/deppfellow/vamoose/internal/model"
	"github.com/deppfellow/vamoose/internal/server"
	"github.com/deppfellow/vamoose/internal/service"
	"github.com/labstack/echo/v4"
)

// CalendarFilename is the download name of exported trips.
const CalendarFilename = "vamoose-trip.ics"

// CalendarContentType is the media type of exported trips.
const CalendarContentType = "text/calendar; charset=utf-8"

// TripHandler serves the trip planning endpoints.
type TripHandler struct {
	Handler
	trips *service.TripService
}

// NewTripHandler constructs a TripHandler.
func NewTripHandler(s *server.Server, trips *service.TripService) *TripHandler {
	return &TripHandler{
		Handler: NewHandler(s),
		trips:   trips,
	}
}

// Plan returns the trip summary.
func (h *TripHandler) Plan(c echo.Context, req *model.TripRequest) (*model.TripPlan, error) {
	return h.trips.Plan(req), nil
}

// Calendar returns the trip as an iCalendar file.
func (h *TripHandler) Calendar(c echo.Context, req *model.TripRequest) ([]byte, error) {
	return h.trips.Calendar(req), nil
}

// Check accepts a trip that passed validation without doing anything else,
// letting clients validate a form before submitting it.
func (h *TripHandler) Check(c echo.Context, req *model.TripRequest) error {
	return nil
}
