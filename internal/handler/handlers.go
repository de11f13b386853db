package handler

import (
	"github.com/deppfellow/vamoose/internal/server"
	"github.com/deppfellow/vamoose/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one object.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Email   *EmailHandler
	Trip    *TripHandler
	Inquiry *InquiryHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Email:   NewEmailHandler(s),
		Trip:    NewTripHandler(s, services.Trip),
		Inquiry: NewInquiryHandler(s, services.Inquiry),
	}
}
