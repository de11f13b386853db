package service

import (
	"errors"

	"github.com/deppfellow/vamoose/internal/server"
)

// Services groups the business services so handlers receive one object.
type Services struct {
	Trip    *TripService
	Inquiry *InquiryService
}

// NewServices builds all services from the application container.
func NewServices(s *server.Server) (*Services, error) {
	if s.Job == nil || s.Job.Client == nil {
		return nil, errors.New("job client not initialized")
	}

	return &Services{
		Trip:    NewTripService(),
		Inquiry: NewInquiryService(s.Job.Client),
	}, nil
}
