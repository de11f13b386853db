package handler

import (
	"github.com/deppfellow/vamoose/internal/model"
	"github.com/deppfellow/vamoose/internal/server"
	"github.com/deppfellow/vamoose/internal/service"
	"github.com/labstack/echo/v4"
)

// InquiryHandler serves the contact form endpoint.
type InquiryHandler struct {
	Handler
	inquiries *service.InquiryService
}

// NewInquiryHandler constructs an InquiryHandler.
func NewInquiryHandler(s *server.Server, inquiries *service.InquiryService) *InquiryHandler {
	return &InquiryHandler{
		Handler:   NewHandler(s),
		inquiries: inquiries,
	}
}

// Submit queues the confirmation e-mail and returns the inquiry reference.
func (h *InquiryHandler) Submit(c echo.Context, req *model.InquiryRequest) (*model.InquiryReceipt, error) {
	return h.inquiries.Submit(c.Request().Context(), req)
}
