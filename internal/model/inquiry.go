package model

import (
	"errors"
	"strings"

	"github.com/deppfellow/vamoose/internal/validation"
)

// InquiryStatusQueued is reported once the confirmation job is enqueued.
const InquiryStatusQueued = "queued"

// InquiryRequest is a contact form submission.
type InquiryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email,max=254"`
	Message     string `json:"message" validate:"required,min=10,max=2000"`
	Destination string `json:"destination" validate:"omitempty,max=100"`
}

// Validate rejects whitespace-only names on top of the tag rules.
func (r *InquiryRequest) Validate() error {
	err := validation.Struct(r)

	var custom validation.CustomValidationErrors
	if r.Name != "" && strings.TrimSpace(r.Name) == "" {
		custom = append(custom, validation.CustomValidationError{
			Field:   "name",
			Message: "must not be blank",
			Value:   r.Name,
		})
	}

	if len(custom) > 0 {
		return errors.Join(err, custom)
	}
	return err
}

// InquiryReceipt acknowledges an accepted inquiry.
type InquiryReceipt struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
