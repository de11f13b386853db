package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/vamoose/internal/validation"
)

// DateLayout is the wire format of trip dates.
const DateLayout = "2006-01-02"

// DefaultCurrency applies when a trip request names none.
const DefaultCurrency = "USD"

// MaxTripNights bounds the distance between start and end date.
const MaxTripNights = 365

// TripRequest describes a planned trip.
type TripRequest struct {
	Destination string  `json:"destination" validate:"required,min=2,max=100"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Travelers   int     `json:"travelers" validate:"required,min=1,max=20"`
	Budget      float64 `json:"budget" validate:"gte=0,lte=1000000000"`
	Currency    string  `json:"currency" validate:"omitempty,iso4217"`
}

// Validate checks tags first, then the date ordering that tags can't express.
func (r *TripRequest) Validate() error {
	err := validation.Struct(r)

	var custom validation.CustomValidationErrors

	start, startErr := time.Parse(DateLayout, r.StartDate)
	end, endErr := time.Parse(DateLayout, r.EndDate)
	if startErr == nil && endErr == nil {
		switch {
		case !end.After(start):
			custom = append(custom, validation.CustomValidationError{
				Field:   "end_date",
				Message: "must be after start_date",
				Value:   r.EndDate,
			})
		case end.After(start.AddDate(0, 0, MaxTripNights)):
			custom = append(custom, validation.CustomValidationError{
				Field:   "end_date",
				Message: fmt.Sprintf("must be at most %d nights after start_date", MaxTripNights),
				Value:   r.EndDate,
			})
		}
	}

	if len(custom) > 0 {
		return errors.Join(err, custom)
	}
	return err
}

// Dates returns the parsed start and end dates. Only call it on a request
// that passed validation.
func (r *TripRequest) Dates() (start, end time.Time) {
	start, _ = time.Parse(DateLayout, r.StartDate)
	end, _ = time.Parse(DateLayout, r.EndDate)
	return start, end
}

// CurrencyCode returns Currency or DefaultCurrency.
func (r *TripRequest) CurrencyCode() string {
	if r.Currency == "" {
		return DefaultCurrency
	}
	return r.Currency
}

// TripPlan is the summary returned for a valid TripRequest.
type TripPlan struct {
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Nights      int    `json:"nights"`
	Days        int    `json:"days"`
	Travelers   int    `json:"travelers"`

	Currency                string  `json:"currency"`
	Budget                  float64 `json:"budget"`
	BudgetPerTraveler       float64 `json:"budget_per_traveler"`
	BudgetPerNight          float64 `json:"budget_per_night"`
	BudgetPerTravelerPerDay float64 `json:"budget_per_traveler_per_day"`
}
