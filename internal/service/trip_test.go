package service

import (
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/vamoose/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedTripService() *TripService {
	return &TripService{now: func() time.Time {
		return time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)
	}}
}

func TestTripService_Plan(t *testing.T) {
	s := fixedTripService()

	plan := s.Plan(&model.TripRequest{
		Destination: "Lisbon",
		StartDate:   "2026-11-01",
		EndDate:     "2026-11-05",
		Travelers:   3,
		Budget:      1000,
	})

	assert.Equal(t, 4, plan.Nights)
	assert.Equal(t, 5, plan.Days)
	assert.Equal(t, "USD", plan.Currency)
	assert.Equal(t, 1000.0, plan.Budget)
	assert.Equal(t, 333.33, plan.BudgetPerTraveler)
	assert.Equal(t, 250.0, plan.BudgetPerNight)
	assert.Equal(t, 66.67, plan.BudgetPerTravelerPerDay)
}

func TestTripService_Plan_ZeroBudget(t *testing.T) {
	plan := fixedTripService().Plan(&model.TripRequest{
		Destination: "Porto",
		StartDate:   "2026-03-28",
		EndDate:     "2026-03-30",
		Travelers:   1,
		Currency:    "EUR",
	})

	assert.Equal(t, 2, plan.Nights)
	assert.Equal(t, "EUR", plan.Currency)
	assert.Zero(t, plan.BudgetPerTraveler)
	assert.Zero(t, plan.BudgetPerNight)
}

func TestTripService_Calendar(t *testing.T) {
	s := fixedTripService()
	req := &model.TripRequest{
		Destination: "Paris, France",
		StartDate:   "2026-11-01",
		EndDate:     "2026-11-05",
		Travelers:   2,
		Budget:      1500,
		Currency:    "EUR",
	}

	ics := string(s.Calendar(req))

	require.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n"))
	require.True(t, strings.HasSuffix(ics, "END:VCALENDAR\r\n"))
	assert.Contains(t, ics, "DTSTAMP:20261019T083000Z\r\n")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20261101\r\n")
	assert.Contains(t, ics, "DTEND;VALUE=DATE:20261106\r\n")
	assert.Contains(t, ics, `SUMMARY:Trip to Paris\, France`+"\r\n")
	assert.Contains(t, ics, `DESCRIPTION:4 nights for 2 travelers. Budget: 1500.00 EUR`+"\r\n")

	// same trip, same UID
	again := string(s.Calendar(req))
	assert.Equal(t, ics, again)
}

func TestEscapeText(t *testing.T) {
	assert.Equal(t, `a\;b\,c\\d\ne`, escapeText("a;b,c\\d\ne"))
}

func TestFold(t *testing.T) {
	short := "SUMMARY:Trip to Lisbon"
	assert.Equal(t, short, fold(short))

	long := "DESCRIPTION:" + strings.Repeat("é", 60)
	folded := fold(long)

	parts := strings.Split(folded, "\r\n")
	require.Greater(t, len(parts), 1)
	for i, part := range parts {
		assert.LessOrEqual(t, len(part), 75)
		if i > 0 {
			assert.True(t, strings.HasPrefix(part, " "))
		}
	}

	unfolded := strings.ReplaceAll(folded, "\r\n ", "")
	assert.Equal(t, long, unfolded)
}
