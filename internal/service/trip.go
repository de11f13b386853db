package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/deppfellow/vamoose/internal/model"
	"github.com/google/uuid"
)

// calendarNamespace seeds deterministic event UIDs so re-exporting the
// same trip updates the calendar entry instead of duplicating it.
var calendarNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte("calendar.vamoose.app"))

const calendarProductID = "-//Vamoose//Trip Planner//EN"

// TripService plans trips. It has no dependencies besides a clock.
type TripService struct {
	now func() time.Time
}

// NewTripService constructs a TripService using the wall clock.
func NewTripService() *TripService {
	return &TripService{now: time.Now}
}

// Plan summarizes a trip: its length and how the budget splits across
// travelers and nights.
func (s *TripService) Plan(req *model.TripRequest) *model.TripPlan {
	start, end := req.Dates()
	nights := int(end.Sub(start).Hours() / 24)
	days := nights + 1

	plan := &model.TripPlan{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Nights:      nights,
		Days:        days,
		Travelers:   req.Travelers,
		Currency:    req.CurrencyCode(),
		Budget:      roundCents(req.Budget),
	}

	if req.Travelers > 0 {
		plan.BudgetPerTraveler = roundCents(req.Budget / float64(req.Travelers))
		plan.BudgetPerTravelerPerDay = roundCents(req.Budget / float64(req.Travelers) / float64(days))
	}
	if nights > 0 {
		plan.BudgetPerNight = roundCents(req.Budget / float64(nights))
	}

	return plan
}

// Calendar renders the trip as an iCalendar document (RFC 5545) with one
// all-day event. DTEND is exclusive, so it is the day after EndDate.
func (s *TripService) Calendar(req *model.TripRequest) []byte {
	plan := s.Plan(req)
	start, end := req.Dates()

	uid := uuid.NewSHA1(calendarNamespace, []byte(req.Destination+"|"+req.StartDate+"|"+req.EndDate))

	description := fmt.Sprintf("%d nights for %d %s", plan.Nights, plan.Travelers, pluralize("traveler", plan.Travelers))
	if plan.Budget > 0 {
		description += fmt.Sprintf(". Budget: %.2f %s", plan.Budget, plan.Currency)
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + calendarProductID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + uid.String() + "@vamoose",
		"DTSTAMP:" + s.now().UTC().Format("20060102T150405Z"),
		"DTSTART;VALUE=DATE:" + start.Format("20060102"),
		"DTEND;VALUE=DATE:" + end.AddDate(0, 0, 1).Format("20060102"),
		"SUMMARY:" + escapeText("Trip to "+req.Destination),
		"LOCATION:" + escapeText(req.Destination),
		"DESCRIPTION:" + escapeText(description),
		"TRANSP:TRANSPARENT",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(fold(line))
		b.WriteString("\r\n")
	}
	return []byte(b.String())
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// fold splits content lines longer than 75 octets, continuing them with a
// leading space. Splits never land inside a UTF-8 sequence.
func fold(line string) string {
	const limit = 75
	if len(line) <= limit {
		return line
	}

	var b strings.Builder
	width := limit
	for len(line) > width {
		cut := width
		for cut > 0 && !isRuneStart(line[cut]) {
			cut--
		}
		b.WriteString(line[:cut])
		b.WriteString("\r\n ")
		line = line[cut:]
		// continuation lines spend one octet on the leading space
		width = limit - 1
	}
	b.WriteString(line)
	return b.String()
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
