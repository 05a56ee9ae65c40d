package booking

import (
	"strings"
	"time"
)

const MaxSpecialRequestsLength = 500

type DraftInput struct {
	Start           time.Time
	End             time.Time
	Guests          int
	SpecialRequests string
	Holiday         bool
}

// Draft is an in-progress reservation. Any edit invalidates availability and
// quote so nothing can be submitted against figures for different inputs.
type Draft struct {
	unit            *Unit
	start           time.Time
	end             time.Time
	guests          int
	specialRequests string
	holiday         bool
	availability    Availability
	quote           *Quote
}

func NewDraft(unit *Unit, start, end time.Time) *Draft {
	return &Draft{
		unit:         unit,
		start:        CalendarDate(start),
		end:          CalendarDate(end),
		guests:       1,
		availability: AvailabilityUnknown,
	}
}

func (d *Draft) Edit(in DraftInput) {
	d.start = CalendarDate(in.Start)
	d.end = CalendarDate(in.End)
	d.guests = in.Guests
	d.specialRequests = truncate(strings.TrimSpace(in.SpecialRequests), MaxSpecialRequestsLength)
	d.holiday = in.Holiday
	d.Invalidate()
}

func (d *Draft) Invalidate() {
	d.availability = AvailabilityUnknown
	d.quote = nil
}

// Validate runs the local checks that must pass before any remote call.
func (d *Draft) Validate() (DateRange, error) {
	stay, err := NewDateRange(d.start, d.end)
	if err != nil {
		return DateRange{}, err
	}
	if err := CheckOccupancy(d.unit, d.guests); err != nil {
		return DateRange{}, err
	}
	return stay, nil
}

func (d *Draft) MarkAvailability(a Availability) {
	d.availability = a
	if a != AvailabilityAvailable {
		d.quote = nil
	}
}

func (d *Draft) AttachQuote(q Quote) {
	d.quote = &q
}

func (d *Draft) Unit() *Unit                { return d.unit }
func (d *Draft) Start() time.Time           { return d.start }
func (d *Draft) End() time.Time             { return d.end }
func (d *Draft) Guests() int                { return d.guests }
func (d *Draft) SpecialRequests() string    { return d.specialRequests }
func (d *Draft) Holiday() bool              { return d.holiday }
func (d *Draft) Availability() Availability { return d.availability }

func (d *Draft) Quote() (Quote, bool) {
	if d.quote == nil {
		return Quote{}, false
	}
	return *d.quote, true
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
