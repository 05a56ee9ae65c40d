package booking

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

const (
	day        = 24 * time.Hour
	DateLayout = "2006-01-02"
)

var ErrInvalidRange = errors.New("check-out date must be after check-in date")

// Money is an amount in currency minor units (cents).
type Money int64

func MoneyFromFloat(amount float64) Money {
	return Money(math.Round(amount * 100))
}

func (m Money) Cents() int64 { return int64(m) }

func (m Money) Float() float64 { return float64(m) / 100 }

func (m Money) Add(other Money) Money { return m + other }

func (m Money) Sub(other Money) Money { return m - other }

func (m Money) Times(n int) Money { return m * Money(n) }

// Percent applies r to m, rounding half away from zero to the minor unit.
func (m Money) Percent(r Rate) Money {
	p := int64(m) * int64(r)
	if p >= 0 {
		return Money((p + basisPointsScale/2) / basisPointsScale)
	}
	return Money((p - basisPointsScale/2) / basisPointsScale)
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON writes the amount in major units with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}
	*m = MoneyFromFloat(v)
	return nil
}

const basisPointsScale = 10000

// Rate is a percentage in basis points: 1200 = 12%.
type Rate int64

const DefaultTaxRate Rate = 1200

func RateFromPercent(percent float64) Rate {
	return Rate(math.Round(percent * 100))
}

func (r Rate) BasisPoints() int64 { return int64(r) }

func (r Rate) Percent() float64 { return float64(r) / 100 }

func (r Rate) IsZero() bool { return r == 0 }

// DateRange is a stay between two calendar dates, check-out exclusive.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	s, e := CalendarDate(start), CalendarDate(end)
	if !s.Before(e) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{start: s, end: e}, nil
}

func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: invalid check-in date %q", ErrInvalidRange, start)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: invalid check-out date %q", ErrInvalidRange, end)
	}
	return NewDateRange(s, e)
}

// CalendarDate drops the time of day, keeping the date as seen in t's location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }
func (r DateRange) IsZero() bool     { return r.start.IsZero() && r.end.IsZero() }

// Nights rounds partial days up; zero for an empty or inverted range.
func (r DateRange) Nights() int {
	d := r.end.Sub(r.start)
	if d <= 0 {
		return 0
	}
	n := d / day
	if d%day != 0 {
		n++
	}
	return int(n)
}

func (r DateRange) StartDate() string { return r.start.Format(DateLayout) }
func (r DateRange) EndDate() string   { return r.end.Format(DateLayout) }

func (r DateRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.StartDate(), r.EndDate())
}

func (r DateRange) Equal(other DateRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}
