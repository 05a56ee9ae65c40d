//go:build unit || e2e

package builder

import (
	"stay-client/internal/domain/booking"
)

type UnitBuilder struct {
	ID           string
	Number       string
	Kind         string
	Floor        int
	NightlyRate  booking.Money
	MaxOccupancy int
	Beds         int
	Status       booking.UnitStatus
}

func NewUnitBuilder() *UnitBuilder {
	return &UnitBuilder{
		ID:           "65a1f0c2e4b0a1b2c3d4e5f6",
		Number:       "204",
		Kind:         "doble",
		Floor:        2,
		NightlyRate:  booking.MoneyFromFloat(100),
		MaxOccupancy: 2,
		Beds:         1,
		Status:       booking.UnitStatusAvailable,
	}
}

func (b *UnitBuilder) With(mutate func(*UnitBuilder)) *UnitBuilder {
	mutate(b)
	return b
}

func (b *UnitBuilder) Spec() booking.UnitSpec {
	return booking.UnitSpec{
		ID:           b.ID,
		Number:       b.Number,
		Kind:         b.Kind,
		Floor:        b.Floor,
		NightlyRate:  b.NightlyRate,
		MaxOccupancy: b.MaxOccupancy,
		Beds:         b.Beds,
		Status:       b.Status,
	}
}

func (b *UnitBuilder) BuildDomain() (*booking.Unit, error) {
	return booking.NewUnit(b.Spec())
}

// MustBuild is for fixtures whose spec is known to be valid.
func (b *UnitBuilder) MustBuild() *booking.Unit {
	u, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return u
}

// Fluent builder methods
func (b *UnitBuilder) WithID(id string) *UnitBuilder {
	b.ID = id
	return b
}

func (b *UnitBuilder) WithRate(amount float64) *UnitBuilder {
	b.NightlyRate = booking.MoneyFromFloat(amount)
	return b
}

func (b *UnitBuilder) WithMaxOccupancy(n int) *UnitBuilder {
	b.MaxOccupancy = n
	return b
}
