package booking

import (
	"errors"
	"fmt"
)

var (
	ErrOccupancyExceeded = errors.New("guest count exceeds unit capacity")
	ErrInvalidGuestCount = errors.New("at least one guest is required")
)

// Quote is a price breakdown valid only for the inputs it was computed from.
type Quote struct {
	Nights        int
	NightlyRate   Money
	Subtotal      Money
	TaxRate       Rate
	Tax           Money
	SurchargeRate Rate
	Surcharge     Money
	Total         Money
}

type PricingCalculator interface {
	Quote(unit *Unit, stay DateRange, guests int, surcharge Rate) (Quote, error)
}

type DefaultPricingCalculator struct {
	TaxRate Rate
}

func NewDefaultPricingCalculator() *DefaultPricingCalculator {
	return &DefaultPricingCalculator{
		TaxRate: DefaultTaxRate, // IVA 12%
	}
}

func NewPricingCalculator(taxRate Rate) *DefaultPricingCalculator {
	return &DefaultPricingCalculator{TaxRate: taxRate}
}

// Tax and surcharge are both taken from the subtotal and summed; neither is
// applied on top of the other.
func (pc *DefaultPricingCalculator) Quote(unit *Unit, stay DateRange, guests int, surcharge Rate) (Quote, error) {
	if err := CheckOccupancy(unit, guests); err != nil {
		return Quote{}, err
	}

	nights := stay.Nights()
	if nights < 1 {
		return Quote{}, ErrInvalidRange
	}

	subtotal := unit.NightlyRate().Times(nights)
	tax := subtotal.Percent(pc.TaxRate)
	extra := subtotal.Percent(surcharge)

	return Quote{
		Nights:        nights,
		NightlyRate:   unit.NightlyRate(),
		Subtotal:      subtotal,
		TaxRate:       pc.TaxRate,
		Tax:           tax,
		SurchargeRate: surcharge,
		Surcharge:     extra,
		Total:         subtotal.Add(tax).Add(extra),
	}, nil
}

func CheckOccupancy(unit *Unit, guests int) error {
	if guests < 1 {
		return ErrInvalidGuestCount
	}
	if guests > unit.MaxOccupancy() {
		return fmt.Errorf("%w: maximum is %d guests", ErrOccupancyExceeded, unit.MaxOccupancy())
	}
	return nil
}
