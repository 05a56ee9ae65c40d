package booking

import (
	"errors"
	"strings"
)

var (
	ErrEmptyUnitID      = errors.New("unit id cannot be empty")
	ErrNonPositiveRate  = errors.New("nightly rate must be positive")
	ErrInvalidOccupancy = errors.New("maximum occupancy must be positive")
)

type UnitStatus string

const (
	UnitStatusAvailable   UnitStatus = "disponible"
	UnitStatusOccupied    UnitStatus = "ocupado"
	UnitStatusMaintenance UnitStatus = "mantenimiento"
	UnitStatusReserved    UnitStatus = "reservado"
)

type UnitSpec struct {
	ID           string
	Number       string
	Kind         string
	Floor        int
	Description  string
	NightlyRate  Money
	MaxOccupancy int
	Beds         int
	Status       UnitStatus
	Images       []string
}

// Unit is a bookable room or apartment. It is owned by the remote inventory
// and never mutated by this client.
type Unit struct {
	spec UnitSpec
}

func NewUnit(spec UnitSpec) (*Unit, error) {
	spec.ID = strings.TrimSpace(spec.ID)
	if spec.ID == "" {
		return nil, ErrEmptyUnitID
	}
	if spec.NightlyRate <= 0 {
		return nil, ErrNonPositiveRate
	}
	if spec.MaxOccupancy <= 0 {
		return nil, ErrInvalidOccupancy
	}
	spec.Images = append([]string(nil), spec.Images...)
	return &Unit{spec: spec}, nil
}

func (u *Unit) ID() string           { return u.spec.ID }
func (u *Unit) Number() string       { return u.spec.Number }
func (u *Unit) Kind() string         { return u.spec.Kind }
func (u *Unit) Floor() int           { return u.spec.Floor }
func (u *Unit) Description() string  { return u.spec.Description }
func (u *Unit) NightlyRate() Money   { return u.spec.NightlyRate }
func (u *Unit) MaxOccupancy() int    { return u.spec.MaxOccupancy }
func (u *Unit) Beds() int            { return u.spec.Beds }
func (u *Unit) Status() UnitStatus   { return u.spec.Status }
func (u *Unit) Images() []string     { return append([]string(nil), u.spec.Images...) }
func (u *Unit) Fits(guests int) bool { return guests >= 1 && guests <= u.spec.MaxOccupancy }
