package booking

type UnitFilter struct {
	Kind      string
	MinGuests int
	MaxRate   Money
	Status    UnitStatus
}
