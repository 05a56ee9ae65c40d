package booking

import "time"

// Reservation is the remote store's acknowledgment of a submitted draft.
type Reservation struct {
	ID              string
	Code            string
	UnitID          string
	UnitNumber      string
	Stay            DateRange
	Nights          int
	Guests          int
	NightlyRate     Money
	Subtotal        Money
	Discount        Money
	Tax             Money
	Holiday         bool
	SurchargeRate   Rate
	Surcharge       Money
	Total           Money
	Status          ReservationStatus
	SpecialRequests string
	CreatedAt       time.Time
}

func (r *Reservation) Cancelable() bool {
	return r.Status.Cancelable()
}

// ReservationRequest is what the workflow submits for a quoted draft.
// IdempotencyKey stays the same across retries of one quote.
type ReservationRequest struct {
	UnitID          string
	Stay            DateRange
	Guests          int
	SpecialRequests string
	Holiday         bool
	Quote           Quote
	IdempotencyKey  string
}
