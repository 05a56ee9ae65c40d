package drafts

import (
	"time"

	"stay-client/internal/domain/booking"
)

type State string

const (
	StateLoading    State = "loading"
	StateReady      State = "ready"
	StateChecking   State = "checking"
	StateQuoted     State = "quoted"
	StateSubmitting State = "submitting"
	StateConfirmed  State = "confirmed"
	StateFailed     State = "failed"
)

func (s State) Terminal() bool {
	return s == StateConfirmed || s == StateFailed
}

type FailureReason string

const (
	ReasonNone         FailureReason = ""
	ReasonLoadError    FailureReason = "load_error"
	ReasonAuthRequired FailureReason = "auth_required"
)

type IntentKind string

const (
	IntentNone           IntentKind = ""
	IntentUnitList       IntentKind = "unit_list"
	IntentUnitDetail     IntentKind = "unit_detail"
	IntentLogin          IntentKind = "login"
	IntentMyReservations IntentKind = "my_reservations"
	IntentInvoices       IntentKind = "invoices"
)

// Intent names where the client should go next. ReturnTo is set for Login,
// UnitID for UnitDetail.
type Intent struct {
	Kind     IntentKind
	UnitID   string
	ReturnTo string
}

func (i Intent) IsZero() bool { return i.Kind == IntentNone }

// View is a snapshot of a workflow, safe to hand to other goroutines.
type View struct {
	DraftID         string
	Version         uint64
	State           State
	FailureReason   FailureReason
	Unit            *booking.Unit
	Start           time.Time
	End             time.Time
	Nights          int
	Guests          int
	SpecialRequests string
	Holiday         bool
	Availability    booking.Availability
	Quote           *booking.Quote
	Reservation     *booking.Reservation
	Notice          string
	Intent          Intent
	CanCheck        bool
	CanSubmit       bool
}
