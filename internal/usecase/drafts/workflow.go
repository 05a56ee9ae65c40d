package drafts

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"stay-client/internal/domain/booking"
	"stay-client/internal/infra"
	"stay-client/internal/pkg/clock"
	"stay-client/internal/pkg/errs"
	"stay-client/internal/pkg/session"
)

// Dependencies are shared by every workflow the registry opens.
type Dependencies struct {
	Units            UnitDirectory
	Checker          *AvailabilityChecker
	Store            ReservationStore
	Pricing          booking.PricingCalculator
	HolidaySurcharge booking.Rate
	Navigator        Navigator
	Clock            clock.Clock
	Logger           *slog.Logger
}

// Workflow drives one reservation draft from unit load to confirmation.
//
// Remote calls run without the lock held. Each availability check carries
// the draft version it was issued for; a response that comes back after the
// draft moved on is dropped with ErrStaleResponse and changes nothing.
type Workflow struct {
	mu   sync.Mutex
	id   string
	deps Dependencies

	state          State
	reason         FailureReason
	draft          *booking.Draft
	version        uint64
	notice         string
	intent         Intent
	pending        *Intent
	reservation    *booking.Reservation
	idempotencyKey string
	closed         bool
}

func NewWorkflow(id string, deps Dependencies) *Workflow {
	if deps.Clock == nil {
		deps.Clock = clock.NewRealClock()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Pricing == nil {
		deps.Pricing = booking.NewDefaultPricingCalculator()
	}
	return &Workflow{id: id, deps: deps, state: StateLoading}
}

func (w *Workflow) ID() string { return w.id }

// Load fetches the unit and proposes a one-night stay starting today.
func (w *Workflow) Load(ctx context.Context, sess session.Session, unitID string) (View, error) {
	w.mu.Lock()
	if err := w.guard(StateLoading); err != nil {
		defer w.unlock()
		return w.view(), err
	}
	unitID = strings.TrimSpace(unitID)
	if !sess.Authenticated(w.deps.Clock.Now()) {
		defer w.unlock()
		w.fail(ReasonAuthRequired, noticeLoginRequired, w.loginIntent(unitID))
		return w.view(), ErrAuthRequired
	}
	if unitID == "" {
		defer w.unlock()
		w.fail(ReasonLoadError, noticeUnitNotFound, Intent{Kind: IntentUnitList})
		return w.view(), errs.Mark(ErrUnitNotFound, ErrLoadFailed)
	}
	w.mu.Unlock()

	unit, err := w.deps.Units.GetUnit(ctx, sess, unitID)

	w.mu.Lock()
	defer w.unlock()
	if w.closed {
		return w.view(), ErrDraftClosed
	}
	if err != nil {
		switch {
		case isAuthFailure(err):
			w.fail(ReasonAuthRequired, noticeLoginRequired, w.loginIntent(unitID))
			return w.view(), errs.Mark(err, ErrAuthRequired)
		case infra.IsKind(err, infra.KindNotFound):
			w.fail(ReasonLoadError, noticeUnitNotFound, Intent{Kind: IntentUnitList})
			return w.view(), errs.Mark(errs.Mark(err, ErrUnitNotFound), ErrLoadFailed)
		default:
			w.fail(ReasonLoadError, noticeLoadFailed, Intent{Kind: IntentUnitList})
			return w.view(), errs.Mark(err, ErrLoadFailed)
		}
	}

	today := clock.Today(w.deps.Clock)
	w.draft = booking.NewDraft(unit, today, today.AddDate(0, 0, 1))
	w.transition(StateReady)
	return w.view(), nil
}

// Edit replaces the draft inputs. Availability and quote are discarded and
// any check still in flight becomes stale.
func (w *Workflow) Edit(in booking.DraftInput) (View, error) {
	w.mu.Lock()
	defer w.unlock()
	if err := w.guard(StateReady, StateChecking, StateQuoted); err != nil {
		return w.view(), err
	}

	w.draft.Edit(in)
	w.version++
	w.idempotencyKey = ""
	w.notice = ""
	w.transition(StateReady)
	return w.view(), nil
}

// Check validates the draft locally and, when valid, asks for availability.
// An available unit is priced immediately.
func (w *Workflow) Check(ctx context.Context, sess session.Session) (View, error) {
	w.mu.Lock()
	if err := w.guard(StateReady, StateChecking); err != nil {
		defer w.unlock()
		return w.view(), err
	}

	w.notice = ""
	stay, err := w.draft.Validate()
	if err != nil {
		defer w.unlock()
		w.notice = validationNotice(err, w.draft.Unit().MaxOccupancy())
		w.transition(StateReady)
		return w.view(), errs.Mark(err, ErrValidation)
	}
	if !sess.Authenticated(w.deps.Clock.Now()) {
		defer w.unlock()
		w.transition(StateReady)
		w.requireLogin()
		return w.view(), ErrAuthRequired
	}

	w.version++
	version := w.version
	unit := w.draft.Unit()
	w.draft.MarkAvailability(booking.AvailabilityUnknown)
	w.transition(StateChecking)
	w.mu.Unlock()

	availability, err := w.deps.Checker.Check(ctx, sess, unit.ID(), stay)

	w.mu.Lock()
	defer w.unlock()
	if w.closed || version != w.version {
		w.deps.Logger.Debug("discarding stale availability response",
			"draft_id", w.id, "response_version", version, "draft_version", w.version)
		return w.view(), ErrStaleResponse
	}

	if err != nil {
		w.transition(StateReady)
		if errs.Is(err, ErrAuthRequired) {
			w.requireLogin()
			return w.view(), err
		}
		w.notice = noticeCheckFailed
		return w.view(), err
	}

	w.draft.MarkAvailability(availability)
	if availability != booking.AvailabilityAvailable {
		w.notice = noticeUnavailable
		w.transition(StateReady)
		return w.view(), ErrUnavailable
	}

	var surcharge booking.Rate
	if w.draft.Holiday() {
		surcharge = w.deps.HolidaySurcharge
	}
	quote, err := w.deps.Pricing.Quote(unit, stay, w.draft.Guests(), surcharge)
	if err != nil {
		w.draft.MarkAvailability(booking.AvailabilityUnknown)
		w.notice = validationNotice(err, unit.MaxOccupancy())
		w.transition(StateReady)
		return w.view(), errs.Mark(err, ErrValidation)
	}

	w.draft.AttachQuote(quote)
	w.idempotencyKey = uuid.NewString()
	w.transition(StateQuoted)
	return w.view(), nil
}

// Submit sends the quoted draft to the reservation store. Only one
// submission may be in flight; a retry after failure reuses the quote's
// idempotency key.
func (w *Workflow) Submit(ctx context.Context, sess session.Session) (View, error) {
	w.mu.Lock()
	if w.closed {
		defer w.unlock()
		return w.view(), ErrDraftClosed
	}
	switch w.state {
	case StateQuoted:
	case StateSubmitting:
		defer w.unlock()
		return w.view(), ErrSubmissionInFlight
	case StateConfirmed, StateFailed, StateLoading:
		defer w.unlock()
		return w.view(), ErrInvalidTransition
	default:
		defer w.unlock()
		return w.view(), ErrNotQuoted
	}

	quote, ok := w.draft.Quote()
	if !ok || w.draft.Availability() != booking.AvailabilityAvailable {
		defer w.unlock()
		return w.view(), ErrNotQuoted
	}
	if !sess.Authenticated(w.deps.Clock.Now()) {
		defer w.unlock()
		w.requireLogin()
		return w.view(), ErrAuthRequired
	}
	stay, err := w.draft.Validate()
	if err != nil {
		defer w.unlock()
		return w.view(), errs.Mark(err, ErrValidation)
	}

	req := booking.ReservationRequest{
		UnitID:          w.draft.Unit().ID(),
		Stay:            stay,
		Guests:          w.draft.Guests(),
		SpecialRequests: w.draft.SpecialRequests(),
		Holiday:         w.draft.Holiday(),
		Quote:           quote,
		IdempotencyKey:  w.idempotencyKey,
	}
	w.notice = ""
	w.transition(StateSubmitting)
	w.mu.Unlock()

	res, err := w.deps.Store.CreateReservation(ctx, sess, req)

	w.mu.Lock()
	defer w.unlock()
	if err == nil {
		w.reservation = res
		w.transition(StateConfirmed)
		if !w.closed {
			w.emit(Intent{Kind: IntentMyReservations})
		}
		return w.view(), nil
	}

	switch {
	case isAuthFailure(err):
		w.transition(StateQuoted)
		w.requireLogin()
		return w.view(), errs.Mark(err, ErrAuthRequired)
	case infra.IsKind(err, infra.KindConflict):
		w.draft.MarkAvailability(booking.AvailabilityUnknown)
		w.idempotencyKey = ""
		w.notice = noticeConflict
		w.transition(StateReady)
		return w.view(), errs.Mark(err, ErrSubmissionConflict)
	case infra.IsKind(err, infra.KindValidation):
		w.notice = noticeSubmitRejected
		w.transition(StateQuoted)
		return w.viewOnce(), errs.Mark(err, ErrSubmissionFailed)
	default:
		w.notice = noticeSubmitFailed
		w.transition(StateQuoted)
		return w.viewOnce(), errs.Mark(err, ErrSubmissionFailed)
	}
}

// Close marks the draft abandoned. Responses still in flight are discarded.
func (w *Workflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	w.version++
}

func (w *Workflow) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.view()
}

func (w *Workflow) guard(allowed ...State) error {
	if w.closed {
		return ErrDraftClosed
	}
	for _, s := range allowed {
		if w.state == s {
			return nil
		}
	}
	if w.state == StateSubmitting {
		return ErrSubmissionInFlight
	}
	return ErrInvalidTransition
}

func (w *Workflow) transition(to State) {
	if w.state == to {
		return
	}
	w.deps.Logger.Debug("draft state changed", "draft_id", w.id, "from", w.state, "to", to, "version", w.version)
	w.state = to
	if to != StateFailed {
		w.reason = ReasonNone
	}
}

func (w *Workflow) fail(reason FailureReason, notice string, next Intent) {
	w.transition(StateFailed)
	w.reason = reason
	w.notice = notice
	w.emit(next)
}

func (w *Workflow) requireLogin() {
	w.notice = noticeLoginRequired
	unitID := ""
	if w.draft != nil {
		unitID = w.draft.Unit().ID()
	}
	w.emit(w.loginIntent(unitID))
}

func (w *Workflow) loginIntent(unitID string) Intent {
	returnTo := "/units"
	if unitID != "" {
		returnTo = "/units/" + unitID + "/reserve"
	}
	return Intent{Kind: IntentLogin, ReturnTo: returnTo}
}

func (w *Workflow) emit(intent Intent) {
	w.intent = intent
	w.pending = &intent
}

// unlock releases the lock and then forwards any intent raised while it was
// held, so a Navigator may call back into the workflow.
func (w *Workflow) unlock() {
	pending := w.pending
	w.pending = nil
	w.mu.Unlock()
	if pending != nil && w.deps.Navigator != nil {
		w.deps.Navigator.Navigate(*pending)
	}
}

// viewOnce renders the notice into this view only; later views of the
// retryable draft no longer carry it.
func (w *Workflow) viewOnce() View {
	v := w.view()
	w.notice = ""
	return v
}

func (w *Workflow) view() View {
	v := View{
		DraftID:       w.id,
		Version:       w.version,
		State:         w.state,
		FailureReason: w.reason,
		Reservation:   w.reservation,
		Notice:        w.notice,
		Intent:        w.intent,
		Availability:  booking.AvailabilityUnknown,
	}
	if w.draft == nil {
		return v
	}

	v.Unit = w.draft.Unit()
	v.Start = w.draft.Start()
	v.End = w.draft.End()
	if stay, err := booking.NewDateRange(v.Start, v.End); err == nil {
		v.Nights = stay.Nights()
	}
	v.Guests = w.draft.Guests()
	v.SpecialRequests = w.draft.SpecialRequests()
	v.Holiday = w.draft.Holiday()
	v.Availability = w.draft.Availability()
	if q, ok := w.draft.Quote(); ok {
		v.Quote = &q
	}
	v.CanCheck = !w.closed && (w.state == StateReady || w.state == StateChecking)
	v.CanSubmit = !w.closed && w.state == StateQuoted && v.Quote != nil
	return v
}
