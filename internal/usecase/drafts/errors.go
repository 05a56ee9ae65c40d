package drafts

import (
	"context"
	"errors"
	"fmt"

	"stay-client/internal/domain/booking"
	"stay-client/internal/infra"
	"stay-client/internal/pkg/errs"
)

var (
	ErrValidation              = errors.New("draft validation failed")
	ErrUnitNotFound            = errors.New("unit not found")
	ErrLoadFailed              = errors.New("unit could not be loaded")
	ErrAvailabilityCheckFailed = errors.New("availability check failed")
	ErrUnavailable             = errors.New("unit unavailable for the requested dates")
	ErrSubmissionConflict      = errors.New("requested dates were taken before submission")
	ErrSubmissionFailed        = errors.New("reservation submission failed")
	ErrAuthRequired            = errors.New("authentication required")
	ErrStaleResponse           = errors.New("response belongs to an outdated draft")
	ErrSubmissionInFlight      = errors.New("a submission is already in flight")
	ErrNotQuoted               = errors.New("draft has no current quote")
	ErrInvalidTransition       = errors.New("action not allowed in current state")
	ErrDraftClosed             = errors.New("draft is closed")
	ErrDraftNotFound           = errors.New("draft not found")
)

// User-visible notices. Upstream messages are logged, never shown.
const (
	noticeUnitNotFound   = "The selected unit could not be found."
	noticeLoadFailed     = "The unit could not be loaded. Please try again."
	noticeLoginRequired  = "Your session has expired. Please sign in again."
	noticeUnavailable    = "The unit is not available for the selected dates."
	noticeCheckFailed    = "Availability could not be verified. Please try again."
	noticeConflict       = "Those dates were just taken. Please check availability again."
	noticeSubmitFailed   = "The reservation could not be created. Please try again."
	noticeSubmitRejected = "The reservation was rejected. Please review the details and try again."
	noticeInvalidInput   = "Please review the reservation details."
)

func validationNotice(err error, capacity int) string {
	switch {
	case errs.Is(err, booking.ErrInvalidRange):
		return "Check-out date must be after check-in date."
	case errs.Is(err, booking.ErrInvalidGuestCount):
		return "At least one guest is required."
	case errs.Is(err, booking.ErrOccupancyExceeded):
		return fmt.Sprintf("This unit allows at most %d guests.", capacity)
	default:
		return noticeInvalidInput
	}
}

func isAuthFailure(err error) bool {
	return errs.Is(err, ErrAuthRequired) || infra.IsKind(err, infra.KindUnauthorized)
}

func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
