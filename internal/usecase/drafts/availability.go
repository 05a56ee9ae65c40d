package drafts

import (
	"context"
	"log/slog"
	"time"

	"stay-client/internal/domain/booking"
	"stay-client/internal/pkg/errs"
	"stay-client/internal/pkg/session"
)

const defaultCheckTimeout = 10 * time.Second

// AvailabilityChecker asks the remote service whether a unit is free. A
// failed or timed-out call is an error, never Unavailable.
type AvailabilityChecker struct {
	svc     AvailabilityService
	timeout time.Duration
	logger  *slog.Logger
}

func NewAvailabilityChecker(svc AvailabilityService, timeout time.Duration, logger *slog.Logger) *AvailabilityChecker {
	if timeout <= 0 {
		timeout = defaultCheckTimeout
	}
	return &AvailabilityChecker{svc: svc, timeout: timeout, logger: logger}
}

func (c *AvailabilityChecker) Check(ctx context.Context, sess session.Session, unitID string, stay booking.DateRange) (booking.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	free, err := c.svc.CheckAvailability(ctx, sess, unitID, stay)
	if err != nil {
		if isAuthFailure(err) {
			return booking.AvailabilityUnknown, errs.Mark(err, ErrAuthRequired)
		}
		if isTimeout(err) || isTimeout(ctx.Err()) {
			c.logger.Warn("availability check timed out", "unit_id", unitID, "stay", stay.String(), "timeout", c.timeout)
		}
		return booking.AvailabilityUnknown, errs.Mark(errs.Wrapf(err, "checking unit %s for %s", unitID, stay), ErrAvailabilityCheckFailed)
	}

	if free {
		return booking.AvailabilityAvailable, nil
	}
	return booking.AvailabilityUnavailable, nil
}
