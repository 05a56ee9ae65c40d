package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"stay-client/internal/domain/booking"
	"stay-client/internal/pkg/errs"
	"stay-client/internal/pkg/session"
)

type ReservationCommands interface {
	Cancel(ctx context.Context, sess session.Session, id string) (*booking.Reservation, error)
}

type reservationCommandsImpl struct {
	gateway ReservationGateway
	logger  *slog.Logger
}

func NewReservationCommands(gateway ReservationGateway, logger *slog.Logger) ReservationCommands {
	return &reservationCommandsImpl{gateway: gateway, logger: logger}
}

// Cancel refuses locally when the reservation already started or ended, so
// the API is only asked for cancellations it can grant.
func (r *reservationCommandsImpl) Cancel(ctx context.Context, sess session.Session, id string) (*booking.Reservation, error) {
	current, err := r.gateway.GetReservation(ctx, sess, id)
	if err != nil {
		return nil, classify(err)
	}
	if !current.Cancelable() {
		return nil, errs.Mark(errs.Newf("reservation %s is %s", id, current.Status), ErrNotCancelable)
	}

	canceled, err := r.gateway.CancelReservation(ctx, sess, id)
	if err != nil {
		return nil, classify(err)
	}

	r.logger.Info("reservation canceled", "reservation_id", id, "code", canceled.Code)
	return canceled, nil
}
