package drafts

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/drafts/ports_mock.go -package=draftsmock

import (
	"context"

	"stay-client/internal/domain/booking"
	"stay-client/internal/pkg/session"
)

type UnitDirectory interface {
	GetUnit(ctx context.Context, sess session.Session, id string) (*booking.Unit, error)
	ListUnits(ctx context.Context, sess session.Session, filter booking.UnitFilter) ([]*booking.Unit, error)
}

type AvailabilityService interface {
	CheckAvailability(ctx context.Context, sess session.Session, unitID string, stay booking.DateRange) (bool, error)
}

type ReservationStore interface {
	CreateReservation(ctx context.Context, sess session.Session, req booking.ReservationRequest) (*booking.Reservation, error)
}

// Navigator receives the workflow's navigation intents. Optional.
type Navigator interface {
	Navigate(intent Intent)
}
