package queries

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock

import (
	"context"
	"sort"
	"strings"

	"stay-client/internal/domain/booking"
	"stay-client/internal/pkg/session"
)

type ReservationQueries interface {
	ListMine(ctx context.Context, sess session.Session) ([]*booking.Reservation, error)
	Get(ctx context.Context, sess session.Session, id string) (*booking.Reservation, error)
}

type reservationQueriesImpl struct {
	reader ReservationReader
}

func NewReservationQueries(reader ReservationReader) ReservationQueries {
	return &reservationQueriesImpl{reader: reader}
}

// ListMine returns the session's reservations, newest first.
func (q *reservationQueriesImpl) ListMine(ctx context.Context, sess session.Session) ([]*booking.Reservation, error) {
	rows, err := q.reader.ListMyReservations(ctx, sess)
	if err != nil {
		return nil, classify(err)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	return rows, nil
}

func (q *reservationQueriesImpl) Get(ctx context.Context, sess session.Session, id string) (*booking.Reservation, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrNotFound
	}
	res, err := q.reader.GetReservation(ctx, sess, id)
	if err != nil {
		return nil, classify(err)
	}
	return res, nil
}
