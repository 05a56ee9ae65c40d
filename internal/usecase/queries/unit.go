package queries

//go:generate mockgen -source=unit.go -destination=../../../tests/mock/queries/unit_mock.go -package=queriesmock

import (
	"context"
	"strings"

	"stay-client/internal/domain/booking"
	"stay-client/internal/pkg/session"
)

type UnitQueries interface {
	List(ctx context.Context, sess session.Session, filter booking.UnitFilter) ([]*booking.Unit, error)
	Get(ctx context.Context, sess session.Session, id string) (*booking.Unit, error)
}

type unitQueriesImpl struct {
	reader UnitReader
}

func NewUnitQueries(reader UnitReader) UnitQueries {
	return &unitQueriesImpl{reader: reader}
}

func (q *unitQueriesImpl) List(ctx context.Context, sess session.Session, filter booking.UnitFilter) ([]*booking.Unit, error) {
	units, err := q.reader.ListUnits(ctx, sess, filter)
	if err != nil {
		return nil, classify(err)
	}
	// The API filters server-side; repeat the capacity filter since some
	// deployments ignore it.
	if filter.MinGuests > 0 {
		kept := units[:0]
		for _, u := range units {
			if u.MaxOccupancy() >= filter.MinGuests {
				kept = append(kept, u)
			}
		}
		units = kept
	}
	return units, nil
}

func (q *unitQueriesImpl) Get(ctx context.Context, sess session.Session, id string) (*booking.Unit, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrNotFound
	}
	unit, err := q.reader.GetUnit(ctx, sess, id)
	if err != nil {
		return nil, classify(err)
	}
	return unit, nil
}
