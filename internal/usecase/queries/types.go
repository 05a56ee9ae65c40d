package queries

//go:generate mockgen -source=types.go -destination=../../../tests/mock/queries/ports_mock.go -package=queriesmock

import (
	"context"
	"errors"

	"stay-client/internal/domain/billing"
	"stay-client/internal/domain/booking"
	"stay-client/internal/infra"
	"stay-client/internal/pkg/errs"
	"stay-client/internal/pkg/session"
)

var (
	ErrNotFound       = errors.New("resource not found")
	ErrAuthRequired   = errors.New("authentication required")
	ErrUpstreamFailed = errors.New("upstream request failed")
)

type UnitReader interface {
	GetUnit(ctx context.Context, sess session.Session, id string) (*booking.Unit, error)
	ListUnits(ctx context.Context, sess session.Session, filter booking.UnitFilter) ([]*booking.Unit, error)
}

type ReservationReader interface {
	ListMyReservations(ctx context.Context, sess session.Session) ([]*booking.Reservation, error)
	GetReservation(ctx context.Context, sess session.Session, id string) (*booking.Reservation, error)
}

type InvoiceReader interface {
	ListMyInvoices(ctx context.Context, sess session.Session) ([]*billing.Invoice, error)
	GetInvoice(ctx context.Context, sess session.Session, id string) (*billing.Invoice, error)
	DownloadInvoicePDF(ctx context.Context, sess session.Session, id string) ([]byte, error)
}

// classify marks a remote failure with the query-side sentinel the handlers
// map to a status code.
func classify(err error) error {
	if err == nil {
		return nil
	}
	kind, _ := infra.KindOf(err)
	switch kind {
	case infra.KindNotFound:
		return errs.Mark(err, ErrNotFound)
	case infra.KindUnauthorized:
		return errs.Mark(err, ErrAuthRequired)
	default:
		return errs.Mark(err, ErrUpstreamFailed)
	}
}
