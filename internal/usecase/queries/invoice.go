package queries

//go:generate mockgen -source=invoice.go -destination=../../../tests/mock/queries/invoice_mock.go -package=queriesmock

import (
	"context"
	"strings"

	"stay-client/internal/domain/billing"
	"stay-client/internal/pkg/errs"
	"stay-client/internal/pkg/session"
)

type InvoiceDocument struct {
	Filename string
	Content  []byte
}

type InvoiceQueries interface {
	ListMine(ctx context.Context, sess session.Session) ([]*billing.Invoice, error)
	Get(ctx context.Context, sess session.Session, id string) (*billing.Invoice, error)
	DownloadPDF(ctx context.Context, sess session.Session, id string) (*InvoiceDocument, error)
}

type invoiceQueriesImpl struct {
	reader InvoiceReader
}

func NewInvoiceQueries(reader InvoiceReader) InvoiceQueries {
	return &invoiceQueriesImpl{reader: reader}
}

func (q *invoiceQueriesImpl) ListMine(ctx context.Context, sess session.Session) ([]*billing.Invoice, error) {
	rows, err := q.reader.ListMyInvoices(ctx, sess)
	if err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

func (q *invoiceQueriesImpl) Get(ctx context.Context, sess session.Session, id string) (*billing.Invoice, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrNotFound
	}
	inv, err := q.reader.GetInvoice(ctx, sess, id)
	if err != nil {
		return nil, classify(err)
	}
	return inv, nil
}

// DownloadPDF names the file after the invoice number, so the invoice is
// fetched before the document.
func (q *invoiceQueriesImpl) DownloadPDF(ctx context.Context, sess session.Session, id string) (*InvoiceDocument, error) {
	inv, err := q.Get(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	content, err := q.reader.DownloadInvoicePDF(ctx, sess, id)
	if err != nil {
		return nil, classify(err)
	}
	if len(content) == 0 {
		return nil, errs.Mark(errs.Newf("empty document for invoice %s", id), ErrUpstreamFailed)
	}
	return &InvoiceDocument{Filename: inv.PDFFilename(), Content: content}, nil
}
