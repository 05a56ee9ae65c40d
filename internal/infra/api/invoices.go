package api

import (
	"context"
	"net/http"

	"stay-client/internal/domain/billing"
	"stay-client/internal/pkg/session"
)

func (c *Client) ListMyInvoices(ctx context.Context, sess session.Session) ([]*billing.Invoice, error) {
	var dtos []invoiceDTO
	if err := c.do(ctx, sess, call{method: http.MethodGet, path: "/facturas/mis-facturas"}, &dtos); err != nil {
		return nil, err
	}
	out := make([]*billing.Invoice, len(dtos))
	for i, dto := range dtos {
		out[i] = dto.toDomain()
	}
	return out, nil
}

func (c *Client) GetInvoice(ctx context.Context, sess session.Session, id string) (*billing.Invoice, error) {
	var dto invoiceDTO
	if err := c.do(ctx, sess, call{method: http.MethodGet, path: "/facturas/" + escape(id)}, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}

// DownloadInvoicePDF returns the document bytes as served, without the envelope.
func (c *Client) DownloadInvoicePDF(ctx context.Context, sess session.Session, id string) ([]byte, error) {
	body, _, err := c.send(ctx, sess, call{
		method:  http.MethodGet,
		path:    "/facturas/" + escape(id) + "/pdf",
		headers: map[string]string{"Accept": "application/pdf"},
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}
