package api

import (
	"context"
	"net/http"

	"stay-client/internal/domain/billing"
	"stay-client/internal/pkg/session"
)

func (c *Client) CreatePaymentIntent(ctx context.Context, sess session.Session, invoiceID string) (*billing.PaymentIntent, error) {
	body := map[string]string{"facturaId": invoiceID}

	var dto paymentIntentDTO
	if err := c.do(ctx, sess, call{method: http.MethodPost, path: "/pagos/crear-intencion", body: body}, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}

func (c *Client) ConfirmPayment(ctx context.Context, sess session.Session, intentID, invoiceID string) (*billing.PaymentConfirmation, error) {
	body := map[string]string{
		"paymentIntentId": intentID,
		"facturaId":       invoiceID,
	}

	var dto paymentConfirmationDTO
	if err := c.do(ctx, sess, call{method: http.MethodPost, path: "/pagos/confirmar", body: body}, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}
