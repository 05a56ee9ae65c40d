package request

import (
	"stay-client/internal/domain/billing"
	"stay-client/internal/usecase/commands"
)

type CardRequest struct {
	Number string `json:"number" binding:"required"`
	Expiry string `json:"expiry" binding:"required"`
	CVV    string `json:"cvv" binding:"required"`
}

type ConfirmPaymentRequest struct {
	InvoiceID       string      `json:"invoiceId" binding:"required"`
	PaymentIntentID string      `json:"paymentIntentId" binding:"required"`
	Card            CardRequest `json:"card" binding:"required"`
}

func (r *ConfirmPaymentRequest) ToInput() commands.PayInput {
	return commands.PayInput{
		InvoiceID: r.InvoiceID,
		IntentID:  r.PaymentIntentID,
		Card:      billing.NewCard(r.Card.Number, r.Card.Expiry, r.Card.CVV),
	}
}
