package billing

import (
	"strings"

	"stay-client/internal/domain/booking"
)

const simulatedIntentPrefix = "pi_test_"

type PaymentIntent struct {
	ID            string
	ClientSecret  string
	Amount        booking.Money
	InvoiceID     string
	InvoiceNumber string
	InvoiceTotal  booking.Money
	Outstanding   booking.Money
}

// Simulated intents are settled by this client without a card processor.
func (p *PaymentIntent) Simulated() bool {
	return IsSimulatedIntent(p.ID)
}

func IsSimulatedIntent(id string) bool {
	return strings.HasPrefix(id, simulatedIntentPrefix)
}

type PaymentConfirmation struct {
	Invoice  *Invoice
	IntentID string
	Amount   booking.Money
	Status   string
}
