//go:build unit

package billing_test

import (
	"testing"
	"time"

	"stay-client/internal/domain/billing"
	"stay-client/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardValidate(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		number string
		expiry string
		cvv    string
		errIs  error
	}{
		{name: "valid with spaces", number: "4242 4242 4242 4242", expiry: "12/26", cvv: "123"},
		{name: "expires this month", number: "4242424242424242", expiry: "06/24", cvv: "123"},
		{name: "four digit cvv", number: "378282246310005", expiry: "01/30", cvv: "1234"},
		{name: "short number", number: "4242 4242 42", expiry: "12/26", cvv: "123", errIs: billing.ErrInvalidCardNumber},
		{name: "letters in number", number: "4242x42424242424", expiry: "12/26", cvv: "123", errIs: billing.ErrInvalidCardNumber},
		{name: "missing expiry", number: "4242424242424242", expiry: "", cvv: "123", errIs: billing.ErrInvalidExpiry},
		{name: "bad month", number: "4242424242424242", expiry: "13/26", cvv: "123", errIs: billing.ErrInvalidExpiry},
		{name: "short cvv", number: "4242424242424242", expiry: "12/26", cvv: "12", errIs: billing.ErrInvalidCVV},
		{name: "expired last month", number: "4242424242424242", expiry: "05/24", cvv: "123", errIs: billing.ErrCardExpired},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := billing.NewCard(c.number, c.expiry, c.cvv).Validate(now)
			if c.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestSimulateIssuer(t *testing.T) {
	cases := map[string]error{
		billing.TestCardSuccess:           nil,
		"5555555555554444":                nil,
		billing.TestCardDeclined:          billing.ErrCardDeclined,
		billing.TestCardInsufficientFunds: billing.ErrInsufficientFunds,
		billing.TestCardExpired:           billing.ErrCardExpired,
		billing.TestCardIncorrectCVV:      billing.ErrIncorrectCVV,
	}
	for number, want := range cases {
		err := billing.SimulateIssuer(billing.NewCard(number, "12/30", "123"))
		if want == nil {
			assert.NoError(t, err, number)
		} else {
			assert.ErrorIs(t, err, want, number)
		}
	}
	assert.Equal(t, "4242", billing.NewCard("4242 4242 4242 4242", "", "").Last4())
}

func TestInvoiceBalance(t *testing.T) {
	inv := &billing.Invoice{
		ID:     "f1",
		Number: "FAC-0001",
		Total:  booking.MoneyFromFloat(224),
		Status: billing.InvoicePartial,
		Payments: []billing.Payment{
			{Amount: booking.MoneyFromFloat(100)},
			{Amount: booking.MoneyFromFloat(24)},
		},
	}

	assert.Equal(t, booking.MoneyFromFloat(124), inv.Paid())
	assert.Equal(t, booking.MoneyFromFloat(100), inv.Outstanding())
	assert.True(t, inv.Payable())
	assert.Equal(t, "invoice-FAC-0001.pdf", inv.PDFFilename())

	inv.Payments = append(inv.Payments, billing.Payment{Amount: booking.MoneyFromFloat(150)})
	assert.Equal(t, booking.Money(0), inv.Outstanding())
	assert.False(t, inv.Payable())

	voided := &billing.Invoice{ID: "f2", Total: 100, Status: billing.InvoiceVoided}
	assert.False(t, voided.Payable())
	assert.Equal(t, "invoice-f2.pdf", voided.PDFFilename())
}
