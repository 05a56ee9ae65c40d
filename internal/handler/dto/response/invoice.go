package response

import (
	"time"

	"github.com/jinzhu/copier"

	"stay-client/internal/domain/billing"
	"stay-client/internal/domain/booking"
)

type DamageResponse struct {
	Description string        `json:"description"`
	Amount      booking.Money `json:"amount"`
	Date        time.Time     `json:"date"`
}

type PaymentResponse struct {
	Date      time.Time     `json:"date"`
	Amount    booking.Money `json:"amount"`
	Method    string        `json:"method"`
	Reference string        `json:"reference,omitempty"`
}

type InvoiceResponse struct {
	ID                    string            `json:"id"`
	Number                string            `json:"number"`
	ReservationID         string            `json:"reservationId"`
	ReservationCode       string            `json:"reservationCode,omitempty"`
	IssuedAt              time.Time         `json:"issuedAt"`
	Subtotal              booking.Money     `json:"subtotal"`
	FrequentGuestDiscount booking.Money     `json:"frequentGuestDiscount"`
	OtherDiscounts        booking.Money     `json:"otherDiscounts"`
	Tax                   booking.Money     `json:"tax"`
	HolidaySurcharge      booking.Money     `json:"holidaySurcharge"`
	OtherSurcharges       booking.Money     `json:"otherSurcharges"`
	Damages               []DamageResponse  `json:"damages"`
	DamagesTotal          booking.Money     `json:"damagesTotal"`
	Total                 booking.Money     `json:"total"`
	Paid                  booking.Money     `json:"paid"`
	Outstanding           booking.Money     `json:"outstanding"`
	Payable               bool              `json:"payable"`
	Status                string            `json:"status"`
	PaymentMethod         string            `json:"paymentMethod,omitempty"`
	Payments              []PaymentResponse `json:"payments"`
	Notes                 string            `json:"notes,omitempty"`
}

// FromInvoice copies fields and the Paid, Outstanding and Payable accessors.
func FromInvoice(inv *billing.Invoice) *InvoiceResponse {
	if inv == nil {
		return nil
	}
	res := &InvoiceResponse{}
	_ = copier.Copy(res, inv)
	if res.Damages == nil {
		res.Damages = []DamageResponse{}
	}
	if res.Payments == nil {
		res.Payments = []PaymentResponse{}
	}
	return res
}

func FromInvoices(items []*billing.Invoice) []*InvoiceResponse {
	res := make([]*InvoiceResponse, len(items))
	for i, inv := range items {
		res[i] = FromInvoice(inv)
	}
	return res
}

type PaymentIntentResponse struct {
	PaymentIntentID string        `json:"paymentIntentId"`
	ClientSecret    string        `json:"clientSecret"`
	Amount          booking.Money `json:"amount"`
	InvoiceID       string        `json:"invoiceId"`
	InvoiceNumber   string        `json:"invoiceNumber"`
	InvoiceTotal    booking.Money `json:"invoiceTotal"`
	Outstanding     booking.Money `json:"outstanding"`
	Simulated       bool          `json:"simulated"`
}

func FromPaymentIntent(p *billing.PaymentIntent) *PaymentIntentResponse {
	res := &PaymentIntentResponse{}
	_ = copier.Copy(res, p)
	res.PaymentIntentID = p.ID
	return res
}

type PaymentConfirmationResponse struct {
	PaymentIntentID string           `json:"paymentIntentId"`
	Amount          booking.Money    `json:"amount"`
	Status          string           `json:"status"`
	Invoice         *InvoiceResponse `json:"invoice,omitempty"`
}

func FromPaymentConfirmation(c *billing.PaymentConfirmation) *PaymentConfirmationResponse {
	return &PaymentConfirmationResponse{
		PaymentIntentID: c.IntentID,
		Amount:          c.Amount,
		Status:          c.Status,
		Invoice:         FromInvoice(c.Invoice),
	}
}
