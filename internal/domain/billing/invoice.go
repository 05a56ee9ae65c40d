package billing

import (
	"fmt"
	"strings"
	"time"

	"stay-client/internal/domain/booking"
)

type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pendiente"
	InvoicePaid    InvoiceStatus = "pagada"
	InvoicePartial InvoiceStatus = "parcial"
	InvoiceVoided  InvoiceStatus = "anulada"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

type Payment struct {
	Date      time.Time
	Amount    booking.Money
	Method    string
	Reference string
}

type Damage struct {
	Description string
	Amount      booking.Money
	Date        time.Time
}

type Invoice struct {
	ID                    string
	Number                string
	ReservationID         string
	ReservationCode       string
	IssuedAt              time.Time
	Subtotal              booking.Money
	FrequentGuestDiscount booking.Money
	OtherDiscounts        booking.Money
	Tax                   booking.Money
	HolidaySurcharge      booking.Money
	OtherSurcharges       booking.Money
	Damages               []Damage
	DamagesTotal          booking.Money
	Total                 booking.Money
	Status                InvoiceStatus
	PaymentMethod         string
	Payments              []Payment
	Notes                 string
}

func (i *Invoice) Paid() booking.Money {
	var sum booking.Money
	for _, p := range i.Payments {
		sum = sum.Add(p.Amount)
	}
	return sum
}

func (i *Invoice) Outstanding() booking.Money {
	rest := i.Total.Sub(i.Paid())
	if rest < 0 {
		return 0
	}
	return rest
}

func (i *Invoice) Payable() bool {
	if i.Status != InvoicePending && i.Status != InvoicePartial {
		return false
	}
	return i.Outstanding() > 0
}

func (i *Invoice) PDFFilename() string {
	name := strings.TrimSpace(i.Number)
	if name == "" {
		name = i.ID
	}
	return fmt.Sprintf("invoice-%s.pdf", name)
}
