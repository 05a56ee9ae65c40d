package response

import (
	"stay-client/internal/domain/booking"
	"stay-client/internal/usecase/drafts"
)

type QuoteResponse struct {
	Nights           int           `json:"nights"`
	NightlyRate      booking.Money `json:"nightlyRate"`
	Subtotal         booking.Money `json:"subtotal"`
	TaxPercent       float64       `json:"taxPercent"`
	Tax              booking.Money `json:"tax"`
	SurchargePercent float64       `json:"surchargePercent"`
	Surcharge        booking.Money `json:"surcharge"`
	Total            booking.Money `json:"total"`
}

func FromQuote(q *booking.Quote) *QuoteResponse {
	if q == nil {
		return nil
	}
	return &QuoteResponse{
		Nights:           q.Nights,
		NightlyRate:      q.NightlyRate,
		Subtotal:         q.Subtotal,
		TaxPercent:       q.TaxRate.Percent(),
		Tax:              q.Tax,
		SurchargePercent: q.SurchargeRate.Percent(),
		Surcharge:        q.Surcharge,
		Total:            q.Total,
	}
}

type IntentResponse struct {
	Kind     string `json:"kind"`
	UnitID   string `json:"unitId,omitempty"`
	ReturnTo string `json:"returnTo,omitempty"`
}

type DraftResponse struct {
	ID              string               `json:"id"`
	Version         uint64               `json:"version"`
	State           string               `json:"state"`
	FailureReason   string               `json:"failureReason,omitempty"`
	Unit            *UnitResponse        `json:"unit,omitempty"`
	StartDate       string               `json:"startDate,omitempty"`
	EndDate         string               `json:"endDate,omitempty"`
	Nights          int                  `json:"nights"`
	Guests          int                  `json:"guests"`
	SpecialRequests string               `json:"specialRequests"`
	Holiday         bool                 `json:"holiday"`
	Availability    string               `json:"availability"`
	Quote           *QuoteResponse       `json:"quote,omitempty"`
	Reservation     *ReservationResponse `json:"reservation,omitempty"`
	Notice          string               `json:"notice,omitempty"`
	Next            *IntentResponse      `json:"next,omitempty"`
	CanCheck        bool                 `json:"canCheck"`
	CanSubmit       bool                 `json:"canSubmit"`
}

func FromDraftView(v drafts.View) *DraftResponse {
	res := &DraftResponse{
		ID:              v.DraftID,
		Version:         v.Version,
		State:           string(v.State),
		FailureReason:   string(v.FailureReason),
		Unit:            FromUnit(v.Unit),
		Nights:          v.Nights,
		Guests:          v.Guests,
		SpecialRequests: v.SpecialRequests,
		Holiday:         v.Holiday,
		Availability:    string(v.Availability),
		Quote:           FromQuote(v.Quote),
		Reservation:     FromReservation(v.Reservation),
		Notice:          v.Notice,
		CanCheck:        v.CanCheck,
		CanSubmit:       v.CanSubmit,
	}
	if !v.Start.IsZero() {
		res.StartDate = v.Start.Format(booking.DateLayout)
	}
	if !v.End.IsZero() {
		res.EndDate = v.End.Format(booking.DateLayout)
	}
	if !v.Intent.IsZero() {
		res.Next = &IntentResponse{
			Kind:     string(v.Intent.Kind),
			UnitID:   v.Intent.UnitID,
			ReturnTo: v.Intent.ReturnTo,
		}
	}
	return res
}
