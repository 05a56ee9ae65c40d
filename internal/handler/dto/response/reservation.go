package response

import (
	"time"

	"github.com/jinzhu/copier"

	"stay-client/internal/domain/booking"
)

type ReservationResponse struct {
	ID              string        `json:"id"`
	Code            string        `json:"code"`
	UnitID          string        `json:"unitId"`
	UnitNumber      string        `json:"unitNumber,omitempty"`
	StartDate       string        `json:"startDate"`
	EndDate         string        `json:"endDate"`
	Nights          int           `json:"nights"`
	Guests          int           `json:"guests"`
	NightlyRate     booking.Money `json:"nightlyRate"`
	Subtotal        booking.Money `json:"subtotal"`
	Discount        booking.Money `json:"discount"`
	Tax             booking.Money `json:"tax"`
	Holiday         bool          `json:"holiday"`
	SurchargePct    float64       `json:"surchargePercent"`
	Surcharge       booking.Money `json:"surcharge"`
	Total           booking.Money `json:"total"`
	Status          string        `json:"status"`
	Cancelable      bool          `json:"cancelable"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
}

func FromReservation(r *booking.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}
	res := &ReservationResponse{}
	_ = copier.Copy(res, r)
	if !r.Stay.IsZero() {
		res.StartDate = r.Stay.StartDate()
		res.EndDate = r.Stay.EndDate()
	}
	res.SurchargePct = r.SurchargeRate.Percent()
	return res
}

func FromReservations(items []*booking.Reservation) []*ReservationResponse {
	res := make([]*ReservationResponse, len(items))
	for i, r := range items {
		res[i] = FromReservation(r)
	}
	return res
}
