package response

import (
	"github.com/jinzhu/copier"

	"stay-client/internal/domain/booking"
)

type UnitResponse struct {
	ID           string        `json:"id"`
	Number       string        `json:"number"`
	Kind         string        `json:"kind"`
	Floor        int           `json:"floor"`
	Description  string        `json:"description,omitempty"`
	NightlyRate  booking.Money `json:"nightlyRate"`
	MaxOccupancy int           `json:"maxOccupancy"`
	Beds         int           `json:"beds"`
	Status       string        `json:"status"`
	Images       []string      `json:"images"`
}

// FromUnit reads the unit's accessors into the response fields of the same name.
func FromUnit(u *booking.Unit) *UnitResponse {
	if u == nil {
		return nil
	}
	res := &UnitResponse{}
	_ = copier.Copy(res, u)
	if res.Images == nil {
		res.Images = []string{}
	}
	return res
}

func FromUnits(units []*booking.Unit) []*UnitResponse {
	res := make([]*UnitResponse, len(units))
	for i, u := range units {
		res[i] = FromUnit(u)
	}
	return res
}
