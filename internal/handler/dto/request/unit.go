package request

import (
	"stay-client/internal/domain/booking"
)

type UnitListQuery struct {
	Kind      string  `form:"kind"`
	MinGuests int     `form:"guests" binding:"omitempty,min=1"`
	MaxRate   float64 `form:"maxRate" binding:"omitempty,gt=0"`
	Status    string  `form:"status" binding:"omitempty,oneof=disponible ocupado mantenimiento reservado"`
}

func (q *UnitListQuery) ToDomain() booking.UnitFilter {
	return booking.UnitFilter{
		Kind:      q.Kind,
		MinGuests: q.MinGuests,
		MaxRate:   booking.MoneyFromFloat(q.MaxRate),
		Status:    booking.UnitStatus(q.Status),
	}
}
