package api

import (
	"context"
	"net/http"

	"stay-client/internal/domain/booking"
	"stay-client/internal/pkg/ptr"
	"stay-client/internal/pkg/session"
)

func (c *Client) CreateReservation(ctx context.Context, sess session.Session, req booking.ReservationRequest) (*booking.Reservation, error) {
	body := createReservationBody{
		DepartamentoID:        req.UnitID,
		FechaInicio:           req.Stay.StartDate(),
		FechaFin:              req.Stay.EndDate(),
		NumeroHuespedes:       req.Guests,
		SolicitudesEspeciales: ptr.NonEmpty(req.SpecialRequests),
		EsFeriado:             req.Holiday,
		NumeroNoches:          req.Quote.Nights,
		PrecioNoche:           req.Quote.NightlyRate.Float(),
		Subtotal:              req.Quote.Subtotal.Float(),
		IVA:                   req.Quote.Tax.Float(),
		RecargoPorcentaje:     req.Quote.SurchargeRate.Percent(),
		RecargoFeriado:        req.Quote.Surcharge.Float(),
		Total:                 req.Quote.Total.Float(),
	}

	headers := map[string]string{}
	if req.IdempotencyKey != "" {
		headers[headerIdempotencyKey] = req.IdempotencyKey
	}

	var dto reservationDTO
	if err := c.do(ctx, sess, call{method: http.MethodPost, path: "/reservas", body: body, headers: headers}, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}

func (c *Client) ListMyReservations(ctx context.Context, sess session.Session) ([]*booking.Reservation, error) {
	var dtos []reservationDTO
	if err := c.do(ctx, sess, call{method: http.MethodGet, path: "/reservas/mis-reservas"}, &dtos); err != nil {
		return nil, err
	}
	out := make([]*booking.Reservation, len(dtos))
	for i, dto := range dtos {
		out[i] = dto.toDomain()
	}
	return out, nil
}

func (c *Client) GetReservation(ctx context.Context, sess session.Session, id string) (*booking.Reservation, error) {
	var dto reservationDTO
	if err := c.do(ctx, sess, call{method: http.MethodGet, path: "/reservas/" + escape(id)}, &dto); err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}

func (c *Client) CancelReservation(ctx context.Context, sess session.Session, id string) (*booking.Reservation, error) {
	var dto reservationDTO
	err := c.do(ctx, sess, call{method: http.MethodPut, path: "/reservas/" + escape(id) + "/cancelar", body: struct{}{}}, &dto)
	if err != nil {
		return nil, err
	}
	return dto.toDomain(), nil
}
