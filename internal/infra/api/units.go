package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"stay-client/internal/domain/booking"
	"stay-client/internal/infra"
	"stay-client/internal/pkg/session"
)

func (c *Client) GetUnit(ctx context.Context, sess session.Session, id string) (*booking.Unit, error) {
	var dto unitDTO
	if err := c.do(ctx, sess, call{method: http.MethodGet, path: "/departamentos/" + escape(id)}, &dto); err != nil {
		return nil, err
	}
	unit, err := dto.toDomain()
	if err != nil {
		return nil, infra.WrapRemoteErr(c.logger, infra.KindDecode, http.StatusOK, "unit "+id+" is not bookable", err)
	}
	return unit, nil
}

// ListUnits skips entries the API returns without a usable rate or capacity.
func (c *Client) ListUnits(ctx context.Context, sess session.Session, filter booking.UnitFilter) ([]*booking.Unit, error) {
	query := url.Values{}
	if filter.Kind != "" {
		query.Set("tipo", filter.Kind)
	}
	if filter.MinGuests > 0 {
		query.Set("capacidadPersonas", strconv.Itoa(filter.MinGuests))
	}
	if filter.MaxRate > 0 {
		query.Set("precioMax", filter.MaxRate.String())
	}
	if filter.Status != "" {
		query.Set("estado", string(filter.Status))
	}

	var dtos []unitDTO
	if err := c.do(ctx, sess, call{method: http.MethodGet, path: "/departamentos", query: query}, &dtos); err != nil {
		return nil, err
	}

	units := make([]*booking.Unit, 0, len(dtos))
	for _, dto := range dtos {
		unit, err := dto.toDomain()
		if err != nil {
			c.logger.Warn("skipping unit with invalid data", "unit_id", nonEmpty(dto.ID, dto.MongoID), "error", err)
			continue
		}
		units = append(units, unit)
	}
	return units, nil
}

func (c *Client) CheckAvailability(ctx context.Context, sess session.Session, unitID string, stay booking.DateRange) (bool, error) {
	query := url.Values{}
	query.Set("fechaInicio", stay.StartDate())
	query.Set("fechaFin", stay.EndDate())

	var dto availabilityDTO
	err := c.do(ctx, sess, call{
		method: http.MethodGet,
		path:   "/departamentos/" + escape(unitID) + "/disponibilidad",
		query:  query,
	}, &dto)
	if err != nil {
		return false, err
	}
	return dto.Disponible, nil
}
