package request

import (
	"time"

	"stay-client/internal/domain/booking"
	"stay-client/internal/pkg/errs"
)

type OpenDraftRequest struct {
	UnitID string `json:"unitId" binding:"required"`
}

// DraftInputRequest only checks shape. Range ordering and guest limits are
// the workflow's to report, so they come back with the draft's notice.
type DraftInputRequest struct {
	StartDate       string `json:"startDate" binding:"required"`
	EndDate         string `json:"endDate" binding:"required"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"specialRequests" binding:"max=500"`
	Holiday         bool   `json:"holiday"`
}

func (r *DraftInputRequest) ToDomain() (booking.DraftInput, error) {
	start, err := time.Parse(booking.DateLayout, r.StartDate)
	if err != nil {
		return booking.DraftInput{}, errs.Wrapf(err, "startDate must be %s", booking.DateLayout)
	}
	end, err := time.Parse(booking.DateLayout, r.EndDate)
	if err != nil {
		return booking.DraftInput{}, errs.Wrapf(err, "endDate must be %s", booking.DateLayout)
	}
	return booking.DraftInput{
		Start:           start,
		End:             end,
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
		Holiday:         r.Holiday,
	}, nil
}
