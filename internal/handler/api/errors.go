package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stay-client/internal/domain/account"
	resdto "stay-client/internal/handler/dto/response"
	"stay-client/internal/handler/httperr"
	"stay-client/internal/pkg/errs"
	"stay-client/internal/usecase/commands"
	"stay-client/internal/usecase/drafts"
	"stay-client/internal/usecase/queries"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// Earlier entries win. A missing unit is also marked as a load failure.
var draftErrors = []errorMapping{
	{drafts.ErrDraftNotFound, http.StatusNotFound, "Draft not found"},
	{drafts.ErrDraftClosed, http.StatusNotFound, "Draft is closed"},
	{drafts.ErrAuthRequired, http.StatusUnauthorized, "Authentication required"},
	{drafts.ErrUnitNotFound, http.StatusNotFound, "Unit not found"},
	{drafts.ErrLoadFailed, http.StatusBadGateway, "Unit could not be loaded"},
	{drafts.ErrValidation, http.StatusUnprocessableEntity, "Invalid reservation details"},
	{drafts.ErrSubmissionConflict, http.StatusConflict, "Dates no longer available"},
	{drafts.ErrSubmissionInFlight, http.StatusConflict, "Submission already in progress"},
	{drafts.ErrNotQuoted, http.StatusConflict, "Draft has no current quote"},
	{drafts.ErrInvalidTransition, http.StatusConflict, "Action not allowed in current state"},
	{drafts.ErrStaleResponse, http.StatusConflict, "Draft changed during the request"},
	{drafts.ErrAvailabilityCheckFailed, http.StatusBadGateway, "Availability check failed"},
	{drafts.ErrSubmissionFailed, http.StatusBadGateway, "Reservation could not be created"},
}

var queryErrors = []errorMapping{
	{queries.ErrNotFound, http.StatusNotFound, "Not found"},
	{queries.ErrAuthRequired, http.StatusUnauthorized, "Authentication required"},
	{queries.ErrUpstreamFailed, http.StatusBadGateway, "Upstream request failed"},
}

var commandErrors = []errorMapping{
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrNotFound, http.StatusNotFound, "Not found"},
	{commands.ErrAuthRequired, http.StatusUnauthorized, "Authentication required"},
	{commands.ErrNotCancelable, http.StatusConflict, "Reservation can no longer be canceled"},
	{commands.ErrNothingToPay, http.StatusConflict, "Invoice has no outstanding balance"},
	{commands.ErrInvalidCard, http.StatusUnprocessableEntity, "Invalid card data"},
	{commands.ErrPaymentDeclined, http.StatusPaymentRequired, "Payment declined"},
	{commands.ErrProviderUnavailable, http.StatusNotImplemented, "Card processor not available"},
	{commands.ErrRejected, http.StatusUnprocessableEntity, "Request rejected"},
	{commands.ErrUpstreamFailed, http.StatusBadGateway, "Upstream request failed"},
}

// accountErrors name the rule a form broke before falling back to the
// generic command errors.
var accountErrors = append([]errorMapping{
	{account.ErrIncompleteRegistration, http.StatusUnprocessableEntity, "Required fields are missing"},
	{account.ErrInvalidEmail, http.StatusUnprocessableEntity, "Invalid email address"},
	{account.ErrWeakPassword, http.StatusUnprocessableEntity, "Password must have at least 6 characters"},
	{account.ErrSamePassword, http.StatusUnprocessableEntity, "New password must differ from the current one"},
	{account.ErrMissingPassword, http.StatusUnprocessableEntity, "Current password is required"},
	{account.ErrInvalidNationalID, http.StatusUnprocessableEntity, "National id must have 10 digits"},
	{account.ErrInvalidPhone, http.StatusUnprocessableEntity, "Phone must have 10 digits"},
	{account.ErrUnderage, http.StatusUnprocessableEntity, "You must be at least 18 years old"},
	{account.ErrEmptyProfileUpdate, http.StatusUnprocessableEntity, "Nothing to update"},
	{account.ErrInvalidPhoto, http.StatusUnprocessableEntity, "Photo must be an image up to 5MB"},
	{commands.ErrInvalidAccountData, http.StatusUnprocessableEntity, "Invalid account data"},
}, commandErrors...)

func abortMapped(c *gin.Context, err error, table []errorMapping, detail any) {
	for _, m := range table {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, detail)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", detail)
}

// abortDraft reports a workflow error with the draft as it stands, so the
// client can re-render notice and next step from the error body.
func abortDraft(c *gin.Context, err error, view drafts.View) {
	var detail any
	if view.DraftID != "" {
		detail = resdto.FromDraftView(view)
	}
	abortMapped(c, err, draftErrors, detail)
}
