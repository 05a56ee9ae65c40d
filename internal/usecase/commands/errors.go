package commands

import (
	"stay-client/internal/infra"
	"stay-client/internal/pkg/errs"
)

var (
	ErrNotFound            = errs.New("resource not found")
	ErrAuthRequired        = errs.New("authentication required")
	ErrUpstreamFailed      = errs.New("upstream request failed")
	ErrRejected            = errs.New("request rejected by upstream")
	ErrNotCancelable       = errs.New("reservation can no longer be canceled")
	ErrNothingToPay        = errs.New("invoice has no outstanding balance")
	ErrInvalidCard         = errs.New("invalid card data")
	ErrPaymentDeclined     = errs.New("payment declined")
	ErrProviderUnavailable = errs.New("card processor not available")
	ErrInvalidCredentials  = errs.New("invalid credentials")
	ErrInvalidAccountData  = errs.New("invalid account data")
)

func classify(err error) error {
	if err == nil {
		return nil
	}
	kind, _ := infra.KindOf(err)
	switch kind {
	case infra.KindNotFound:
		return errs.Mark(err, ErrNotFound)
	case infra.KindUnauthorized:
		return errs.Mark(err, ErrAuthRequired)
	case infra.KindValidation, infra.KindConflict:
		return errs.Mark(err, ErrRejected)
	default:
		return errs.Mark(err, ErrUpstreamFailed)
	}
}
