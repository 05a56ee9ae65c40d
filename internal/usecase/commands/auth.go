package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

import (
	"context"
	"strings"

	"stay-client/internal/domain/account"
	"stay-client/internal/pkg/clock"
	"stay-client/internal/pkg/errs"
)

type AuthCommands interface {
	Login(ctx context.Context, email, password string) (*account.LoginOutcome, error)
	VerifyTwoFactor(ctx context.Context, userID, code string) (*account.LoginOutcome, error)
	Register(ctx context.Context, reg account.Registration) (*account.LoginOutcome, error)
}

type authCommandsImpl struct {
	auth  Authenticator
	clock clock.Clock
}

func NewAuthCommands(auth Authenticator, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{auth: auth, clock: clock}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, password string) (*account.LoginOutcome, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	outcome, err := a.auth.Login(ctx, email, password)
	return outcome, credentialErr(err)
}

func (a *authCommandsImpl) VerifyTwoFactor(ctx context.Context, userID, code string) (*account.LoginOutcome, error) {
	code = strings.TrimSpace(code)
	if userID == "" || code == "" {
		return nil, ErrInvalidCredentials
	}
	outcome, err := a.auth.VerifyTwoFactor(ctx, userID, code)
	return outcome, credentialErr(err)
}

// Register checks the form locally first; the API answers a taken email or
// username with a rejection.
func (a *authCommandsImpl) Register(ctx context.Context, reg account.Registration) (*account.LoginOutcome, error) {
	reg = reg.Normalize()
	if err := reg.Validate(a.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrInvalidAccountData)
	}
	outcome, err := a.auth.Register(ctx, reg)
	if err != nil {
		return nil, classify(err)
	}
	return outcome, nil
}

// Rejected logins all look the same to the caller so accounts cannot be
// enumerated.
func credentialErr(err error) error {
	if err == nil {
		return nil
	}
	classified := classify(err)
	if errs.Is(classified, ErrAuthRequired) || errs.Is(classified, ErrRejected) || errs.Is(classified, ErrNotFound) {
		return errs.Mark(err, ErrInvalidCredentials)
	}
	return classified
}
