package commands

//go:generate mockgen -source=account.go -destination=../../../tests/mock/commands/account_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"strings"

	"stay-client/internal/domain/account"
	"stay-client/internal/infra"
	"stay-client/internal/pkg/errs"
	"stay-client/internal/pkg/session"
)

// AccountCommands manage the signed-in user's own account: profile data,
// password, photo and second factor.
type AccountCommands interface {
	Me(ctx context.Context, sess session.Session) (*account.User, error)
	Profile(ctx context.Context, sess session.Session) (*account.User, error)
	UpdateProfile(ctx context.Context, sess session.Session, upd account.ProfileUpdate) (*account.User, error)
	ChangePassword(ctx context.Context, sess session.Session, change account.PasswordChange) error
	ChangePhoto(ctx context.Context, sess session.Session, photo account.Photo) (*account.User, error)
	EnableTwoFactor(ctx context.Context, sess session.Session) (*account.TwoFactorSetup, error)
	ConfirmTwoFactor(ctx context.Context, sess session.Session, code string) error
	DisableTwoFactor(ctx context.Context, sess session.Session, password string) error
}

type accountCommandsImpl struct {
	gateway AccountGateway
	logger  *slog.Logger
}

func NewAccountCommands(gateway AccountGateway, logger *slog.Logger) AccountCommands {
	return &accountCommandsImpl{gateway: gateway, logger: logger}
}

func (a *accountCommandsImpl) Me(ctx context.Context, sess session.Session) (*account.User, error) {
	user, err := a.gateway.Me(ctx, sess)
	if err != nil {
		return nil, classify(err)
	}
	return user, nil
}

func (a *accountCommandsImpl) Profile(ctx context.Context, sess session.Session) (*account.User, error) {
	user, err := a.gateway.GetProfile(ctx, sess)
	if err != nil {
		return nil, classify(err)
	}
	return user, nil
}

func (a *accountCommandsImpl) UpdateProfile(ctx context.Context, sess session.Session, upd account.ProfileUpdate) (*account.User, error) {
	upd = trimUpdate(upd)
	if err := upd.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidAccountData)
	}
	user, err := a.gateway.UpdateProfile(ctx, sess, upd)
	if err != nil {
		return nil, classify(err)
	}
	return user, nil
}

// ChangePassword reports a wrong current password as a rejection, not as a
// lost session.
func (a *accountCommandsImpl) ChangePassword(ctx context.Context, sess session.Session, change account.PasswordChange) error {
	if err := change.Validate(); err != nil {
		return errs.Mark(err, ErrInvalidAccountData)
	}
	if err := a.gateway.ChangePassword(ctx, sess, change); err != nil {
		return passwordErr(err)
	}
	a.logger.Info("password changed", "user_id", sess.Subject())
	return nil
}

func (a *accountCommandsImpl) ChangePhoto(ctx context.Context, sess session.Session, photo account.Photo) (*account.User, error) {
	if err := photo.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidAccountData)
	}
	user, err := a.gateway.ChangePhoto(ctx, sess, photo)
	if err != nil {
		return nil, classify(err)
	}
	return user, nil
}

func (a *accountCommandsImpl) EnableTwoFactor(ctx context.Context, sess session.Session) (*account.TwoFactorSetup, error) {
	setup, err := a.gateway.EnableTwoFactor(ctx, sess)
	if err != nil {
		return nil, classify(err)
	}
	return setup, nil
}

func (a *accountCommandsImpl) ConfirmTwoFactor(ctx context.Context, sess session.Session, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.Mark(errs.New("empty verification code"), ErrInvalidAccountData)
	}
	if err := a.gateway.ConfirmTwoFactor(ctx, sess, code); err != nil {
		return classify(err)
	}
	a.logger.Info("two-factor enabled", "user_id", sess.Subject())
	return nil
}

func (a *accountCommandsImpl) DisableTwoFactor(ctx context.Context, sess session.Session, password string) error {
	if password == "" {
		return errs.Mark(account.ErrMissingPassword, ErrInvalidAccountData)
	}
	if err := a.gateway.DisableTwoFactor(ctx, sess, password); err != nil {
		return passwordErr(err)
	}
	a.logger.Info("two-factor disabled", "user_id", sess.Subject())
	return nil
}

// The session was checked locally before these calls, so a 401 means the
// password did not match.
func passwordErr(err error) error {
	if kind, _ := infra.KindOf(err); kind == infra.KindUnauthorized {
		return errs.Mark(err, ErrRejected)
	}
	return classify(err)
}

func trimUpdate(upd account.ProfileUpdate) account.ProfileUpdate {
	for _, f := range []**string{&upd.FirstName, &upd.LastName, &upd.Phone, &upd.Address} {
		if *f != nil {
			v := strings.TrimSpace(**f)
			*f = &v
		}
	}
	return upd
}
