package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

import (
	"context"

	"stay-client/internal/domain/account"
	"stay-client/internal/domain/billing"
	"stay-client/internal/domain/booking"
	"stay-client/internal/pkg/session"
)

type ReservationGateway interface {
	GetReservation(ctx context.Context, sess session.Session, id string) (*booking.Reservation, error)
	CancelReservation(ctx context.Context, sess session.Session, id string) (*booking.Reservation, error)
}

type PaymentGateway interface {
	GetInvoice(ctx context.Context, sess session.Session, id string) (*billing.Invoice, error)
	CreatePaymentIntent(ctx context.Context, sess session.Session, invoiceID string) (*billing.PaymentIntent, error)
	ConfirmPayment(ctx context.Context, sess session.Session, intentID, invoiceID string) (*billing.PaymentConfirmation, error)
}

type Authenticator interface {
	Login(ctx context.Context, email, password string) (*account.LoginOutcome, error)
	VerifyTwoFactor(ctx context.Context, userID, code string) (*account.LoginOutcome, error)
	Register(ctx context.Context, reg account.Registration) (*account.LoginOutcome, error)
}

type AccountGateway interface {
	Me(ctx context.Context, sess session.Session) (*account.User, error)
	GetProfile(ctx context.Context, sess session.Session) (*account.User, error)
	UpdateProfile(ctx context.Context, sess session.Session, upd account.ProfileUpdate) (*account.User, error)
	ChangePassword(ctx context.Context, sess session.Session, change account.PasswordChange) error
	ChangePhoto(ctx context.Context, sess session.Session, photo account.Photo) (*account.User, error)
	EnableTwoFactor(ctx context.Context, sess session.Session) (*account.TwoFactorSetup, error)
	ConfirmTwoFactor(ctx context.Context, sess session.Session, code string) error
	DisableTwoFactor(ctx context.Context, sess session.Session, password string) error
}
