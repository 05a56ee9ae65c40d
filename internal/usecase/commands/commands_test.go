//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"stay-client/internal/domain/account"
	"stay-client/internal/domain/billing"
	"stay-client/internal/domain/booking"
	"stay-client/internal/infra"
	"stay-client/internal/pkg/clock"
	"stay-client/internal/pkg/errs"
	"stay-client/internal/pkg/session"
	"stay-client/internal/usecase/commands"
	"stay-client/tests/common/authtest"
	commandsmock "stay-client/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	logger   *slog.Logger
	clock    *clock.MockClock
	sess     session.Session

	reservations *commandsmock.MockReservationGateway
	payments     *commandsmock.MockPaymentGateway
	auth         *commandsmock.MockAuthenticator
	accounts     *commandsmock.MockAccountGateway
}

func (s *CommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.clock = clock.NewMockClock(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	s.sess = authtest.NewJWTHelper(s.clock.Now).Session(s.T(), "user-1")
	s.reservations = commandsmock.NewMockReservationGateway(s.mockCtrl)
	s.payments = commandsmock.NewMockPaymentGateway(s.mockCtrl)
	s.auth = commandsmock.NewMockAuthenticator(s.mockCtrl)
	s.accounts = commandsmock.NewMockAccountGateway(s.mockCtrl)
}

func (s *CommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCommandsSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

func (s *CommandsTestSuite) remoteErr(kind infra.RemoteErrorKind, status int) error {
	return infra.WrapRemoteErr(s.logger, kind, status, "upstream message", nil)
}

// ================================================================================
// Reservations
// ================================================================================

func (s *CommandsTestSuite) TestCancelReservation() {
	cmd := commands.NewReservationCommands(s.reservations, s.logger)

	s.Run("success: pending reservation is canceled", func() {
		s.reservations.EXPECT().GetReservation(gomock.Any(), s.sess, "res-1").
			Return(&booking.Reservation{ID: "res-1", Status: booking.ReservationPending}, nil).Times(1)
		s.reservations.EXPECT().CancelReservation(gomock.Any(), s.sess, "res-1").
			Return(&booking.Reservation{ID: "res-1", Status: booking.ReservationCanceled}, nil).Times(1)

		res, err := cmd.Cancel(s.ctx, s.sess, "res-1")

		s.Require().NoError(err)
		s.Equal(booking.ReservationCanceled, res.Status)
	})

	s.Run("error: completed reservation is not sent upstream", func() {
		s.reservations.EXPECT().GetReservation(gomock.Any(), s.sess, "res-2").
			Return(&booking.Reservation{ID: "res-2", Status: booking.ReservationCompleted}, nil).Times(1)

		_, err := cmd.Cancel(s.ctx, s.sess, "res-2")

		s.True(errs.Is(err, commands.ErrNotCancelable))
	})

	s.Run("error: unknown reservation", func() {
		s.reservations.EXPECT().GetReservation(gomock.Any(), s.sess, "nope").
			Return(nil, s.remoteErr(infra.KindNotFound, http.StatusNotFound)).Times(1)

		_, err := cmd.Cancel(s.ctx, s.sess, "nope")

		s.True(errs.Is(err, commands.ErrNotFound))
	})
}

// ================================================================================
// Payments
// ================================================================================

func pendingInvoice() *billing.Invoice {
	return &billing.Invoice{
		ID:     "inv-1",
		Number: "FAC-0001",
		Total:  booking.MoneyFromFloat(224),
		Status: billing.InvoicePending,
	}
}

func (s *CommandsTestSuite) TestCreateIntent() {
	cmd := commands.NewPaymentCommands(s.payments, s.clock, s.logger)

	s.Run("success", func() {
		intent := &billing.PaymentIntent{ID: "pi_test_1", Amount: booking.MoneyFromFloat(224)}
		s.payments.EXPECT().GetInvoice(gomock.Any(), s.sess, "inv-1").Return(pendingInvoice(), nil).Times(1)
		s.payments.EXPECT().CreatePaymentIntent(gomock.Any(), s.sess, "inv-1").Return(intent, nil).Times(1)

		got, err := cmd.CreateIntent(s.ctx, s.sess, "inv-1")

		s.Require().NoError(err)
		s.Equal(intent, got)
	})

	s.Run("error: paid invoice", func() {
		inv := pendingInvoice()
		inv.Status = billing.InvoicePaid
		s.payments.EXPECT().GetInvoice(gomock.Any(), s.sess, "inv-1").Return(inv, nil).Times(1)

		_, err := cmd.CreateIntent(s.ctx, s.sess, "inv-1")

		s.True(errs.Is(err, commands.ErrNothingToPay))
	})
}

func (s *CommandsTestSuite) TestPay() {
	cmd := commands.NewPaymentCommands(s.payments, s.clock, s.logger)
	valid := func(number string) commands.PayInput {
		return commands.PayInput{
			InvoiceID: "inv-1",
			IntentID:  "pi_test_abc",
			Card:      billing.NewCard(number, "12/26", "123"),
		}
	}

	s.Run("success: approved card is confirmed upstream", func() {
		confirmation := &billing.PaymentConfirmation{IntentID: "pi_test_abc", Amount: booking.MoneyFromFloat(224), Status: "succeeded"}
		s.payments.EXPECT().GetInvoice(gomock.Any(), s.sess, "inv-1").Return(pendingInvoice(), nil).Times(1)
		s.payments.EXPECT().ConfirmPayment(gomock.Any(), s.sess, "pi_test_abc", "inv-1").Return(confirmation, nil).Times(1)

		got, err := cmd.Pay(s.ctx, s.sess, valid("4242 4242 4242 4242"))

		s.Require().NoError(err)
		s.Equal("succeeded", got.Status)
	})

	s.Run("error: settled invoice is not confirmed again", func() {
		inv := pendingInvoice()
		inv.Status = billing.InvoicePaid
		s.payments.EXPECT().GetInvoice(gomock.Any(), s.sess, "inv-1").Return(inv, nil).Times(1)

		_, err := cmd.Pay(s.ctx, s.sess, valid("4242 4242 4242 4242"))

		s.True(errs.Is(err, commands.ErrNothingToPay))
	})

	cases := []struct {
		name   string
		in     commands.PayInput
		marker error
		reason error
	}{
		{name: "declined", in: valid(billing.TestCardDeclined), marker: commands.ErrPaymentDeclined, reason: billing.ErrCardDeclined},
		{name: "insufficient funds", in: valid(billing.TestCardInsufficientFunds), marker: commands.ErrPaymentDeclined, reason: billing.ErrInsufficientFunds},
		{name: "issuer says expired", in: valid(billing.TestCardExpired), marker: commands.ErrPaymentDeclined, reason: billing.ErrCardExpired},
		{name: "incorrect cvv", in: valid(billing.TestCardIncorrectCVV), marker: commands.ErrPaymentDeclined, reason: billing.ErrIncorrectCVV},
		{name: "short number", in: valid("4242 4242"), marker: commands.ErrInvalidCard, reason: billing.ErrInvalidCardNumber},
		{
			name:   "past expiry",
			in:     commands.PayInput{InvoiceID: "inv-1", IntentID: "pi_test_abc", Card: billing.NewCard(billing.TestCardSuccess, "05/24", "123")},
			marker: commands.ErrInvalidCard,
			reason: billing.ErrCardExpired,
		},
		{
			name:   "real intent needs a processor",
			in:     commands.PayInput{InvoiceID: "inv-1", IntentID: "pi_live_abc", Card: billing.NewCard(billing.TestCardSuccess, "12/26", "123")},
			marker: commands.ErrProviderUnavailable,
		},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			_, err := cmd.Pay(s.ctx, s.sess, tc.in)

			s.True(errs.Is(err, tc.marker), "got %v", err)
			if tc.reason != nil {
				s.True(errs.Is(err, tc.reason), "got %v", err)
			}
		})
	}
}

// ================================================================================
// Auth
// ================================================================================

func (s *CommandsTestSuite) TestLogin() {
	cmd := commands.NewAuthCommands(s.auth, s.clock)

	s.Run("success: email is normalized", func() {
		outcome := &account.LoginOutcome{Token: "tok", User: &account.User{ID: "u1"}}
		s.auth.EXPECT().Login(gomock.Any(), "guest@example.com", "secret").Return(outcome, nil).Times(1)

		got, err := cmd.Login(s.ctx, "  Guest@Example.com ", "secret")

		s.Require().NoError(err)
		s.Equal("tok", got.Token)
	})

	s.Run("two factor is passed through", func() {
		outcome := &account.LoginOutcome{RequiresTwoFactor: true, PendingUserID: "u1"}
		s.auth.EXPECT().Login(gomock.Any(), "guest@example.com", "secret").Return(outcome, nil).Times(1)

		got, err := cmd.Login(s.ctx, "guest@example.com", "secret")

		s.Require().NoError(err)
		s.True(got.RequiresTwoFactor)
	})

	s.Run("error: rejected credentials", func() {
		s.auth.EXPECT().Login(gomock.Any(), "guest@example.com", "wrong").
			Return(nil, s.remoteErr(infra.KindUnauthorized, http.StatusUnauthorized)).Times(1)

		_, err := cmd.Login(s.ctx, "guest@example.com", "wrong")

		s.True(errs.Is(err, commands.ErrInvalidCredentials))
	})

	s.Run("error: blank input never reaches upstream", func() {
		_, err := cmd.Login(s.ctx, " ", "")
		s.True(errs.Is(err, commands.ErrInvalidCredentials))

		_, err = cmd.VerifyTwoFactor(s.ctx, "u1", " ")
		s.True(errs.Is(err, commands.ErrInvalidCredentials))
	})

	s.Run("error: upstream outage is not a credential error", func() {
		s.auth.EXPECT().VerifyTwoFactor(gomock.Any(), "u1", "123456").
			Return(nil, s.remoteErr(infra.KindTransport, 0)).Times(1)

		_, err := cmd.VerifyTwoFactor(s.ctx, "u1", "123456")

		s.True(errs.Is(err, commands.ErrUpstreamFailed))
		s.False(errs.Is(err, commands.ErrInvalidCredentials))
	})
}

func validRegistration() account.Registration {
	return account.Registration{
		Username:   "guest",
		Email:      "guest@example.com",
		Password:   "secret1",
		FirstName:  "Ana",
		LastName:   "Ruiz",
		NationalID: "1712345678",
		BirthDate:  time.Date(1990, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *CommandsTestSuite) TestRegister() {
	cmd := commands.NewAuthCommands(s.auth, s.clock)

	s.Run("success: form is normalized before it is sent", func() {
		reg := validRegistration()
		reg.Email = " Guest@Example.com "
		reg.FirstName = " Ana "
		s.auth.EXPECT().Register(gomock.Any(), validRegistration()).
			Return(&account.LoginOutcome{Token: "tok", User: &account.User{ID: "u1"}}, nil).Times(1)

		got, err := cmd.Register(s.ctx, reg)

		s.Require().NoError(err)
		s.Equal("tok", got.Token)
	})

	s.Run("error: underage registrant never reaches upstream", func() {
		reg := validRegistration()
		reg.BirthDate = s.clock.Now().AddDate(-17, 0, 0)

		_, err := cmd.Register(s.ctx, reg)

		s.True(errs.Is(err, commands.ErrInvalidAccountData))
		s.True(errs.Is(err, account.ErrUnderage))
	})

	s.Run("error: taken email is a rejection", func() {
		s.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, s.remoteErr(infra.KindConflict, http.StatusConflict)).Times(1)

		_, err := cmd.Register(s.ctx, validRegistration())

		s.True(errs.Is(err, commands.ErrRejected))
	})
}

// ================================================================================
// Account
// ================================================================================

func (s *CommandsTestSuite) TestProfile() {
	cmd := commands.NewAccountCommands(s.accounts, s.logger)

	s.Run("success: profile is read", func() {
		s.accounts.EXPECT().GetProfile(gomock.Any(), s.sess).Return(&account.User{ID: "user-1", Phone: "0991234567"}, nil).Times(1)

		user, err := cmd.Profile(s.ctx, s.sess)

		s.Require().NoError(err)
		s.Equal("0991234567", user.Phone)
	})

	s.Run("success: update fields are trimmed", func() {
		name := "  Ana "
		s.accounts.EXPECT().UpdateProfile(gomock.Any(), s.sess, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ session.Session, upd account.ProfileUpdate) (*account.User, error) {
				s.Equal("Ana", *upd.FirstName)
				s.Nil(upd.Phone)
				return &account.User{ID: "user-1", FirstName: *upd.FirstName}, nil
			}).Times(1)

		user, err := cmd.UpdateProfile(s.ctx, s.sess, account.ProfileUpdate{FirstName: &name})

		s.Require().NoError(err)
		s.Equal("Ana", user.FirstName)
	})

	s.Run("error: empty update never reaches upstream", func() {
		_, err := cmd.UpdateProfile(s.ctx, s.sess, account.ProfileUpdate{})

		s.True(errs.Is(err, commands.ErrInvalidAccountData))
	})

	s.Run("error: expired upstream session", func() {
		s.accounts.EXPECT().Me(gomock.Any(), s.sess).
			Return(nil, s.remoteErr(infra.KindUnauthorized, http.StatusUnauthorized)).Times(1)

		_, err := cmd.Me(s.ctx, s.sess)

		s.True(errs.Is(err, commands.ErrAuthRequired))
	})
}

func (s *CommandsTestSuite) TestChangePassword() {
	cmd := commands.NewAccountCommands(s.accounts, s.logger)
	change := account.PasswordChange{Current: "secret1", New: "secret2"}

	s.Run("success", func() {
		s.accounts.EXPECT().ChangePassword(gomock.Any(), s.sess, change).Return(nil).Times(1)

		s.NoError(cmd.ChangePassword(s.ctx, s.sess, change))
	})

	s.Run("error: wrong current password is a rejection", func() {
		s.accounts.EXPECT().ChangePassword(gomock.Any(), s.sess, change).
			Return(s.remoteErr(infra.KindUnauthorized, http.StatusUnauthorized)).Times(1)

		err := cmd.ChangePassword(s.ctx, s.sess, change)

		s.True(errs.Is(err, commands.ErrRejected))
		s.False(errs.Is(err, commands.ErrAuthRequired))
	})

	s.Run("error: reused password never reaches upstream", func() {
		err := cmd.ChangePassword(s.ctx, s.sess, account.PasswordChange{Current: "secret1", New: "secret1"})

		s.True(errs.Is(err, commands.ErrInvalidAccountData))
		s.True(errs.Is(err, account.ErrSamePassword))
	})
}

func (s *CommandsTestSuite) TestChangePhoto() {
	cmd := commands.NewAccountCommands(s.accounts, s.logger)

	s.Run("success", func() {
		photo := account.Photo{Filename: "me.png", ContentType: "image/png", Content: []byte("png")}
		s.accounts.EXPECT().ChangePhoto(gomock.Any(), s.sess, photo).
			Return(&account.User{ID: "user-1", PhotoURL: "/uploads/me.png"}, nil).Times(1)

		user, err := cmd.ChangePhoto(s.ctx, s.sess, photo)

		s.Require().NoError(err)
		s.Equal("/uploads/me.png", user.PhotoURL)
	})

	s.Run("error: non-image upload never reaches upstream", func() {
		_, err := cmd.ChangePhoto(s.ctx, s.sess, account.Photo{Filename: "a.txt", ContentType: "text/plain", Content: []byte("x")})

		s.True(errs.Is(err, commands.ErrInvalidAccountData))
		s.True(errs.Is(err, account.ErrInvalidPhoto))
	})
}

func (s *CommandsTestSuite) TestTwoFactorSettings() {
	cmd := commands.NewAccountCommands(s.accounts, s.logger)

	s.Run("success: enable then confirm", func() {
		s.accounts.EXPECT().EnableTwoFactor(gomock.Any(), s.sess).
			Return(&account.TwoFactorSetup{QRCode: "data:image/png;base64,AAA", Secret: "JBSWY3DP"}, nil).Times(1)
		s.accounts.EXPECT().ConfirmTwoFactor(gomock.Any(), s.sess, "123456").Return(nil).Times(1)

		setup, err := cmd.EnableTwoFactor(s.ctx, s.sess)
		s.Require().NoError(err)
		s.Equal("JBSWY3DP", setup.Secret)

		s.NoError(cmd.ConfirmTwoFactor(s.ctx, s.sess, " 123456 "))
	})

	s.Run("error: wrong code is a rejection", func() {
		s.accounts.EXPECT().ConfirmTwoFactor(gomock.Any(), s.sess, "000000").
			Return(s.remoteErr(infra.KindValidation, http.StatusBadRequest)).Times(1)

		err := cmd.ConfirmTwoFactor(s.ctx, s.sess, "000000")

		s.True(errs.Is(err, commands.ErrRejected))
	})

	s.Run("error: disable needs the password", func() {
		err := cmd.DisableTwoFactor(s.ctx, s.sess, "")

		s.True(errs.Is(err, commands.ErrInvalidAccountData))
	})

	s.Run("error: disable with a wrong password is a rejection", func() {
		s.accounts.EXPECT().DisableTwoFactor(gomock.Any(), s.sess, "wrong1").
			Return(s.remoteErr(infra.KindUnauthorized, http.StatusUnauthorized)).Times(1)

		err := cmd.DisableTwoFactor(s.ctx, s.sess, "wrong1")

		s.True(errs.Is(err, commands.ErrRejected))
	})
}
