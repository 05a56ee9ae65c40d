package commands

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/commands/payment_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"stay-client/internal/domain/billing"
	"stay-client/internal/pkg/clock"
	"stay-client/internal/pkg/errs"
	"stay-client/internal/pkg/session"
)

type PayInput struct {
	InvoiceID string
	IntentID  string
	Card      billing.Card
}

type PaymentCommands interface {
	CreateIntent(ctx context.Context, sess session.Session, invoiceID string) (*billing.PaymentIntent, error)
	Pay(ctx context.Context, sess session.Session, in PayInput) (*billing.PaymentConfirmation, error)
}

type paymentCommandsImpl struct {
	gateway PaymentGateway
	clock   clock.Clock
	logger  *slog.Logger
}

func NewPaymentCommands(gateway PaymentGateway, clock clock.Clock, logger *slog.Logger) PaymentCommands {
	return &paymentCommandsImpl{gateway: gateway, clock: clock, logger: logger}
}

func (p *paymentCommandsImpl) CreateIntent(ctx context.Context, sess session.Session, invoiceID string) (*billing.PaymentIntent, error) {
	inv, err := p.gateway.GetInvoice(ctx, sess, invoiceID)
	if err != nil {
		return nil, classify(err)
	}
	if !inv.Payable() {
		return nil, errs.Mark(errs.Newf("invoice %s is %s", inv.Number, inv.Status), ErrNothingToPay)
	}

	intent, err := p.gateway.CreatePaymentIntent(ctx, sess, invoiceID)
	if err != nil {
		return nil, classify(err)
	}
	return intent, nil
}

// Pay settles a simulated intent. Card data is checked locally and run
// through the sandbox issuer, and the invoice must still owe something,
// before the API is told the payment succeeded.
func (p *paymentCommandsImpl) Pay(ctx context.Context, sess session.Session, in PayInput) (*billing.PaymentConfirmation, error) {
	if err := in.Card.Validate(p.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrInvalidCard)
	}
	if !billing.IsSimulatedIntent(in.IntentID) {
		return nil, errs.Mark(errs.Newf("intent %s needs a card processor", in.IntentID), ErrProviderUnavailable)
	}
	if err := billing.SimulateIssuer(in.Card); err != nil {
		p.logger.Info("simulated payment declined", "invoice_id", in.InvoiceID, "card_last4", in.Card.Last4(), "reason", err.Error())
		return nil, errs.Mark(err, ErrPaymentDeclined)
	}

	inv, err := p.gateway.GetInvoice(ctx, sess, in.InvoiceID)
	if err != nil {
		return nil, classify(err)
	}
	if !inv.Payable() {
		return nil, errs.Mark(errs.Newf("invoice %s is %s", inv.Number, inv.Status), ErrNothingToPay)
	}

	confirmation, err := p.gateway.ConfirmPayment(ctx, sess, in.IntentID, in.InvoiceID)
	if err != nil {
		return nil, classify(err)
	}

	p.logger.Info("payment confirmed", "invoice_id", in.InvoiceID, "intent_id", in.IntentID, "amount", confirmation.Amount.String())
	return confirmation, nil
}
