package components

import (
	"stay-client/internal/handler"
	"stay-client/internal/handler/api"
	"stay-client/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewProfileHandler,
		api.NewUnitHandler,
		api.NewDraftHandler,
		api.NewReservationHandler,
		api.NewInvoiceHandler,
		api.NewPaymentHandler,
		middleware.NewSessionMiddleware,
		func(
			auth *api.AuthHandler,
			profile *api.ProfileHandler,
			units *api.UnitHandler,
			drafts *api.DraftHandler,
			reservations *api.ReservationHandler,
			invoices *api.InvoiceHandler,
			payments *api.PaymentHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:        auth,
				Profile:     profile,
				Units:       units,
				Drafts:      drafts,
				Reservation: reservations,
				Invoices:    invoices,
				Payments:    payments,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
