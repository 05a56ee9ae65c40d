package components

import (
	"log/slog"

	"stay-client/internal/infra/api"
	"stay-client/internal/pkg/config"
	"stay-client/internal/usecase/commands"
	"stay-client/internal/usecase/drafts"
	"stay-client/internal/usecase/queries"

	"go.uber.org/fx"
)

// RemoteModule binds the hotel API client to every port that reads or
// writes remote state. Unit lookups go through the cache.
var RemoteModule = fx.Module("remote",
	fx.Provide(
		fx.Annotate(
			api.NewClient,
			fx.As(fx.Self()),
			fx.As(new(drafts.AvailabilityService)),
			fx.As(new(drafts.ReservationStore)),
			fx.As(new(queries.ReservationReader)),
			fx.As(new(queries.InvoiceReader)),
			fx.As(new(commands.ReservationGateway)),
			fx.As(new(commands.PaymentGateway)),
			fx.As(new(commands.Authenticator)),
			fx.As(new(commands.AccountGateway)),
		),
		fx.Annotate(
			NewCachedUnits,
			fx.As(new(drafts.UnitDirectory)),
			fx.As(new(queries.UnitReader)),
		),
	),
)

func NewCachedUnits(client *api.Client, cfg config.APIConfig, logger *slog.Logger) *api.CachedUnits {
	return api.NewCachedUnits(client, cfg, logger)
}
