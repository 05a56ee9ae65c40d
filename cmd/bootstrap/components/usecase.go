package components

import (
	"log/slog"

	"stay-client/internal/domain/booking"
	"stay-client/internal/pkg/clock"
	"stay-client/internal/pkg/config"
	"stay-client/internal/usecase/commands"
	"stay-client/internal/usecase/drafts"
	"stay-client/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseDraftsModule,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func(cfg config.Config) *booking.DefaultPricingCalculator {
			return booking.NewPricingCalculator(booking.Rate(cfg.Pricing.TaxRateBP))
		},
		fx.As(new(booking.PricingCalculator)),
	),
)

var usecaseDraftsModule = fx.Module("usecase/drafts",
	fx.Provide(
		NewAvailabilityChecker,
		NewDraftDependencies,
		drafts.NewRegistry,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUnitQueries,
		queries.NewReservationQueries,
		queries.NewInvoiceQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAccountCommands,
		commands.NewReservationCommands,
		commands.NewPaymentCommands,
	),
)

func NewAvailabilityChecker(svc drafts.AvailabilityService, cfg config.APIConfig, logger *slog.Logger) *drafts.AvailabilityChecker {
	return drafts.NewAvailabilityChecker(svc, cfg.AvailabilityCheckTimeout, logger)
}

// Intents reach the client through the draft view, so no Navigator is bound.
func NewDraftDependencies(
	units drafts.UnitDirectory,
	checker *drafts.AvailabilityChecker,
	store drafts.ReservationStore,
	pricing booking.PricingCalculator,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) drafts.Dependencies {
	return drafts.Dependencies{
		Units:            units,
		Checker:          checker,
		Store:            store,
		Pricing:          pricing,
		HolidaySurcharge: booking.Rate(cfg.Pricing.HolidaySurchargeBP),
		Clock:            clk,
		Logger:           logger,
	}
}
