package bootstrap

import (
	"stay-client/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigSections,
)

// ConfigSections hands single sections of Config to constructors that only need one.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.APIConfig { return cfg.API },
	func(cfg config.Config) config.DraftConfig { return cfg.Drafts },
)
