package bootstrap

import (
	"stay-client/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.RemoteModule,
	components.UseCaseModule,
	components.HandlerModule,
)
