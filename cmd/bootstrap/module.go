package bootstrap

import (
	"shopcompare/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	JWTModule,
	components.ProviderModule,
	components.UseCaseModule,
	components.HandlerModule,
	SchedulerModule,
)
