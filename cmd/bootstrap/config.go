package bootstrap

import (
	"shopcompare/internal/pkg/clock"
	"shopcompare/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		clock.NewRealClock,
	),
)
