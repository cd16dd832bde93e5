package bootstrap

import (
	"creator-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	DBModule,
	JWTModule,
	components.UseCaseModule,
	components.HandlerModule,
	LedgerModule,
)
