package bootstrap

import (
	"mountworks/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	PaymentModule,
	MQModule,
	NotifyModule,
	TelemetryModule,
	JanitorModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
