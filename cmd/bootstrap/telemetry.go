package bootstrap

import (
	"context"

	"mountworks/internal/pkg/config"
	"mountworks/internal/pkg/obs"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(
		InitTelemetry,
	),
)

func InitTelemetry(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := obs.InitTracer(cfg.Telemetry)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})

	return nil
}
