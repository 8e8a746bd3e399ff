package bootstrap

import (
	"context"
	"log/slog"

	"rentx-api/internal/pkg/config"
	"rentx-api/internal/pkg/telemetry"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(RegisterTelemetry),
)

func RegisterTelemetry(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) {
	var shutdown telemetry.ShutdownFunc

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			fn, err := telemetry.Setup(ctx, cfg.Telemetry)
			if err != nil {
				return err
			}
			shutdown = fn
			if cfg.Telemetry.OTLPEndpoint != "" {
				logger.Info("OpenTelemetry exporter enabled", "endpoint", cfg.Telemetry.OTLPEndpoint)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if shutdown == nil {
				return nil
			}
			return shutdown(ctx)
		},
	})
}
