package bootstrap

import (
	"log/slog"

	"rentx-api/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logIntegrations),
)

// logIntegrations reports which optional backends this process talks to.
func logIntegrations(cfg config.Config, logger *slog.Logger) {
	logger.Info("Integrations configured",
		"mail_driver", cfg.Mail.Driver,
		"redis", cfg.Redis.Addr != "",
		"kafka", len(cfg.Kafka.Brokers) > 0,
		"otlp", cfg.Telemetry.OTLPEndpoint != "",
		"scheduler", cfg.Scheduler.Enabled,
		"auto_migrate", cfg.DB.AutoMigrate)
}
