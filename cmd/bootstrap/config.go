package bootstrap

import (
	"log/slog"

	"lead-capture/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logEffectiveConfig),
)

// credentials are never logged
func logEffectiveConfig(cfg config.Config) {
	slog.Info("設定を読み込みました",
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"db_name", cfg.DB.DBName,
		"db_max_conns", cfg.DB.MaxConns,
		"log_level", cfg.Log.Level,
		"submit_rate_per_minute", cfg.RateLimit.SubmitPerMinute,
		"metrics_enabled", cfg.Metrics.Enabled,
	)
}
