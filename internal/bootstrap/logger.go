package bootstrap

import (
	"log/slog"

	"github.com/osse101/FruitClicker_Go/internal/config"
	"github.com/osse101/FruitClicker_Go/internal/logger"
)

// SetupLogger installs the process logger from configuration and logs the
// startup banner. Credentials are never logged.
func SetupLogger(cfg *config.Config) *slog.Logger {
	l := logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.Version, cfg.Environment))

	l.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	l.Info(LogMsgStartingFruitClicker,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"backend", cfg.StorageBackend)
	l.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"autoclicker_tick", cfg.AutoclickerTick,
		"workers", cfg.WorkerCount)

	return l
}
