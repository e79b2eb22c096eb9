package main

import (
	"flag"
	"log/slog"
	"os"

	"admission/config"
	logs "admission/internal/infra/log"
	"admission/internal/infra/persistence/migrate"
)

func main() {
	direction := flag.String("direction", migrate.DirectionUp, "migration direction: up or down")
	flag.Parse()

	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		slog.Error("Failed to create logger", slog.Any("error", err))
		os.Exit(1)
	}

	var dsn string
	if cfg.Migration != nil {
		dsn = cfg.Migration.DatabaseURL
	}

	if err := migrate.Run(dsn, *direction); err != nil {
		logger.Error("Migration failed", slog.String("direction", *direction), slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Migration finished", slog.String("direction", *direction))
}
