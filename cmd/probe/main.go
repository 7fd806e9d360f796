package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"time"

	"weather-probe/internal/config"
	"weather-probe/internal/probe"
	"weather-probe/internal/telemetry"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, cfg.Tracing, logger)
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				logger.Warn("failed to flush traces", "error", err)
			}
		}()
	}

	p := probe.NewProbe(cfg, os.Stdout, logger)

	// Failed checks are reported, not signalled through the exit code
	if _, err := p.Run(ctx); err != nil && !errors.Is(err, probe.ErrMissingAPIKey) {
		logger.Error("probe failed", "error", err)
	}
}
