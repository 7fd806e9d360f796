package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g main.go -o ../../docs --parseDependency

import (
	"log"
	"log/slog"

	"github.com/gin-gonic/gin"

	"weather-probe/internal/config"
	"weather-probe/internal/sandbox"
)

// @title OpenWeatherMap Sandbox
// @version 1.0.0
// @description Offline stand-in for the OpenWeatherMap endpoints exercised by the weather probe
// @contact.name API Support
// @host localhost:8090
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	gin.SetMode(cfg.Sandbox.GinMode)

	srv := sandbox.NewServer(sandbox.DefaultFixtures(cfg.Sandbox.APIKey), logger)

	// Start server
	logger.Info("starting sandbox", "addr", cfg.GetSandboxAddr())
	if err := srv.Run(cfg.GetSandboxAddr()); err != nil {
		logger.Error("sandbox failed", "error", err)
		log.Fatal(err)
	}
}
