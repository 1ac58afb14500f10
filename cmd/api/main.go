package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"aivanta-site/internal/app"
	"aivanta-site/internal/config"
	"aivanta-site/pkg/logger"
	"aivanta-site/pkg/validator"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Init()
		logger.Info("No .env file found, using environment variables", nil)
	}

	cfg := config.New()
	logger.InitWithLevel(cfg.LogLevel)
	logger.Info("Starting Aivanta site", map[string]interface{}{"site": cfg.SiteURL})

	validator.Init()

	application, err := app.New(cfg, app.Options{})
	if err != nil {
		logger.Error(err, "Failed to initialize application", nil)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Serve(ctx, 30*time.Second); err != nil {
		logger.Error(err, "Server stopped with error", nil)
		os.Exit(1)
	}

	logger.Info("Server exited gracefully", nil)
}
