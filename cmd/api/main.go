package main

import (
	"context"
	"linkpago/internal/adapter/http/routes"
	"linkpago/internal/config"
	"linkpago/internal/infrastructure/logging"
	"log"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           LinkPago API
// @version         1.0
// @description     Ephemeral bank-transfer payment links backed by Cucuru CVUs and DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	restore := logging.Install(logger)
	defer restore()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		zap.S().Errorf("[main] server stopped err=%v", err)
		stop()
		_ = logger.Sync()
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
