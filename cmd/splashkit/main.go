package main

import (
	"context"
	"log"
	"os"

	"splashkit/internal/app"
	"splashkit/internal/config"
	"splashkit/internal/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appLogger := logger.NewFromEnv()

	path := os.Getenv("SPLASHKIT_CONFIG")
	if path == "" {
		path = "splashkit.toml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(ctx); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}
