// Package main is the entry point for the delve terminal explorer.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/samdwyer/delvecore/internal/config"
	"github.com/samdwyer/delvecore/internal/game"
	"github.com/samdwyer/delvecore/internal/logger"
	"github.com/samdwyer/delvecore/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "delve.yaml", "Path to the YAML config file")
	seed := flag.Int64("seed", 0, "Dungeon seed (overrides config; 0 keeps the configured seed)")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	closer, err := logger.Initialize(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer closer.Close()

	ctx := context.Background()
	sessionID := uuid.NewString()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry, sessionID)
	if err != nil {
		logger.Warning("telemetry setup failed, running without traces", "error", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Error("telemetry shutdown failed", "error", err)
			}
		}()
	}

	g, err := game.New(cfg, sessionID)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
	fmt.Printf("Seed %d\n", g.Seed())
}

// setupOTelEnv builds OTEL_EXPORTER_OTLP_HEADERS from a Honeycomb API key
// when one is configured and no headers are set yet.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_DELVE_API_KEY")
	if apiKey == "" || os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") != "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_DELVE_DATASET")
	if dataset == "" {
		dataset = "delvecore"
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
