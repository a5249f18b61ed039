// Trackpoint Core - GPS tracker fleet backend
//
// This is the main entry point for the Trackpoint Core application. It
// wires configuration, logging, the SQLite store, the device registry,
// the user directory, and the HTTP API together, then waits for a
// shutdown signal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	_ "github.com/mstrand/trackpoint-core/migrations"

	"github.com/mstrand/trackpoint-core/internal/api"
	"github.com/mstrand/trackpoint-core/internal/auth"
	"github.com/mstrand/trackpoint-core/internal/device"
	"github.com/mstrand/trackpoint-core/internal/infrastructure/config"
	"github.com/mstrand/trackpoint-core/internal/infrastructure/database"
	"github.com/mstrand/trackpoint-core/internal/infrastructure/logging"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
func run(ctx context.Context) error {
	// Load .env before anything reads the environment. A missing file is
	// fine; deployments set real environment variables instead.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading .env: %w", err)
	}

	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting Trackpoint Core",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration; a missing config file falls back to defaults
	// plus environment overrides, matching how small deployments run.
	configPath := getConfigPath()
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Open database
	db, err := database.Open(ctx, database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	// Run migrations
	if migrateErr := db.Migrate(ctx); migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}
	log.Info("database migrations complete")

	// Initialise device registry
	registry := device.NewRegistry(device.NewSQLiteRepository(db.DB))
	registry.SetLogger(log)
	log.Info("device registry initialised")

	// Initialise user directory
	directory := auth.NewDirectory(auth.NewUserRepository(db.DB))
	directory.SetLogger(log)
	log.Info("user directory initialised")

	// Start HTTP API server
	server, err := api.New(api.Deps{
		Config:    cfg.Server,
		Logger:    log,
		Registry:  registry,
		Directory: directory,
		Version:   version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}
	if startErr := server.Start(ctx); startErr != nil {
		return fmt.Errorf("starting API server: %w", startErr)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()
	log.Info("API server listening",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Verify connections are healthy
	if err := healthCheck(ctx, db, server); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	log.Info("all health checks passed")

	log.Info("initialisation complete, waiting for shutdown signal")

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")

	// Deferred Close() calls run in reverse order:
	// 1. API server
	// 2. Database

	log.Info("Trackpoint Core stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses TRACKPOINT_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("TRACKPOINT_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// healthCheck verifies infrastructure connections are healthy.
func healthCheck(ctx context.Context, db *database.DB, server *api.Server) error {
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := server.HealthCheck(ctx); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}
