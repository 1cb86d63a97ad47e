// Package main implements the entry point for the slidegen API server,
// which turns a topic into a downloadable slide deck using LLM-backed
// content generation with a deterministic fallback.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/slidegen-api/internal/config"
	"github.com/phrazzld/slidegen-api/internal/generation"
	"github.com/phrazzld/slidegen-api/internal/platform/gemini"
	"github.com/phrazzld/slidegen-api/internal/platform/logger"
	"github.com/phrazzld/slidegen-api/internal/platform/openai"
	"github.com/phrazzld/slidegen-api/internal/service"
	"github.com/phrazzld/slidegen-api/internal/storage"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run wires the application together: configuration, logging, storage,
// content generation, services, and finally the HTTP server.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"storage_backend", cfg.Storage.Backend,
		"llm_provider", cfg.LLM.Provider,
		"llm_configured", cfg.LLM.APIKey != "")

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return err
	}
	if db != nil {
		defer func() {
			if err := db.Close(); err != nil {
				appLogger.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	store, err := storage.New(cfg.Storage, db)
	if err != nil {
		return fmt.Errorf("failed to create storage backend: %w", err)
	}

	completer, err := setupCompleter(cfg, appLogger)
	if err != nil {
		return err
	}

	generator, err := generation.NewService(completer, cfg.Slides, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create content service: %w", err)
	}

	presentationService, err := service.NewPresentationService(generator, store, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create presentation service: %w", err)
	}

	router := setupRouter(presentationService, cfg, appLogger)
	return startHTTPServer(cfg, router, appLogger)
}

// setupCompleter selects the completion client for the configured provider.
// Returns nil when no API key is configured; the content service then serves
// every request from the fallback synthesizer.
func setupCompleter(cfg *config.Config, appLogger *slog.Logger) (generation.Completer, error) {
	if cfg.LLM.APIKey == "" {
		appLogger.Warn("No LLM API key configured, all content will use fallback synthesis")
		return nil, nil
	}

	switch cfg.LLM.Provider {
	case "gemini":
		client, err := gemini.NewClient(context.Background(), cfg.LLM, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return client, nil
	default:
		client, err := openai.NewClient(cfg.LLM, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return client, nil
	}
}
