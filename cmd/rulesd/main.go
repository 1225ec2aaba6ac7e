package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/tysonian801/mtg-chatbot/internal/adapters/cards/scryfall"
	httpadapter "github.com/tysonian801/mtg-chatbot/internal/adapters/http"
	"github.com/tysonian801/mtg-chatbot/internal/adapters/llm/openai"
	"github.com/tysonian801/mtg-chatbot/internal/app"
	"github.com/tysonian801/mtg-chatbot/internal/config"
)

func main() {
	// .env is for local development; in deployment the environment is set
	// directly and the file is absent.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	llmClient := openai.NewClient(
		&http.Client{Timeout: cfg.LLMTimeout},
		cfg.OpenAIAPIKey,
		cfg.OpenAIBaseURL,
		cfg.OpenAIModel,
		logger,
	)

	var enricher *app.Enricher
	if cfg.EnrichmentEnabled {
		finder := scryfall.NewClient(&http.Client{Timeout: 10 * time.Second}, cfg.ScryfallBaseURL)
		enricher = app.NewEnricher(finder, cfg.EnrichmentDelay, logger)
	}

	svc := app.NewRulesService(llmClient, enricher, cfg.OpenAIModel)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))
	e.Use(httpadapter.AuthMiddleware(cfg.AuthToken))

	handler := httpadapter.NewHandler(svc)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "enrichment", cfg.EnrichmentEnabled)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
