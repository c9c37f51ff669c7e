package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/catchup-chat/catchup/internal/api"
	"github.com/catchup-chat/catchup/internal/auth"
	"github.com/catchup-chat/catchup/internal/chat"
	"github.com/catchup-chat/catchup/internal/config"
	"github.com/catchup-chat/catchup/internal/handlers"
	"github.com/catchup-chat/catchup/internal/tools"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	var logger zerolog.Logger
	if cfg.IsDevelopment() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().
			Timestamp().
			Logger()
	} else {
		logger = zerolog.New(os.Stdout).
			With().
			Timestamp().
			Logger()
	}

	// Load credentials; refuse to start without them
	tokens, err := auth.NewFileTokenSource(cfg.CredentialsFile, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("file", cfg.CredentialsFile).Msg("credentials unavailable")
	}

	// Watch the credential file so re-authentication is picked up live
	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	go func() {
		if err := tokens.Watch(watchCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn().Err(err).Msg("credential watcher stopped")
		}
	}()

	// Build the upstream client and the tool service on top of it
	clientOpts := []chat.Option{chat.WithLogger(logger)}
	if cfg.UpstreamRPS > 0 {
		clientOpts = append(clientOpts, chat.WithRateLimit(cfg.UpstreamRPS))
	}
	client := chat.NewClient(cfg.ChatAPIURL, tokens, clientOpts...)
	svc := tools.NewService(client, logger)
	h := handlers.NewHandler(svc, tokens, client, logger)

	// Create router
	router := api.NewRouter(logger, h, cfg.GatewayToken)

	// Create server. The write timeout is generous because an all-space
	// scan issues one upstream call pair per space, sequentially.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Str("upstream", cfg.ChatAPIURL).
			Msg("starting catchup gateway")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server...")

	// Graceful shutdown with 30 second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server stopped")
}
