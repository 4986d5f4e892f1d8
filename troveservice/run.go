// Package troveservice boots the item-tracking HTTP service.
package troveservice

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/trovehq/trove/internal/api"
	"github.com/trovehq/trove/internal/config"
	"github.com/trovehq/trove/internal/platform/logger"
	"github.com/trovehq/trove/internal/store/sqlite"
)

// Run starts the trove HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("trove")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}
	logger.SetGlobalLevel(cfg.LogLevel)

	log.Info().
		Int("http_port", cfg.HTTPPort).
		Str("db_path", cfg.DBPath()).
		Msg("Trove service starting")

	// Cancellable root context bound to SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The store handle is opened once and shared by every request handler
	// for the whole process lifetime.
	kv, err := sqlite.New(cfg.DBPath())
	if err != nil {
		log.Error().Err(err).Str("db_path", cfg.DBPath()).Msg("Failed to open store")
		return err
	}
	defer func() { _ = kv.Close() }()

	router := api.NewRouter(kv, cfg.APIKey, log)

	server := &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}
}
