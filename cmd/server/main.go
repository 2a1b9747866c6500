package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"utilibill/internal/app/server/api"
	"utilibill/internal/app/server/config"
	"utilibill/internal/infrastructure/storage/postgres"
	"utilibill/internal/utils/logger"
)

const (
	shutdownTimeout        = 5 * time.Second
	sessionCleanupInterval = time.Hour
)

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	storage, err := postgres.New(conf)
	if err != nil {
		log.Error("storage init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go cleanupSessions(ctx, storage, log)

	srv := &http.Server{
		Addr:    conf.Server.RunAddress,
		Handler: api.New(storage, log),
	}

	go func() {
		log.Info("server starting", slog.String("address", conf.Server.RunAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", slog.String("error", err.Error()))
	}
}

// cleanupSessions drops expired sessions on a fixed interval so the table
// does not grow without bound.
func cleanupSessions(ctx context.Context, storage *postgres.Storage, log *slog.Logger) {
	repo := postgres.NewSessionRepository(storage.Pool(), log)
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := repo.DeleteExpired(ctx); err != nil {
				log.Warn("session cleanup failed", slog.String("error", err.Error()))
			}
		}
	}
}
