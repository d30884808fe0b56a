package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rummi-tournament/internal/config"
	"rummi-tournament/internal/db"
	"rummi-tournament/internal/metrics"
	"rummi-tournament/internal/server"
	"rummi-tournament/internal/store"

	"github.com/gin-gonic/gin"
)

const purgeInterval = time.Hour

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		slog.Warn("failed to load .env", "error", err)
	}
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	m := metrics.New()
	backend, closeBackend, err := openBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeBackend()

	st := store.New(backend,
		store.WithTTL(cfg.DocumentTTL()),
		store.WithMetrics(m),
		store.WithLogger(logger),
	)
	srv := server.New(st, cfg, logger, m)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("rummi tournament server listening", "addr", httpServer.Addr, "store", backend.Name())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// openBackend builds the configured store backend and returns a func that
// releases it.
func openBackend(ctx context.Context, cfg config.Config, logger *slog.Logger) (store.Backend, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		rdb, err := store.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("redis store: %w", err)
		}
		return rdb, func() { _ = rdb.Close() }, nil
	case config.BackendPostgres:
		conn, err := db.Open(cfg.DatabaseURL, db.PoolConfig{
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxLifetime: cfg.ConnMaxLifetime(),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("database connection failed: %w", err)
		}
		if err := db.Migrate(conn); err != nil {
			return nil, nil, fmt.Errorf("database migration failed: %w", err)
		}
		pg := store.NewPostgres(conn, time.Now)
		purgeCtx, cancel := context.WithCancel(ctx)
		go purgeLoop(purgeCtx, pg, logger)
		return pg, func() {
			cancel()
			if sqlDB, err := conn.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}, nil
	default:
		logger.Warn("using in-memory store; documents are lost on restart")
		return store.NewMemory(time.Now), func() {}, nil
	}
}

// purgeLoop drops expired day documents at startup and then hourly.
func purgeLoop(ctx context.Context, pg *store.Postgres, logger *slog.Logger) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()
	for {
		removed, err := pg.Purge(ctx)
		if err != nil {
			logger.Warn("purge expired documents", "error", err)
		} else if removed > 0 {
			logger.Info("purged expired documents", "rows", removed)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
