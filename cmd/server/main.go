package main

// @title           Bookshelf API
// @version         1.0
// @description     API for managing a personal bookshelf.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

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

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookshelf-api/internal/config"
	"github.com/snnyvrz/bookshelf-api/internal/db"
	"github.com/snnyvrz/bookshelf-api/internal/middleware"
	"github.com/snnyvrz/bookshelf-api/internal/repository"
)

const (
	appVersion = "0.1.0"

	shutdownTimeout = 20 * time.Second
	sweepInterval   = time.Minute
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := newLogger(cfg.GinMode)
	slog.SetDefault(log)

	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := openRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	var limiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		go limiter.Run(ctx, sweepInterval)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      newRouter(routerDeps{repo: repo, driver: cfg.StoreDriver, limiter: limiter, log: log, startTime: startTime}),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", srv.Addr, "store", cfg.StoreDriver, "mode", cfg.GinMode)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped", "addr", srv.Addr)
	return nil
}

func newLogger(mode string) *slog.Logger {
	if mode == gin.ReleaseMode {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// openRepository returns the store selected by cfg and a func that releases
// it.
func openRepository(ctx context.Context, cfg *config.Config, log *slog.Logger) (repository.BookRepository, func(), error) {
	if cfg.StoreDriver == config.StoreMemory {
		return repository.NewMemoryBookRepository(), func() {}, nil
	}

	gdb, err := db.Open(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	closeStore := func() {
		if err := db.Close(gdb); err != nil {
			log.Error("close database", "error", err)
		}
	}
	return repository.NewGormBookRepository(gdb), closeStore, nil
}
