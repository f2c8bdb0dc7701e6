package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/snnyvrz/bookshelf-api/internal/config"
	"github.com/snnyvrz/bookshelf-api/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultMaxAttempts     = 10
	defaultDelayBetweenTry = 2 * time.Second
)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
}

// Open connects to the database selected by cfg.StoreDriver and migrates the
// schema. It must not be called for the memory driver.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	var (
		gdb *gorm.DB
		err error
	)

	switch cfg.StoreDriver {
	case config.StoreSQLite:
		gdb, err = OpenSQLite(cfg.SQLitePath)
	case config.StorePostgres:
		gdb, err = ConnectWithRetry(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("store driver %q has no database", cfg.StoreDriver)
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

func OpenSQLite(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	return gdb, nil
}

// ConnectWithRetry keeps dialing PostgreSQL until it answers a ping, the
// attempts run out, or ctx is done.
func ConnectWithRetry(ctx context.Context, cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	var err error

	for attempt := 1; attempt <= defaultMaxAttempts; attempt++ {
		var gdb *gorm.DB
		gdb, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig())
		if err == nil {
			sqlDB, err2 := gdb.DB()
			if err2 == nil {
				pingErr := sqlDB.PingContext(ctx)
				if pingErr == nil {
					return gdb, nil
				}
				err = pingErr
			} else {
				err = err2
			}
		}

		log.Warn("db not ready", "attempt", attempt, "max_attempts", defaultMaxAttempts, "error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(defaultDelayBetweenTry):
		}
	}

	return nil, fmt.Errorf("could not connect to db after %d attempts: %w", defaultMaxAttempts, err)
}

func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&model.Book{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
