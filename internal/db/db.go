package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/wangserena1960-stack/fitcircle-backend/internal/config"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Pool defaults for when the config leaves them unset.
const (
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 10
	defaultConnMaxLifetime = 300 * time.Second
	defaultConnMaxIdleTime = 60 * time.Second
)

// New opens the Postgres connection described by cfg and verifies it with a
// ping. The process cannot serve anything without storage, so a failed ping
// is fatal.
func New(cfg config.DatabaseConfig) *bun.DB {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, sslMode)

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	database := bun.NewDB(sqldb, pgdialect.New())

	if err := database.Ping(); err != nil {
		log.Fatal("error pinging database: ", err)
	}

	configurePool(database.DB, cfg)

	slog.Info("database connected",
		"host", cfg.Host,
		"name", cfg.DBName,
	)
	return database
}

func configurePool(pool *sql.DB, cfg config.DatabaseConfig) {
	maxOpen := cfg.MaxOpenConns
	if maxOpen == 0 {
		maxOpen = defaultMaxOpenConns
	}
	maxIdle := cfg.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = defaultMaxIdleConns
	}
	lifetime := time.Duration(cfg.ConnMaxLifetime) * time.Second
	if lifetime == 0 {
		lifetime = defaultConnMaxLifetime
	}
	idleTime := time.Duration(cfg.ConnMaxIdleTime) * time.Second
	if idleTime == 0 {
		idleTime = defaultConnMaxIdleTime
	}

	pool.SetMaxOpenConns(maxOpen)
	pool.SetMaxIdleConns(maxIdle)
	pool.SetConnMaxLifetime(lifetime)
	pool.SetConnMaxIdleTime(idleTime)

	slog.Info("database pool configured",
		"max_open_conns", maxOpen,
		"max_idle_conns", maxIdle,
		"conn_max_lifetime", lifetime,
		"conn_max_idle_time", idleTime,
	)
}

// RunMigrations creates the tables for the given bun models when missing.
// Column changes to existing tables still need manual migration.
func RunMigrations(ctx context.Context, database *bun.DB, models ...interface{}) error {
	for _, model := range models {
		if _, err := database.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}
	slog.Info("database migrations completed")
	return nil
}
