// Package postgres implements the LightBnB data-access layer over a single
// shared connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/lightbnb/lightbnb-api/internal/core/domain"
	"github.com/lightbnb/lightbnb-api/internal/metrics"
)

const (
	defaultConnectTimeout = 10 * time.Second
	defaultQueryTimeout   = 3 * time.Second
)

// Config captures the pool settings. Zero values fall back to the driver
// defaults, except Timeout which bounds the initial ping.
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Timeout         time.Duration
}

// Connect opens the pool and verifies connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	db, err := sqlx.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return db, nil
}

func queryTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultQueryTimeout
	}
	return d
}

// observe records the outcome of a store operation. errp points at the
// operation's named error result.
func observe(operation string, start time.Time, errp *error) {
	outcome := "ok"
	switch err := *errp; {
	case err == nil:
	case errors.Is(err, domain.ErrUserNotFound):
		outcome = "not_found"
	default:
		outcome = "error"
	}
	metrics.ObserveQuery(operation, outcome, start)
}
