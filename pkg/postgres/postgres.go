// Package postgres opens pooled sqlx connections over the pgx driver and
// applies schema migrations.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const driverName = "pgx"

type options struct {
	connMaxIdleTime time.Duration
	connMaxLifetime time.Duration
	maxIdleConns    int
	maxOpenConns    int
	connectAttempts int
	connectDelay    time.Duration
}

var defaultOptions = options{
	connMaxIdleTime: 5 * time.Minute,
	connMaxLifetime: 30 * time.Minute,
	maxIdleConns:    5,
	maxOpenConns:    25,
	connectAttempts: 1,
	connectDelay:    time.Second,
}

type Option func(*options)

func WithConnMaxIdleTime(d time.Duration) Option {
	return func(o *options) {
		o.connMaxIdleTime = d
	}
}

func WithConnMaxLifetime(d time.Duration) Option {
	return func(o *options) {
		o.connMaxLifetime = d
	}
}

func WithMaxIdleConns(n int) Option {
	return func(o *options) {
		o.maxIdleConns = n
	}
}

func WithMaxOpenConns(n int) Option {
	return func(o *options) {
		o.maxOpenConns = n
	}
}

// WithConnectAttempts retries the initial connection up to n times, waiting
// delay between attempts. Useful when the database starts alongside the service.
func WithConnectAttempts(n int, delay time.Duration) Option {
	return func(o *options) {
		if n > 0 {
			o.connectAttempts = n
		}
		o.connectDelay = delay
	}
}

// New connects to dsn and applies the pool settings.
func New(ctx context.Context, dsn string, opts ...Option) (*sqlx.DB, error) {
	const op = "postgres.New"

	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}

	var (
		db  *sqlx.DB
		err error
	)

	for attempt := 1; ; attempt++ {
		db, err = sqlx.ConnectContext(ctx, driverName, dsn)
		if err == nil || attempt >= o.connectAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", op, ctx.Err())
		case <-time.After(o.connectDelay):
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect to database: %w", op, err)
	}

	db.SetConnMaxIdleTime(o.connMaxIdleTime)
	db.SetConnMaxLifetime(o.connMaxLifetime)
	db.SetMaxIdleConns(o.maxIdleConns)
	db.SetMaxOpenConns(o.maxOpenConns)

	return db, nil
}
