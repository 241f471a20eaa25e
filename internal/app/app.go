// Package app assembles the stores, services and HTTP server from the configuration
// and runs them until the context is canceled.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/vadimbarashkov/shortlink/internal/adapter/cache"
	"github.com/vadimbarashkov/shortlink/internal/adapter/identity"
	"github.com/vadimbarashkov/shortlink/internal/adapter/repository/memory"
	"github.com/vadimbarashkov/shortlink/internal/config"
	"github.com/vadimbarashkov/shortlink/internal/entity"
	"github.com/vadimbarashkov/shortlink/internal/usecase"
	"github.com/vadimbarashkov/shortlink/pkg/postgres"
	"golang.org/x/sync/errgroup"

	delivery "github.com/vadimbarashkov/shortlink/internal/adapter/delivery/http"
	pgrepo "github.com/vadimbarashkov/shortlink/internal/adapter/repository/postgres"
)

const shutdownTimeout = 10 * time.Second

type bindingRepository interface {
	Create(ctx context.Context, uid, originalURL string, ownerID int64) (*entity.Binding, error)
	RetrieveByUID(ctx context.Context, uid string) (*entity.Binding, error)
	RetrieveByID(ctx context.Context, id int64) (*entity.Binding, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]entity.Binding, error)
	Reassign(ctx context.Context, id, ownerID int64) (*entity.Binding, error)
	ResetCount(ctx context.Context, id int64) (*entity.Binding, error)
	IncrementCount(ctx context.Context, id int64) (*entity.Binding, error)
	Remove(ctx context.Context, id int64) error
}

type leaseRepository interface {
	Create(ctx context.Context, prefix string, ownerID int64, createdAt time.Time) (*entity.Lease, error)
	RetrieveByPrefix(ctx context.Context, prefix string) (*entity.Lease, error)
	RetrieveByID(ctx context.Context, id int64) (*entity.Lease, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]entity.Lease, error)
	Update(ctx context.Context, lease *entity.Lease) (*entity.Lease, error)
	Remove(ctx context.Context, id int64) error
}

func newLogger(env string) *httplog.Logger {
	opts := httplog.Options{
		LogLevel:        slog.LevelInfo,
		JSON:            true,
		Concise:         true,
		RequestHeaders:  false,
		TimeFieldFormat: time.RFC3339,
	}
	if env == config.EnvDev {
		opts.LogLevel = slog.LevelDebug
		opts.JSON = false
	}

	return httplog.NewLogger("shortlink", opts)
}

// Run wires every component described by cfg and serves HTTP until ctx is done.
func Run(ctx context.Context, cfg *config.Config) error {
	const op = "app.Run"

	logger := newLogger(cfg.Env)

	var (
		bindingRepo bindingRepository
		leaseRepo   leaseRepository
	)

	switch cfg.Storage {
	case config.StorageMemory:
		logger.Warn("using in-memory storage, data is lost on restart")

		bindingRepo = memory.NewBindingRepository()
		leaseRepo = memory.NewLeaseRepository()
	default:
		db, err := connectPostgres(ctx, cfg.Postgres, logger.Logger)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		defer db.Close()

		bindingRepo = pgrepo.NewBindingRepository(db)
		leaseRepo = pgrepo.NewLeaseRepository(db)
	}

	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("%s: failed to connect to redis: %w", op, err)
		}

		bindingRepo = cache.NewBindingRepository(bindingRepo, client, cfg.Redis.CacheTTL, logger.Logger)
	}

	g, ctx := errgroup.WithContext(ctx)

	var limiter *delivery.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = delivery.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		g.Go(func() error {
			return limiter.Run(ctx)
		})
	}

	r := newHandler(cfg.Auth, logger, bindingRepo, leaseRepo, limiter)

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        r,
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g.Go(func() error {
		logger.Info("starting http server", slog.String("addr", server.Addr), slog.String("env", cfg.Env))

		var err error

		if cfg.HTTPServer.CertFile != "" && cfg.HTTPServer.KeyFile != "" {
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		} else {
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}

// newHandler builds the services on top of the given stores and mounts them on a router.
func newHandler(
	auth config.Auth,
	logger *httplog.Logger,
	bindingRepo bindingRepository,
	leaseRepo leaseRepository,
	limiter *delivery.RateLimiter,
) http.Handler {
	leaseUC := usecase.NewLeaseUseCase(leaseRepo, time.Now)
	bindingUC := usecase.NewBindingUseCase(bindingRepo, leaseUC)
	redirectUC := usecase.NewRedirectUseCase(bindingRepo)

	return delivery.NewRouter(
		logger,
		identity.NewVerifier(auth.JWTSecret, auth.Issuer),
		limiter,
		delivery.UseCases{
			Bindings:  bindingUC,
			Leases:    leaseUC,
			Redirects: redirectUC,
		},
	)
}

func connectPostgres(ctx context.Context, cfg config.Postgres, logger *slog.Logger) (*sqlx.DB, error) {
	db, err := postgres.New(
		ctx,
		cfg.DSN(),
		postgres.WithConnMaxIdleTime(cfg.ConnMaxIdleTime),
		postgres.WithConnMaxLifetime(cfg.ConnMaxLifetime),
		postgres.WithMaxIdleConns(cfg.MaxIdleConns),
		postgres.WithMaxOpenConns(cfg.MaxOpenConns),
		postgres.WithConnectAttempts(cfg.ConnectAttempts, time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	res, err := postgres.RunMigrations(cfg.MigrationsPath, cfg.DSN())
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("database schema is up to date",
		slog.Uint64("version", uint64(res.Version)),
		slog.Bool("changed", res.Changed))

	return db, nil
}
