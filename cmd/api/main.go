// @title        Registry API
// @version      3.0
// @description  Validated create, get and list for users and forms.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/holamundo/registry-api/internal/api"
	"github.com/holamundo/registry-api/internal/api/handler"
	"github.com/holamundo/registry-api/internal/core/ports"
	"github.com/holamundo/registry-api/internal/core/service"
	"github.com/holamundo/registry-api/internal/infrastructure/db/memory"
	mongostore "github.com/holamundo/registry-api/internal/infrastructure/db/mongo"
	redisstore "github.com/holamundo/registry-api/internal/infrastructure/db/redis"
	"github.com/holamundo/registry-api/internal/pkg/config"
	"github.com/holamundo/registry-api/pkg/logger"
)

const serviceName = "registry-api"

// backends holds the stores selected by configuration and the hooks needed
// to probe and release them.
type backends struct {
	users  ports.UserRepository
	forms  ports.FormRepository
	idem   ports.IdempotencyStore
	checks map[string]handler.Checker
	close  []func(context.Context) error
}

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
		Env:     cfg.Env,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	b, err := openBackends(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer b.shutdown(log)

	users := service.NewUserService(b.users, b.idem, log)
	forms := service.NewFormService(b.forms, b.idem, log)

	e := api.NewRouter(users, forms, api.RouterConfig{
		JWTSecret:    cfg.JWTSecret,
		RateLimitRPS: cfg.RateLimitRPS,
		Checks:       b.checks,
		Logger:       log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("store", cfg.StoreBackend).
			Str("idempotency", cfg.IdempotencyBackend).
			Bool("auth", cfg.JWTSecret != "").
			Float64("rate_limit_rps", cfg.RateLimitRPS).
			Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func openBackends(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*backends, error) {
	b := &backends{checks: map[string]handler.Checker{}}

	switch cfg.StoreBackend {
	case config.BackendMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, err
		}
		b.close = append(b.close, client.Disconnect)

		users := mongostore.NewUserRepository(db)
		forms := mongostore.NewFormRepository(db)
		if err := users.EnsureIndexes(ctx); err != nil {
			b.shutdown(log)
			return nil, fmt.Errorf("user indexes: %w", err)
		}
		if err := forms.EnsureIndexes(ctx); err != nil {
			b.shutdown(log)
			return nil, fmt.Errorf("form indexes: %w", err)
		}
		b.users, b.forms = users, forms
		b.checks["mongodb"] = mongostore.Checker(client)
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")
	default:
		b.users = memory.NewUserRepository()
		b.forms = memory.NewFormRepository()
	}

	switch cfg.IdempotencyBackend {
	case config.BackendRedis:
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			b.shutdown(log)
			return nil, err
		}
		b.close = append(b.close, func(context.Context) error { return client.Close() })
		b.idem = redisstore.NewIdempotencyStore(client, cfg.IdempotencyTTL)
		b.checks["redis"] = redisstore.Checker(client)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	default:
		b.idem = memory.NewIdempotencyStore(cfg.IdempotencyTTL)
	}

	return b, nil
}

// shutdown releases the backends in reverse order of opening.
func (b *backends) shutdown(log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for i := len(b.close) - 1; i >= 0; i-- {
		if err := b.close[i](ctx); err != nil {
			log.Warn().Err(err).Msg("closing backend")
		}
	}
	b.close = nil
}
