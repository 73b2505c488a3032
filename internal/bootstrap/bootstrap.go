// Package bootstrap assembles the storage and signing stack shared by the
// HTTP service and the operator CLI.
package bootstrap

import (
	"context"
	"fmt"

	"admin-audit-log/config"
	"admin-audit-log/internal/adapter/metrics"
	"admin-audit-log/internal/adapter/storage/file"
	pgStorage "admin-audit-log/internal/adapter/storage/postgres"
	redisStorage "admin-audit-log/internal/adapter/storage/redis"
	"admin-audit-log/internal/core/ports"
	"admin-audit-log/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Stack holds the opened backends. Close releases them in reverse order.
type Stack struct {
	Store    ports.ActionStore
	Signer   *service.HMACSigner
	Redis    *goredis.Client // nil when redis.enabled is false
	Checkers []ports.HealthChecker

	closers []func()
}

// Open connects the configured store and, when enabled, Redis.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Stack, error) {
	signer, err := service.NewHMACSigner(cfg.Signing.Key)
	if err != nil {
		return nil, err
	}
	s := &Stack{Signer: signer}

	switch cfg.Storage.Driver {
	case config.DriverFile:
		store := file.NewStore(cfg.Storage.Path, log)
		s.Store = store
		s.Checkers = append(s.Checkers, file.NewHealthCheck(store))
		log.Info().Str("path", cfg.Storage.Path).Msg("using file audit store")

	case config.DriverPostgres:
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		s.closers = append(s.closers, pool.Close)

		repo := pgStorage.NewActionRepo(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			s.Close()
			return nil, err
		}
		s.Store = repo
		s.Checkers = append(s.Checkers, pgStorage.NewHealthCheck(pool))
		log.Info().Msg("using postgres audit store")

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		s.Redis = rdb
		s.closers = append(s.closers, func() { _ = rdb.Close() })
		s.Checkers = append(s.Checkers, redisStorage.NewHealthCheck(rdb))
	}

	return s, nil
}

// AuditOptions returns the service options implied by cfg and the opened
// stack. reg may be nil to skip metrics.
func (s *Stack) AuditOptions(cfg *config.Config, reg prometheus.Registerer, log zerolog.Logger) []service.AuditOption {
	opts := []service.AuditOption{
		service.WithVerifier(service.NewVerifier(s.Signer, cfg.Verify.Workers, cfg.Verify.MaxRecords)),
	}
	if s.Redis != nil {
		lock := redisStorage.NewAppendLock(s.Redis, cfg.Redis.LockTTL, log)
		opts = append(opts, service.WithAppendLocker(lock, cfg.Redis.LockWait))
	}
	if reg != nil {
		opts = append(opts, service.WithMetrics(metrics.New(reg)))
	}
	return opts
}

// NewAuditService builds the audit service over the stack.
func (s *Stack) NewAuditService(cfg *config.Config, reg prometheus.Registerer, log zerolog.Logger) ports.AuditService {
	return service.NewAuditService(s.Store, s.Signer, log, s.AuditOptions(cfg, reg, log)...)
}

// RateLimitStore returns the Redis-backed limiter store, or nil when rate
// limiting is off.
func (s *Stack) RateLimitStore(cfg *config.Config) *redisStorage.RateLimitStore {
	if s.Redis == nil || !cfg.RateLimit.Enabled {
		return nil
	}
	return redisStorage.NewRateLimitStore(s.Redis)
}

// Close releases every opened backend.
func (s *Stack) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}
