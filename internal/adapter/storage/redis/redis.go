package redis

import (
	"context"
	"fmt"

	"admin-audit-log/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// NewClient connects to the Redis instance that holds the append lock and
// the rate limit counters.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Str("lock_key", appendLockKey).
		Dur("lock_ttl", cfg.LockTTL).
		Msg("audit log lock store connected")

	// A lease left by a crashed writer blocks appends until it expires.
	if ttl, err := client.PTTL(ctx, appendLockKey).Result(); err == nil && ttl > 0 {
		log.Warn().
			Str("lock_key", appendLockKey).
			Dur("expires_in", ttl).
			Msg("append lock already held at startup")
	}

	return client, nil
}
