package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"admin-audit-log/internal/core/ports"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	appendLockKey    = "lock:admin-audit:append"
	appendLockRetry  = 25 * time.Millisecond
	lockReleaseLimit = 2 * time.Second
)

// releaseScript deletes the lock only if this holder still owns it.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// AppendLock implements ports.AppendLocker with a Redis SET NX PX lease.
type AppendLock struct {
	client *goredis.Client
	key    string
	ttl    time.Duration
	log    zerolog.Logger
}

// NewAppendLock creates a lock whose lease expires after ttl if the holder
// never releases it.
func NewAppendLock(client *goredis.Client, ttl time.Duration, log zerolog.Logger) *AppendLock {
	return &AppendLock{
		client: client,
		key:    appendLockKey,
		ttl:    ttl,
		log:    log.With().Str("component", "append_lock").Logger(),
	}
}

// Acquire polls until the lease is taken, wait elapses or ctx is done.
func (l *AppendLock) Acquire(ctx context.Context, wait time.Duration) (func(), error) {
	token := uuid.NewString()
	deadline := time.Now().Add(wait)

	for {
		ok, err := l.tryAcquire(ctx, token)
		if err != nil {
			return nil, err
		}
		if ok {
			return func() { l.release(token) }, nil
		}

		if !time.Now().Before(deadline) {
			return nil, ports.ErrLockNotAcquired
		}
		timer := time.NewTimer(min(appendLockRetry, time.Until(deadline)))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (l *AppendLock) tryAcquire(ctx context.Context, token string) (bool, error) {
	result, err := l.client.SetArgs(ctx, l.key, token, goredis.SetArgs{
		Mode: "NX",
		TTL:  l.ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			// Held by another writer
			return false, nil
		}
		return false, fmt.Errorf("redis append lock: %w", err)
	}
	return result == "OK", nil
}

func (l *AppendLock) release(token string) {
	ctx, cancel := context.WithTimeout(context.Background(), lockReleaseLimit)
	defer cancel()

	if err := releaseScript.Run(ctx, l.client, []string{l.key}, token).Err(); err != nil {
		l.log.Warn().Err(err).Msg("failed to release append lock, it will expire on its own")
	}
}
