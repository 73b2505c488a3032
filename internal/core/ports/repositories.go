package ports

import (
	"context"
	"errors"
	"time"

	"admin-audit-log/internal/core/domain"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// ActionStore is the durable medium for the action log. It is the only
// component that touches the on-disk representation.
type ActionStore interface {
	// LoadAll returns every record in append order. A medium that does not
	// exist yet yields an empty slice; a corrupted one wraps domain.ErrCorruptLog.
	LoadAll(ctx context.Context) ([]domain.ActionRecord, error)
	// Append atomically persists one fully signed record after all others.
	Append(ctx context.Context, record domain.ActionRecord) error
}

// ErrLockNotAcquired is returned by an AppendLocker that gave up waiting.
var ErrLockNotAcquired = errors.New("append lock not acquired")

// AppendLocker serializes appends across processes that share one medium.
type AppendLocker interface {
	// Acquire blocks until the lock is held or wait elapses, in which case
	// it returns ErrLockNotAcquired.
	Acquire(ctx context.Context, wait time.Duration) (release func(), err error)
}
