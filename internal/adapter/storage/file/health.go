package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// HealthCheck implements ports.HealthChecker for the file store.
type HealthCheck struct {
	store *Store
}

// NewHealthCheck creates a file store health checker.
func NewHealthCheck(store *Store) *HealthCheck {
	return &HealthCheck{store: store}
}

// Ping reports whether the log is readable, or, before the first append,
// whether its nearest existing parent directory is a directory.
func (h *HealthCheck) Ping(ctx context.Context) error {
	if _, err := h.store.LoadAll(ctx); err != nil {
		return err
	}
	dir := filepath.Dir(h.store.Path())
	for {
		info, err := os.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", dir)
			}
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil
		}
		dir = parent
	}
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "file"
}
