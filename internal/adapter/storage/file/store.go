// Package file stores the admin action log as a single JSON array on disk.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"admin-audit-log/internal/core/domain"

	"github.com/rs/zerolog"
)

// Store implements ports.ActionStore over a JSON file. Appends rewrite the
// whole file through a temp file and rename, so readers see either the old
// or the new log and never a partial one.
type Store struct {
	path string
	log  zerolog.Logger
	mu   sync.RWMutex
}

// NewStore creates a file-backed store. The file and its directory are
// created on the first append.
func NewStore(path string, log zerolog.Logger) *Store {
	return &Store{
		path: path,
		log:  log.With().Str("component", "file_store").Str("path", path).Logger(),
	}
}

// Path returns the log file location.
func (s *Store) Path() string {
	return s.path
}

// LoadAll returns every record in append order. An element that does not
// decode as a record is returned with DecodeError set rather than failing
// the whole log.
func (s *Store) LoadAll(ctx context.Context) ([]domain.ActionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	raw, err := s.read()
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	records := make([]domain.ActionRecord, len(raw))
	for i, elem := range raw {
		records[i] = domain.DecodeActionRecord(elem)
		if records[i].DecodeError != "" {
			s.log.Warn().Int("index", i).Str("record_id", records[i].ID).Str("error", records[i].DecodeError).Msg("malformed record in audit log")
		}
	}
	return records, nil
}

// Append writes record after every existing record. Existing elements are
// carried over as stored, including ones that no longer decode.
func (s *Store) Append(ctx context.Context, record domain.ActionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.read()
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding action record: %w", err)
	}
	raw = append(raw, encoded)

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding audit log: %w", err)
	}
	if err := s.writeAtomic(data); err != nil {
		return err
	}

	s.log.Debug().Str("record_id", record.ID).Int("records", len(raw)).Msg("audit log rewritten")
	return nil
}

// read returns the stored array elements undecoded. Content that is not a
// JSON array wraps domain.ErrCorruptLog.
func (s *Store) read() ([]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []json.RawMessage{}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptLog, s.path, err)
	}
	if raw == nil {
		raw = []json.RawMessage{}
	}
	return raw, nil
}

func (s *Store) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating audit log directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o640); err != nil {
		return fmt.Errorf("setting audit log permissions: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replacing audit log: %w", err)
	}
	committed = true
	return nil
}
