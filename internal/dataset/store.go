package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"
)

// Options configures a Store.
type Options struct {
	// Path is the source workbook on disk.
	Path string
	// Sheet selects the worksheet; empty means the first sheet.
	Sheet string
	// StrictIdentity fails the load when teacher names and ids do not
	// map one-to-one instead of serving with a warning.
	StrictIdentity bool
}

// Store is a single-slot cache of the canonical dataset keyed by the
// source file's modification time. The snapshot is replaced wholesale on
// change; readers always observe either the previous complete dataset or
// the new one, never a partial rebuild.
type Store struct {
	opts   Options
	logger *slog.Logger

	mu      sync.RWMutex
	data    *Dataset
	modTime time.Time
}

// NewStore creates a store for the configured source. Nothing is loaded
// until the first Dataset call.
func NewStore(opts Options, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		opts:   opts,
		logger: logger.With(slog.String("component", "dataset_store")),
	}
}

// Dataset returns the canonical dataset, reloading from disk when the
// source has changed since the previous successful load. A load failure
// propagates to the caller; the stale snapshot is never served instead.
func (s *Store) Dataset(ctx context.Context) (*Dataset, error) {
	info, err := os.Stat(s.opts.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %v", ErrBadSource, s.opts.Path, err)
	}
	modTime := info.ModTime()

	s.mu.RLock()
	if s.data != nil && s.modTime.Equal(modTime) {
		ds := s.data
		s.mu.RUnlock()
		return ds, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another caller may have reloaded while we waited for the lock.
	if s.data != nil && s.modTime.Equal(modTime) {
		return s.data, nil
	}

	ds, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	s.data = ds
	s.modTime = modTime
	return ds, nil
}

// Invalidate drops the cached snapshot, forcing the next Dataset call to
// reload from disk.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.modTime = time.Time{}
}

func (s *Store) load(ctx context.Context) (*Dataset, error) {
	start := time.Now()
	rows, err := LoadWorkbook(s.opts.Path, s.opts.Sheet)
	if err != nil {
		s.logger.ErrorContext(ctx, "dataset load failed",
			slog.String("path", s.opts.Path),
			slog.String("error", err.Error()))
		return nil, err
	}

	records := Normalize(rows)

	if conflicts := ValidateIdentities(records); len(conflicts) > 0 {
		for _, c := range conflicts {
			s.logger.WarnContext(ctx, "teacher identity conflict",
				slog.String("conflict", c.String()))
		}
		if s.opts.StrictIdentity {
			return nil, fmt.Errorf("%w: %d conflicts", ErrIdentityConflict, len(conflicts))
		}
	}

	s.logger.InfoContext(ctx, "dataset loaded",
		slog.String("path", s.opts.Path),
		slog.Int("raw_rows", len(rows)),
		slog.Int("records", len(records)),
		slog.Duration("duration", time.Since(start)))

	return &Dataset{Records: records, LoadedAt: time.Now()}, nil
}
