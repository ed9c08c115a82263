package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"sales-agentic-assistant/internal/model"
	pkgLog "sales-agentic-assistant/pkg/log"
)

// Store holds the in-memory course catalog. Reads never block: the
// record slice is swapped atomically on reload and treated as immutable
// after publication.
type Store struct {
	l       pkgLog.Logger
	path    string
	records atomic.Pointer[[]model.CourseRecord]
}

func NewStore(l pkgLog.Logger, path string) *Store {
	return &Store{l: l, path: path}
}

// Load reads the catalog file and publishes it. The previous snapshot
// stays visible to in-flight readers.
func (s *Store) Load(ctx context.Context) error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", s.path, err)
	}

	var records []model.CourseRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("decode catalog %s: %w", s.path, err)
	}

	s.records.Store(&records)
	s.l.Infof(ctx, "catalog loaded, records=%d path=%s", len(records), s.path)
	return nil
}

// Reload re-reads the catalog file and swaps the snapshot atomically.
func (s *Store) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

// Records returns the current catalog snapshot. Callers must not
// mutate the returned slice.
func (s *Store) Records() []model.CourseRecord {
	p := s.records.Load()
	if p == nil {
		return nil
	}
	return *p
}
