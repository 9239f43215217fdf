package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mr2cool/chimeragpt-sub002/domain"
)

// FileResultSink persists review records as JSON files in a results
// directory. It stands in for the hosted persistence collaborator; the
// runner treats it as fire-and-forget either way.
type FileResultSink struct {
	dir string
}

var _ domain.ResultSink = (*FileResultSink)(nil)

// NewFileResultSink creates a sink writing into dir
func NewFileResultSink(dir string) *FileResultSink {
	return &FileResultSink{dir: dir}
}

// Persist writes one record to <dir>/task-<id>-<type>.json
func (s *FileResultSink) Persist(_ context.Context, record domain.ReviewRecord) error {
	if s.dir == "" {
		return domain.NewPersistError("results directory not configured", nil)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return domain.NewPersistError("failed to create results directory", err)
	}

	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return domain.NewPersistError("failed to encode review record", err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("task-%d-%s.json", record.TaskID, record.ResultType))
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return domain.NewPersistError("failed to write review record", err)
	}

	return nil
}

// NoOpResultSink discards every record
type NoOpResultSink struct{}

// Persist is a no-op
func (NoOpResultSink) Persist(_ context.Context, _ domain.ReviewRecord) error {
	return nil
}
