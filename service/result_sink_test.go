package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Mr2cool/chimeragpt-sub002/domain"
)

func TestFileResultSink_Persist(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileResultSink(dir)

	record := domain.ReviewRecord{
		TaskID:     42,
		ResultType: "code_review",
		ResultData: &domain.AnalysisResult{
			Summary: domain.Summary{Score: 100},
			Issues:  []domain.Issue{},
		},
		CreatedAt: "2026-08-29T10:00:00Z",
	}

	if err := sink.Persist(context.Background(), record); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	path := filepath.Join(dir, "task-42-code_review.json")
	payload, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected record file at %s: %v", path, err)
	}

	var restored domain.ReviewRecord
	if err := json.Unmarshal(payload, &restored); err != nil {
		t.Fatalf("Record file is not valid JSON: %v", err)
	}
	if restored.TaskID != 42 || restored.ResultType != "code_review" {
		t.Errorf("Unexpected record contents: %+v", restored)
	}
	if restored.ResultData == nil || restored.ResultData.Summary.Score != 100 {
		t.Errorf("Expected result data to round-trip, got %+v", restored.ResultData)
	}
}

func TestFileResultSink_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "results")
	sink := NewFileResultSink(dir)

	err := sink.Persist(context.Background(), domain.ReviewRecord{TaskID: 1, ResultType: "code_review"})
	if err != nil {
		t.Fatalf("Persist failed: %v", err)
	}
	if _, statErr := os.Stat(dir); statErr != nil {
		t.Errorf("Expected results directory to be created: %v", statErr)
	}
}

func TestFileResultSink_EmptyDir(t *testing.T) {
	sink := NewFileResultSink("")
	err := sink.Persist(context.Background(), domain.ReviewRecord{TaskID: 1})
	if err == nil {
		t.Fatal("Expected error for unconfigured directory")
	}

	domainErr, ok := err.(domain.DomainError)
	if !ok {
		t.Fatalf("Expected DomainError, got %T", err)
	}
	if domainErr.Code != domain.ErrCodePersistError {
		t.Errorf("Expected code %s, got %s", domain.ErrCodePersistError, domainErr.Code)
	}
}

func TestNoOpResultSink(t *testing.T) {
	if err := (NoOpResultSink{}).Persist(context.Background(), domain.ReviewRecord{}); err != nil {
		t.Errorf("Expected no-op sink to succeed, got %v", err)
	}
}

func TestNoOpProgressManager(t *testing.T) {
	pm := NewProgressManager(false)
	if pm.IsInteractive() {
		t.Error("Expected non-interactive manager when disabled")
	}

	task := pm.StartTask("working", 10)
	task.Increment(5)
	task.Complete()
	pm.Close()
}
