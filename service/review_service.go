package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mr2cool/chimeragpt-sub002/domain"
	"github.com/Mr2cool/chimeragpt-sub002/internal/analyzer"
	"github.com/Mr2cool/chimeragpt-sub002/internal/constants"
	"github.com/Mr2cool/chimeragpt-sub002/internal/logging"
)

const (
	// missingInputError is returned when a task carries neither code nor files
	missingInputError = "Either code string or files array is required"

	// unknownErrorFallback is used when a processing failure has no message
	unknownErrorFallback = "Unknown error during code review"

	// persistFailurePrefix is the fixed log prefix for sink failures
	persistFailurePrefix = "failed to save review result"
)

// ReviewServiceImpl implements the ReviewService task contract. It validates
// input, drives the scanner and metrics calculator over one or many files,
// aggregates, and hands the finished result to the persistence sink without
// waiting for it.
//
// The same runner backs the simplified sibling agents (performance, test
// quality, documentation): they pin a fixed category list and their own
// result type, and share everything else.
type ReviewServiceImpl struct {
	label      string
	resultType string

	// fixedCategories, when non-nil, overrides the per-task configuration.
	// The canonical code-review agent leaves it nil and derives categories
	// from the merged config.
	fixedCategories []domain.Category

	sink     domain.ResultSink
	executor *ParallelExecutorImpl
	progress domain.ProgressManager
}

var _ domain.ReviewService = (*ReviewServiceImpl)(nil)

// NewReviewService creates the canonical code-review service
func NewReviewService() *ReviewServiceImpl {
	return &ReviewServiceImpl{
		label:      "Code review",
		resultType: constants.ResultTypeCodeReview,
	}
}

// WithSink sets the persistence sink and returns the service
func (s *ReviewServiceImpl) WithSink(sink domain.ResultSink) *ReviewServiceImpl {
	s.sink = sink
	return s
}

// WithExecutor enables parallel per-file scanning
func (s *ReviewServiceImpl) WithExecutor(executor *ParallelExecutorImpl) *ReviewServiceImpl {
	s.executor = executor
	return s
}

// WithProgress enables progress reporting for multi-file runs
func (s *ReviewServiceImpl) WithProgress(pm domain.ProgressManager) *ReviewServiceImpl {
	s.progress = pm
	return s
}

// Type returns the result type this agent produces
func (s *ReviewServiceImpl) Type() string {
	return s.resultType
}

// Execute runs one review task to completion and returns the result
// envelope. It never returns an error and never panics: validation failures
// and processing failures are folded into a failure envelope, and the
// persistence hand-off cannot affect the outcome.
func (s *ReviewServiceImpl) Execute(ctx context.Context, task domain.Task) domain.AgentResult {
	if task.Input.Code == nil && len(task.Input.Files) == 0 {
		return s.failure(task, missingInputError)
	}

	data, err := s.analyze(ctx, task)
	if err != nil {
		return s.failure(task, errorMessage(err))
	}

	result := domain.AgentResult{
		Success: true,
		Data:    data,
		Message: fmt.Sprintf("%s completed. Found %d issues with score %d/100",
			s.label, data.Summary.TotalIssues, data.Summary.Score),
		Metadata: domain.ResultMetadata{
			ExecutionTime: elapsedSince(task.StartTime),
			IssuesFound:   data.Summary.TotalIssues,
			Score:         data.Summary.Score,
		},
	}

	// Fire-and-forget: success is fixed before the sink call resolves
	s.dispatchPersist(task.ID, data)

	return result
}

// analyze is the single processing boundary. Any panic raised while
// scanning or computing is recovered here and converted to an error; no
// partial results escape.
func (s *ReviewServiceImpl) analyze(ctx context.Context, task domain.Task) (result *domain.AnalysisResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = domain.NewAnalysisError(fmt.Sprintf("%v", r), nil)
		}
	}()

	categories := s.fixedCategories
	if categories == nil {
		cfg := domain.DefaultReviewConfig().Merge(task.Config)
		categories = cfg.EnabledCategories()
	}

	if len(task.Input.Files) > 0 {
		return s.analyzeFiles(ctx, task.Input.Files, categories)
	}
	return analyzeSource(*task.Input.Code, "", categories)
}

// analyzeSource runs the single-source pipeline: scan every enabled
// category, compute metrics, summarize, and recommend.
func analyzeSource(source, filePath string, categories []domain.Category) (*domain.AnalysisResult, error) {
	issues, err := analyzer.ScanCategories(categories, source, filePath)
	if err != nil {
		return nil, err
	}
	if issues == nil {
		issues = []domain.Issue{}
	}

	metrics := analyzer.ComputeMetrics(source)
	recommendations := analyzer.Recommend(issues, metrics)
	if recommendations == nil {
		recommendations = []string{}
	}

	return &domain.AnalysisResult{
		Summary:         analyzer.Summarize(issues),
		Issues:          issues,
		Recommendations: recommendations,
		Metrics:         metrics,
	}, nil
}

// analyzeFiles runs the single-source pipeline per file and aggregates:
// issues concatenated in input-file order, metrics averaged, and
// recommendations deduplicated preserving first-seen order. Per-file results
// land in index-addressed slots, so parallel execution cannot disturb the
// ordering contract.
func (s *ReviewServiceImpl) analyzeFiles(ctx context.Context, files []domain.SourceFile, categories []domain.Category) (*domain.AnalysisResult, error) {
	perFile := make([]*domain.AnalysisResult, len(files))

	var progress domain.TaskProgress = &NoOpTaskProgress{}
	if s.progress != nil && len(files) > 1 {
		progress = s.progress.StartTask("Reviewing files", len(files))
	}
	defer progress.Complete()

	analyzeOne := func(_ context.Context, i int) error {
		fileResult, err := analyzeSource(files[i].Content, files[i].Path, categories)
		if err != nil {
			return fmt.Errorf("[%s] %w", files[i].Path, err)
		}
		perFile[i] = fileResult
		progress.Increment(1)
		return nil
	}

	if s.executor != nil && len(files) > 1 {
		if err := s.executor.Execute(ctx, len(files), analyzeOne); err != nil {
			return nil, err
		}
	} else {
		for i := range files {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("review cancelled: %w", ctx.Err())
			default:
			}
			if err := analyzeOne(ctx, i); err != nil {
				return nil, err
			}
		}
	}

	issues := []domain.Issue{}
	metrics := make([]domain.Metrics, 0, len(files))
	recommendationLists := make([][]string, 0, len(files))
	for _, fileResult := range perFile {
		issues = append(issues, fileResult.Issues...)
		metrics = append(metrics, fileResult.Metrics)
		recommendationLists = append(recommendationLists, fileResult.Recommendations)
	}

	recommendations := analyzer.DedupeOrdered(recommendationLists...)
	if recommendations == nil {
		recommendations = []string{}
	}

	return &domain.AnalysisResult{
		Summary:         analyzer.Summarize(issues),
		Issues:          issues,
		Recommendations: recommendations,
		Metrics:         analyzer.MeanMetrics(metrics),
	}, nil
}

// dispatchPersist hands the finished result to the sink on a separate
// goroutine. Sink failures are logged with a fixed prefix and never retried
// or surfaced; the try/catch wraps exactly the sink call, never the
// computation that produced the result.
func (s *ReviewServiceImpl) dispatchPersist(taskID int64, data *domain.AnalysisResult) {
	if s.sink == nil {
		return
	}

	record := domain.ReviewRecord{
		TaskID:     taskID,
		ResultType: s.resultType,
		ResultData: data,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	sink := s.sink

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.L().Errorw(persistFailurePrefix, "task_id", record.TaskID, "panic", r)
			}
		}()
		if err := sink.Persist(context.Background(), record); err != nil {
			logging.L().Errorw(persistFailurePrefix, "task_id", record.TaskID, "error", err)
		}
	}()
}

// failure builds the failure envelope. Data is always nil; no partial
// results are returned.
func (s *ReviewServiceImpl) failure(task domain.Task, message string) domain.AgentResult {
	return domain.AgentResult{
		Success: false,
		Data:    nil,
		Error:   message,
		Metadata: domain.ResultMetadata{
			ExecutionTime: elapsedSince(task.StartTime),
		},
	}
}

// errorMessage extracts the human-readable message from a processing error,
// falling back to a generic string when none is available.
func errorMessage(err error) string {
	if err == nil {
		return unknownErrorFallback
	}
	var domainErr domain.DomainError
	if errors.As(err, &domainErr) && domainErr.Message != "" {
		return domainErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return unknownErrorFallback
}

// elapsedSince returns milliseconds elapsed since an epoch-ms start time
func elapsedSince(startMillis int64) int64 {
	elapsed := time.Now().UnixMilli() - startMillis
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
