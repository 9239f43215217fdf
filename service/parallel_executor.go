package service

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Mr2cool/chimeragpt-sub002/internal/config"
)

// Default values for parallel executor
const (
	// DefaultMaxConcurrency is used when the config value is invalid
	DefaultMaxConcurrency = 4

	// DefaultTimeout bounds a whole multi-file review
	DefaultTimeout = 5 * time.Minute
)

// IndexError represents a single per-index failure
type IndexError struct {
	Index int
	Err   error
}

// Error implements the error interface
func (e IndexError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error
func (e IndexError) Unwrap() error {
	return e.Err
}

// AggregatedError collects all per-index failures
type AggregatedError struct {
	Errors []IndexError
}

// Error implements the error interface
func (e *AggregatedError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d items failed:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Unwrap returns the first error for errors.Is/As compatibility
func (e *AggregatedError) Unwrap() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e.Errors[0].Err
}

// ParallelExecutorImpl fans work out over indexed items with bounded
// concurrency. Callers write results into index-addressed slots, so the
// aggregation order is always the input order regardless of scheduling.
type ParallelExecutorImpl struct {
	maxConcurrency int
	timeout        time.Duration
}

// NewParallelExecutor creates an executor with runtime.NumCPU() concurrency
func NewParallelExecutor() *ParallelExecutorImpl {
	return &ParallelExecutorImpl{
		maxConcurrency: runtime.NumCPU(),
		timeout:        DefaultTimeout,
	}
}

// NewParallelExecutorFromConfig creates an executor from configuration
func NewParallelExecutorFromConfig(cfg *config.PerformanceConfig) *ParallelExecutorImpl {
	maxConcurrency := cfg.MaxGoroutines
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &ParallelExecutorImpl{
		maxConcurrency: maxConcurrency,
		timeout:        timeout,
	}
}

// Execute runs fn for every index in [0, n) with the configured concurrency
// and timeout. All failures are collected; fn is invoked for every index
// unless the context is cancelled first.
func (e *ParallelExecutorImpl) Execute(ctx context.Context, n int, fn func(ctx context.Context, index int) error) error {
	if n <= 0 {
		return nil
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	g, gCtx := errgroup.WithContext(timeoutCtx)
	g.SetLimit(e.maxConcurrency)

	var errMu sync.Mutex
	var indexErrors []IndexError

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
			}

			if err := fn(gCtx, i); err != nil {
				errMu.Lock()
				indexErrors = append(indexErrors, IndexError{Index: i, Err: err})
				errMu.Unlock()
			}

			// Errors are collected above so every index still runs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if len(indexErrors) > 0 {
		return &AggregatedError{Errors: indexErrors}
	}

	return nil
}
