package domain

import (
	"context"
	"io"
)

// Severity represents the ordinal severity of a detected issue
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Weight returns the score penalty applied per issue of this severity
func (s Severity) Weight() int {
	switch s {
	case SeverityCritical:
		return 25
	case SeverityHigh:
		return 10
	case SeverityMedium:
		return 5
	case SeverityLow:
		return 1
	}
	return 0
}

// Rank returns the ordinal position of the severity (higher is more severe)
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 0
	}
	return -1
}

// AtLeast reports whether s is at least as severe as min
func (s Severity) AtLeast(min Severity) bool {
	return s.Rank() >= min.Rank()
}

// Category represents a rule category
type Category string

const (
	CategorySecurity      Category = "security"
	CategoryPerformance   Category = "performance"
	CategoryBestPractice  Category = "best-practice"
	CategoryAccessibility Category = "accessibility"
	CategoryTesting       Category = "testing"
	CategoryDocumentation Category = "documentation"
)

// Issue represents one concrete rule violation at a specific location.
// Issues are created once per pattern occurrence and never mutated.
type Issue struct {
	// Type is the rule category that produced this issue
	Type Category `json:"type" yaml:"type"`

	// Severity drives the scoring weight
	Severity Severity `json:"severity" yaml:"severity"`

	// File is the source file path (empty for inline code input)
	File string `json:"file,omitempty" yaml:"file,omitempty"`

	// Line is the 1-based line number of the occurrence
	Line int `json:"line" yaml:"line"`

	// Message is the human-readable description of the violation
	Message string `json:"message" yaml:"message"`

	// Suggestion is the remediation hint attached to the rule
	Suggestion string `json:"suggestion" yaml:"suggestion"`

	// Rule is the identifier of the rule that matched
	Rule string `json:"rule" yaml:"rule"`

	// Evidence is the matched substring
	Evidence string `json:"evidence,omitempty" yaml:"evidence,omitempty"`
}

// Metrics holds the complexity and maintainability heuristics for a source text
type Metrics struct {
	// Complexity is an additive branch-count heuristic, always >= 1
	Complexity int `json:"complexity" yaml:"complexity"`

	// Maintainability is a 0-100 heuristic combining complexity, size, and function count
	Maintainability int `json:"maintainability" yaml:"maintainability"`
}

// Summary contains severity counts and the derived score for an issue set
type Summary struct {
	TotalIssues    int `json:"totalIssues" yaml:"total_issues"`
	CriticalIssues int `json:"criticalIssues" yaml:"critical_issues"`
	HighIssues     int `json:"highIssues" yaml:"high_issues"`
	MediumIssues   int `json:"mediumIssues" yaml:"medium_issues"`
	LowIssues      int `json:"lowIssues" yaml:"low_issues"`

	// Score is 100 minus severity-weighted penalties, clamped at 0
	Score int `json:"score" yaml:"score"`
}

// AnalysisResult is the complete outcome of one review task.
// It is owned by a single task execution and never mutated after construction.
type AnalysisResult struct {
	Summary         Summary  `json:"summary" yaml:"summary"`
	Issues          []Issue  `json:"issues" yaml:"issues"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
	Metrics         Metrics  `json:"metrics" yaml:"metrics"`
}

// SourceFile is one file of a multi-file review input
type SourceFile struct {
	Path    string `json:"path" yaml:"path"`
	Content string `json:"content" yaml:"content"`
}

// TaskInput carries either an inline code string or a list of files.
// Exactly one of the two is expected; supplying neither is a validation error.
type TaskInput struct {
	Code  *string      `json:"code,omitempty" yaml:"code,omitempty"`
	Files []SourceFile `json:"files,omitempty" yaml:"files,omitempty"`
}

// Task is one unit of analysis work supplied by the external caller.
// It is read-only to the engine.
type Task struct {
	ID int64 `json:"id" yaml:"id"`

	// StartTime is the task submission time in epoch milliseconds
	StartTime int64 `json:"startTime" yaml:"start_time"`

	Input TaskInput `json:"input" yaml:"input"`

	// Config optionally overrides parts of the default review configuration
	Config *ConfigPatch `json:"config,omitempty" yaml:"config,omitempty"`
}

// ResultMetadata carries execution statistics for an AgentResult
type ResultMetadata struct {
	// ExecutionTime is the elapsed time since Task.StartTime in milliseconds
	ExecutionTime int64 `json:"executionTime" yaml:"execution_time"`

	IssuesFound int `json:"issuesFound" yaml:"issues_found"`
	Score       int `json:"score" yaml:"score"`
}

// AgentResult is the standard response envelope returned for any task,
// success or failure. It is the only object handed back to the caller.
type AgentResult struct {
	Success  bool            `json:"success" yaml:"success"`
	Data     *AnalysisResult `json:"data" yaml:"data"`
	Message  string          `json:"message,omitempty" yaml:"message,omitempty"`
	Error    string          `json:"error,omitempty" yaml:"error,omitempty"`
	Metadata ResultMetadata  `json:"metadata" yaml:"metadata"`
}

// ReviewRecord is the payload handed to the persistence collaborator
type ReviewRecord struct {
	TaskID     int64           `json:"task_id"`
	ResultType string          `json:"result_type"`
	ResultData *AnalysisResult `json:"result_data"`

	// CreatedAt is an ISO-8601 timestamp
	CreatedAt string `json:"created_at"`
}

// ReviewService defines the task-execution contract of the review engine.
// Execute never returns an error: all failures are folded into the envelope.
type ReviewService interface {
	Execute(ctx context.Context, task Task) AgentResult
}

// ResultSink is the external persistence collaborator. It may fail; the
// engine logs failures and never retries or surfaces them to the caller.
type ResultSink interface {
	Persist(ctx context.Context, record ReviewRecord) error
}

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// OutputFormatter defines the interface for rendering agent results
type OutputFormatter interface {
	Write(result *AgentResult, format OutputFormat, writer io.Writer) error
}

// ProgressManager creates progress tasks for long-running operations
type ProgressManager interface {
	StartTask(description string, total int) TaskProgress
	IsInteractive() bool
	Close()
}

// TaskProgress tracks progress of a single operation
type TaskProgress interface {
	Increment(n int)
	Complete()
}
