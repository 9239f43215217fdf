package service

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Mr2cool/chimeragpt-sub002/domain"
	"github.com/Mr2cool/chimeragpt-sub002/internal/version"
)

// OutputFormatterImpl implements the OutputFormatter interface
type OutputFormatterImpl struct {
	// ShowEvidence includes matched substrings in text output
	ShowEvidence bool
}

var _ domain.OutputFormatter = (*OutputFormatterImpl)(nil)

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// AgentResultJSON wraps AgentResult with version metadata for JSON output
type AgentResultJSON struct {
	Version  string                 `json:"version" yaml:"version"`
	Success  bool                   `json:"success" yaml:"success"`
	Message  string                 `json:"message,omitempty" yaml:"message,omitempty"`
	Error    string                 `json:"error,omitempty" yaml:"error,omitempty"`
	Data     *domain.AnalysisResult `json:"data" yaml:"data"`
	Metadata domain.ResultMetadata  `json:"metadata" yaml:"metadata"`
}

// Write writes the agent result in the specified format
func (f *OutputFormatterImpl) Write(result *domain.AgentResult, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return f.writeJSON(result, writer)
	case domain.OutputFormatYAML:
		return f.writeYAML(result, writer)
	case domain.OutputFormatText:
		return f.writeText(result, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

func (f *OutputFormatterImpl) wrap(result *domain.AgentResult) AgentResultJSON {
	return AgentResultJSON{
		Version:  version.Version,
		Success:  result.Success,
		Message:  result.Message,
		Error:    result.Error,
		Data:     result.Data,
		Metadata: result.Metadata,
	}
}

func (f *OutputFormatterImpl) writeJSON(result *domain.AgentResult, writer io.Writer) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(f.wrap(result))
}

func (f *OutputFormatterImpl) writeYAML(result *domain.AgentResult, writer io.Writer) error {
	return yaml.NewEncoder(writer).Encode(f.wrap(result))
}

func (f *OutputFormatterImpl) writeText(result *domain.AgentResult, writer io.Writer) error {
	fmt.Fprintf(writer, "\n=== Code Review ===\n\n")

	if !result.Success {
		fmt.Fprintf(writer, "Review failed: %s\n", result.Error)
		return nil
	}

	data := result.Data
	fmt.Fprintf(writer, "%s\n\n", result.Message)

	// Summary
	fmt.Fprintf(writer, "Summary:\n")
	fmt.Fprintf(writer, "  Score: %d/100\n", data.Summary.Score)
	fmt.Fprintf(writer, "  Total issues: %d\n", data.Summary.TotalIssues)
	fmt.Fprintf(writer, "  Critical: %d  High: %d  Medium: %d  Low: %d\n",
		data.Summary.CriticalIssues, data.Summary.HighIssues,
		data.Summary.MediumIssues, data.Summary.LowIssues)
	fmt.Fprintf(writer, "  Complexity: %d\n", data.Metrics.Complexity)
	fmt.Fprintf(writer, "  Maintainability: %d/100\n", data.Metrics.Maintainability)
	fmt.Fprintf(writer, "\n")

	// Issue details
	if len(data.Issues) > 0 {
		fmt.Fprintf(writer, "Issues:\n")
		for _, issue := range data.Issues {
			location := fmt.Sprintf("line %d", issue.Line)
			if issue.File != "" {
				location = fmt.Sprintf("%s:%d", issue.File, issue.Line)
			}
			fmt.Fprintf(writer, "  [%s] %s (%s, %s)\n", severityTag(issue.Severity), issue.Message, issue.Rule, location)
			if issue.Suggestion != "" {
				fmt.Fprintf(writer, "    Suggestion: %s\n", issue.Suggestion)
			}
			if f.ShowEvidence && issue.Evidence != "" {
				fmt.Fprintf(writer, "    Evidence: %s\n", issue.Evidence)
			}
		}
		fmt.Fprintf(writer, "\n")
	}

	// Recommendations
	if len(data.Recommendations) > 0 {
		fmt.Fprintf(writer, "Recommendations:\n")
		for _, recommendation := range data.Recommendations {
			fmt.Fprintf(writer, "  - %s\n", recommendation)
		}
		fmt.Fprintf(writer, "\n")
	}

	fmt.Fprintf(writer, "Completed in %dms\n", result.Metadata.ExecutionTime)
	return nil
}

func severityTag(severity domain.Severity) string {
	switch severity {
	case domain.SeverityCritical:
		return "CRITICAL"
	case domain.SeverityHigh:
		return "HIGH"
	case domain.SeverityMedium:
		return "MEDIUM"
	case domain.SeverityLow:
		return "LOW"
	}
	return "UNKNOWN"
}
