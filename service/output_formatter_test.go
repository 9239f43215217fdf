package service

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Mr2cool/chimeragpt-sub002/domain"
)

func sampleResult() *domain.AgentResult {
	return &domain.AgentResult{
		Success: true,
		Message: "Code review completed. Found 1 issues with score 75/100",
		Data: &domain.AnalysisResult{
			Summary: domain.Summary{TotalIssues: 1, CriticalIssues: 1, Score: 75},
			Issues: []domain.Issue{{
				Type:       domain.CategorySecurity,
				Severity:   domain.SeverityCritical,
				File:       "app.js",
				Line:       3,
				Message:    "Use of eval() can lead to code injection vulnerabilities",
				Suggestion: "Avoid eval(); use JSON.parse() or a safe expression evaluator instead",
				Rule:       "no-eval",
				Evidence:   "eval(",
			}},
			Recommendations: []string{"Review and fix security vulnerabilities immediately"},
			Metrics:         domain.Metrics{Complexity: 2, Maintainability: 90},
		},
		Metadata: domain.ResultMetadata{ExecutionTime: 12, IssuesFound: 1, Score: 75},
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewOutputFormatter().Write(sampleResult(), domain.OutputFormatJSON, &buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var decoded AgentResultJSON
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if !decoded.Success {
		t.Error("Expected success=true in JSON output")
	}
	if decoded.Version == "" {
		t.Error("Expected version field in JSON output")
	}
	if decoded.Data == nil || decoded.Data.Summary.Score != 75 {
		t.Errorf("Expected score 75 in JSON data, got %+v", decoded.Data)
	}
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := NewOutputFormatter().Write(sampleResult(), domain.OutputFormatYAML, &buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}
	if decoded["success"] != true {
		t.Errorf("Expected success=true in YAML output, got %v", decoded["success"])
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := NewOutputFormatter().Write(sampleResult(), domain.OutputFormatText, &buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	output := buf.String()
	for _, expected := range []string{
		"Score: 75/100",
		"[CRITICAL]",
		"app.js:3",
		"no-eval",
		"Review and fix security vulnerabilities immediately",
		"Completed in 12ms",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("Expected text output to contain %q:\n%s", expected, output)
		}
	}

	if strings.Contains(output, "Evidence:") {
		t.Error("Expected evidence hidden by default")
	}
}

func TestWrite_TextWithEvidence(t *testing.T) {
	var buf bytes.Buffer
	formatter := &OutputFormatterImpl{ShowEvidence: true}
	if err := formatter.Write(sampleResult(), domain.OutputFormatText, &buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Evidence: eval(") {
		t.Error("Expected evidence in text output when enabled")
	}
}

func TestWrite_TextFailure(t *testing.T) {
	result := &domain.AgentResult{
		Success: false,
		Error:   "Either code string or files array is required",
	}

	var buf bytes.Buffer
	if err := NewOutputFormatter().Write(result, domain.OutputFormatText, &buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Review failed: Either code string or files array is required") {
		t.Errorf("Expected failure message in text output:\n%s", buf.String())
	}
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewOutputFormatter().Write(sampleResult(), domain.OutputFormat("xml"), &buf)
	if err == nil {
		t.Fatal("Expected error for unsupported format")
	}

	domainErr, ok := err.(domain.DomainError)
	if !ok {
		t.Fatalf("Expected DomainError, got %T", err)
	}
	if domainErr.Code != domain.ErrCodeUnsupportedFormat {
		t.Errorf("Expected code %s, got %s", domain.ErrCodeUnsupportedFormat, domainErr.Code)
	}
}
