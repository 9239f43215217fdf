package main

import (
	"testing"

	"github.com/Mr2cool/chimeragpt-sub002/domain"
	"github.com/Mr2cool/chimeragpt-sub002/internal/config"
	"github.com/Mr2cool/chimeragpt-sub002/internal/constants"
)

func TestFilterBySeverity(t *testing.T) {
	issues := []domain.Issue{
		{Rule: "a", Severity: domain.SeverityLow},
		{Rule: "b", Severity: domain.SeverityMedium},
		{Rule: "c", Severity: domain.SeverityHigh},
		{Rule: "d", Severity: domain.SeverityCritical},
	}

	filtered := filterBySeverity(issues, domain.SeverityMedium)
	if len(filtered) != 3 {
		t.Fatalf("Expected 3 issues at medium or above, got %d", len(filtered))
	}
	if filtered[0].Rule != "b" || filtered[2].Rule != "d" {
		t.Errorf("Expected input order preserved, got %v", filtered)
	}

	if all := filterBySeverity(issues, domain.SeverityLow); len(all) != 4 {
		t.Errorf("Expected low threshold to keep everything, got %d", len(all))
	}
	if crit := filterBySeverity(issues, domain.SeverityCritical); len(crit) != 1 {
		t.Errorf("Expected 1 critical issue, got %d", len(crit))
	}
}

func TestCheckExitError(t *testing.T) {
	err := &CheckExitError{Code: 1, Message: "threshold violated"}
	if err.Error() != "threshold violated" {
		t.Errorf("Unexpected message: %q", err.Error())
	}
}

func TestResolveFormat(t *testing.T) {
	cfg := config.DefaultConfig()

	if format := resolveFormat(cfg, "", false); format != domain.OutputFormatText {
		t.Errorf("Expected configured format text, got %s", format)
	}
	if format := resolveFormat(cfg, "yaml", false); format != domain.OutputFormatYAML {
		t.Errorf("Expected flag to override, got %s", format)
	}
	if format := resolveFormat(cfg, "yaml", true); format != domain.OutputFormatJSON {
		t.Errorf("Expected --json shorthand to win, got %s", format)
	}
}

func TestBuildAgent(t *testing.T) {
	cfg := config.DefaultConfig()

	for _, agentType := range []string{
		constants.ResultTypeCodeReview,
		constants.ResultTypePerformance,
		constants.ResultTypeTestQuality,
		constants.ResultTypeDocumentation,
	} {
		svc, err := buildAgent(cfg, agentType, nil)
		if err != nil {
			t.Errorf("buildAgent(%s) failed: %v", agentType, err)
			continue
		}
		if svc.Type() != agentType {
			t.Errorf("Expected agent type %s, got %s", agentType, svc.Type())
		}
	}

	if _, err := buildAgent(cfg, "nope", nil); err == nil {
		t.Error("Expected error for unknown agent type")
	}
}
