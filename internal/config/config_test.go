package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mr2cool/chimeragpt-sub002/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Review.CheckSecurity || !cfg.Review.CheckPerformance || !cfg.Review.CheckBestPractices {
		t.Errorf("Expected default categories on: %+v", cfg.Review)
	}
	if cfg.Review.CheckAccessibility {
		t.Error("Expected accessibility off by default")
	}
	if cfg.Review.SeverityThreshold != "medium" {
		t.Errorf("Expected default threshold medium, got %s", cfg.Review.SeverityThreshold)
	}
	if cfg.Check.MinScore != DefaultMinScore {
		t.Errorf("Expected default min score %d, got %d", DefaultMinScore, cfg.Check.MinScore)
	}
	if !cfg.Check.FailOnCritical {
		t.Error("Expected fail_on_critical on by default")
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Expected default format text, got %s", cfg.Output.Format)
	}
	if !cfg.Analysis.Recursive || !cfg.Analysis.RespectGitignore {
		t.Errorf("Expected recursive and gitignore-aware defaults: %+v", cfg.Analysis)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		expected string
	}{
		{"bad severity", func(c *Config) { c.Review.SeverityThreshold = "extreme" }, "severity_threshold"},
		{"score too high", func(c *Config) { c.Check.MinScore = 150 }, "min_score"},
		{"score negative", func(c *Config) { c.Check.MinScore = -1 }, "min_score"},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }, "output format"},
		{"negative goroutines", func(c *Config) { c.Performance.MaxGoroutines = -2 }, "max_goroutines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.expected) {
				t.Errorf("Expected error mentioning %q, got: %v", tt.expected, err)
			}
		})
	}
}

func TestToPatch(t *testing.T) {
	review := ReviewConfig{
		CheckSecurity:      true,
		CheckPerformance:   false,
		CheckBestPractices: true,
		CheckAccessibility: true,
		SeverityThreshold:  "low",
		Frameworks:         []string{"react"},
	}

	patch := review.ToPatch()

	if patch.CheckSecurity == nil || !*patch.CheckSecurity {
		t.Error("Expected CheckSecurity=true in patch")
	}
	if patch.CheckPerformance == nil || *patch.CheckPerformance {
		t.Error("Expected CheckPerformance=false in patch")
	}
	if patch.SeverityThreshold == nil || *patch.SeverityThreshold != domain.SeverityLow {
		t.Error("Expected threshold low in patch")
	}

	merged := domain.DefaultReviewConfig().Merge(patch)
	if merged.CheckPerformance {
		t.Error("Expected merged config to disable performance")
	}
	if !merged.CheckAccessibility {
		t.Error("Expected merged config to enable accessibility")
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crev.yaml")
	content := `review:
  check_security: true
  check_accessibility: true
  severity_threshold: low
check:
  min_score: 85
output:
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if !cfg.Review.CheckAccessibility {
		t.Error("Expected accessibility enabled by file")
	}
	if cfg.Review.SeverityThreshold != "low" {
		t.Errorf("Expected threshold low, got %s", cfg.Review.SeverityThreshold)
	}
	if cfg.Check.MinScore != 85 {
		t.Errorf("Expected min score 85, got %d", cfg.Check.MinScore)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Expected format json, got %s", cfg.Output.Format)
	}
	// untouched sections keep defaults
	if cfg.Performance.MaxGoroutines != DefaultMaxGoroutines {
		t.Errorf("Expected default max goroutines, got %d", cfg.Performance.MaxGoroutines)
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crev.yaml")
	if err := os.WriteFile(path, []byte("check:\n  min_score: 500\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected error for out-of-range min_score")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing explicit config file")
	}
}

func TestLoadConfigWithTarget_UpwardDiscovery(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "components")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("Failed to create nested dirs: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "crev.yaml"), []byte("check:\n  min_score: 90\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfigWithTarget("", nested)
	if err != nil {
		t.Fatalf("LoadConfigWithTarget failed: %v", err)
	}
	if cfg.Check.MinScore != 90 {
		t.Errorf("Expected config discovered from ancestor directory, got min score %d", cfg.Check.MinScore)
	}
}

func TestGetConfigTemplates(t *testing.T) {
	full := GetFullConfigTemplate()
	minimal := GetMinimalConfigTemplate()

	if !strings.Contains(full, "severity_threshold") {
		t.Error("Expected full template to mention severity_threshold")
	}
	if !strings.Contains(minimal, "review:") {
		t.Error("Expected minimal template to have a review section")
	}
	if len(minimal) >= len(full) {
		t.Error("Expected minimal template to be shorter than the full one")
	}
}
