package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Mr2cool/chimeragpt-sub002/domain"
	"github.com/Mr2cool/chimeragpt-sub002/internal/constants"
)

// Default check thresholds
const (
	// DefaultMinScore is the lowest batch score the check command accepts
	DefaultMinScore = 70

	// DefaultMaxGoroutines bounds per-file scan concurrency
	DefaultMaxGoroutines = 4

	// DefaultTimeoutSeconds bounds a whole multi-file review
	DefaultTimeoutSeconds = 300
)

// Config represents the main configuration structure
type Config struct {
	// Review holds per-category detection configuration
	Review ReviewConfig `json:"review" mapstructure:"review" yaml:"review"`

	// Check holds CI gate thresholds
	Check CheckConfig `json:"check" mapstructure:"check" yaml:"check"`

	// Output holds output formatting configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Analysis holds file collection configuration
	Analysis AnalysisConfig `json:"analysis" mapstructure:"analysis" yaml:"analysis"`

	// Performance holds concurrency configuration
	Performance PerformanceConfig `json:"performance" mapstructure:"performance" yaml:"performance"`
}

// ReviewConfig holds the detection toggles exposed in the config file
type ReviewConfig struct {
	// CheckSecurity enables the security rule category
	CheckSecurity bool `json:"check_security" mapstructure:"check_security" yaml:"check_security"`

	// CheckPerformance enables the performance rule category
	CheckPerformance bool `json:"check_performance" mapstructure:"check_performance" yaml:"check_performance"`

	// CheckBestPractices enables the best-practice rule category
	CheckBestPractices bool `json:"check_best_practices" mapstructure:"check_best_practices" yaml:"check_best_practices"`

	// CheckAccessibility enables the accessibility rule category
	CheckAccessibility bool `json:"check_accessibility" mapstructure:"check_accessibility" yaml:"check_accessibility"`

	// SeverityThreshold is the minimum severity reported by surfaces that
	// filter (the check command); the scan pipeline emits everything
	SeverityThreshold string `json:"severity_threshold" mapstructure:"severity_threshold" yaml:"severity_threshold"`

	// Frameworks and Languages describe the project under review
	Frameworks []string `json:"frameworks" mapstructure:"frameworks" yaml:"frameworks"`
	Languages  []string `json:"languages" mapstructure:"languages" yaml:"languages"`
}

// CheckConfig holds thresholds for the CI gate
type CheckConfig struct {
	// MinScore is the lowest acceptable batch score
	MinScore int `json:"min_score" mapstructure:"min_score" yaml:"min_score"`

	// FailOnCritical fails the check when any critical issue is found
	FailOnCritical bool `json:"fail_on_critical" mapstructure:"fail_on_critical" yaml:"fail_on_critical"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml
	Format string `json:"format" mapstructure:"format" yaml:"format"`

	// ShowEvidence controls whether matched substrings are printed
	ShowEvidence bool `json:"show_evidence" mapstructure:"show_evidence" yaml:"show_evidence"`

	// ResultsDir is where review records are persisted (empty disables persistence)
	ResultsDir string `json:"results_dir" mapstructure:"results_dir" yaml:"results_dir"`
}

// AnalysisConfig holds file collection configuration
type AnalysisConfig struct {
	// IncludePatterns specifies file patterns to include
	IncludePatterns []string `json:"include_patterns" mapstructure:"include_patterns" yaml:"include_patterns"`

	// ExcludePatterns specifies file patterns to exclude
	ExcludePatterns []string `json:"exclude_patterns" mapstructure:"exclude_patterns" yaml:"exclude_patterns"`

	// Recursive controls whether directories are walked recursively
	Recursive bool `json:"recursive" mapstructure:"recursive" yaml:"recursive"`

	// RespectGitignore skips files ignored by the project's .gitignore
	RespectGitignore bool `json:"respect_gitignore" mapstructure:"respect_gitignore" yaml:"respect_gitignore"`
}

// PerformanceConfig holds concurrency configuration
type PerformanceConfig struct {
	// MaxGoroutines bounds per-file scan concurrency
	MaxGoroutines int `json:"max_goroutines" mapstructure:"max_goroutines" yaml:"max_goroutines"`

	// TimeoutSeconds bounds a whole review run
	TimeoutSeconds int `json:"timeout_seconds" mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	defaults := domain.DefaultReviewConfig()
	return &Config{
		Review: ReviewConfig{
			CheckSecurity:      defaults.CheckSecurity,
			CheckPerformance:   defaults.CheckPerformance,
			CheckBestPractices: defaults.CheckBestPractices,
			CheckAccessibility: defaults.CheckAccessibility,
			SeverityThreshold:  string(defaults.SeverityThreshold),
		},
		Check: CheckConfig{
			MinScore:       DefaultMinScore,
			FailOnCritical: true,
		},
		Output: OutputConfig{
			Format:       "text",
			ShowEvidence: false,
		},
		Analysis: AnalysisConfig{
			ExcludePatterns:  []string{"node_modules", "dist", "build", ".next", "coverage"},
			Recursive:        true,
			RespectGitignore: true,
		},
		Performance: PerformanceConfig{
			MaxGoroutines:  DefaultMaxGoroutines,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
	}
}

// ToPatch converts the file-level review section into the engine's partial
// config, so CLI runs go through the same merge path as external callers.
func (r ReviewConfig) ToPatch() *domain.ConfigPatch {
	threshold := domain.Severity(r.SeverityThreshold)
	return &domain.ConfigPatch{
		CheckSecurity:      &r.CheckSecurity,
		CheckPerformance:   &r.CheckPerformance,
		CheckBestPractices: &r.CheckBestPractices,
		CheckAccessibility: &r.CheckAccessibility,
		SeverityThreshold:  &threshold,
		Frameworks:         r.Frameworks,
		Languages:          r.Languages,
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	switch domain.Severity(c.Review.SeverityThreshold) {
	case domain.SeverityCritical, domain.SeverityHigh, domain.SeverityMedium, domain.SeverityLow:
	default:
		return fmt.Errorf("invalid severity_threshold: %s (must be one of: low, medium, high, critical)", c.Review.SeverityThreshold)
	}

	if c.Check.MinScore < 0 || c.Check.MinScore > 100 {
		return fmt.Errorf("min_score must be in [0, 100], got %d", c.Check.MinScore)
	}

	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid output format: %s (must be one of: text, json, yaml)", c.Output.Format)
	}

	if c.Performance.MaxGoroutines < 0 {
		return fmt.Errorf("max_goroutines cannot be negative, got %d", c.Performance.MaxGoroutines)
	}

	return nil
}

// LoadConfig loads configuration from file or returns default config
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = findDefaultConfig("")
	}
	return loadConfigFromFile(configPath)
}

// LoadConfigWithTarget loads configuration, discovering a config file upward
// from the target path when none is given explicitly
func LoadConfigWithTarget(configPath, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = findDefaultConfig(targetPath)
	}
	return loadConfigFromFile(configPath)
}

// loadConfigFromFile reads and parses a configuration file
func loadConfigFromFile(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	// Create a new viper instance to avoid race conditions
	v := viper.New()
	config := DefaultConfig()
	v.SetConfigFile(configPath)
	v.SetEnvPrefix(constants.EnvVarPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// searchConfigInDirectory searches for configuration files in a directory
func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findDefaultConfig looks for default configuration files, searching upward
// from the target path and falling back to the current directory and the
// user config directory.
func findDefaultConfig(targetPath string) string {
	candidates := []string{
		constants.ConfigFileName,
		"crev.yml",
		".crev.yaml",
		".crev.yml",
		"crev.json",
		".crev.json",
	}

	if targetPath != "" {
		absPath, err := filepath.Abs(targetPath)
		if err == nil {
			info, err := os.Stat(absPath)
			if err == nil && !info.IsDir() {
				absPath = filepath.Dir(absPath)
			}

			for dir := absPath; ; dir = filepath.Dir(dir) {
				if config := searchConfigInDirectory(dir, candidates); config != "" {
					return config
				}
				if filepath.Dir(dir) == dir {
					break
				}
			}
		}
	}

	if config := searchConfigInDirectory(".", candidates); config != "" {
		return config
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		if config := searchConfigInDirectory(filepath.Join(xdgConfig, constants.ToolName), candidates); config != "" {
			return config
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		if config := searchConfigInDirectory(filepath.Join(home, ".config", constants.ToolName), candidates); config != "" {
			return config
		}
	}

	return ""
}
