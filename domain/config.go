package domain

// ReviewConfig is the fully-populated, immutable configuration for one
// review execution. Callers supply a partial ConfigPatch; the engine merges
// it over the defaults before use.
type ReviewConfig struct {
	CheckSecurity      bool `json:"checkSecurity" yaml:"check_security"`
	CheckPerformance   bool `json:"checkPerformance" yaml:"check_performance"`
	CheckBestPractices bool `json:"checkBestPractices" yaml:"check_best_practices"`
	CheckAccessibility bool `json:"checkAccessibility" yaml:"check_accessibility"`

	// SeverityThreshold is the minimum severity of interest for reporting
	// surfaces. The scan pipeline itself does not filter by it: every match
	// of an enabled category is emitted and scored.
	SeverityThreshold Severity `json:"severityThreshold" yaml:"severity_threshold"`

	// Frameworks and Languages describe the code under review
	Frameworks []string `json:"frameworks" yaml:"frameworks"`
	Languages  []string `json:"languages" yaml:"languages"`
}

// ConfigPatch is a partial ReviewConfig supplied by the caller.
// Nil fields fall back to the defaults.
type ConfigPatch struct {
	CheckSecurity      *bool     `json:"checkSecurity,omitempty" yaml:"check_security,omitempty"`
	CheckPerformance   *bool     `json:"checkPerformance,omitempty" yaml:"check_performance,omitempty"`
	CheckBestPractices *bool     `json:"checkBestPractices,omitempty" yaml:"check_best_practices,omitempty"`
	CheckAccessibility *bool     `json:"checkAccessibility,omitempty" yaml:"check_accessibility,omitempty"`
	SeverityThreshold  *Severity `json:"severityThreshold,omitempty" yaml:"severity_threshold,omitempty"`
	Frameworks         []string  `json:"frameworks,omitempty" yaml:"frameworks,omitempty"`
	Languages          []string  `json:"languages,omitempty" yaml:"languages,omitempty"`
}

// DefaultReviewConfig returns the default review configuration:
// security, performance, and best-practice checks on, accessibility off,
// medium severity threshold.
func DefaultReviewConfig() ReviewConfig {
	return ReviewConfig{
		CheckSecurity:      true,
		CheckPerformance:   true,
		CheckBestPractices: true,
		CheckAccessibility: false,
		SeverityThreshold:  SeverityMedium,
	}
}

// Merge returns a new ReviewConfig with patch fields applied over c.
// Caller-supplied fields win; nil fields keep the base value.
func (c ReviewConfig) Merge(patch *ConfigPatch) ReviewConfig {
	merged := c
	if patch == nil {
		return merged
	}
	if patch.CheckSecurity != nil {
		merged.CheckSecurity = *patch.CheckSecurity
	}
	if patch.CheckPerformance != nil {
		merged.CheckPerformance = *patch.CheckPerformance
	}
	if patch.CheckBestPractices != nil {
		merged.CheckBestPractices = *patch.CheckBestPractices
	}
	if patch.CheckAccessibility != nil {
		merged.CheckAccessibility = *patch.CheckAccessibility
	}
	if patch.SeverityThreshold != nil {
		merged.SeverityThreshold = *patch.SeverityThreshold
	}
	if len(patch.Frameworks) > 0 {
		merged.Frameworks = append([]string(nil), patch.Frameworks...)
	}
	if len(patch.Languages) > 0 {
		merged.Languages = append([]string(nil), patch.Languages...)
	}
	return merged
}

// EnabledCategories returns the scan categories enabled by this
// configuration, in the fixed scan order.
func (c ReviewConfig) EnabledCategories() []Category {
	var categories []Category
	if c.CheckSecurity {
		categories = append(categories, CategorySecurity)
	}
	if c.CheckPerformance {
		categories = append(categories, CategoryPerformance)
	}
	if c.CheckBestPractices {
		categories = append(categories, CategoryBestPractice)
	}
	if c.CheckAccessibility {
		categories = append(categories, CategoryAccessibility)
	}
	return categories
}
