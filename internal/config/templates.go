package config

// GetFullConfigTemplate returns the documented default config file content
func GetFullConfigTemplate() string {
	return `# crev configuration
# See https://github.com/Mr2cool/chimeragpt-sub002 for documentation.

review:
  # Rule categories to run
  check_security: true
  check_performance: true
  check_best_practices: true
  check_accessibility: false

  # Minimum severity the check command reports: low, medium, high, critical
  severity_threshold: medium

  # Optional project context
  frameworks: []
  languages: []

check:
  # Lowest acceptable batch score for 'crev check'
  min_score: 70
  # Fail the check when any critical issue is found
  fail_on_critical: true

output:
  # text, json, or yaml
  format: text
  # Print matched substrings alongside issues
  show_evidence: false
  # Directory for persisted review records (empty disables persistence)
  results_dir: ""

analysis:
  recursive: true
  respect_gitignore: true
  exclude_patterns:
    - node_modules
    - dist
    - build
    - .next
    - coverage

performance:
  max_goroutines: 4
  timeout_seconds: 300
`
}

// GetMinimalConfigTemplate returns a short config with essential options only
func GetMinimalConfigTemplate() string {
	return `# crev configuration
review:
  check_security: true
  check_performance: true
  check_best_practices: true
  check_accessibility: false
  severity_threshold: medium

check:
  min_score: 70
`
}
