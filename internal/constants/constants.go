package constants

// Tool name and related constants
const (
	// ToolName is the name of this tool
	ToolName = "crev"

	// ConfigFileName is the default config file name
	ConfigFileName = "crev.yaml"

	// EnvVarPrefix is the prefix for environment variables
	EnvVarPrefix = "CREV"
)

// Result type constants, one per analyzer agent
const (
	ResultTypeCodeReview    = "code_review"
	ResultTypePerformance   = "performance_analysis"
	ResultTypeTestQuality   = "test_quality"
	ResultTypeDocumentation = "documentation"
)
