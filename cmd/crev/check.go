package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mr2cool/chimeragpt-sub002/app"
	"github.com/Mr2cool/chimeragpt-sub002/domain"
	"github.com/Mr2cool/chimeragpt-sub002/internal/config"
	"github.com/Mr2cool/chimeragpt-sub002/service"
)

// CheckExitError is a custom error type for check command exit codes
type CheckExitError struct {
	Code    int
	Message string
}

func (e *CheckExitError) Error() string {
	return e.Message
}

var (
	checkMinScore    int
	checkAllowCrit   bool
	checkJSON        bool
	checkConfigPath  string
	checkMinSeverity string
)

// checkReport is the machine-readable output of the check command
type checkReport struct {
	Passed   bool           `json:"passed"`
	Score    int            `json:"score"`
	MinScore int            `json:"min_score"`
	Issues   []domain.Issue `json:"issues"`
	Summary  domain.Summary `json:"summary"`
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Fast quality gate for CI/CD pipelines",
		Long: `Run the code review and fail when quality thresholds are violated.

Exit codes:
  0 - All checks pass
  1 - Quality threshold(s) violated
  2 - Analysis error (file not found, invalid input, etc.)

Examples:
  crev check src/
  crev check --min-score 80 src/
  crev check --json src/`,
		RunE:          runCheck,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().IntVar(&checkMinScore, "min-score", 0,
		"Lowest acceptable batch score (0 uses the configured value)")
	cmd.Flags().BoolVar(&checkAllowCrit, "allow-critical", false,
		"Do not fail on critical issues")
	cmd.Flags().BoolVar(&checkJSON, "json", false,
		"Output results as JSON")
	cmd.Flags().StringVarP(&checkConfigPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().StringVar(&checkMinSeverity, "min-severity", "",
		"Lowest severity to report (low, medium, high, critical)")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &CheckExitError{Code: 2, Message: "no paths specified"}
	}

	cfg, err := config.LoadConfigWithTarget(checkConfigPath, args[0])
	if err != nil {
		return &CheckExitError{Code: 2, Message: err.Error()}
	}

	minScore := cfg.Check.MinScore
	if checkMinScore > 0 {
		minScore = checkMinScore
	}
	threshold := domain.Severity(cfg.Review.SeverityThreshold)
	if checkMinSeverity != "" {
		threshold = domain.Severity(checkMinSeverity)
	}

	svc := service.NewReviewService().
		WithExecutor(service.NewParallelExecutorFromConfig(&cfg.Performance))

	uc := app.NewReviewUseCaseWithFileHelper(svc,
		app.NewFileHelperWithOptions(cfg.Analysis.RespectGitignore))

	result, err := uc.Execute(cmd.Context(), app.ReviewRequest{
		Paths:           args,
		Recursive:       cfg.Analysis.Recursive,
		ExcludePatterns: cfg.Analysis.ExcludePatterns,
		Config:          cfg.Review.ToPatch(),
	})
	if err != nil {
		return &CheckExitError{Code: 2, Message: err.Error()}
	}
	if !result.Success {
		return &CheckExitError{Code: 2, Message: result.Error}
	}

	data := result.Data
	passed := data.Summary.Score >= minScore
	if !checkAllowCrit && cfg.Check.FailOnCritical && data.Summary.CriticalIssues > 0 {
		passed = false
	}

	reported := filterBySeverity(data.Issues, threshold)
	report := checkReport{
		Passed:   passed,
		Score:    data.Summary.Score,
		MinScore: minScore,
		Issues:   reported,
		Summary:  data.Summary,
	}

	if checkJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return &CheckExitError{Code: 2, Message: err.Error()}
		}
	} else {
		printCheckReport(report)
	}

	if !passed {
		return &CheckExitError{Code: 1}
	}
	return nil
}

func filterBySeverity(issues []domain.Issue, min domain.Severity) []domain.Issue {
	filtered := make([]domain.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.Severity.AtLeast(min) {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}

func printCheckReport(report checkReport) {
	status := "PASS"
	if !report.Passed {
		status = "FAIL"
	}
	fmt.Printf("%s: score %d/100 (minimum %d)\n", status, report.Score, report.MinScore)
	fmt.Printf("Issues: %d total, %d critical, %d high, %d medium, %d low\n",
		report.Summary.TotalIssues, report.Summary.CriticalIssues,
		report.Summary.HighIssues, report.Summary.MediumIssues, report.Summary.LowIssues)

	for _, issue := range report.Issues {
		location := fmt.Sprintf("line %d", issue.Line)
		if issue.File != "" {
			location = fmt.Sprintf("%s:%d", issue.File, issue.Line)
		}
		fmt.Printf("  [%s] %s (%s, %s)\n", issue.Severity, issue.Message, issue.Rule, location)
	}
}
