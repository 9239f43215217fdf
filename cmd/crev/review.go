package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mr2cool/chimeragpt-sub002/app"
	"github.com/Mr2cool/chimeragpt-sub002/domain"
	"github.com/Mr2cool/chimeragpt-sub002/internal/config"
	"github.com/Mr2cool/chimeragpt-sub002/internal/constants"
	"github.com/Mr2cool/chimeragpt-sub002/service"
)

var (
	reviewFormat     string
	reviewJSON       bool
	reviewConfigPath string
	reviewAgent      string
	reviewExclude    []string
	reviewNoRecurse  bool
	reviewEvidence   bool
	reviewResultsDir string
)

func reviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review [path...]",
		Short: "Review JavaScript/TypeScript files",
		Long: `Review JavaScript/TypeScript files for security, performance,
best-practice, and accessibility issues.

Examples:
  crev review src/
  crev review --format json src/
  crev review --agent performance_analysis src/
  crev review --exclude "*.test.ts" src/`,
		RunE: runReview,
	}

	cmd.Flags().StringVarP(&reviewFormat, "format", "f", "",
		"Output format: text, json, yaml")
	cmd.Flags().BoolVar(&reviewJSON, "json", false,
		"Output results as JSON (shorthand for --format json)")
	cmd.Flags().StringVarP(&reviewConfigPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().StringVar(&reviewAgent, "agent", constants.ResultTypeCodeReview,
		"Agent to run: code_review, performance_analysis, test_quality, documentation")
	cmd.Flags().StringSliceVar(&reviewExclude, "exclude", nil,
		"Additional file patterns to exclude")
	cmd.Flags().BoolVar(&reviewNoRecurse, "no-recursive", false,
		"Do not walk directories recursively")
	cmd.Flags().BoolVar(&reviewEvidence, "show-evidence", false,
		"Print matched substrings alongside issues")
	cmd.Flags().StringVar(&reviewResultsDir, "results-dir", "",
		"Persist review records into this directory")

	return cmd
}

func runReview(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no paths specified")
	}

	cfg, err := config.LoadConfigWithTarget(reviewConfigPath, args[0])
	if err != nil {
		return err
	}

	format := resolveFormat(cfg, reviewFormat, reviewJSON)

	pm := service.NewProgressManager(format == domain.OutputFormatText)
	defer pm.Close()

	svc, err := buildAgent(cfg, reviewAgent, pm)
	if err != nil {
		return err
	}

	uc := app.NewReviewUseCaseWithFileHelper(svc,
		app.NewFileHelperWithOptions(cfg.Analysis.RespectGitignore))

	result, err := uc.Execute(cmd.Context(), app.ReviewRequest{
		Paths:           args,
		Recursive:       cfg.Analysis.Recursive && !reviewNoRecurse,
		ExcludePatterns: append(cfg.Analysis.ExcludePatterns, reviewExclude...),
		Config:          cfg.Review.ToPatch(),
	})
	if err != nil {
		return err
	}

	formatter := service.NewOutputFormatter()
	formatter.ShowEvidence = cfg.Output.ShowEvidence || reviewEvidence
	if err := formatter.Write(&result, format, os.Stdout); err != nil {
		return err
	}

	if !result.Success {
		return fmt.Errorf("review failed: %s", result.Error)
	}
	return nil
}

// buildAgent wires the selected agent with the executor, sink, and progress
// manager derived from configuration.
func buildAgent(cfg *config.Config, agentType string, pm domain.ProgressManager) (*service.ReviewServiceImpl, error) {
	var svc *service.ReviewServiceImpl
	switch agentType {
	case constants.ResultTypeCodeReview:
		svc = service.NewReviewService()
	case constants.ResultTypePerformance:
		svc = service.NewPerformanceAgent()
	case constants.ResultTypeTestQuality:
		svc = service.NewTestQualityAgent()
	case constants.ResultTypeDocumentation:
		svc = service.NewDocumentationAgent()
	default:
		return nil, fmt.Errorf("unknown agent: %s", agentType)
	}

	svc.WithExecutor(service.NewParallelExecutorFromConfig(&cfg.Performance))
	svc.WithProgress(pm)

	resultsDir := cfg.Output.ResultsDir
	if reviewResultsDir != "" {
		resultsDir = reviewResultsDir
	}
	if resultsDir != "" {
		svc.WithSink(service.NewFileResultSink(resultsDir))
	}

	return svc, nil
}

func resolveFormat(cfg *config.Config, flagFormat string, jsonShorthand bool) domain.OutputFormat {
	if jsonShorthand {
		return domain.OutputFormatJSON
	}
	if flagFormat != "" {
		return domain.OutputFormat(flagFormat)
	}
	return domain.OutputFormat(cfg.Output.Format)
}
