package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mr2cool/chimeragpt-sub002/internal/logging"
	"github.com/Mr2cool/chimeragpt-sub002/internal/version"
)

var debugLogging bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "crev",
		Short: "crev - rule-based code review engine",
		Long: `crev is a rule-based review engine for JavaScript and TypeScript code.
It detects security, performance, best-practice, and accessibility issues,
computes complexity and maintainability metrics, and scores the batch.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Init(debugLogging)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false,
		"Enable debug logging")

	rootCmd.AddCommand(reviewCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		if exitErr, ok := err.(*CheckExitError); ok {
			if exitErr.Message != "" {
				fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				fmt.Println(version.GetFullVersion())
			} else {
				fmt.Printf("crev version %s\n", version.GetVersion())
			}
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Show detailed version information")
	return cmd
}
