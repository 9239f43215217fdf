package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Mr2cool/chimeragpt-sub002/internal/config"
	"github.com/Mr2cool/chimeragpt-sub002/internal/constants"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a crev configuration file",
		Long: `Generate a documented crev configuration file with sensible defaults.

By default, creates crev.yaml in the current directory. Use --interactive
for a guided setup wizard.

Examples:
  # Create crev.yaml in current directory
  crev init

  # Custom output path
  crev init --config custom.yaml

  # Overwrite existing file
  crev init --force

  # Generate smaller config with essential options only
  crev init --minimal

  # Interactive setup wizard
  crev init -i`,
		RunE: runInit,
	}

	cmd.Flags().StringP("config", "c", constants.ConfigFileName,
		"Output path for the config file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing config file")
	cmd.Flags().Bool("minimal", false,
		"Generate minimal config with essential options only")
	cmd.Flags().BoolP("interactive", "i", false,
		"Interactive setup wizard")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	force, _ := cmd.Flags().GetBool("force")
	minimal, _ := cmd.Flags().GetBool("minimal")
	interactive, _ := cmd.Flags().GetBool("interactive")

	content := config.GetFullConfigTemplate()
	if minimal {
		content = config.GetMinimalConfigTemplate()
	}

	if interactive {
		interactiveContent, interactivePath, err := runInteractiveSetup(configPath)
		if err != nil {
			return err
		}
		content = interactiveContent
		configPath = interactivePath
	}

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists. Use --force to overwrite", configPath)
		}
	}

	dir := filepath.Dir(configPath)
	if dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("directory does not exist: %s", dir)
		}
	}

	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	displayPath := configPath
	if absPath, err := filepath.Abs(configPath); err == nil {
		displayPath = absPath
	}
	fmt.Printf("Created %s\n", displayPath)
	fmt.Println("\nRun 'crev review .' to review your project.")

	return nil
}

func runInteractiveSetup(defaultConfigPath string) (string, string, error) {
	fmt.Println()
	fmt.Println("crev Configuration Setup")
	fmt.Println("========================")
	fmt.Println()

	severityPrompt := promptui.Select{
		Label: "Minimum severity reported by the check command",
		Items: []string{"low", "medium", "high", "critical"},
	}
	_, severity, err := severityPrompt.Run()
	if err != nil {
		return "", "", fmt.Errorf("setup cancelled: %w", err)
	}

	accessibilityPrompt := promptui.Select{
		Label: "Enable accessibility checks (JSX/HTML projects)",
		Items: []string{"no", "yes"},
	}
	_, accessibility, err := accessibilityPrompt.Run()
	if err != nil {
		return "", "", fmt.Errorf("setup cancelled: %w", err)
	}

	pathPrompt := promptui.Prompt{
		Label:   "Config file path",
		Default: defaultConfigPath,
	}
	configPath, err := pathPrompt.Run()
	if err != nil {
		return "", "", fmt.Errorf("setup cancelled: %w", err)
	}

	content := config.GetFullConfigTemplate()
	content = strings.Replace(content, "severity_threshold: medium",
		"severity_threshold: "+severity, 1)
	if accessibility == "yes" {
		content = strings.Replace(content, "check_accessibility: false",
			"check_accessibility: true", 1)
	}

	return content, configPath, nil
}
