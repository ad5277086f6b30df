package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/commitgate/commitgate/internal/config"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// strictness presets offered by the interactive wizard
var presets = []struct {
	Name             string
	SubjectLimit     int
	DescriptionLimit int
}{
	{"standard (subject 50, lines 72)", 50, 72},
	{"relaxed (subject 72, lines 100)", 72, 100},
	{"custom", 0, 0},
}

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a commitgate configuration file",
		Long: `Generate a .commitgate.yaml configuration file with sensible defaults.

Examples:
  # Create .commitgate.yaml in the current directory
  commitgate init

  # Custom output path
  commitgate init --config ci/commitgate.yaml

  # Overwrite existing file
  commitgate init --force

  # Interactive setup wizard
  commitgate init --interactive
  commitgate init -i`,
		RunE: runInit,
	}

	cmd.Flags().StringP("config", "c", config.ConfigFileName,
		"Output path for the config file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing config file")
	cmd.Flags().BoolP("interactive", "i", false,
		"Interactive setup wizard")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	force, _ := cmd.Flags().GetBool("force")
	interactive, _ := cmd.Flags().GetBool("interactive")

	cfg := config.DefaultConfig()

	if interactive {
		if err := runInteractiveSetup(cfg); err != nil {
			return err
		}
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

	if err := config.SaveConfig(cfg, configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	displayPath := configPath
	if absPath, err := filepath.Abs(configPath); err == nil {
		displayPath = absPath
	}
	fmt.Printf("Created %s\n", displayPath)
	fmt.Println("\nRun 'commitgate check --repo owner/name --pr-number N' to validate a pull request.")

	return nil
}

func runInteractiveSetup(cfg *config.Config) error {
	fmt.Println()
	fmt.Println("commitgate Configuration Setup")
	fmt.Println("==============================")
	fmt.Println()

	items := make([]string, len(presets))
	for i, p := range presets {
		items[i] = p.Name
	}

	presetPrompt := promptui.Select{
		Label: "Choose a rule preset",
		Items: items,
	}
	idx, _, err := presetPrompt.Run()
	if err != nil {
		return fmt.Errorf("setup cancelled: %w", err)
	}

	if presets[idx].SubjectLimit > 0 {
		cfg.Rules.SubjectLimit = presets[idx].SubjectLimit
		cfg.Rules.DescriptionLimit = presets[idx].DescriptionLimit
	} else {
		cfg.Rules.SubjectLimit, err = promptLimit("Subject character limit", config.DefaultSubjectLimit)
		if err != nil {
			return err
		}
		cfg.Rules.DescriptionLimit, err = promptLimit("Description line character limit", config.DefaultDescriptionLimit)
		if err != nil {
			return err
		}
	}

	formatPrompt := promptui.Select{
		Label: "Default output format",
		Items: []string{"text", "json", "yaml"},
	}
	_, format, err := formatPrompt.Run()
	if err != nil {
		return fmt.Errorf("setup cancelled: %w", err)
	}
	cfg.Output.Format = format

	return nil
}

func promptLimit(label string, defaultValue int) (int, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: strconv.Itoa(defaultValue),
		Validate: func(input string) error {
			n, err := strconv.Atoi(input)
			if err != nil {
				return fmt.Errorf("must be a number")
			}
			if n <= 0 {
				return fmt.Errorf("must be positive")
			}
			return nil
		},
	}

	value, err := prompt.Run()
	if err != nil {
		return 0, fmt.Errorf("setup cancelled: %w", err)
	}
	return strconv.Atoi(value)
}
