package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dino-run/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the runner config",
	Long: `Print the built-in runner config as YAML. Save it to
~/.dino/configs/runner.yaml or ./configs/runner.yaml to customize it.

With --resolved, prints the config play would use instead, after the
search path, --config and --difficulty are applied.

Examples:
  dino config > ~/.dino/configs/runner.yaml
  dino config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addRunnerFlags(configCmd)
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective config")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if !flagResolved {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	runner, _, err := loadRunner(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(runner)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
