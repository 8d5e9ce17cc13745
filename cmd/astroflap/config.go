package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings",
	Long: `Print the settings after the file search and flag overrides, as YAML.

Search order: --config, ~/.astroflap/astroflap.yaml, ./configs/astroflap.yaml,
then the built-in defaults. Redirect the output to start a settings file:
  astroflap config > ~/.astroflap/astroflap.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode settings: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
