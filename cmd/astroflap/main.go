// astroflap is a side-scrolling arcade game: steer an astronaut through
// the gaps between obstacle pairs, in a terminal, over SSH or in a window.
//
// Usage:
//
//	astroflap play       - Play in the terminal
//	astroflap desktop    - Play in a desktop window (keyboard or gamepad)
//	astroflap serve      - Start SSH server for remote play
//	astroflap config     - Print the effective settings
//	astroflap version    - Print version information
//
// Global flags:
//
//	--config <path>      - Settings file (default: search ~/.astroflap, ./configs)
//	--fps <rate>         - Override tick rate
//	--seed <value>       - Set RNG seed for reproducible obstacles
//	--log-level <level>  - Override log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/astroflap/internal/config"
	"github.com/vovakirdan/astroflap/internal/core"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "astroflap",
	Short: "AstroFlap - guide an astronaut through the gaps",
	Long: `AstroFlap is an arcade game: the astronaut falls under gravity,
each jump gives it an upward kick, and every obstacle pair passed
scores a point. Touching an obstacle or leaving the field ends the round.

Available commands:
  play     - Play in the terminal
  desktop  - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective settings

Examples:
  astroflap play
  astroflap play --seed 42
  astroflap desktop --scale 2
  astroflap serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from settings)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from settings, else time based)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads settings and applies the global flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, _, err := loadConfigWithSource(cmd)
	return cfg, err
}

// loadConfigWithSource is loadConfig that also reports the settings file
// in use, empty for the built-in defaults.
func loadConfigWithSource(cmd *cobra.Command) (config.Config, string, error) {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}
	cfg = applyGlobalFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", err
	}
	return cfg, source, nil
}

// applyGlobalFlags overrides settings with explicitly set global flags.
func applyGlobalFlags(cmd *cobra.Command, cfg config.Config) config.Config {
	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Game.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	return cfg
}

// runtimeConfig builds the per-round config for a screen of w×h.
func runtimeConfig(cfg config.Config, w, h int) core.RuntimeConfig {
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: cfg.Game.TickRate,
		Seed:     seed,
	}
}
