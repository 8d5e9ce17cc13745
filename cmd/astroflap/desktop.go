package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/astroflap/internal/logging"
	"github.com/vovakirdan/astroflap/internal/platform/desktop"
	"github.com/vovakirdan/astroflap/internal/sim"
)

var (
	flagScale     int
	flagNoGamepad bool
)

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Play in a desktop window",
	Long: `Open a window and play with the keyboard or a gamepad.

Keyboard (default bindings):
  Space/Up/W - Jump; restart after game over
  R          - Restart (after game over)
  P/Esc      - Pause
  Q          - Quit

Gamepad (first connected):
  Left stick up, D-pad up or the bottom face button - Jump
  Start                                             - Pause

Examples:
  astroflap desktop
  astroflap desktop --scale 2
  astroflap desktop --no-gamepad`,
	Args: cobra.NoArgs,
	RunE: runDesktop,
}

func init() {
	desktopCmd.Flags().IntVar(&flagScale, "scale", 0, "Window scale (0 = from settings)")
	desktopCmd.Flags().BoolVar(&flagNoGamepad, "no-gamepad", false, "Ignore connected gamepads")
}

func runDesktop(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("scale") {
		cfg.Desktop.Scale = flagScale
	}
	if flagNoGamepad {
		cfg.Desktop.Gamepad = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	bindings, err := cfg.Desktop.KeyBindings()
	if err != nil {
		return err
	}

	logger, err := logging.NewStderr("astroflap", cfg.Log)
	if err != nil {
		return err
	}

	rc := runtimeConfig(cfg, sim.FieldWidth, sim.FieldHeight)
	logger.Info("opening window", "scale", cfg.Desktop.Scale, "gamepad", cfg.Desktop.Gamepad, "seed", rc.Seed)

	return desktop.Run(rc, desktop.Options{
		Scale:    cfg.Desktop.Scale,
		Gamepad:  cfg.Desktop.Gamepad,
		DeadZone: cfg.Desktop.DeadZone,
		Bindings: bindings,
		Logger:   logger,
	})
}
