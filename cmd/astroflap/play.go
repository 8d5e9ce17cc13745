package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/astroflap/internal/config"
	"github.com/vovakirdan/astroflap/internal/logging"
	"github.com/vovakirdan/astroflap/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a round in the current terminal.

Controls (default bindings):
  Space/Up/W - Jump; restart after game over
  R          - Restart (after game over)
  P/Esc      - Pause
  Q/Ctrl+C   - Quit
  Ctrl+S     - Save a text screenshot to ~/.astroflap/screenshots

Logs go to ~/.astroflap/astroflap.log unless log.file is set.

Examples:
  astroflap play
  astroflap play --seed 42 --fps 30
  astroflap play --config ./my-settings.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	bindings, err := cfg.Terminal.KeyBindings()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs must go to a file.
	logger, closer, err := logging.NewFile("astroflap", cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; logging disabled\n", err)
		logger = logging.Discard()
	} else {
		defer closer.Close()
	}

	// Get terminal size for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := runtimeConfig(cfg, width, height)
	logger.Info("starting terminal game", "seed", rc.Seed, "tick_rate", rc.TickRate)

	if err := tui.Run(rc, tui.Options{
		Bindings: bindings,
		ShowHelp: cfg.Terminal.ShowHelp,
		Logger:   logger,

		ScreenshotDir: config.UserPath("screenshots"),
	}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
