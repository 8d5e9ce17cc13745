package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/astroflap/internal/config"
	"github.com/vovakirdan/astroflap/internal/logging"
	"github.com/vovakirdan/astroflap/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the AstroFlap SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own round; nothing is shared between sessions.
With --seed (or game.seed) every session gets the same obstacle layout,
otherwise each session is seeded from the clock.

Host key handling:
  - If --host-key (or server.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.astroflap/host_key

Examples:
  astroflap serve                           # Listen on :23234 with auto-generated key
  astroflap serve --ssh :2222               # Listen on port 2222
  astroflap serve --host-key ./my_host_key  # Use specific host key
  astroflap serve --seed 42                 # Same course for every player

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from settings)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from settings)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfigWithSource(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.Server.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.Server.HostKey = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.Server.IdleTimeout = flagIdleTimeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	bindings, err := cfg.Terminal.KeyBindings()
	if err != nil {
		return err
	}

	logger, err := logging.NewStderr("astroflap-ssh", cfg.Log)
	if err != nil {
		return err
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKey,
		IdleTimeout: time.Duration(cfg.Server.IdleTimeout) * time.Minute,
		TickRate:    cfg.Game.TickRate,
		Seed:        cfg.Game.Seed,
		Bindings:    bindings,
		ShowHelp:    cfg.Terminal.ShowHelp,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting AstroFlap SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if source != "" {
		watchSettings(ctx, cmd, source, server, logger)
	}

	return server.ListenAndServe(ctx)
}

// watchSettings applies edits of the settings file to new sessions.
// Listener settings (address, host key) need a restart.
func watchSettings(ctx context.Context, cmd *cobra.Command, path string, server *tui.SSHServer, logger *log.Logger) {
	w, err := config.NewWatcher(path, logger)
	if err != nil {
		logger.Warn("settings will not be reloaded", "error", err)
		return
	}

	go func() {
		defer w.Close()
		w.Run(ctx, func(cfg config.Config) {
			cfg = applyGlobalFlags(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				logger.Warn("ignoring settings change", "error", err)
				return
			}
			bindings, err := cfg.Terminal.KeyBindings()
			if err != nil {
				logger.Warn("ignoring settings change", "error", err)
				return
			}
			server.UpdateSessionSettings(cfg.Game.TickRate, cfg.Game.Seed, bindings, cfg.Terminal.ShowHelp)
		})
	}()
}
