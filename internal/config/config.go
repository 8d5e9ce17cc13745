// Package config provides YAML-based platform settings for AstroFlap:
// tick rate, key bindings, desktop window and gamepad options, SSH server
// and logging. Gameplay constants live in the sim package and are fixed.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/astroflap/internal/input"
)

// Config is the root of the settings file.
type Config struct {
	Game     GameSettings     `yaml:"game"`
	Terminal TerminalSettings `yaml:"terminal"`
	Desktop  DesktopSettings  `yaml:"desktop"`
	Server   ServerSettings   `yaml:"server"`
	Log      LogSettings      `yaml:"log"`
}

// GameSettings control the tick driver.
type GameSettings struct {
	TickRate int   `yaml:"tick_rate"`
	Seed     int64 `yaml:"seed"` // 0 = seed from the clock
}

// TerminalSettings configure the Bubble Tea frontend.
type TerminalSettings struct {
	ShowHelp bool                `yaml:"show_help"`
	Bindings map[string][]string `yaml:"bindings"` // action name -> key names
}

// DesktopSettings configure the ebiten frontend.
type DesktopSettings struct {
	Scale    int                 `yaml:"scale"`
	Gamepad  bool                `yaml:"gamepad"`
	DeadZone float64             `yaml:"dead_zone"`
	Bindings map[string][]string `yaml:"bindings"`
}

// ServerSettings configure the SSH server.
type ServerSettings struct {
	Address     string `yaml:"address"`
	HostKey     string `yaml:"host_key"`
	IdleTimeout int    `yaml:"idle_timeout"` // Minutes
}

// LogSettings configure the structured logger.
type LogSettings struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Timestamps bool   `yaml:"timestamps"`
}

// Validate checks ranges and cross-field consistency.
func (c Config) Validate() error {
	if c.Game.TickRate < 1 || c.Game.TickRate > 240 {
		return fmt.Errorf("config: game.tick_rate must be in [1, 240], got %d", c.Game.TickRate)
	}
	if c.Desktop.Scale < 1 || c.Desktop.Scale > 8 {
		return fmt.Errorf("config: desktop.scale must be in [1, 8], got %d", c.Desktop.Scale)
	}
	if c.Desktop.DeadZone <= 0 || c.Desktop.DeadZone >= 1 {
		return fmt.Errorf("config: desktop.dead_zone must be in (0, 1), got %v", c.Desktop.DeadZone)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("config: server.idle_timeout must not be negative, got %d", c.Server.IdleTimeout)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if _, err := c.Terminal.KeyBindings(); err != nil {
		return fmt.Errorf("config: terminal.bindings: %w", err)
	}
	if _, err := c.Desktop.KeyBindings(); err != nil {
		return fmt.Errorf("config: desktop.bindings: %w", err)
	}
	return nil
}

// KeyBindings parses the terminal key table, falling back to the defaults when empty.
func (t TerminalSettings) KeyBindings() (input.Bindings, error) {
	return parseBindings(t.Bindings)
}

// KeyBindings parses the desktop key table, falling back to the defaults when empty.
func (d DesktopSettings) KeyBindings() (input.Bindings, error) {
	return parseBindings(d.Bindings)
}

func parseBindings(table map[string][]string) (input.Bindings, error) {
	if len(table) == 0 {
		return input.DefaultBindings(), nil
	}
	return input.ParseBindings(table)
}
