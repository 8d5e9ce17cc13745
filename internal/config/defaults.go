package config

import (
	_ "embed"
)

//go:embed defaults/astroflap.yaml
var defaultYAML []byte

// DefaultConfig returns the hard-coded settings, matching defaults/astroflap.yaml.
func DefaultConfig() Config {
	return Config{
		Game: GameSettings{
			TickRate: 60,
			Seed:     0,
		},
		Terminal: TerminalSettings{
			ShowHelp: true,
			Bindings: map[string][]string{
				"jump":    {" ", "up", "w"},
				"restart": {"r"},
				"pause":   {"p", "esc"},
				"quit":    {"q", "ctrl+c"},
			},
		},
		Desktop: DesktopSettings{
			Scale:    1,
			Gamepad:  true,
			DeadZone: 0.5,
			Bindings: map[string][]string{
				"jump":    {"space", "up", "w"},
				"restart": {"r"},
				"pause":   {"p", "esc"},
				"quit":    {"q"},
			},
		},
		Server: ServerSettings{
			Address:     ":23234",
			IdleTimeout: 30,
		},
		Log: LogSettings{
			Level:      "info",
			Timestamps: true,
		},
	}
}
