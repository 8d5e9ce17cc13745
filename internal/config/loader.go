package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory for settings, logs and the host key.
const AppDir = ".astroflap"

// FileName is the settings file name looked up in each search location.
const FileName = "astroflap.yaml"

// Load reads settings and validates them.
// Search order: customPath -> ~/.astroflap/astroflap.yaml -> ./configs/astroflap.yaml -> embedded default.
// Values missing from a file keep their defaults. An explicit customPath
// that cannot be read or parsed is an error; the other locations are skipped
// when absent or malformed.
func Load(customPath string) (Config, error) {
	cfg, _, err := LoadWithSource(customPath)
	return cfg, err
}

// LoadWithSource is Load that also reports which file was used.
// The source is empty when the settings came from the embedded default.
func LoadWithSource(customPath string) (Config, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, cfg.Validate()
	}

	candidates := []string{
		UserPath(FileName),
		filepath.Join("configs", FileName),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", cfg.Validate()
}

// parse decodes YAML over the hard-coded defaults.
func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	// Tables from the file replace the default tables rather than merge into them.
	cfg.Terminal.Bindings = nil
	cfg.Desktop.Bindings = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// UserPath returns a path inside ~/.astroflap, or empty if home is unavailable.
func UserPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, name)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
