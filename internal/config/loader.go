package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// maxConfigSize caps the settings file size.
const maxConfigSize = 1 << 20 // 1MB

// DefaultPath returns the settings file location under the user config
// directory. An empty string means no usable location exists.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "springen", "config.yaml")
}

// Load reads the settings file at path and merges it over the defaults.
// A missing file yields the defaults. An unreadable or invalid file is
// reported as a warning and the defaults are used; the wizard never
// fails to start over a bad settings file.
func Load(path string) *Config {
	cfg := NewDefaultConfig()
	if path == "" {
		return cfg
	}

	data, err := readBounded(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read settings file, using defaults", "path", path, "error", err)
		}
		return cfg
	}

	loaded := NewDefaultConfig()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		slog.Warn("invalid settings file, using defaults", "path", path, "error", err)
		return cfg
	}
	if err := loaded.Validate(); err != nil {
		slog.Warn("settings file rejected, using defaults", "path", path, "error", err)
		return cfg
	}
	return loaded
}

// readBounded reads a file, refusing anything over maxConfigSize.
func readBounded(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("settings file too large: %d bytes", info.Size())
	}
	return os.ReadFile(path)
}
