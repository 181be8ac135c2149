package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	configDir  = ".config/csved"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary; pointer fields
// distinguish "absent" from zero so partial configs merge over defaults.
type rawConfig struct {
	Keymap rawKeymapConfig `json:"keymap"`
	UI     rawUIConfig     `json:"ui"`
}

type rawKeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

type rawUIConfig struct {
	PageSize    *int `json:"pageSize"`
	MaxColWidth *int `json:"maxColWidth"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/csved/config.json.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil // Return defaults on error
		}
		path = filepath.Join(home, configDir, configFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if raw.Keymap.Overrides != nil {
		cfg.Keymap.Overrides = raw.Keymap.Overrides
	}
	if raw.UI.PageSize != nil && *raw.UI.PageSize > 0 {
		cfg.UI.PageSize = *raw.UI.PageSize
	}
	if raw.UI.MaxColWidth != nil && *raw.UI.MaxColWidth > 0 {
		cfg.UI.MaxColWidth = *raw.UI.MaxColWidth
	}
	return cfg, nil
}
