// Package config loads optional user configuration from
// ~/.config/csved/config.json. A missing file means defaults; a malformed
// file is an error so typos do not silently vanish.
package config

// Config is the root configuration structure.
type Config struct {
	Keymap KeymapConfig `json:"keymap"`
	UI     UIConfig     `json:"ui"`
}

// KeymapConfig holds key binding overrides for the navigate context:
// key string -> symbol name (e.g. "x": "delete-row").
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// UIConfig holds rendering and movement tunables.
type UIConfig struct {
	// PageSize is how many rows { and } jump. Default 5.
	PageSize int `json:"pageSize"`
	// MaxColWidth caps rendered column width in cells. Default 30.
	MaxColWidth int `json:"maxColWidth"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Keymap: KeymapConfig{Overrides: map[string]string{}},
		UI: UIConfig{
			PageSize:    5,
			MaxColWidth: 30,
		},
	}
}
