// Package config provides YAML-based configuration loading for the
// blocksmash platform: UI options and storage paths. Engine rules are fixed
// and deliberately not configurable.
package config

// Config is the top-level platform configuration.
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Storage StorageConfig `yaml:"storage"`
}

// UIConfig controls terminal rendering.
type UIConfig struct {
	// Style selects the glyph and color set: "unicode", "ascii" or "mono".
	Style string `yaml:"style"`
	// ShowHelp renders the key binding help line under the board.
	ShowHelp bool `yaml:"show_help"`
	// ShowGhost previews the selected piece at the cursor position.
	ShowGhost bool `yaml:"show_ghost"`
}

// StorageConfig controls persistence.
type StorageConfig struct {
	// DBPath is the SQLite database location; ~ expands to the home dir.
	DBPath string `yaml:"db_path"`
	// AutosaveSlot is the slot written when quitting mid-game.
	// Empty disables autosave.
	AutosaveSlot string `yaml:"autosave_slot"`
}

// Normalize fills in zero values with defaults so a partial YAML file still
// yields a usable config.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.UI.Style != "unicode" && c.UI.Style != "ascii" && c.UI.Style != "mono" {
		c.UI.Style = def.UI.Style
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = def.Storage.DBPath
	}
}
