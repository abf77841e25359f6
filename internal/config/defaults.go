package config

import (
	_ "embed"
)

//go:embed defaults/blocksmash.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration, used as the
// last-resort fallback if even the embedded YAML fails to parse.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			Style:     "unicode",
			ShowHelp:  true,
			ShowGhost: true,
		},
		Storage: StorageConfig{
			DBPath:       "~/.blocksmash/blocksmash.db",
			AutosaveSlot: "auto",
		},
	}
}
