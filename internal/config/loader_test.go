package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
ui:
  style: ascii
  show_help: false
  show_ghost: true
storage:
  db_path: /tmp/test.db
  autosave_slot: mine
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.UI.Style != "ascii" {
		t.Errorf("Style = %q, want ascii", cfg.UI.Style)
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %q, want /tmp/test.db", cfg.Storage.DBPath)
	}
	if cfg.Storage.AutosaveSlot != "mine" {
		t.Errorf("AutosaveSlot = %q, want mine", cfg.Storage.AutosaveSlot)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load succeeded for a missing explicit path")
	}
}

func TestLoadBadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("ui: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load succeeded for malformed YAML")
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	var cfg Config
	cfg.Normalize()

	def := DefaultConfig()
	if cfg.UI.Style != def.UI.Style {
		t.Errorf("Style = %q, want default %q", cfg.UI.Style, def.UI.Style)
	}
	if cfg.Storage.DBPath != def.Storage.DBPath {
		t.Errorf("DBPath = %q, want default %q", cfg.Storage.DBPath, def.Storage.DBPath)
	}
}

func TestNormalizeRejectsUnknownStyle(t *testing.T) {
	cfg := Config{UI: UIConfig{Style: "neon"}}
	cfg.Normalize()
	if cfg.UI.Style == "neon" {
		t.Errorf("Style = %q, unknown style kept", cfg.UI.Style)
	}
}

func TestEmbeddedDefaultParses(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Storage.DBPath == "" {
		t.Error("loaded config has empty DBPath")
	}
}
