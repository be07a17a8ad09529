package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Practice.Layout != nil {
		t.Fatalf("expected empty config")
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[practice]
layout = "jis"
source = "db"

[theme]
highlight = "#FF0000"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Practice.Layout == nil || *cfg.Practice.Layout != "jis" {
		t.Fatalf("unexpected layout: %v", cfg.Practice.Layout)
	}
	if cfg.Practice.Source == nil || *cfg.Practice.Source != "db" {
		t.Fatalf("unexpected source: %v", cfg.Practice.Source)
	}
	if cfg.Practice.WordList != nil {
		t.Fatalf("expected unset wordlist")
	}
	if cfg.Theme.HighlightFill == nil || *cfg.Theme.HighlightFill != "#FF0000" {
		t.Fatalf("unexpected highlight: %v", cfg.Theme.HighlightFill)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[practice]\nwords = 10\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "kanatype", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultLayoutDir(); got != filepath.Join("/tmp/cfg", "kanatype", "layouts") {
		t.Fatalf("unexpected layout dir: %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/tmp/data", "kanatype", "kanatype.db") {
		t.Fatalf("unexpected db path: %s", got)
	}
}
