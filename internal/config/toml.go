// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
	Theme    ThemeConfig    `toml:"theme"`
}

// PracticeConfig maps practice-related settings.
type PracticeConfig struct {
	Layout   *string `toml:"layout"`
	WordList *string `toml:"wordlist"`
	Source   *string `toml:"source"`
	UILang   *string `toml:"ui-lang"`
}

// ThemeConfig maps keyboard colors. Unset colors keep the defaults.
type ThemeConfig struct {
	Background    *string `toml:"background"`
	Base          *string `toml:"base"`
	KeyFill       *string `toml:"key"`
	HighlightFill *string `toml:"highlight"`
	Text          *string `toml:"text"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
