// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "kanatype"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultWordListPath returns the default JSON word list path.
func DefaultWordListPath() string {
	return filepath.Join(XDGConfigHome(), appName, "words.json")
}

// DefaultLayoutDir returns the directory scanned for custom YAML layouts.
func DefaultLayoutDir() string {
	return filepath.Join(XDGConfigHome(), appName, "layouts")
}

// DefaultDBPath returns the default path for the SQLite word bank.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), appName, "kanatype.db")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// DefaultLogPath returns the debug log path.
func DefaultLogPath() string {
	return filepath.Join(XDGDataHome(), appName, "debug.log")
}
