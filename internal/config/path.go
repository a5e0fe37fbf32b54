// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultDataPath is where the ledger database lives unless configured.
const DefaultDataPath = "~/.local/share/hishab/hishab.db"

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	// First expand tilde if present
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	// Then expand environment variables
	return os.ExpandEnv(path)
}

// DataPath resolves the ledger database path from configuration, falling
// back to the default location.
func DataPath() string {
	path := viper.GetString("data.path")
	if path == "" {
		path = DefaultDataPath
	}
	return ExpandPath(path)
}
