package config

import (
	"os"
	"path/filepath"
)

// AppName names the per-user application data directory.
const AppName = "jotter"

// AppDataDir returns the directory holding preferences and the metadata store.
// It lives outside the notes directory so that moving notes never moves it.
func AppDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "."+AppName)
	}
	return filepath.Join(".", "."+AppName)
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return filepath.Join(AppDataDir(), "preferences.toml")
}

// DefaultStorePath returns the default metadata store path.
func DefaultStorePath() string {
	return filepath.Join(AppDataDir(), "metadata.yaml")
}

// DefaultNotesDirectory returns the notes directory used until the user picks one.
func DefaultNotesDirectory() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, AppName)
	}
	return filepath.Join(AppDataDir(), "notes")
}
