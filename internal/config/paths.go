package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// GetHome returns BARKSOUND_HOME or ~/.barksound default
func GetHome() string {
	home := os.Getenv("BARKSOUND_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".barksound"
		}
		return filepath.Join(homeDir, ".barksound")
	}
	return ExpandPath(home)
}

// GetDBPath returns $BARKSOUND_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "state.db")
}

// GetSettingsPath returns $BARKSOUND_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

// defaultLibraryDir is the app-private Library directory.
// macOS uses the real ~/Library, elsewhere it lives under XDG data.
func defaultLibraryDir() string {
	if runtime.GOOS == "darwin" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			return filepath.Join(homeDir, "Library", "Application Support", "barksound")
		}
	}
	return filepath.Join(dataHome(), "barksound", "Library")
}

// defaultGroupContainersDir is the root under which shared containers live,
// one subdirectory per group identifier.
func defaultGroupContainersDir() string {
	if runtime.GOOS == "darwin" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			return filepath.Join(homeDir, "Library", "Group Containers")
		}
	}
	return filepath.Join(dataHome(), "barksound", "GroupContainers")
}

// defaultBundleDir holds the read-only default sounds shipped with the app
func defaultBundleDir() string {
	return filepath.Join(GetHome(), "bundle")
}

func dataHome() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return xdg
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".local/share"
	}
	return filepath.Join(homeDir, ".local", "share")
}
