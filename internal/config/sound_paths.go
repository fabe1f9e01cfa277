package config

import (
	"os"
	"path/filepath"

	"github.com/barkhq/barksound/internal/domain"
)

// DefaultGroupID identifies the shared container read by the notification process
const DefaultGroupID = "group.bark"

// DefaultLocale is used to order sound names when none is configured
const DefaultLocale = "en"

// soundsDirName is the directory holding sound files inside both locations
const soundsDirName = "Sounds"

// SoundPaths is the resolved location configuration for the sound library.
// It is built once at startup and injected; nothing below cmd resolves paths itself.
type SoundPaths struct {
	BundleDir  string // Read-only bundled default sounds
	GroupID    string
	Locale     string
	PrimaryDir string // <library>/Sounds, authoritative custom sounds
	SharedDir  string // <group containers>/<group id>/Sounds, best-effort mirror
	Suffix     string
}

// NewSoundPaths builds SoundPaths from explicit directories
func NewSoundPaths(libraryDir, groupContainersDir, groupID, bundleDir, locale string) SoundPaths {
	if groupID == "" {
		groupID = DefaultGroupID
	}
	if locale == "" {
		locale = DefaultLocale
	}
	return SoundPaths{
		BundleDir:  bundleDir,
		GroupID:    groupID,
		Locale:     locale,
		PrimaryDir: filepath.Join(libraryDir, soundsDirName),
		SharedDir:  filepath.Join(groupContainersDir, groupID, soundsDirName),
		Suffix:     domain.SoundSuffix,
	}
}

// ResolveSoundPaths applies precedence env var > settings.json > defaults
func ResolveSoundPaths(settings *Settings) SoundPaths {
	if settings == nil {
		settings = &Settings{}
	}

	libraryDir := firstNonEmpty(os.Getenv("BARKSOUND_LIBRARY_DIR"), settings.LibraryDir, defaultLibraryDir())
	groupContainersDir := firstNonEmpty(os.Getenv("BARKSOUND_GROUP_CONTAINERS_DIR"), settings.GroupContainersDir, defaultGroupContainersDir())
	bundleDir := firstNonEmpty(os.Getenv("BARKSOUND_BUNDLE_DIR"), settings.BundleDir, defaultBundleDir())
	locale := firstNonEmpty(os.Getenv("BARKSOUND_LOCALE"), settings.Locale, DefaultLocale)
	groupID := firstNonEmpty(settings.GroupID, DefaultGroupID)

	return NewSoundPaths(
		ExpandPath(libraryDir),
		ExpandPath(groupContainersDir),
		groupID,
		ExpandPath(bundleDir),
		locale,
	)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
