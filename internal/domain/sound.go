package domain

import (
	"path/filepath"
	"strings"
)

// SoundSuffix is the file extension of every playable sound asset
const SoundSuffix = ".caf"

// Section keys consumed by the presentation layer
const (
	SectionCustomSounds  = "customSounds"
	SectionDefaultSounds = "defaultSounds"
)

// AssetKind tells bundled defaults apart from user-imported sounds
type AssetKind string

const (
	AssetKindCustom  AssetKind = "custom"
	AssetKindDefault AssetKind = "default"
)

// AudioHandle is what a player or a metadata probe needs to work with a sound
type AudioHandle struct {
	Path string
}

// SoundAsset identifies one playable sound
type SoundAsset struct {
	Audio    AudioHandle
	FileName string // Mirroring key between primary and shared directories
	Kind     AssetKind
	Name     string // Display name (file name without extension)
	Path     string
}

// NewSoundAsset builds an asset from its filesystem location
func NewSoundAsset(path string, kind AssetKind) SoundAsset {
	fileName := filepath.Base(path)
	return SoundAsset{
		Audio:    AudioHandle{Path: path},
		FileName: fileName,
		Kind:     kind,
		Name:     DisplayName(fileName),
		Path:     path,
	}
}

// ReadOnly reports whether the asset is backed by a bundled resource
func (a SoundAsset) ReadOnly() bool {
	return a.Kind == AssetKindDefault
}

// DisplayName strips the directory and the extension from a sound file name
func DisplayName(fileName string) string {
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ValidateSoundFileName rejects names that could escape a sound directory
func ValidateSoundFileName(fileName string) error {
	if strings.TrimSpace(fileName) == "" {
		return ErrInvalidSoundName
	}
	if fileName != filepath.Base(fileName) || fileName == "." || fileName == ".." {
		return ErrInvalidSoundName
	}
	if strings.HasPrefix(fileName, ".") {
		return ErrInvalidSoundName
	}
	return nil
}

// NormalizeSoundFileName appends the sound suffix when a bare name is given
func NormalizeSoundFileName(name string) string {
	if strings.HasSuffix(name, SoundSuffix) {
		return name
	}
	return name + SoundSuffix
}
