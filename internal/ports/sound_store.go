package ports

import "github.com/barkhq/barksound/internal/domain"

// SoundFileStore performs mirrored file operations on the sound directories.
// Mutations report each step's error in the result instead of failing fast,
// leaving the decision to ignore them to the caller.
type SoundFileStore interface {
	Delete(path string) domain.MirrorResult
	ListFiles(dir, suffix string) ([]string, error)
	PrimaryDir() string
	Save(sourcePath string) domain.MirrorResult
	SharedDir() string
}
