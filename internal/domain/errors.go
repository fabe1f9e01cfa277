package domain

import "errors"

var (
	ErrCopyFailed           = errors.New("copy failed")
	ErrDirectoryUnavailable = errors.New("directory unavailable")
	ErrEnumerationFailed    = errors.New("enumeration failed")
	ErrInvalidSoundName     = errors.New("invalid sound file name")
	ErrRemoveFailed         = errors.New("remove failed")
	ErrSoundNotFound        = errors.New("sound not found")
)
