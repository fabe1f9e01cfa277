package ports

import (
	"time"

	"github.com/barkhq/barksound/internal/domain"
)

// SoundPlayer plays notification sounds
type SoundPlayer interface {
	// Play plays the sound behind the handle
	Play(handle domain.AudioHandle) error

	// PlaySound plays the platform fallback sound
	PlaySound() error
}

// AudioProbe reads metadata from a sound file
type AudioProbe interface {
	Duration(handle domain.AudioHandle) (time.Duration, error)
}

// Clipboard receives display names copied from the sound list
type Clipboard interface {
	WriteText(text string) error
}
