package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/barkhq/barksound/internal/config"
	"github.com/barkhq/barksound/internal/domain"
	"github.com/barkhq/barksound/internal/logging"
	"github.com/barkhq/barksound/internal/ports"
)

// NotificationService resolves and plays the sound named by an incoming
// notification. It only reads the shared mirror and the bundled defaults,
// which is all the notification process can see.
type NotificationService struct {
	bundleDir   string
	sharedDir   string
	soundPlayer ports.SoundPlayer
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(paths config.SoundPaths, soundPlayer ports.SoundPlayer) *NotificationService {
	return &NotificationService{
		bundleDir:   paths.BundleDir,
		sharedDir:   paths.SharedDir,
		soundPlayer: soundPlayer,
	}
}

// Resolve finds name in the shared directory, then in the bundled defaults.
// The sound suffix is added when missing.
func (s *NotificationService) Resolve(name string) (domain.AudioHandle, error) {
	fileName := domain.NormalizeSoundFileName(name)
	if err := domain.ValidateSoundFileName(fileName); err != nil {
		return domain.AudioHandle{}, fmt.Errorf("%w: %q", err, name)
	}

	for _, dir := range []string{s.sharedDir, s.bundleDir} {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, fileName)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		logging.Logger.Debug("Resolved notification sound", "name", name, "path", path)
		return domain.AudioHandle{Path: path}, nil
	}

	return domain.AudioHandle{}, fmt.Errorf("%w: %s", domain.ErrSoundNotFound, fileName)
}

// PlayForNotification plays the named sound, or the stock notification
// sound when it cannot be resolved
func (s *NotificationService) PlayForNotification(name string) error {
	handle, err := s.Resolve(name)
	if err != nil {
		if !errors.Is(err, domain.ErrSoundNotFound) && !errors.Is(err, domain.ErrInvalidSoundName) {
			return err
		}
		logging.Logger.Warn("Notification sound unavailable, using default", "name", name, "error", err)
		return s.PlaySound()
	}
	return s.soundPlayer.Play(handle)
}

// PlaySound plays the default notification sound
func (s *NotificationService) PlaySound() error {
	logging.Logger.Debug("Playing notification sound")
	return s.soundPlayer.PlaySound()
}
