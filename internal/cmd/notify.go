package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/barkhq/barksound/internal/logging"
)

// NotifyCmd plays the sound a notification names, the way the notification
// process resolves it: shared directory first, then bundled defaults.
type NotifyCmd struct {
	SoundName string `arg:"" help:"Sound file name or display name (e.g. chime or chime.caf)"`
}

// Run executes the notification handler
func (n *NotifyCmd) Run(cli *CLI) error {
	// Always log notification runs so a missing sound can be diagnosed later
	notifyLogFile, err := logging.InitNotifyLogger(n.SoundName)
	if err != nil {
		logging.Logger.Warn("Failed to initialize notify logger", "error", err)
	} else {
		logging.Logger.Info("Notify logger initialized", "log_file", notifyLogFile)
	}

	logging.Logger.Info("Notification sound requested",
		"sound", n.SoundName,
		"timestamp", time.Now().Format(time.RFC3339Nano),
		"pid", os.Getpid(),
		"ppid", os.Getppid())

	// Resolution and the system sound fallback are logged by the service
	if err := cli.Container.NotificationService.PlayForNotification(n.SoundName); err != nil {
		logging.Logger.Error("Failed to play notification sound", "error", err)
		return fmt.Errorf("failed to play notification sound: %w", err)
	}
	logging.Logger.Debug("Notification sound played")
	return nil
}
