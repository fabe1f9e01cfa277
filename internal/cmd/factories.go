package cmd

import (
	"github.com/barkhq/barksound/internal/adapters/audio"
	"github.com/barkhq/barksound/internal/adapters/clipboard"
	"github.com/barkhq/barksound/internal/adapters/sound"
	"github.com/barkhq/barksound/internal/adapters/soundfs"
	"github.com/barkhq/barksound/internal/adapters/storage"
	"github.com/barkhq/barksound/internal/config"
	"github.com/barkhq/barksound/internal/logging"
	"github.com/barkhq/barksound/internal/ports"
	"github.com/barkhq/barksound/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Adapters
	Clipboard ports.Clipboard
	Player    ports.SoundPlayer
	Probe     ports.AudioProbe
	Store     ports.SoundFileStore

	// Services
	CatalogService      *services.CatalogService
	Coordinator         *services.SoundListCoordinator
	MirrorService       *services.MirrorService
	NotificationService *services.NotificationService

	SoundPaths config.SoundPaths

	// Internal - for cleanup only
	mirrorRepo ports.MirrorLogRepository
}

// NewContainer creates a new Container with all dependencies wired.
// The coordinator is created but not started.
func NewContainer(settings *config.Settings) (*Container, error) {
	paths := config.ResolveSoundPaths(settings)
	logging.Logger.Debug("Sound paths resolved",
		"primary", paths.PrimaryDir,
		"shared", paths.SharedDir,
		"bundle", paths.BundleDir,
		"locale", paths.Locale)

	mirrorRepo, err := storage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	store := soundfs.NewStore(paths)
	player := sound.NewPlayer()

	catalogService := services.NewCatalogService(store, paths)
	coordinator := services.NewSoundListCoordinator(store, catalogService, mirrorRepo)
	mirrorService := services.NewMirrorService(store, mirrorRepo)
	notificationService := services.NewNotificationService(paths, player)

	return &Container{
		CatalogService:      catalogService,
		Clipboard:           clipboard.NewSystem(),
		Coordinator:         coordinator,
		MirrorService:       mirrorService,
		NotificationService: notificationService,
		Player:              player,
		Probe:               audio.NewProbe(),
		SoundPaths:          paths,
		Store:               store,
		mirrorRepo:          mirrorRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.mirrorRepo != nil {
		return c.mirrorRepo.Close()
	}
	return nil
}
