package services

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/barkhq/barksound/internal/config"
	"github.com/barkhq/barksound/internal/domain"
	"github.com/barkhq/barksound/internal/logging"
	"github.com/barkhq/barksound/internal/ports"
)

// CatalogService builds catalog snapshots from the current directory contents
type CatalogService struct {
	bundleDir  string
	locale     language.Tag
	primaryDir string
	store      ports.SoundFileStore
	suffix     string
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(store ports.SoundFileStore, paths config.SoundPaths) *CatalogService {
	tag, err := language.Parse(paths.Locale)
	if err != nil {
		logging.Logger.Warn("Unknown locale, falling back to English", "locale", paths.Locale, "error", err)
		tag = language.English
	}

	suffix := paths.Suffix
	if suffix == "" {
		suffix = domain.SoundSuffix
	}

	return &CatalogService{
		bundleDir:  paths.BundleDir,
		locale:     tag,
		primaryDir: store.PrimaryDir(),
		store:      store,
		suffix:     suffix,
	}
}

// Build enumerates bundled defaults and the primary directory and returns a
// sorted snapshot. It never fails: an unreadable directory contributes nothing.
func (s *CatalogService) Build() domain.CatalogSnapshot {
	defaults := s.list(s.bundleDir, domain.AssetKindDefault)
	custom := s.list(s.primaryDir, domain.AssetKindCustom)

	logging.Logger.Debug("Catalog built", "custom", len(custom), "defaults", len(defaults))
	return domain.NewCatalogSnapshot(custom, defaults)
}

func (s *CatalogService) list(dir string, kind domain.AssetKind) []domain.SoundAsset {
	files, err := s.store.ListFiles(dir, s.suffix)
	if err != nil {
		// Enumeration failures degrade to an empty section
		logging.Logger.Warn("Failed to enumerate sounds", "dir", dir, "kind", kind, "error", err)
	}

	assets := make([]domain.SoundAsset, 0, len(files))
	for _, path := range files {
		assets = append(assets, domain.NewSoundAsset(path, kind))
	}
	s.sortAssets(assets)
	return assets
}

// sortAssets orders by locale-aware, case-insensitive file name. Ties keep
// enumeration order.
func (s *CatalogService) sortAssets(assets []domain.SoundAsset) {
	collator := collate.New(s.locale, collate.IgnoreCase)
	sort.SliceStable(assets, func(i, j int) bool {
		return collator.CompareString(assets[i].FileName, assets[j].FileName) < 0
	})
}
