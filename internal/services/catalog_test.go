package services

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barkhq/barksound/internal/adapters/soundfs"
	"github.com/barkhq/barksound/internal/config"
	"github.com/barkhq/barksound/internal/domain"
	"github.com/barkhq/barksound/internal/ports"
)

// countingStore wraps a real store, counting enumerations and optionally
// forcing the result of Save
type countingStore struct {
	ports.SoundFileStore

	lists      atomic.Int64
	saveResult *domain.MirrorResult
}

func (s *countingStore) ListFiles(dir, suffix string) ([]string, error) {
	s.lists.Add(1)
	return s.SoundFileStore.ListFiles(dir, suffix)
}

func (s *countingStore) Save(sourcePath string) domain.MirrorResult {
	if s.saveResult != nil {
		return *s.saveResult
	}
	return s.SoundFileStore.Save(sourcePath)
}

func newTestPaths(t *testing.T) (config.SoundPaths, string) {
	t.Helper()
	root := t.TempDir()
	paths := config.NewSoundPaths(
		filepath.Join(root, "Library"),
		filepath.Join(root, "Groups"),
		config.DefaultGroupID,
		filepath.Join(root, "bundle"),
		"",
	)
	return paths, root
}

func writeSound(t *testing.T, dir, name string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("caff"), 0644))
	return path
}

func itemNames(items []domain.SoundListItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.String())
	}
	return names
}

func TestBuild_SortsCaseInsensitively(t *testing.T) {
	paths, _ := newTestPaths(t)
	for _, name := range []string{"chime.caf", "Bell.caf", "alarm.caf"} {
		writeSound(t, paths.PrimaryDir, name)
	}
	for _, name := range []string{"Zap.caf", "buzz.caf"} {
		writeSound(t, paths.BundleDir, name)
	}

	snapshot := NewCatalogService(soundfs.NewStore(paths), paths).Build()

	assert.Equal(t,
		[]string{"asset(alarm.caf)", "asset(Bell.caf)", "asset(chime.caf)", "addEntry"},
		itemNames(snapshot.CustomSounds()))
	assert.Equal(t,
		[]string{"asset(buzz.caf)", "asset(Zap.caf)"},
		itemNames(snapshot.DefaultSounds()))
}

func TestBuild_SectionOrderAndKinds(t *testing.T) {
	paths, _ := newTestPaths(t)
	writeSound(t, paths.PrimaryDir, "mine.caf")
	writeSound(t, paths.BundleDir, "stock.caf")

	snapshot := NewCatalogService(soundfs.NewStore(paths), paths).Build()

	require.Len(t, snapshot.Sections, 2)
	assert.Equal(t, domain.SectionCustomSounds, snapshot.Sections[0].Key)
	assert.Equal(t, domain.SectionDefaultSounds, snapshot.Sections[1].Key)

	mine, ok := snapshot.Find("mine")
	require.True(t, ok)
	assert.Equal(t, domain.AssetKindCustom, mine.Kind)
	assert.Equal(t, filepath.Join(paths.PrimaryDir, "mine.caf"), mine.Path)

	stock, ok := snapshot.Find("stock.caf")
	require.True(t, ok)
	assert.True(t, stock.ReadOnly())
}

func TestBuild_IgnoresOtherSuffixes(t *testing.T) {
	paths, _ := newTestPaths(t)
	writeSound(t, paths.PrimaryDir, "keep.caf")
	writeSound(t, paths.PrimaryDir, "skip.wav")
	writeSound(t, paths.PrimaryDir, "notes.txt")

	snapshot := NewCatalogService(soundfs.NewStore(paths), paths).Build()

	assert.Equal(t, []string{"asset(keep.caf)", "addEntry"}, itemNames(snapshot.CustomSounds()))
}

func TestBuild_EmptyDirectoriesStillHaveSentinel(t *testing.T) {
	paths, _ := newTestPaths(t)

	snapshot := NewCatalogService(soundfs.NewStore(paths), paths).Build()

	assert.Equal(t, []string{"addEntry"}, itemNames(snapshot.CustomSounds()))
	assert.Empty(t, snapshot.DefaultSounds())
	assert.Empty(t, snapshot.Assets())
}

func TestBuild_UnreadableBundleDegradesToEmpty(t *testing.T) {
	paths, root := newTestPaths(t)
	paths.BundleDir = filepath.Join(root, "does-not-exist")
	writeSound(t, paths.PrimaryDir, "mine.caf")

	snapshot := NewCatalogService(soundfs.NewStore(paths), paths).Build()

	assert.Empty(t, snapshot.DefaultSounds())
	assert.Equal(t, []string{"asset(mine.caf)", "addEntry"}, itemNames(snapshot.CustomSounds()))
}

func TestBuild_Idempotent(t *testing.T) {
	paths, _ := newTestPaths(t)
	writeSound(t, paths.PrimaryDir, "b.caf")
	writeSound(t, paths.PrimaryDir, "a.caf")
	writeSound(t, paths.BundleDir, "c.caf")
	catalog := NewCatalogService(soundfs.NewStore(paths), paths)

	assert.Equal(t, catalog.Build(), catalog.Build())
}

func TestBuild_UnknownLocaleFallsBack(t *testing.T) {
	paths, _ := newTestPaths(t)
	paths.Locale = "not a locale!"
	writeSound(t, paths.PrimaryDir, "B.caf")
	writeSound(t, paths.PrimaryDir, "a.caf")

	snapshot := NewCatalogService(soundfs.NewStore(paths), paths).Build()

	assert.Equal(t, []string{"asset(a.caf)", "asset(B.caf)", "addEntry"}, itemNames(snapshot.CustomSounds()))
}

// fixedListStore returns preset listings per directory, in the given order
type fixedListStore struct {
	ports.SoundFileStore

	files      map[string][]string
	primaryDir string
}

func (s *fixedListStore) PrimaryDir() string { return s.primaryDir }

func (s *fixedListStore) ListFiles(dir, suffix string) ([]string, error) {
	return s.files[dir], nil
}

func TestBuild_IgnoresSharedOnlyFiles(t *testing.T) {
	paths, _ := newTestPaths(t)
	writeSound(t, paths.SharedDir, "ghost.caf")
	writeSound(t, paths.PrimaryDir, "chime.caf")

	snapshot := NewCatalogService(soundfs.NewStore(paths), paths).Build()

	assert.Equal(t, []string{"asset(chime.caf)", "addEntry"}, itemNames(snapshot.CustomSounds()))
	_, found := snapshot.Find("ghost")
	assert.False(t, found)
}

func TestBuild_LocaleAwareOrdering(t *testing.T) {
	paths, _ := newTestPaths(t)
	for _, name := range []string{"fox.caf", "élan.caf", "Bell.caf"} {
		writeSound(t, paths.PrimaryDir, name)
	}

	snapshot := NewCatalogService(soundfs.NewStore(paths), paths).Build()

	// A byte-wise sort would put élan after fox
	assert.Equal(t,
		[]string{"asset(Bell.caf)", "asset(élan.caf)", "asset(fox.caf)", "addEntry"},
		itemNames(snapshot.CustomSounds()))
}

func TestBuild_CaseTiesKeepEnumerationOrder(t *testing.T) {
	paths, _ := newTestPaths(t)
	store := &fixedListStore{
		primaryDir: paths.PrimaryDir,
		files: map[string][]string{
			paths.PrimaryDir: {
				filepath.Join(paths.PrimaryDir, "bell.caf"),
				filepath.Join(paths.PrimaryDir, "alarm.caf"),
				filepath.Join(paths.PrimaryDir, "Bell.caf"),
			},
			paths.BundleDir: {
				filepath.Join(paths.BundleDir, "Zap.caf"),
				filepath.Join(paths.BundleDir, "zap.caf"),
			},
		},
	}

	snapshot := NewCatalogService(store, paths).Build()

	assert.Equal(t,
		[]string{"asset(alarm.caf)", "asset(bell.caf)", "asset(Bell.caf)", "addEntry"},
		itemNames(snapshot.CustomSounds()))
	assert.Equal(t,
		[]string{"asset(Zap.caf)", "asset(zap.caf)"},
		itemNames(snapshot.DefaultSounds()))
}
