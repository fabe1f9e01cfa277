package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsFrom_MissingFileIsEmpty(t *testing.T) {
	settings, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "settings.json"))

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettingsFrom_ParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"debug": true,
		"max_log_files": 5,
		"library_dir": "/lib",
		"group_containers_dir": "/groups",
		"group_id": "group.test",
		"bundle_dir": "/bundle",
		"locale": "sv"
	}`), 0644))

	settings, err := LoadSettingsFrom(path)
	require.NoError(t, err)

	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	require.NotNil(t, settings.MaxLogFiles)
	assert.Equal(t, 5, *settings.MaxLogFiles)
	assert.Equal(t, "/lib", settings.LibraryDir)
	assert.Equal(t, "/groups", settings.GroupContainersDir)
	assert.Equal(t, "group.test", settings.GroupID)
	assert.Equal(t, "/bundle", settings.BundleDir)
	assert.Equal(t, "sv", settings.Locale)
}

func TestLoadSettingsFrom_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := LoadSettingsFrom(path)
	assert.ErrorContains(t, err, "invalid settings.json")
}

func TestSaveSettings_RoundTripsThroughHome(t *testing.T) {
	t.Setenv("BARKSOUND_HOME", t.TempDir())
	maxFiles := 7

	require.NoError(t, SaveSettings(&Settings{Locale: "de", MaxLogFiles: &maxFiles}))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "de", loaded.Locale)
	require.NotNil(t, loaded.MaxLogFiles)
	assert.Equal(t, 7, *loaded.MaxLogFiles)
}

func TestNewSoundPaths(t *testing.T) {
	paths := NewSoundPaths("/lib", "/groups", "", "/bundle", "")

	assert.Equal(t, filepath.Join("/lib", "Sounds"), paths.PrimaryDir)
	assert.Equal(t, filepath.Join("/groups", "group.bark", "Sounds"), paths.SharedDir)
	assert.Equal(t, "/bundle", paths.BundleDir)
	assert.Equal(t, DefaultGroupID, paths.GroupID)
	assert.Equal(t, DefaultLocale, paths.Locale)
	assert.Equal(t, ".caf", paths.Suffix)
}

func TestResolveSoundPaths_Precedence(t *testing.T) {
	t.Setenv("BARKSOUND_LIBRARY_DIR", "/env-lib")
	t.Setenv("BARKSOUND_GROUP_CONTAINERS_DIR", "")
	t.Setenv("BARKSOUND_BUNDLE_DIR", "")
	t.Setenv("BARKSOUND_LOCALE", "")

	paths := ResolveSoundPaths(&Settings{
		LibraryDir:         "/settings-lib",
		GroupContainersDir: "/settings-groups",
		GroupID:            "group.custom",
		BundleDir:          "/settings-bundle",
		Locale:             "fr",
	})

	assert.Equal(t, filepath.Join("/env-lib", "Sounds"), paths.PrimaryDir)
	assert.Equal(t, filepath.Join("/settings-groups", "group.custom", "Sounds"), paths.SharedDir)
	assert.Equal(t, "/settings-bundle", paths.BundleDir)
	assert.Equal(t, "fr", paths.Locale)
}

func TestResolveSoundPaths_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("BARKSOUND_HOME", home)
	t.Setenv("BARKSOUND_LIBRARY_DIR", "")
	t.Setenv("BARKSOUND_GROUP_CONTAINERS_DIR", "")
	t.Setenv("BARKSOUND_BUNDLE_DIR", "")
	t.Setenv("BARKSOUND_LOCALE", "")

	paths := ResolveSoundPaths(nil)

	assert.Equal(t, filepath.Join(home, "bundle"), paths.BundleDir)
	assert.Equal(t, "Sounds", filepath.Base(paths.PrimaryDir))
	assert.Equal(t, DefaultGroupID, filepath.Base(filepath.Dir(paths.SharedDir)))
}

func TestGetSettingsExample_CoversAllFields(t *testing.T) {
	example := GetSettingsExample()

	for _, key := range []string{"bundle_dir", "debug", "group_containers_dir", "group_id", "keys", "library_dir", "locale", "max_log_files"} {
		assert.Contains(t, example, key)
	}
	assert.Equal(t, true, example["debug"])
	assert.Equal(t, 1000, example["max_log_files"])
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, homeDir, ExpandPath("~"))
	assert.Equal(t, filepath.Join(homeDir, "x"), ExpandPath("~/x"))
	assert.Equal(t, "/abs", ExpandPath("/abs"))
}

func TestLoadSettingsFrom_KeyBindingsAcceptStringOrList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"keys": {"copy_name": "y", "help": ["h", "?"]}}`), 0644))

	settings, err := LoadSettingsFrom(path)
	require.NoError(t, err)

	assert.Equal(t, KeyBindingValue{"y"}, settings.Keys["copy_name"])
	assert.Equal(t, KeyBindingValue{"h", "?"}, settings.Keys["help"])
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"copy_name", "delete", "help"}

	tests := []struct {
		name    string
		config  KeyBindingsConfig
		wantErr string
	}{
		{name: "nil", config: nil},
		{name: "valid", config: KeyBindingsConfig{"copy_name": {"y"}, "help": {"?"}}},
		{name: "unknown name", config: KeyBindingsConfig{"archive": {"a"}}, wantErr: "unknown key binding 'archive'"},
		{name: "empty key", config: KeyBindingsConfig{"delete": {""}}, wantErr: "contains empty value"},
		{name: "duplicate key", config: KeyBindingsConfig{"copy_name": {"x"}, "delete": {"x"}}, wantErr: "is assigned to both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate(valid)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestKeyBindingValue_MarshalSingleAsString(t *testing.T) {
	data, err := json.Marshal(KeyBindingValue{"y"})
	require.NoError(t, err)
	assert.Equal(t, `"y"`, string(data))

	data, err = json.Marshal(KeyBindingValue{"h", "?"})
	require.NoError(t, err)
	assert.Equal(t, `["h","?"]`, string(data))
}
