package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	store := NewStoreAt(t.TempDir())

	settings, err := store.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
	assert.True(t, settings.NotificationsEnabled)
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStoreAt(t.TempDir())
	original := Settings{
		LastTechnique:        "Long Focus",
		NotificationsEnabled: false,
		LaunchAtLogin:        true,
	}

	require.NoError(t, store.SaveSettings(original))

	loaded, err := store.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoadSettingsCorruptFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte("\t{nope"), 0o644))

	store := NewStoreAt(dir)
	settings, err := store.LoadSettings()
	require.Error(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}
