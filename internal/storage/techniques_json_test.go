package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
)

func TestLoadTechniquesMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	store := NewStoreAt(t.TempDir())

	techniques, err := store.LoadTechniques()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultTechniques(), techniques)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStoreAt(t.TempDir())
	original := []model.Technique{
		{Name: "Deep Work", WorkMinutes: 90, BreakMinutes: 20, LongBreakMinutes: 45, CyclesBeforeLongBreak: 2, Description: "Marathon sessions."},
		{Name: "Sprints", WorkMinutes: 10, BreakMinutes: 2, LongBreakMinutes: 15, CyclesBeforeLongBreak: 6},
	}

	require.NoError(t, store.SaveTechniques(original))

	loaded, err := store.LoadTechniques()
	require.NoError(t, err)
	assert.Equal(t, original, loaded)

	// Saving what was loaded is idempotent.
	require.NoError(t, store.SaveTechniques(loaded))
	again, err := store.LoadTechniques()
	require.NoError(t, err)
	assert.Equal(t, loaded, again)
}

func TestLoadTechniquesFillsOptionalFields(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	raw := `[{"name": "Bare", "work_time": 20, "break_time": 4}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "techniques.json"), []byte(raw), 0o644))

	store := NewStoreAt(dir)
	techniques, err := store.LoadTechniques()
	require.NoError(t, err)
	require.Len(t, techniques, 1)

	assert.Equal(t, model.DefaultLongBreakMinutes, techniques[0].LongBreakMinutes)
	assert.Equal(t, model.DefaultCyclesBeforeLongBreak, techniques[0].CyclesBeforeLongBreak)
	assert.Empty(t, techniques[0].Description)
}

func TestLoadTechniquesCorruptFileFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "{{{"},
		{"empty list", "[]"},
		{"invalid technique", `[{"name": "", "work_time": 0, "break_time": 5}]`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "techniques.json"), []byte(tc.raw), 0o644))

			store := NewStoreAt(dir)
			techniques, err := store.LoadTechniques()
			require.Error(t, err)
			assert.Equal(t, model.DefaultTechniques(), techniques)
		})
	}
}

func TestSaveTechniquesWireFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewStoreAt(dir)
	require.NoError(t, store.SaveTechniques(model.DefaultTechniques()[:1]))

	rawData, err := os.ReadFile(filepath.Join(dir, "techniques.json"))
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(rawData, &records))
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, "Classic Pomodoro", record["name"])
	assert.Equal(t, float64(25), record["work_time"])
	assert.Equal(t, float64(5), record["break_time"])
	assert.Equal(t, float64(15), record["long_break_time"])
	assert.Equal(t, float64(4), record["cycles_before_long_break"])
	assert.Contains(t, record, "description")
}

func TestSaveTechniquesLeavesNoTempFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewStoreAt(dir)
	require.NoError(t, store.SaveTechniques(model.DefaultTechniques()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "techniques.json", entries[0].Name())
}

func TestSaveTechniquesCreatesConfigDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "pomodoro")
	store := NewStoreAt(dir)

	require.NoError(t, store.SaveTechniques(model.DefaultTechniques()))

	_, err := os.Stat(filepath.Join(dir, "techniques.json"))
	require.NoError(t, err)
}
