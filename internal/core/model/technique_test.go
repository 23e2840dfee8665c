package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTechniqueValidate(t *testing.T) {
	t.Parallel()

	valid := Technique{
		Name:                  "Classic Pomodoro",
		WorkMinutes:           25,
		BreakMinutes:          5,
		LongBreakMinutes:      15,
		CyclesBeforeLongBreak: 4,
	}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*Technique)
		field  string
	}{
		{"empty name", func(t *Technique) { t.Name = "" }, "name"},
		{"zero work", func(t *Technique) { t.WorkMinutes = 0 }, "work_time"},
		{"negative break", func(t *Technique) { t.BreakMinutes = -3 }, "break_time"},
		{"zero long break", func(t *Technique) { t.LongBreakMinutes = 0 }, "long_break_time"},
		{"zero cycles", func(t *Technique) { t.CyclesBeforeLongBreak = 0 }, "cycles_before_long_break"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			technique := valid
			tc.mutate(&technique)

			err := technique.Validate()
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestTechniqueApplyDefaults(t *testing.T) {
	t.Parallel()

	technique := Technique{Name: "Minimal", WorkMinutes: 20, BreakMinutes: 4}
	technique.ApplyDefaults()

	assert.Equal(t, DefaultLongBreakMinutes, technique.LongBreakMinutes)
	assert.Equal(t, DefaultCyclesBeforeLongBreak, technique.CyclesBeforeLongBreak)

	custom := Technique{Name: "Custom", WorkMinutes: 20, BreakMinutes: 4, LongBreakMinutes: 30, CyclesBeforeLongBreak: 2}
	custom.ApplyDefaults()

	assert.Equal(t, 30, custom.LongBreakMinutes)
	assert.Equal(t, 2, custom.CyclesBeforeLongBreak)
}

func TestTechniqueDurations(t *testing.T) {
	t.Parallel()

	technique := Technique{WorkMinutes: 25, BreakMinutes: 5, LongBreakMinutes: 15}
	assert.Equal(t, 25*time.Minute, technique.WorkDuration())
	assert.Equal(t, 5*time.Minute, technique.BreakDuration())
	assert.Equal(t, 15*time.Minute, technique.LongBreakDuration())
}

func TestDefaultTechniques(t *testing.T) {
	t.Parallel()

	defaults := DefaultTechniques()
	require.Len(t, defaults, 3)

	for _, technique := range defaults {
		require.NoError(t, technique.Validate())
		assert.NotEmpty(t, technique.Description)
	}

	assert.Equal(t, "Classic Pomodoro", defaults[0].Name)
	assert.Equal(t, 25, defaults[0].WorkMinutes)
	assert.Equal(t, 5, defaults[0].BreakMinutes)
}

func TestRemoveTechnique(t *testing.T) {
	t.Parallel()

	list := DefaultTechniques()

	updated, err := RemoveTechnique(list, 1)
	require.NoError(t, err)
	require.Len(t, updated, 2)
	assert.Equal(t, "Classic Pomodoro", updated[0].Name)
	assert.Equal(t, "Short Burst", updated[1].Name)

	_, err = RemoveTechnique(list, 7)
	require.Error(t, err)
}

func TestRemoveLastTechniqueRejected(t *testing.T) {
	t.Parallel()

	list := []Technique{{Name: "Only", WorkMinutes: 25, BreakMinutes: 5, LongBreakMinutes: 15, CyclesBeforeLongBreak: 4}}

	unchanged, err := RemoveTechnique(list, 0)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, list, unchanged)
}

func TestFindTechnique(t *testing.T) {
	t.Parallel()

	list := []Technique{
		{Name: "A", WorkMinutes: 25, BreakMinutes: 5},
		{Name: "B", WorkMinutes: 50, BreakMinutes: 10},
		{Name: "A", WorkMinutes: 15, BreakMinutes: 3},
	}

	technique, ok := FindTechnique(list, "B")
	require.True(t, ok)
	assert.Equal(t, 50, technique.WorkMinutes)

	// First match wins for duplicate names.
	technique, ok = FindTechnique(list, "A")
	require.True(t, ok)
	assert.Equal(t, 25, technique.WorkMinutes)

	_, ok = FindTechnique(list, "missing")
	assert.False(t, ok)
}
