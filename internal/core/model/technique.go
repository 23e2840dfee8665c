package model

import (
	"fmt"
	"time"
)

// Defaults for optional Technique fields.
const (
	DefaultLongBreakMinutes      = 15
	DefaultCyclesBeforeLongBreak = 4
)

// Technique is a named configuration of work/break durations and cadence.
type Technique struct {
	Name                  string
	WorkMinutes           int
	BreakMinutes          int
	LongBreakMinutes      int
	CyclesBeforeLongBreak int
	Description           string
}

// ValidationError describes an invalid Technique field or list operation.
type ValidationError struct {
	Field  string
	Reason string
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("invalid technique %s: %s", err.Field, err.Reason)
}

// Validate checks the Technique invariants. The timer trusts any Technique
// that passed this check, so every edit path must call it.
func (technique Technique) Validate() error {
	if technique.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if technique.WorkMinutes < 1 {
		return &ValidationError{Field: "work_time", Reason: "must be at least 1 minute"}
	}
	if technique.BreakMinutes < 1 {
		return &ValidationError{Field: "break_time", Reason: "must be at least 1 minute"}
	}
	if technique.LongBreakMinutes < 1 {
		return &ValidationError{Field: "long_break_time", Reason: "must be at least 1 minute"}
	}
	if technique.CyclesBeforeLongBreak < 1 {
		return &ValidationError{Field: "cycles_before_long_break", Reason: "must be at least 1"}
	}
	return nil
}

// ApplyDefaults fills optional fields left unset by older or hand-edited
// technique files.
func (technique *Technique) ApplyDefaults() {
	if technique.LongBreakMinutes <= 0 {
		technique.LongBreakMinutes = DefaultLongBreakMinutes
	}
	if technique.CyclesBeforeLongBreak <= 0 {
		technique.CyclesBeforeLongBreak = DefaultCyclesBeforeLongBreak
	}
}

// WorkDuration returns the work phase length.
func (technique Technique) WorkDuration() time.Duration {
	return time.Duration(technique.WorkMinutes) * time.Minute
}

// BreakDuration returns the short break length.
func (technique Technique) BreakDuration() time.Duration {
	return time.Duration(technique.BreakMinutes) * time.Minute
}

// LongBreakDuration returns the long break length.
func (technique Technique) LongBreakDuration() time.Duration {
	return time.Duration(technique.LongBreakMinutes) * time.Minute
}

// DefaultTechniques returns the built-in technique list used when no
// techniques file exists yet.
func DefaultTechniques() []Technique {
	return []Technique{
		{
			Name:                  "Classic Pomodoro",
			WorkMinutes:           25,
			BreakMinutes:          5,
			LongBreakMinutes:      DefaultLongBreakMinutes,
			CyclesBeforeLongBreak: DefaultCyclesBeforeLongBreak,
			Description:           "The classic Pomodoro technique with 25-minute work sessions and 5-minute breaks.",
		},
		{
			Name:                  "Long Focus",
			WorkMinutes:           50,
			BreakMinutes:          10,
			LongBreakMinutes:      DefaultLongBreakMinutes,
			CyclesBeforeLongBreak: DefaultCyclesBeforeLongBreak,
			Description:           "Longer focus sessions with 50-minute work periods and 10-minute breaks.",
		},
		{
			Name:                  "Short Burst",
			WorkMinutes:           15,
			BreakMinutes:          3,
			LongBreakMinutes:      DefaultLongBreakMinutes,
			CyclesBeforeLongBreak: DefaultCyclesBeforeLongBreak,
			Description:           "Short bursts of intense focus with 15-minute work sessions and 3-minute breaks.",
		},
	}
}

// RemoveTechnique returns the list without the technique at index. Removing
// the last remaining technique is rejected: the collection is never empty.
func RemoveTechnique(techniques []Technique, index int) ([]Technique, error) {
	if index < 0 || index >= len(techniques) {
		return techniques, &ValidationError{Field: "index", Reason: "out of range"}
	}
	if len(techniques) == 1 {
		return techniques, &ValidationError{Field: "techniques", Reason: "at least one technique is required"}
	}
	updated := make([]Technique, 0, len(techniques)-1)
	updated = append(updated, techniques[:index]...)
	updated = append(updated, techniques[index+1:]...)
	return updated, nil
}

// FindTechnique returns the first technique with the given name. The first
// match is canonical when names collide.
func FindTechnique(techniques []Technique, name string) (Technique, bool) {
	for _, technique := range techniques {
		if technique.Name == name {
			return technique, true
		}
	}
	return Technique{}, false
}
