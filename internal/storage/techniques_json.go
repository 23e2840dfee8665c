package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pomodoro/internal/core/model"
)

const techniquesFileName = "techniques.json"

// Store reads and writes the per-user configuration files. All files live in
// one directory under the OS user config dir.
type Store struct {
	dir string
}

// NewStore returns a store rooted at the OS-standard config directory for
// the application.
func NewStore(appName string) (*Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user config dir: %w", err)
	}
	return &Store{dir: filepath.Join(configDir, appName)}, nil
}

// NewStoreAt returns a store rooted at an explicit directory.
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory holding the configuration files.
func (store *Store) Dir() string {
	return store.dir
}

// techniqueRecord is the persisted wire format. Field names are fixed; the
// optional fields fall back to the model defaults when absent or zero.
type techniqueRecord struct {
	Name                  string `json:"name"`
	WorkTime              int    `json:"work_time"`
	BreakTime             int    `json:"break_time"`
	LongBreakTime         int    `json:"long_break_time"`
	CyclesBeforeLongBreak int    `json:"cycles_before_long_break"`
	Description           string `json:"description"`
}

// LoadTechniques reads the persisted technique list. A missing file is not an
// error: the built-in defaults are returned. On a read or parse failure the
// defaults are returned together with the error so the caller can keep
// running while informing the user.
func (store *Store) LoadTechniques() ([]model.Technique, error) {
	defaults := model.DefaultTechniques()

	rawData, err := os.ReadFile(filepath.Join(store.dir, techniquesFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults, nil
		}
		return defaults, fmt.Errorf("read techniques file: %w", err)
	}

	var records []techniqueRecord
	if err := json.Unmarshal(rawData, &records); err != nil {
		return defaults, fmt.Errorf("parse techniques json: %w", err)
	}
	if len(records) == 0 {
		return defaults, fmt.Errorf("parse techniques json: file contains no techniques")
	}

	techniques := make([]model.Technique, 0, len(records))
	for _, record := range records {
		technique := model.Technique{
			Name:                  record.Name,
			WorkMinutes:           record.WorkTime,
			BreakMinutes:          record.BreakTime,
			LongBreakMinutes:      record.LongBreakTime,
			CyclesBeforeLongBreak: record.CyclesBeforeLongBreak,
			Description:           record.Description,
		}
		technique.ApplyDefaults()
		if err := technique.Validate(); err != nil {
			return defaults, fmt.Errorf("techniques file: %w", err)
		}
		techniques = append(techniques, technique)
	}
	return techniques, nil
}

// SaveTechniques persists the full technique list, replacing the previous
// file atomically so a crash mid-write never leaves a truncated file behind.
func (store *Store) SaveTechniques(techniques []model.Technique) error {
	if err := os.MkdirAll(store.dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	records := make([]techniqueRecord, 0, len(techniques))
	for _, technique := range techniques {
		records = append(records, techniqueRecord{
			Name:                  technique.Name,
			WorkTime:              technique.WorkMinutes,
			BreakTime:             technique.BreakMinutes,
			LongBreakTime:         technique.LongBreakMinutes,
			CyclesBeforeLongBreak: technique.CyclesBeforeLongBreak,
			Description:           technique.Description,
		})
	}

	serialized, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal techniques json: %w", err)
	}

	configPath := filepath.Join(store.dir, techniquesFileName)
	tempPath := configPath + ".tmp"
	if err := os.WriteFile(tempPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write techniques file: %w", err)
	}
	if err := os.Rename(tempPath, configPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("replace techniques file: %w", err)
	}

	return nil
}
