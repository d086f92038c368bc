// Package store persists the local working copy of the habit dataset as an
// indented JSON file. Every mutating command writes here first; remote sync
// happens after, so the local copy always reflects the latest user intent.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"habitly/internal/migrate"
	"habitly/internal/models"
)

type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Init creates the data directory and writes an empty dataset. It refuses
// to clobber an existing file.
func (s *FileStore) Init(now time.Time) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(models.DefaultData(now))
}

// Load reads and migrates the local dataset. Running the file through the
// document migrator means a working copy written by an older client is
// upgraded transparently.
func (s *FileStore) Load() (models.HabitData, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.HabitData{}, fmt.Errorf("storage not initialized, run 'habitly init' first")
		}
		return models.HabitData{}, fmt.Errorf("failed to read storage: %w", err)
	}

	data, err := migrate.Document(raw)
	if err != nil {
		return models.HabitData{}, fmt.Errorf("failed to parse storage: %w", err)
	}

	return data, nil
}

// Save replaces the local dataset wholesale.
func (s *FileStore) Save(data models.HabitData) error {
	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, body, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

// Path returns the location of the data file.
func (s *FileStore) Path() string {
	return s.path
}
