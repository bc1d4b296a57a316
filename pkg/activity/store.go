package activity

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Store reads and writes the persisted activity record set. The record set
// is the only persisted state; every save replaces the whole file.
type Store struct {
	logger *slog.Logger
	path   string
}

// NewStore creates a store for the given JSON file path.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the full record set from disk.
func (s *Store) Load() ([]Activity, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading activity file: %w", err)
	}

	var activities []Activity
	if err := json.Unmarshal(data, &activities); err != nil {
		return nil, fmt.Errorf("decoding activity file %s: %w", s.path, err)
	}

	s.logger.Debug("loaded activities", "path", s.path, "count", len(activities))
	return activities, nil
}

// Exists reports whether a previously saved record set is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return !errors.Is(err, fs.ErrNotExist)
}

// Save atomically replaces the record set on disk. The previous file
// survives any failure before the final rename.
func (s *Store) Save(activities []Activity) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(activities, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding activities: %w", err)
	}
	data = append(data, '\n')

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("writing temp activity file: %w", err)
	}

	if err := os.Rename(tempPath, s.path); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil && !errors.Is(removeErr, fs.ErrNotExist) {
			s.logger.Debug("failed to remove temp file", "error", removeErr)
		}
		return fmt.Errorf("replacing activity file: %w", err)
	}

	s.logger.Info("saved activities", "path", s.path, "count", len(activities))
	return nil
}
