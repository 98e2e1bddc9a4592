// Package stash keeps the single in-progress workout on disk so an
// interrupted session survives a process restart. One slot, one file;
// finishing or discarding the session clears it.
package stash

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/repstack/repcore/internal/model"
)

const fileName = "current_workout.json"

// Stash is the on-disk slot for the current workout.
type Stash struct {
	dir string
	log *slog.Logger
}

// New creates the stash directory if needed and returns the stash.
func New(dir string, log *slog.Logger) (*Stash, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create stash dir: %w", err)
	}
	return &Stash{dir: dir, log: log}, nil
}

func (s *Stash) path() string {
	return filepath.Join(s.dir, fileName)
}

// Save writes the workout to the slot. The write goes through a temp file
// and rename so a crash mid-write never leaves a torn slot; the previous
// contents survive or the new contents land, nothing in between.
func (s *Stash) Save(w *model.Workout) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("stash save: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, fileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("stash save: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("stash save: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("stash save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("stash save: %w", err)
	}
	if err := os.Rename(tmpName, s.path()); err != nil {
		return fmt.Errorf("stash save: %w", err)
	}

	s.log.Debug("stash saved", "workout_id", w.ID)
	return nil
}

// Load returns the stashed workout, or (nil, nil) when the slot is empty.
func (s *Stash) Load() (*model.Workout, error) {
	data, err := os.ReadFile(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stash load: %w", err)
	}

	var w model.Workout
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("stash load: %w", err)
	}
	return &w, nil
}

// Delete clears the slot. Clearing an empty slot is not an error.
func (s *Stash) Delete() error {
	err := os.Remove(s.path())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stash delete: %w", err)
	}
	s.log.Debug("stash cleared")
	return nil
}
