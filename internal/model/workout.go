package model

import (
	"time"

	"github.com/repstack/repcore/internal/id"
)

// Workout is the root aggregate: one training session with its ordered
// exercises. Exercise list order is display order.
//
// Duration and EndTimestamp stay nil until Finish is called exactly once;
// after that the workout is effectively immutable (not enforced by the
// type, but nothing in the reducer mutates a finished workout).
type Workout struct {
	ID             id.ID      `json:"id"`
	Name           string     `json:"name"`
	Note           *string    `json:"note,omitempty"`
	Duration       *int       `json:"duration,omitempty"`
	StartTimestamp time.Time  `json:"start_timestamp"`
	EndTimestamp   *time.Time `json:"end_timestamp,omitempty"`
	Exercises      []Exercise `json:"exercises"`
}

// NewWorkout creates an empty workout starting now (UTC).
func NewWorkout() *Workout {
	return &Workout{
		ID:             id.New(),
		StartTimestamp: time.Now().UTC(),
		Exercises:      []Exercise{},
	}
}

// Finish stamps the end of the workout.
//
// Duration is the caller-supplied elapsed seconds, NOT the wall-clock delta
// between start and end: the session timer may have been paused, so only
// the tracked counter is truthful.
func (w *Workout) Finish(elapsedSeconds int) {
	now := time.Now().UTC()
	w.EndTimestamp = &now
	w.Duration = &elapsedSeconds
}

// AddExercise appends a new exercise and returns a pointer to it.
func (w *Workout) AddExercise(name string) *Exercise {
	ex := NewExercise(name, w.ID)
	w.Exercises = append(w.Exercises, ex)
	return &w.Exercises[len(w.Exercises)-1]
}

// IsCompleted reports whether every exercise is completed.
// Empty workouts are not completed.
func (w *Workout) IsCompleted() bool {
	if len(w.Exercises) == 0 {
		return false
	}
	for i := range w.Exercises {
		if !w.Exercises[i].IsCompleted() {
			return false
		}
	}
	return true
}

// TotalSets counts sets across all exercises.
func (w *Workout) TotalSets() int {
	n := 0
	for i := range w.Exercises {
		n += len(w.Exercises[i].Sets)
	}
	return n
}

// CompletedSets counts completed sets across all exercises.
func (w *Workout) CompletedSets() int {
	n := 0
	for i := range w.Exercises {
		n += w.Exercises[i].CompletedSetCount()
	}
	return n
}

// TotalVolume sums the volume of all completed sets in the workout.
func (w *Workout) TotalVolume() float64 {
	var total float64
	for i := range w.Exercises {
		total += w.Exercises[i].TotalVolume()
	}
	return total
}
