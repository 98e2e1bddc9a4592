package model

import "github.com/repstack/repcore/internal/id"

// Exercise is a single exercise within a workout, with its ordered sets.
//
// Exercises sharing a SupersetID are performed back-to-back. PinnedNotes
// conceptually persist across sessions; Notes are per-session.
type Exercise struct {
	ID                id.ID        `json:"id"`
	SupersetID        *int         `json:"superset_id,omitempty"`
	WorkoutID         id.ID        `json:"workout_id"`
	Name              string       `json:"name"`
	PinnedNotes       []string     `json:"pinned_notes"`
	Notes             []string     `json:"notes"`
	Duration          *int         `json:"duration,omitempty"`
	ExerciseType      ExerciseType `json:"type"`
	WeightUnit        *WeightUnit  `json:"weight_unit,omitempty"`
	DefaultWarmUpTime *int         `json:"default_warm_up_time,omitempty"`
	DefaultRestTime   *int         `json:"default_rest_time,omitempty"`
	Sets              []ExerciseSet `json:"sets"`
	BodyPart          *BodyPart    `json:"body_part,omitempty"`
}

// defaultRestSeconds is applied to new exercises.
const defaultRestSeconds = 60

// NewExercise creates an exercise belonging to the given workout.
func NewExercise(name string, workoutID id.ID) Exercise {
	rest := defaultRestSeconds
	return Exercise{
		ID:              id.New(),
		WorkoutID:       workoutID,
		Name:            name,
		PinnedNotes:     []string{},
		Notes:           []string{},
		ExerciseType:    ExerciseUnknown,
		DefaultRestTime: &rest,
	}
}

// IsCompleted reports whether the exercise is done: the set list must be
// non-empty and every set completed. An exercise with zero sets is not
// completed.
func (e *Exercise) IsCompleted() bool {
	if len(e.Sets) == 0 {
		return false
	}
	for i := range e.Sets {
		if !e.Sets[i].IsCompleted {
			return false
		}
	}
	return true
}

// CompletedSetCount returns how many sets are marked completed.
func (e *Exercise) CompletedSetCount() int {
	n := 0
	for i := range e.Sets {
		if e.Sets[i].IsCompleted {
			n++
		}
	}
	return n
}

// TotalVolume sums weight x reps over completed sets that have both values.
func (e *Exercise) TotalVolume() float64 {
	var total float64
	for i := range e.Sets {
		if !e.Sets[i].IsCompleted {
			continue
		}
		if v, ok := e.Sets[i].Actual.Volume(); ok {
			total += v
		}
	}
	return total
}

// AddSet appends a new empty set and returns a pointer to it.
// The new set's index is the current set count, keeping indices dense.
func (e *Exercise) AddSet() *ExerciseSet {
	set := NewSet(e.ID, e.WorkoutID, len(e.Sets))
	e.Sets = append(e.Sets, set)
	return &e.Sets[len(e.Sets)-1]
}

// Reindex rewrites SetIndex to the dense range 0..n-1 in list order.
// Must be called after any removal.
func (e *Exercise) Reindex() {
	for i := range e.Sets {
		e.Sets[i].SetIndex = i
	}
}
