package model

import "github.com/repstack/repcore/internal/id"

// SetSuggest holds the planned targets for a set. All fields are optional;
// a fresh set has no plan.
type SetSuggest struct {
	Weight   *float64 `json:"weight,omitempty"`
	Reps     *int     `json:"reps,omitempty"`
	RepRange *int     `json:"rep_range,omitempty"`
	Duration *int     `json:"duration,omitempty"`
	RPE      *float64 `json:"rpe,omitempty"`
	RestTime *int     `json:"rest_time,omitempty"`
}

// SetActual holds what the user actually performed for a set.
type SetActual struct {
	Weight         *float64 `json:"weight,omitempty"`
	Reps           *int     `json:"reps,omitempty"`
	Duration       *int     `json:"duration,omitempty"`
	RPE            *float64 `json:"rpe,omitempty"`
	ActualRestTime *int     `json:"actual_rest_time,omitempty"`
}

// Volume returns weight x reps for this set. The second return is false
// when either value is missing: volume is undefined then, not zero.
func (a SetActual) Volume() (float64, bool) {
	if a.Weight == nil || a.Reps == nil {
		return 0, false
	}
	return *a.Weight * float64(*a.Reps), true
}

// ExerciseSet is one set within an exercise.
//
// ExerciseID and WorkoutID are denormalized back-references used for lookup
// and the relational mapping; ownership runs the other way (the Exercise
// owns its sets). SetIndex is the zero-based display position and is kept
// dense: removals re-index the remaining sets.
type ExerciseSet struct {
	ID          id.ID       `json:"id"`
	SetType     SetType     `json:"type"`
	WeightUnit  *WeightUnit `json:"weight_unit,omitempty"`
	Suggest     SetSuggest  `json:"suggest"`
	Actual      SetActual   `json:"actual"`
	IsCompleted bool        `json:"is_completed"`
	ExerciseID  id.ID       `json:"exercise_id"`
	WorkoutID   id.ID       `json:"workout_id"`
	SetIndex    int         `json:"set_index"`
}

// NewSet creates an empty working set at the given index.
func NewSet(exerciseID, workoutID id.ID, setIndex int) ExerciseSet {
	return ExerciseSet{
		ID:         id.New(),
		SetType:    SetWorking,
		ExerciseID: exerciseID,
		WorkoutID:  workoutID,
		SetIndex:   setIndex,
	}
}

// Complete records the performed values and marks the set done.
func (s *ExerciseSet) Complete(actual SetActual) {
	s.Actual = actual
	s.IsCompleted = true
}
