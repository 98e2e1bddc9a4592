package app

import (
	"fmt"

	"github.com/repstack/repcore/internal/model"
)

// Tab is a top-level navigation tab.
type Tab string

const (
	TabWorkout Tab = "workout"
	TabHistory Tab = "history"
)

// NavTarget is an entry on the navigation stack.
type NavTarget struct {
	// Screen names the destination, e.g. "history_detail".
	Screen string `json:"screen"`
	// WorkoutID qualifies screens that show a single workout.
	WorkoutID string `json:"workout_id,omitempty"`
}

const screenHistoryDetail = "history_detail"

// Model is the whole application state. It is owned by the Core and only
// mutated inside Update; everything the shell displays is projected from it
// by View.
type Model struct {
	// Active session.
	CurrentWorkout      *model.Workout
	WorkoutTimerSeconds int
	TimerRunning        bool

	// Loaded history, newest first, and the detail selection.
	WorkoutHistory []model.Workout
	HistoryDetail  *model.Workout

	// Navigation.
	SelectedTab     Tab
	NavigationStack []NavTarget

	// Modal visibility. ShowingRestTimer carries the countdown duration in
	// seconds when the rest-timer modal is up.
	ShowingAddExercise     bool
	ShowingStopwatch       bool
	ShowingImportView      bool
	ShowingPlateCalculator bool
	ShowingRestTimer       *int

	// Plate calculator result, nil until a calculation runs.
	PlateCalculation *model.PlateCalculation

	// Transient status surfaced to the user. ErrorMessage empty means no
	// error is showing.
	IsLoading    bool
	ErrorMessage string
}

// NewModel returns the initial state: workout tab, nothing loaded.
func NewModel() Model {
	return Model{SelectedTab: TabWorkout}
}

// FindExercise returns the exercise with the given identifier in the
// current workout, or nil.
func (m *Model) FindExercise(exerciseID string) *model.Exercise {
	if m.CurrentWorkout == nil {
		return nil
	}
	for i := range m.CurrentWorkout.Exercises {
		if string(m.CurrentWorkout.Exercises[i].ID) == exerciseID {
			return &m.CurrentWorkout.Exercises[i]
		}
	}
	return nil
}

// FindSet returns the set with the given identifier anywhere in the current
// workout, or nil.
func (m *Model) FindSet(setID string) *model.ExerciseSet {
	if m.CurrentWorkout == nil {
		return nil
	}
	for i := range m.CurrentWorkout.Exercises {
		ex := &m.CurrentWorkout.Exercises[i]
		for j := range ex.Sets {
			if string(ex.Sets[j].ID) == setID {
				return &ex.Sets[j]
			}
		}
	}
	return nil
}

// historyWorkout returns the workout with the given identifier from the
// loaded history, or nil.
func (m *Model) historyWorkout(workoutID string) *model.Workout {
	for i := range m.WorkoutHistory {
		if string(m.WorkoutHistory[i].ID) == workoutID {
			return &m.WorkoutHistory[i]
		}
	}
	return nil
}

// FormatDuration renders elapsed seconds as MM:SS. Minutes are not capped:
// a two-hour session reads "120:00".
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
