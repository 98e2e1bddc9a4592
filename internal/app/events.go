package app

import (
	"encoding/json"
	"fmt"

	"github.com/repstack/repcore/internal/model"
)

// EventKind tags the variant carried by an Event envelope.
type EventKind string

// The closed set of events the reducer accepts, grouped by feature class.
// Routing is exhaustive: every kind below is claimed by exactly one handler
// in core.go.
const (
	// App lifecycle
	EventInitialize EventKind = "initialize"

	// Workout lifecycle
	EventStartWorkout       EventKind = "start_workout"
	EventFinishWorkout      EventKind = "finish_workout"
	EventDiscardWorkout     EventKind = "discard_workout"
	EventUpdateWorkoutName  EventKind = "update_workout_name"
	EventUpdateWorkoutNotes EventKind = "update_workout_notes"

	// Exercise management
	EventAddExercise            EventKind = "add_exercise"
	EventDeleteExercise         EventKind = "delete_exercise"
	EventMoveExercise           EventKind = "move_exercise"
	EventShowAddExerciseView    EventKind = "show_add_exercise_view"
	EventDismissAddExerciseView EventKind = "dismiss_add_exercise_view"

	// Set management
	EventAddSet             EventKind = "add_set"
	EventDeleteSet          EventKind = "delete_set"
	EventUpdateSetActual    EventKind = "update_set_actual"
	EventToggleSetCompleted EventKind = "toggle_set_completed"

	// Timer and modal visibility
	EventTimerTick        EventKind = "timer_tick"
	EventStartTimer       EventKind = "start_timer"
	EventStopTimer        EventKind = "stop_timer"
	EventToggleTimer      EventKind = "toggle_timer"
	EventShowStopwatch    EventKind = "show_stopwatch"
	EventDismissStopwatch EventKind = "dismiss_stopwatch"
	EventShowRestTimer    EventKind = "show_rest_timer"
	EventDismissRestTimer EventKind = "dismiss_rest_timer"

	// History and navigation
	EventLoadHistory     EventKind = "load_history"
	EventViewHistoryItem EventKind = "view_history_item"
	EventNavigateBack    EventKind = "navigate_back"
	EventChangeTab       EventKind = "change_tab"

	// Import/export
	EventImportWorkout       EventKind = "import_workout"
	EventShowImportView      EventKind = "show_import_view"
	EventDismissImportView   EventKind = "dismiss_import_view"
	EventLoadWorkoutTemplate EventKind = "load_workout_template"

	// Plate calculator
	EventCalculatePlates        EventKind = "calculate_plates"
	EventClearPlateCalculation  EventKind = "clear_plate_calculation"
	EventShowPlateCalculator    EventKind = "show_plate_calculator"
	EventDismissPlateCalculator EventKind = "dismiss_plate_calculator"

	// Capability responses
	EventDatabaseResponse EventKind = "database_response"
	EventStorageResponse  EventKind = "storage_response"
	EventTimerResponse    EventKind = "timer_response"
	EventError            EventKind = "error"
)

// Event is the tagged-union envelope delivered over the shell boundary.
//
// Kind selects the variant; at most one payload pointer is set. Identifier
// fields inside payloads are plain strings on the wire and are validated by
// the handlers, not by deserialization.
type Event struct {
	Kind EventKind `json:"kind"`

	Rename      *RenamePayload      `json:"rename,omitempty"`
	Note        *NotePayload        `json:"note,omitempty"`
	NewExercise *NewExercisePayload `json:"new_exercise,omitempty"`
	Exercise    *ExerciseRef        `json:"exercise,omitempty"`
	Move        *MovePayload        `json:"move,omitempty"`
	Set         *SetRef             `json:"set,omitempty"`
	RemoveSet   *RemoveSetPayload   `json:"remove_set,omitempty"`
	SetActual   *SetActualPayload   `json:"set_actual,omitempty"`
	RestTimer   *RestTimerPayload   `json:"rest_timer,omitempty"`
	Workout     *WorkoutRef         `json:"workout,omitempty"`
	Tab         *TabPayload         `json:"tab,omitempty"`
	Import      *ImportPayload      `json:"import,omitempty"`
	Plates      *PlatesPayload      `json:"plates,omitempty"`
	Database    *DatabaseResult     `json:"database,omitempty"`
	Storage     *StorageResult      `json:"storage,omitempty"`
	Timer       *TimerResult        `json:"timer,omitempty"`
	Failure     *FailurePayload     `json:"failure,omitempty"`
}

// RenamePayload carries a new workout name.
type RenamePayload struct {
	Name string `json:"name"`
}

// NotePayload carries replacement workout notes. Empty clears the note.
type NotePayload struct {
	Notes string `json:"notes"`
}

// NewExercisePayload carries the fields to construct an exercise from.
// Individual fields rather than a prebuilt Exercise keep the wire shape
// simple and force the core to mint the identifier.
type NewExercisePayload struct {
	Name         string `json:"name"`
	ExerciseType string `json:"exercise_type"`
	MuscleGroup  string `json:"muscle_group"`
}

// ExerciseRef names an exercise by its string identifier.
type ExerciseRef struct {
	ExerciseID string `json:"exercise_id"`
}

// MovePayload re-orders an exercise from one position to another.
type MovePayload struct {
	FromIndex int `json:"from_index"`
	ToIndex   int `json:"to_index"`
}

// SetRef names a set by its string identifier.
type SetRef struct {
	SetID string `json:"set_id"`
}

// RemoveSetPayload deletes a set by position within an exercise.
type RemoveSetPayload struct {
	ExerciseID string `json:"exercise_id"`
	SetIndex   int    `json:"set_index"`
}

// SetActualPayload replaces a set's performed values.
type SetActualPayload struct {
	SetID  string          `json:"set_id"`
	Actual model.SetActual `json:"actual"`
}

// RestTimerPayload opens the rest-timer modal for a duration.
type RestTimerPayload struct {
	DurationSeconds int `json:"duration_seconds"`
}

// WorkoutRef names a workout by its string identifier.
type WorkoutRef struct {
	WorkoutID string `json:"workout_id"`
}

// TabPayload selects a navigation tab.
type TabPayload struct {
	Tab Tab `json:"tab"`
}

// ImportPayload carries a JSON-encoded workout to import.
type ImportPayload struct {
	JSONData string `json:"json_data"`
}

// PlatesPayload carries plate-calculator inputs. Percentage is optional;
// when present the effective target is target_weight * percentage / 100.
type PlatesPayload struct {
	TargetWeight float64  `json:"target_weight"`
	BarWeight    float64  `json:"bar_weight"`
	Percentage   *float64 `json:"percentage,omitempty"`
}

// FailurePayload surfaces a host-reported error.
type FailurePayload struct {
	Message string `json:"message"`
}

// DecodeEvent parses a serialized event envelope. Only the envelope shape
// is checked here; payload identifier fields are validated by handlers.
func DecodeEvent(data []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}
	if ev.Kind == "" {
		return Event{}, fmt.Errorf("decode event: missing kind")
	}
	return ev, nil
}

// EncodeEvent serializes an event envelope.
func EncodeEvent(ev Event) ([]byte, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("encode event: %w", err)
	}
	return data, nil
}

// Constructors for the payload-free and commonly built events. These keep
// call sites in the runtime, CLI, and tests from hand-assembling envelopes.

func Initialize() Event     { return Event{Kind: EventInitialize} }
func StartWorkout() Event   { return Event{Kind: EventStartWorkout} }
func FinishWorkout() Event  { return Event{Kind: EventFinishWorkout} }
func DiscardWorkout() Event { return Event{Kind: EventDiscardWorkout} }
func TimerTick() Event      { return Event{Kind: EventTimerTick} }
func LoadHistory() Event    { return Event{Kind: EventLoadHistory} }

func UpdateWorkoutName(name string) Event {
	return Event{Kind: EventUpdateWorkoutName, Rename: &RenamePayload{Name: name}}
}

func UpdateWorkoutNotes(notes string) Event {
	return Event{Kind: EventUpdateWorkoutNotes, Note: &NotePayload{Notes: notes}}
}

func AddExercise(name, exerciseType, muscleGroup string) Event {
	return Event{Kind: EventAddExercise, NewExercise: &NewExercisePayload{
		Name:         name,
		ExerciseType: exerciseType,
		MuscleGroup:  muscleGroup,
	}}
}

func DeleteExercise(exerciseID string) Event {
	return Event{Kind: EventDeleteExercise, Exercise: &ExerciseRef{ExerciseID: exerciseID}}
}

func MoveExercise(fromIndex, toIndex int) Event {
	return Event{Kind: EventMoveExercise, Move: &MovePayload{FromIndex: fromIndex, ToIndex: toIndex}}
}

func AddSet(exerciseID string) Event {
	return Event{Kind: EventAddSet, Exercise: &ExerciseRef{ExerciseID: exerciseID}}
}

func DeleteSet(exerciseID string, setIndex int) Event {
	return Event{Kind: EventDeleteSet, RemoveSet: &RemoveSetPayload{ExerciseID: exerciseID, SetIndex: setIndex}}
}

func UpdateSetActual(setID string, actual model.SetActual) Event {
	return Event{Kind: EventUpdateSetActual, SetActual: &SetActualPayload{SetID: setID, Actual: actual}}
}

func ToggleSetCompleted(setID string) Event {
	return Event{Kind: EventToggleSetCompleted, Set: &SetRef{SetID: setID}}
}

func ViewHistoryItem(workoutID string) Event {
	return Event{Kind: EventViewHistoryItem, Workout: &WorkoutRef{WorkoutID: workoutID}}
}

func ChangeTab(tab Tab) Event {
	return Event{Kind: EventChangeTab, Tab: &TabPayload{Tab: tab}}
}

func ImportWorkout(jsonData string) Event {
	return Event{Kind: EventImportWorkout, Import: &ImportPayload{JSONData: jsonData}}
}

func CalculatePlates(targetWeight, barWeight float64, percentage *float64) Event {
	return Event{Kind: EventCalculatePlates, Plates: &PlatesPayload{
		TargetWeight: targetWeight,
		BarWeight:    barWeight,
		Percentage:   percentage,
	}}
}

func DatabaseResponse(result DatabaseResult) Event {
	return Event{Kind: EventDatabaseResponse, Database: &result}
}

func StorageResponse(result StorageResult) Event {
	return Event{Kind: EventStorageResponse, Storage: &result}
}

func TimerResponse(output TimerOutput) Event {
	return Event{Kind: EventTimerResponse, Timer: &TimerResult{Output: output}}
}

func ErrorEvent(message string) Event {
	return Event{Kind: EventError, Failure: &FailurePayload{Message: message}}
}
