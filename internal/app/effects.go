package app

import "github.com/repstack/repcore/internal/model"

// EffectKind tags the capability an Effect requests.
type EffectKind string

const (
	// EffectRender asks the shell to re-query View and redraw.
	EffectRender EffectKind = "render"
	// EffectDatabase asks for a durable-store operation.
	EffectDatabase EffectKind = "database"
	// EffectStorage asks for a transient current-workout stash operation.
	EffectStorage EffectKind = "storage"
	// EffectTimer asks the shell to start or stop the one-second ticker.
	EffectTimer EffectKind = "timer"
)

// Effect is a request from the core to the shell. The core never performs
// I/O itself; every side effect leaves as one of these and the outcome
// re-enters as a capability-response event.
type Effect struct {
	Kind     EffectKind       `json:"kind"`
	Database *DatabaseRequest `json:"database,omitempty"`
	Storage  *StorageRequest  `json:"storage,omitempty"`
	Timer    *TimerRequest    `json:"timer,omitempty"`
}

// Render is the ubiquitous "state changed, redraw" effect.
func Render() Effect { return Effect{Kind: EffectRender} }

// DatabaseOp selects a durable-store operation.
type DatabaseOp string

const (
	DBSaveWorkout   DatabaseOp = "save_workout"
	DBLoadAll       DatabaseOp = "load_all"
	DBLoadWorkout   DatabaseOp = "load_workout"
	DBDeleteWorkout DatabaseOp = "delete_workout"
)

// DatabaseRequest asks the shell's store for one operation. Workout is set
// for saves; WorkoutID for loads and deletes of a single workout.
type DatabaseRequest struct {
	Op        DatabaseOp     `json:"op"`
	Workout   *model.Workout `json:"workout,omitempty"`
	WorkoutID string         `json:"workout_id,omitempty"`
}

func SaveWorkoutEffect(w *model.Workout) Effect {
	return Effect{Kind: EffectDatabase, Database: &DatabaseRequest{Op: DBSaveWorkout, Workout: w}}
}

func LoadAllWorkoutsEffect() Effect {
	return Effect{Kind: EffectDatabase, Database: &DatabaseRequest{Op: DBLoadAll}}
}

func LoadWorkoutEffect(workoutID string) Effect {
	return Effect{Kind: EffectDatabase, Database: &DatabaseRequest{Op: DBLoadWorkout, WorkoutID: workoutID}}
}

func DeleteWorkoutEffect(workoutID string) Effect {
	return Effect{Kind: EffectDatabase, Database: &DatabaseRequest{Op: DBDeleteWorkout, WorkoutID: workoutID}}
}

// DatabaseResultKind tags a durable-store outcome.
type DatabaseResultKind string

const (
	DBWorkoutSaved   DatabaseResultKind = "workout_saved"
	DBWorkoutDeleted DatabaseResultKind = "workout_deleted"
	DBHistoryLoaded  DatabaseResultKind = "history_loaded"
	DBWorkoutLoaded  DatabaseResultKind = "workout_loaded"
)

// DatabaseResult is the store's answer, delivered back to the core as an
// EventDatabaseResponse. Workouts is set for history loads, Workout for
// single-workout loads; a nil Workout on DBWorkoutLoaded means not found.
type DatabaseResult struct {
	Kind     DatabaseResultKind `json:"kind"`
	Workouts []model.Workout    `json:"workouts,omitempty"`
	Workout  *model.Workout     `json:"workout,omitempty"`
}

// StorageOp selects a stash operation on the single current-workout slot.
type StorageOp string

const (
	StashSaveCurrent   StorageOp = "save_current"
	StashLoadCurrent   StorageOp = "load_current"
	StashDeleteCurrent StorageOp = "delete_current"
)

// StorageRequest asks the stash to save, load, or clear the in-progress
// workout. Workout is set only for saves.
type StorageRequest struct {
	Op      StorageOp      `json:"op"`
	Workout *model.Workout `json:"workout,omitempty"`
}

func StashSaveEffect(w *model.Workout) Effect {
	return Effect{Kind: EffectStorage, Storage: &StorageRequest{Op: StashSaveCurrent, Workout: w}}
}

func StashLoadEffect() Effect {
	return Effect{Kind: EffectStorage, Storage: &StorageRequest{Op: StashLoadCurrent}}
}

func StashDeleteEffect() Effect {
	return Effect{Kind: EffectStorage, Storage: &StorageRequest{Op: StashDeleteCurrent}}
}

// StorageResultKind tags a stash outcome.
type StorageResultKind string

const (
	StashSaved   StorageResultKind = "current_workout_saved"
	StashLoaded  StorageResultKind = "current_workout_loaded"
	StashDeleted StorageResultKind = "current_workout_deleted"
	StashError   StorageResultKind = "error"
)

// StorageResult is the stash's answer. Workout is set on StashLoaded when a
// stashed workout exists; nil means the slot was empty. Message carries the
// failure description for StashError.
type StorageResult struct {
	Kind    StorageResultKind `json:"kind"`
	Workout *model.Workout    `json:"workout,omitempty"`
	Message string            `json:"message,omitempty"`
}

// TimerOp selects a ticker operation.
type TimerOp string

const (
	TimerStart TimerOp = "start"
	TimerStop  TimerOp = "stop"
)

// TimerRequest asks the shell to start or stop the one-second session
// ticker. IntervalSeconds is always 1 for the workout timer but kept in the
// request so the shell stays policy-free.
type TimerRequest struct {
	Op              TimerOp `json:"op"`
	IntervalSeconds int     `json:"interval_seconds,omitempty"`
}

func StartTimerEffect() Effect {
	return Effect{Kind: EffectTimer, Timer: &TimerRequest{Op: TimerStart, IntervalSeconds: 1}}
}

func StopTimerEffect() Effect {
	return Effect{Kind: EffectTimer, Timer: &TimerRequest{Op: TimerStop}}
}

// TimerOutput tags a ticker notification from the shell.
type TimerOutput string

const (
	TimerTicked  TimerOutput = "tick"
	TimerStarted TimerOutput = "started"
	TimerStopped TimerOutput = "stopped"
)

// TimerResult is the shell's ticker notification payload.
type TimerResult struct {
	Output TimerOutput `json:"output"`
}
