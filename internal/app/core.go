package app

import (
	"log/slog"
	"sync"
	"time"
)

// Core is the synchronous reducer. All state lives in its Model; every
// change enters through Update and every read leaves through View.
//
// Update holds the mutex for the full reduction, so the shell may call it
// from any goroutine; in practice the runtime serializes events through a
// single loop and the lock is uncontended.
type Core struct {
	mu    sync.Mutex
	model Model
	log   *slog.Logger

	// now is swapped in tests for deterministic timestamps.
	now func() time.Time
}

// New creates a Core in the initial state.
func New(log *slog.Logger) *Core {
	if log == nil {
		log = slog.Default()
	}
	return &Core{
		model: NewModel(),
		log:   log,
		now:   time.Now,
	}
}

// SetClock overrides the time source. Deterministic tests and the scenario
// harness call this before the first event; the shell never does.
func (c *Core) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Update reduces one event into the model and returns the effects the shell
// must execute. Every reduction ends with a render effect so the shell
// redraws after each event; handler-specific effects precede it.
func (c *Core) Update(ev Event) []Effect {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.log.Debug("event", "kind", ev.Kind)

	var effects []Effect
	switch ev.Kind {
	case EventInitialize:
		effects = c.handleInitialize()

	case EventStartWorkout, EventFinishWorkout, EventDiscardWorkout,
		EventUpdateWorkoutName, EventUpdateWorkoutNotes:
		effects = c.handleWorkout(ev)

	case EventAddExercise, EventDeleteExercise, EventMoveExercise,
		EventShowAddExerciseView, EventDismissAddExerciseView:
		effects = c.handleExercise(ev)

	case EventAddSet, EventDeleteSet, EventUpdateSetActual,
		EventToggleSetCompleted:
		effects = c.handleSet(ev)

	case EventTimerTick, EventStartTimer, EventStopTimer, EventToggleTimer,
		EventShowStopwatch, EventDismissStopwatch,
		EventShowRestTimer, EventDismissRestTimer:
		effects = c.handleTimer(ev)

	case EventLoadHistory, EventViewHistoryItem, EventNavigateBack,
		EventChangeTab:
		effects = c.handleHistory(ev)

	case EventImportWorkout, EventShowImportView, EventDismissImportView,
		EventLoadWorkoutTemplate:
		effects = c.handleImport(ev)

	case EventCalculatePlates, EventClearPlateCalculation,
		EventShowPlateCalculator, EventDismissPlateCalculator:
		effects = c.handlePlates(ev)

	case EventDatabaseResponse, EventStorageResponse, EventTimerResponse,
		EventError:
		effects = c.handleCapability(ev)

	default:
		// Unknown kinds can arrive from a newer shell; tolerate them.
		c.log.Warn("unknown event kind", "kind", ev.Kind)
	}

	return append(effects, Render())
}

// View projects the current model into the display representation.
func (c *Core) View() ViewModel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return buildViewModel(&c.model)
}

// handleInitialize asks the stash whether a session survived a restart.
// History is loaded eagerly too so the history tab is never empty-flashing.
func (c *Core) handleInitialize() []Effect {
	c.model.IsLoading = true
	return []Effect{StashLoadEffect(), LoadAllWorkoutsEffect()}
}

// fail records a user-visible error message. It is state, not an effect:
// the trailing render surfaces it.
func (c *Core) fail(msg string) []Effect {
	c.model.ErrorMessage = msg
	return nil
}

// stashCurrent persists the in-progress workout after a mutation, so an
// interrupted session survives process death. No-op when no session is
// active.
func (c *Core) stashCurrent() []Effect {
	if c.model.CurrentWorkout == nil {
		return nil
	}
	return []Effect{StashSaveEffect(c.model.CurrentWorkout)}
}
