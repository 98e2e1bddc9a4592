package app

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repstack/repcore/internal/model"
)

func newTestCore() *Core {
	c := New(nil)
	c.now = func() time.Time {
		return time.Date(2025, 11, 26, 15, 45, 0, 0, time.UTC)
	}
	return c
}

func effectKinds(effects []Effect) []EffectKind {
	kinds := make([]EffectKind, len(effects))
	for i, e := range effects {
		kinds[i] = e.Kind
	}
	return kinds
}

// drive is shorthand for updates whose effects the test does not inspect.
func drive(c *Core, events ...Event) {
	for _, ev := range events {
		c.Update(ev)
	}
}

func TestStartWorkout(t *testing.T) {
	c := newTestCore()
	effects := c.Update(StartWorkout())

	assert.Equal(t, []EffectKind{EffectTimer, EffectStorage, EffectRender}, effectKinds(effects))
	require.NotNil(t, effects[0].Timer)
	assert.Equal(t, TimerStart, effects[0].Timer.Op)
	require.NotNil(t, effects[1].Storage)
	assert.Equal(t, StashSaveCurrent, effects[1].Storage.Op)

	vm := c.View()
	assert.True(t, vm.WorkoutView.HasActiveWorkout)
	assert.True(t, vm.WorkoutView.TimerRunning)
	assert.Equal(t, "00:00", vm.WorkoutView.FormattedDuration)
}

func TestStartWorkout_WhileActive(t *testing.T) {
	c := newTestCore()
	drive(c, StartWorkout())
	before := c.View()

	effects := c.Update(StartWorkout())

	// Rejected: error surfaces, the active session is untouched, and no
	// capability work is requested.
	assert.Equal(t, []EffectKind{EffectRender}, effectKinds(effects))
	vm := c.View()
	assert.Equal(t, "A workout is already in progress. Please finish or discard it first.", vm.ErrorMessage)
	assert.True(t, vm.ShowingError)
	assert.Equal(t, before.WorkoutView.Exercises, vm.WorkoutView.Exercises)
	assert.True(t, vm.WorkoutView.HasActiveWorkout)
}

func TestTimerOnlyAccumulatesWhileRunning(t *testing.T) {
	c := newTestCore()
	drive(c, StartWorkout())

	tick := func(n int) {
		for i := 0; i < n; i++ {
			c.Update(TimerTick())
		}
	}

	tick(60)
	drive(c, Event{Kind: EventStopTimer})
	tick(120) // dropped: timer is stopped
	drive(c, Event{Kind: EventStartTimer})
	tick(30)

	assert.Equal(t, "01:30", c.View().WorkoutView.FormattedDuration)

	drive(c, FinishWorkout())
	vm := c.View()
	require.Len(t, vm.HistoryView.Workouts, 1)
	assert.False(t, vm.WorkoutView.HasActiveWorkout)
}

func TestFinishWorkout(t *testing.T) {
	c := newTestCore()
	drive(c, StartWorkout(), UpdateWorkoutName("Leg Day"))

	effects := c.Update(FinishWorkout())

	assert.Equal(t, []EffectKind{EffectDatabase, EffectStorage, EffectTimer, EffectRender}, effectKinds(effects))
	require.NotNil(t, effects[0].Database)
	assert.Equal(t, DBSaveWorkout, effects[0].Database.Op)
	require.NotNil(t, effects[0].Database.Workout)
	require.NotNil(t, effects[0].Database.Workout.Duration)
	assert.Equal(t, StashDeleteCurrent, effects[1].Storage.Op)
	assert.Equal(t, TimerStop, effects[2].Timer.Op)

	vm := c.View()
	assert.False(t, vm.WorkoutView.HasActiveWorkout)
	assert.Equal(t, "00:00", vm.WorkoutView.FormattedDuration)
	require.Len(t, vm.HistoryView.Workouts, 1)
	assert.Equal(t, "Leg Day", vm.HistoryView.Workouts[0].Name)
}

func TestFinishWorkout_NoActiveSession(t *testing.T) {
	c := newTestCore()
	effects := c.Update(FinishWorkout())

	// Just a state reset, no capability traffic.
	assert.Equal(t, []EffectKind{EffectRender}, effectKinds(effects))
	assert.Empty(t, c.View().HistoryView.Workouts)
}

func TestDiscardWorkout(t *testing.T) {
	c := newTestCore()
	drive(c, StartWorkout(), AddExercise("Squat", "barbell", "legs"))

	effects := c.Update(DiscardWorkout())

	assert.Equal(t, []EffectKind{EffectStorage, EffectTimer, EffectRender}, effectKinds(effects))
	assert.Equal(t, StashDeleteCurrent, effects[0].Storage.Op)
	assert.Equal(t, TimerStop, effects[1].Timer.Op)

	vm := c.View()
	assert.False(t, vm.WorkoutView.HasActiveWorkout)
	assert.Empty(t, vm.HistoryView.Workouts, "discarded workouts never reach history")
}

func TestAddExercise_CreatesWorkoutWhenNoneActive(t *testing.T) {
	c := newTestCore()
	drive(c, AddExercise("Bench Press", "barbell", "chest"))

	vm := c.View()
	assert.True(t, vm.WorkoutView.HasActiveWorkout)
	require.Len(t, vm.WorkoutView.Exercises, 1)
	assert.Equal(t, "Bench Press", vm.WorkoutView.Exercises[0].Name)
}

func TestMoveExercise(t *testing.T) {
	c := newTestCore()
	drive(c,
		StartWorkout(),
		AddExercise("A", "barbell", "chest"),
		AddExercise("B", "dumbbell", "back"),
		AddExercise("C", "machine", "legs"),
		MoveExercise(0, 2),
	)

	vm := c.View()
	names := []string{vm.WorkoutView.Exercises[0].Name, vm.WorkoutView.Exercises[1].Name, vm.WorkoutView.Exercises[2].Name}
	assert.Equal(t, []string{"B", "C", "A"}, names)
}

func TestMoveExercise_OutOfBounds(t *testing.T) {
	c := newTestCore()
	drive(c, StartWorkout(), AddExercise("A", "barbell", "chest"))

	before := c.View()
	drive(c, MoveExercise(0, 5))

	vm := c.View()
	assert.Equal(t, "Cannot move exercise: invalid position (from: 0, to: 5, total: 1)", vm.ErrorMessage)
	assert.Equal(t, before.WorkoutView.Exercises, vm.WorkoutView.Exercises)
}

func TestSetLifecycle(t *testing.T) {
	c := newTestCore()
	drive(c, StartWorkout(), AddExercise("Deadlift", "barbell", "back"))

	exID := c.View().WorkoutView.Exercises[0].ID
	drive(c, AddSet(exID), AddSet(exID), AddSet(exID))

	vm := c.View()
	require.Len(t, vm.WorkoutView.Exercises[0].Sets, 3)
	for i, set := range vm.WorkoutView.Exercises[0].Sets {
		assert.Equal(t, i+1, set.SetNumber)
		assert.False(t, set.IsCompleted)
	}

	// Record and complete the second set.
	setID := vm.WorkoutView.Exercises[0].Sets[1].ID
	weight, reps := 315.0, 5
	drive(c,
		UpdateSetActual(setID, model.SetActual{Weight: &weight, Reps: &reps}),
		ToggleSetCompleted(setID),
	)

	vm = c.View()
	set := vm.WorkoutView.Exercises[0].Sets[1]
	assert.Equal(t, "315", set.Weight)
	assert.Equal(t, "5", set.Reps)
	assert.True(t, set.IsCompleted)
	assert.Equal(t, 1575, vm.WorkoutView.TotalVolume)

	// Delete the middle set; remaining numbers stay dense.
	drive(c, DeleteSet(exID, 1))
	vm = c.View()
	require.Len(t, vm.WorkoutView.Exercises[0].Sets, 2)
	assert.Equal(t, 1, vm.WorkoutView.Exercises[0].Sets[0].SetNumber)
	assert.Equal(t, 2, vm.WorkoutView.Exercises[0].Sets[1].SetNumber)
	assert.Equal(t, 0, vm.WorkoutView.TotalVolume)
}

func TestDeleteSet_OutOfBounds(t *testing.T) {
	c := newTestCore()
	drive(c, StartWorkout(), AddExercise("Row", "machine", "back"))
	exID := c.View().WorkoutView.Exercises[0].ID
	drive(c, AddSet(exID))

	drive(c, DeleteSet(exID, 3))

	vm := c.View()
	assert.Equal(t, "Cannot delete set: index 3 is out of bounds (total sets: 1)", vm.ErrorMessage)
	assert.Len(t, vm.WorkoutView.Exercises[0].Sets, 1)
}

func TestSetEvents_InvalidIdentifier(t *testing.T) {
	c := newTestCore()
	drive(c, StartWorkout())

	drive(c, AddSet("not-a-uuid"))
	assert.Contains(t, c.View().ErrorMessage, "Invalid exercise ID")

	drive(c, ToggleSetCompleted("also-bad"))
	assert.Contains(t, c.View().ErrorMessage, "Invalid set ID")
}

func TestChangeTab_ClearsNavigationAndError(t *testing.T) {
	c := newTestCore()
	drive(c, StartWorkout(), MoveExercise(0, 1)) // plant an error
	require.NotEmpty(t, c.View().ErrorMessage)

	drive(c, ChangeTab(TabHistory))

	vm := c.View()
	assert.Equal(t, TabHistory, vm.SelectedTab)
	assert.Empty(t, vm.ErrorMessage)
	assert.Nil(t, vm.HistoryDetailView)
}

func TestHistoryNavigation(t *testing.T) {
	c := newTestCore()
	drive(c, StartWorkout(), UpdateWorkoutName("Pull Day"), FinishWorkout())

	workoutID := c.View().HistoryView.Workouts[0].ID
	drive(c, ViewHistoryItem(workoutID))

	vm := c.View()
	require.NotNil(t, vm.HistoryDetailView)
	assert.Equal(t, "Pull Day", vm.HistoryDetailView.WorkoutName)

	drive(c, Event{Kind: EventNavigateBack})
	assert.Nil(t, c.View().HistoryDetailView)
}

func TestDatabaseResponse_HistoryLoaded(t *testing.T) {
	c := newTestCore()
	drive(c, LoadHistory())
	assert.True(t, c.View().IsLoading)

	w := model.NewWorkout()
	w.Name = "Old Session"
	drive(c, DatabaseResponse(DatabaseResult{Kind: DBHistoryLoaded, Workouts: []model.Workout{*w}}))

	vm := c.View()
	assert.False(t, vm.IsLoading)
	require.Len(t, vm.HistoryView.Workouts, 1)
	assert.Equal(t, "Old Session", vm.HistoryView.Workouts[0].Name)
}

func TestStorageResponse_ResumesStashedSession(t *testing.T) {
	c := newTestCore()

	w := model.NewWorkout()
	w.Name = "Interrupted"
	// Session started ten minutes before the core's clock.
	w.StartTimestamp = c.now().Add(-10 * time.Minute)

	effects := c.Update(StorageResponse(StorageResult{Kind: StashLoaded, Workout: w}))

	// Timer restarts and is caught up to wall-clock elapsed.
	assert.Equal(t, []EffectKind{EffectTimer, EffectRender}, effectKinds(effects))
	assert.Equal(t, TimerStart, effects[0].Timer.Op)

	vm := c.View()
	assert.True(t, vm.WorkoutView.HasActiveWorkout)
	assert.True(t, vm.WorkoutView.TimerRunning)
	assert.Equal(t, "10:00", vm.WorkoutView.FormattedDuration)
}

func TestStorageResponse_EmptySlot(t *testing.T) {
	c := newTestCore()
	effects := c.Update(StorageResponse(StorageResult{Kind: StashLoaded}))

	assert.Equal(t, []EffectKind{EffectRender}, effectKinds(effects))
	assert.False(t, c.View().WorkoutView.HasActiveWorkout)
}

func TestStorageResponse_Error(t *testing.T) {
	c := newTestCore()
	drive(c, StorageResponse(StorageResult{Kind: StashError, Message: "disk full"}))
	assert.Equal(t, "Storage error: disk full", c.View().ErrorMessage)
}

func TestCalculatePlates_Validation(t *testing.T) {
	pct := func(f float64) *float64 { return &f }

	tests := []struct {
		name    string
		event   Event
		wantErr string
	}{
		{"zero target", CalculatePlates(0, 45, nil), "Target weight must be greater than 0"},
		{"zero bar", CalculatePlates(225, 0, nil), "Bar weight must be greater than 0"},
		{"percentage too high", CalculatePlates(225, 45, pct(150)), "Percentage must be between 0 and 100 (got 150)"},
		{"target below bar", CalculatePlates(40, 45, nil), "Target weight is less than bar weight"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCore()
			drive(c, tc.event)
			vm := c.View()
			assert.Equal(t, tc.wantErr, vm.ErrorMessage)
			assert.Nil(t, vm.PlateCalculator.Calculation)
		})
	}
}

func TestCalculatePlates(t *testing.T) {
	c := newTestCore()
	drive(c, CalculatePlates(225, 45, nil))

	vm := c.View()
	require.NotNil(t, vm.PlateCalculator.Calculation)
	calc := vm.PlateCalculator.Calculation
	assert.Equal(t, 225.0, calc.TotalWeight)
	assert.Equal(t, 45.0, calc.BarWeight)
	assert.Equal(t, "2x45lb", calc.PlatesPerSide)
	require.Len(t, calc.Plates, 1)
	assert.Equal(t, 45.0, calc.Plates[0].Weight)
	assert.Equal(t, 2, calc.Plates[0].Count)
}

func TestCalculatePlates_WithPercentage(t *testing.T) {
	c := newTestCore()
	pct := 90.0
	drive(c, CalculatePlates(315, 45, &pct))

	vm := c.View()
	require.NotNil(t, vm.PlateCalculator.Calculation)
	assert.InDelta(t, 283.5, vm.PlateCalculator.Calculation.TotalWeight, 0.001)
}

func TestDismissPlateCalculator_ClearsResult(t *testing.T) {
	c := newTestCore()
	drive(c, Event{Kind: EventShowPlateCalculator}, CalculatePlates(135, 45, nil))
	require.NotNil(t, c.View().PlateCalculator.Calculation)

	drive(c, Event{Kind: EventDismissPlateCalculator})
	vm := c.View()
	assert.False(t, vm.PlateCalculator.IsShown)
	assert.Nil(t, vm.PlateCalculator.Calculation)
}

func TestUnknownEventKind(t *testing.T) {
	c := newTestCore()
	effects := c.Update(Event{Kind: "from_a_newer_shell"})
	assert.Equal(t, []EffectKind{EffectRender}, effectKinds(effects))
}

func TestEveryUpdateEndsWithRender(t *testing.T) {
	c := newTestCore()
	events := []Event{
		Initialize(),
		StartWorkout(),
		AddExercise("Squat", "barbell", "legs"),
		TimerTick(),
		FinishWorkout(),
		LoadHistory(),
		ChangeTab(TabHistory),
		Event{Kind: EventNavigateBack},
	}
	for _, ev := range events {
		effects := c.Update(ev)
		require.NotEmpty(t, effects)
		assert.Equal(t, EffectRender, effects[len(effects)-1].Kind, "event %s", ev.Kind)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{90, "01:30"},
		{323, "05:23"},
		{3600, "60:00"},
		{3661, "61:01"},
		{7200, "120:00"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatDuration(tc.seconds))
		})
	}
}

func TestEventEnvelopeRoundTrip(t *testing.T) {
	ev := DeleteSet("11111111-1111-4111-8111-111111111111", 2)
	data, err := EncodeEvent(ev)
	require.NoError(t, err)

	decoded, err := DecodeEvent(data)
	require.NoError(t, err)
	assert.Equal(t, ev, decoded)

	_, err = DecodeEvent([]byte(`{"rename":{"name":"x"}}`))
	assert.Error(t, err, "missing kind must be rejected")
}

func TestErrorEvent(t *testing.T) {
	c := newTestCore()
	drive(c, ErrorEvent("shell exploded"))
	vm := c.View()
	assert.Equal(t, "shell exploded", vm.ErrorMessage)
	assert.True(t, vm.ShowingError)
}

func ExampleFormatDuration() {
	fmt.Println(FormatDuration(3725))
	// Output: 62:05
}
