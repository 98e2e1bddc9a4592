package app

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The golden fixture pins the full view-model wire shape. The state is
// built through an import so every identifier is deterministic.
func TestView_Golden(t *testing.T) {
	c := newTestCore()
	drive(c, ImportWorkout(importFixture(importSetID)))

	data, err := json.MarshalIndent(c.View(), "", "  ")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "view_active_workout", append(data, '\n'))
}

func TestView_InitialState(t *testing.T) {
	c := newTestCore()
	vm := c.View()

	assert.Equal(t, TabWorkout, vm.SelectedTab)
	assert.False(t, vm.WorkoutView.HasActiveWorkout)
	assert.Equal(t, "00:00", vm.WorkoutView.FormattedDuration)
	assert.NotNil(t, vm.WorkoutView.Exercises, "empty list, not null, on the wire")
	assert.NotNil(t, vm.HistoryView.Workouts)
	assert.False(t, vm.ShowingError)
}

func TestView_SetFieldsRenderAsStrings(t *testing.T) {
	c := newTestCore()
	drive(c, StartWorkout(), AddExercise("Press", "barbell", "shoulders"))
	exID := c.View().WorkoutView.Exercises[0].ID
	drive(c, AddSet(exID))

	set := c.View().WorkoutView.Exercises[0].Sets[0]
	assert.Equal(t, "", set.Weight, "unset values render empty, not zero")
	assert.Equal(t, "", set.Reps)
	assert.Equal(t, "", set.RPE)
	assert.Equal(t, "", set.PreviousDisplay)
}

func TestView_RestTimerSurfaced(t *testing.T) {
	c := newTestCore()
	drive(c, Event{Kind: EventShowRestTimer, RestTimer: &RestTimerPayload{DurationSeconds: 90}})

	vm := c.View()
	require.NotNil(t, vm.WorkoutView.ShowingRestTimer)
	assert.Equal(t, 90, *vm.WorkoutView.ShowingRestTimer)

	drive(c, Event{Kind: EventDismissRestTimer})
	assert.Nil(t, c.View().WorkoutView.ShowingRestTimer)
}
