package app

import (
	"fmt"

	"github.com/repstack/repcore/internal/id"
	"github.com/repstack/repcore/internal/model"
)

func (c *Core) handleExercise(ev Event) []Effect {
	m := &c.model
	switch ev.Kind {
	case EventAddExercise:
		if ev.NewExercise == nil {
			return nil
		}
		if m.CurrentWorkout == nil {
			m.CurrentWorkout = newWorkout(c.now)
		}
		ex := m.CurrentWorkout.AddExercise(normalizeName(ev.NewExercise.Name))
		ex.ExerciseType = model.ParseExerciseType(ev.NewExercise.ExerciseType)
		if ev.NewExercise.MuscleGroup != "" {
			ex.BodyPart = &model.BodyPart{Main: model.ParseBodyPartMain(ev.NewExercise.MuscleGroup)}
		}
		m.ShowingAddExercise = false
		m.ErrorMessage = ""
		return c.stashCurrent()

	case EventDeleteExercise:
		if ev.Exercise == nil {
			return nil
		}
		exID, err := id.Parse(ev.Exercise.ExerciseID)
		if err != nil {
			return c.fail(fmt.Sprintf("Invalid exercise ID: %v", err))
		}
		if m.CurrentWorkout == nil {
			return nil
		}
		kept := m.CurrentWorkout.Exercises[:0]
		for _, ex := range m.CurrentWorkout.Exercises {
			if ex.ID != exID {
				kept = append(kept, ex)
			}
		}
		m.CurrentWorkout.Exercises = kept
		return c.stashCurrent()

	case EventMoveExercise:
		if ev.Move == nil || m.CurrentWorkout == nil {
			return nil
		}
		exercises := m.CurrentWorkout.Exercises
		from, to := ev.Move.FromIndex, ev.Move.ToIndex
		if from < 0 || to < 0 || from >= len(exercises) || to >= len(exercises) {
			return c.fail(fmt.Sprintf(
				"Cannot move exercise: invalid position (from: %d, to: %d, total: %d)",
				from, to, len(exercises)))
		}
		moved := exercises[from]
		exercises = append(exercises[:from], exercises[from+1:]...)
		exercises = append(exercises[:to], append([]model.Exercise{moved}, exercises[to:]...)...)
		m.CurrentWorkout.Exercises = exercises
		return c.stashCurrent()

	case EventShowAddExerciseView:
		m.ShowingAddExercise = true
	case EventDismissAddExerciseView:
		m.ShowingAddExercise = false
	}
	return nil
}
