package app

import (
	"fmt"

	"github.com/repstack/repcore/internal/id"
)

func (c *Core) handleSet(ev Event) []Effect {
	m := &c.model
	switch ev.Kind {
	case EventAddSet:
		if ev.Exercise == nil {
			return nil
		}
		if _, err := id.Parse(ev.Exercise.ExerciseID); err != nil {
			return c.fail(fmt.Sprintf("Invalid exercise ID: %v", err))
		}
		if ex := m.FindExercise(ev.Exercise.ExerciseID); ex != nil {
			ex.AddSet()
			m.ErrorMessage = ""
			return c.stashCurrent()
		}
		return nil

	case EventDeleteSet:
		if ev.RemoveSet == nil {
			return nil
		}
		if _, err := id.Parse(ev.RemoveSet.ExerciseID); err != nil {
			return c.fail(fmt.Sprintf("Invalid exercise ID: %v", err))
		}
		ex := m.FindExercise(ev.RemoveSet.ExerciseID)
		if ex == nil {
			return nil
		}
		idx := ev.RemoveSet.SetIndex
		if idx < 0 || idx >= len(ex.Sets) {
			return c.fail(fmt.Sprintf(
				"Cannot delete set: index %d is out of bounds (total sets: %d)",
				idx, len(ex.Sets)))
		}
		ex.Sets = append(ex.Sets[:idx], ex.Sets[idx+1:]...)
		ex.Reindex()
		return c.stashCurrent()

	case EventUpdateSetActual:
		if ev.SetActual == nil {
			return nil
		}
		if _, err := id.Parse(ev.SetActual.SetID); err != nil {
			return c.fail(fmt.Sprintf("Invalid set ID: %v", err))
		}
		if set := m.FindSet(ev.SetActual.SetID); set != nil {
			set.Actual = ev.SetActual.Actual
			return c.stashCurrent()
		}
		return nil

	case EventToggleSetCompleted:
		if ev.Set == nil {
			return nil
		}
		if _, err := id.Parse(ev.Set.SetID); err != nil {
			return c.fail(fmt.Sprintf("Invalid set ID: %v", err))
		}
		if set := m.FindSet(ev.Set.SetID); set != nil {
			set.IsCompleted = !set.IsCompleted
			return c.stashCurrent()
		}
		return nil
	}
	return nil
}
