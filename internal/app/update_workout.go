package app

import "github.com/repstack/repcore/internal/model"

func (c *Core) handleWorkout(ev Event) []Effect {
	m := &c.model
	switch ev.Kind {
	case EventStartWorkout:
		if m.CurrentWorkout != nil {
			return c.fail("A workout is already in progress. Please finish or discard it first.")
		}
		m.CurrentWorkout = newWorkout(c.now)
		m.WorkoutTimerSeconds = 0
		m.TimerRunning = true
		m.ErrorMessage = ""
		return []Effect{StartTimerEffect(), StashSaveEffect(m.CurrentWorkout)}

	case EventFinishWorkout:
		if m.CurrentWorkout == nil {
			// Finishing with no active session just resets the timer state.
			m.WorkoutTimerSeconds = 0
			m.TimerRunning = false
			m.ErrorMessage = ""
			return nil
		}
		finished := m.CurrentWorkout
		finished.Finish(m.WorkoutTimerSeconds)
		m.WorkoutHistory = append([]model.Workout{*finished}, m.WorkoutHistory...)
		m.CurrentWorkout = nil
		m.WorkoutTimerSeconds = 0
		m.TimerRunning = false
		m.ErrorMessage = ""
		return []Effect{SaveWorkoutEffect(finished), StashDeleteEffect(), StopTimerEffect()}

	case EventDiscardWorkout:
		m.CurrentWorkout = nil
		m.WorkoutTimerSeconds = 0
		m.TimerRunning = false
		m.ErrorMessage = ""
		return []Effect{StashDeleteEffect(), StopTimerEffect()}

	case EventUpdateWorkoutName:
		if m.CurrentWorkout != nil && ev.Rename != nil {
			m.CurrentWorkout.Name = normalizeName(ev.Rename.Name)
			return c.stashCurrent()
		}
		return nil

	case EventUpdateWorkoutNotes:
		if m.CurrentWorkout != nil && ev.Note != nil {
			if ev.Note.Notes == "" {
				m.CurrentWorkout.Note = nil
			} else {
				notes := ev.Note.Notes
				m.CurrentWorkout.Note = &notes
			}
			return c.stashCurrent()
		}
		return nil
	}
	return nil
}
