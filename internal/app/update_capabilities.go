package app

func (c *Core) handleCapability(ev Event) []Effect {
	m := &c.model
	switch ev.Kind {
	case EventDatabaseResponse:
		if ev.Database == nil {
			return nil
		}
		m.IsLoading = false
		switch ev.Database.Kind {
		case DBWorkoutSaved, DBWorkoutDeleted:
			// Nothing to update; the trailing render is enough.
		case DBHistoryLoaded:
			m.WorkoutHistory = ev.Database.Workouts
		case DBWorkoutLoaded:
			m.CurrentWorkout = ev.Database.Workout
		}

	case EventStorageResponse:
		if ev.Storage == nil {
			return nil
		}
		m.IsLoading = false
		switch ev.Storage.Kind {
		case StashSaved, StashDeleted:
			// Nothing to update.
		case StashLoaded:
			if w := ev.Storage.Workout; w != nil {
				// A session survived a restart: resume it with the timer
				// caught up to wall-clock elapsed since the session began.
				elapsed := int(c.now().UTC().Sub(w.StartTimestamp).Seconds())
				if elapsed < 0 {
					elapsed = 0
				}
				m.WorkoutTimerSeconds = elapsed
				m.CurrentWorkout = w
				m.TimerRunning = true
				return []Effect{StartTimerEffect()}
			}
		case StashError:
			m.ErrorMessage = "Storage error: " + ev.Storage.Message
		}

	case EventTimerResponse:
		if ev.Timer == nil {
			return nil
		}
		switch ev.Timer.Output {
		case TimerTicked:
			if m.TimerRunning {
				m.WorkoutTimerSeconds++
			}
		case TimerStarted, TimerStopped:
			// State was already set when the request left.
		}

	case EventError:
		if ev.Failure != nil {
			m.ErrorMessage = ev.Failure.Message
			m.IsLoading = false
		}
	}
	return nil
}
