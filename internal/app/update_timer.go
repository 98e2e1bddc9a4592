package app

func (c *Core) handleTimer(ev Event) []Effect {
	m := &c.model
	switch ev.Kind {
	case EventTimerTick:
		// Ticks arriving after a stop are dropped; only a running timer
		// accumulates elapsed seconds.
		if m.TimerRunning {
			m.WorkoutTimerSeconds++
		}

	case EventStartTimer:
		m.TimerRunning = true
		return []Effect{StartTimerEffect()}

	case EventStopTimer:
		m.TimerRunning = false
		return []Effect{StopTimerEffect()}

	case EventToggleTimer:
		m.TimerRunning = !m.TimerRunning
		if m.TimerRunning {
			return []Effect{StartTimerEffect()}
		}
		return []Effect{StopTimerEffect()}

	case EventShowStopwatch:
		m.ShowingStopwatch = true
	case EventDismissStopwatch:
		m.ShowingStopwatch = false

	case EventShowRestTimer:
		if ev.RestTimer != nil {
			d := ev.RestTimer.DurationSeconds
			m.ShowingRestTimer = &d
		}
	case EventDismissRestTimer:
		m.ShowingRestTimer = nil
	}
	return nil
}
