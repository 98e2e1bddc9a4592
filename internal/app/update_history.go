package app

func (c *Core) handleHistory(ev Event) []Effect {
	m := &c.model
	switch ev.Kind {
	case EventLoadHistory:
		m.IsLoading = true
		return []Effect{LoadAllWorkoutsEffect()}

	case EventViewHistoryItem:
		if ev.Workout != nil {
			// The identifier rides the navigation stack unparsed; it is
			// validated when the workout is actually loaded.
			m.NavigationStack = append(m.NavigationStack, NavTarget{
				Screen:    screenHistoryDetail,
				WorkoutID: ev.Workout.WorkoutID,
			})
			m.HistoryDetail = m.historyWorkout(ev.Workout.WorkoutID)
		}

	case EventNavigateBack:
		if n := len(m.NavigationStack); n > 0 {
			m.NavigationStack = m.NavigationStack[:n-1]
		}
		if len(m.NavigationStack) == 0 {
			m.HistoryDetail = nil
		}

	case EventChangeTab:
		if ev.Tab != nil {
			m.SelectedTab = ev.Tab.Tab
			m.NavigationStack = nil
			m.HistoryDetail = nil
			m.ErrorMessage = ""
		}
	}
	return nil
}
