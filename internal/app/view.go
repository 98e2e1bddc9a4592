package app

import (
	"math"
	"sort"
	"strconv"

	"github.com/repstack/repcore/internal/model"
)

// ViewModel is the root display projection. It is a pure function of the
// model: no identity, no behavior, safe to serialize across the shell
// boundary.
type ViewModel struct {
	SelectedTab       Tab                      `json:"selected_tab"`
	WorkoutView       WorkoutViewModel         `json:"workout_view"`
	HistoryView       HistoryViewModel         `json:"history_view"`
	HistoryDetailView *HistoryDetailViewModel  `json:"history_detail_view,omitempty"`
	PlateCalculator   PlateCalculatorViewModel `json:"plate_calculator"`
	ErrorMessage      string                   `json:"error_message,omitempty"`
	ShowingError      bool                     `json:"showing_error"`
	IsLoading         bool                     `json:"is_loading"`
}

// WorkoutViewModel is the active-session tab.
type WorkoutViewModel struct {
	HasActiveWorkout   bool                `json:"has_active_workout"`
	WorkoutName        string              `json:"workout_name"`
	FormattedDuration  string              `json:"formatted_duration"`
	TotalVolume        int                 `json:"total_volume"`
	TotalSets          int                 `json:"total_sets"`
	Exercises          []ExerciseViewModel `json:"exercises"`
	TimerRunning       bool                `json:"timer_running"`
	ShowingAddExercise bool                `json:"showing_add_exercise"`
	ShowingImport      bool                `json:"showing_import"`
	ShowingStopwatch   bool                `json:"showing_stopwatch"`
	ShowingRestTimer   *int                `json:"showing_rest_timer,omitempty"`
}

// ExerciseViewModel is one exercise row with its sets.
type ExerciseViewModel struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Sets []SetViewModel `json:"sets"`
}

// SetViewModel is one set row. Numeric values are pre-rendered strings for
// direct text-field binding; empty means no value.
type SetViewModel struct {
	ID              string `json:"id"`
	SetNumber       int    `json:"set_number"`
	PreviousDisplay string `json:"previous_display"`
	Weight          string `json:"weight"`
	Reps            string `json:"reps"`
	RPE             string `json:"rpe"`
	IsCompleted     bool   `json:"is_completed"`
}

// HistoryViewModel is the history tab.
type HistoryViewModel struct {
	Workouts  []HistoryItemViewModel `json:"workouts"`
	IsLoading bool                   `json:"is_loading"`
}

// HistoryItemViewModel is one row in the history list.
type HistoryItemViewModel struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Date          string `json:"date"`
	ExerciseCount int    `json:"exercise_count"`
	SetCount      int    `json:"set_count"`
	TotalVolume   int    `json:"total_volume"`
}

// HistoryDetailViewModel is the drill-down view of one past workout.
type HistoryDetailViewModel struct {
	ID            string                    `json:"id"`
	WorkoutName   string                    `json:"workout_name"`
	FormattedDate string                    `json:"formatted_date"`
	Duration      string                    `json:"duration,omitempty"`
	Exercises     []ExerciseDetailViewModel `json:"exercises"`
	Notes         string                    `json:"notes,omitempty"`
	TotalVolume   int                       `json:"total_volume"`
	TotalSets     int                       `json:"total_sets"`
}

// ExerciseDetailViewModel is one exercise in the history detail view.
type ExerciseDetailViewModel struct {
	Name string               `json:"name"`
	Sets []SetDetailViewModel `json:"sets"`
}

// SetDetailViewModel is one completed set's display line.
type SetDetailViewModel struct {
	SetNumber   int    `json:"set_number"`
	DisplayText string `json:"display_text"`
}

// PlateCalculatorViewModel is the plate calculator modal.
type PlateCalculatorViewModel struct {
	Calculation *PlateCalculationResult `json:"calculation,omitempty"`
	IsShown     bool                    `json:"is_shown"`
}

// PlateCalculationResult is a computed loading for the UI.
type PlateCalculationResult struct {
	TotalWeight   float64          `json:"total_weight"`
	BarWeight     float64          `json:"bar_weight"`
	PlatesPerSide string           `json:"plates_per_side"`
	Plates        []PlateViewModel `json:"plates"`
}

// PlateViewModel is one plate size with its per-side count.
type PlateViewModel struct {
	Weight float64 `json:"weight"`
	Count  int     `json:"count"`
	Color  string  `json:"color"`
}

func buildViewModel(m *Model) ViewModel {
	return ViewModel{
		SelectedTab:       m.SelectedTab,
		WorkoutView:       buildWorkoutView(m),
		HistoryView:       buildHistoryView(m),
		HistoryDetailView: buildHistoryDetailView(m),
		PlateCalculator:   buildPlateCalculatorView(m),
		ErrorMessage:      m.ErrorMessage,
		ShowingError:      m.ErrorMessage != "",
		IsLoading:         m.IsLoading,
	}
}

func buildWorkoutView(m *Model) WorkoutViewModel {
	vm := WorkoutViewModel{
		HasActiveWorkout:   m.CurrentWorkout != nil,
		FormattedDuration:  FormatDuration(m.WorkoutTimerSeconds),
		TimerRunning:       m.TimerRunning,
		ShowingAddExercise: m.ShowingAddExercise,
		ShowingImport:      m.ShowingImportView,
		ShowingStopwatch:   m.ShowingStopwatch,
		ShowingRestTimer:   m.ShowingRestTimer,
		Exercises:          []ExerciseViewModel{},
	}
	if w := m.CurrentWorkout; w != nil {
		vm.WorkoutName = w.Name
		vm.TotalVolume = int(w.TotalVolume())
		vm.TotalSets = w.TotalSets()
		for i := range w.Exercises {
			vm.Exercises = append(vm.Exercises, buildExerciseView(&w.Exercises[i]))
		}
	}
	return vm
}

func buildExerciseView(ex *model.Exercise) ExerciseViewModel {
	vm := ExerciseViewModel{
		ID:   ex.ID.String(),
		Name: ex.Name,
		Sets: []SetViewModel{},
	}
	for i := range ex.Sets {
		vm.Sets = append(vm.Sets, buildSetView(&ex.Sets[i], i+1))
	}
	return vm
}

func buildSetView(set *model.ExerciseSet, setNumber int) SetViewModel {
	vm := SetViewModel{
		ID:          set.ID.String(),
		SetNumber:   setNumber,
		IsCompleted: set.IsCompleted,
	}
	if set.Suggest.Weight != nil && set.Suggest.Reps != nil {
		vm.PreviousDisplay = formatFloat(*set.Suggest.Weight) + " × " + strconv.Itoa(*set.Suggest.Reps)
	}
	if set.Actual.Weight != nil {
		vm.Weight = formatFloat(*set.Actual.Weight)
	}
	if set.Actual.Reps != nil {
		vm.Reps = strconv.Itoa(*set.Actual.Reps)
	}
	if set.Actual.RPE != nil {
		vm.RPE = formatFloat(*set.Actual.RPE)
	}
	return vm
}

func buildHistoryView(m *Model) HistoryViewModel {
	vm := HistoryViewModel{
		Workouts:  []HistoryItemViewModel{},
		IsLoading: m.IsLoading,
	}
	for i := range m.WorkoutHistory {
		w := &m.WorkoutHistory[i]
		vm.Workouts = append(vm.Workouts, HistoryItemViewModel{
			ID:            w.ID.String(),
			Name:          w.Name,
			Date:          w.StartTimestamp.Format("Jan 02, 2006"),
			ExerciseCount: len(w.Exercises),
			SetCount:      w.TotalSets(),
			TotalVolume:   int(w.TotalVolume()),
		})
	}
	return vm
}

// buildHistoryDetailView projects the drill-down screen when the navigation
// stack tops out on a history detail entry.
func buildHistoryDetailView(m *Model) *HistoryDetailViewModel {
	if m.HistoryDetail == nil {
		return nil
	}
	w := m.HistoryDetail
	vm := &HistoryDetailViewModel{
		ID:            w.ID.String(),
		WorkoutName:   w.Name,
		FormattedDate: w.StartTimestamp.Format("Jan 02, 2006 at 3:04 PM"),
		Exercises:     []ExerciseDetailViewModel{},
		TotalVolume:   int(w.TotalVolume()),
		TotalSets:     w.TotalSets(),
	}
	if w.Duration != nil {
		vm.Duration = FormatDuration(*w.Duration)
	}
	if w.Note != nil {
		vm.Notes = *w.Note
	}
	for i := range w.Exercises {
		ex := &w.Exercises[i]
		detail := ExerciseDetailViewModel{Name: ex.Name, Sets: []SetDetailViewModel{}}
		for j := range ex.Sets {
			detail.Sets = append(detail.Sets, SetDetailViewModel{
				SetNumber:   j + 1,
				DisplayText: setDisplayText(&ex.Sets[j]),
			})
		}
		vm.Exercises = append(vm.Exercises, detail)
	}
	return vm
}

// setDisplayText renders a completed set's line, e.g.
// "225 lb × 10 reps @ 8 RPE". Missing pieces are simply omitted.
func setDisplayText(set *model.ExerciseSet) string {
	unit := model.UnitLb
	if set.WeightUnit != nil {
		unit = *set.WeightUnit
	}
	var text string
	if set.Actual.Weight != nil {
		text = formatFloat(*set.Actual.Weight) + " " + unit.Suffix()
	}
	if set.Actual.Reps != nil {
		if text != "" {
			text += " × "
		}
		text += strconv.Itoa(*set.Actual.Reps) + " reps"
	}
	if set.Actual.RPE != nil && text != "" {
		text += " @ " + formatFloat(*set.Actual.RPE) + " RPE"
	}
	return text
}

func buildPlateCalculatorView(m *Model) PlateCalculatorViewModel {
	vm := PlateCalculatorViewModel{IsShown: m.ShowingPlateCalculator}
	if calc := m.PlateCalculation; calc != nil {
		vm.Calculation = &PlateCalculationResult{
			TotalWeight:   calc.TotalWeight,
			BarWeight:     calc.BarType.Weight,
			PlatesPerSide: calc.Description(),
			Plates:        groupPlates(calc.Plates),
		}
	}
	return vm
}

// groupPlates collapses the flat plate list into per-size counts, largest
// first, keyed in hundredths so fractional plates keep their identity.
func groupPlates(plates []model.Plate) []PlateViewModel {
	counts := make(map[int]int)
	for _, p := range plates {
		counts[int(math.Round(p.Weight*100))]++
	}
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	out := make([]PlateViewModel, 0, len(keys))
	for _, k := range keys {
		weight := float64(k) / 100
		out = append(out, PlateViewModel{
			Weight: weight,
			Count:  counts[k],
			Color:  plateColor(weight),
		})
	}
	return out
}

// plateColor maps common plate sizes to their conventional gym colors.
func plateColor(weight float64) string {
	switch weight {
	case 45, 20:
		return "blue"
	case 35, 15:
		return "yellow"
	case 25:
		return "green"
	case 10:
		return "white"
	case 5:
		return "red"
	default:
		return "gray"
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
