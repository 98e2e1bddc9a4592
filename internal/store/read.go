package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/repstack/repcore/internal/id"
	"github.com/repstack/repcore/internal/model"
)

// LoadAll returns every stored workout with its full aggregate, newest
// first by start timestamp.
func (s *Store) LoadAll(ctx context.Context) ([]model.Workout, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, startTimestamp, note, duration, endTimestamp
		 FROM workouts ORDER BY startTimestamp DESC`)
	if err != nil {
		return nil, fmt.Errorf("load workouts: %w", err)
	}
	defer rows.Close()

	workouts := []model.Workout{}
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load workouts: %w", err)
	}

	for i := range workouts {
		exercises, err := s.loadExercises(ctx, workouts[i].ID)
		if err != nil {
			return nil, err
		}
		workouts[i].Exercises = exercises
	}
	return workouts, nil
}

// LoadByID returns one workout with its full aggregate, or (nil, nil) when
// no workout has the given identifier.
func (s *Store) LoadByID(ctx context.Context, workoutID string) (*model.Workout, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, startTimestamp, note, duration, endTimestamp
		 FROM workouts WHERE id = ?`, workoutID)

	w, err := scanWorkout(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	exercises, err := s.loadExercises(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	w.Exercises = exercises
	return w, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkout(row rowScanner) (*model.Workout, error) {
	var (
		idStr   string
		w       model.Workout
		startTS int64
		note    sql.NullString
		dur     sql.NullInt64
		endTS   sql.NullInt64
	)
	if err := row.Scan(&idStr, &w.Name, &startTS, &note, &dur, &endTS); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan workout: %w", err)
	}

	wid, err := id.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("scan workout: bad id %q: %w", idStr, err)
	}
	w.ID = wid
	w.StartTimestamp = timeFromUnix(startTS)
	w.Note = stringPtrFromNull(note)
	w.Duration = intPtrFromNull(dur)
	w.EndTimestamp = timePtrFromNull(endTS)
	w.Exercises = []model.Exercise{}
	return &w, nil
}

func (s *Store) loadExercises(ctx context.Context, workoutID id.ID) ([]model.Exercise, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, workoutId, supersetId, name, pinnedNotes, notes, duration, type,
		        weightUnit, defaultWarmUpTime, defaultRestTime, bodyPart
		 FROM exercises WHERE workoutId = ? ORDER BY id`, workoutID.String())
	if err != nil {
		return nil, fmt.Errorf("load exercises for %s: %w", workoutID, err)
	}
	defer rows.Close()

	exercises := []model.Exercise{}
	for rows.Next() {
		var (
			idStr, workoutIDStr string
			ex                  model.Exercise
			superset            sql.NullInt64
			pinned, notes       sql.NullString
			dur                 sql.NullInt64
			typeStr             string
			weightUnit          sql.NullString
			warmUp, rest        sql.NullInt64
			bodyPart            sql.NullString
		)
		if err := rows.Scan(&idStr, &workoutIDStr, &superset, &ex.Name, &pinned, &notes,
			&dur, &typeStr, &weightUnit, &warmUp, &rest, &bodyPart); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}

		exID, err := id.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("scan exercise: bad id %q: %w", idStr, err)
		}
		wID, err := id.Parse(workoutIDStr)
		if err != nil {
			return nil, fmt.Errorf("scan exercise %s: bad workout id %q: %w", exID, workoutIDStr, err)
		}

		ex.ID = exID
		ex.WorkoutID = wID
		ex.SupersetID = intPtrFromNull(superset)
		ex.Duration = intPtrFromNull(dur)
		ex.ExerciseType = model.ParseExerciseType(typeStr)
		ex.WeightUnit = weightUnitPtrFromNull(weightUnit)
		ex.DefaultWarmUpTime = intPtrFromNull(warmUp)
		ex.DefaultRestTime = intPtrFromNull(rest)
		ex.PinnedNotes = []string{}
		ex.Notes = []string{}
		if err := unmarshalBlob(pinned, &ex.PinnedNotes); err != nil {
			return nil, fmt.Errorf("scan exercise %s: %w", exID, err)
		}
		if err := unmarshalBlob(notes, &ex.Notes); err != nil {
			return nil, fmt.Errorf("scan exercise %s: %w", exID, err)
		}
		if bodyPart.Valid {
			var bp model.BodyPart
			if err := unmarshalBlob(bodyPart, &bp); err != nil {
				return nil, fmt.Errorf("scan exercise %s: %w", exID, err)
			}
			ex.BodyPart = &bp
		}

		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load exercises for %s: %w", workoutID, err)
	}

	for i := range exercises {
		sets, err := s.loadSets(ctx, exercises[i].ID)
		if err != nil {
			return nil, err
		}
		exercises[i].Sets = sets
	}
	return exercises, nil
}

func (s *Store) loadSets(ctx context.Context, exerciseID id.ID) ([]model.ExerciseSet, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, exerciseId, workoutId, setIndex, type, weightUnit, suggest, actual
		 FROM exerciseSets WHERE exerciseId = ? ORDER BY setIndex`, exerciseID.String())
	if err != nil {
		return nil, fmt.Errorf("load sets for %s: %w", exerciseID, err)
	}
	defer rows.Close()

	sets := []model.ExerciseSet{}
	for rows.Next() {
		var (
			idStr, exIDStr, wIDStr string
			set                    model.ExerciseSet
			typeStr                string
			weightUnit             sql.NullString
			suggest, actual        sql.NullString
		)
		if err := rows.Scan(&idStr, &exIDStr, &wIDStr, &set.SetIndex, &typeStr,
			&weightUnit, &suggest, &actual); err != nil {
			return nil, fmt.Errorf("scan set: %w", err)
		}

		setID, err := id.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("scan set: bad id %q: %w", idStr, err)
		}
		exID, err := id.Parse(exIDStr)
		if err != nil {
			return nil, fmt.Errorf("scan set %s: bad exercise id %q: %w", setID, exIDStr, err)
		}
		wID, err := id.Parse(wIDStr)
		if err != nil {
			return nil, fmt.Errorf("scan set %s: bad workout id %q: %w", setID, wIDStr, err)
		}

		set.ID = setID
		set.ExerciseID = exID
		set.WorkoutID = wID
		set.SetType = model.ParseSetType(typeStr)
		set.WeightUnit = weightUnitPtrFromNull(weightUnit)
		// Completion is never stored; loaded sets always start not
		// completed.
		set.IsCompleted = false
		if err := unmarshalBlob(suggest, &set.Suggest); err != nil {
			return nil, fmt.Errorf("scan set %s: %w", setID, err)
		}
		if err := unmarshalBlob(actual, &set.Actual); err != nil {
			return nil, fmt.Errorf("scan set %s: %w", setID, err)
		}

		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load sets for %s: %w", exerciseID, err)
	}
	return sets, nil
}
