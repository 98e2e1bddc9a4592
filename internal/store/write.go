package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/repstack/repcore/internal/model"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// SaveWorkout writes the whole aggregate in one transaction, replacing any
// existing rows with the same identifiers. Saving twice with the same
// workout is idempotent; a partial failure rolls everything back.
func (s *Store) SaveWorkout(ctx context.Context, w *model.Workout) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO workouts (id, name, startTimestamp, note, duration, endTimestamp)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		w.ID.String(), w.Name, unixTime(w.StartTimestamp),
		nullableString(w.Note), nullableInt(w.Duration), nullableUnix(w.EndTimestamp))
	if err != nil {
		return fmt.Errorf("save workout %s: %w", w.ID, err)
	}

	for i := range w.Exercises {
		if err := saveExerciseTx(ctx, tx, &w.Exercises[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	s.log.Debug("workout saved", "workout_id", w.ID, "exercises", len(w.Exercises))
	return nil
}

func saveExerciseTx(ctx context.Context, tx execer, ex *model.Exercise) error {
	pinned, err := jsonBlob(ex.PinnedNotes)
	if err != nil {
		return fmt.Errorf("save exercise %s: %w", ex.ID, err)
	}
	notes, err := jsonBlob(ex.Notes)
	if err != nil {
		return fmt.Errorf("save exercise %s: %w", ex.ID, err)
	}
	bodyPart, err := nullableJSONBlob(ex.BodyPart, ex.BodyPart == nil)
	if err != nil {
		return fmt.Errorf("save exercise %s: %w", ex.ID, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO exercises
		 (id, workoutId, supersetId, name, pinnedNotes, notes, duration, type,
		  weightUnit, defaultWarmUpTime, defaultRestTime, bodyPart)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ex.ID.String(), ex.WorkoutID.String(), nullableInt(ex.SupersetID), ex.Name,
		pinned, notes, nullableInt(ex.Duration), string(ex.ExerciseType),
		nullableWeightUnit(ex.WeightUnit), nullableInt(ex.DefaultWarmUpTime),
		nullableInt(ex.DefaultRestTime), bodyPart)
	if err != nil {
		return fmt.Errorf("save exercise %s: %w", ex.ID, err)
	}

	for i := range ex.Sets {
		if err := saveSetTx(ctx, tx, &ex.Sets[i]); err != nil {
			return err
		}
	}
	return nil
}

func saveSetTx(ctx context.Context, tx execer, set *model.ExerciseSet) error {
	suggest, err := jsonBlob(set.Suggest)
	if err != nil {
		return fmt.Errorf("save set %s: %w", set.ID, err)
	}
	actual, err := jsonBlob(set.Actual)
	if err != nil {
		return fmt.Errorf("save set %s: %w", set.ID, err)
	}

	// is_completed is deliberately not a column: completion is session
	// state, not history.
	_, err = tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO exerciseSets
		 (id, exerciseId, workoutId, setIndex, type, weightUnit, suggest, actual)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		set.ID.String(), set.ExerciseID.String(), set.WorkoutID.String(),
		set.SetIndex, string(set.SetType), nullableWeightUnit(set.WeightUnit),
		suggest, actual)
	if err != nil {
		return fmt.Errorf("save set %s: %w", set.ID, err)
	}
	return nil
}

// DeleteWorkout removes a workout; exercises and sets cascade.
// Deleting a missing workout is not an error.
func (s *Store) DeleteWorkout(ctx context.Context, workoutID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM workouts WHERE id = ?`, workoutID)
	if err != nil {
		return fmt.Errorf("delete workout %s: %w", workoutID, err)
	}
	s.log.Debug("workout deleted", "workout_id", workoutID)
	return nil
}
