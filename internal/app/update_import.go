package app

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"

	"github.com/repstack/repcore/internal/model"
)

//go:embed schema.cue
var importSchemaSource string

var (
	schemaOnce    sync.Once
	workoutSchema cue.Value
)

// importSchema returns the compiled #Workout schema. Compilation is done
// once; the schema source is embedded and known-good, so a compile failure
// is a programming error and surfaces on first import.
func importSchema() cue.Value {
	schemaOnce.Do(func() {
		ctx := cuecontext.New()
		workoutSchema = ctx.CompileString(importSchemaSource).LookupPath(cue.ParsePath("#Workout"))
	})
	return workoutSchema
}

// validateImportShape checks raw import JSON against the workout schema
// before any decoding happens, so shape errors carry CUE's field-level
// positions instead of a generic unmarshal failure.
func validateImportShape(data []byte) error {
	schema := importSchema()
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile import schema: %w", err)
	}
	return cuejson.Validate(data, schema)
}

// validateWorkoutIDs re-checks every identifier in a decoded workout.
// Decoding accepts identifiers verbatim, so imported data must be walked
// explicitly; error messages carry the position of the offending field.
func validateWorkoutIDs(w *model.Workout) error {
	if err := w.ID.Validate(); err != nil {
		return fmt.Errorf("Invalid workout ID: %v", err)
	}
	for ei := range w.Exercises {
		ex := &w.Exercises[ei]
		if err := ex.ID.Validate(); err != nil {
			return fmt.Errorf("Invalid exercise ID at index %d: %v", ei, err)
		}
		if err := ex.WorkoutID.Validate(); err != nil {
			return fmt.Errorf("Invalid workout_id in exercise at index %d: %v", ei, err)
		}
		for si := range ex.Sets {
			set := &ex.Sets[si]
			if err := set.ID.Validate(); err != nil {
				return fmt.Errorf("Invalid set ID at exercise %d set %d: %v", ei, si, err)
			}
			if err := set.ExerciseID.Validate(); err != nil {
				return fmt.Errorf("Invalid exercise_id in set at exercise %d set %d: %v", ei, si, err)
			}
			if err := set.WorkoutID.Validate(); err != nil {
				return fmt.Errorf("Invalid workout_id in set at exercise %d set %d: %v", ei, si, err)
			}
		}
	}
	return nil
}

// ParseWorkoutImport validates and decodes an untrusted workout JSON
// document: structural validation against the schema, identifier
// re-validation, and name normalization. All-or-nothing; the returned
// workout is safe to adopt.
func ParseWorkoutImport(data []byte) (*model.Workout, error) {
	if err := validateImportShape(data); err != nil {
		return nil, fmt.Errorf("Failed to import workout: %v", err)
	}
	var w model.Workout
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("Failed to import workout: %v", err)
	}
	if err := validateWorkoutIDs(&w); err != nil {
		return nil, fmt.Errorf("Invalid workout data: %v", err)
	}
	w.Name = normalizeName(w.Name)
	for i := range w.Exercises {
		w.Exercises[i].Name = normalizeName(w.Exercises[i].Name)
	}
	return &w, nil
}

func (c *Core) handleImport(ev Event) []Effect {
	m := &c.model
	switch ev.Kind {
	case EventImportWorkout:
		if ev.Import == nil {
			return nil
		}
		w, err := ParseWorkoutImport([]byte(ev.Import.JSONData))
		if err != nil {
			// A single bad field rejects the whole import and leaves the
			// model untouched.
			return c.fail(err.Error())
		}
		m.CurrentWorkout = w
		m.ShowingImportView = false
		m.ErrorMessage = ""
		return c.stashCurrent()

	case EventShowImportView:
		m.ShowingImportView = true
	case EventDismissImportView:
		m.ShowingImportView = false

	case EventLoadWorkoutTemplate:
		return c.fail("Template loading not yet implemented")
	}
	return nil
}
