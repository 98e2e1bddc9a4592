// Package store persists the workout aggregate in SQLite.
//
// A workout maps to three tables: workouts, exercises, and exerciseSets,
// linked by cascading foreign keys. Saves replace the whole aggregate in a
// single transaction; loads reassemble it with exercises ordered by
// identifier and sets ordered by their dense set index.
//
// Completion flags are never persisted. Whether a set counts as done is a
// live-session question; everything loaded from the store comes back not
// completed.
package store
