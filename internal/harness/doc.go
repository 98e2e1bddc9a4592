// Package harness runs YAML-defined scenarios against the event core.
//
// A scenario is a sequence of events with expected effect kinds and error
// messages, followed by a golden snapshot of the final view. Scenarios
// live in testdata/scenarios and their snapshots in testdata/golden.
//
// # Scenario Format
//
//	name: start_and_finish
//	description: "A session started, ticked, and finished reaches history"
//	clock: "2025-11-26T15:45:00Z"
//	steps:
//	  - event: { kind: start_workout }
//	    effects: [timer, storage, render]
//	  - event: { kind: timer_tick }
//	  - event: { kind: finish_workout }
//	    effects: [database, storage, timer, render]
//	  - event: { kind: move_exercise, move: { from_index: 5, to_index: 0 } }
//	    error: "Cannot move exercise: ..."
//
// Steps without an effects list only require the trailing render. The
// error field asserts the user-visible message after the step; steps
// without it must leave no error behind.
//
// # Deterministic Snapshots
//
// The core runs with a clock fixed to the scenario's clock field, and
// generated identifiers are rewritten to sequential placeholders before
// golden comparison, so snapshots are stable across runs. Regenerate with:
//
//	go test ./internal/harness -update
package harness
