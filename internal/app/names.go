package app

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/repstack/repcore/internal/model"
)

// normalizeName canonicalizes user-entered names to NFC so that visually
// identical strings compare and store identically regardless of the input
// method that produced them.
func normalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// newWorkout builds an empty workout stamped with the core's clock, so
// tests get deterministic start timestamps.
func newWorkout(now func() time.Time) *model.Workout {
	w := model.NewWorkout()
	w.StartTimestamp = now().UTC()
	return w
}
