package harness

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/repstack/repcore/internal/app"
)

// StepResult records what one step produced.
type StepResult struct {
	Kind    string   `json:"kind"`
	Effects []string `json:"effects"`
	Error   string   `json:"error,omitempty"`
}

// Result is the outcome of a scenario run.
type Result struct {
	Scenario  *Scenario
	Steps     []StepResult
	FinalView app.ViewModel
}

// Run executes every step of a scenario against a fresh core and checks
// the per-step expectations. The first mismatch aborts the run.
func Run(s *Scenario) (*Result, error) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	core := app.New(log)
	core.SetClock(func() time.Time { return s.At() })

	result := &Result{Scenario: s}
	for i, step := range s.Steps {
		raw, err := json.Marshal(step.Event)
		if err != nil {
			return nil, fmt.Errorf("step %d: encode event: %w", i, err)
		}
		ev, err := app.DecodeEvent(raw)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		effects := core.Update(ev)
		kinds := effectKinds(effects)

		expected := step.Effects
		if len(expected) == 0 {
			expected = []string{string(app.EffectRender)}
		}
		if !slices.Equal(kinds, expected) {
			return nil, fmt.Errorf("step %d (%s): expected effects %v, got %v",
				i, ev.Kind, expected, kinds)
		}

		vm := core.View()
		if vm.ErrorMessage != step.Error {
			return nil, fmt.Errorf("step %d (%s): expected error %q, got %q",
				i, ev.Kind, step.Error, vm.ErrorMessage)
		}

		result.Steps = append(result.Steps, StepResult{
			Kind:    string(ev.Kind),
			Effects: kinds,
			Error:   vm.ErrorMessage,
		})
	}

	result.FinalView = core.View()
	return result, nil
}

func effectKinds(effects []app.Effect) []string {
	kinds := make([]string, len(effects))
	for i, e := range effects {
		kinds[i] = string(e.Kind)
	}
	return kinds
}
