package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Scenario is one scripted run of the event core.
type Scenario struct {
	// Name uniquely identifies the scenario; the golden snapshot is
	// stored under testdata/golden/<name>.golden.
	Name string `yaml:"name"`

	// Description explains what the scenario exercises.
	Description string `yaml:"description"`

	// Clock fixes the core's time source, RFC 3339. Required: every
	// scenario must be deterministic.
	Clock string `yaml:"clock"`

	// Steps are applied in order.
	Steps []Step `yaml:"steps"`

	// at is the parsed Clock.
	at time.Time
}

// At returns the fixed time the scenario runs under.
func (s *Scenario) At() time.Time { return s.at }

// Step is one event with its expectations.
type Step struct {
	// Event is the event document, same shape as the wire envelope.
	Event map[string]any `yaml:"event"`

	// Effects lists the expected effect kinds in order. Empty means
	// only the trailing render is required.
	Effects []string `yaml:"effects,omitempty"`

	// Error is the user-visible message expected after this step.
	// Empty means the step must leave no error behind.
	Error string `yaml:"error,omitempty"`
}

// LoadScenario reads and validates a single scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

// LoadScenarios reads every *.yaml scenario under dir, sorted by name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Clock == "" {
		return fmt.Errorf("clock is required")
	}
	at, err := time.Parse(time.RFC3339, s.Clock)
	if err != nil {
		return fmt.Errorf("invalid clock: %w", err)
	}
	s.at = at
	if len(s.Steps) == 0 {
		return fmt.Errorf("at least one step is required")
	}
	for i, step := range s.Steps {
		if len(step.Event) == 0 {
			return fmt.Errorf("step %d: event is required", i)
		}
		if _, ok := step.Event["kind"]; !ok {
			return fmt.Errorf("step %d: event kind is required", i)
		}
	}
	return nil
}
