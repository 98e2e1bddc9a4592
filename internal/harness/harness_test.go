package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			RunWithGolden(t, s)
		})
	}
}

func TestRun_EffectMismatch(t *testing.T) {
	s := &Scenario{
		Name:  "mismatch",
		Clock: "2025-11-26T15:45:00Z",
		Steps: []Step{
			{
				Event:   map[string]any{"kind": "start_workout"},
				Effects: []string{"database", "render"},
			},
		},
	}
	require.NoError(t, s.validate())

	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected effects")
}

func TestRun_UnexpectedError(t *testing.T) {
	s := &Scenario{
		Name:  "unexpected_error",
		Clock: "2025-11-26T15:45:00Z",
		Steps: []Step{
			{Event: map[string]any{
				"kind": "calculate_plates",
				"plates": map[string]any{
					"target_weight": -1,
					"bar_weight":    45,
				},
			}},
		},
	}
	require.NoError(t, s.validate())

	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `expected error ""`)
}

func TestRun_ExpectedErrorMatches(t *testing.T) {
	s := &Scenario{
		Name:  "expected_error",
		Clock: "2025-11-26T15:45:00Z",
		Steps: []Step{
			{
				Event: map[string]any{
					"kind": "calculate_plates",
					"plates": map[string]any{
						"target_weight": -1,
						"bar_weight":    45,
					},
				},
				Error: "Target weight must be greater than 0",
			},
		},
	}
	require.NoError(t, s.validate())

	result, err := Run(s)
	require.NoError(t, err)
	require.Len(t, result.Steps, 1)
	assert.Equal(t, "Target weight must be greater than 0", result.Steps[0].Error)
	assert.True(t, result.FinalView.ShowingError)
}

func TestRun_BadEventKind(t *testing.T) {
	s := &Scenario{
		Name:  "bad_kind",
		Clock: "2025-11-26T15:45:00Z",
		Steps: []Step{
			// Unknown kinds are tolerated by the core: render only.
			{Event: map[string]any{"kind": "warp_speed"}},
		},
	}
	require.NoError(t, s.validate())

	result, err := Run(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"render"}, result.Steps[0].Effects)
}

func TestNormalizeIdentifiers(t *testing.T) {
	in := []byte(`{"a":"6ba7b810-9dad-41d1-80b4-00c04fd430c8","b":"6ba7b811-9dad-41d1-80b4-00c04fd430c8","c":"6ba7b810-9dad-41d1-80b4-00c04fd430c8"}`)
	out := normalizeIdentifiers(in)
	assert.Equal(t, `{"a":"id-1","b":"id-2","c":"id-1"}`, string(out))
}
