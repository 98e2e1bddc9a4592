package harness

import (
	"encoding/json"
	"fmt"
	"regexp"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/repstack/repcore/internal/app"
)

// Snapshot is the golden representation of a scenario run.
type Snapshot struct {
	ScenarioName string        `json:"scenario_name"`
	Steps        []StepResult  `json:"steps"`
	FinalView    app.ViewModel `json:"final_view"`
}

var uuidPattern = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

// normalizeIdentifiers rewrites generated UUIDs to sequential placeholders
// in order of first appearance, so snapshots are stable across runs.
func normalizeIdentifiers(data []byte) []byte {
	seen := map[string]string{}
	return uuidPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		key := string(match)
		if repl, ok := seen[key]; ok {
			return []byte(repl)
		}
		repl := fmt.Sprintf("id-%d", len(seen)+1)
		seen[key] = repl
		return []byte(repl)
	})
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/<name>.golden. Regenerate with -update.
func RunWithGolden(t *testing.T, s *Scenario) {
	t.Helper()

	result, err := Run(s)
	require.NoError(t, err)

	snapshot := Snapshot{
		ScenarioName: s.Name,
		Steps:        result.Steps,
		FinalView:    result.FinalView,
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	require.NoError(t, err)
	data = append(normalizeIdentifiers(data), '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, s.Name, data)
}
