package automation

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/trace"
)

const scenarioYAML = `name: smoke
description: fixed inputs with known trace lengths
steps:
  - algorithm: quick
    values: [5, 3, 8, 1]
    expect_steps: 3
  - algorithm: Selection Sort
    values: [1, 2, 3]
    expect_steps: 3
  - algorithm: merge
    shape: reversed
    size: 8
    seed: 4
    expect_steps: 24
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}

func TestRunScenario(t *testing.T) {
	sc, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if sc.Name != "smoke" || len(sc.Steps) != 3 {
		t.Fatalf("unexpected scenario: %+v", sc)
	}

	results, err := RunScenario(context.Background(), sc, driver.NewRegistry())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Algorithm != trace.Quick || results[0].Metrics["inversions"] != 0 {
		t.Errorf("first result = %+v", results[0])
	}
}

func TestRunScenario_StepCountMismatch(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{{Algorithm: "bubble", Values: []int{2, 1}, ExpectSteps: 5}}}
	if _, err := RunScenario(context.Background(), sc, driver.NewRegistry()); err == nil {
		t.Error("expected mismatch error")
	}
}

func TestRunScenario_UnknownAlgorithm(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{{Algorithm: "heap", Values: []int{2, 1}}}}
	results, err := RunScenario(context.Background(), sc, driver.NewRegistry())
	if err == nil || len(results) != 0 {
		t.Errorf("err=%v results=%d", err, len(results))
	}
}

func TestRunTrials(t *testing.T) {
	cfg := &TrialConfig{NumTrials: 25, MaxSize: 30, Min: 10, Max: 100, Seed: 3}
	results, err := RunTrials(context.Background(), cfg, driver.NewRegistry())
	if err != nil {
		t.Fatalf("trials failed: %v", err)
	}
	if len(results) != 25*len(trace.Algorithms()) {
		t.Fatalf("got %d results", len(results))
	}

	sorted, failed := TrialStats(results)
	for _, alg := range trace.Algorithms() {
		if failed[alg] != 0 || sorted[alg] != 25 {
			t.Errorf("%v: sorted=%d failed=%d", alg, sorted[alg], failed[alg])
		}
	}
}

func TestRunTrials_RejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  TrialConfig
	}{
		{"negative size", TrialConfig{NumTrials: 1, MaxSize: -1, Min: 10, Max: 100}},
		{"negative trials", TrialConfig{NumTrials: -1, MaxSize: 5, Min: 10, Max: 100}},
		{"min above max", TrialConfig{NumTrials: 1, MaxSize: 5, Min: 100, Max: 10}},
		{"range wider than int", TrialConfig{NumTrials: 1, MaxSize: 5, Min: math.MinInt, Max: math.MaxInt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RunTrials(context.Background(), &tt.cfg, driver.NewRegistry()); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
