package automation

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/trace"
)

// Scenario defines a scripted sequence of sorting runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run in a scenario. Values wins over the
// generated input when both are given.
type ScenarioStep struct {
	Algorithm string `yaml:"algorithm"`
	Values    []int  `yaml:"values"`
	Shape     string `yaml:"shape"`
	Size      int    `yaml:"size"`
	Min       int    `yaml:"min"`
	Max       int    `yaml:"max"`
	Seed      int64  `yaml:"seed"`
	// ExpectSteps, when positive, is checked against the trace length.
	ExpectSteps int `yaml:"expect_steps"`
}

func (s ScenarioStep) input() []int {
	if len(s.Values) > 0 {
		return slices.Clone(s.Values)
	}
	shape, lo, hi := s.Shape, s.Min, s.Max
	if shape == "" {
		shape = config.DefaultShape
	}
	if lo == 0 && hi == 0 {
		lo, hi = config.DefaultMin, config.DefaultMax
	}
	return config.Generate(shape, s.Size, lo, hi, s.Seed)
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// RunScenario executes all steps in a scenario
func RunScenario(ctx context.Context, scenario *Scenario, registry *driver.Registry) ([]driver.Result, error) {
	results := make([]driver.Result, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		run, err := registry.Start(step.Algorithm, step.input())
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		for _, m := range registry.DefaultMetrics() {
			run.AddMetric(m)
		}

		result, err := run.Drain(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}
		if step.ExpectSteps > 0 && result.Steps != step.ExpectSteps {
			return results, fmt.Errorf("step %d: %s sort produced %d steps, expected %d",
				i+1, result.Algorithm, result.Steps, step.ExpectSteps)
		}

		results = append(results, *result)
	}

	return results, nil
}

// TrialConfig defines a batch of random-input runs per algorithm
type TrialConfig struct {
	Algorithms []trace.Algorithm
	NumTrials  int
	MaxSize    int
	Min, Max   int
	Seed       int64
}

func (c *TrialConfig) Validate() error {
	if c.NumTrials < 0 {
		return fmt.Errorf("trials must not be negative, got %d", c.NumTrials)
	}
	if c.MaxSize < 0 || c.MaxSize == math.MaxInt {
		return fmt.Errorf("max size out of range, got %d", c.MaxSize)
	}
	if c.Min > c.Max || !config.RangeFits(c.Min, c.Max) {
		return fmt.Errorf("invalid value range [%d, %d]", c.Min, c.Max)
	}
	return nil
}

// TrialResult holds the outcome of one algorithm on one random input
type TrialResult struct {
	TrialID   int
	Algorithm trace.Algorithm
	Input     []int
	Final     []int
	Steps     int
	Sorted    bool
	Err       error
}

// RunTrials runs every algorithm on the same random inputs and records
// whether each drained trace left the array sorted.
func RunTrials(ctx context.Context, cfg *TrialConfig, registry *driver.Registry) ([]TrialResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	algs := cfg.Algorithms
	if len(algs) == 0 {
		algs = registry.List()
	}
	results := make([]TrialResult, 0, cfg.NumTrials*len(algs))

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	for trial := 0; trial < cfg.NumTrials; trial++ {
		size := rng.Intn(cfg.MaxSize + 1)
		input := config.Generate(config.DefaultShape, size, cfg.Min, cfg.Max, rng.Int63()+1)

		for _, alg := range algs {
			run, err := registry.StartAlgorithm(alg, input)
			if err != nil {
				return nil, err
			}
			result, err := run.Drain(ctx)
			if ctx.Err() != nil {
				return results, ctx.Err()
			}

			tr := TrialResult{TrialID: trial, Algorithm: alg, Input: slices.Clone(input), Err: err}
			if err == nil {
				tr.Final = result.Final
				tr.Steps = result.Steps
				tr.Sorted = slices.IsSorted(result.Final)
			}
			results = append(results, tr)
		}
	}

	return results, nil
}

// TrialStats counts sorted and failed outcomes per algorithm
func TrialStats(results []TrialResult) (sorted, failed map[trace.Algorithm]int) {
	sorted = make(map[trace.Algorithm]int)
	failed = make(map[trace.Algorithm]int)
	for _, r := range results {
		if r.Sorted {
			sorted[r.Algorithm]++
		} else {
			failed[r.Algorithm]++
		}
	}
	return
}
