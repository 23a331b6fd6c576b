package driver

import (
	"fmt"
	"slices"

	"github.com/san-kum/sortviz/internal/engines"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/trace"
)

type Registry struct {
	engines map[trace.Algorithm]engines.Engine
}

func NewRegistry() *Registry {
	r := &Registry{
		engines: make(map[trace.Algorithm]engines.Engine),
	}

	for _, alg := range trace.Algorithms() {
		if engine, ok := engines.Lookup(alg); ok {
			r.engines[alg] = engine
		}
	}

	return r
}

var defaultRegistry = NewRegistry()

// Start runs the named algorithm on a copy of values using the default
// registry.
func Start(name string, values []int) (*Run, error) {
	return defaultRegistry.Start(name, values)
}

func (r *Registry) GetEngine(alg trace.Algorithm) (engines.Engine, error) {
	fn, ok := r.engines[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %v", trace.ErrUnknownAlgorithm, alg)
	}
	return fn, nil
}

func (r *Registry) Start(name string, values []int) (*Run, error) {
	alg, err := trace.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return r.StartAlgorithm(alg, values)
}

func (r *Registry) StartAlgorithm(alg trace.Algorithm, values []int) (*Run, error) {
	engine, err := r.GetEngine(alg)
	if err != nil {
		return nil, err
	}
	return newRun(alg, engine, values), nil
}

func (r *Registry) List() []trace.Algorithm {
	algs := make([]trace.Algorithm, 0, len(r.engines))
	for alg := range r.engines {
		algs = append(algs, alg)
	}
	slices.Sort(algs)
	return algs
}

func (r *Registry) DefaultMetrics() []Metric {
	return []Metric{
		metrics.NewStepCount(),
		metrics.NewLogLines(),
		metrics.NewWrites(),
		metrics.NewInversions(),
	}
}
