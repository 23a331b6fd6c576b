package driver

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"github.com/google/uuid"

	"github.com/san-kum/sortviz/internal/engines"
	"github.com/san-kum/sortviz/internal/trace"
)

// Metric observes every step a run hands out.
type Metric interface {
	Name() string
	Observe(s trace.Step)
	Value() float64
	Reset(initial []int)
}

// Run is one engine working through one private copy of the input.
type Run struct {
	ID        uuid.UUID
	Algorithm trace.Algorithm

	input   []int
	working []int
	next    func() (trace.Step, bool)
	stop    func()
	steps   int
	last    trace.Step
	done    bool
	metrics []Metric
}

func newRun(alg trace.Algorithm, engine engines.Engine, values []int) *Run {
	working := slices.Clone(values)
	if working == nil {
		working = []int{}
	}
	next, stop := iter.Pull(engine(working))
	return &Run{
		ID:        uuid.New(),
		Algorithm: alg,
		input:     slices.Clone(working),
		working:   working,
		next:      next,
		stop:      stop,
	}
}

// AddMetric registers m and resets it against the run's input. Metrics
// only see steps handed out after they were added.
func (r *Run) AddMetric(m Metric) {
	m.Reset(r.input)
	r.metrics = append(r.metrics, m)
}

// Next resumes the engine until it emits its next step. It reports false
// once the trace is exhausted or the run was stopped.
func (r *Run) Next() (trace.Step, bool) {
	if r.done {
		return trace.Step{}, false
	}
	s, ok := r.next()
	if !ok {
		r.finish()
		return trace.Step{}, false
	}
	r.steps++
	r.last = s
	for _, m := range r.metrics {
		m.Observe(s)
	}
	return s, true
}

// Stop abandons the run. The working array keeps the state of the last
// step handed out.
func (r *Run) Stop() { r.finish() }

func (r *Run) finish() {
	r.done = true
	r.stop()
}

func (r *Run) Done() bool { return r.done }

// Steps is the number of steps handed out so far.
func (r *Run) Steps() int { return r.steps }

// Last returns the most recent step, if any.
func (r *Run) Last() (trace.Step, bool) {
	return r.last, r.steps > 0
}

func (r *Run) Input() []int { return slices.Clone(r.input) }

// Array returns a copy of the working array as it is right now.
func (r *Run) Array() []int { return slices.Clone(r.working) }

func (r *Run) Metrics() map[string]float64 {
	out := make(map[string]float64, len(r.metrics))
	for _, m := range r.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Walk pulls steps until the trace ends, fn returns false or ctx is done.
// The run is finished when Walk returns. An engine defect is returned as
// a *trace.DefectError; a panic in fn is not recovered.
func (r *Run) Walk(ctx context.Context, fn func(i int, s trace.Step) bool) error {
	defer r.finish()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s, ok, err := r.pull()
		if err != nil {
			return err
		}
		if !ok || !fn(r.steps-1, s) {
			return nil
		}
	}
}

// pull is Next with engine panics turned into a *trace.DefectError.
func (r *Run) pull() (s trace.Step, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.finish()
			err = asDefect(r.Algorithm, r.steps+1, rec)
		}
	}()
	s, ok = r.Next()
	return s, ok, nil
}

type Result struct {
	ID        uuid.UUID
	Algorithm trace.Algorithm
	Input     []int
	Final     []int
	Steps     int
	Log       []string
	// LogSizes holds the log length after each step.
	LogSizes []int
	Metrics  map[string]float64
}

// Drain consumes the rest of the run and summarises it.
func (r *Run) Drain(ctx context.Context) (*Result, error) {
	sizes := make([]int, 0, 64)
	err := r.Walk(ctx, func(_ int, s trace.Step) bool {
		sizes = append(sizes, len(s.Log))
		return true
	})
	if err != nil {
		return nil, err
	}

	result := &Result{
		ID:        r.ID,
		Algorithm: r.Algorithm,
		Input:     r.Input(),
		Final:     r.Array(),
		Steps:     r.steps,
		LogSizes:  sizes,
		Metrics:   r.Metrics(),
	}
	if last, ok := r.Last(); ok {
		result.Log = last.Log
	}
	return result, nil
}

func asDefect(alg trace.Algorithm, step int, rec any) *trace.DefectError {
	switch v := rec.(type) {
	case *trace.DefectError:
		return v
	case error:
		return &trace.DefectError{Algorithm: alg, Step: step, Reason: "engine panicked", Wrapped: v}
	default:
		return &trace.DefectError{Algorithm: alg, Step: step, Reason: fmt.Sprintf("engine panicked: %v", v)}
	}
}
