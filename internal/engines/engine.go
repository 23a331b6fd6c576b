package engines

import (
	"fmt"
	"iter"

	"github.com/san-kum/sortviz/internal/trace"
)

// Engine produces the lazy trace of sorting arr in place.
type Engine func(arr []int) iter.Seq[trace.Step]

// emitter is the state threaded through one run, recursion included.
type emitter struct {
	alg   trace.Algorithm
	arr   []int
	size  int
	log   *trace.Log
	yield func(trace.Step) bool
	steps int
}

func sequence(alg trace.Algorithm, arr []int, sort func(e *emitter) bool) iter.Seq[trace.Step] {
	return func(yield func(trace.Step) bool) {
		// zero or one element is already sorted
		if len(arr) < 2 {
			return
		}
		e := &emitter{
			alg:   alg,
			arr:   arr,
			size:  len(arr),
			log:   trace.NewLog(),
			yield: yield,
		}
		sort(e)
	}
}

func (e *emitter) logf(format string, args ...any) {
	e.log.Append(fmt.Sprintf(format, args...))
}

// emit snapshots the working array and hands it to the consumer. It
// reports whether the consumer wants more steps.
func (e *emitter) emit(highlighted ...int) bool {
	e.steps++
	if len(e.arr) != e.size {
		panic(&trace.DefectError{
			Algorithm: e.alg,
			Step:      e.steps,
			Reason:    fmt.Sprintf("array length changed from %d to %d", e.size, len(e.arr)),
		})
	}
	for _, i := range highlighted {
		if i < 0 || i >= e.size {
			panic(&trace.DefectError{
				Algorithm: e.alg,
				Step:      e.steps,
				Reason:    fmt.Sprintf("highlighted index %d out of range [0,%d)", i, e.size),
			})
		}
	}
	return e.yield(trace.NewStep(e.arr, highlighted, e.log))
}

var byAlgorithm = map[trace.Algorithm]Engine{
	trace.Bubble:    Bubble,
	trace.Selection: Selection,
	trace.Insertion: Insertion,
	trace.Merge:     Merge,
	trace.Quick:     Quick,
}

// Lookup returns the engine for alg.
func Lookup(alg trace.Algorithm) (Engine, bool) {
	engine, ok := byAlgorithm[alg]
	return engine, ok
}

// Trace returns the lazy trace of sorting arr in place with alg.
func Trace(alg trace.Algorithm, arr []int) (iter.Seq[trace.Step], error) {
	engine, ok := Lookup(alg)
	if !ok {
		return nil, fmt.Errorf("%w: %v", trace.ErrUnknownAlgorithm, alg)
	}
	return engine(arr), nil
}
