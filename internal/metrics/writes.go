package metrics

import (
	"slices"

	"github.com/san-kum/sortviz/internal/trace"
)

// Writes counts array positions whose value changed between consecutive
// snapshots, starting from the run's input.
type Writes struct {
	name   string
	prev   []int
	writes int
}

func NewWrites() *Writes {
	return &Writes{name: "writes"}
}

func (w *Writes) Name() string { return w.name }

func (w *Writes) Observe(s trace.Step) {
	for i, v := range s.Array {
		if i < len(w.prev) && w.prev[i] != v {
			w.writes++
		}
	}
	w.prev = slices.Clone(s.Array)
}

func (w *Writes) Value() float64 { return float64(w.writes) }

func (w *Writes) Reset(initial []int) {
	w.prev = slices.Clone(initial)
	w.writes = 0
}
