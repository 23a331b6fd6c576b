package metrics

import "github.com/san-kum/sortviz/internal/trace"

// Inversions tracks how many out-of-order pairs remain in the latest
// snapshot. It starts at the input's count and reaches zero once sorted.
type Inversions struct {
	name    string
	initial int
	current int
}

func NewInversions() *Inversions {
	return &Inversions{name: "inversions"}
}

func (v *Inversions) Name() string { return v.name }

func (v *Inversions) Observe(s trace.Step) { v.current = Count(s.Array) }

func (v *Inversions) Value() float64 { return float64(v.current) }

// Initial is the inversion count of the input the metric was reset with.
func (v *Inversions) Initial() int { return v.initial }

func (v *Inversions) Reset(initial []int) {
	v.initial = Count(initial)
	v.current = v.initial
}

// Count returns the number of pairs i < j with arr[i] > arr[j].
func Count(arr []int) int {
	n := 0
	for i := range arr {
		for j := i + 1; j < len(arr); j++ {
			if arr[i] > arr[j] {
				n++
			}
		}
	}
	return n
}
