package metrics

import (
	"testing"

	"github.com/san-kum/sortviz/internal/trace"
)

func step(arr []int, logLines ...string) trace.Step {
	return trace.Step{Array: arr, Log: logLines}
}

func TestStepCountAndLogLines(t *testing.T) {
	steps := NewStepCount()
	lines := NewLogLines()
	steps.Reset([]int{2, 1})
	lines.Reset([]int{2, 1})

	for _, s := range []trace.Step{
		step([]int{1, 2}, "a"),
		step([]int{1, 2}, "a", "b"),
	} {
		steps.Observe(s)
		lines.Observe(s)
	}

	if steps.Value() != 2 {
		t.Errorf("steps = %v, want 2", steps.Value())
	}
	if lines.Value() != 2 {
		t.Errorf("log_lines = %v, want 2", lines.Value())
	}

	steps.Reset(nil)
	if steps.Value() != 0 {
		t.Error("Reset did not clear step count")
	}
}

func TestWrites(t *testing.T) {
	w := NewWrites()
	w.Reset([]int{3, 1, 2})

	w.Observe(step([]int{1, 3, 2}))
	w.Observe(step([]int{1, 3, 2}))
	w.Observe(step([]int{1, 2, 3}))

	if w.Value() != 4 {
		t.Errorf("writes = %v, want 4", w.Value())
	}
}

func TestInversions(t *testing.T) {
	tests := []struct {
		arr  []int
		want int
	}{
		{nil, 0},
		{[]int{1, 2, 3}, 0},
		{[]int{3, 2, 1}, 3},
		{[]int{5, 3, 8, 1}, 4},
		{[]int{2, 2}, 0},
	}
	for _, tt := range tests {
		if got := Count(tt.arr); got != tt.want {
			t.Errorf("Count(%v) = %d, want %d", tt.arr, got, tt.want)
		}
	}

	v := NewInversions()
	v.Reset([]int{3, 2, 1})
	if v.Initial() != 3 || v.Value() != 3 {
		t.Errorf("after reset initial=%d value=%v", v.Initial(), v.Value())
	}
	v.Observe(step([]int{1, 2, 3}))
	if v.Value() != 0 {
		t.Errorf("inversions = %v, want 0", v.Value())
	}
}
