package engines

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/san-kum/sortviz/internal/trace"
)

type wantStep struct {
	array       []int
	highlighted []int
	latest      string
	logLen      int
}

func collect(seq iter.Seq[trace.Step]) []trace.Step {
	var steps []trace.Step
	for s := range seq {
		steps = append(steps, s)
	}
	return steps
}

func checkSteps(t *testing.T, got []trace.Step, want []wantStep) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d steps, want %d", len(got), len(want))
	}
	for i, w := range want {
		g := got[i]
		if !slices.Equal(g.Array, w.array) {
			t.Errorf("step %d: array = %v, want %v", i, g.Array, w.array)
		}
		if !slices.Equal(g.Highlighted, w.highlighted) {
			t.Errorf("step %d: highlighted = %v, want %v", i, g.Highlighted, w.highlighted)
		}
		if g.Latest() != w.latest {
			t.Errorf("step %d: latest log = %q, want %q", i, g.Latest(), w.latest)
		}
		if len(g.Log) != w.logLen {
			t.Errorf("step %d: log length = %d, want %d", i, len(g.Log), w.logLen)
		}
	}
}

func TestBubble(t *testing.T) {
	arr := []int{3, 1, 2}
	steps := collect(Bubble(arr))

	checkSteps(t, steps, []wantStep{
		{[]int{1, 3, 2}, []int{0, 1}, "Swapped 3 and 1", 1},
		{[]int{1, 2, 3}, []int{1, 2}, "Swapped 3 and 2", 2},
	})
	if !slices.Equal(arr, []int{1, 2, 3}) {
		t.Errorf("working array = %v", arr)
	}
}

func TestBubble_SortedInputIsEmpty(t *testing.T) {
	if steps := collect(Bubble([]int{1, 2, 2, 5})); len(steps) != 0 {
		t.Errorf("expected no steps, got %d", len(steps))
	}
}

func TestSelection(t *testing.T) {
	steps := collect(Selection([]int{3, 1, 2}))

	checkSteps(t, steps, []wantStep{
		{[]int{1, 3, 2}, []int{0, 1}, "Swapped 1 with 3", 1},
		{[]int{1, 2, 3}, []int{1, 2}, "Swapped 2 with 3", 2},
		{[]int{1, 2, 3}, []int{2, 2}, "Swapped 3 with 3", 3},
	})
}

func TestSelection_SelfSwapsOnSortedInput(t *testing.T) {
	steps := collect(Selection([]int{1, 2, 3}))

	checkSteps(t, steps, []wantStep{
		{[]int{1, 2, 3}, []int{0, 0}, "Swapped 1 with 1", 1},
		{[]int{1, 2, 3}, []int{1, 1}, "Swapped 2 with 2", 2},
		{[]int{1, 2, 3}, []int{2, 2}, "Swapped 3 with 3", 3},
	})
}

func TestInsertion(t *testing.T) {
	steps := collect(Insertion([]int{3, 1, 2}))

	checkSteps(t, steps, []wantStep{
		{[]int{3, 3, 2}, []int{0, 1}, "Moved 3 after 1", 1},
		{[]int{1, 3, 2}, []int{0, 1}, "Moved 3 after 1", 1},
		{[]int{1, 3, 3}, []int{1, 2}, "Moved 3 after 2", 2},
		{[]int{1, 2, 3}, []int{1, 2}, "Moved 3 after 2", 2},
	})
}

func TestInsertion_PlacementStepWithoutShift(t *testing.T) {
	steps := collect(Insertion([]int{1, 2}))

	checkSteps(t, steps, []wantStep{
		{[]int{1, 2}, []int{1, 1}, "", 0},
	})
}

func TestMerge(t *testing.T) {
	steps := collect(Merge([]int{3, 1, 2}))

	checkSteps(t, steps, []wantStep{
		{[]int{3, 1, 2}, []int{1}, "Inserted 1 at position 1", 1},
		{[]int{3, 1, 2}, []int{2}, "Inserted 2 at position 2", 2},
		{[]int{1, 1, 2}, []int{0}, "Inserted 1 at position 0", 3},
		{[]int{1, 2, 2}, []int{1}, "Inserted 2 at position 1", 4},
		{[]int{1, 2, 3}, []int{2}, "Inserted 3 at position 2", 5},
	})
}

func TestMerge_TwoElements(t *testing.T) {
	steps := collect(Merge([]int{4, 2}))

	checkSteps(t, steps, []wantStep{
		{[]int{2, 2}, []int{0}, "Inserted 2 at position 0", 1},
		{[]int{2, 4}, []int{1}, "Inserted 4 at position 1", 2},
	})
	if want := []string{"Inserted 2 at position 0", "Inserted 4 at position 1"}; !slices.Equal(steps[1].Log, want) {
		t.Errorf("log = %v, want %v", steps[1].Log, want)
	}
}

func TestQuick(t *testing.T) {
	arr := []int{5, 3, 8, 1}
	steps := collect(Quick(arr))

	checkSteps(t, steps, []wantStep{
		{[]int{1, 3, 8, 5}, []int{0, 3}, "Placed pivot 1 at correct position", 1},
		{[]int{1, 3, 8, 5}, []int{1, 1}, "Swapped 3 and 3 (pivot 5)", 2},
		{[]int{1, 3, 5, 8}, []int{2, 3}, "Placed pivot 5 at correct position", 3},
	})
	if !slices.Equal(arr, []int{1, 3, 5, 8}) {
		t.Errorf("working array = %v, want [1 3 5 8]", arr)
	}
}

func TestQuick_SwapLogUsesValuesAfterSwap(t *testing.T) {
	steps := collect(Quick([]int{3, 1, 2}))

	checkSteps(t, steps, []wantStep{
		{[]int{1, 3, 2}, []int{0, 1}, "Swapped 1 and 3 (pivot 2)", 1},
		{[]int{1, 2, 3}, []int{1, 2}, "Placed pivot 2 at correct position", 2},
	})
}

func TestShortInputsProduceNoSteps(t *testing.T) {
	engines := map[string]Engine{
		"bubble":    Bubble,
		"selection": Selection,
		"insertion": Insertion,
		"merge":     Merge,
		"quick":     Quick,
	}
	for name, engine := range engines {
		for _, input := range [][]int{nil, {}, {7}} {
			arr := slices.Clone(input)
			if steps := collect(engine(arr)); len(steps) != 0 {
				t.Errorf("%s on %v: got %d steps, want 0", name, input, len(steps))
			}
			if !slices.Equal(arr, input) {
				t.Errorf("%s changed %v to %v", name, input, arr)
			}
		}
	}
}

func TestAbandonAfterOneStep(t *testing.T) {
	arr := []int{3, 2, 1}
	next, stop := iter.Pull(Bubble(arr))

	step, ok := next()
	if !ok {
		t.Fatal("expected a first step")
	}
	stop()

	if !slices.Equal(step.Array, []int{2, 3, 1}) {
		t.Errorf("first step array = %v", step.Array)
	}
	if !slices.Equal(arr, []int{2, 3, 1}) {
		t.Errorf("working array after abandon = %v, want [2 3 1]", arr)
	}
	if _, ok := next(); ok {
		t.Error("stopped sequence produced another step")
	}
}

func TestEmitPanicsOnBadIndex(t *testing.T) {
	defer func() {
		r := recover()
		defect, ok := r.(*trace.DefectError)
		if !ok {
			t.Fatalf("recovered %v, want *trace.DefectError", r)
		}
		if defect.Algorithm != trace.Merge || defect.Step != 1 {
			t.Errorf("defect = %+v", defect)
		}
	}()

	seq := sequence(trace.Merge, []int{2, 1}, func(e *emitter) bool {
		return e.emit(5)
	})
	for range seq {
	}
}

func TestLookup_CoversEveryAlgorithm(t *testing.T) {
	for _, alg := range trace.Algorithms() {
		if _, ok := Lookup(alg); !ok {
			t.Errorf("no engine for %v", alg)
		}
	}
	if _, ok := Lookup(trace.Algorithm(42)); ok {
		t.Error("engine found for an unknown algorithm")
	}
}

func TestTrace(t *testing.T) {
	arr := []int{2, 1}
	seq, err := Trace(trace.Bubble, arr)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	if steps := collect(seq); len(steps) != 1 {
		t.Errorf("got %d steps, want 1", len(steps))
	}

	if _, err := Trace(trace.Algorithm(42), arr); !errors.Is(err, trace.ErrUnknownAlgorithm) {
		t.Errorf("err = %v, want ErrUnknownAlgorithm", err)
	}
}
