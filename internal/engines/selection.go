package engines

import (
	"iter"

	"github.com/san-kum/sortviz/internal/trace"
)

func Selection(arr []int) iter.Seq[trace.Step] {
	return sequence(trace.Selection, arr, selection)
}

func selection(e *emitter) bool {
	arr, n := e.arr, len(e.arr)
	for i := 0; i < n; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if arr[j] < arr[minIdx] {
				minIdx = j
			}
		}
		// swap even when minIdx == i; the log reads values after the swap
		arr[i], arr[minIdx] = arr[minIdx], arr[i]
		e.logf("Swapped %d with %d", arr[i], arr[minIdx])
		if !e.emit(i, minIdx) {
			return false
		}
	}
	return true
}
