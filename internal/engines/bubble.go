package engines

import (
	"iter"

	"github.com/san-kum/sortviz/internal/trace"
)

func Bubble(arr []int) iter.Seq[trace.Step] {
	return sequence(trace.Bubble, arr, bubble)
}

func bubble(e *emitter) bool {
	arr, n := e.arr, len(e.arr)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if arr[j] <= arr[j+1] {
				continue
			}
			e.logf("Swapped %d and %d", arr[j], arr[j+1])
			arr[j], arr[j+1] = arr[j+1], arr[j]
			if !e.emit(j, j+1) {
				return false
			}
		}
	}
	return true
}
