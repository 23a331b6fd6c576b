package engines

import (
	"iter"

	"github.com/san-kum/sortviz/internal/trace"
)

func Quick(arr []int) iter.Seq[trace.Step] {
	return sequence(trace.Quick, arr, func(e *emitter) bool {
		return quickSort(e, 0, len(e.arr)-1)
	})
}

// quickSort sorts the inclusive range [low, high]. Only the low side of
// each pivot gets its own call; the loop carries on with the high side.
func quickSort(e *emitter, low, high int) bool {
	for low < high {
		p, ok := partition(e, low, high)
		if !ok {
			return false
		}
		if !quickSort(e, low, p-1) {
			return false
		}
		low = p + 1
	}
	return true
}

// partition is the Lomuto scheme with arr[high] as pivot. It returns the
// pivot's final index.
func partition(e *emitter, low, high int) (int, bool) {
	arr := e.arr
	pivot := arr[high]
	i := low - 1
	for j := low; j < high; j++ {
		if arr[j] > pivot {
			continue
		}
		i++
		arr[i], arr[j] = arr[j], arr[i]
		e.logf("Swapped %d and %d (pivot %d)", arr[i], arr[j], pivot)
		if !e.emit(i, j) {
			return 0, false
		}
	}
	arr[i+1], arr[high] = arr[high], arr[i+1]
	e.logf("Placed pivot %d at correct position", arr[i+1])
	return i + 1, e.emit(i+1, high)
}
