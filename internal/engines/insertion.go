package engines

import (
	"iter"

	"github.com/san-kum/sortviz/internal/trace"
)

func Insertion(arr []int) iter.Seq[trace.Step] {
	return sequence(trace.Insertion, arr, insertion)
}

func insertion(e *emitter) bool {
	arr := e.arr
	for i := 1; i < len(arr); i++ {
		key := arr[i]
		j := i - 1
		for j >= 0 && key < arr[j] {
			e.logf("Moved %d after %d", arr[j], key)
			arr[j+1] = arr[j]
			j--
			if !e.emit(j+1, i) {
				return false
			}
		}
		// placement step fires even when the loop above never ran
		arr[j+1] = key
		if !e.emit(j+1, i) {
			return false
		}
	}
	return true
}
