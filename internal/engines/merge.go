package engines

import (
	"iter"
	"slices"

	"github.com/san-kum/sortviz/internal/trace"
)

func Merge(arr []int) iter.Seq[trace.Step] {
	return sequence(trace.Merge, arr, func(e *emitter) bool {
		return mergeSort(e, 0, len(e.arr))
	})
}

// mergeSort sorts the half-open range [l, r).
func mergeSort(e *emitter, l, r int) bool {
	if r-l <= 1 {
		return true
	}
	m := (l + r) / 2
	if !mergeSort(e, l, m) || !mergeSort(e, m, r) {
		return false
	}

	arr := e.arr
	left, right := slices.Clone(arr[l:m]), slices.Clone(arr[m:r])
	i, j := 0, 0
	for k := l; k < r; k++ {
		if j >= len(right) || (i < len(left) && left[i] <= right[j]) {
			arr[k] = left[i]
			i++
		} else {
			arr[k] = right[j]
			j++
		}
		e.logf("Inserted %d at position %d", arr[k], k)
		if !e.emit(k) {
			return false
		}
	}
	return true
}
