package config

import (
	"math"
	"math/rand"
	"slices"
	"time"
)

// Speeds maps a speed preset to the delay between steps.
var Speeds = map[string]time.Duration{
	"slow":   3 * time.Second,
	"medium": 2 * time.Second,
	"fast":   1 * time.Second,
}

// Shapes builds input arrays of a given size with values in [min, max].
var Shapes = map[string]func(rng *rand.Rand, size, min, max int) []int{
	"random": randomValues,
	"sorted": func(rng *rand.Rand, size, min, max int) []int {
		arr := randomValues(rng, size, min, max)
		slices.Sort(arr)
		return arr
	},
	"reversed": func(rng *rand.Rand, size, min, max int) []int {
		arr := randomValues(rng, size, min, max)
		slices.Sort(arr)
		slices.Reverse(arr)
		return arr
	},
	"nearly-sorted": func(rng *rand.Rand, size, min, max int) []int {
		arr := randomValues(rng, size, min, max)
		slices.Sort(arr)
		for i := 0; i < size/5+1 && size > 1; i++ {
			a, b := rng.Intn(size), rng.Intn(size)
			arr[a], arr[b] = arr[b], arr[a]
		}
		return arr
	},
	"few-unique": func(rng *rand.Rand, size, min, max int) []int {
		pool := randomValues(rng, 3, min, max)
		arr := make([]int, size)
		for i := range arr {
			arr[i] = pool[rng.Intn(len(pool))]
		}
		return arr
	},
}

func randomValues(rng *rand.Rand, size, min, max int) []int {
	arr := make([]int, size)
	for i := range arr {
		arr[i] = min + rng.Intn(max-min+1)
	}
	return arr
}

// RangeFits reports whether every value in [min, max] can be drawn, that
// is whether max-min+1 is a positive int.
func RangeFits(min, max int) bool {
	span := max - min
	return span >= 0 && span < math.MaxInt
}

// Generate builds an input of the named shape. A zero seed uses the clock.
func Generate(shape string, size, min, max int, seed int64) []int {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if size < 0 {
		size = 0
	}
	if min > max {
		min, max = max, min
	}
	if !RangeFits(min, max) {
		max = min + math.MaxInt - 1
	}
	build, ok := Shapes[shape]
	if !ok {
		build = randomValues
	}
	return build(rand.New(rand.NewSource(seed)), size, min, max)
}

func ListSpeeds() []string {
	names := make([]string, 0, len(Speeds))
	for name := range Speeds {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		return int(Speeds[b] - Speeds[a])
	})
	return names
}

func ListShapes() []string {
	names := make([]string, 0, len(Shapes))
	for name := range Shapes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ClampSize keeps an array size inside the range the viewer can draw.
func ClampSize(n int) int {
	return max(MinSize, min(MaxSize, n))
}
