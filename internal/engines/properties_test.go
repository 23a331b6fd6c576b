package engines_test

import (
	"math/rand"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/engines"
	"github.com/san-kum/sortviz/internal/trace"
)

var all = map[string]engines.Engine{
	"Bubble":    engines.Bubble,
	"Selection": engines.Selection,
	"Insertion": engines.Insertion,
	"Merge":     engines.Merge,
	"Quick":     engines.Quick,
}

// smallInputs enumerates every array of length 0..2 over {1, 2, 3}.
func smallInputs() [][]int {
	inputs := [][]int{{}}
	for a := 1; a <= 3; a++ {
		inputs = append(inputs, []int{a})
		for b := 1; b <= 3; b++ {
			inputs = append(inputs, []int{a, b})
		}
	}
	return inputs
}

func randomInputs(seed int64, count int) [][]int {
	rng := rand.New(rand.NewSource(seed))
	inputs := make([][]int, count)
	for i := range inputs {
		arr := make([]int, rng.Intn(30))
		for j := range arr {
			arr[j] = 10 + rng.Intn(91)
		}
		inputs[i] = arr
	}
	return inputs
}

func drain(engine engines.Engine, arr []int) []trace.Step {
	var steps []trace.Step
	for s := range engine(arr) {
		steps = append(steps, s)
	}
	return steps
}

var _ = Describe("sorting engines", func() {
	for name, engine := range all {
		Context(name, func() {
			It("sorts every array of length 0 to 2", func() {
				for _, input := range smallInputs() {
					arr := slices.Clone(input)
					drain(engine, arr)
					Expect(slices.IsSorted(arr)).To(BeTrue(), "input %v ended as %v", input, arr)
				}
			})

			It("sorts random arrays and keeps every step well formed", func() {
				for _, input := range randomInputs(42, 200) {
					arr := slices.Clone(input)
					steps := drain(engine, arr)

					Expect(slices.IsSorted(arr)).To(BeTrue(), "input %v ended as %v", input, arr)

					want := slices.Clone(input)
					slices.Sort(want)
					Expect(arr).To(Equal(want))

					prevLog := 0
					for _, s := range steps {
						Expect(s.Array).To(HaveLen(len(input)))
						Expect(len(s.Highlighted)).To(BeNumerically("<=", 2))
						for _, h := range s.Highlighted {
							Expect(h).To(BeNumerically(">=", 0))
							Expect(h).To(BeNumerically("<", len(input)))
						}
						Expect(len(s.Log)).To(BeNumerically(">=", prevLog))
						prevLog = len(s.Log)
					}
					if len(steps) > 0 {
						Expect(steps[len(steps)-1].Array).To(Equal(arr))
					}
				}
			})
		})
	}

	It("logs one line per step for every engine except insertion", func() {
		for _, name := range []string{"Bubble", "Selection", "Merge", "Quick"} {
			for _, input := range randomInputs(7, 50) {
				steps := drain(all[name], slices.Clone(input))
				for i, s := range steps {
					Expect(s.Log).To(HaveLen(i+1), "%s on %v", name, input)
				}
			}
		}
	})

	It("logs only the shifts for insertion", func() {
		for _, input := range randomInputs(9, 50) {
			steps := drain(engines.Insertion, slices.Clone(input))
			if len(input) < 2 {
				Expect(steps).To(BeEmpty())
				continue
			}
			placements := len(input) - 1
			Expect(len(steps[len(steps)-1].Log)).To(Equal(len(steps) - placements))
		}
	})

	It("emits one selection step per position", func() {
		for _, input := range randomInputs(11, 50) {
			steps := drain(engines.Selection, slices.Clone(input))
			if len(input) < 2 {
				Expect(steps).To(BeEmpty())
			} else {
				Expect(steps).To(HaveLen(len(input)))
			}
		}
	})

	It("writes one merge step per element per level", func() {
		steps := drain(engines.Merge, []int{8, 7, 6, 5, 4, 3, 2, 1})
		Expect(steps).To(HaveLen(24))
		for _, s := range steps {
			Expect(s.Latest()).To(MatchRegexp(`^Inserted \d+ at position \d+$`))
		}
	})
})
