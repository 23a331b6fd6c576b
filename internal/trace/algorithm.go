package trace

import (
	"fmt"
	"strings"
)

type Algorithm int

const (
	Bubble Algorithm = iota
	Selection
	Insertion
	Merge
	Quick
)

var algorithmNames = map[Algorithm]string{
	Bubble:    "Bubble",
	Selection: "Selection",
	Insertion: "Insertion",
	Merge:     "Merge",
	Quick:     "Quick",
}

var algorithmInfo = map[Algorithm]string{
	Bubble:    "adjacent swaps, one step per swap",
	Selection: "minimum into place, one step per position",
	Insertion: "shift larger values right, then place the key",
	Merge:     "divide, then write merged runs back",
	Quick:     "lomuto partition around the last element",
}

// Algorithms lists every engine in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, Selection, Insertion, Merge, Quick}
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Description is a one-line summary used by menus and listings.
func (a Algorithm) Description() string { return algorithmInfo[a] }

func (a Algorithm) Valid() bool {
	_, ok := algorithmNames[a]
	return ok
}

// ParseAlgorithm resolves a selector such as "quick", "Quick" or
// "Quick Sort" to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSpace(strings.TrimSuffix(key, "sort"))
	for a, n := range algorithmNames {
		if strings.ToLower(n) == key {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(strings.ToLower(a.String())), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
