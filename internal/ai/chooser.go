package ai

import (
	"math/rand"
	"sort"
)

// Chooser defines an interface for selecting a single card value from a list of options.
// This allows us to swap out random and deterministic selection strategies.
type Chooser interface {
	Choose(values []int) (int, bool)
}

// --- Implementations ---

// RandomChooser implements the Chooser interface by picking an element uniformly at random.
type RandomChooser struct {
	rand *rand.Rand
}

// NewRandomChooser creates a new random chooser.
func NewRandomChooser(rand *rand.Rand) *RandomChooser {
	return &RandomChooser{rand: rand}
}

func (r *RandomChooser) Choose(values []int) (int, bool) {
	if len(values) == 0 {
		return 0, false
	}
	return values[r.rand.Intn(len(values))], true
}

// DeterministicChooser implements the Chooser interface by always picking the lowest
// value. This is used for predictable testing.
type DeterministicChooser struct{}

func (d *DeterministicChooser) Choose(values []int) (int, bool) {
	if len(values) == 0 {
		return 0, false
	}
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	return sorted[0], true
}
