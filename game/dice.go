package game

import (
	"sort"
	"time"

	"golang.org/x/exp/rand"
)

// NewRNG returns a time-seeded source. Tests inject a fixed seed
// instead so combat and setup replay deterministically.
func NewRNG() *rand.Rand {
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}

// rollDice rolls n six-sided dice and returns them sorted descending.
func rollDice(rng *rand.Rand, n int) []int {
	rolls := make([]int, n)
	for i := range rolls {
		rolls[i] = rng.Intn(6) + 1
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rolls)))
	return rolls
}
