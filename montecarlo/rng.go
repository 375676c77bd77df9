package montecarlo

import "math/rand"

// NewRand returns the deterministic stream used for one batch.
// Every seed, including 0, is used verbatim.
//
// *rand.Rand is not goroutine-safe; a parallel extension must give each
// worker its own stream derived from the seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
