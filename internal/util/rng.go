package util

import "math/rand/v2"

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return Stream(uint64(seed))
}

// Stream returns a PCG-backed generator for an already mixed seed.
func Stream(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed>>32|1))
}

// Derive folds branch indices into seed. The result depends only on the
// seed and the path, never on how many draws happened elsewhere.
func Derive(seed uint64, branch ...int) uint64 {
	for _, b := range branch {
		seed = rand.New(rand.NewPCG(seed, uint64(b)+1)).Uint64()
	}
	return seed
}
