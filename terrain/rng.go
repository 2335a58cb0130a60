package terrain

import "math/rand"

// defaultRNGSeed is used when callers pass seed 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 selects defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// between returns a uniform int in [lo, hi]. hi < lo yields lo.
func between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + rng.Intn(hi-lo+1)
}
