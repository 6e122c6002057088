// Package dice provides the randomness seam used for damage rolls and target selection.
package dice

import (
	"math/rand"
	"time"
)

// Source is the randomness provider for the battle.
// *rand.Rand satisfies it; tests substitute scripted sources.
type Source interface {
	// Intn returns a non-negative random int in [0, n). n must be > 0.
	Intn(n int) int
}

// ResolveSeed returns seed, or a time-based seed when seed is 0.
func ResolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// New returns a seeded random source.
// A seed of 0 means a time-based seed is used.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(ResolveSeed(seed)))
}

// Range returns a uniformly distributed integer in the closed range [lo, hi].
// If hi < lo the bounds are swapped.
func Range(src Source, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + src.Intn(hi-lo+1)
}
