// Package simulate advances today's spend with randomized draws and tracks
// the transient big-purchase alert.
package simulate

import (
	"math/rand"
	"time"
)

// Source supplies pseudo-random integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a seeded source. A zero seed uses the current time.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) //nolint:gosec // simulation only
}

// Between draws an integer uniformly from [lo, hi].
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}
