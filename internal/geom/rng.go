package geom

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 used for kick-offs.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed. A zero seed is
// replaced with the current wall-clock time.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Uniform returns a pseudo-random float in [low, high). The bounds may be
// given in either order.
func (r *RNG) Uniform(low, high float64) float64 {
	if high < low {
		low, high = high, low
	}
	return low + r.r.Float64()*(high-low)
}
