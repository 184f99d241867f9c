package core

import (
	"math"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntN returns a uniform int in [0, n); 0 when n is not positive.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// UnitVector returns a uniformly random direction of unit length.
func (r *RNG) UnitVector() (float64, float64) {
	a := r.r.Float64() * 2 * math.Pi
	return math.Cos(a), math.Sin(a)
}

// InDisk returns a uniform point within a disk of the given radius.
func (r *RNG) InDisk(radius float64) (float64, float64) {
	a := r.r.Float64() * 2 * math.Pi
	d := radius * math.Sqrt(r.r.Float64())
	return math.Cos(a) * d, math.Sin(a) * d
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
