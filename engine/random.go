package engine

import "math/rand/v2"

// Randomizer supplies respawn draws; queried on every respawn
type Randomizer interface {
	// IntRange returns a uniform integer in [lo, hi]
	IntRange(lo, hi int) int
	// FloatRange returns a uniform real in [lo, hi)
	FloatRange(lo, hi float64) float64
}

type pcgRandomizer struct {
	r *rand.Rand
}

// NewRandomizer creates a seeded PCG-backed randomizer
func NewRandomizer(seed uint64) Randomizer {
	return &pcgRandomizer{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *pcgRandomizer) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + p.r.IntN(hi-lo+1)
}

func (p *pcgRandomizer) FloatRange(lo, hi float64) float64 {
	return lo + p.r.Float64()*(hi-lo)
}
