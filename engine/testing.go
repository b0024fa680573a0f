package engine

// SequenceRandomizer replays fixed draws in order, cycling when exhausted
// Intended for tests and deterministic demos
type SequenceRandomizer struct {
	Ints   []int
	Floats []float64

	IntCalls   int
	FloatCalls int
}

func (r *SequenceRandomizer) IntRange(lo, hi int) int {
	v := lo
	if len(r.Ints) > 0 {
		v = r.Ints[r.IntCalls%len(r.Ints)]
	}
	r.IntCalls++
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (r *SequenceRandomizer) FloatRange(lo, hi float64) float64 {
	v := lo
	if len(r.Floats) > 0 {
		v = r.Floats[r.FloatCalls%len(r.Floats)]
	}
	r.FloatCalls++
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
