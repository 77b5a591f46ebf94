package vmath

// Scalar helpers and the xorshift RNG shared by the simulation.
// All positions in the game live in normalized [0,1]x[0,1] space,
// so float64 precision is more than enough for tile-scale geometry.

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs avoids a math import at most call sites
func Abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// --- Randomness ---

// FastRand is a xorshift64 generator. Injected everywhere randomness is
// needed so simulation runs are reproducible from a seed.
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
