package core

import "math/rand/v2"

// seedGamma decorrelates the two PCG seed words and derived streams
// Weyl constant, same role as splitmix64's increment
const seedGamma = 0x9E3779B97F4A7C15

// Rand is the single seedable random source injected into the generation
// pipeline. Each Generator owns exactly one instance; nothing in this module
// touches the global math/rand state, so replays and tests are reproducible
type Rand struct {
	src *rand.Rand
}

// NewRand creates a deterministic source from an explicit seed
func NewRand(seed uint64) *Rand {
	return &Rand{src: rand.New(rand.NewPCG(seed, seed^seedGamma))}
}

// Derive creates an independent stream from the same base seed and an offset
// Used for state-safe previews that must not disturb the primary stream
func Derive(seed uint64, offset uint64) *Rand {
	return NewRand(seed + offset*seedGamma)
}

// IntN returns a uniform int in [0, n). Panics if n <= 0, same as rand/v2
func (r *Rand) IntN(n int) int {
	return r.src.IntN(n)
}

// Float64 returns a uniform float64 in [0, 1)
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}

// Shuffle performs a Fisher-Yates shuffle over n elements
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	r.src.Shuffle(n, swap)
}

// WeightedIndex draws one index with probability proportional to weights[i]
// Non-positive weights are never selected. Returns -1 when no weight is
// positive, which callers treat as "no eligible candidate"
func (r *Rand) WeightedIndex(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	roll := r.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		roll -= w
		if roll < 0 {
			return i
		}
	}

	// Float accumulation can land exactly on total; last positive weight wins
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return -1
}
