// Package datagen supplies input buffers for the reduce drivers and the
// measurement harness. The drivers have no opinion on the distribution; this
// package provides the one used for throughput comparisons.
package datagen

import (
	"math/rand/v2"

	"github.com/katalvlaran/pathsum/reduce"
)

// MaxValue is the exclusive upper bound of generated values. With it a
// triangle of up to ~8.5 million layers cannot overflow uint32.
const MaxValue = 500

// Uniform returns n values drawn uniformly from [0, MaxValue).
// A nil rng uses the package-level source.
func Uniform(n int, rng *rand.Rand) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		if rng == nil {
			out[i] = rand.Uint32N(MaxValue)
		} else {
			out[i] = rng.Uint32N(MaxValue)
		}
	}

	return out
}

// Zeros returns n zero values.
func Zeros(n int) []uint32 {
	return make([]uint32, n)
}

// Triangle returns a uniform buffer sized for reduce.Pyramid with the given layers.
func Triangle(layers int, rng *rand.Rand) []uint32 {
	return Uniform(int(reduce.TriangularSize(layers)), rng)
}

// Square returns a uniform buffer sized for reduce.Rectangle with the given side.
func Square(side int, rng *rand.Rand) []uint32 {
	return Uniform(int(reduce.RectangularSize(side)), rng)
}
