package reduce_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pathsum/reduce"
)

func TestTriangularSize(t *testing.T) {
	cases := map[int]uint64{-2: 0, 0: 0, 1: 1, 2: 3, 5: 15, 7: 28, 1_000_000: 500_000_500_000}
	for layers, want := range cases {
		assert.Equal(t, want, reduce.TriangularSize(layers), "layers=%d", layers)
	}
}

func TestRectangularSize(t *testing.T) {
	cases := map[int]uint64{-1: 0, 0: 0, 1: 1, 2: 4, 4: 16, 100_000: 10_000_000_000}
	for side, want := range cases {
		assert.Equal(t, want, reduce.RectangularSize(side), "side=%d", side)
	}
}

// TestSizes_Overflow verifies products beyond uint64 saturate instead of
// wrapping onto a small length.
func TestSizes_Overflow(t *testing.T) {
	assert.Equal(t, uint64(math.MaxUint64), reduce.RectangularSize(math.MaxInt64))
	assert.Equal(t, uint64(math.MaxUint64), reduce.RectangularSize(1<<32))
	assert.Equal(t, uint64(1<<62), reduce.RectangularSize(1<<31))
	assert.Equal(t, uint64(math.MaxUint64), reduce.TriangularSize(math.MaxInt64))
	assert.Equal(t, uint64(1<<31)*(1<<32+1), reduce.TriangularSize(1<<32))
}
