package reduce

import (
	"math"
	"math/bits"
)

// TriangularSize returns layers·(layers+1)/2, the buffer length of a triangle
// with the given number of layers. Non-positive input yields 0; a result that
// does not fit uint64 saturates to math.MaxUint64, which no buffer matches.
func TriangularSize(layers int) uint64 {
	if layers <= 0 {
		return 0
	}
	a, b := uint64(layers), uint64(layers)+1
	if a%2 == 0 {
		a /= 2
	} else {
		b /= 2
	}

	return mulSaturating(a, b)
}

// RectangularSize returns side², the buffer length of a square grid.
// Non-positive input yields 0; overflow saturates like TriangularSize.
func RectangularSize(side int) uint64 {
	if side <= 0 {
		return 0
	}

	return mulSaturating(uint64(side), uint64(side))
}

// mulSaturating returns a·b, or math.MaxUint64 if the product overflows.
func mulSaturating(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}

	return lo
}
