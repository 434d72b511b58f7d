package reduce

import (
	"fmt"

	"github.com/katalvlaran/pathsum/combine"
)

// Pyramid returns the maximum path sum of a triangle with the given number of
// layers stored bottom-up in buf (widest row first, apex last).
//
// buf is reduced in place and must not be reused as input afterwards.
// Returns ErrInvalidShape if layers < 1 or len(buf) != TriangularSize(layers);
// buf is left untouched in that case.
//
// Steps, for i = layers down to 2:
//  1. layer = buf[:i], rest = buf[i:]     (single split point, no overlap)
//  2. c.Combine(layer, rest[:i-1], i)
//  3. buf = rest
//
// The one element left is the apex.
func Pyramid[C combine.Combiner](buf []uint32, layers int, c C) (uint32, error) {
	if layers < 1 || uint64(len(buf)) != TriangularSize(layers) {
		return 0, fmt.Errorf("%w: %d layers need %d values, got %d",
			ErrInvalidShape, layers, TriangularSize(layers), len(buf))
	}
	for i := layers; i >= 2; i-- {
		layer, rest := buf[:i:i], buf[i:]
		c.Combine(layer, rest[:i-1], i)
		buf = rest
	}

	return buf[0], nil
}

// Rectangle returns the maximum path sum of a side×side grid stored with the
// last row first in buf.
//
// Each step folds the current row into the next: the strategy adds the larger
// diagonal parent to positions 0..side-2, and the driver carries the row's
// last value straight down into position side-1. Any column may end the path,
// so the answer is the maximum of the final row.
//
// buf is reduced in place. Returns ErrInvalidShape if side < 1 or
// len(buf) != RectangularSize(side); buf is left untouched in that case.
func Rectangle[C combine.Combiner](buf []uint32, side int, c C) (uint32, error) {
	if side < 1 || uint64(len(buf)) != RectangularSize(side) {
		return 0, fmt.Errorf("%w: side %d needs %d values, got %d",
			ErrInvalidShape, side, RectangularSize(side), len(buf))
	}
	for len(buf) > side {
		layer, rest := buf[:side:side], buf[side:]
		c.Combine(layer, rest[:side-1], side)
		rest[side-1] += layer[side-1]
		buf = rest
	}

	best := buf[0]
	for _, v := range buf[1:] {
		if v > best {
			best = v
		}
	}

	return best, nil
}
