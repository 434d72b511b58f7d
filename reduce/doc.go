// Package reduce computes the maximum path sum through a triangular or
// square grid of unsigned integers by folding it, layer by layer, in place.
//
// What:
//
//   - Pyramid:   triangle of N layers (row lengths 1..N), widest row stored
//     first. Each step folds the widest remaining row into the one above it;
//     the apex left at the end is the answer.
//   - Rectangle: N×N grid, last row stored first. Each step folds the current
//     row into the next one (diagonal moves via the strategy, the straight-down
//     move for the rightmost column by the driver). The answer is the best
//     value of the final row.
//
// Both drivers take the row-combine strategy as a type parameter, so the
// choice is made once at the call site and never branched on in the loop.
//
//	    7            storage (bottom-up):
//	   3 8           2 7 4 4 | 8 1 0 | 3 8 | 7   ... for 4 layers
//	  8 1 0
//	 2 7 4 4
//
// Layouts:
//
//   - TriangularSize / RectangularSize give the exact buffer length to allocate.
//   - FlattenTriangle / FlattenSquare turn top-to-bottom [][]uint32 rows into
//     the bottom-up storage the drivers expect.
//
// Complexity:
//
//   - Pyramid:   O(N²) time, O(1) extra memory.
//   - Rectangle: O(N²) time, O(1) extra memory.
//
// Errors:
//
//   - ErrInvalidShape:   buffer length does not match the declared layer/side
//     count, or the count is < 1. Nothing is mutated.
//   - ErrEmptyGrid:      2D input has no rows.
//   - ErrRaggedTriangle: row k of a triangle does not hold k+1 values.
//   - ErrNonSquare:      a square grid row does not hold N values.
//
// Accumulator overflow is not detected; inputs must fit uint32 across the
// whole reduction.
package reduce
