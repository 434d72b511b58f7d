package reduce

import "fmt"

// FlattenTriangle converts top-to-bottom triangle rows (row k holds k+1
// values) into the bottom-up storage Pyramid expects. It returns the buffer
// and the number of layers. The input is copied, never aliased.
//
// Returns ErrEmptyGrid if rows is empty, ErrRaggedTriangle if any row has the
// wrong length.
// Complexity: O(N²) time and memory.
func FlattenTriangle(rows [][]uint32) ([]uint32, int, error) {
	if len(rows) == 0 {
		return nil, 0, ErrEmptyGrid
	}
	for k, row := range rows {
		if len(row) != k+1 {
			return nil, 0, fmt.Errorf("%w: row %d has %d values", ErrRaggedTriangle, k, len(row))
		}
	}

	return flattenReversed(rows, TriangularSize(len(rows))), len(rows), nil
}

// FlattenSquare converts N top-to-bottom rows of N values into the storage
// Rectangle expects (row-major, fully reversed so the last row comes first).
// It returns the buffer and the side N. The input is copied, never aliased.
//
// Returns ErrEmptyGrid if rows is empty, ErrNonSquare if any row length
// differs from len(rows).
// Complexity: O(N²) time and memory.
func FlattenSquare(rows [][]uint32) ([]uint32, int, error) {
	if len(rows) == 0 {
		return nil, 0, ErrEmptyGrid
	}
	n := len(rows)
	for k, row := range rows {
		if len(row) != n {
			return nil, 0, fmt.Errorf("%w: row %d has %d values, want %d", ErrNonSquare, k, len(row), n)
		}
	}

	return flattenReversed(rows, RectangularSize(n)), n, nil
}

// flattenReversed concatenates rows in row-major order and reverses the
// result, which puts the last row first.
func flattenReversed(rows [][]uint32, size uint64) []uint32 {
	buf := make([]uint32, 0, size)
	for _, row := range rows {
		buf = append(buf, row...)
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}

	return buf
}
