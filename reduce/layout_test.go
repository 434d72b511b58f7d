package reduce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsum/combine"
	"github.com/katalvlaran/pathsum/reduce"
)

// TestFlattenTriangle checks storage order, shape errors and that the input
// is copied.
func TestFlattenTriangle(t *testing.T) {
	rows := [][]uint32{{7}, {3, 8}, {8, 1, 0}}
	buf, layers, err := reduce.FlattenTriangle(rows)
	require.NoError(t, err)
	assert.Equal(t, 3, layers)
	assert.Equal(t, []uint32{0, 1, 8, 8, 3, 7}, buf)

	buf[0] = 99
	assert.Equal(t, uint32(0), rows[2][2], "input must not be aliased")

	_, _, err = reduce.FlattenTriangle(nil)
	assert.ErrorIs(t, err, reduce.ErrEmptyGrid)
	_, _, err = reduce.FlattenTriangle([][]uint32{{1}, {2}})
	assert.ErrorIs(t, err, reduce.ErrRaggedTriangle)
	_, _, err = reduce.FlattenTriangle([][]uint32{{1, 2}})
	assert.ErrorIs(t, err, reduce.ErrRaggedTriangle)
}

// TestFlattenSquare checks storage order and shape errors.
func TestFlattenSquare(t *testing.T) {
	buf, side, err := reduce.FlattenSquare([][]uint32{{5, 6}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 2, side)
	assert.Equal(t, []uint32{4, 3, 6, 5}, buf)

	_, _, err = reduce.FlattenSquare([][]uint32{})
	assert.ErrorIs(t, err, reduce.ErrEmptyGrid)
	_, _, err = reduce.FlattenSquare([][]uint32{{1, 2}, {3}})
	assert.ErrorIs(t, err, reduce.ErrNonSquare)
	_, _, err = reduce.FlattenSquare([][]uint32{{1, 2}})
	assert.ErrorIs(t, err, reduce.ErrNonSquare)
}

// TestFlatten_RoundTripThroughDrivers feeds flattened rows to the drivers.
func TestFlatten_RoundTripThroughDrivers(t *testing.T) {
	buf, layers, err := reduce.FlattenTriangle([][]uint32{{7}, {3, 8}, {8, 1, 0}, {2, 7, 4, 4}, {4, 5, 2, 6, 5}})
	require.NoError(t, err)
	got, err := reduce.Pyramid(buf, layers, combine.Vectorized{})
	require.NoError(t, err)
	assert.Equal(t, uint32(30), got)

	buf, side, err := reduce.FlattenSquare([][]uint32{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}})
	require.NoError(t, err)
	got, err = reduce.Rectangle(buf, side, combine.NewParallel(2))
	require.NoError(t, err)
	assert.Equal(t, uint32(40), got)
}
