package reduce

import "errors"

var (
	// ErrInvalidShape indicates the buffer length does not equal the closed-form
	// size for the declared number of layers (or side), or that number is < 1.
	ErrInvalidShape = errors.New("reduce: buffer length does not match declared shape")

	// ErrEmptyGrid indicates a 2D input with no rows.
	ErrEmptyGrid = errors.New("reduce: input grid must have at least one row")

	// ErrRaggedTriangle indicates a triangle row whose length is not its 1-based index.
	ErrRaggedTriangle = errors.New("reduce: triangle row k must hold exactly k values")

	// ErrNonSquare indicates a grid row whose length differs from the row count.
	ErrNonSquare = errors.New("reduce: all rows must hold exactly len(rows) values")
)
