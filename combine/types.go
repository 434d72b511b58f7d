package combine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownStrategy indicates that ByName could not resolve a strategy name.
var ErrUnknownStrategy = errors.New("combine: unknown strategy")

// Combiner folds one layer into the row it feeds.
//
// Combine must leave rest[i] += max(layer[i], layer[i+1]) for every i in
// [0, width-1) and must not write layer. width < 2 is a no-op.
type Combiner interface {
	Combine(layer, rest []uint32, width int)
}

// Named is implemented by every strategy in this package; reports use it
// to label measurements.
type Named interface {
	Name() string
}

// Strategy names accepted by ByName.
const (
	NameScalar     = "scalar"
	NameVectorized = "vectorized"
	NameParallel   = "parallel"
)

// ByName resolves a strategy handle from its report name:
// "scalar", "vectorized", "parallel" (GOMAXPROCS chunks) or "parallel/K".
func ByName(name string) (Combiner, error) {
	switch n := strings.TrimSpace(strings.ToLower(name)); {
	case n == NameScalar:
		return Scalar{}, nil
	case n == NameVectorized:
		return Vectorized{}, nil
	case n == NameParallel:
		return Parallel{}, nil
	case strings.HasPrefix(n, NameParallel+"/"):
		k, err := strconv.Atoi(strings.TrimPrefix(n, NameParallel+"/"))
		if err != nil || k < 1 {
			return nil, fmt.Errorf("%w: %q (fan-out must be a positive integer)", ErrUnknownStrategy, name)
		}

		return Parallel{K: k}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// accumulate is the shared kernel: dst[i] += max(left[i], right[i]).
// Callers pass views of equal length.
func accumulate(left, right, dst []uint32) {
	for i := range dst {
		a, b := left[i], right[i]
		if b > a {
			a = b
		}
		dst[i] += a
	}
}
