package combine

import (
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"
)

const panicFanOutInvalid = "combine: NewParallel: fan-out k must be >= 1"

// Parallel splits one Combine call into K contiguous chunks and runs each
// chunk on its own goroutine.
//
// Chunk size is ceil(width/K); the final chunk may be shorter and, for narrow
// rows, fewer than K chunks may exist. Chunk j of layer[:n-1], layer[1:n] and
// rest[:n-1] covers the same index range, so no two goroutines write the same
// destination and the join is the only synchronization.
//
// K <= 0 uses runtime.GOMAXPROCS(0).
type Parallel struct {
	K int
}

// NewParallel returns a Parallel strategy with fan-out k.
// Panics if k < 1.
func NewParallel(k int) Parallel {
	if k < 1 {
		panic(panicFanOutInvalid)
	}

	return Parallel{K: k}
}

// Name implements Named.
func (p Parallel) Name() string {
	if p.K <= 0 {
		return NameParallel
	}

	return NameParallel + "/" + strconv.Itoa(p.K)
}

// FanOut reports the effective number of chunks requested.
func (p Parallel) FanOut() int {
	if p.K <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return p.K
}

// Combine implements Combiner. A panic in any chunk is not recovered.
func (p Parallel) Combine(layer, rest []uint32, width int) {
	if width < 2 {
		return
	}
	m := width - 1
	left, right, dst := layer[:m], layer[1:width], rest[:m]
	size := chunkSize(width, p.FanOut())

	var g errgroup.Group
	for start := 0; start < m; start += size {
		end := min(start+size, m)
		l, r, d := left[start:end], right[start:end], dst[start:end]
		g.Go(func() error {
			accumulate(l, r, d)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors
}

// chunkSize is ceil(width/k) for width >= 1, written so a huge k cannot
// overflow into a zero step.
func chunkSize(width, k int) int {
	return (width-1)/k + 1
}
