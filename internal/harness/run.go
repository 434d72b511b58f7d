package harness

import (
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/pathsum/combine"
	"github.com/katalvlaran/pathsum/datagen"
	"github.com/katalvlaran/pathsum/reduce"
)

// Result is the best-of-Repeats measurement for one strategy and size.
type Result struct {
	Strategy string
	Mode     Mode
	Size     int
	Cells    uint64
	Elapsed  time.Duration
	// Answer is the driver result in pyramid/rectangle mode and the first
	// updated rest value in layer mode. Equal inputs give equal answers
	// across strategies.
	Answer uint32
}

// Throughput returns processed cells per second.
func (r Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}

	return float64(r.Cells) / r.Elapsed.Seconds()
}

// Steps returns how many measurements Run will report for cfg.
func Steps(cfg Config) int {
	return len(cfg.Sizes) * len(cfg.Strategies)
}

// Run measures every configured strategy on every configured size.
// Inputs are generated once per size from cfg.Seed and copied before each
// repeat, so all strategies see identical data. onStep, if non-nil, is
// called after each Result is recorded.
func Run(cfg Config, onStep func(Result)) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	strategies := make([]combine.Combiner, len(cfg.Strategies))
	for i, name := range cfg.Strategies {
		c, err := combine.ByName(name)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		strategies[i] = c
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	results := make([]Result, 0, Steps(cfg))
	for _, n := range cfg.Sizes {
		src := datagen.Uniform(int(cfg.Mode.cells(n)), rng)
		work := make([]uint32, len(src))
		for i, c := range strategies {
			r := Result{Strategy: cfg.Strategies[i], Mode: cfg.Mode, Size: n, Cells: uint64(len(src))}
			if named, ok := c.(combine.Named); ok {
				r.Strategy = named.Name()
			}
			for rep := 0; rep < cfg.Repeats; rep++ {
				copy(work, src)
				elapsed, answer, err := measure(cfg.Mode, c, work, n)
				if err != nil {
					return results, errors.Wrapf(err, "%s %s size %d", r.Strategy, cfg.Mode, n)
				}
				if rep == 0 || elapsed < r.Elapsed {
					r.Elapsed = elapsed
				}
				r.Answer = answer
			}
			results = append(results, r)
			if onStep != nil {
				onStep(r)
			}
		}
	}

	return results, nil
}

// measure times one call on buf, which holds mode.cells(n) values.
func measure(mode Mode, c combine.Combiner, buf []uint32, n int) (time.Duration, uint32, error) {
	switch mode {
	case ModePyramid:
		start := time.Now()
		answer, err := reduce.Pyramid(buf, n, c)

		return time.Since(start), answer, err
	case ModeRectangle:
		start := time.Now()
		answer, err := reduce.Rectangle(buf, n, c)

		return time.Since(start), answer, err
	default:
		layer, rest := buf[:n:n], buf[n:]
		start := time.Now()
		c.Combine(layer, rest, n)

		return time.Since(start), rest[0], nil
	}
}
