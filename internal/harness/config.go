// Package harness times the row-combine strategies and the reduce drivers as
// the input grows, and renders the measurements as a table.
package harness

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathsum/combine"
	"github.com/katalvlaran/pathsum/reduce"
)

// Mode selects what one measurement times.
type Mode string

const (
	// ModeLayer times a single Combine call on a row of Size values.
	ModeLayer Mode = "layer"
	// ModePyramid times reduce.Pyramid on a triangle of Size layers.
	ModePyramid Mode = "pyramid"
	// ModeRectangle times reduce.Rectangle on a Size×Size grid.
	ModeRectangle Mode = "rectangle"
)

// MaxCells bounds the buffer a single measurement may allocate (1 GiB of uint32).
const MaxCells = 1 << 28

// Config describes one harness run. Zero fields in a YAML file keep the
// defaults from DefaultConfig.
type Config struct {
	Mode       Mode     `yaml:"mode"`
	Sizes      []int    `yaml:"sizes"`
	Strategies []string `yaml:"strategies"`
	Repeats    int      `yaml:"repeats"`
	Seed       uint64   `yaml:"seed"`
}

// DefaultConfig returns the layer-throughput comparison: widths from 10 000
// to 1 000 000, scalar vs vectorized vs two-way parallel, best of 3.
func DefaultConfig() Config {
	return Config{
		Mode: ModeLayer,
		Sizes: []int{
			10_000, 20_000, 30_000, 40_000, 50_000,
			100_000, 200_000, 300_000, 400_000, 500_000,
			600_000, 700_000, 800_000, 900_000, 1_000_000,
		},
		Strategies: []string{combine.NameScalar, combine.NameVectorized, combine.NameParallel + "/2"},
		Repeats:    3,
		Seed:       42,
	}
}

// LoadConfig overlays the YAML file at path on DefaultConfig and validates
// the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading harness config %q", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing harness config %q", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.WithMessagef(err, "harness config %q", path)
	}

	return cfg, nil
}

// Validate rejects configurations Run cannot execute.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeLayer, ModePyramid, ModeRectangle:
	default:
		return errors.Errorf("unknown mode %q (want %s, %s or %s)", c.Mode, ModeLayer, ModePyramid, ModeRectangle)
	}
	if len(c.Sizes) == 0 {
		return errors.New("no sizes configured")
	}
	if c.Repeats < 1 {
		return errors.Errorf("repeats must be >= 1, got %d", c.Repeats)
	}
	minSize := 1
	if c.Mode == ModeLayer {
		minSize = 2
	}
	for _, n := range c.Sizes {
		if n < minSize {
			return errors.Errorf("size %d too small for mode %s (min %d)", n, c.Mode, minSize)
		}
		if cells := c.Mode.cells(n); cells > MaxCells {
			return errors.Errorf("size %d needs %d cells in mode %s, limit is %d", n, cells, c.Mode, MaxCells)
		}
	}
	if len(c.Strategies) == 0 {
		return errors.New("no strategies configured")
	}
	for _, name := range c.Strategies {
		if _, err := combine.ByName(name); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

// cells is the number of uint32 values one measurement of size n processes.
func (m Mode) cells(n int) uint64 {
	switch m {
	case ModePyramid:
		return reduce.TriangularSize(n)
	case ModeRectangle:
		return reduce.RectangularSize(n)
	default:
		return uint64(2*n - 1)
	}
}
