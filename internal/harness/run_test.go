package harness

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_AllModes checks that every strategy reports the same answer for
// the same generated input, in every mode.
func TestRun_AllModes(t *testing.T) {
	for _, mode := range []Mode{ModeLayer, ModePyramid, ModeRectangle} {
		t.Run(string(mode), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Mode = mode
			cfg.Sizes = []int{7, 40}
			cfg.Strategies = []string{"scalar", "vectorized", "parallel/2", "parallel/3", "parallel/4"}
			cfg.Repeats = 2

			var steps int
			results, err := Run(cfg, func(Result) { steps++ })
			require.NoError(t, err)
			require.Len(t, results, Steps(cfg))
			assert.Equal(t, Steps(cfg), steps)

			for i, r := range results {
				group := results[i-i%len(cfg.Strategies)]
				assert.Equal(t, group.Answer, r.Answer, "%s size %d", r.Strategy, r.Size)
				assert.Equal(t, mode, r.Mode)
				assert.Equal(t, mode.cells(r.Size), r.Cells)
			}
		})
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strategies = []string{"nope"}
	_, err := Run(cfg, nil)
	assert.Error(t, err)
}

func TestResult_Throughput(t *testing.T) {
	assert.Zero(t, Result{Cells: 10}.Throughput())
	assert.InDelta(t, 1e9, Result{Cells: 1000, Elapsed: 1000}.Throughput(), 1)
}

func TestRender(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sizes = []int{1000}
	cfg.Repeats = 1
	results, err := Run(cfg, nil)
	require.NoError(t, err)

	out := Render(results)
	for _, want := range []string{"strategy", "throughput", "scalar", "vectorized", "parallel/2", "1,000"} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, len(results), strings.Count(out, "layer"), "one row per result")
}
