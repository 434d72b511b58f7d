// pathsum measures the maximum path sum strategies as the input grows.
//
//  1. `pathsum` compares one combine step for scalar, vectorized and parallel/2
//     on rows from 10 000 to 1 000 000 values.
//  2. `pathsum -mode=pyramid -sizes=1000,5000 -strategies=scalar,parallel/4`
//     times full triangle reductions instead.
//  3. `pathsum -config=bench.yaml` loads the run from YAML; flags given on the
//     command line override the file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/pathsum/internal/harness"
)

var (
	flagConfig     = flag.String("config", "", "YAML file with mode, sizes, strategies, repeats and seed.")
	flagMode       = flag.String("mode", "", "What to time: layer, pyramid or rectangle.")
	flagSizes      = flag.String("sizes", "", "Comma separated sizes (row width, layers or side, per mode).")
	flagStrategies = flag.String("strategies", "", "Comma separated strategies: scalar, vectorized, parallel, parallel/K.")
	flagRepeats    = flag.Int("repeats", 0, "Repeats per measurement; the best time is reported.")
	flagSeed       = flag.Uint64("seed", 0, "Seed for the generated input.")
	flagProgress   = flag.Bool("progress", true, "Show a progress bar on stderr.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	cfg, err := buildConfig()
	if err != nil {
		klog.Exitf("configuration: %+v", err)
	}
	klog.Infof("mode=%s sizes=%d strategies=%s repeats=%d seed=%d",
		cfg.Mode, len(cfg.Sizes), strings.Join(cfg.Strategies, ","), cfg.Repeats, cfg.Seed)

	var bar *progressbar.ProgressBar
	if *flagProgress {
		bar = progressbar.NewOptions(harness.Steps(cfg),
			progressbar.OptionSetDescription("measuring"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetTheme(progressbar.ThemeASCII),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}
	results, err := harness.Run(cfg, func(r harness.Result) {
		klog.V(1).Infof("%s size=%d elapsed=%s answer=%d", r.Strategy, r.Size, r.Elapsed, r.Answer)
		if bar != nil {
			_ = bar.Add(1)
		}
	})
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		klog.Exitf("run: %+v", err)
	}
	fmt.Println(harness.Render(results))
}

// buildConfig starts from the defaults or -config and applies explicitly set flags.
func buildConfig() (harness.Config, error) {
	cfg := harness.DefaultConfig()
	if *flagConfig != "" {
		var err error
		if cfg, err = harness.LoadConfig(*flagConfig); err != nil {
			return cfg, err
		}
	}

	var err error
	flag.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "mode":
			cfg.Mode = harness.Mode(*flagMode)
		case "sizes":
			cfg.Sizes, err = parseSizes(*flagSizes)
		case "strategies":
			cfg.Strategies = splitList(*flagStrategies)
		case "repeats":
			cfg.Repeats = *flagRepeats
		case "seed":
			cfg.Seed = *flagSeed
		}
	})
	if err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

// parseSizes accepts Go integer literals, so 1_000_000 works.
func parseSizes(s string) ([]int, error) {
	parts := splitList(s)
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(p, 0, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing -sizes entry %q", p)
		}
		sizes = append(sizes, int(n))
	}

	return sizes, nil
}
