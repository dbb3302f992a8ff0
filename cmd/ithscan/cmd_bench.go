package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sawpanic/ithscan/internal/ith"
	"github.com/sawpanic/ithscan/internal/rolling"
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the detector passes on a synthetic walk",
	Long: `Benchmark the bull/bear detectors and rolling feature generation on a
deterministic pseudo-random NAV walk.

Examples:
  ithscan bench --points 100000 --rounds 10
  ithscan bench --points 1000000 --hurdle 0.02`,
	RunE: runBench,
}

var (
	benchPoints   int
	benchRounds   int
	benchHurdle   float64
	benchLookback int
)

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().IntVar(&benchPoints, "points", 100000, "Walk length in bars")
	benchCmd.Flags().IntVar(&benchRounds, "rounds", 10, "Passes per benchmark")
	benchCmd.Flags().Float64Var(&benchHurdle, "hurdle", 0.05, "Hurdle threshold")
	benchCmd.Flags().IntVar(&benchLookback, "lookback", 50, "Rolling lookback")
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchPoints < 2 || benchRounds < 1 {
		return fmt.Errorf("points must be >= 2 and rounds >= 1")
	}

	nav := syntheticWalk(benchPoints, 42)
	log.Info().Int("points", benchPoints).Int("rounds", benchRounds).Msg("benchmarking")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Pass\tTotal\tPer round\tEpochs")

	bullElapsed, bullEpochs := timeDetector(ith.Bull, nav)
	fmt.Fprintf(w, "bull\t%v\t%v\t%d\n", bullElapsed, bullElapsed/time.Duration(benchRounds), bullEpochs)

	bearElapsed, bearEpochs := timeDetector(ith.Bear, nav)
	fmt.Fprintf(w, "bear\t%v\t%v\t%d\n", bearElapsed, bearElapsed/time.Duration(benchRounds), bearEpochs)

	start := time.Now()
	for i := 0; i < benchRounds; i++ {
		if _, err := rolling.Compute(nav, benchLookback); err != nil {
			return err
		}
	}
	rollElapsed := time.Since(start)
	fmt.Fprintf(w, "rolling\t%v\t%v\t-\n", rollElapsed, rollElapsed/time.Duration(benchRounds))

	return w.Flush()
}

func timeDetector(detect func([]float64, float64) ith.Result, nav []float64) (time.Duration, int) {
	var epochs int
	start := time.Now()
	for i := 0; i < benchRounds; i++ {
		epochs = detect(nav, benchHurdle).EpochCount
	}
	return time.Since(start), epochs
}

// syntheticWalk builds a deterministic volatile NAV walk from a linear
// congruential generator, floored away from zero.
func syntheticWalk(n int, seed uint64) []float64 {
	state := seed
	nav := make([]float64, n)
	value := 1.0
	for i := 0; i < n; i++ {
		nav[i] = value
		state = state*6364136223846793005 + 1
		r := float64(state>>33)/float64(math.MaxUint32) - 0.5
		value *= 1 + r*0.02
		value = math.Max(value, 0.01)
	}
	return nav
}
