package main

import (
	"encoding/json"
	"math"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sawpanic/ithscan/internal/config"
	"github.com/sawpanic/ithscan/internal/rolling"
)

// rollCmd represents the roll command
var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Compute rolling ITH features over a NAV series",
	Long: `Compute windowed ITH features (epoch densities, excess gains, interval
CVs, drawdown, runup) over a NAV series from stdin. All channels are
normalized to [0,1]; entries before the first full window are NaN and
emitted as null.

Examples:
  ithscan roll --lookback 50 < nav.txt
  ithscan roll --lookback 20 --verbose < nav.txt`,
	RunE: runRoll,
}

var (
	rollLookback   int
	rollConfigFile string
)

func init() {
	rootCmd.AddCommand(rollCmd)

	rollCmd.Flags().IntVar(&rollLookback, "lookback", 0, "Window size in bars (overrides config)")
	rollCmd.Flags().StringVar(&rollConfigFile, "config", "ithscan.yaml", "Path to configuration file")
}

func runRoll(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(rollConfigFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("lookback") {
		cfg.Rolling.Lookback = rollLookback
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	nav, err := readNAV(cmd.InOrStdin())
	if err != nil {
		return err
	}
	log.Info().Int("points", len(nav)).Int("lookback", cfg.Rolling.Lookback).
		Msg("computing rolling features")

	features, err := rolling.Compute(nav, cfg.Rolling.Lookback)
	if err != nil {
		return err
	}

	out := map[string][]*float64{
		"bull_epoch_density": nullable(features.BullEpochDensity),
		"bear_epoch_density": nullable(features.BearEpochDensity),
		"bull_excess_gain":   nullable(features.BullExcessGain),
		"bear_excess_gain":   nullable(features.BearExcessGain),
		"bull_cv":            nullable(features.BullCV),
		"bear_cv":            nullable(features.BearCV),
		"max_drawdown":       nullable(features.MaxDrawdown),
		"max_runup":          nullable(features.MaxRunup),
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// nullable maps NaN entries to nil so the JSON encoder emits null for the
// insufficient-data prefix.
func nullable(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		if !math.IsNaN(values[i]) {
			out[i] = &values[i]
		}
	}
	return out
}
