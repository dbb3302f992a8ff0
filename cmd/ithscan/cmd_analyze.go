package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sawpanic/ithscan/internal/analysis"
	"github.com/sawpanic/ithscan/internal/config"
	"github.com/sawpanic/ithscan/internal/ith"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run ITH epoch analysis on a NAV series",
	Long: `Run the bull and bear ITH detectors over a NAV series from stdin and
print the qualification report.

Examples:
  ithscan analyze < nav.txt
  ithscan analyze --hurdle 0.02 --format json < nav.txt
  ithscan analyze --tmaeg mdd --config ithscan.yaml < nav.txt`,
	RunE: runAnalyze,
}

var (
	analyzeHurdle     float64
	analyzeTMAEG      string
	analyzeFormat     string
	analyzeConfigFile string
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Float64Var(&analyzeHurdle, "hurdle", 0, "Hurdle threshold (overrides config)")
	analyzeCmd.Flags().StringVar(&analyzeTMAEG, "tmaeg", "", "TMAEG method: fixed or mdd (overrides config)")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "table", "Output format: table, json")
	analyzeCmd.Flags().StringVar(&analyzeConfigFile, "config", "ithscan.yaml", "Path to configuration file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(analyzeConfigFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("hurdle") {
		cfg.Analysis.Hurdle = analyzeHurdle
	}
	if cmd.Flags().Changed("tmaeg") {
		cfg.Analysis.TMAEGMethod = analyzeTMAEG
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	nav, err := readNAV(cmd.InOrStdin())
	if err != nil {
		return err
	}
	log.Info().Int("points", len(nav)).Float64("hurdle", cfg.Analysis.Hurdle).
		Str("tmaeg_method", cfg.Analysis.TMAEGMethod).Msg("analyzing nav series")

	report := analysis.Run(nav, cfg.Analysis)

	switch strings.ToLower(analyzeFormat) {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	default:
		return printReportTable(report)
	}
}

func printReportTable(report analysis.Report) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "UID\t%s\n", report.UID)
	fmt.Fprintf(w, "TMAEG method\t%s\n", report.Method)
	fmt.Fprintf(w, "Bull hurdle\t%.4f\n", report.BullHurdle)
	fmt.Fprintf(w, "Bear hurdle\t%.4f\n", report.BearHurdle)
	fmt.Fprintf(w, "Bull epochs\t%d %v\n", report.BullEpochs, report.BullIndices)
	fmt.Fprintf(w, "Bear epochs\t%d %v\n", report.BearEpochs, report.BearIndices)
	fmt.Fprintf(w, "Bull intervals CV\t%s\n", formatCV(report.BullCV))
	fmt.Fprintf(w, "Bear intervals CV\t%s\n", formatCV(report.BearCV))
	fmt.Fprintf(w, "Max drawdown\t%.4f\n", report.Fitness.MaxDrawdown)
	fmt.Fprintf(w, "Max runup\t%.4f\n", report.MaxRunup)
	fmt.Fprintf(w, "Sharpe ratio\t%.4f\n", report.Fitness.SharpeRatio)
	fmt.Fprintf(w, "Total return\t%.4f\n", report.Fitness.TotalReturn)
	fmt.Fprintf(w, "Trading days\t%d\n", report.Fitness.TradingDays)
	fmt.Fprintf(w, "Qualified\t%t\n", report.Qualified)

	return w.Flush()
}

func formatCV(cv ith.IntervalCV) string {
	if !cv.Defined {
		return "undefined"
	}
	return fmt.Sprintf("%.4f", cv.Value)
}
