package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootCmd is the base command for the ithscan CLI
var rootCmd = &cobra.Command{
	Use:   "ithscan",
	Short: "ITH epoch detection and regime features for NAV series",
	Long: `ithscan computes Investment Time Horizon (ITH) epochs from a NAV series:
confirmed bull breakouts and bear breakdowns that clear an adverse-move
hurdle, plus drawdown/runup extrema and rolling regime features.

NAV values are read from stdin, one per line. Blank lines and lines
starting with '#' are ignored.`,
}

var rootVerbose bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootVerbose, "verbose", false, "Enable debug logging")
	cobra.OnInitialize(setupLogging)
}

func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if rootVerbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
