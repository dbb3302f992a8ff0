// Package analysis wires the ITH detectors, epoch statistics and fitness
// metrics into a single qualification report for one NAV series.
package analysis

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sawpanic/ithscan/internal/config"
	"github.com/sawpanic/ithscan/internal/ith"
	"github.com/sawpanic/ithscan/internal/metrics"
)

// Report is the analysis output for one NAV series.
type Report struct {
	UID         string          `json:"uid"`
	Method      ith.TMAEGMethod `json:"tmaeg_method"`
	BullHurdle  float64         `json:"bull_hurdle"`
	BearHurdle  float64         `json:"bear_hurdle"`
	BullEpochs  int             `json:"bull_epochs"`
	BearEpochs  int             `json:"bear_epochs"`
	BullCV      ith.IntervalCV  `json:"bull_intervals_cv"`
	BearCV      ith.IntervalCV  `json:"bear_intervals_cv"`
	BullIndices []int           `json:"bull_epoch_indices"`
	BearIndices []int           `json:"bear_epoch_indices"`
	MaxRunup    float64         `json:"max_runup"`
	Qualified   bool            `json:"qualified"`

	Fitness metrics.FitnessMetrics `json:"fitness"`
}

// Run analyzes nav under cfg: resolves the hurdles, executes both
// detectors, and derives the fitness summary and qualification verdict.
//
// Qualification is long-side: the bull pass must register at least
// MinEpochs epochs and, when defined, the bull interval CV must not exceed
// MaxIntervalsCV (irregular epoch spacing indicates luck rather than a
// persistent edge).
func Run(nav []float64, cfg config.Analysis) Report {
	method := ith.TMAEGMethod(cfg.TMAEGMethod)
	bullHurdle := ith.DetermineTMAEG(nav, method, cfg.Hurdle)
	bearHurdle := ith.DetermineTMAER(nav, method, cfg.Hurdle)

	bull := ith.Bull(nav, bullHurdle)
	bear := ith.Bear(nav, bearHurdle)

	qualified := bull.EpochCount >= cfg.MinEpochs &&
		(!bull.IntervalsCV.Defined || bull.IntervalsCV.Value <= cfg.MaxIntervalsCV)

	report := Report{
		UID:         uuid.NewString(),
		Method:      method,
		BullHurdle:  bullHurdle,
		BearHurdle:  bearHurdle,
		BullEpochs:  bull.EpochCount,
		BearEpochs:  bear.EpochCount,
		BullCV:      bull.IntervalsCV,
		BearCV:      bear.IntervalsCV,
		BullIndices: bull.EpochIndices(),
		BearIndices: bear.EpochIndices(),
		MaxRunup:    metrics.MaxRunup(nav),
		Qualified:   qualified,
		Fitness:     metrics.Fitness(nav, cfg.PeriodsPerYear),
	}

	log.Debug().
		Str("uid", report.UID).
		Int("bull_epochs", report.BullEpochs).
		Int("bear_epochs", report.BearEpochs).
		Bool("qualified", report.Qualified).
		Msg("ith analysis complete")

	return report
}
