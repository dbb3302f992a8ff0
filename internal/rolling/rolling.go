// Package rolling computes windowed ITH features over a NAV series. Every
// output channel is normalized to [0, 1] so the arrays can feed sequence
// models directly; entries before the first full window are NaN, a
// deliberate insufficient-data sentinel for downstream consumers.
package rolling

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/sawpanic/ithscan/internal/ith"
	"github.com/sawpanic/ithscan/internal/metrics"
)

// Features holds the rolling feature channels, each of the input length.
type Features struct {
	BullEpochDensity []float64
	BearEpochDensity []float64
	BullExcessGain   []float64
	BearExcessGain   []float64
	BullCV           []float64
	BearCV           []float64
	MaxDrawdown      []float64
	MaxRunup         []float64
}

func newFeatures(n int) *Features {
	nan := func() []float64 {
		s := make([]float64, n)
		for i := range s {
			s[i] = math.NaN()
		}
		return s
	}
	return &Features{
		BullEpochDensity: nan(),
		BearEpochDensity: nan(),
		BullExcessGain:   nan(),
		BearExcessGain:   nan(),
		BullCV:           nan(),
		BearCV:           nan(),
		MaxDrawdown:      nan(),
		MaxRunup:         nan(),
	}
}

// minHurdle floors the per-window hurdle at machine epsilon so flat windows
// do not divide by a zero threshold downstream.
const minHurdle = 2.220446049250313e-16

// Compute derives rolling ITH features over lookback-sized windows of nav.
//
// Each window is renormalized to start at 1.0, then scanned with per-window
// hurdles taken from the window's own extremes: the bull hurdle is its max
// drawdown, the bear hurdle its max runup. Epochs therefore register only
// when a move beats the worst adverse move the window has shown.
//
// lookback must be in [1, len(nav)].
func Compute(nav []float64, lookback int) (*Features, error) {
	if lookback < 1 {
		return nil, fmt.Errorf("rolling: lookback must be positive, got %d", lookback)
	}
	if lookback > len(nav) {
		return nil, fmt.Errorf("rolling: lookback %d exceeds series length %d", lookback, len(nav))
	}

	n := len(nav)
	features := newFeatures(n)
	skipped := 0

	window := make([]float64, lookback)
	for i := lookback - 1; i < n; i++ {
		first := nav[i+1-lookback]
		if first <= 0 || math.IsNaN(first) || math.IsInf(first, 0) {
			skipped++
			continue
		}
		for j := range window {
			window[j] = nav[i+1-lookback+j] / first
		}

		bullHurdle := math.Max(metrics.MaxDrawdown(window), minHurdle)
		bearHurdle := math.Max(metrics.MaxRunup(window), minHurdle)

		bull := ith.Bull(window, bullHurdle)
		bear := ith.Bear(window, bearHurdle)

		features.BullEpochDensity[i] = NormalizeEpochs(bull.EpochCount, lookback)
		features.BearEpochDensity[i] = NormalizeEpochs(bear.EpochCount, lookback)
		features.BullExcessGain[i] = NormalizeExcess(sum(bull.ExcessGains))
		features.BearExcessGain[i] = NormalizeExcess(sum(bear.ExcessGains))
		features.BullCV[i] = NormalizeCV(bull.IntervalsCV)
		features.BearCV[i] = NormalizeCV(bear.IntervalsCV)
		features.MaxDrawdown[i] = NormalizeDrawdown(metrics.MaxDrawdown(window))
		features.MaxRunup[i] = NormalizeRunup(metrics.MaxRunup(window))
	}

	if skipped > 0 {
		log.Warn().Int("windows", skipped).Msg("rolling: skipped windows with invalid leading value")
	}
	log.Debug().Int("points", n).Int("lookback", lookback).Msg("rolling ITH features computed")

	return features, nil
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
