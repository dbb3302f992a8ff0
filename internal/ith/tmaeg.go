package ith

import "github.com/sawpanic/ithscan/internal/metrics"

// TMAEGMethod selects how the hurdle threshold is derived from the series.
type TMAEGMethod string

const (
	// TMAEGFixed uses the caller-supplied fractional threshold as-is.
	TMAEGFixed TMAEGMethod = "fixed"
	// TMAEGMaxDrawdown derives the bull hurdle from the series' own maximum
	// drawdown, so epochs trigger only when gains beat the worst adverse move.
	TMAEGMaxDrawdown TMAEGMethod = "mdd"
)

// DetermineTMAEG resolves the bull hurdle for nav. Unknown methods fall back
// to the fixed value.
func DetermineTMAEG(nav []float64, method TMAEGMethod, fixed float64) float64 {
	if method == TMAEGMaxDrawdown {
		return metrics.MaxDrawdown(nav)
	}
	return fixed
}

// DetermineTMAER resolves the bear hurdle, the short-side analogue: under
// the drawdown method the adverse move for a short is the maximum runup.
func DetermineTMAER(nav []float64, method TMAEGMethod, fixed float64) float64 {
	if method == TMAEGMaxDrawdown {
		return metrics.MaxRunup(nav)
	}
	return fixed
}
