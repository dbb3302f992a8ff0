package rolling

import (
	"math"

	"github.com/sawpanic/ithscan/internal/ith"
)

// Bounded normalizers for the rolling feature channels. All transforms are
// monotonic, parameter-free with respect to the data, and map their natural
// input ranges into [0, 1]. Sigmoid centers and scales are chosen so typical
// input ranges occupy discriminable output space.

// NormalizeEpochs maps an epoch count to (0, 1) via a logistic sigmoid of
// the epoch density. density=0 lands near 0.007, density=0.5 at exactly 0.5,
// density=1 near 0.993.
func NormalizeEpochs(epochs, lookback int) float64 {
	if lookback == 0 {
		return 0.5
	}
	density := float64(epochs) / float64(lookback)
	return sigmoid(density, 0.5, 10)
}

// NormalizeExcess maps a summed excess gain or loss to [0, 1) with tanh.
// The scale of 5 spreads the typical 0-20% range over most of [0, 0.8]:
// 1% -> 0.05, 5% -> 0.24, 10% -> 0.46, 20% -> 0.76.
func NormalizeExcess(value float64) float64 {
	return math.Tanh(math.Abs(value) * 5)
}

// NormalizeCV maps an interval CV to (0, 1). The sigmoid is centered at
// CV=0.5, a moderate regularity; CV=0 means perfectly regular intervals and
// CV>1 is very irregular. An undefined CV (no epochs) is treated as 0,
// which keeps it distinguishable from mid-range real values.
func NormalizeCV(cv ith.IntervalCV) float64 {
	value := 0.0
	if cv.Defined {
		value = cv.Value
	}
	return sigmoid(value, 0.5, 4)
}

// NormalizeDrawdown clamps a drawdown fraction to [0, 1]; the measure is
// bounded by construction, the clamp only absorbs numeric noise.
func NormalizeDrawdown(drawdown float64) float64 {
	return clamp01(drawdown)
}

// NormalizeRunup clamps a runup fraction to [0, 1].
func NormalizeRunup(runup float64) float64 {
	return clamp01(runup)
}

// sigmoid is the logistic function 1 / (1 + exp(-(x-center)*scale)); center
// maps to exactly 0.5, scale controls steepness.
func sigmoid(x, center, scale float64) float64 {
	return 1 / (1 + math.Exp(-(x-center)*scale))
}

func clamp01(x float64) float64 {
	return math.Min(1, math.Max(0, x))
}
