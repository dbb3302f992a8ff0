// Package metrics provides single-pass reductions over NAV series: extremum
// statistics (max drawdown, max runup) and strategy fitness measures.
package metrics

import (
	"encoding/json"
	"math"
)

// FitnessMetrics summarizes a strategy's NAV series.
type FitnessMetrics struct {
	SharpeRatio float64 `json:"sharpe_ratio"`
	MaxDrawdown float64 `json:"max_drawdown"`
	TotalReturn float64 `json:"total_return"`
	TradingDays int     `json:"trading_days"`
}

// MarshalJSON emits null for an undefined Sharpe ratio instead of NaN,
// which encoding/json rejects.
func (m FitnessMetrics) MarshalJSON() ([]byte, error) {
	var sharpe *float64
	if !math.IsNaN(m.SharpeRatio) {
		sharpe = &m.SharpeRatio
	}
	return json.Marshal(struct {
		SharpeRatio *float64 `json:"sharpe_ratio"`
		MaxDrawdown float64  `json:"max_drawdown"`
		TotalReturn float64  `json:"total_return"`
		TradingDays int      `json:"trading_days"`
	}{sharpe, m.MaxDrawdown, m.TotalReturn, m.TradingDays})
}

// MaxDrawdown returns the largest peak-to-trough relative decline of nav as
// a fraction in [0, 1). It is 0 exactly when nav never falls below a prior
// value.
func MaxDrawdown(nav []float64) float64 {
	if len(nav) == 0 {
		return 0
	}

	peak := nav[0]
	maxDD := 0.0
	for _, v := range nav {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			if dd := 1 - v/peak; dd > maxDD {
				maxDD = dd
			}
		}
	}
	return maxDD
}

// MaxRunup is the symmetric counterpart of MaxDrawdown: the largest
// trough-to-peak relative rise, the adverse move for a short position.
// Bounded [0, 1); 0 exactly when nav never rises above a prior value.
func MaxRunup(nav []float64) float64 {
	if len(nav) == 0 {
		return 0
	}

	trough := nav[0]
	maxRU := 0.0
	for _, v := range nav {
		if v < trough {
			trough = v
		}
		if v > 0 && trough > 0 {
			if ru := 1 - trough/v; ru > maxRU {
				maxRU = ru
			}
		}
	}
	return maxRU
}

// ReturnsFromNAV converts a NAV series into periodic simple returns. The
// first entry is 0; a zero predecessor yields a 0 return instead of Inf.
func ReturnsFromNAV(nav []float64) []float64 {
	if len(nav) < 2 {
		return []float64{0}
	}

	returns := make([]float64, len(nav))
	for i := 1; i < len(nav); i++ {
		if nav[i-1] != 0 {
			returns[i] = (nav[i] - nav[i-1]) / nav[i-1]
		}
	}
	return returns
}

// SharpeRatio annualizes mean excess return over sample standard deviation.
// periodsPerYear is 252 for daily equities, 365 for crypto. NaN inputs are
// skipped; the result is NaN when fewer than two valid returns remain or the
// deviation is zero.
func SharpeRatio(returns []float64, periodsPerYear, riskFree float64) float64 {
	valid := make([]float64, 0, len(returns))
	for _, r := range returns {
		if !math.IsNaN(r) {
			valid = append(valid, r)
		}
	}
	if len(valid) < 2 {
		return math.NaN()
	}

	n := float64(len(valid))
	var sum float64
	for _, r := range valid {
		sum += r
	}
	mean := sum / n

	var ss float64
	for _, r := range valid {
		d := r - mean
		ss += d * d
	}
	std := math.Sqrt(ss / (n - 1))
	if std == 0 {
		return math.NaN()
	}

	return math.Sqrt(periodsPerYear) * (mean - riskFree) / std
}

// TotalReturn is the simple return from first to last NAV value.
func TotalReturn(nav []float64) float64 {
	if len(nav) < 2 || nav[0] == 0 {
		return 0
	}
	return (nav[len(nav)-1] - nav[0]) / nav[0]
}

// Fitness computes the complete fitness summary for a NAV series.
func Fitness(nav []float64, periodsPerYear float64) FitnessMetrics {
	return FitnessMetrics{
		SharpeRatio: SharpeRatio(ReturnsFromNAV(nav), periodsPerYear, 0),
		MaxDrawdown: MaxDrawdown(nav),
		TotalReturn: TotalReturn(nav),
		TradingDays: len(nav),
	}
}
