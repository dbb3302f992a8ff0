package metrics_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sawpanic/ithscan/internal/metrics"
)

func TestMaxDrawdown(t *testing.T) {
	tests := []struct {
		name string
		nav  []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single point", []float64{100}, 0},
		{"monotone rise", []float64{100, 105, 110, 120}, 0},
		{"flat", []float64{100, 100, 100}, 0},
		{"drop after peak", []float64{1.0, 1.1, 0.9, 1.2}, 1 - 0.9/1.1},
		{"monotone fall", []float64{100, 90, 80}, 0.2},
		{"recovery keeps worst dip", []float64{100, 80, 120, 110}, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, metrics.MaxDrawdown(tt.nav), 1e-12)
		})
	}
}

func TestMaxRunup(t *testing.T) {
	tests := []struct {
		name string
		nav  []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single point", []float64{100}, 0},
		{"monotone fall", []float64{100, 90, 80}, 0},
		{"rise after trough", []float64{1.0, 0.9, 1.1, 0.8}, 1 - 0.9/1.1},
		{"monotone rise", []float64{100, 110, 125}, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, metrics.MaxRunup(tt.nav), 1e-12)
		})
	}
}

func TestMaxDrawdownRunupDuality(t *testing.T) {
	// Runup of a series equals the drawdown of its reciprocal.
	nav := []float64{100, 92, 97, 88, 95, 104, 99, 110}

	recip := make([]float64, len(nav))
	for i, v := range nav {
		recip[i] = 1 / v
	}

	assert.InDelta(t, metrics.MaxRunup(nav), metrics.MaxDrawdown(recip), 1e-12)
}

func TestReturnsFromNAV(t *testing.T) {
	t.Run("short series", func(t *testing.T) {
		assert.Equal(t, []float64{0}, metrics.ReturnsFromNAV(nil))
		assert.Equal(t, []float64{0}, metrics.ReturnsFromNAV([]float64{100}))
	})

	t.Run("simple returns with zero baseline", func(t *testing.T) {
		got := metrics.ReturnsFromNAV([]float64{100, 110, 99})
		require.Len(t, got, 3)
		assert.Equal(t, 0.0, got[0])
		assert.InDelta(t, 0.10, got[1], 1e-12)
		assert.InDelta(t, -0.10, got[2], 1e-12)
	})

	t.Run("zero predecessor yields zero not inf", func(t *testing.T) {
		got := metrics.ReturnsFromNAV([]float64{0, 100, 110})
		assert.Equal(t, 0.0, got[1])
		assert.InDelta(t, 0.10, got[2], 1e-12)
	})
}

func TestSharpeRatio(t *testing.T) {
	t.Run("undefined cases", func(t *testing.T) {
		assert.True(t, math.IsNaN(metrics.SharpeRatio(nil, 365, 0)))
		assert.True(t, math.IsNaN(metrics.SharpeRatio([]float64{0.01}, 365, 0)))
		assert.True(t, math.IsNaN(metrics.SharpeRatio([]float64{0.01, 0.01, 0.01}, 365, 0)),
			"zero deviation")
		assert.True(t, math.IsNaN(metrics.SharpeRatio(
			[]float64{math.NaN(), 0.02, math.NaN()}, 365, 0)),
			"one valid return after NaN filtering")
	})

	t.Run("positive drift", func(t *testing.T) {
		got := metrics.SharpeRatio([]float64{0.01, 0.02, 0.01, 0.02}, 252, 0)
		assert.False(t, math.IsNaN(got))
		assert.Greater(t, got, 0.0)
	})

	t.Run("nan entries are skipped", func(t *testing.T) {
		clean := metrics.SharpeRatio([]float64{0.01, 0.02, -0.01}, 365, 0)
		withNaN := metrics.SharpeRatio(
			[]float64{0.01, math.NaN(), 0.02, -0.01}, 365, 0)
		assert.InDelta(t, clean, withNaN, 1e-12)
	})

	t.Run("risk free rate lowers the ratio", func(t *testing.T) {
		returns := []float64{0.01, 0.02, 0.015, 0.005}
		base := metrics.SharpeRatio(returns, 365, 0)
		adjusted := metrics.SharpeRatio(returns, 365, 0.005)
		assert.Less(t, adjusted, base)
	})
}

func TestTotalReturn(t *testing.T) {
	assert.Equal(t, 0.0, metrics.TotalReturn(nil))
	assert.Equal(t, 0.0, metrics.TotalReturn([]float64{100}))
	assert.Equal(t, 0.0, metrics.TotalReturn([]float64{0, 50}))
	assert.InDelta(t, 0.2, metrics.TotalReturn([]float64{100, 90, 120}), 1e-12)
	assert.InDelta(t, -0.25, metrics.TotalReturn([]float64{100, 110, 75}), 1e-12)
}

func TestFitness(t *testing.T) {
	nav := []float64{100, 102, 101, 104, 103, 107}

	got := metrics.Fitness(nav, 365)

	assert.Equal(t, len(nav), got.TradingDays)
	assert.InDelta(t, 0.07, got.TotalReturn, 1e-12)
	assert.InDelta(t, metrics.MaxDrawdown(nav), got.MaxDrawdown, 1e-12)
	assert.False(t, math.IsNaN(got.SharpeRatio))
}

func TestFitnessMetricsJSON(t *testing.T) {
	t.Run("nan sharpe marshals to null", func(t *testing.T) {
		m := metrics.FitnessMetrics{
			SharpeRatio: math.NaN(),
			MaxDrawdown: 0.1,
			TotalReturn: 0.05,
			TradingDays: 10,
		}

		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"sharpe_ratio":null,"max_drawdown":0.1,"total_return":0.05,"trading_days":10}`,
			string(data))
	})

	t.Run("finite sharpe marshals to number", func(t *testing.T) {
		m := metrics.FitnessMetrics{SharpeRatio: 1.5, TradingDays: 3}

		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"sharpe_ratio":1.5`)
	})
}
