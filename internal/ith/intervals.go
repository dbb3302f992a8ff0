package ith

import "math"

// Stats aggregates a detector's epoch flags into count, density and the
// interval coefficient of variation.
type Stats struct {
	EpochCount  int        `json:"epoch_count"`
	Density     float64    `json:"density"`
	IntervalsCV IntervalCV `json:"intervals_cv"`
}

// EpochStats reduces a flag array to epoch statistics. Intervals are the
// successive differences of the true-flag indices with index 0 prefixed as
// the baseline; the CV is the population standard deviation over the mean.
// It stays undefined unless at least one interval with a positive mean
// exists.
func EpochStats(epochs []bool) Stats {
	n := len(epochs)

	indices := []int{0}
	for i, ep := range epochs {
		if ep {
			indices = append(indices, i)
		}
	}

	stats := Stats{EpochCount: len(indices) - 1}
	if n > 0 {
		stats.Density = float64(stats.EpochCount) / float64(n)
	}
	if len(indices) < 2 {
		return stats
	}

	intervals := make([]float64, len(indices)-1)
	var sum float64
	for k := 1; k < len(indices); k++ {
		intervals[k-1] = float64(indices[k] - indices[k-1])
		sum += intervals[k-1]
	}

	mean := sum / float64(len(intervals))
	if mean <= 0 {
		return stats
	}

	var ss float64
	for _, iv := range intervals {
		d := iv - mean
		ss += d * d
	}
	std := math.Sqrt(ss / float64(len(intervals)))

	stats.IntervalsCV = IntervalCV{Value: std / mean, Defined: true}
	return stats
}
