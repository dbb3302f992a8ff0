package ith_test

// Hand-calibrated NAV fixtures. Expected epoch indices were verified by
// stepping the scan by hand; several encode boundary behavior (the
// zigzag-down day-11 epoch sits exactly on the hurdle and registers only
// because the float ratio lands marginally above it).
type navCase struct {
	name     string
	nav      []float64
	hurdle   float64
	wantBull []int
	wantBear []int
}

var navCases = []navCase{
	{
		name: "pure decline",
		nav: []float64{100, 98.5, 97, 99, 96.5, 94, 95.5, 92,
			90, 88, 85, 83, 80},
		hurdle:   0.05,
		wantBull: []int{},
		wantBear: []int{5, 9, 11},
	},
	{
		name: "pure rally",
		nav: []float64{100, 102, 104.5, 103, 106, 108.5, 107, 110,
			113, 111.5, 115, 118, 120},
		hurdle:   0.05,
		wantBull: []int{4, 8, 12},
		wantBear: []int{},
	},
	{
		name:     "v recovery",
		nav:      []float64{100, 95, 90, 85, 88, 92, 96, 100, 103},
		hurdle:   0.05,
		wantBull: []int{},
		wantBear: []int{1, 2, 3},
	},
	{
		name: "zigzag down",
		nav: []float64{100, 97, 94, 96, 93, 90, 92.5, 89,
			86, 88, 84, 80},
		hurdle:   0.05,
		wantBull: []int{},
		wantBear: []int{2, 7, 10, 11},
	},
	{
		name: "zigzag up",
		nav: []float64{100, 103, 106, 104, 107, 110, 108, 112,
			116, 114, 118, 122},
		hurdle:   0.05,
		wantBull: []int{2, 7, 10},
		wantBear: []int{},
	},
	{
		name: "flat chop",
		nav: []float64{100, 101, 99.5, 100.5, 99, 100.2, 99.8, 100.3,
			99.7, 100.1, 99.9, 100},
		hurdle:   0.05,
		wantBull: []int{},
		wantBear: []int{},
	},
	{
		name:     "crash with dead cat bounce",
		nav:      []float64{100, 92, 85, 80, 86, 88, 82, 75, 70},
		hurdle:   0.05,
		wantBull: []int{},
		wantBear: []int{1, 2, 3, 8},
	},
	{
		name: "realistic low volatility",
		nav: []float64{
			1000000.00, 999243.71, 995245.88, 999479.32, 1002259.82,
			1001696.80, 1004082.15, 1005438.37, 1009837.56, 1004579.17,
			1005350.70, 1010882.14, 1013760.97, 1013422.41, 1015956.16,
			1020303.82, 1017128.50, 1023367.31, 1023868.23, 1022348.99,
		},
		hurdle:   0.02,
		wantBull: []int{15},
		wantBear: []int{},
	},
	{
		name:     "uptrend with pullbacks",
		nav:      []float64{100, 105, 103, 108, 106, 112, 110, 115},
		hurdle:   0.05,
		wantBull: []int{1, 5},
		wantBear: []int{},
	},
	{
		name:     "gain exactly on hurdle",
		nav:      []float64{100, 105, 104, 109.2},
		hurdle:   0.05,
		wantBull: []int{1},
		wantBear: []int{},
	},
}

// mirror reflects nav around the midpoint of its range: m' = 2c - m with
// c = (max+min)/2.
func mirror(nav []float64) []float64 {
	if len(nav) == 0 {
		return nil
	}
	lo, hi := nav[0], nav[0]
	for _, v := range nav {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	out := make([]float64, len(nav))
	for i, v := range nav {
		out[i] = (hi + lo) - v
	}
	return out
}

// compoundWalk returns n bars of steady compound growth at the given rate.
func compoundWalk(n int, rate float64) []float64 {
	nav := make([]float64, n)
	value := 1.0
	for i := 0; i < n; i++ {
		nav[i] = value
		value *= 1 + rate
	}
	return nav
}
