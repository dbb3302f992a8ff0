// Package ith implements Investment Time Horizon (ITH) epoch detection over
// NAV series. An epoch is a time index at which a confirmed favorable move
// exceeds the hurdle threshold; Bull detects upward breakouts, Bear detects
// downward breakdowns for short exposure. Both are stateless single passes:
// every call owns its scan state, so independent series can be processed in
// parallel with no coordination.
package ith

import "encoding/json"

// IntervalCV is the coefficient of variation of the gaps between consecutive
// epochs. It is explicitly optional: Defined is false when fewer than one
// positive-mean interval exists, so callers branch on presence instead of
// comparing against NaN.
type IntervalCV struct {
	Value   float64
	Defined bool
}

// MarshalJSON emits the value, or null when undefined.
func (cv IntervalCV) MarshalJSON() ([]byte, error) {
	if !cv.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(cv.Value)
}

// UnmarshalJSON accepts a number or null.
func (cv *IntervalCV) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*cv = IntervalCV{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*cv = IntervalCV{Value: v, Defined: true}
	return nil
}

// Result holds the per-step excess move arrays and epoch flags produced by a
// detector pass. All slices have the same length as the input NAV series,
// ExcessGains and ExcessLosses are non-negative (losses are magnitudes), and
// Epochs[0] is always false.
type Result struct {
	ExcessGains  []float64  `json:"excess_gains"`
	ExcessLosses []float64  `json:"excess_losses"`
	Epochs       []bool     `json:"epochs"`
	EpochCount   int        `json:"epoch_count"`
	IntervalsCV  IntervalCV `json:"intervals_cv"`
}

// EpochIndices returns the indices of all true epoch flags.
func (r Result) EpochIndices() []int {
	idx := make([]int, 0, r.EpochCount)
	for i, ep := range r.Epochs {
		if ep {
			idx = append(idx, i)
		}
	}
	return idx
}

func newResult(n int) Result {
	return Result{
		ExcessGains:  make([]float64, n),
		ExcessLosses: make([]float64, n),
		Epochs:       make([]bool, n),
	}
}

// finish fills the derived statistics once the scan has recorded all flags.
func (r *Result) finish() {
	stats := EpochStats(r.Epochs)
	r.EpochCount = stats.EpochCount
	r.IntervalsCV = stats.IntervalsCV
}

// scanState carries the reference extrema for one detector pass. The
// endorsing pair anchors excess-move measurement, the candidate pair tracks
// the provisional extrema since the last reset. All four start at nav[0] and
// are discarded when the pass ends.
type scanState struct {
	endorsingCrest float64
	endorsingNadir float64
	candidateCrest float64
	candidateNadir float64
	excessGain     float64
	excessLoss     float64
}

func newScanState(anchor float64) scanState {
	return scanState{
		endorsingCrest: anchor,
		endorsingNadir: anchor,
		candidateCrest: anchor,
		candidateNadir: anchor,
	}
}

// record stores the current excess values at step i, clears them when the
// breakout was consumed by a reset, and flags the epoch.
func (st *scanState) record(r *Result, i int, hurdle float64, reset bool) {
	r.ExcessGains[i] = st.excessGain
	r.ExcessLosses[i] = st.excessLoss
	if reset {
		st.excessGain = 0
		st.excessLoss = 0
	}
	r.Epochs[i] = r.ExcessGains[i] > r.ExcessLosses[i] && r.ExcessGains[i] > hurdle
}

// ratio returns num/den - 1, or 0 when the denominator is zero. NAV is
// expected positive, but numeric drift is tolerated instead of propagating
// Inf through the arrays.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num/den - 1
}
