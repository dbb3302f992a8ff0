package ith

import "math"

// Bull runs the upward-breakout epoch detector over nav with the given
// hurdle (a positive fractional return threshold, e.g. 0.05).
//
// The pass measures excess gain and loss relative to the endorsing crest,
// the last confirmed high. A step confirms a breakout when the excess gain
// strictly exceeds both the opposing loss magnitude and the hurdle while the
// candidate crest has reached at least the endorsing crest; the reset then
// re-anchors the endorsing crest to the candidate and consumes the measured
// move. All comparisons are strictly greater-than: a move landing exactly on
// the hurdle does not break out.
//
// A series shorter than two points yields an all-zero result of matching
// length. Bull never fails.
func Bull(nav []float64, hurdle float64) Result {
	n := len(nav)
	res := newResult(n)
	if n < 2 {
		return res
	}

	st := newScanState(nav[0])

	for i := 1; i < n; i++ {
		equity := nav[i-1]
		next := nav[i]

		if next > st.candidateCrest {
			st.excessGain = ratio(next, st.endorsingCrest)
			st.candidateCrest = next
		}
		if next < st.candidateNadir {
			st.excessLoss = -ratio(next, st.endorsingCrest)
			st.candidateNadir = next
		}

		reset := st.excessGain > math.Abs(st.excessLoss) &&
			st.excessGain > hurdle &&
			st.candidateCrest >= st.endorsingCrest

		if reset {
			st.endorsingCrest = st.candidateCrest
			st.endorsingNadir = equity
			st.candidateNadir = equity
		} else {
			st.endorsingNadir = math.Min(st.endorsingNadir, equity)
		}

		st.record(&res, i, hurdle, reset)
	}

	res.finish()
	return res
}
