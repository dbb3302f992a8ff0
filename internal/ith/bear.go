package ith

import "math"

// Bear runs the downward-breakdown epoch detector over nav with the given
// hurdle. It is the structural mirror of Bull with crest and nadir roles
// swapped: the endorsing nadir anchors measurement, the excess gain is the
// profit of a short position, and a reset re-anchors the endorsing nadir to
// the candidate low.
//
// The decline is measured multiplicatively, anchor/price - 1, the exact
// inverse of the bull's price/anchor - 1. This keeps the two detectors
// mirror-symmetric: running Bear on a series and Bull on its inversion
// around the range midpoint produces swapped epoch counts.
//
// A series shorter than two points yields an all-zero result of matching
// length. Bear never fails.
func Bear(nav []float64, hurdle float64) Result {
	n := len(nav)
	res := newResult(n)
	if n < 2 {
		return res
	}

	st := newScanState(nav[0])

	for i := 1; i < n; i++ {
		equity := nav[i-1]
		next := nav[i]

		if next < st.candidateNadir {
			st.excessGain = ratio(st.endorsingNadir, next)
			st.candidateNadir = next
		}
		if next > st.candidateCrest {
			st.excessLoss = -ratio(st.endorsingNadir, next)
			st.candidateCrest = next
		}

		reset := st.excessGain > math.Abs(st.excessLoss) &&
			st.excessGain > hurdle &&
			st.candidateNadir <= st.endorsingNadir

		if reset {
			st.endorsingNadir = st.candidateNadir
			st.endorsingCrest = equity
			st.candidateCrest = equity
		} else {
			st.endorsingCrest = math.Max(st.endorsingCrest, equity)
		}

		st.record(&res, i, hurdle, reset)
	}

	res.finish()
	return res
}
