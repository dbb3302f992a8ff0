// Package segment defines the boundary to the changepoint/segmentation
// collaborator and derives regime-break features from its output. The
// segmentation algorithm itself lives outside this repository; callers
// inject any Segmenter implementation.
package segment

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

// MinSeriesLen is the shortest NAV series the collaborator can segment,
// derived from 2 x exclusion radius x window size of the underlying
// algorithm.
const MinSeriesLen = 100

// ErrSeriesTooShort is returned when the NAV series is below MinSeriesLen.
var ErrSeriesTooShort = errors.New("nav series too short for segmentation")

// WindowMode selects how the segmenter resolves its window size.
type WindowMode string

const (
	WindowSUSS  WindowMode = "suss"
	WindowFFT   WindowMode = "fft"
	WindowACF   WindowMode = "acf"
	WindowFixed WindowMode = "fixed"
)

// Options configures one extraction call.
type Options struct {
	Window     WindowMode
	FixedSize  int    // window size when Window is WindowFixed
	Validation string // changepoint validation method
}

// DefaultOptions mirrors the collaborator's defaults.
func DefaultOptions() Options {
	return Options{
		Window:     WindowSUSS,
		Validation: "significance_test",
	}
}

// Segmentation is the collaborator's raw output: changepoint indices, the
// per-index anomaly-score profile, and the window size it resolved.
type Segmentation struct {
	ChangePoints []int
	Profile      []float64
	WindowSize   int
}

// Segmenter is the consumed collaborator interface.
type Segmenter interface {
	Segment(nav []float64, opts Options) (Segmentation, error)
}

// Features are the regime-break statistics derived from a segmentation.
type Features struct {
	NChangePoints int `json:"n_changepoints"`
	NSegments     int `json:"n_segments"`
	WindowSize    int `json:"window_size"`

	ProfileMean float64 `json:"profile_mean"`
	ProfileMax  float64 `json:"profile_max"`
	ProfileStd  float64 `json:"profile_std"`

	SegmentMeanLen float64 `json:"segment_mean_len"`
	SegmentCV      float64 `json:"segment_cv"`
	CPDensity      float64 `json:"cp_density"`

	FirstCPIdx  int `json:"first_cp_idx"`
	LastCPIdx   int `json:"last_cp_idx"`
	MaxScoreIdx int `json:"max_score_idx"`
}

// Extract runs the segmenter over nav and derives Features. The series
// length is validated before the collaborator is invoked; short input yields
// an error wrapping ErrSeriesTooShort.
func Extract(seg Segmenter, nav []float64, opts Options) (*Features, error) {
	if len(nav) < MinSeriesLen {
		return nil, fmt.Errorf("%w: %d < %d", ErrSeriesTooShort, len(nav), MinSeriesLen)
	}

	sg, err := seg.Segment(nav, opts)
	if err != nil {
		return nil, fmt.Errorf("segment nav: %w", err)
	}

	segments := segmentLengths(sg.ChangePoints, len(nav))
	mean, cv := lengthStats(segments)
	profMean, profMax, profStd := profileStats(sg.Profile)

	f := &Features{
		NChangePoints:  len(sg.ChangePoints),
		NSegments:      len(sg.ChangePoints) + 1,
		WindowSize:     sg.WindowSize,
		ProfileMean:    profMean,
		ProfileMax:     profMax,
		ProfileStd:     profStd,
		SegmentMeanLen: mean,
		SegmentCV:      cv,
		CPDensity:      float64(len(sg.ChangePoints)) / float64(len(nav)),
		FirstCPIdx:     -1,
		LastCPIdx:      -1,
		MaxScoreIdx:    maxScoreIndex(sg.Profile),
	}
	if len(sg.ChangePoints) > 0 {
		f.FirstCPIdx = sg.ChangePoints[0]
		f.LastCPIdx = sg.ChangePoints[len(sg.ChangePoints)-1]
	}
	return f, nil
}

// ExtractSafe is the fault-tolerant variant for batch callers: any
// extraction error becomes a nil result instead of aborting the batch.
func ExtractSafe(seg Segmenter, nav []float64, opts Options) *Features {
	f, err := Extract(seg, nav, opts)
	if err != nil {
		log.Debug().Err(err).Int("points", len(nav)).Msg("segment extraction skipped")
		return nil
	}
	return f
}

func segmentLengths(changePoints []int, n int) []float64 {
	if len(changePoints) == 0 {
		return []float64{float64(n)}
	}
	bounds := make([]int, 0, len(changePoints)+2)
	bounds = append(bounds, 0)
	bounds = append(bounds, changePoints...)
	bounds = append(bounds, n)

	lengths := make([]float64, len(bounds)-1)
	for i := 1; i < len(bounds); i++ {
		lengths[i-1] = float64(bounds[i] - bounds[i-1])
	}
	return lengths
}

func lengthStats(lengths []float64) (mean, cv float64) {
	var sum float64
	for _, l := range lengths {
		sum += l
	}
	mean = sum / float64(len(lengths))
	if mean <= 0 {
		return mean, math.NaN()
	}

	var ss float64
	for _, l := range lengths {
		d := l - mean
		ss += d * d
	}
	return mean, math.Sqrt(ss/float64(len(lengths))) / mean
}

// profileStats computes NaN-aware mean, max and population std of the
// anomaly-score profile.
func profileStats(profile []float64) (mean, max, std float64) {
	valid := make([]float64, 0, len(profile))
	for _, v := range profile {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return math.NaN(), math.NaN(), math.NaN()
	}

	max = math.Inf(-1)
	var sum float64
	for _, v := range valid {
		sum += v
		if v > max {
			max = v
		}
	}
	mean = sum / float64(len(valid))

	var ss float64
	for _, v := range valid {
		d := v - mean
		ss += d * d
	}
	return mean, max, math.Sqrt(ss / float64(len(valid)))
}

func maxScoreIndex(profile []float64) int {
	best := -1
	bestScore := math.Inf(-1)
	for i, v := range profile {
		if !math.IsNaN(v) && v > bestScore {
			bestScore = v
			best = i
		}
	}
	return best
}
