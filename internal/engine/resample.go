// Package engine implements the fractional resampler that retimes a signal
// with a band-limited half-kernel.
//
// Each output sample sits at a phase in [0, 1) of the source period. The
// sample is a weighted sum of source samples on both sides of that phase,
// with weights read from the half-kernel at a stride of Resolution taps per
// source sample. When the target is shorter than the source the stride
// shrinks by T/S, widening the kernel to keep the output band-limited. The
// sum is divided by the total weight visited, so the gain stays at unity
// whatever the sub-sample phase.
package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-bandlimited/internal/kernel"
)

var (
	// ErrInvalidConfig is returned for a request that cannot be resampled.
	ErrInvalidConfig = errors.New("invalid resample request")

	// ErrZeroWeight is returned when the kernel contributes no weight at some
	// output phase, leaving the normalization undefined.
	ErrZeroWeight = errors.New("kernel weight sum is zero")
)

// TapInterpolation selects how the kernel is read between stored taps.
type TapInterpolation int

const (
	// TapNearest reads the stored tap at or below the kernel position.
	TapNearest TapInterpolation = iota
	// TapLinear interpolates linearly between the two nearest taps.
	TapLinear
	// TapHermite uses 4-point Hermite interpolation across the nearest taps.
	TapHermite
)

// String returns the interpolation name.
func (ti TapInterpolation) String() string {
	switch ti {
	case TapNearest:
		return "nearest"
	case TapLinear:
		return "linear"
	case TapHermite:
		return "hermite"
	default:
		return fmt.Sprintf("TapInterpolation(%d)", int(ti))
	}
}

// Request describes one resampling job.
type Request struct {
	// Source is the signal to resample. It is never modified.
	Source []float64

	// TargetLength is the number of output samples per source period.
	TargetLength int

	// Kernel is the half-kernel; its Resolution is the oversampling factor.
	Kernel kernel.HalfKernel

	// Periodic wraps source indices around the period. Otherwise the source
	// is treated as zero-padded.
	Periodic bool

	// Taps selects how the kernel is read between stored taps.
	Taps TapInterpolation

	// Periods is the number of output periods to render. Zero means one.
	Periods int
}

// Validate checks the request.
func (r Request) Validate() error {
	if err := r.Kernel.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if r.TargetLength <= 0 {
		return fmt.Errorf("%w: target length %d must be positive", ErrInvalidConfig, r.TargetLength)
	}
	if len(r.Source) == 0 {
		return fmt.Errorf("%w: empty source", ErrInvalidConfig)
	}
	if r.Periods < 0 {
		return fmt.Errorf("%w: periods %d must not be negative", ErrInvalidConfig, r.Periods)
	}
	if r.Taps < TapNearest || r.Taps > TapHermite {
		return fmt.Errorf("%w: unknown tap interpolation %d", ErrInvalidConfig, int(r.Taps))
	}
	return nil
}

func (r Request) outputLength() int {
	periods := r.Periods
	if periods == 0 {
		periods = 1
	}
	return r.TargetLength * periods
}

// Result is the resampled signal plus diagnostics.
type Result struct {
	Samples []float64

	// MaxTaps is the largest number of kernel taps visited for any output
	// sample.
	MaxTaps int
}

// Resample retimes the source to TargetLength samples per period.
func Resample(req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	out := make([]float64, req.outputLength())
	maxTaps, err := render(req, out, 0, 0)
	if err != nil {
		return Result{}, err
	}
	return Result{Samples: out, MaxTaps: maxTaps}, nil
}

// render fills out with output samples first, first+1, ... starting at the
// given phase, advancing the phase by 1/T per sample.
func render(req Request, out []float64, first int, phase float64) (int, error) {
	source := len(req.Source)
	step := filterStep(req.Kernel.Resolution, source, float64(req.TargetLength))
	phaseStep := 1 / float64(req.TargetLength)
	w := wing{src: req.Source, periodic: req.Periodic, taps: req.Kernel.Taps, mode: req.Taps}

	var maxTaps int
	for j := range out {
		value, taps, err := w.evaluate(phase, step)
		if err != nil {
			return 0, fmt.Errorf("%w: output %d at phase %.9f, kernel length %d",
				err, first+j, phase, len(req.Kernel.Taps))
		}
		out[j] = value
		maxTaps = max(maxTaps, taps)

		phase += phaseStep
		if phase >= 1 {
			phase--
		}
	}
	return maxTaps, nil
}

// SampleAt evaluates one periodic output sample at the given phase of a
// source resampled to the given period, the way a lookup table would at
// audio rate. The phase is wrapped into [0, 1).
func SampleAt(source []float64, phase, period float64, k kernel.HalfKernel, taps TapInterpolation) (float64, error) {
	if err := k.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if len(source) == 0 {
		return 0, fmt.Errorf("%w: empty source", ErrInvalidConfig)
	}
	if !(period > 0) {
		return 0, fmt.Errorf("%w: period %g must be positive", ErrInvalidConfig, period)
	}

	phase -= math.Floor(phase)
	w := wing{src: source, periodic: true, taps: k.Taps, mode: taps}
	value, _, err := w.evaluate(phase, filterStep(k.Resolution, len(source), period))
	if err != nil {
		return 0, fmt.Errorf("%w: phase %.9f, period %g, kernel length %d", err, phase, period, len(k.Taps))
	}
	return value, nil
}

// filterStep is the kernel stride per source sample: the kernel resolution,
// scaled down by target/source when downsampling.
func filterStep(resolution, source int, target float64) float64 {
	step := float64(resolution)
	if ratio := target / float64(source); ratio < 1 {
		step *= ratio
	}
	return step
}
