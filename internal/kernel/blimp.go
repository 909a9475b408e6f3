// Package kernel builds the band-limited kernels used for interpolation and
// discontinuity correction: the windowed-sinc BLIMP (band-limited impulse)
// in preset or custom quality profiles, and the minimum-phase minBLEP step.
package kernel

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-bandlimited/internal/filter"
	"github.com/tphakala/go-bandlimited/internal/mathutil"
	"github.com/tphakala/go-bandlimited/internal/spectral"
)

// ErrInvalidConfig is returned for kernel parameters that cannot produce a
// usable kernel.
var ErrInvalidConfig = errors.New("invalid kernel config")

// Params describes a BLIMP kernel.
type Params struct {
	// Intervals is the kernel span in source samples. Forced odd.
	Intervals int

	// Resolution is the number of taps per source sample. Forced odd.
	Resolution int

	// SampleRate and Cutoff set the passband edge: the sinc is evaluated at
	// 2·Cutoff/SampleRate times the axis in source samples.
	SampleRate float64
	Cutoff     float64

	// Beta shapes the Kaiser taper. When zero, it is derived from
	// Attenuation.
	Beta float64

	// Attenuation is the desired taper stopband in dB, used only when Beta
	// is zero.
	Attenuation float64

	// ApodizationGain and ApodizationBeta shape the apodization window
	// 1 - gain·Kaiser(beta).
	ApodizationGain float64
	ApodizationBeta float64

	// SelfConvolve convolves the windowed sinc with itself (same-length
	// mode) before normalization. Only long kernels benefit: the result is
	// truncated to the original span.
	SelfConvolve bool
}

// Validate checks the parameters.
func (p Params) Validate() error {
	if p.Intervals <= 0 {
		return fmt.Errorf("%w: intervals %d must be positive", ErrInvalidConfig, p.Intervals)
	}
	if p.Resolution <= 0 {
		return fmt.Errorf("%w: resolution %d must be positive", ErrInvalidConfig, p.Resolution)
	}
	if p.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %g must be positive", ErrInvalidConfig, p.SampleRate)
	}
	if p.Cutoff <= 0 || p.Cutoff > p.SampleRate/nyquistDivisor {
		return fmt.Errorf("%w: cutoff %g Hz outside (0, %g]", ErrInvalidConfig, p.Cutoff, p.SampleRate/nyquistDivisor)
	}
	if p.Beta < 0 || p.Attenuation < 0 || p.ApodizationBeta < 0 {
		return fmt.Errorf("%w: negative window shape (beta %g, attenuation %g, apodization beta %g)",
			ErrInvalidConfig, p.Beta, p.Attenuation, p.ApodizationBeta)
	}
	if p.ApodizationGain < 0 || p.ApodizationGain >= 1 {
		return fmt.Errorf("%w: apodization gain %g outside [0, 1)", ErrInvalidConfig, p.ApodizationGain)
	}
	return nil
}

func (p Params) beta() float64 {
	if p.Beta == 0 {
		return mathutil.KaiserBeta(p.Attenuation)
	}
	return p.Beta
}

// Blimp is a built kernel in both full and half form.
type Blimp struct {
	// Full is the symmetric kernel of length Intervals*Resolution.
	Full []float64
	// Half is Full from the centre tap onwards.
	Half HalfKernel
}

// BuildBlimp builds a windowed-sinc interpolation kernel.
//
// The kernel has n = Intervals*Resolution taps (both forced odd, so n is odd
// with an exact centre c). Tap k sits at t = (k-c)/Resolution source samples
// and holds sinc(2·Cutoff/SampleRate·t) times the Kaiser taper and the
// apodization window. The result is scaled so that the taps at whole-sample
// offsets from the centre sum to exactly 1.
func BuildBlimp(p Params) (Blimp, error) {
	if err := p.Validate(); err != nil {
		return Blimp{}, err
	}

	intervals := mathutil.Odd(p.Intervals)
	res := mathutil.Odd(p.Resolution)
	n := intervals * res
	center := (n - 1) / nyquistDivisor

	pair := filter.NewKaiserPair(n, p.beta(), p.ApodizationGain, p.ApodizationBeta)
	window, err := pair.Product()
	if err != nil {
		return Blimp{}, err
	}

	scale := nyquistDivisor * p.Cutoff / p.SampleRate
	full := make([]float64, n)
	for k := range full {
		t := float64(k-center) / float64(res)
		full[k] = mathutil.Sinc(scale*t) * window[k]
	}

	if p.SelfConvolve {
		full = spectral.Convolve(full, full, spectral.ModeSame)
	}

	full, err = normalizeDC(full, center, res)
	if err != nil {
		return Blimp{}, fmt.Errorf("%w: intervals %d, resolution %d, cutoff %g Hz",
			err, intervals, res, p.Cutoff)
	}

	half := make([]float64, n-center)
	copy(half, full[center:])

	return Blimp{
		Full: full,
		Half: HalfKernel{Taps: half, Resolution: res, Intervals: intervals},
	}, nil
}

// PhaseDC returns the response of the kernel to a constant-1 input at the
// given sub-sample phase: the sum of taps at whole-sample offsets from
// centre+phase.
func PhaseDC(full []float64, center, res, phase int) float64 {
	var sum float64
	for k := center + phase; k < len(full); k += res {
		sum += full[k]
	}
	for k := center + phase - res; k >= 0; k -= res {
		sum += full[k]
	}
	return sum
}

func normalizeDC(full []float64, center, res int) ([]float64, error) {
	dc := PhaseDC(full, center, res, 0)
	if dc == 0 {
		return nil, fmt.Errorf("%w: zero DC response at centre phase", ErrInvalidConfig)
	}

	out := make([]float64, len(full))
	for i, v := range full {
		out[i] = v / dc
	}

	// Division rounds per tap; pin the centre so the phase sums to 1.
	out[center] += 1 - PhaseDC(out, center, res, 0)
	return out, nil
}
