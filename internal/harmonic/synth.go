// Package harmonic synthesizes alias-free periodic waveforms by summing
// harmonics below Nyquist.
//
// A waveform is described by a Spec: its Kind selects the gain law, Size is
// the table length and Harmonics caps the harmonic count. Synthesize places
// the gains in a half spectrum and inverse-transforms it; SynthesizeDirect
// evaluates the same sum term by term. Both apply the optional treble
// prefilter and finish with peak normalization.
package harmonic

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/tphakala/go-bandlimited/internal/shape"
	"github.com/tphakala/go-bandlimited/internal/spectral"
)

// ErrInvalidConfig is returned for a waveform description that cannot be
// rendered.
var ErrInvalidConfig = errors.New("invalid waveform config")

// Harmonic is one partial of a waveform.
type Harmonic struct {
	Index int
	Gain  float64
}

// Spec describes a single-cycle waveform table.
type Spec struct {
	Kind Kind

	// Size is the number of samples in one period.
	Size int

	// Harmonics caps the number of partials. Zero or negative means every
	// harmonic below Nyquist.
	Harmonics int

	// Duty is the pulse width in (0, 1) for KindPulse. Zero selects 0.5.
	Duty float64

	// Prefilter applies the treble-boosting prefilter before normalization.
	Prefilter bool
}

// Validate checks that the waveform can be rendered.
func (s Spec) Validate() error {
	if s.Size < minTableSize {
		return fmt.Errorf("%w: size %d (minimum %d)", ErrInvalidConfig, s.Size, minTableSize)
	}
	if !s.Kind.Valid() {
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidConfig, int(s.Kind))
	}
	if s.Kind == KindPulse && s.Duty != 0 && (s.Duty <= 0 || s.Duty >= 1) {
		return fmt.Errorf("%w: pulse duty %g outside (0, 1)", ErrInvalidConfig, s.Duty)
	}
	return nil
}

func (s Spec) duty() float64 {
	if s.Duty == 0 {
		return defaultDuty
	}
	return s.Duty
}

// MaxHarmonic returns the highest harmonic index rendered for a table of
// size n when h partials are requested: min(h, ceil(n/2)-1), or
// ceil(n/2)-1 when h <= 0.
func MaxHarmonic(h, n int) int {
	limit := (n+1)/2 - 1
	if h <= 0 || h > limit {
		return limit
	}
	return h
}

// Set returns the non-zero partials of the waveform, lowest first.
func Set(spec Spec) ([]Harmonic, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	top := MaxHarmonic(spec.Harmonics, spec.Size)
	set := make([]Harmonic, 0, top)
	for n := 1; n <= top; n++ {
		if spec.Kind.oddOnly() && n%2 == 0 {
			continue
		}
		gain := spec.Kind.Gain(n, spec.duty())
		if gain == 0 {
			continue
		}
		set = append(set, Harmonic{Index: n, Gain: gain})
	}
	return set, nil
}

// Synthesize renders one period of the waveform with an inverse real FFT.
func Synthesize(spec Spec) ([]float64, error) {
	set, err := Set(spec)
	if err != nil {
		return nil, err
	}

	n := spec.Size
	coeff := make([]complex128, n/2+1)
	for _, h := range set {
		// A real inverse transform of bin c yields 2·Re(c·e^{iθ}).
		if spec.Kind.Basis() == BasisCosine {
			coeff[h.Index] = complex(h.Gain/2, 0)
		} else {
			coeff[h.Index] = complex(0, -h.Gain/2)
		}
	}

	wave := fourier.NewFFT(n).Sequence(nil, coeff)
	return finish(wave, spec)
}

// SynthesizeDirect renders the same waveform as Synthesize by evaluating the
// sum of partials at every sample.
func SynthesizeDirect(spec Spec) ([]float64, error) {
	set, err := Set(spec)
	if err != nil {
		return nil, err
	}

	n := spec.Size
	basis := math.Sin
	if spec.Kind.Basis() == BasisCosine {
		basis = math.Cos
	}

	wave := make([]float64, n)
	for j := range wave {
		t := 2 * math.Pi * float64(j) / float64(n)
		var sum float64
		for _, h := range set {
			sum += h.Gain * basis(float64(h.Index)*t)
		}
		wave[j] = sum
	}
	return finish(wave, spec)
}

// Prefilter returns the 17-tap symmetric treble prefilter.
func Prefilter() []float64 {
	return shape.SymmetricFromLeft(prefilterLeft)
}

// ApplyPrefilter convolves one period of a waveform with the prefilter,
// wrapping around the period boundary.
func ApplyPrefilter(wave []float64) []float64 {
	return spectral.CircularConvolve(wave, Prefilter())
}

func finish(wave []float64, spec Spec) ([]float64, error) {
	if spec.Prefilter {
		wave = ApplyPrefilter(wave)
	}
	out, err := shape.PeakNormalize(wave)
	if err != nil {
		return nil, fmt.Errorf("%w: %s of size %d has no partials", ErrInvalidConfig, spec.Kind, spec.Size)
	}
	return out, nil
}
