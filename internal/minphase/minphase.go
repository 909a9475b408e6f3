// Package minphase converts zero-phase impulses into their minimum-phase
// equivalents using the real cepstrum.
//
// The pipeline is:
//
//	c  = Re(IFFT(log|FFT(h)|))   real cepstrum
//	c' = fold(c)                 causal, minimum-phase cepstrum
//	m  = Re(IFFT(exp(FFT(c'))))  minimum-phase impulse
//
// The even part of c' equals c except, for odd lengths, the two middle
// coefficients c[n/2] and c[n/2+1], which are dropped. For any impulse whose
// cepstrum has decayed by mid-length, |FFT(m)| therefore matches |FFT(h)|
// and the output carries the same energy as the input.
package minphase

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/go-bandlimited/internal/spectral"
)

// ErrDegenerateSpectrum is returned when the log-magnitude spectrum cannot be
// formed: the input is empty, all zero, non-finite, or (in strict mode)
// contains an exactly-zero frequency bin.
var ErrDegenerateSpectrum = errors.New("degenerate spectrum")

type config struct {
	strict     bool
	floorRatio float64
}

// Option configures MinimumPhase.
type Option func(*config)

// WithStrict reports exactly-zero frequency bins as ErrDegenerateSpectrum
// instead of clamping them to the magnitude floor.
func WithStrict() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithFloorRatio sets the magnitude floor relative to the spectral peak.
// Bins quieter than peak*ratio are raised to that level before the log.
func WithFloorRatio(ratio float64) Option {
	return func(c *config) {
		if ratio > 0 && ratio < 1 {
			c.floorRatio = ratio
		}
	}
}

// MinimumPhase returns the minimum-phase version of h. The result has the
// same length as h and its energy is concentrated at the start.
func MinimumPhase(h []float64, opts ...Option) ([]float64, error) {
	cepstrum, err := RealCepstrum(h, opts...)
	if err != nil {
		return nil, err
	}
	return FromCepstrum(FoldCausal(cepstrum)), nil
}

// RealCepstrum computes Re(IFFT(log|FFT(h)|)).
func RealCepstrum(h []float64, opts ...Option) ([]float64, error) {
	cfg := config{floorRatio: defaultFloorRatio}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(h)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty impulse", ErrDegenerateSpectrum)
	}
	for i, v := range h {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite sample h[%d]=%v (n=%d)", ErrDegenerateSpectrum, i, v, n)
		}
	}

	mag := spectral.Magnitude(spectral.Forward(h))

	var peak float64
	for _, m := range mag {
		peak = math.Max(peak, m)
	}
	if peak == 0 {
		return nil, fmt.Errorf("%w: all %d frequency bins are zero", ErrDegenerateSpectrum, n)
	}

	floor := peak * cfg.floorRatio
	logMag := make([]complex128, n)
	for k, m := range mag {
		if m == 0 && cfg.strict {
			return nil, fmt.Errorf("%w: bin %d of %d has zero magnitude", ErrDegenerateSpectrum, k, n)
		}
		logMag[k] = complex(math.Log(math.Max(m, floor)), 0)
	}

	return spectral.InverseReal(logMag), nil
}

// FoldCausal folds a real cepstrum into its causal counterpart:
// c'[0] = c[0], c'[i] = 2c[i] for 1 <= i < n/2, c'[n/2] = c[n/2] when n is
// even, zero elsewhere.
func FoldCausal(c []float64) []float64 {
	n := len(c)
	folded := make([]float64, n)
	if n == 0 {
		return folded
	}
	half := n / 2

	folded[0] = c[0]
	for i := 1; i < half; i++ {
		folded[i] = 2 * c[i]
	}
	if n%2 == 0 {
		folded[half] = c[half]
	}
	return folded
}

// FromCepstrum reconstructs the time signal Re(IFFT(exp(FFT(c)))).
func FromCepstrum(c []float64) []float64 {
	spec := spectral.Forward(c)
	for k, v := range spec {
		spec[k] = cmplx.Exp(v)
	}
	return spectral.InverseReal(spec)
}
