package bandlimited

import (
	"fmt"

	"github.com/tphakala/go-bandlimited/internal/engine"
	"github.com/tphakala/go-bandlimited/internal/filter"
	"github.com/tphakala/go-bandlimited/internal/harmonic"
	"github.com/tphakala/go-bandlimited/internal/lut"
)

// Waveform selects a classic waveform shape.
type Waveform = harmonic.Kind

// Waveform shapes.
const (
	Saw          = harmonic.KindSaw
	Square       = harmonic.KindSquare
	Triangle     = harmonic.KindTriangle
	Pulse        = harmonic.KindPulse
	ImpulseTrain = harmonic.KindImpulseTrain
)

// ParseWaveform returns the waveform with the given table name.
func ParseWaveform(name string) (Waveform, error) {
	return harmonic.ParseKind(name)
}

// Oscillator is a mip-mapped waveform table played back through the online
// kernel.
type Oscillator = lut.Resampled

// LookupTable is an interpolating view over a table's samples.
type LookupTable = lut.Table

// OscillatorOption configures NewOscillator.
type OscillatorOption = lut.Option

// TapInterpolation selects how kernel taps between stored points are read.
type TapInterpolation = engine.TapInterpolation

// Tap interpolation modes.
const (
	TapNearest = engine.TapNearest
	TapLinear  = engine.TapLinear
	TapHermite = engine.TapHermite
)

// SincWindow selects the taper of the sinc_kernel table.
type SincWindow = filter.WindowType

// Sinc kernel tapers.
const (
	SincBlackman = filter.WindowBlackman
	SincKaiser   = filter.WindowKaiser
)

// ParseSincWindow returns the taper with the given name.
func ParseSincWindow(name string) (SincWindow, error) {
	for _, w := range []SincWindow{SincBlackman, SincKaiser} {
		if w.String() == name {
			return w, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown sinc window %q", ErrInvalidConfig, name)
}

// WithPowerMatching rescales each mip level to the power of the base table.
func WithPowerMatching() OscillatorOption {
	return lut.WithPowerMatching()
}

// WithWorkers bounds the goroutines used to build mip levels.
func WithWorkers(n int) OscillatorOption {
	return lut.WithWorkers(n)
}

// WithTapInterpolation selects the tap interpolation of lookups.
func WithTapInterpolation(taps TapInterpolation) OscillatorOption {
	return lut.WithTapInterpolation(taps)
}
