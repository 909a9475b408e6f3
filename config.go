package bandlimited

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-bandlimited/internal/harmonic"
	"github.com/tphakala/go-bandlimited/internal/kernel"
)

// ErrInvalidConfig is returned when a table set configuration is invalid.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config describes every table of a table set.
type Config struct {
	// Waveforms lists the band-limited waveforms to synthesize.
	Waveforms []harmonic.Kind

	// WaveformSize is the length of one waveform period.
	WaveformSize int

	// WaveformHarmonics caps the harmonic count. Zero means every harmonic
	// below Nyquist.
	WaveformHarmonics int

	// PulseDuty is the duty cycle of the pulse waveform, in (0, 1).
	PulseDuty float64

	// Prefilter applies the treble-boosting prefilter to waveforms.
	Prefilter bool

	// Online and Offline describe the two BLIMP kernels.
	Online  kernel.Params
	Offline kernel.Params

	// MinBLEPZeroCrossings and MinBLEPOversampling size the minBLEP table.
	MinBLEPZeroCrossings int
	MinBLEPOversampling  int

	// SincKernelTaps and SincKernelCutoff describe the short windowed-sinc
	// lowpass table (cutoff normalized to the sample rate).
	SincKernelTaps   int
	SincKernelCutoff float64

	// SincKernelWindow tapers the sinc_kernel table. SincKernelBeta shapes
	// the Kaiser taper and is ignored by Blackman.
	SincKernelWindow SincWindow
	SincKernelBeta   float64

	// Auxiliary lookup tables.
	SineSize       int
	SinSquaredSize int
	PitchSize      int
	PitchMin       float64
	PitchMax       float64
	DecibelSize    int
	DecibelMin     float64
	DecibelMax     float64

	// Workers bounds the number of tables built concurrently. Zero means
	// GOMAXPROCS.
	Workers int
}

// DefaultConfig returns the configuration of the standard table set.
func DefaultConfig() Config {
	online := mustProfileParams(kernel.ProfileOnline)
	offline := mustProfileParams(kernel.ProfileOffline)

	return Config{
		Waveforms:            []harmonic.Kind{harmonic.KindSaw, harmonic.KindSquare, harmonic.KindTriangle, harmonic.KindPulse},
		WaveformSize:         defaultWaveformSize,
		WaveformHarmonics:    defaultWaveformSize / 2,
		PulseDuty:            defaultPulseDuty,
		Prefilter:            true,
		Online:               online,
		Offline:              offline,
		MinBLEPZeroCrossings: defaultMinBLEPZeroCrossings,
		MinBLEPOversampling:  defaultMinBLEPOversampling,
		SincKernelTaps:       defaultSincKernelTaps,
		SincKernelCutoff:     defaultSincKernelCutoff,
		SincKernelWindow:     SincBlackman,
		SincKernelBeta:       online.Beta,
		SineSize:             defaultSineSize,
		SinSquaredSize:       defaultSinSquaredSize,
		PitchSize:            defaultPitchSize,
		PitchMin:             defaultPitchMin,
		PitchMax:             defaultPitchMax,
		DecibelSize:          defaultDecibelSize,
		DecibelMin:           defaultDecibelMin,
		DecibelMax:           defaultDecibelMax,
	}
}

// mustProfileParams returns the parameters of a preset profile and panics
// for profiles without one.
func mustProfileParams(profile kernel.Profile) kernel.Params {
	params, err := kernel.ProfileParams(profile)
	if err != nil {
		panic(fmt.Sprintf("bandlimited: no parameters for %s profile: %v", profile, err))
	}
	return params
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	seen := make(map[harmonic.Kind]bool, len(c.Waveforms))
	for _, kind := range c.Waveforms {
		if seen[kind] {
			return fmt.Errorf("%w: waveform %s listed twice", ErrInvalidConfig, kind)
		}
		seen[kind] = true
		spec := harmonic.Spec{Kind: kind, Size: c.WaveformSize, Harmonics: c.WaveformHarmonics, Duty: c.PulseDuty}
		if err := spec.Validate(); err != nil {
			return fmt.Errorf("%w: waveform %s: %w", ErrInvalidConfig, kind, err)
		}
	}

	if err := c.Online.Validate(); err != nil {
		return fmt.Errorf("%w: online kernel: %w", ErrInvalidConfig, err)
	}
	if err := c.Offline.Validate(); err != nil {
		return fmt.Errorf("%w: offline kernel: %w", ErrInvalidConfig, err)
	}

	if c.MinBLEPZeroCrossings <= 0 || c.MinBLEPOversampling <= 0 {
		return fmt.Errorf("%w: minBLEP zero crossings %d and oversampling %d must be positive",
			ErrInvalidConfig, c.MinBLEPZeroCrossings, c.MinBLEPOversampling)
	}

	if c.SincKernelTaps < minSincKernelTaps {
		return fmt.Errorf("%w: sinc kernel needs at least %d taps, got %d", ErrInvalidConfig, minSincKernelTaps, c.SincKernelTaps)
	}
	if c.SincKernelCutoff <= 0 || c.SincKernelCutoff >= 0.5 {
		return fmt.Errorf("%w: sinc kernel cutoff %g outside (0, 0.5)", ErrInvalidConfig, c.SincKernelCutoff)
	}
	if !c.SincKernelWindow.Valid() {
		return fmt.Errorf("%w: unknown sinc kernel window %s", ErrInvalidConfig, c.SincKernelWindow)
	}
	if c.SincKernelBeta < 0 {
		return fmt.Errorf("%w: sinc kernel beta %g must not be negative", ErrInvalidConfig, c.SincKernelBeta)
	}

	for _, size := range []struct {
		name string
		n    int
	}{
		{"sine", c.SineSize},
		{"sin_squared", c.SinSquaredSize},
		{"pitch", c.PitchSize},
		{"decibel", c.DecibelSize},
	} {
		if size.n < minLookupSize {
			return fmt.Errorf("%w: %s table needs at least %d samples, got %d", ErrInvalidConfig, size.name, minLookupSize, size.n)
		}
	}

	if c.PitchMax <= c.PitchMin {
		return fmt.Errorf("%w: pitch range [%g, %g] is empty", ErrInvalidConfig, c.PitchMin, c.PitchMax)
	}
	if c.DecibelMax <= c.DecibelMin {
		return fmt.Errorf("%w: decibel range [%g, %g] is empty", ErrInvalidConfig, c.DecibelMin, c.DecibelMax)
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d must not be negative", ErrInvalidConfig, c.Workers)
	}
	return nil
}
