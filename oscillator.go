package bandlimited

import (
	"fmt"

	"github.com/tphakala/go-bandlimited/internal/lut"
)

// NewOscillator returns a playable table for one of the set's waveforms:
// its mip levels are resampled with the offline kernel and lookups use the
// online kernel.
func NewOscillator(set *TableSet, kind Waveform, opts ...OscillatorOption) (*Oscillator, error) {
	table, ok := set.Lookup(kind.String())
	if !ok || table.Kind != KindWaveform {
		return nil, fmt.Errorf("%w: table set has no %s waveform", ErrInvalidConfig, kind)
	}
	online, offline := set.Kernels()
	return lut.NewResampled(table.Data, online, offline, opts...)
}
