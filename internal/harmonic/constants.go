package harmonic

const (
	// minTableSize is the smallest table that can hold a harmonic below
	// Nyquist.
	minTableSize = 4

	// defaultDuty is the pulse duty used when none is given.
	defaultDuty = 0.5
)

// prefilterLeft is the left half (centre last) of the treble-boosting
// prefilter applied to periodic waveforms.
var prefilterLeft = []float64{
	0.0028, -0.0119, 0.0322, -0.0709, 0.1375, -0.2544, 0.4385, -0.6334, 1.7224,
}
