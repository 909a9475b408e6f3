package lut

// Pitch and level conversions.
const (
	concertA           = 440.0
	concertANote       = 69.0
	semitonesPerOctave = 12.0
	decibelsPerDecade  = 20.0

	// maxInvPitchSize bounds the inverse pitch table.
	maxInvPitchSize = 1 << 24
)

const (
	// mipLevelOffset sets the number of mip levels to log2(size) - 3, so
	// the smallest level keeps 16 samples.
	mipLevelOffset = 3
)
