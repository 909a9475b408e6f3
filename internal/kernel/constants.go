package kernel

// Quality profile parameters.
const (
	onlineIntervals  = 11
	offlineIntervals = 513
	profileRes       = 2048

	profileSampleRate    = 48000.0
	onlineCutoff         = 20000.0
	offlineCutoff        = 22000.0
	profileBeta          = 9.0
	profileApodization   = 0.9
	profileApodizingBeta = 0.7
)

// Nyquist is half the sample rate.
const nyquistDivisor = 2
