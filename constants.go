package bandlimited

// Waveform defaults
const (
	defaultWaveformSize = 2048
	defaultPulseDuty    = 0.5
)

// minBLEP defaults
const (
	defaultMinBLEPZeroCrossings = 16
	defaultMinBLEPOversampling  = 256
)

// Sinc kernel defaults: 51 taps, cutoff just under Nyquist
const (
	defaultSincKernelTaps   = 51
	defaultSincKernelCutoff = 0.49
	minSincKernelTaps       = 3
)

// Auxiliary table defaults
const (
	defaultSineSize       = 128
	defaultSinSquaredSize = 65536
	defaultPitchSize      = 256
	defaultPitchMin       = -128.0
	defaultPitchMax       = 128.0
	defaultDecibelSize    = 256
	defaultDecibelMin     = -90.0
	defaultDecibelMax     = 0.0

	minLookupSize = 2
)

// bytesPerSample is the size of one float64 sample.
const bytesPerSample = 8

// Table names
const (
	NameBlimpOnline  = "blimp_online"
	NameBlimpOffline = "blimp_offline"
	NameMinBLEP      = "minblep"
	NameSincKernel   = "sinc_kernel"
	NameSine         = "sine"
	NameSinSquared   = "sin_squared"
	NamePitch        = "pitch"
	NameInvPitch     = "inv_pitch"
	NameDecibel      = "decibel"
)
