package spectral

const (
	// Below this many taps in the shorter input, direct convolution beats
	// the FFT path.
	minKernelForFFT = 400

	halfDivisor = 2
)
