package spectral

import (
	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Mode selects the output extent of a linear convolution.
type Mode int

const (
	// ModeFull returns all len(a)+len(b)-1 samples.
	ModeFull Mode = iota

	// ModeSame returns max(len(a), len(b)) samples centred on the full
	// result, matching numpy's "same" mode.
	ModeSame
)

// Convolve returns the linear convolution of a and b.
//
// Short inputs use a direct SIMD dot product per output sample. When both
// inputs are long the convolution is computed by zero-padded FFT
// multiplication, which is what makes self-convolving a million-tap kernel
// feasible.
func Convolve(a, b []float64, mode Mode) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	var full []float64
	if min(len(a), len(b)) < minKernelForFFT {
		full = convolveDirect(a, b)
	} else {
		full = convolveFFT(a, b)
	}

	if mode == ModeFull {
		return full
	}

	outLen := max(len(a), len(b))
	start := (min(len(a), len(b)) - 1) / halfDivisor
	out := make([]float64, outLen)
	copy(out, full[start:start+outLen])
	return out
}

// convolveDirect computes the full convolution with the shorter input as the
// kernel. The kernel is reversed once so that each output is a plain dot
// product over a window of the zero-padded signal.
func convolveDirect(a, b []float64) []float64 {
	signal, kernel := a, b
	if len(kernel) > len(signal) {
		signal, kernel = kernel, signal
	}
	kernelLen := len(kernel)
	outLen := len(signal) + kernelLen - 1

	reversed := make([]float64, kernelLen)
	for i, v := range kernel {
		reversed[kernelLen-1-i] = v
	}

	padded := make([]float64, len(signal)+2*(kernelLen-1))
	copy(padded[kernelLen-1:], signal)

	out := make([]float64, outLen)
	for i := range out {
		out[i] = f64.DotProduct(padded[i:i+kernelLen], reversed)
	}
	return out
}

// convolveFFT computes the full convolution via real FFTs of size
// nextPow2(len(a)+len(b)-1).
func convolveFFT(a, b []float64) []float64 {
	outLen := len(a) + len(b) - 1
	fftSize := nextPow2(outLen)
	fft := fourier.NewFFT(fftSize)

	padA := make([]float64, fftSize)
	copy(padA, a)
	padB := make([]float64, fftSize)
	copy(padB, b)

	specA := fft.Coefficients(nil, padA)
	specB := fft.Coefficients(nil, padB)
	product := make([]complex128, len(specA))
	c128.Mul(product, specA, specB)

	seq := fft.Sequence(nil, product)

	// gonum's inverse is unnormalized
	out := make([]float64, outLen)
	f64.Scale(out, seq[:outLen], 1.0/float64(fftSize))
	return out
}

// CircularConvolve convolves a periodic signal a with kernel b, returning
// len(a) samples. The kernel's centre tap, index (len(b)-1)/2, is aligned
// with each output sample, so a symmetric kernel introduces no shift.
func CircularConvolve(a, b []float64) []float64 {
	n := len(a)
	if n == 0 || len(b) == 0 {
		return nil
	}
	center := (len(b) - 1) / halfDivisor

	if len(b) < minKernelForFFT {
		out := make([]float64, n)
		for i := range out {
			var acc float64
			for k, h := range b {
				idx := (i - k + center) % n
				if idx < 0 {
					idx += n
				}
				acc += a[idx] * h
			}
			out[i] = acc
		}
		return out
	}

	// Fold the centred kernel onto the circle of length n, then multiply
	// spectra of the same length.
	folded := make([]float64, n)
	for k, h := range b {
		idx := (k - center) % n
		if idx < 0 {
			idx += n
		}
		folded[idx] += h
	}

	fft := fourier.NewFFT(n)
	specA := fft.Coefficients(nil, a)
	specB := fft.Coefficients(nil, folded)
	product := make([]complex128, len(specA))
	c128.Mul(product, specA, specB)

	seq := fft.Sequence(nil, product)
	f64.Scale(seq, seq, 1.0/float64(n))
	return seq
}

func nextPow2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
