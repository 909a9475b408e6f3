// Package spectral provides the Fourier transforms, magnitude/phase
// extraction and convolutions used by the kernel and waveform builders.
//
// Transforms are thin wrappers over gonum's dsp/fourier. gonum does not
// normalize inverse transforms; Inverse and InverseReal apply the 1/N factor
// so that Inverse(Forward(x)) == x up to rounding.
package spectral

import (
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Forward returns the full-length DFT of a real signal.
func Forward(x []float64) []complex128 {
	seq := make([]complex128, len(x))
	for i, v := range x {
		seq[i] = complex(v, 0)
	}
	return ForwardComplex(seq)
}

// ForwardComplex returns the DFT of a complex sequence.
// The input is not modified.
func ForwardComplex(x []complex128) []complex128 {
	if len(x) == 0 {
		return nil
	}
	fft := fourier.NewCmplxFFT(len(x))
	return fft.Coefficients(nil, x)
}

// Inverse returns the normalized inverse DFT of a spectrum.
func Inverse(spectrum []complex128) []complex128 {
	n := len(spectrum)
	if n == 0 {
		return nil
	}
	fft := fourier.NewCmplxFFT(n)
	seq := fft.Sequence(nil, spectrum)

	scale := complex(1.0/float64(n), 0)
	for i := range seq {
		seq[i] *= scale
	}
	return seq
}

// InverseReal returns the real part of the normalized inverse DFT.
// Callers use it when the spectrum is known to be Hermitian, or when the
// imaginary part is deliberately discarded.
func InverseReal(spectrum []complex128) []float64 {
	return RealPart(Inverse(spectrum))
}

// RealPart extracts the real components of a complex slice.
func RealPart(x []complex128) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = real(v)
	}
	return out
}

// Magnitude returns |X[k]| for every bin.
func Magnitude(spectrum []complex128) []float64 {
	n := len(spectrum)
	re := make([]float64, n)
	im := make([]float64, n)
	for i, v := range spectrum {
		re[i] = real(v)
		im[i] = imag(v)
	}
	out := make([]float64, n)
	vecmath.Magnitude(out, re, im)
	return out
}

// Phase returns arg(X[k]) in radians for every bin.
func Phase(spectrum []complex128) []float64 {
	out := make([]float64, len(spectrum))
	for i, v := range spectrum {
		out[i] = cmplx.Phase(v)
	}
	return out
}
