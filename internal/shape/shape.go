// Package shape holds the post-processing steps applied to finished tables:
// amplitude and power normalization, DC scaling and symmetric mirroring.
//
// Every function returns a new slice and leaves its input untouched.
package shape

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"
)

// ErrZeroSignal is returned when a normalization target cannot be reached
// because the input has no amplitude, power or sum to scale.
var ErrZeroSignal = errors.New("signal is zero")

// PeakNormalize scales x so that max|x[i]| is exactly 1.
func PeakNormalize(x []float64) ([]float64, error) {
	peak := peakAbs(x)
	if peak == 0 {
		return nil, fmt.Errorf("%w: peak normalize of %d samples", ErrZeroSignal, len(x))
	}
	// Divide rather than multiply by 1/peak so the peak sample lands on 1.
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v / peak
	}
	return out, nil
}

// PowerNormalize scales x to the power of a full-scale sine, so that
// sum(x²)/len(x) == 0.5.
func PowerNormalize(x []float64) ([]float64, error) {
	p := power(x)
	if p == 0 {
		return nil, fmt.Errorf("%w: power normalize of %d samples", ErrZeroSignal, len(x))
	}
	return scaled(x, math.Sqrt(fullScaleSinePower/p)), nil
}

// MatchPower scales x so its mean power equals that of reference. The two
// slices may differ in length.
func MatchPower(x, reference []float64) ([]float64, error) {
	p := power(x)
	if p == 0 {
		return nil, fmt.Errorf("%w: match power of %d samples", ErrZeroSignal, len(x))
	}
	return scaled(x, math.Sqrt(power(reference)/p)), nil
}

// ScaleDC scales x so that its samples sum to target.
func ScaleDC(x []float64, target float64) ([]float64, error) {
	sum := f64.Sum(x)
	if sum == 0 {
		return nil, fmt.Errorf("%w: sum of %d samples is zero", ErrZeroSignal, len(x))
	}
	return scaled(x, target/sum), nil
}

// SymmetricFromRight mirrors a right half (centre first) into a full
// symmetric kernel of length 2*len(half)-1.
func SymmetricFromRight(half []float64) []float64 {
	n := len(half)
	if n == 0 {
		return []float64{}
	}
	out := make([]float64, 2*n-1)
	for i, v := range half {
		out[n-1+i] = v
		out[n-1-i] = v
	}
	return out
}

// SymmetricFromLeft mirrors a left half (centre last) into a full symmetric
// kernel of length 2*len(half)-1.
func SymmetricFromLeft(half []float64) []float64 {
	n := len(half)
	if n == 0 {
		return []float64{}
	}
	out := make([]float64, 2*n-1)
	for i, v := range half {
		out[i] = v
		out[len(out)-1-i] = v
	}
	return out
}

// CumulativeSum returns the running sum of x.
func CumulativeSum(x []float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	return floats.CumSum(out, x)
}

// Power returns the mean power sum(x²)/len(x).
func Power(x []float64) float64 {
	return power(x)
}

func power(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return f64.DotProduct(x, x) / float64(len(x))
}

func peakAbs(x []float64) float64 {
	var peak float64
	for _, v := range x {
		peak = math.Max(peak, math.Abs(v))
	}
	return peak
}

func scaled(x []float64, gain float64) []float64 {
	out := make([]float64, len(x))
	f64.Scale(out, x, gain)
	return out
}
