package filter

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// WindowType identifies a taper window.
type WindowType int

const (
	// WindowKaiser is the Kaiser-Bessel window, shaped by β.
	WindowKaiser WindowType = iota
	// WindowBlackman is the classic three-term Blackman window.
	WindowBlackman
)

// String returns the window name.
func (w WindowType) String() string {
	switch w {
	case WindowKaiser:
		return "kaiser"
	case WindowBlackman:
		return "blackman"
	default:
		return fmt.Sprintf("WindowType(%d)", int(w))
	}
}

// Valid reports whether w names a known window.
func (w WindowType) Valid() bool {
	return w == WindowKaiser || w == WindowBlackman
}

// Blackman window coefficients (a0 - a1·cos + a2·cos2).
const (
	blackmanA0 = 0.42
	blackmanA1 = 0.5
	blackmanA2 = 0.08
)

// BlackmanWindow returns the symmetric Blackman window of the given length,
// using n-1 as the denominator so both end samples sit at the zero of the
// taper.
func BlackmanWindow(length int) []float64 {
	if length < 1 {
		return []float64{}
	}
	window := make([]float64, length)
	if length == 1 {
		window[0] = 1
		return window
	}

	denom := float64(length - 1)
	for n := range window {
		arg := 2 * math.Pi * float64(n) / denom
		window[n] = blackmanA0 - blackmanA1*math.Cos(arg) + blackmanA2*math.Cos(2*arg)
	}
	return window
}

// ApodizationWindow returns 1 - gain·Kaiser(β). With a small β this is a
// shallow bowl that lifts the kernel tails relative to the centre.
func ApodizationWindow(length int, gain, beta float64) []float64 {
	window := KaiserWindow(length, beta)
	for i, w := range window {
		window[i] = 1 - gain*w
	}
	return window
}

// WindowPair is a taper window and an apodization window of equal length.
type WindowPair struct {
	Taper       []float64
	Apodization []float64
}

// NewKaiserPair builds the taper Kaiser(beta) and the apodization
// 1 - apGain·Kaiser(apBeta) for a kernel of the given length.
func NewKaiserPair(length int, beta, apGain, apBeta float64) WindowPair {
	return WindowPair{
		Taper:       KaiserWindow(length, beta),
		Apodization: ApodizationWindow(length, apGain, apBeta),
	}
}

// Len returns the window length.
func (p WindowPair) Len() int {
	return len(p.Taper)
}

// Product returns the elementwise product of the two windows.
func (p WindowPair) Product() ([]float64, error) {
	if len(p.Taper) != len(p.Apodization) {
		return nil, fmt.Errorf("window pair length mismatch: taper %d, apodization %d",
			len(p.Taper), len(p.Apodization))
	}
	out := make([]float64, len(p.Taper))
	vecmath.MulBlock(out, p.Taper, p.Apodization)
	return out, nil
}

// Apply multiplies x by the window product and returns a new slice.
func (p WindowPair) Apply(x []float64) ([]float64, error) {
	w, err := p.Product()
	if err != nil {
		return nil, err
	}
	if len(w) != len(x) {
		return nil, fmt.Errorf("window length %d does not match signal length %d", len(w), len(x))
	}
	out := make([]float64, len(x))
	vecmath.MulBlock(out, x, w)
	return out, nil
}
