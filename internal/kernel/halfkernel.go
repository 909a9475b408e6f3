package kernel

import (
	"fmt"

	"github.com/tphakala/go-bandlimited/internal/shape"
)

// HalfKernel is one wing of a symmetric interpolation kernel, centre tap
// first. Resolution is the number of taps per source-sample spacing and
// Intervals the span of the full kernel in source samples.
//
// A HalfKernel is never modified after construction and may be shared by
// any number of concurrent resamplers.
type HalfKernel struct {
	Taps       []float64
	Resolution int
	Intervals  int
}

// Len returns the number of stored taps.
func (h HalfKernel) Len() int {
	return len(h.Taps)
}

// Symmetric rebuilds the full kernel by mirroring the wing around the centre.
func (h HalfKernel) Symmetric() []float64 {
	return shape.SymmetricFromRight(h.Taps)
}

// Validate checks that the kernel can drive a resampler.
func (h HalfKernel) Validate() error {
	if len(h.Taps) == 0 {
		return fmt.Errorf("%w: empty half-kernel", ErrInvalidConfig)
	}
	if h.Resolution <= 0 {
		return fmt.Errorf("%w: half-kernel resolution %d", ErrInvalidConfig, h.Resolution)
	}
	return nil
}
