package kernel

import (
	"fmt"

	"github.com/tphakala/go-bandlimited/internal/filter"
	"github.com/tphakala/go-bandlimited/internal/mathutil"
	"github.com/tphakala/go-bandlimited/internal/minphase"
	"github.com/tphakala/go-bandlimited/internal/shape"
)

// MinBLEP is a minimum-phase band-limited step. Step rises from near 0 to
// exactly 1 over 2·ZeroCrossings source samples, Oversampling taps each.
type MinBLEP struct {
	Step          []float64
	ZeroCrossings int
	Oversampling  int
}

// Samples returns the span of the step in source samples.
func (m MinBLEP) Samples() int {
	return len(m.Step) / m.Oversampling
}

// BuildMinBLEP builds the minBLEP table: a Blackman-windowed sinc spanning
// ±zeroCrossings, made minimum phase, integrated and scaled so the final
// sample is exactly 1.
func BuildMinBLEP(zeroCrossings, oversampling int) (MinBLEP, error) {
	if zeroCrossings <= 0 || oversampling <= 0 {
		return MinBLEP{}, fmt.Errorf("%w: minBLEP zero crossings %d, oversampling %d must be positive",
			ErrInvalidConfig, zeroCrossings, oversampling)
	}

	n := 2*zeroCrossings*oversampling + 1
	window := filter.BlackmanWindow(n)

	span := float64(2 * zeroCrossings)
	impulse := make([]float64, n)
	for i := range impulse {
		x := -float64(zeroCrossings) + span*float64(i)/float64(n-1)
		impulse[i] = mathutil.Sinc(x) * window[i]
	}

	minimum, err := minphase.MinimumPhase(impulse)
	if err != nil {
		return MinBLEP{}, fmt.Errorf("minBLEP (%d, %d): %w", zeroCrossings, oversampling, err)
	}

	step := shape.CumulativeSum(minimum)
	final := step[n-1]
	if final == 0 {
		return MinBLEP{}, fmt.Errorf("%w: minBLEP (%d, %d) integrates to zero", ErrInvalidConfig, zeroCrossings, oversampling)
	}
	for i := range step {
		step[i] /= final
	}

	return MinBLEP{Step: step, ZeroCrossings: zeroCrossings, Oversampling: oversampling}, nil
}
