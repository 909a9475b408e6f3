// Package lut provides linearly interpolated lookup tables, including
// periodic waveform tables with band-limited mip levels.
package lut

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidTable is returned for table data or ranges that cannot be
// looked up.
var ErrInvalidTable = errors.New("invalid lookup table")

// Table maps an input range onto samples with linear interpolation.
//
// Periodic tables wrap the normalized input into [0, 1) and interpolate
// between the last and first sample. Other tables clamp the input to
// [InputMin, InputMax], which map to the first and last sample.
type Table struct {
	Data     []float64
	InputMin float64
	InputMax float64
	Periodic bool

	diff      []float64
	normalize bool
	scale     float64
}

// NewTable builds a table over [inputMin, inputMax]. The data is not copied
// and must not be modified afterwards.
func NewTable(data []float64, inputMin, inputMax float64, periodic bool) (*Table, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrInvalidTable)
	}
	if !(inputMax > inputMin) {
		return nil, fmt.Errorf("%w: input range [%g, %g] is empty", ErrInvalidTable, inputMin, inputMax)
	}

	n := len(data)
	diff := make([]float64, n)
	for i := range n - 1 {
		diff[i] = data[i+1] - data[i]
	}
	if periodic {
		diff[n-1] = data[0] - data[n-1]
	}

	return &Table{
		Data:      data,
		InputMin:  inputMin,
		InputMax:  inputMax,
		Periodic:  periodic,
		diff:      diff,
		normalize: inputMin != 0 || inputMax != 1,
		scale:     1 / (inputMax - inputMin),
	}, nil
}

// Len returns the number of samples.
func (t *Table) Len() int {
	return len(t.Data)
}

// Linear returns the interpolated value at x.
func (t *Table) Linear(x float64) float64 {
	if t.normalize {
		x = (x - t.InputMin) * t.scale
	}

	n := len(t.Data)
	if t.Periodic {
		x -= math.Floor(x)
		x *= float64(n)
	} else {
		x = math.Min(math.Max(x, 0), 1)
		x *= float64(n - 1)
	}

	i := min(int(x), n-1)
	return t.Data[i] + t.diff[i]*(x-float64(i))
}

// Raw returns sample i, clamped to the table bounds.
func (t *Table) Raw(i int) float64 {
	return t.Data[min(max(i, 0), len(t.Data)-1)]
}
