package lut

import (
	"fmt"
	"math/bits"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tphakala/go-bandlimited/internal/engine"
	"github.com/tphakala/go-bandlimited/internal/kernel"
	"github.com/tphakala/go-bandlimited/internal/shape"
)

// Resampled is a periodic waveform table that plays back alias-free at any
// period. At construction the waveform is resampled offline to a chain of
// mip levels, each half the size of the previous one. At lookup the
// smallest level that still holds one period is resampled on the fly with
// the short online kernel.
type Resampled struct {
	*Table

	online kernel.HalfKernel
	taps   engine.TapInterpolation
	levels [][]float64
}

type resampledConfig struct {
	matchPower bool
	workers    int
	taps       engine.TapInterpolation
}

// Option configures NewResampled.
type Option func(*resampledConfig)

// WithPowerMatching scales every mip level to the mean power of the source
// waveform.
func WithPowerMatching() Option {
	return func(c *resampledConfig) {
		c.matchPower = true
	}
}

// WithWorkers bounds the number of mip levels built concurrently.
func WithWorkers(n int) Option {
	return func(c *resampledConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithTapInterpolation sets how the online kernel is read between taps.
func WithTapInterpolation(taps engine.TapInterpolation) Option {
	return func(c *resampledConfig) {
		c.taps = taps
	}
}

// NewResampled builds the mip levels of one waveform period with the
// offline kernel and keeps the online kernel for lookups.
func NewResampled(data []float64, online, offline kernel.HalfKernel, opts ...Option) (*Resampled, error) {
	cfg := resampledConfig{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}

	table, err := NewTable(data, 0, 1, true)
	if err != nil {
		return nil, err
	}
	if err := online.Validate(); err != nil {
		return nil, fmt.Errorf("%w: online kernel: %w", ErrInvalidTable, err)
	}

	sizes := MipSizes(len(data))
	levels := make([][]float64, len(sizes))

	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for i, size := range sizes {
		g.Go(func() error {
			res, err := engine.Resample(engine.Request{
				Source:       data,
				TargetLength: size,
				Kernel:       offline,
				Periodic:     true,
			})
			if err != nil {
				return fmt.Errorf("mip level %d (size %d): %w", i, size, err)
			}
			level := res.Samples
			if cfg.matchPower {
				if level, err = shape.MatchPower(level, data); err != nil {
					return fmt.Errorf("mip level %d (size %d): %w", i, size, err)
				}
			}
			levels[i] = level
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Resampled{Table: table, online: online, taps: cfg.taps, levels: levels}, nil
}

// MipSizes returns the mip level sizes for a table of n samples:
// max(1, log2(n)-3) levels starting at n and halving.
func MipSizes(n int) []int {
	if n <= 0 {
		return nil
	}
	count := max(1, bits.Len(uint(n))-1-mipLevelOffset)
	sizes := make([]int, 0, count)
	for size := n; len(sizes) < count && size > 0; size /= 2 {
		sizes = append(sizes, size)
	}
	return sizes
}

// Levels returns the number of mip levels.
func (r *Resampled) Levels() int {
	return len(r.levels)
}

// Level returns mip level i. The slice must not be modified.
func (r *Resampled) Level(i int) []float64 {
	return r.levels[i]
}

// levelFor picks the smallest level that is at least period samples long,
// or the largest level when the period exceeds them all.
func (r *Resampled) levelFor(period float64) int {
	best := 0
	for i, level := range r.levels {
		if len(level) < int(period) {
			break
		}
		best = i
	}
	return best
}

// At returns the waveform value at phase (in periods) when played with the
// given period in samples.
func (r *Resampled) At(phase, period float64) (float64, error) {
	level := r.levels[r.levelFor(period)]
	return engine.SampleAt(level, phase, period, r.online, r.taps)
}

// Render fills n samples of the waveform played at the given period,
// starting from phase 0.
func (r *Resampled) Render(n int, period float64) ([]float64, error) {
	if !(period > 0) {
		return nil, fmt.Errorf("%w: period %g must be positive", ErrInvalidTable, period)
	}
	out := make([]float64, n)
	step := 1 / period
	var phase float64
	for i := range out {
		v, err := r.At(phase, period)
		if err != nil {
			return nil, err
		}
		out[i] = v
		phase += step
		if phase >= 1 {
			phase--
		}
	}
	return out, nil
}
