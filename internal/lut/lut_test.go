package lut

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-bandlimited/internal/engine"
	"github.com/tphakala/go-bandlimited/internal/harmonic"
	"github.com/tphakala/go-bandlimited/internal/kernel"
	"github.com/tphakala/go-bandlimited/internal/shape"
	"github.com/tphakala/go-bandlimited/internal/testutil"
)

func TestTable_LinearExactAtPoints(t *testing.T) {
	data := []float64{0, 10, 20, 5}

	periodic, err := NewTable(data, 0, 1, true)
	require.NoError(t, err)
	for i, want := range data {
		assert.InDelta(t, want, periodic.Linear(float64(i)/4), 1e-12, "periodic %d", i)
	}

	clamped, err := NewTable(data, 0, 1, false)
	require.NoError(t, err)
	for i, want := range data {
		assert.InDelta(t, want, clamped.Linear(float64(i)/3), 1e-12, "clamped %d", i)
	}
}

func TestTable_PeriodicWrap(t *testing.T) {
	table, err := NewTable([]float64{0, 10, 20, 5}, 0, 1, true)
	require.NoError(t, err)

	// Between the last sample and the first.
	assert.InDelta(t, 2.5, table.Linear(0.875), 1e-12)
	assert.InDelta(t, table.Linear(0.3), table.Linear(1.3), 1e-12)
	assert.InDelta(t, table.Linear(0.3), table.Linear(-0.7), 1e-12)
}

func TestTable_ClampAndRange(t *testing.T) {
	table, err := NewTable([]float64{1, 3, 5}, -10, 10, false)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, table.Linear(-100), 0)
	assert.InDelta(t, 5.0, table.Linear(100), 0)
	assert.InDelta(t, 3.0, table.Linear(0), 1e-12)
	assert.InDelta(t, 2.0, table.Linear(-5), 1e-12)
	assert.InDelta(t, 5.0, table.Linear(10), 1e-12)
}

func TestTable_Raw(t *testing.T) {
	table, err := NewTable([]float64{1, 2, 3}, 0, 1, false)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, table.Raw(-4), 0)
	assert.InDelta(t, 2.0, table.Raw(1), 0)
	assert.InDelta(t, 3.0, table.Raw(99), 0)
	assert.Equal(t, 3, table.Len())
}

func TestNewTable_Invalid(t *testing.T) {
	_, err := NewTable(nil, 0, 1, true)
	require.ErrorIs(t, err, ErrInvalidTable)
	_, err = NewTable([]float64{1}, 1, 1, false)
	require.ErrorIs(t, err, ErrInvalidTable)
	_, err = NewTable([]float64{1}, 2, 1, false)
	require.ErrorIs(t, err, ErrInvalidTable)
}

func TestAuxTables(t *testing.T) {
	sine := Sine(128)
	require.Len(t, sine, 128)
	assert.InDelta(t, 0.0, sine[0], 0)
	assert.InDelta(t, 1.0, sine[32], 1e-15)

	pulse := SinSquared(65)
	assert.InDelta(t, 0.0, pulse[0], 0)
	assert.InDelta(t, 1.0, pulse[32], 1e-15)
	assert.InDelta(t, 0.0, pulse[64], 1e-15)
	testutil.AssertAllInRange(t, pulse, 0, 1)

	pitch := Pitch(-128, 128, 257)
	assert.InDelta(t, 440.0, pitch[128+69], 1e-9)
	assert.InDelta(t, 880.0, pitch[128+81], 1e-9)

	db := Decibel(-90, 0, 91)
	assert.InDelta(t, 1.0, db[90], 0)
	assert.InDelta(t, 0.1, db[70], 1e-15)
	assert.InDelta(t, math.Pow(10, -4.5), db[0], 1e-18)
}

func TestPitchTable_Lookup(t *testing.T) {
	table, err := NewTable(Pitch(-128, 128, 256), -128, 128, false)
	require.NoError(t, err)
	// Interpolating an exponential overestimates slightly between points.
	assert.InDelta(t, 440.0, table.Linear(69), 1.0)
	assert.Less(t, table.Linear(60), table.Linear(61))
}

func TestInvPitch(t *testing.T) {
	// Smallest difference 0.5 over 4 points gives L = 8 and step 0.25.
	inv, step, err := InvPitch([]float64{0.5, 1, 1.5, 2})
	require.NoError(t, err)
	require.Len(t, inv, 7)
	assert.InDelta(t, 0.25, step, 0)
	assert.InDelta(t, -2.0, inv[0], 1e-15)
	assert.InDelta(t, 0.0, inv[3], 1e-15)
	assert.InDelta(t, math.Log2(1.75), inv[6], 1e-15)
	for i := 1; i < len(inv); i++ {
		assert.Greater(t, inv[i], inv[i-1])
	}
}

func TestInvPitch_RoundTrip(t *testing.T) {
	pitch := Pitch(-128, 128, 256)
	inv, step, err := InvPitch(pitch)
	require.NoError(t, err)

	table, err := NewTable(inv, step, step*float64(len(inv)), false)
	require.NoError(t, err)
	// log2 of concert A, read back from its frequency.
	assert.InDelta(t, math.Log2(440), table.Linear(440), 1e-6)
	assert.InDelta(t, math.Log2(pitch[len(pitch)-1]), inv[len(inv)-1], 1e-5)
}

func TestInvPitch_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		pitch []float64
	}{
		{"single", []float64{440}},
		{"flat", []float64{1, 2, 2, 3}},
		{"decreasing", []float64{3, 2, 1}},
		{"non_positive", []float64{-3, -2, -1}},
		{"too_coarse", []float64{1, 1000}},
		{"too_fine", []float64{1, 1 + 1e-9, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := InvPitch(tt.pitch)
			require.ErrorIs(t, err, ErrInvalidTable)
		})
	}
}

func TestMipSizes(t *testing.T) {
	assert.Equal(t, []int{2048, 1024, 512, 256, 128, 64, 32, 16}, MipSizes(2048))
	assert.Equal(t, []int{16}, MipSizes(16))
	assert.Equal(t, []int{8}, MipSizes(8))
	assert.Equal(t, []int{1000, 500, 250, 125, 62, 31}, MipSizes(1000))
	assert.Nil(t, MipSizes(0))
}

func smallKernels(t *testing.T) (online, offline kernel.HalfKernel) {
	t.Helper()
	on, err := kernel.BuildBlimp(kernel.Params{
		Intervals: 11, Resolution: 257, SampleRate: 48000, Cutoff: 20000,
		Beta: 9, ApodizationGain: 0.9, ApodizationBeta: 0.7,
	})
	require.NoError(t, err)
	off, err := kernel.BuildBlimp(kernel.Params{
		Intervals: 33, Resolution: 257, SampleRate: 48000, Cutoff: 22000,
		Beta: 9, ApodizationGain: 0.9, ApodizationBeta: 0.7,
	})
	require.NoError(t, err)
	return on.Half, off.Half
}

func sawTable(t *testing.T, size int) []float64 {
	t.Helper()
	saw, err := harmonic.Synthesize(harmonic.Spec{Kind: harmonic.KindSaw, Size: size})
	require.NoError(t, err)
	return saw
}

func TestNewResampled_Levels(t *testing.T) {
	online, offline := smallKernels(t)
	r, err := NewResampled(sawTable(t, 256), online, offline, WithWorkers(2))
	require.NoError(t, err)

	require.Equal(t, 5, r.Levels())
	for i := range r.Levels() {
		assert.Len(t, r.Level(i), 256>>i)
		testutil.AssertNoNaNOrInf(t, r.Level(i))
	}
}

func TestNewResampled_LevelsAreBandLimited(t *testing.T) {
	online, offline := smallKernels(t)
	saw := sawTable(t, 256)
	r, err := NewResampled(saw, online, offline)
	require.NoError(t, err)

	// Level 2 holds 64 samples: bins near its Nyquist must stay quiet while
	// the fundamental survives.
	level := r.Level(2)
	fundamental := testutil.BinMagnitude(level, 1)
	assert.InDelta(t, testutil.BinMagnitude(saw, 1), fundamental, 0.01)
	assert.Less(t, testutil.BinMagnitude(level, 31)/fundamental, 0.01)
}

func TestNewResampled_PowerMatching(t *testing.T) {
	online, offline := smallKernels(t)
	saw := sawTable(t, 256)
	r, err := NewResampled(saw, online, offline, WithPowerMatching())
	require.NoError(t, err)

	want := shape.Power(saw)
	for i := range r.Levels() {
		assert.InDelta(t, want, shape.Power(r.Level(i)), 1e-12, "level %d", i)
	}
}

func TestResampled_LevelFor(t *testing.T) {
	online, offline := smallKernels(t)
	r, err := NewResampled(sawTable(t, 256), online, offline)
	require.NoError(t, err)

	tests := []struct {
		period float64
		want   int
	}{
		{1000, 0},
		{256, 0},
		{255.5, 0},
		{200, 0},
		{128, 1},
		{100, 1},
		{40, 2},
		{16, 4},
		{3, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.levelFor(tt.period), "period %g", tt.period)
	}
}

func TestResampled_AtTracksSource(t *testing.T) {
	online, offline := smallKernels(t)
	sine := Sine(256)
	r, err := NewResampled(sine, online, offline, WithTapInterpolation(engine.TapLinear))
	require.NoError(t, err)

	for _, phase := range []float64{0, 0.1, 0.25, 0.6, 0.99} {
		v, err := r.At(phase, 100)
		require.NoError(t, err)
		assert.InDelta(t, math.Sin(2*math.Pi*phase), v, 1e-3, "phase %g", phase)
	}
}

func TestResampled_Render(t *testing.T) {
	online, offline := smallKernels(t)
	r, err := NewResampled(Sine(256), online, offline)
	require.NoError(t, err)

	out, err := r.Render(200, 50)
	require.NoError(t, err)
	require.Len(t, out, 200)
	// Four whole periods of 50 samples.
	assert.InDelta(t, 1.0, testutil.BinMagnitude(out, 4), 0.01)

	_, err = r.Render(10, 0)
	require.ErrorIs(t, err, ErrInvalidTable)
}

func TestNewResampled_Invalid(t *testing.T) {
	online, offline := smallKernels(t)
	_, err := NewResampled(nil, online, offline)
	require.ErrorIs(t, err, ErrInvalidTable)
	_, err = NewResampled(Sine(64), kernel.HalfKernel{}, offline)
	require.ErrorIs(t, err, ErrInvalidTable)
	_, err = NewResampled(Sine(64), online, kernel.HalfKernel{})
	require.ErrorIs(t, err, engine.ErrInvalidConfig)
}
