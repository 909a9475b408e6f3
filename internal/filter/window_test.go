package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-bandlimited/internal/testutil"
)

const (
	testWindowLength11 = 11
	testWindowLength21 = 21
	testWindowLength51 = 51

	testBeta5 = 5.0
	// β for roughly 80 dB of stopband attenuation.
	testBeta8 = 8.653728
)

func TestBlackmanWindow(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"length_1", 1},
		{"length_17", 17},
		{"length_64", 64},
		{"length_201", 201},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := BlackmanWindow(tt.length)
			require.Len(t, window, tt.length)
			testutil.AssertNoNaNOrInf(t, window)
			testutil.AssertSymmetric(t, window, windowTolerance)
			testutil.AssertAllInRange(t, window, -1e-15, 1.0+1e-15)
		})
	}
}

func TestBlackmanWindow_Endpoints(t *testing.T) {
	window := BlackmanWindow(testWindowLength21)
	assert.InDelta(t, 0.0, window[0], 1e-15)
	assert.InDelta(t, 0.0, window[testWindowLength21-1], 1e-15)
	assert.InDelta(t, 1.0, window[testWindowLength21/2], 1e-15)
}

func TestBlackmanWindow_Empty(t *testing.T) {
	assert.Empty(t, BlackmanWindow(0))
	assert.Empty(t, BlackmanWindow(-3))
}

func TestApodizationWindow(t *testing.T) {
	const (
		gain = 0.9
		beta = 0.7
	)
	window := ApodizationWindow(testWindowLength51, gain, beta)
	kaiser := KaiserWindow(testWindowLength51, beta)

	require.Len(t, window, testWindowLength51)
	testutil.AssertSymmetric(t, window, windowTolerance)
	for i := range window {
		assert.InDelta(t, 1-gain*kaiser[i], window[i], 1e-15, "index %d", i)
	}

	// Bowl shape: the centre is the minimum.
	center := window[testWindowLength51/2]
	assert.InDelta(t, 1-gain, center, 1e-15)
	for i, w := range window {
		assert.GreaterOrEqual(t, w, center, "index %d", i)
	}
}

func TestWindowPair_Product(t *testing.T) {
	pair := NewKaiserPair(testWindowLength21, testBeta8, 0.9, 0.7)
	assert.Equal(t, testWindowLength21, pair.Len())

	product, err := pair.Product()
	require.NoError(t, err)
	require.Len(t, product, testWindowLength21)
	for i := range product {
		assert.InDelta(t, pair.Taper[i]*pair.Apodization[i], product[i], 1e-15, "index %d", i)
	}
	testutil.AssertSymmetric(t, product, windowTolerance)
}

func TestWindowPair_Mismatch(t *testing.T) {
	pair := WindowPair{
		Taper:       KaiserWindow(5, testBeta5),
		Apodization: ApodizationWindow(7, 0.5, 1),
	}
	_, err := pair.Product()
	require.Error(t, err)

	_, err = NewKaiserPair(5, testBeta5, 0.5, 1).Apply(make([]float64, 6))
	require.Error(t, err)
}

func TestWindowPair_Apply(t *testing.T) {
	pair := NewKaiserPair(testWindowLength11, testBeta5, 0.5, 1)
	x := make([]float64, testWindowLength11)
	for i := range x {
		x[i] = float64(i + 1)
	}

	out, err := pair.Apply(x)
	require.NoError(t, err)
	product, err := pair.Product()
	require.NoError(t, err)
	for i := range x {
		assert.InDelta(t, x[i]*product[i], out[i], 1e-12, "index %d", i)
	}
	// The input is left untouched.
	assert.InDelta(t, 1.0, x[0], 0)
}

func BenchmarkBlackmanWindow(b *testing.B) {
	for b.Loop() {
		_ = BlackmanWindow(1025)
	}
}
