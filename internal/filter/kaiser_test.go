package filter

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-bandlimited/internal/mathutil"
	"github.com/tphakala/go-bandlimited/internal/testutil"
)

const (
	windowTolerance = 1e-12
	gainTolerance   = 1e-12

	// Stored sinc_kernel defaults
	sincKernelTaps   = 51
	sincKernelCutoff = 0.49
	blimpBeta        = 9.0

	responsePoints = 1024
)

func sum(s []float64) float64 {
	var total float64
	for _, v := range s {
		total += v
	}
	return total
}

func TestKaiserWindow_Shape(t *testing.T) {
	tests := []struct {
		length int
		beta   float64
	}{
		{11, 5},
		{21, 0},
		{51, blimpBeta},
		{64, blimpBeta},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n%d_beta%g", tt.length, tt.beta), func(t *testing.T) {
			window := KaiserWindow(tt.length, tt.beta)
			require.Len(t, window, tt.length)
			testutil.AssertSymmetric(t, window, windowTolerance)

			edge := 1 / mathutil.BesselI0(tt.beta)
			assert.InDelta(t, edge, window[0], windowTolerance)
			assert.InDelta(t, edge, window[tt.length-1], windowTolerance)
			for _, w := range window {
				assert.GreaterOrEqual(t, w, edge-windowTolerance)
				assert.LessOrEqual(t, w, 1+windowTolerance)
			}
			if tt.length%2 == 1 {
				assert.InDelta(t, 1.0, window[tt.length/2], windowTolerance)
			}
		})
	}
}

func TestKaiserWindow_ShortLengths(t *testing.T) {
	assert.Empty(t, KaiserWindow(0, blimpBeta))
	assert.Empty(t, KaiserWindow(-3, blimpBeta))
	assert.Equal(t, []float64{1}, KaiserWindow(1, blimpBeta))

	pair := KaiserWindow(2, blimpBeta)
	require.Len(t, pair, 2)
	assert.InDelta(t, pair[0], pair[1], windowTolerance)
}

func TestFilterParams_Validate(t *testing.T) {
	valid := FilterParams{NumTaps: sincKernelTaps, CutoffFreq: sincKernelCutoff, Window: WindowKaiser, Beta: blimpBeta, Gain: 1}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*FilterParams)
	}{
		{"two taps", func(p *FilterParams) { p.NumTaps = 2 }},
		{"too many taps", func(p *FilterParams) { p.NumTaps = 10000 }},
		{"zero cutoff", func(p *FilterParams) { p.CutoffFreq = 0 }},
		{"cutoff at nyquist", func(p *FilterParams) { p.CutoffFreq = 0.5 }},
		{"unknown window", func(p *FilterParams) { p.Window = WindowType(9) }},
		{"negative beta", func(p *FilterParams) { p.Beta = -1 }},
		{"zero gain", func(p *FilterParams) { p.Gain = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			require.Error(t, p.Validate())
			_, err := DesignLowPassFilter(p)
			require.Error(t, err)
		})
	}
}

func TestWindowType_String(t *testing.T) {
	assert.Equal(t, "kaiser", WindowKaiser.String())
	assert.Equal(t, "blackman", WindowBlackman.String())
	assert.Equal(t, "WindowType(7)", WindowType(7).String())
	assert.False(t, WindowType(7).Valid())
}

// TestDesignLowPassFilter_SincKernel covers both tapers the sinc_kernel
// table can be built with.
func TestDesignLowPassFilter_SincKernel(t *testing.T) {
	tests := []struct {
		name   string
		window WindowType
		// |end tap| bounds: Blackman ends on its zero, Kaiser on 1/I0(β).
		endMin, endMax float64
	}{
		{"blackman", WindowBlackman, 0, 1e-15},
		{"kaiser", WindowKaiser, 1e-7, 1e-3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taps, err := DesignLowPassFilter(FilterParams{
				NumTaps:    sincKernelTaps,
				CutoffFreq: sincKernelCutoff,
				Window:     tt.window,
				Beta:       blimpBeta,
				Gain:       1,
			})
			require.NoError(t, err)
			require.Len(t, taps, sincKernelTaps)

			testutil.AssertSymmetric(t, taps, gainTolerance)
			testutil.AssertCenterIsMax(t, taps)
			assert.InDelta(t, 1.0, sum(taps), gainTolerance)
			testutil.AssertInRange(t, math.Abs(taps[0]), tt.endMin, tt.endMax)
		})
	}
}

func TestDesignLowPassFilter_KaiserBetaSelectsTaper(t *testing.T) {
	params := FilterParams{NumTaps: sincKernelTaps, CutoffFreq: 0.25, Window: WindowKaiser, Gain: 1}

	rect, err := DesignLowPassFilter(params)
	require.NoError(t, err)
	params.Beta = blimpBeta
	tapered, err := DesignLowPassFilter(params)
	require.NoError(t, err)

	// Both are DC-normalized, so the taper shows up as a smaller edge/centre ratio.
	centre := sincKernelTaps / 2
	ratio := func(h []float64) float64 { return math.Abs(h[0] / h[centre]) }
	assert.Less(t, ratio(tapered), ratio(rect)/100)
}

// TestDesignLowPassFilter_Stopband checks the passband and stopband of both
// tapers at a cutoff where the whole transition fits below Nyquist.
func TestDesignLowPassFilter_Stopband(t *testing.T) {
	const (
		numTaps    = 101
		cutoff     = 0.25
		passbandTo = 0.20
		stopFrom   = 0.30
	)

	tests := []struct {
		name       string
		window     WindowType
		stopbandDB float64
	}{
		{"blackman", WindowBlackman, -65},
		{"kaiser_beta9", WindowKaiser, -80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taps, err := DesignLowPassFilter(FilterParams{
				NumTaps:    numTaps,
				CutoffFreq: cutoff,
				Window:     tt.window,
				Beta:       blimpBeta,
				Gain:       1,
			})
			require.NoError(t, err)

			response := ComputeFrequencyResponse(taps, responsePoints)
			for i, f := range response.Frequencies {
				db := MagnitudeDB(response.Magnitude[i])
				switch {
				case f <= passbandTo:
					assert.LessOrEqual(t, math.Abs(db), 0.01, "passband at %.4f", f)
				case f >= stopFrom:
					assert.LessOrEqual(t, db, tt.stopbandDB, "stopband at %.4f", f)
				}
			}
		})
	}
}

func TestDesignLowPassFilter_Gain(t *testing.T) {
	for _, gain := range []float64{0.5, 1, 3} {
		taps, err := DesignLowPassFilter(FilterParams{
			NumTaps: sincKernelTaps, CutoffFreq: sincKernelCutoff, Window: WindowBlackman, Gain: gain,
		})
		require.NoError(t, err)
		assert.InDelta(t, gain, sum(taps), gainTolerance, "gain %g", gain)
	}
}

func TestComputeFrequencyResponse_RaisedCosine(t *testing.T) {
	// [1/4, 1/2, 1/4] has |H(f)| = cos²(πf).
	response := ComputeFrequencyResponse([]float64{0.25, 0.5, 0.25}, responsePoints)
	require.Len(t, response.Frequencies, responsePoints)
	require.Len(t, response.Phase, responsePoints)

	for i, f := range response.Frequencies {
		want := math.Pow(math.Cos(math.Pi*f), 2)
		assert.InDelta(t, want, response.Magnitude[i], 1e-12, "f=%.4f", f)
	}
	assert.InDelta(t, 0.5-0.5/responsePoints, response.Frequencies[responsePoints-1], 1e-15)
}

func TestComputeFrequencyResponse_DefaultPoints(t *testing.T) {
	response := ComputeFrequencyResponse([]float64{1}, 0)
	assert.Len(t, response.Magnitude, defaultResponsePoints)
}

func TestMagnitudeDB(t *testing.T) {
	assert.InDelta(t, 0.0, MagnitudeDB(1), 1e-12)
	assert.InDelta(t, -20.0, MagnitudeDB(0.1), 1e-12)
	assert.InDelta(t, -6.0206, MagnitudeDB(0.5), 1e-4)
	assert.InDelta(t, -200.0, MagnitudeDB(0), 1e-9)
}

func BenchmarkDesignLowPassFilter(b *testing.B) {
	for _, window := range []WindowType{WindowBlackman, WindowKaiser} {
		b.Run(window.String(), func(b *testing.B) {
			params := FilterParams{
				NumTaps: sincKernelTaps, CutoffFreq: sincKernelCutoff, Window: window, Beta: blimpBeta, Gain: 1,
			}
			for b.Loop() {
				_, _ = DesignLowPassFilter(params)
			}
		})
	}
}
