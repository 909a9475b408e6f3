package harmonic

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-bandlimited/internal/testutil"
)

func TestKind_Gain(t *testing.T) {
	tests := []struct {
		kind Kind
		n    int
		want float64
	}{
		{KindSaw, 1, 1},
		{KindSaw, 4, 0.25},
		{KindSquare, 2, 0},
		{KindSquare, 3, 1.0 / 3},
		{KindTriangle, 1, 1},
		{KindTriangle, 3, -1.0 / 9},
		{KindTriangle, 5, 1.0 / 25},
		{KindTriangle, 6, 0},
		{KindImpulseTrain, 17, 1},
		{KindPulse, 1, 2 / math.Pi},
		{KindPulse, 2, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_%d", tt.kind, tt.n), func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.kind.Gain(tt.n, 0.5), 1e-15)
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind(" Square ")
	require.NoError(t, err)
	assert.Equal(t, KindSquare, got)

	_, err = ParseKind("wobble")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestMaxHarmonic(t *testing.T) {
	tests := []struct {
		h, n, want int
	}{
		{0, 2048, 1023},
		{-1, 2048, 1023},
		{16, 2048, 16},
		{4096, 2048, 1023},
		{0, 9, 4},
		{0, 4, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaxHarmonic(tt.h, tt.n), "h=%d n=%d", tt.h, tt.n)
	}
}

func TestSet_SquareHasOnlyOddHarmonics(t *testing.T) {
	set, err := Set(Spec{Kind: KindSquare, Size: 64})
	require.NoError(t, err)
	require.NotEmpty(t, set)
	for _, h := range set {
		assert.Equal(t, 1, h.Index%2, "harmonic %d", h.Index)
		assert.Less(t, h.Index, 32)
	}
	assert.Len(t, set, 16)
}

func TestSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr bool
	}{
		{"valid_saw", Spec{Kind: KindSaw, Size: 2048}, false},
		{"valid_pulse_default_duty", Spec{Kind: KindPulse, Size: 64}, false},
		{"too_small", Spec{Kind: KindSaw, Size: 3}, true},
		{"unknown_kind", Spec{Kind: Kind(42), Size: 64}, true},
		{"duty_one", Spec{Kind: KindPulse, Size: 64, Duty: 1}, true},
		{"duty_negative", Spec{Kind: KindPulse, Size: 64, Duty: -0.2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSynthesize_PeakIsExactlyOne(t *testing.T) {
	for _, kind := range []Kind{KindSaw, KindSquare, KindTriangle} {
		for _, harmonics := range []int{16, 4096} {
			for _, prefilter := range []bool{false, true} {
				name := fmt.Sprintf("%s_h%d_pre%v", kind, harmonics, prefilter)
				t.Run(name, func(t *testing.T) {
					wave, err := Synthesize(Spec{
						Kind:      kind,
						Size:      16384,
						Harmonics: harmonics,
						Prefilter: prefilter,
					})
					require.NoError(t, err)
					require.Len(t, wave, 16384)
					testutil.AssertNoNaNOrInf(t, wave)
					assert.InDelta(t, 1.0, testutil.PeakAbs(wave), 0)
				})
			}
		}
	}
}

func TestSynthesize_MatchesDirect(t *testing.T) {
	specs := []Spec{
		{Kind: KindSaw, Size: 256},
		{Kind: KindSquare, Size: 255, Harmonics: 40},
		{Kind: KindTriangle, Size: 128},
		{Kind: KindPulse, Size: 200, Duty: 0.25},
		{Kind: KindImpulseTrain, Size: 64, Harmonics: 8},
		{Kind: KindSaw, Size: 256, Prefilter: true},
	}

	for _, spec := range specs {
		t.Run(fmt.Sprintf("%s_%d", spec.Kind, spec.Size), func(t *testing.T) {
			fast, err := Synthesize(spec)
			require.NoError(t, err)
			direct, err := SynthesizeDirect(spec)
			require.NoError(t, err)
			testutil.AssertSlicesInDelta(t, direct, fast, 1e-9)
		})
	}
}

func TestSynthesize_SpectrumHasOnlyRequestedHarmonics(t *testing.T) {
	const size = 256
	wave, err := Synthesize(Spec{Kind: KindSaw, Size: size, Harmonics: 10})
	require.NoError(t, err)

	fundamental := testutil.BinMagnitude(wave, 1)
	require.Positive(t, fundamental)
	for k := 1; k <= 10; k++ {
		assert.InDelta(t, 1.0/float64(k), testutil.BinMagnitude(wave, k)/fundamental, 1e-9, "bin %d", k)
	}
	for k := 11; k < size/2; k++ {
		assert.Less(t, testutil.BinMagnitude(wave, k)/fundamental, 1e-9, "bin %d", k)
	}
}

func TestSynthesize_ZeroMean(t *testing.T) {
	for _, kind := range []Kind{KindSaw, KindSquare, KindTriangle} {
		wave, err := Synthesize(Spec{Kind: kind, Size: 1024})
		require.NoError(t, err)
		var sum float64
		for _, v := range wave {
			sum += v
		}
		assert.InDelta(t, 0.0, sum, 1e-9, "%s", kind)
	}
}

func TestSynthesize_SawDescendsThroughPeriod(t *testing.T) {
	// sum sin(nθ)/n is the ramp (π-θ)/2: positive early, negative late.
	wave, err := Synthesize(Spec{Kind: KindSaw, Size: 512, Harmonics: 64})
	require.NoError(t, err)
	assert.Greater(t, wave[64], 0.0)
	assert.Less(t, wave[512-64], 0.0)
}

func TestSynthesize_InvalidSpec(t *testing.T) {
	_, err := Synthesize(Spec{Kind: KindSaw, Size: 2})
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = SynthesizeDirect(Spec{Kind: Kind(-1), Size: 64})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPrefilter(t *testing.T) {
	pre := Prefilter()
	require.Len(t, pre, 17)
	testutil.AssertSymmetric(t, pre, 0)
	assert.InDelta(t, 1.7224, pre[8], 0)
	testutil.AssertCenterIsMax(t, pre)
}

func TestApplyPrefilter_BoostsTreble(t *testing.T) {
	const size = 256
	low := testutil.Sine(size, 2)
	high := testutil.Sine(size, 100)

	lowGain := testutil.BinMagnitude(ApplyPrefilter(low), 2)
	highGain := testutil.BinMagnitude(ApplyPrefilter(high), 100)
	assert.Greater(t, highGain, lowGain)
	assert.Len(t, ApplyPrefilter(low), size)
}

func BenchmarkSynthesize_Saw2048(b *testing.B) {
	spec := Spec{Kind: KindSaw, Size: 2048, Prefilter: true}
	for b.Loop() {
		_, _ = Synthesize(spec)
	}
}
