package lut

import (
	"fmt"
	"math"
)

// Sine returns one period of a unit sine: sin(2πk/n).
func Sine(n int) []float64 {
	out := make([]float64, n)
	for k := range out {
		out[k] = math.Sin(2 * math.Pi * float64(k) / float64(n))
	}
	return out
}

// SinSquared returns the raised-cosine VOSIM pulse 0.5·(1 - cos 2πt) with t
// running from 0 to 1 inclusive.
func SinSquared(n int) []float64 {
	out := make([]float64, n)
	for i, t := range linspace(0, 1, n) {
		out[i] = 0.5 * (1 - math.Cos(2*math.Pi*t))
	}
	return out
}

// Pitch returns the frequency in Hz of MIDI notes spaced evenly from
// noteMin to noteMax inclusive: 440·2^((note-69)/12).
func Pitch(noteMin, noteMax float64, n int) []float64 {
	out := make([]float64, n)
	for i, note := range linspace(noteMin, noteMax, n) {
		out[i] = concertA * math.Exp2((note-concertANote)/semitonesPerOctave)
	}
	return out
}

// InvPitch builds the inverse of an increasing pitch table: log2 of evenly
// spaced frequencies up to the highest pitch. The length scales with
// len(pitch) over the smallest pitch difference, L = ceil(len/minDiff), and
// with step = max(pitch)/L sample k-1 holds log2(k·step) for k in [1, L).
// It returns the samples and step, which is also the frequency of the first
// sample.
func InvPitch(pitch []float64) ([]float64, float64, error) {
	if len(pitch) < 2 {
		return nil, 0, fmt.Errorf("%w: inverse pitch needs at least 2 pitches, got %d", ErrInvalidTable, len(pitch))
	}

	minDiff := math.Inf(1)
	for i := 1; i < len(pitch); i++ {
		d := pitch[i] - pitch[i-1]
		if !(d > 0) {
			return nil, 0, fmt.Errorf("%w: pitch table not increasing at index %d", ErrInvalidTable, i)
		}
		minDiff = min(minDiff, d)
	}
	top := pitch[len(pitch)-1]
	if !(top > 0) || math.IsInf(top, 1) {
		return nil, 0, fmt.Errorf("%w: highest pitch %g must be positive and finite", ErrInvalidTable, top)
	}

	length := math.Ceil(float64(len(pitch)) / minDiff)
	if length > maxInvPitchSize {
		return nil, 0, fmt.Errorf("%w: inverse pitch needs %g samples, limit is %d", ErrInvalidTable, length, maxInvPitchSize)
	}
	n := int(length)
	if n < 2 {
		return nil, 0, fmt.Errorf("%w: pitch spacing too coarse for an inverse table", ErrInvalidTable)
	}
	step := top / float64(n)
	out := make([]float64, n-1)
	for i := range out {
		out[i] = math.Log2(float64(i+1) * step)
	}
	return out, step, nil
}

// Decibel returns the linear amplitude 10^(dB/20) of levels spaced evenly
// from dbMin to dbMax inclusive.
func Decibel(dbMin, dbMax float64, n int) []float64 {
	out := make([]float64, n)
	for i, db := range linspace(dbMin, dbMax, n) {
		out[i] = math.Pow(10, db/decibelsPerDecade)
	}
	return out
}

// linspace returns n evenly spaced values from a to b inclusive.
func linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	switch n {
	case 0:
		return out
	case 1:
		out[0] = a
		return out
	}
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + float64(i)*step
	}
	out[n-1] = b
	return out
}
