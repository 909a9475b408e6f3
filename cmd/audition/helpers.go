package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	bandlimited "github.com/tphakala/go-bandlimited"
	"github.com/tphakala/go-bandlimited/internal/shape"
)

const (
	monoChannels = 1
	pcmFormat    = 1

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Conversion constants
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	nyquistDivisor = 2
)

var tapModes = map[string]bandlimited.TapInterpolation{
	"nearest": bandlimited.TapNearest,
	"linear":  bandlimited.TapLinear,
	"hermite": bandlimited.TapHermite,
}

// parseTaps resolves a tap interpolation name.
func parseTaps(name string) (bandlimited.TapInterpolation, error) {
	mode, ok := tapModes[name]
	if !ok {
		return 0, fmt.Errorf("unknown tap interpolation %q", name)
	}
	return mode, nil
}

// validateRender checks the render parameters before any table is built.
func validateRender(rate, bits int, from, to, dur, gain float64) error {
	if rate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", rate)
	}
	if _, ok := maxValues[bits]; !ok {
		return fmt.Errorf("unsupported bit depth %d", bits)
	}
	nyquist := float64(rate) / nyquistDivisor
	for _, f := range []float64{from, to} {
		if !(f > 0) || f >= nyquist {
			return fmt.Errorf("frequency %g Hz outside (0, %g)", f, nyquist)
		}
	}
	if !(dur > 0) {
		return fmt.Errorf("duration must be positive, got %g", dur)
	}
	if gain < 0 || gain > 1 {
		return fmt.Errorf("gain %g outside [0, 1]", gain)
	}
	return nil
}

// renderSweep plays osc from one frequency to another on an exponential
// glide. A constant frequency is a sweep with from == to.
func renderSweep(osc *bandlimited.Oscillator, rate, from, to float64, n int, progress *progressTracker) ([]float64, error) {
	out := make([]float64, n)
	ratio := math.Log(to / from)

	var phase float64
	for i := range out {
		freq := from
		if n > 1 {
			freq = from * math.Exp(ratio*float64(i)/float64(n-1))
		}
		v, err := osc.At(phase, rate/freq)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		out[i] = v

		phase += freq / rate
		phase -= math.Floor(phase)
		progress.reportIfNeeded(int64(i + 1))
	}
	return out, nil
}

// normalizeRender scales samples to the mean power of a full-scale sine
// when enabled, so different waveforms render at equal loudness.
func normalizeRender(samples []float64, enabled bool) ([]float64, error) {
	if !enabled {
		return samples, nil
	}
	out, err := shape.PowerNormalize(samples)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize render: %w", err)
	}
	return out, nil
}

var maxValues = map[int]float64{
	bitsPerSample16: maxInt16,
	bitsPerSample24: maxInt24,
	bitsPerSample32: maxInt32,
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	if v, ok := maxValues[bitDepth]; ok {
		return v
	}
	return maxInt16
}

// toPCM scales, clamps to [-1, 1] and quantizes samples.
func toPCM(samples []float64, gain float64, bitDepth int) []int {
	maxVal := getMaxValue(bitDepth)
	out := make([]int, len(samples))
	for i, s := range samples {
		out[i] = int(math.Round(max(-1, min(1, s*gain)) * maxVal))
	}
	return out
}

// wavOutputWriter wraps the output file and its encoder.
type wavOutputWriter struct {
	file     *os.File
	encoder  *wav.Encoder
	format   *audio.Format
	bitDepth int
}

// createWAVOutput creates a mono PCM WAV file.
func createWAVOutput(path string, sampleRate, bitDepth int) (*wavOutputWriter, error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &wavOutputWriter{
		file:     outputFile,
		encoder:  wav.NewEncoder(outputFile, sampleRate, bitDepth, monoChannels, pcmFormat),
		format:   &audio.Format{NumChannels: monoChannels, SampleRate: sampleRate},
		bitDepth: bitDepth,
	}, nil
}

// WriteSamples writes samples to the output file.
func (w *wavOutputWriter) WriteSamples(samples []int) error {
	return w.encoder.Write(&audio.IntBuffer{
		Data:           samples,
		Format:         w.format,
		SourceBitDepth: w.bitDepth,
	})
}

// Close finalizes the header and closes the file.
func (w *wavOutputWriter) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}

// progressTracker handles progress reporting.
type progressTracker struct {
	totalSamples int64
	lastProgress int
	verbose      bool
}

// newProgressTracker creates a new progress tracker.
func newProgressTracker(totalSamples int64, verbose bool) *progressTracker {
	return &progressTracker{
		totalSamples: totalSamples,
		verbose:      verbose,
	}
}

// reportIfNeeded reports progress if threshold crossed.
func (p *progressTracker) reportIfNeeded(currentSamples int64) {
	if !p.verbose || p.totalSamples == 0 {
		return
	}

	progress := int(float64(currentSamples) / float64(p.totalSamples) * percentScale)
	if progress >= p.lastProgress+progressInterval {
		log.Printf("Progress: %d%%", progress)
		p.lastProgress = progress
	}
}
