// Command audition renders a band-limited oscillator to a mono WAV file.
//
// Usage:
//
//	audition -wave saw -freq 220 out.wav
//	audition -wave square -freq 55 -to 7040 -dur 10 sweep.wav   # exponential sweep
//	audition -wave pulse -duty 0.25 -bits 24 pulse.wav
//	audition -wave triangle -normalize-power tri.wav            # equal loudness across waves
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	bandlimited "github.com/tphakala/go-bandlimited"
)

const (
	// CLI defaults
	defaultRate      = 48000
	defaultFreq      = 220.0
	defaultDuration  = 2.0
	defaultGain      = 0.5
	defaultBitDepth  = bitsPerSample16
	minRequiredArgs  = 1
	progressInterval = 10 // Print progress every N%
	percentScale     = 100
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	waveName := flag.String("wave", "saw", "Waveform: saw, square, triangle, pulse")
	freq := flag.Float64("freq", defaultFreq, "Start frequency in Hz")
	to := flag.Float64("to", 0, "End frequency in Hz for an exponential sweep (0 holds -freq)")
	dur := flag.Float64("dur", defaultDuration, "Duration in seconds")
	rate := flag.Int("rate", defaultRate, "Output sample rate in Hz")
	bits := flag.Int("bits", defaultBitDepth, "Output bit depth: 16, 24, 32")
	gain := flag.Float64("gain", defaultGain, "Output gain, 0 to 1")
	duty := flag.Float64("duty", 0, "Pulse duty cycle (0 keeps the default)")
	taps := flag.String("taps", "linear", "Kernel tap interpolation: nearest, linear, hermite")
	powerMatch := flag.Bool("power-match", false, "Match the power of every mip level to the base table")
	normPower := flag.Bool("normalize-power", false, "Scale the render to the power of a full-scale sine before -gain")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	wave, err := bandlimited.ParseWaveform(*waveName)
	if err != nil {
		return err
	}
	tapMode, err := parseTaps(*taps)
	if err != nil {
		return err
	}
	end := *freq
	if *to > 0 {
		end = *to
	}
	if err := validateRender(*rate, *bits, *freq, end, *dur, *gain); err != nil {
		return err
	}

	cfg := bandlimited.DefaultConfig()
	cfg.Waveforms = []bandlimited.Waveform{wave}
	if *duty > 0 {
		cfg.PulseDuty = *duty
	}

	start := time.Now()
	set, err := bandlimited.Generate(cfg)
	if err != nil {
		return fmt.Errorf("failed to generate tables: %w", err)
	}
	opts := []bandlimited.OscillatorOption{bandlimited.WithTapInterpolation(tapMode)}
	if *powerMatch {
		opts = append(opts, bandlimited.WithPowerMatching())
	}
	osc, err := bandlimited.NewOscillator(set, wave, opts...)
	if err != nil {
		return fmt.Errorf("failed to build oscillator: %w", err)
	}
	if *verbose {
		log.Printf("Built %s oscillator with %d mip levels in %v",
			wave, osc.Levels(), time.Since(start).Round(time.Millisecond))
	}

	n := int(*dur * float64(*rate))
	progress := newProgressTracker(int64(n), *verbose)
	samples, err := renderSweep(osc, float64(*rate), *freq, end, n, progress)
	if err != nil {
		return err
	}
	if samples, err = normalizeRender(samples, *normPower); err != nil {
		return err
	}

	out, err := createWAVOutput(args[0], *rate, *bits)
	if err != nil {
		return err
	}
	if err := out.WriteSamples(toPCM(samples, *gain, *bits)); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to finalize output: %w", err)
	}

	if *verbose {
		log.Printf("Wrote %d samples to %s in %v", n, args[0], time.Since(start).Round(time.Millisecond))
	}
	return nil
}
