// Command analyze-kernel prints the DC response per phase and the frequency
// response of a BLIMP kernel preset.
//
// Usage:
//
//	analyze-kernel -profile online
//	analyze-kernel -profile offline -stop 24000
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	bandlimited "github.com/tphakala/go-bandlimited"
	"github.com/tphakala/go-bandlimited/internal/filter"
	"github.com/tphakala/go-bandlimited/internal/kernel"
	"github.com/tphakala/go-bandlimited/internal/mathutil"
	"github.com/tphakala/go-bandlimited/internal/spectral"
)

const (
	// Display limits
	maxPhasesToShow = 8

	// Response band edges in Hz
	defaultPassband = 18000.0
	defaultStopband = 24000.0
	halfPower       = 0.5

	responsePoints = 1024
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	name := flag.String("profile", "online", "Kernel profile: online, offline")
	pass := flag.Float64("pass", defaultPassband, "Upper edge of the passband in Hz")
	stop := flag.Float64("stop", defaultStopband, "Lower edge of the stopband in Hz")
	sincWindow := flag.String("sinc-window", "blackman", "sinc_kernel taper: blackman, kaiser")
	sincBeta := flag.Float64("sinc-beta", bandlimited.DefaultConfig().SincKernelBeta, "Kaiser beta of the sinc_kernel taper")
	flag.Parse()

	window, err := bandlimited.ParseSincWindow(*sincWindow)
	if err != nil {
		return err
	}

	profile, err := parseProfile(*name)
	if err != nil {
		return err
	}
	params, err := kernel.ProfileParams(profile)
	if err != nil {
		return err
	}
	blimp, err := kernel.BuildBlimp(params)
	if err != nil {
		return err
	}

	fmt.Printf("=== Analyzing %s BLIMP ===\n", profile)
	half := blimp.Half
	fmt.Printf("Kernel info:\n")
	fmt.Printf("  Intervals: %d\n", half.Intervals)
	fmt.Printf("  Resolution: %d\n", half.Resolution)
	fmt.Printf("  Full taps: %d\n", len(blimp.Full))
	fmt.Printf("  Half taps: %d\n", half.Len())
	fmt.Printf("  Cutoff: %.1f Hz at %.1f Hz\n", params.Cutoff, params.SampleRate)
	if params.Beta > 0 {
		fmt.Printf("  Kaiser beta: %.2f (~%.1f dB design attenuation)\n", params.Beta, mathutil.KaiserAttenuation(params.Beta))
	}
	fmt.Println()

	printPhases(blimp)
	printResponse(blimp, params.SampleRate, *pass, *stop)
	return printSincKernel(window, *sincBeta)
}

func parseProfile(name string) (kernel.Profile, error) {
	for _, p := range []kernel.Profile{kernel.ProfileOnline, kernel.ProfileOffline} {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown profile %q", kernel.ErrInvalidConfig, name)
}

func printPhases(blimp kernel.Blimp) {
	res := blimp.Half.Resolution
	center := (len(blimp.Full) - 1) / 2

	fmt.Println("DC response per phase:")
	worst := 0.0
	for phase := range res {
		dc := kernel.PhaseDC(blimp.Full, center, res, phase)
		worst = max(worst, math.Abs(dc-1))
		if phase < maxPhasesToShow {
			fmt.Printf("  Phase %4d: %.10f\n", phase, dc)
		}
	}
	if res > maxPhasesToShow {
		fmt.Printf("  ... (%d more phases)\n", res-maxPhasesToShow)
	}
	fmt.Printf("Worst DC deviation: %.3e\n\n", worst)
}

func printResponse(blimp kernel.Blimp, sampleRate, pass, stop float64) {
	mag := spectral.Magnitude(spectral.Forward(blimp.Full))
	n := len(mag)
	res := float64(blimp.Half.Resolution)
	dc := mag[0]

	binHz := sampleRate * res / float64(n)
	ripple, stopPeak, edge := 0.0, 0.0, 0.0
	for k := range n / 2 {
		hz := float64(k) * binHz
		gain := mag[k] / dc
		switch {
		case hz <= pass:
			ripple = max(ripple, math.Abs(filter.MagnitudeDB(gain)))
		case hz >= stop:
			stopPeak = max(stopPeak, gain)
		}
		if edge == 0 && gain < halfPower {
			edge = hz
		}
	}

	fmt.Println("Frequency response:")
	fmt.Printf("  Bin width: %.2f Hz\n", binHz)
	fmt.Printf("  Passband ripple (0-%.0f Hz): %.4f dB\n", pass, ripple)
	fmt.Printf("  -6 dB point: %.1f Hz\n", edge)
	fmt.Printf("  Stopband peak (>= %.0f Hz): %.1f dB\n", stop, filter.MagnitudeDB(stopPeak))
}

// printSincKernel reports the windowed-sinc lowpass stored as the
// sinc_kernel table.
func printSincKernel(window bandlimited.SincWindow, beta float64) error {
	cfg := bandlimited.DefaultConfig()
	taps, err := filter.DesignLowPassFilter(filter.FilterParams{
		NumTaps:    cfg.SincKernelTaps,
		CutoffFreq: cfg.SincKernelCutoff,
		Window:     window,
		Beta:       beta,
		Gain:       1,
	})
	if err != nil {
		return err
	}

	response := filter.ComputeFrequencyResponse(taps, responsePoints)
	edge := 0.0
	for k, gain := range response.Magnitude {
		if gain < halfPower {
			edge = response.Frequencies[k]
			break
		}
	}

	fmt.Printf("\n=== %s (%d taps, cutoff %.2f, %s) ===\n", bandlimited.NameSincKernel, len(taps), cfg.SincKernelCutoff, window)
	fmt.Printf("  DC gain: %.10f\n", response.Magnitude[0])
	if edge > 0 {
		fmt.Printf("  -6 dB point: %.4f of the sample rate\n", edge)
	} else {
		fmt.Println("  -6 dB point: not reached below Nyquist")
	}
	return nil
}
