// Package bandlimited generates the numeric tables a band-limited
// synthesizer runs on: alias-free waveforms, interpolation kernels, a
// minimum-phase step for discontinuity correction and a handful of lookup
// tables.
//
// # Quick Start
//
// Build the standard table set and play a sawtooth at 220 Hz:
//
//	set, err := bandlimited.Generate(bandlimited.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	saw, err := bandlimited.NewOscillator(set, bandlimited.Saw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	samples, err := saw.Render(48000, 48000.0/220)
//
// # Tables
//
// A [TableSet] holds named [Table] values with the metadata a consumer needs
// to use them ([Meta]):
//
//   - blimp_online, blimp_offline: windowed-sinc interpolation kernels
//     (BLIMP) stored as one wing, centre first, with their resolution in
//     taps per sample and span in samples. The online kernel is short
//     enough to evaluate per output sample; the offline kernel is long and
//     self-convolved for precomputing tables.
//   - minblep: a minimum-phase band-limited step rising to exactly 1.
//   - sinc_kernel: a short windowed-sinc lowpass, Blackman by default or Kaiser.
//   - saw, square, triangle, pulse, impulse: one period of each requested
//     waveform, peak-normalized, optionally treble-prefiltered.
//   - sine, sin_squared, pitch, decibel: lookup tables over an input range.
//   - inv_pitch: log2 of evenly spaced frequencies, the inverse of pitch.
//
// # Architecture
//
// The numeric core lives in internal packages:
//
//   - spectral: FFT wrappers, magnitude and phase, linear and circular
//     convolution
//   - minphase: cepstral minimum-phase reconstruction
//   - harmonic: waveform synthesis by spectral placement of harmonics
//   - filter: Kaiser, Blackman and apodization windows; windowed-sinc design
//   - kernel: BLIMP and minBLEP builders with quality profiles
//   - engine: the fractional resampler that consumes BLIMP kernels
//   - lut: interpolating lookup tables and mip-mapped waveform tables
//
// Every builder is synchronous and allocates its result; tables and kernels
// are never modified after construction and may be shared freely.
package bandlimited
