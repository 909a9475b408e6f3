package engine

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ResampleParallel is Resample with the output split into contiguous chunks
// rendered concurrently by up to workers goroutines (GOMAXPROCS when
// workers <= 0). Each chunk seeds its phase at (first/T) mod 1, so the
// result matches Resample up to phase rounding.
func ResampleParallel(req Request, workers int) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]float64, req.outputLength())
	chunk := max(minChunk, (len(out)+workers-1)/workers)
	numChunks := (len(out) + chunk - 1) / chunk
	maxTaps := make([]int, numChunks)

	var g errgroup.Group
	g.SetLimit(workers)
	for c := range numChunks {
		first := c * chunk
		last := min(first+chunk, len(out))
		g.Go(func() error {
			phase := float64(first) / float64(req.TargetLength)
			phase -= math.Floor(phase)
			taps, err := render(req, out[first:last], first, phase)
			maxTaps[c] = taps
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var most int
	for _, taps := range maxTaps {
		most = max(most, taps)
	}
	return Result{Samples: out, MaxTaps: most}, nil
}
