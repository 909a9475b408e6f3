package engine

// Hermite interpolation coefficients: y = ((a*x + b)*x + c)*x + y1 with
//
//	a = -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
//	b = y0 - 2.5*y1 + 2*y2 - 0.5*y3
//	c = -0.5*y0 + 0.5*y2
const (
	hermiteHalf       = 0.5
	hermiteOneAndHalf = 1.5
	hermiteTwoAndHalf = 2.5
)

const (
	// minChunk is the smallest run of output samples handed to one worker.
	minChunk = 256
)
