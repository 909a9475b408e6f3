package engine

// wing walks both wings of a half-kernel across a source signal.
type wing struct {
	src      []float64
	periodic bool
	taps     []float64
	mode     TapInterpolation
}

// evaluate returns the normalized weighted sum at phase, the number of
// kernel taps visited, and ErrZeroWeight when the weights cancel out.
func (w wing) evaluate(phase, step float64) (float64, int, error) {
	n := len(w.src)
	position := phase * float64(n)
	index := int(position)
	offset := (position - float64(index)) * step
	limit := float64(len(w.taps))

	var sum, weight float64
	var visited int

	// Left wing: source index, index-1, ...
	i := 0
	for pos := offset; pos < limit; pos += step {
		h := w.tap(pos)
		sum += h * w.sample(index-i)
		weight += h
		i++
	}
	visited += i

	// Right wing: index+1, index+2, ...
	i = 0
	for pos := step - offset; pos < limit; pos += step {
		h := w.tap(pos)
		sum += h * w.sample(index+1+i)
		weight += h
		i++
	}
	visited += i

	if weight == 0 {
		return 0, visited, ErrZeroWeight
	}
	return sum / weight, visited, nil
}

// sample reads the source with periodic wrap or zero padding.
func (w wing) sample(i int) float64 {
	n := len(w.src)
	if w.periodic {
		i %= n
		if i < 0 {
			i += n
		}
		return w.src[i]
	}
	if i < 0 || i >= n {
		return 0
	}
	return w.src[i]
}

// tap reads the kernel at a fractional position.
func (w wing) tap(pos float64) float64 {
	i := int(pos)
	switch w.mode {
	case TapLinear:
		frac := pos - float64(i)
		a := w.taps[i]
		b := w.taps[w.clamp(i+1)]
		return a + (b-a)*frac
	case TapHermite:
		return w.hermite(i, pos-float64(i))
	default:
		return w.taps[i]
	}
}

// hermite is 4-point, 3rd-order Hermite interpolation between taps i and
// i+1. The kernel is symmetric, so tap -1 mirrors tap 1.
func (w wing) hermite(i int, x float64) float64 {
	y0 := w.taps[w.mirror(i-1)]
	y1 := w.taps[i]
	y2 := w.taps[w.clamp(i+1)]
	y3 := w.taps[w.clamp(i+2)]

	coefA := -hermiteHalf*y0 + hermiteOneAndHalf*y1 - hermiteOneAndHalf*y2 + hermiteHalf*y3
	coefB := y0 - hermiteTwoAndHalf*y1 + 2*y2 - hermiteHalf*y3
	coefC := -hermiteHalf*y0 + hermiteHalf*y2
	return ((coefA*x+coefB)*x+coefC)*x + y1
}

func (w wing) clamp(i int) int {
	return min(i, len(w.taps)-1)
}

func (w wing) mirror(i int) int {
	if i < 0 {
		return w.clamp(-i)
	}
	return i
}
