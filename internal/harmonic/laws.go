package harmonic

import (
	"fmt"
	"math"
	"strings"
)

// Kind identifies a waveform by its harmonic gain law.
type Kind int

const (
	// KindSaw is a sawtooth: gain 1/n on every harmonic, sine basis.
	KindSaw Kind = iota
	// KindSquare is a square wave: gain 1/n on odd harmonics, sine basis.
	KindSquare
	// KindTriangle is a triangle wave: gain (-1)^((n-1)/2)/n² on odd
	// harmonics, sine basis.
	KindTriangle
	// KindPulse is a rectangular pulse of duty d: gain 2·sin(πnd)/(πn),
	// cosine basis.
	KindPulse
	// KindImpulseTrain is a band-limited impulse train: unit gain on every
	// harmonic, cosine basis.
	KindImpulseTrain
)

// Basis is the trigonometric function each harmonic is rendered with.
type Basis int

const (
	// BasisSine renders g·sin(2πnt).
	BasisSine Basis = iota
	// BasisCosine renders g·cos(2πnt).
	BasisCosine
)

var kindNames = map[Kind]string{
	KindSaw:          "saw",
	KindSquare:       "square",
	KindTriangle:     "triangle",
	KindPulse:        "pulse",
	KindImpulseTrain: "impulse",
}

// String returns the lowercase name of the waveform.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k names a known waveform.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind resolves a waveform name such as "saw" or "Square".
func ParseKind(name string) (Kind, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == lower {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown waveform %q", ErrInvalidConfig, name)
}

// Kinds returns all waveform kinds in declaration order.
func Kinds() []Kind {
	return []Kind{KindSaw, KindSquare, KindTriangle, KindPulse, KindImpulseTrain}
}

// Basis returns the rendering basis for the waveform.
func (k Kind) Basis() Basis {
	switch k {
	case KindPulse, KindImpulseTrain:
		return BasisCosine
	default:
		return BasisSine
	}
}

// Gain returns the amplitude of harmonic n (n >= 1). duty is used only by
// KindPulse. Harmonics a waveform does not contain report 0.
func (k Kind) Gain(n int, duty float64) float64 {
	fn := float64(n)
	switch k {
	case KindSaw:
		return 1 / fn
	case KindSquare:
		if n%2 == 0 {
			return 0
		}
		return 1 / fn
	case KindTriangle:
		if n%2 == 0 {
			return 0
		}
		sign := 1.0
		if (n-1)/2%2 == 1 {
			sign = -1
		}
		return sign / (fn * fn)
	case KindPulse:
		return 2 * math.Sin(math.Pi*fn*duty) / (math.Pi * fn)
	case KindImpulseTrain:
		return 1
	default:
		return 0
	}
}

// oddOnly reports whether the waveform holds only odd harmonics.
func (k Kind) oddOnly() bool {
	return k == KindSquare || k == KindTriangle
}
