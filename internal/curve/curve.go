package curve

import (
	"fmt"
	"math"
	"time"
)

// Curvature selects how the per-character typing delay is modulated as a
// string progresses from its first character to its last.
type Curvature int

const (
	Linear Curvature = iota
	Bezier
	Exponential
	Sine
)

func (c Curvature) String() string {
	switch c {
	case Linear:
		return "linear"
	case Bezier:
		return "bezier"
	case Exponential:
		return "exponential"
	case Sine:
		return "sine"
	default:
		return "unknown"
	}
}

// Parse maps a curvature name to its Curvature value.
func Parse(name string) (Curvature, error) {
	switch name {
	case "linear":
		return Linear, nil
	case "bezier":
		return Bezier, nil
	case "exponential":
		return Exponential, nil
	case "sine":
		return Sine, nil
	default:
		return Linear, fmt.Errorf("unknown curvature %q", name)
	}
}

// Multiplier returns the speed multiplier in [0,1] for progress p in [0,1).
// A multiplier of 1 means baseline speed, 0 means slowest.
func Multiplier(c Curvature, p float64) float64 {
	switch c {
	case Bezier:
		// cubic ease-in-out
		if p < 0.5 {
			return 4 * p * p * p
		}
		q := -2*p + 2
		return 1 - q*q*q/2
	case Exponential:
		return p * p * p
	case Sine:
		return (math.Sin(p*math.Pi-math.Pi/2) + 1) / 2
	default:
		return 1
	}
}

// Delay computes the effective delay before the next typed character.
// Non-linear curvatures scale typeSpeed by (3 - 2*multiplier), ranging
// from typeSpeed (multiplier 1) to 3x typeSpeed (multiplier 0). Linear
// skips modulation entirely and returns typeSpeed as-is.
func Delay(c Curvature, typeSpeed time.Duration, p float64) time.Duration {
	if c == Linear {
		return typeSpeed
	}
	m := Multiplier(c, p)
	return time.Duration(float64(typeSpeed) * (3 - 2*m))
}
