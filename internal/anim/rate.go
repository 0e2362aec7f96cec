package anim

import "math"

// RateFunc maps linear progress in [0,1] to eased progress.
type RateFunc func(t float64) float64

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

const inflection = 10.0

// Smooth is the default ease-in-out curve.
func Smooth(t float64) float64 {
	e := sigmoid(-inflection / 2)
	v := (sigmoid(inflection*(t-0.5)) - e) / (1 - 2*e)
	return math.Min(math.Max(v, 0), 1)
}

func Linear(t float64) float64 { return t }

// ThereAndBack goes to 1 at the midpoint and returns to 0.
func ThereAndBack(t float64) float64 {
	if t < 0.5 {
		return Smooth(2 * t)
	}
	return Smooth(2 * (1 - t))
}

// RushInto eases in only.
func RushInto(t float64) float64 {
	return 2 * Smooth(t/2)
}

// RushFrom eases out only.
func RushFrom(t float64) float64 {
	return 2*Smooth(t/2+0.5) - 1
}

// lagged returns the local progress of member i of n when members start
// lagRatio of a member's duration apart.
func lagged(alpha float64, i, n int, lagRatio float64) float64 {
	full := float64(n-1)*lagRatio + 1
	v := alpha*full - float64(i)*lagRatio
	return math.Min(math.Max(v, 0), 1)
}
