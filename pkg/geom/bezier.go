// pkg/geom/bezier.go
package geom

import "gonum.org/v1/gonum/floats"

// Quad evaluates the quadratic Bezier p0,p1,p2 at t.
func Quad(p0, p1, p2 Vec, t float64) Vec {
	u := 1 - t
	return p0.Mul(u * u).Add(p1.Mul(2 * u * t)).Add(p2.Mul(t * t))
}

// Cubic evaluates the cubic Bezier p0..p3 at t.
func Cubic(p0, p1, p2, p3 Vec, t float64) Vec {
	u := 1 - t
	return p0.Mul(u * u * u).
		Add(p1.Mul(3 * u * u * t)).
		Add(p2.Mul(3 * u * t * t)).
		Add(p3.Mul(t * t * t))
}

// SplitQuad splits a quadratic curve at t and returns the control points of
// the first part (de Casteljau).
func SplitQuad(p0, p1, p2 Vec, t float64) (Vec, Vec) {
	a := LerpVec(p0, p1, t)
	b := LerpVec(p1, p2, t)
	return a, LerpVec(a, b, t)
}

// SplitCubic splits a cubic curve at t and returns the control points of the
// first part.
func SplitCubic(p0, p1, p2, p3 Vec, t float64) (Vec, Vec, Vec) {
	a := LerpVec(p0, p1, t)
	b := LerpVec(p1, p2, t)
	c := LerpVec(p2, p3, t)
	ab := LerpVec(a, b, t)
	bc := LerpVec(b, c, t)
	return a, ab, LerpVec(ab, bc, t)
}

// Samples returns n+1 evenly spaced parameters in [0,1].
func Samples(n int) []float64 {
	if n < 1 {
		n = 1
	}
	return floats.Span(make([]float64, n+1), 0, 1)
}

// FlattenQuad appends the polyline approximation of a quadratic curve,
// excluding its start point.
func FlattenQuad(dst []Vec, p0, p1, p2 Vec, n int) []Vec {
	for _, t := range Samples(n)[1:] {
		dst = append(dst, Quad(p0, p1, p2, t))
	}
	return dst
}

// FlattenCubic appends the polyline approximation of a cubic curve,
// excluding its start point.
func FlattenCubic(dst []Vec, p0, p1, p2, p3 Vec, n int) []Vec {
	for _, t := range Samples(n)[1:] {
		dst = append(dst, Cubic(p0, p1, p2, p3, t))
	}
	return dst
}

// CurveSteps picks a subdivision count for a curve whose control polygon has
// the given length, for a target chord length tol.
func CurveSteps(polyLen, tol float64) int {
	if tol <= 0 {
		return 16
	}
	n := int(polyLen/tol) + 1
	if n < 2 {
		return 2
	}
	if n > 64 {
		return 64
	}
	return n
}
