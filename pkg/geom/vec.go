// pkg/geom/vec.go
package geom

import "math"

// Vec is a point or direction in scene units (y up).
type Vec struct {
	X, Y float64
}

// Direction constants in the same spirit as the unit vectors a scene script uses.
var (
	Origin = Vec{0, 0}
	Up     = Vec{0, 1}
	Down   = Vec{0, -1}
	Left   = Vec{-1, 0}
	Right  = Vec{1, 0}
)

func V(x, y float64) Vec { return Vec{x, y} }

func (a Vec) Add(b Vec) Vec { return Vec{a.X + b.X, a.Y + b.Y} }
func (a Vec) Sub(b Vec) Vec { return Vec{a.X - b.X, a.Y - b.Y} }
func (a Vec) Mul(s float64) Vec { return Vec{a.X * s, a.Y * s} }
func (a Vec) Dot(b Vec) float64 { return a.X*b.X + a.Y*b.Y }
func (a Vec) Len() float64 { return math.Hypot(a.X, a.Y) }
func (a Vec) Dist(b Vec) float64 { return a.Sub(b).Len() }
func (a Vec) Eq(b Vec, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// Norm returns a unit-length version of the vector.
// A zero vector is returned unchanged.
func (a Vec) Norm() Vec {
	l := a.Len()
	if l == 0 {
		return a
	}
	return Vec{a.X / l, a.Y / l}
}

// Rotate rotates the vector by angle radians counter-clockwise around the origin.
func (a Vec) Rotate(angle float64) Vec {
	s, c := math.Sincos(angle)
	return Vec{a.X*c - a.Y*s, a.X*s + a.Y*c}
}

// RotateAbout rotates a around pivot.
func (a Vec) RotateAbout(pivot Vec, angle float64) Vec {
	return a.Sub(pivot).Rotate(angle).Add(pivot)
}

// ScaleAbout scales a relative to pivot.
func (a Vec) ScaleAbout(pivot Vec, s float64) Vec {
	return pivot.Add(a.Sub(pivot).Mul(s))
}

// Polar returns the point at radius r and angle theta around the origin.
func Polar(r, theta float64) Vec {
	s, c := math.Sincos(theta)
	return Vec{r * c, r * s}
}

// Sign returns the component-wise sign of the vector (-1, 0 or 1).
func (a Vec) Sign() Vec {
	return Vec{sign(a.X), sign(a.Y)}
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
