// pkg/geom/rect.go
package geom

import "math"

// Rect is an axis-aligned bounding box in scene units.
// The zero value is empty.
type Rect struct {
	Min, Max Vec
	valid    bool
}

// EmptyRect returns a rect that contains nothing; Extend grows it.
func EmptyRect() Rect {
	return Rect{
		Min: Vec{math.Inf(1), math.Inf(1)},
		Max: Vec{math.Inf(-1), math.Inf(-1)},
	}
}

// RectFromPoints returns the smallest rect holding all points.
func RectFromPoints(pts ...Vec) Rect {
	r := EmptyRect()
	for _, p := range pts {
		r = r.Extend(p)
	}
	return r
}

func (r Rect) Empty() bool { return !r.valid }

// Extend grows the rect to contain p.
func (r Rect) Extend(p Vec) Rect {
	if !r.valid {
		return Rect{Min: p, Max: p, valid: true}
	}
	r.Min = Vec{math.Min(r.Min.X, p.X), math.Min(r.Min.Y, p.Y)}
	r.Max = Vec{math.Max(r.Max.X, p.X), math.Max(r.Max.Y, p.Y)}
	return r
}

// Union returns the rect covering both r and o.
func (r Rect) Union(o Rect) Rect {
	if !o.valid {
		return r
	}
	if !r.valid {
		return o
	}
	return r.Extend(o.Min).Extend(o.Max)
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Center() Vec {
	if !r.valid {
		return Origin
	}
	return LerpVec(r.Min, r.Max, 0.5)
}

// CriticalPoint returns the point of the box selected by the sign of each
// component of dir: -1 picks the min edge, 0 the centre, 1 the max edge.
func (r Rect) CriticalPoint(dir Vec) Vec {
	c := r.Center()
	s := dir.Sign()
	p := c
	switch s.X {
	case -1:
		p.X = r.Min.X
	case 1:
		p.X = r.Max.X
	}
	switch s.Y {
	case -1:
		p.Y = r.Min.Y
	case 1:
		p.Y = r.Max.Y
	}
	return p
}
