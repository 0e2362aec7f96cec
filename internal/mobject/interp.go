package mobject

import (
	"go-trig-proof/pkg/geom"
	"go-trig-proof/pkg/render"
)

// SameStructure reports whether two families have the same shape, so that
// they can be interpolated member by member and path by path.
func SameStructure(a, b *VMobject) bool {
	fa, fb := a.Family(), b.Family()
	if len(fa) != len(fb) {
		return false
	}
	for i := range fa {
		if len(fa[i].Paths) != len(fb[i].Paths) {
			return false
		}
		for j := range fa[i].Paths {
			if !fa[i].Paths[j].SameShape(fb[i].Paths[j]) {
				return false
			}
		}
	}
	return true
}

// Become overwrites the paths and style of m's family with src's, keeping
// the identity of every member. Both families must have the same number of
// members; extra members on either side are left untouched.
func (m *VMobject) Become(src *VMobject) *VMobject {
	fm, fs := m.Family(), src.Family()
	for i := 0; i < len(fm) && i < len(fs); i++ {
		fm[i].Paths = make([]geom.Path, len(fs[i].Paths))
		for j, p := range fs[i].Paths {
			fm[i].Paths[j] = p.Copy()
		}
		fm[i].Style = fs[i].Style
	}
	return m
}

// Interpolate sets m's family to the blend of a and b at t. a and b must
// have the same structure as m.
func (m *VMobject) Interpolate(a, b *VMobject, t float64) *VMobject {
	fm, fa, fb := m.Family(), a.Family(), b.Family()
	for i := range fm {
		if i >= len(fa) || i >= len(fb) {
			break
		}
		fm[i].InterpolateOwn(fa[i], fb[i], t)
	}
	return m
}

// InterpolateOwn blends only m's own paths and style, ignoring submobjects.
func (m *VMobject) InterpolateOwn(a, b *VMobject, t float64) *VMobject {
	paths := make([]geom.Path, len(a.Paths))
	for j := range a.Paths {
		if j < len(b.Paths) && a.Paths[j].SameShape(b.Paths[j]) {
			paths[j] = geom.LerpPath(a.Paths[j], b.Paths[j], t)
		} else {
			paths[j] = a.Paths[j].Copy()
		}
	}
	m.Paths = paths
	m.Style = LerpStyle(a.Style, b.Style, t)
	return m
}

// PartialFrom sets m's own paths to the [a,b] portion of src's paths.
func (m *VMobject) PartialFrom(src *VMobject, a, b float64) *VMobject {
	m.Paths = m.Paths[:0]
	for _, p := range src.Paths {
		part := p.Partial(a, b)
		if len(part.Segs) > 0 {
			m.Paths = append(m.Paths, part)
		}
	}
	return m
}

// LerpStyle blends two styles.
func LerpStyle(a, b Style, t float64) Style {
	return Style{
		StrokeColor:   render.LerpColor(a.StrokeColor, b.StrokeColor, t),
		StrokeWidth:   geom.Lerp(a.StrokeWidth, b.StrokeWidth, t),
		StrokeOpacity: geom.Lerp(a.StrokeOpacity, b.StrokeOpacity, t),
		FillColor:     render.LerpColor(a.FillColor, b.FillColor, t),
		FillOpacity:   geom.Lerp(a.FillOpacity, b.FillOpacity, t),
	}
}

// MapBounds returns an affine map taking the box from onto the box to.
// Degenerate boxes are handled by keeping the scale at 1 along that axis.
func MapBounds(from, to geom.Rect) func(geom.Vec) geom.Vec {
	sx, sy := 1.0, 1.0
	if from.Width() > 1e-9 {
		sx = to.Width() / from.Width()
	}
	if from.Height() > 1e-9 {
		sy = to.Height() / from.Height()
	}
	fc, tc := from.Center(), to.Center()
	return func(p geom.Vec) geom.Vec {
		return geom.Vec{X: tc.X + (p.X-fc.X)*sx, Y: tc.Y + (p.Y-fc.Y)*sy}
	}
}
