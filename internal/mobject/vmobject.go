// Package mobject holds the vector objects a scene is built from. Every
// object is a VMobject: a set of paths with a style and ordered
// submobjects. Transformations apply to the whole family.
package mobject

import (
	"image/color"
	"math"

	"go-trig-proof/pkg/geom"
	"go-trig-proof/pkg/render"
)

// StrokeWidthUnit converts a stroke width into scene units.
const StrokeWidthUnit = 0.01

// DefaultStrokeWidth matches the width lines are drawn with unless told otherwise.
const DefaultStrokeWidth = 4.0

// Style describes how the paths of one object are painted.
type Style struct {
	StrokeColor   color.NRGBA
	StrokeWidth   float64
	StrokeOpacity float64
	FillColor     color.NRGBA
	FillOpacity   float64
}

// StyleOption configures a style at construction time.
type StyleOption func(*Style)

// Color sets both stroke and fill colour.
func Color(c color.NRGBA) StyleOption {
	return func(s *Style) {
		s.StrokeColor = c
		s.FillColor = c
	}
}

func StrokeWidth(w float64) StyleOption {
	return func(s *Style) { s.StrokeWidth = w }
}

func StrokeOpacity(o float64) StyleOption {
	return func(s *Style) { s.StrokeOpacity = o }
}

func FillOpacity(o float64) StyleOption {
	return func(s *Style) { s.FillOpacity = o }
}

func strokeStyle(c color.NRGBA, opts []StyleOption) Style {
	s := Style{StrokeColor: c, FillColor: c, StrokeWidth: DefaultStrokeWidth, StrokeOpacity: 1}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// Mobject is anything that can hand out its underlying VMobject. Concrete
// types embed *VMobject and get this for free.
type Mobject interface {
	Base() *VMobject
}

// VMobject is a vectorised object.
type VMobject struct {
	Name        string
	Paths       []geom.Path
	Style       Style
	Submobjects []*VMobject
}

func (m *VMobject) Base() *VMobject { return m }

// Family returns m and all of its descendants in draw order.
func (m *VMobject) Family() []*VMobject {
	out := []*VMobject{m}
	for _, sub := range m.Submobjects {
		out = append(out, sub.Family()...)
	}
	return out
}

// Contains reports whether o is m or one of its descendants.
func (m *VMobject) Contains(o *VMobject) bool {
	for _, f := range m.Family() {
		if f == o {
			return true
		}
	}
	return false
}

// Add appends submobjects.
func (m *VMobject) Add(ms ...Mobject) *VMobject {
	for _, o := range ms {
		m.Submobjects = append(m.Submobjects, o.Base())
	}
	return m
}

// HasPoints reports whether the object itself (not its family) draws anything.
func (m *VMobject) HasPoints() bool {
	for _, p := range m.Paths {
		if len(p.Segs) > 0 {
			return true
		}
	}
	return false
}

// Copy returns a deep copy of the whole family.
func (m *VMobject) Copy() *VMobject {
	c := &VMobject{Name: m.Name, Style: m.Style}
	c.Paths = make([]geom.Path, len(m.Paths))
	for i, p := range m.Paths {
		c.Paths[i] = p.Copy()
	}
	for _, sub := range m.Submobjects {
		c.Submobjects = append(c.Submobjects, sub.Copy())
	}
	return c
}

// ApplyFunction maps every point of the family through f.
func (m *VMobject) ApplyFunction(f func(geom.Vec) geom.Vec) *VMobject {
	for _, fm := range m.Family() {
		for i := range fm.Paths {
			fm.Paths[i].Map(f)
		}
	}
	return m
}

// Bounds returns the bounding box of every point in the family.
func (m *VMobject) Bounds() geom.Rect {
	r := geom.EmptyRect()
	for _, fm := range m.Family() {
		for _, p := range fm.Paths {
			for _, v := range p.Points() {
				r = r.Extend(v)
			}
		}
	}
	return r
}

func (m *VMobject) Center() geom.Vec { return m.Bounds().Center() }
func (m *VMobject) Width() float64   { return m.Bounds().Width() }
func (m *VMobject) Height() float64  { return m.Bounds().Height() }

// CriticalPoint returns the bounding-box point in the direction dir, e.g.
// geom.Left gives the centre of the left edge.
func (m *VMobject) CriticalPoint(dir geom.Vec) geom.Vec {
	return m.Bounds().CriticalPoint(dir)
}

func (m *VMobject) Shift(v geom.Vec) *VMobject {
	return m.ApplyFunction(func(p geom.Vec) geom.Vec { return p.Add(v) })
}

// Scale scales the family about its centre.
func (m *VMobject) Scale(f float64) *VMobject {
	return m.ScaleAbout(f, m.Center())
}

func (m *VMobject) ScaleAbout(f float64, pivot geom.Vec) *VMobject {
	return m.ApplyFunction(func(p geom.Vec) geom.Vec { return p.ScaleAbout(pivot, f) })
}

// Rotate rotates the family about its centre.
func (m *VMobject) Rotate(angle float64) *VMobject {
	return m.RotateAbout(angle, m.Center())
}

func (m *VMobject) RotateAbout(angle float64, pivot geom.Vec) *VMobject {
	return m.ApplyFunction(func(p geom.Vec) geom.Vec { return p.RotateAbout(pivot, angle) })
}

// MoveTo shifts the family so that its centre lands on p.
func (m *VMobject) MoveTo(p geom.Vec) *VMobject {
	return m.Shift(p.Sub(m.Center()))
}

// NextTo places m beside target in direction dir, buff units away.
// Only the sign of each component of dir selects the edges; the full
// vector scales the buffer.
func (m *VMobject) NextTo(target Mobject, dir geom.Vec, buff float64) *VMobject {
	return m.NextToPoint(target.Base().CriticalPoint(dir), dir, buff)
}

// NextToPoint is NextTo with a bare point as the target.
func (m *VMobject) NextToPoint(target geom.Vec, dir geom.Vec, buff float64) *VMobject {
	align := m.CriticalPoint(dir.Mul(-1))
	return m.Shift(target.Sub(align).Add(dir.Mul(buff)))
}

// SetColor recolours stroke and fill of the family.
func (m *VMobject) SetColor(c color.NRGBA) *VMobject {
	for _, fm := range m.Family() {
		fm.Style.StrokeColor = c
		fm.Style.FillColor = c
	}
	return m
}

// SetOpacity sets both opacities of the family, keeping invisible parts invisible.
func (m *VMobject) SetOpacity(o float64) *VMobject {
	for _, fm := range m.Family() {
		if fm.Style.StrokeOpacity > 0 || o == 0 {
			fm.Style.StrokeOpacity = o
		}
		if fm.Style.FillOpacity > 0 || o == 0 {
			fm.Style.FillOpacity = o
		}
	}
	return m
}

// Fade multiplies the opacities of the family by (1 - amount).
func (m *VMobject) Fade(amount float64) *VMobject {
	k := 1 - geom.Clamp01(amount)
	for _, fm := range m.Family() {
		fm.Style.StrokeOpacity *= k
		fm.Style.FillOpacity *= k
	}
	return m
}

// Length returns the arc length of the object's own paths.
func (m *VMobject) Length() float64 {
	total := 0.0
	for _, p := range m.Paths {
		total += polylineLength(p.Flatten(1e-3))
	}
	return total
}

// PointFromProportion walks alpha of the way along the object's own paths
// by arc length.
func (m *VMobject) PointFromProportion(alpha float64) geom.Vec {
	var pts [][]geom.Vec
	total := 0.0
	for _, p := range m.Paths {
		f := p.Flatten(1e-3)
		pts = append(pts, f)
		total += polylineLength(f)
	}
	if total == 0 {
		return m.Center()
	}
	want := geom.Clamp01(alpha) * total
	var last geom.Vec
	for _, f := range pts {
		for i := 0; i+1 < len(f); i++ {
			d := f[i].Dist(f[i+1])
			if want <= d && d > 0 {
				return geom.LerpVec(f[i], f[i+1], want/d)
			}
			want -= d
			last = f[i+1]
		}
	}
	return last
}

func polylineLength(pts []geom.Vec) float64 {
	l := 0.0
	for i := 0; i+1 < len(pts); i++ {
		l += pts[i].Dist(pts[i+1])
	}
	return l
}

// Draw paints the object's own paths, fill first and stroke on top.
// Submobjects are drawn by the caller walking Family().
func (m *VMobject) Draw(c *render.Canvas) {
	if !m.HasPoints() {
		return
	}
	tol := 0.75 / c.Cam.PixelsPerUnit()
	s := m.Style
	if s.FillOpacity > 0 {
		var contours [][]geom.Vec
		for _, p := range m.Paths {
			contours = append(contours, p.Flatten(tol))
		}
		c.FillPolygons(contours, render.WithAlpha(s.FillColor, s.FillOpacity))
	}
	if s.StrokeWidth > 0 && s.StrokeOpacity > 0 {
		lines := make([][]geom.Vec, 0, len(m.Paths))
		closed := make([]bool, 0, len(m.Paths))
		for _, p := range m.Paths {
			lines = append(lines, p.Flatten(tol))
			closed = append(closed, p.Closed)
		}
		c.StrokePolylines(lines, closed, s.StrokeWidth*StrokeWidthUnit, render.WithAlpha(s.StrokeColor, s.StrokeOpacity))
	}
}

// circumcenter returns the centre of the circle through a, b and c.
func circumcenter(a, b, c geom.Vec) (geom.Vec, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < 1e-12 {
		return geom.Vec{}, false
	}
	a2, b2, c2 := a.Dot(a), b.Dot(b), c.Dot(c)
	return geom.Vec{
		X: (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d,
		Y: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d,
	}, true
}
