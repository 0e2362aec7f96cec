// internal/app/triangle.go
package app

import (
	"math"

	"go-trig-proof/internal/mobject"
	"go-trig-proof/pkg/geom"
	"go-trig-proof/pkg/render"
)

// TriangleStrokeWidth is the stroke of all three sides.
const TriangleStrokeWidth = 3.0

// Triangle is the right triangle inscribed in the unit circle: the radius to
// the point at the angle, its horizontal projection on the x axis and the
// vertical drop from the point to that projection.
type Triangle struct {
	Radius     *mobject.Line
	Horizontal *mobject.Line
	Vertical   *mobject.Line
}

// Vertex returns the point on a circle of the given radius at angle, in
// axis coordinates.
func Vertex(radius, angle float64) geom.Vec {
	return geom.Vec{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
}

// trianglePoints returns the origin, the foot on the x axis and the vertex,
// already mapped to scene points.
func trianglePoints(ax *mobject.Axes, radius, angle float64) (o, foot, v geom.Vec) {
	p := Vertex(radius, angle)
	return ax.C2P(0, 0), ax.C2P(p.X, 0), ax.C2P(p.X, p.Y)
}

// CreateTriangle builds the three sides for the given radius and angle.
func CreateTriangle(ax *mobject.Axes, radius, angle float64) *Triangle {
	o, foot, v := trianglePoints(ax, radius, angle)
	side := mobject.StrokeWidth(TriangleStrokeWidth)
	return &Triangle{
		Radius:     mobject.NewLine(o, v, mobject.Color(render.MediumOrchid1), side),
		Horizontal: mobject.NewLine(o, foot, mobject.Color(render.MediumPurple1), side),
		Vertical:   mobject.NewLine(foot, v, mobject.Color(render.MediumPurple1), side),
	}
}

// UpdateTriangle moves the sides to a new angle in place, keeping their
// style and identity.
func UpdateTriangle(t *Triangle, ax *mobject.Axes, radius, angle float64) *Triangle {
	o, foot, v := trianglePoints(ax, radius, angle)
	t.Radius.PutStartAndEndOn(o, v)
	t.Horizontal.PutStartAndEndOn(o, foot)
	t.Vertical.PutStartAndEndOn(foot, v)
	return t
}

// Lines returns the sides in drawing order.
func (t *Triangle) Lines() []mobject.Mobject {
	return []mobject.Mobject{t.Radius, t.Horizontal, t.Vertical}
}

// Group groups the sides so they can be animated together.
func (t *Triangle) Group() *mobject.Group {
	return mobject.NewGroup(t.Lines()...)
}
