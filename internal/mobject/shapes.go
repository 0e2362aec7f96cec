package mobject

import (
	"math"

	"go-trig-proof/pkg/geom"
	"go-trig-proof/pkg/render"
)

// Line is a straight segment.
type Line struct {
	*VMobject
}

// NewLine returns a white line of default width from start to end.
func NewLine(start, end geom.Vec, opts ...StyleOption) *Line {
	return &Line{VMobject: &VMobject{
		Name:  "Line",
		Paths: []geom.Path{geom.NewPolyline(false, start, end)},
		Style: strokeStyle(render.White, opts),
	}}
}

func (l *Line) Start() geom.Vec {
	if len(l.Paths) == 0 {
		return geom.Origin
	}
	return l.Paths[0].Start()
}

func (l *Line) End() geom.Vec {
	if len(l.Paths) == 0 {
		return geom.Origin
	}
	return l.Paths[len(l.Paths)-1].End()
}

// PutStartAndEndOn moves the endpoints of the line, keeping its style.
func (l *Line) PutStartAndEndOn(start, end geom.Vec) *Line {
	l.Paths = []geom.Path{geom.NewPolyline(false, start, end)}
	return l
}

// Arc is a circular arc approximated with cubic Bezier pieces.
type Arc struct {
	*VMobject
	Radius     float64
	StartAngle float64
	Angle      float64
}

// arcPath builds an arc around c from start to start+angle.
func arcPath(c geom.Vec, r, start, angle float64, closed bool) geom.Path {
	n := int(math.Ceil(math.Abs(angle) / (math.Pi / 4)))
	if n < 1 {
		n = 1
	}
	step := angle / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	var p geom.Path
	p.Closed = closed
	a0 := start
	p0 := c.Add(geom.Polar(r, a0))
	p.MoveTo(p0)
	for i := 0; i < n; i++ {
		a1 := a0 + step
		p3 := c.Add(geom.Polar(r, a1))
		t0 := geom.Vec{X: -math.Sin(a0), Y: math.Cos(a0)}.Mul(k * r)
		t1 := geom.Vec{X: -math.Sin(a1), Y: math.Cos(a1)}.Mul(k * r)
		p.CubeTo(p0.Add(t0), p3.Sub(t1), p3)
		a0, p0 = a1, p3
	}
	return p
}

// NewArc returns an arc centred at the origin.
func NewArc(radius, startAngle, angle float64, opts ...StyleOption) *Arc {
	return &Arc{
		VMobject: &VMobject{
			Name:  "Arc",
			Paths: []geom.Path{arcPath(geom.Origin, radius, startAngle, angle, false)},
			Style: strokeStyle(render.White, opts),
		},
		Radius:     radius,
		StartAngle: startAngle,
		Angle:      angle,
	}
}

// ArcCenter recovers the centre from the current points, so it follows any
// shift applied to the family.
func (a *Arc) ArcCenter() geom.Vec {
	if len(a.Paths) == 0 {
		return geom.Origin
	}
	p := a.Paths[0]
	c, ok := circumcenter(p.Start(), a.PointFromProportion(0.5), p.End())
	if !ok {
		return a.Center()
	}
	return c
}

// MoveArcCenterTo shifts the arc so that its centre is p.
func (a *Arc) MoveArcCenterTo(p geom.Vec) *Arc {
	a.Shift(p.Sub(a.ArcCenter()))
	return a
}

// Circle is a full arc. The default colour is red.
type Circle struct {
	*Arc
}

func NewCircle(radius float64, opts ...StyleOption) *Circle {
	c := &Circle{Arc: &Arc{
		VMobject: &VMobject{
			Name:  "Circle",
			Paths: []geom.Path{arcPath(geom.Origin, radius, 0, 2*math.Pi, true)},
			Style: strokeStyle(render.Red, opts),
		},
		Radius: radius,
		Angle:  2 * math.Pi,
	}}
	return c
}

// ArcCenter of a circle is its bounding box centre.
func (c *Circle) ArcCenter() geom.Vec { return c.Center() }

// Group is a container whose transforms propagate to its members.
type Group struct {
	*VMobject
}

// NewGroup groups existing objects without copying them.
func NewGroup(ms ...Mobject) *Group {
	g := &Group{VMobject: &VMobject{Name: "VGroup"}}
	g.Add(ms...)
	return g
}

// Members returns the direct submobjects.
func (g *Group) Members() []*VMobject { return g.Submobjects }
