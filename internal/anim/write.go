package anim

import (
	"math"

	"go-trig-proof/internal/mobject"
)

// outlineStrokeWidth is the stroke of the border drawn before the fill.
const outlineStrokeWidth = 2.0

// strokeThenFill draws each member's border then fades its fill in. Members
// are staggered by the lag ratio.
type strokeThenFill struct {
	base
	members  []*mobject.VMobject
	starts   []*mobject.VMobject
	outlines []*mobject.VMobject
}

// Write draws text and shapes the way a pen would: border first, then fill.
// Longer objects get more time and a tighter stagger.
func Write(m mobject.Mobject, opts ...Option) Animation {
	n := countDrawn(m.Base())
	p := params{rate: Linear, runTime: 1, lagRatio: 0.2}
	if n >= 15 {
		p.runTime = 2
	}
	if n > 0 {
		p.lagRatio = math.Min(4/float64(n), 0.2)
	}
	return &strokeThenFill{base: newBase("Write", m, p, opts)}
}

func countDrawn(m *mobject.VMobject) int {
	n := 0
	for _, f := range m.Family() {
		if f.HasPoints() {
			n++
		}
	}
	return n
}

func (w *strokeThenFill) Begin(h Host) {
	w.snapshot(h)
	live, start := w.mob.Family(), w.start.Family()
	w.members, w.starts, w.outlines = nil, nil, nil
	for i, f := range live {
		if !f.HasPoints() {
			continue
		}
		s := start[i]
		outline := &mobject.VMobject{Name: s.Name, Paths: s.Copy().Paths, Style: s.Style}
		outline.Style.FillOpacity = 0
		outline.Style.StrokeWidth = outlineStrokeWidth
		outline.Style.StrokeOpacity = 1
		if s.Style.StrokeWidth == 0 || s.Style.StrokeOpacity == 0 {
			outline.Style.StrokeColor = s.Style.FillColor
		}
		w.members = append(w.members, f)
		w.starts = append(w.starts, s)
		w.outlines = append(w.outlines, outline)
	}
	w.Interpolate(0)
}

func (w *strokeThenFill) Interpolate(alpha float64) {
	a := w.eased(alpha)
	n := len(w.members)
	for i, m := range w.members {
		phase := 2 * lagged(a, i, n, w.lagRatio)
		if phase < 1 {
			m.PartialFrom(w.outlines[i], 0, phase)
			m.Style = w.outlines[i].Style
			continue
		}
		m.InterpolateOwn(w.outlines[i], w.starts[i], phase-1)
	}
}

func (w *strokeThenFill) Finish(Host) { w.Interpolate(1) }

// showPartial reveals each member's paths from the start.
type showPartial struct {
	base
	members []*mobject.VMobject
	starts  []*mobject.VMobject
}

// Create traces the outline of the mobject, one member after another.
func Create(m mobject.Mobject, opts ...Option) Animation {
	return &showPartial{base: newBase("Create", m, params{lagRatio: 1}, opts)}
}

func (c *showPartial) Begin(h Host) {
	c.snapshot(h)
	live, start := c.mob.Family(), c.start.Family()
	c.members, c.starts = nil, nil
	for i, f := range live {
		if f.HasPoints() {
			c.members = append(c.members, f)
			c.starts = append(c.starts, start[i])
		}
	}
	c.Interpolate(0)
}

func (c *showPartial) Interpolate(alpha float64) {
	a := c.eased(alpha)
	n := len(c.members)
	for i, m := range c.members {
		m.PartialFrom(c.starts[i], 0, lagged(a, i, n, c.lagRatio))
	}
}

func (c *showPartial) Finish(Host) {
	for i, m := range c.members {
		m.Become(c.starts[i])
	}
}
