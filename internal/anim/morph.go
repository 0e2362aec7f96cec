package anim

import (
	"image/color"

	"go-trig-proof/internal/mobject"
	"go-trig-proof/pkg/geom"
	"go-trig-proof/pkg/render"
)

// DefaultIndicateScale is the peak scale of Indicate.
const DefaultIndicateScale = 1.2

// morph blends the live mobject between two snapshots of equal structure.
type morph struct {
	base
	prepare  func(start *mobject.VMobject) (from, to *mobject.VMobject)
	from, to *mobject.VMobject
	remover  bool
	restore  bool
}

func (m *morph) Begin(h Host) {
	m.snapshot(h)
	m.from, m.to = m.prepare(m.start)
	m.Interpolate(0)
}

func (m *morph) Interpolate(alpha float64) {
	m.mob.Interpolate(m.from, m.to, m.eased(alpha))
}

func (m *morph) Finish(h Host) {
	m.Interpolate(1)
	if m.remover {
		h.Remove(m.mob)
	}
	if m.restore {
		m.mob.Become(m.start)
	}
}

// GrowFromCenter scales the mobject up from nothing around its centre.
func GrowFromCenter(m mobject.Mobject, opts ...Option) Animation {
	return &morph{
		base: newBase("GrowFromCenter", m, params{}, opts),
		prepare: func(start *mobject.VMobject) (*mobject.VMobject, *mobject.VMobject) {
			return start.Copy().Scale(0), start
		},
	}
}

// GrowFromEdge scales the mobject up from the edge of its bounding box in
// direction dir.
func GrowFromEdge(m mobject.Mobject, dir geom.Vec, opts ...Option) Animation {
	return &morph{
		base: newBase("GrowFromEdge", m, params{}, opts),
		prepare: func(start *mobject.VMobject) (*mobject.VMobject, *mobject.VMobject) {
			return start.Copy().ScaleAbout(0, start.CriticalPoint(dir)), start
		},
	}
}

// FadeIn raises the opacity of the mobject from zero.
func FadeIn(m mobject.Mobject, opts ...Option) Animation {
	return &morph{
		base: newBase("FadeIn", m, params{}, opts),
		prepare: func(start *mobject.VMobject) (*mobject.VMobject, *mobject.VMobject) {
			return start.Copy().SetOpacity(0), start
		},
	}
}

// FadeOut lowers the opacity to zero and removes the mobject from the scene.
// The mobject keeps its original opacity afterwards so it can be shown again.
func FadeOut(m mobject.Mobject, opts ...Option) Animation {
	return &morph{
		base: newBase("FadeOut", m, params{}, opts),
		prepare: func(start *mobject.VMobject) (*mobject.VMobject, *mobject.VMobject) {
			return start, start.Copy().SetOpacity(0)
		},
		remover: true,
		restore: true,
	}
}

// Indicate briefly enlarges the mobject and tints it yellow.
func Indicate(m mobject.Mobject, opts ...Option) Animation {
	b := newBase("Indicate", m, params{rate: ThereAndBack, scaleFactor: DefaultIndicateScale}, opts)
	return &morph{
		base: b,
		prepare: func(start *mobject.VMobject) (*mobject.VMobject, *mobject.VMobject) {
			return start, start.Copy().Scale(b.scaleFactor).SetColor(render.Yellow)
		},
	}
}

// Builder records transformations to animate towards, the equivalent of
// chaining calls on mobject.animate.
type Builder struct {
	morph
	ops []func(*mobject.VMobject)
}

// Animate starts an animation whose target is the mobject after the
// recorded calls.
func Animate(m mobject.Mobject, opts ...Option) *Builder {
	b := &Builder{morph: morph{base: newBase("Animate", m, params{}, opts)}}
	b.prepare = func(start *mobject.VMobject) (*mobject.VMobject, *mobject.VMobject) {
		target := start.Copy()
		for _, op := range b.ops {
			op(target)
		}
		return start, target
	}
	return b
}

func (b *Builder) Shift(v geom.Vec) *Builder {
	b.ops = append(b.ops, func(m *mobject.VMobject) { m.Shift(v) })
	return b
}

func (b *Builder) MoveTo(p geom.Vec) *Builder {
	b.ops = append(b.ops, func(m *mobject.VMobject) { m.MoveTo(p) })
	return b
}

func (b *Builder) Scale(f float64) *Builder {
	b.ops = append(b.ops, func(m *mobject.VMobject) { m.Scale(f) })
	return b
}

func (b *Builder) Rotate(angle float64) *Builder {
	b.ops = append(b.ops, func(m *mobject.VMobject) { m.Rotate(angle) })
	return b
}

func (b *Builder) SetColor(c color.NRGBA) *Builder {
	b.ops = append(b.ops, func(m *mobject.VMobject) { m.SetColor(c) })
	return b
}
