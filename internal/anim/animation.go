// Package anim implements the animations a scene can play. An animation
// snapshots the state of its mobject when it begins and, for every frame,
// rewrites the live mobject from that snapshot.
package anim

import (
	"go-trig-proof/internal/mobject"
)

// DefaultRunTime is the duration of an animation unless overridden.
const DefaultRunTime = 1.0

// Host is the part of a scene an animation may change.
type Host interface {
	Add(ms ...mobject.Mobject)
	Remove(ms ...mobject.Mobject)
}

// Animation is one timed transition of a mobject.
type Animation interface {
	Name() string
	Mobject() *mobject.VMobject
	RunTime() float64
	// Begin is called once before the first frame.
	Begin(h Host)
	// Interpolate sets the mobject to its state at linear progress alpha.
	Interpolate(alpha float64)
	// Finish is called after the last frame.
	Finish(h Host)
}

// Overlay is implemented by animations that draw temporary objects which
// are not part of the scene.
type Overlay interface {
	Overlays() []*mobject.VMobject
}

// Option overrides the timing of an animation.
type Option func(*params)

type params struct {
	runTime     float64
	rate        RateFunc
	scaleFactor float64
	lagRatio    float64
}

// RunTime sets the duration in seconds.
func RunTime(seconds float64) Option {
	return func(p *params) { p.runTime = seconds }
}

// Rate sets the easing curve.
func Rate(f RateFunc) Option {
	return func(p *params) { p.rate = f }
}

// ScaleFactor sets the peak scale of Indicate; other animations ignore it.
func ScaleFactor(f float64) Option {
	return func(p *params) { p.scaleFactor = f }
}

// LagRatio staggers the start of submobjects for animations that support it.
func LagRatio(r float64) Option {
	return func(p *params) { p.lagRatio = r }
}

// base carries the fields every animation shares.
type base struct {
	name string
	mob  *mobject.VMobject
	params
	start *mobject.VMobject
}

func newBase(name string, m mobject.Mobject, defaults params, opts []Option) base {
	p := defaults
	if p.runTime == 0 {
		p.runTime = DefaultRunTime
	}
	if p.rate == nil {
		p.rate = Smooth
	}
	for _, o := range opts {
		o(&p)
	}
	return base{name: name, mob: m.Base(), params: p}
}

func (b *base) Name() string               { return b.name }
func (b *base) Mobject() *mobject.VMobject { return b.mob }
func (b *base) RunTime() float64           { return b.runTime }

// snapshot records the starting state and adds the mobject to the host.
func (b *base) snapshot(h Host) {
	h.Add(b.mob)
	b.start = b.mob.Copy()
}

func (b *base) eased(alpha float64) float64 { return b.rate(alpha) }
