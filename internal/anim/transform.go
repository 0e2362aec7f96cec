package anim

import "go-trig-proof/internal/mobject"

// transform morphs a mobject into a target. When both have the same
// structure the points are interpolated directly; otherwise the source is
// stretched onto the target's bounds while fading out and a ghost of the
// target grows out of the source's bounds while fading in.
type transform struct {
	base
	target   *mobject.VMobject
	fromCopy bool

	src    *mobject.VMobject // what is animated: the live mobject or its copy
	from   *mobject.VMobject
	to     *mobject.VMobject
	ghost  *mobject.VMobject
	ghostA *mobject.VMobject
	ghostB *mobject.VMobject
	srcB   *mobject.VMobject
	same   bool
}

// Transform turns m into target. The mobject keeps its identity; afterwards
// it looks like target.
func Transform(m, target mobject.Mobject, opts ...Option) Animation {
	return &transform{base: newBase("Transform", m, params{}, opts), target: target.Base()}
}

// TransformFromCopy leaves m in place and morphs a copy of it into target,
// which is added to the scene when the animation ends.
func TransformFromCopy(m, target mobject.Mobject, opts ...Option) Animation {
	return &transform{base: newBase("TransformFromCopy", m, params{}, opts), target: target.Base(), fromCopy: true}
}

func (t *transform) Begin(h Host) {
	if t.fromCopy {
		t.start = t.mob.Copy()
		t.src = t.mob.Copy()
	} else {
		t.snapshot(h)
		t.src = t.mob
	}
	t.from = t.start
	t.to = t.target.Copy()
	t.same = mobject.SameStructure(t.from, t.to)
	if !t.same {
		fromBox, toBox := t.from.Bounds(), t.to.Bounds()
		t.srcB = t.from.Copy().ApplyFunction(mobject.MapBounds(fromBox, toBox)).SetOpacity(0)
		t.ghostA = t.to.Copy().ApplyFunction(mobject.MapBounds(toBox, fromBox)).SetOpacity(0)
		t.ghostB = t.to
		t.ghost = t.ghostA.Copy()
	}
	t.Interpolate(0)
}

func (t *transform) Interpolate(alpha float64) {
	a := t.eased(alpha)
	if t.same {
		t.src.Interpolate(t.from, t.to, a)
		return
	}
	t.src.Interpolate(t.from, t.srcB, a)
	t.ghost.Interpolate(t.ghostA, t.ghostB, a)
}

// Overlays returns what must be drawn on top of the scene while the
// animation runs but is not itself part of the scene.
func (t *transform) Overlays() []*mobject.VMobject {
	var out []*mobject.VMobject
	if t.fromCopy && t.src != nil {
		out = append(out, t.src)
	}
	if t.ghost != nil {
		out = append(out, t.ghost)
	}
	return out
}

func (t *transform) Finish(h Host) {
	t.Interpolate(1)
	if t.fromCopy {
		h.Add(t.target)
		t.src, t.ghost = nil, nil
		return
	}
	if !t.same {
		// adopt the target's structure; members of the old family are gone
		replacement := t.target.Copy()
		t.mob.Paths = replacement.Paths
		t.mob.Style = replacement.Style
		t.mob.Submobjects = replacement.Submobjects
		t.ghost = nil
	}
}

// ReplacementTransform is Transform that swaps m for target in the scene.
func ReplacementTransform(m, target mobject.Mobject, opts ...Option) Animation {
	return &replacement{transform{base: newBase("ReplacementTransform", m, params{}, opts), target: target.Base()}}
}

type replacement struct{ transform }

func (r *replacement) Finish(h Host) {
	r.transform.Finish(h)
	h.Remove(r.mob)
	h.Add(r.target)
}
