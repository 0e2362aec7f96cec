// internal/app/proof.go
package app

import (
	"fmt"
	"math"

	"go-trig-proof/internal/anim"
	"go-trig-proof/internal/mobject"
	"go-trig-proof/internal/scene"
	"go-trig-proof/pkg/geom"
	"go-trig-proof/pkg/render"
)

// Markup of every label, in the order the proof creates them.
const (
	RadiusLabel    = "Radius = 1"
	Pythagoras     = `\text{horizontal}^2 + \text{vertical}^2 = \text{hypotenuse}^2`
	SinRatio       = `sin\theta`
	CosRatio       = `cos\theta`
	SinEqualsB     = `\sin\theta = b`
	CosEqualsA     = `\cos\theta = a`
	SinSquared     = `\sin^2\theta = b^2`
	CosSquared     = `\cos^2\theta = a^2`
	Identity       = `\sin^2\theta + \cos^2\theta = 1`
	fractionBar    = "-"
	fractionBarMag = 2.7
)

// Labels returns the markup of every label in order of creation.
func Labels() []string {
	return []string{
		RadiusLabel, "a", "b", `\theta`,
		Pythagoras, "a^2", "b^2", "radius^2", "+", "=",
		SinRatio, "=", fractionBar, "Radius",
		CosRatio, "=", fractionBar, "Radius",
		"= 1", "= 1",
		SinEqualsB, CosEqualsA, SinSquared, CosSquared,
		Identity,
	}
}

// NewAxes returns the [-1, 1] axes of the unit circle, four units long.
func NewAxes() (*mobject.Axes, error) {
	axis := mobject.DefaultAxisConfig()
	axis.IncludeNumbers = true
	axis.IncludeTip = false
	axis.TickSize = 0.05
	axis.NumbersWithElongatedTicks = []float64{-1, 1}
	return mobject.NewAxes(mobject.AxesConfig{
		XRange:  [3]float64{-1, 1, 1},
		YRange:  [3]float64{-1, 1, 1},
		XLength: 4,
		YLength: 4,
		XAxis:   axis,
		YAxis:   axis,
	})
}

// NewPlane returns the thistle background grid.
func NewPlane() (*mobject.NumberPlane, error) {
	return mobject.NewNumberPlane(mobject.PlaneConfig{
		XRange: [3]float64{-3, 3, 1},
		YRange: [3]float64{-3, 3, 1},
		BackgroundLineStyle: mobject.LineStyle{
			Color:   render.Thistle,
			Width:   2,
			Opacity: 0.6,
		},
	})
}

// Proof holds the objects of the animation so they can be inspected after
// a run.
type Proof struct {
	Axes     *mobject.Axes
	Plane    *mobject.NumberPlane
	Circle   *mobject.Circle
	Triangle *Triangle
	Arc      *mobject.Arc
	Texts    []*mobject.MathTex

	// labels of the triangle, reused by the later steps
	hyp, a, b *mobject.MathTex
	// a², +, b², =, radius²
	formula *mobject.Group

	err error
}

// NewProof returns an empty proof; Construct fills it.
func NewProof() *Proof {
	return &Proof{}
}

// Construct is the scene function: it runs a fresh Proof against s.
func Construct(s *scene.Scene) error {
	return NewProof().Construct(s)
}

// label typesets markup. A failure is kept and reported by Construct; the
// returned placeholder is empty so the rest of the script still runs.
func (p *Proof) label(markup string) *mobject.MathTex {
	t, err := mobject.NewMathTex(markup)
	if err != nil {
		if p.err == nil {
			p.err = fmt.Errorf("label %q: %w", markup, err)
		}
		t = &mobject.MathTex{VMobject: &mobject.VMobject{Name: "MathTex"}, Tex: markup}
	}
	p.Texts = append(p.Texts, t)
	return t
}

// Construct plays the whole derivation of sin²θ + cos²θ = 1.
func (p *Proof) Construct(s *scene.Scene) error {
	var err error
	if p.Axes, err = NewAxes(); err != nil {
		return fmt.Errorf("axes: %w", err)
	}
	if p.Plane, err = NewPlane(); err != nil {
		return fmt.Errorf("plane: %w", err)
	}
	ax := p.Axes
	origin := ax.C2P(0, 0)

	p.Circle = mobject.NewCircle(2, mobject.Color(render.LightPeriwinkle))
	p.Circle.MoveTo(origin)

	s.Add(p.Plane, ax)
	s.Play(anim.GrowFromCenter(ax))
	s.Wait(1)
	s.Play(anim.GrowFromCenter(p.Circle, anim.RunTime(2)))
	s.Wait(1)

	p.buildTriangle(s)
	p.labelTriangle(s)
	p.squares(s)
	p.ratios(s)
	p.identity(s)

	if p.err != nil {
		return p.err
	}
	return s.Err()
}

// buildTriangle grows the three sides one by one, then shows the triangle
// in the third quadrant and brings it back.
func (p *Proof) buildTriangle(s *scene.Scene) {
	tri := CreateTriangle(p.Axes, 1, math.Pi/4)
	p.Triangle = tri

	s.Play(anim.GrowFromCenter(tri.Radius, anim.RunTime(2)))
	s.Wait(1)
	s.Add(tri.Radius)

	s.Play(anim.GrowFromEdge(tri.Horizontal, geom.Left, anim.RunTime(2)))
	s.Wait(1)
	s.Add(tri.Horizontal)

	s.Play(anim.GrowFromEdge(tri.Vertical, geom.Down, anim.RunTime(2)))
	s.Wait(1)
	s.Add(tri.Vertical)

	group := tri.Group()
	s.Wait(1)
	s.Play(anim.FadeOut(group, anim.RunTime(2)))

	UpdateTriangle(tri, p.Axes, 1, 5*math.Pi/4)
	s.Play(anim.FadeIn(group, anim.RunTime(2)))
	s.Wait(3)
	s.Play(anim.FadeOut(group, anim.RunTime(2)))
	s.Wait(2)

	UpdateTriangle(tri, p.Axes, 1, math.Pi/4)
	s.Play(anim.FadeIn(group, anim.RunTime(2)))
}

func (p *Proof) labelTriangle(s *scene.Scene) {
	tri := p.Triangle
	p.Arc = mobject.NewArc(0.4, 0, math.Pi/4, mobject.Color(render.Cyan1), mobject.StrokeWidth(2))
	p.Arc.MoveArcCenterTo(p.Axes.C2P(0, 0))

	hyp := p.label(RadiusLabel)
	hyp.Rotate(math.Pi / 4).Scale(0.5)
	hyp.MoveTo(tri.Radius.Center().Add(geom.V(0.002, 0.3)))
	a := p.label("a")
	a.NextTo(tri.Horizontal, geom.Down, 0.1).Scale(0.6)
	b := p.label("b")
	b.NextTo(tri.Vertical, geom.Right, 0.1).Scale(0.6)

	// θ sits just right of the arc
	thetaPos := p.Arc.PointFromProportion(0.3).Add(geom.V(0.2, 0.1))
	theta := p.label(`\theta`)
	theta.MoveTo(thetaPos).Scale(0.6)

	s.Play(anim.Write(hyp))
	s.Play(anim.Write(a))
	s.Play(anim.Write(b))
	s.Play(anim.GrowFromCenter(p.Arc, anim.RunTime(2)))
	s.Add(p.Arc)
	s.Play(anim.Write(theta))

	all := mobject.NewGroup(p.Plane, p.Axes, p.Circle, tri.Radius, tri.Horizontal, tri.Vertical, p.Arc, hyp, a, b, theta)
	s.Play(anim.Animate(all).Shift(geom.Left.Mul(3)))
	s.Wait(1)

	p.hyp, p.a, p.b = hyp, a, b
}

// squares copies a, b and the radius into a² + b² = radius² under the
// worded theorem.
func (p *Proof) squares(s *scene.Scene) {
	theorem := p.label(Pythagoras)
	theorem.Scale(0.7).MoveTo(geom.V(3.3, 3.1))
	s.Play(anim.Write(theorem))
	s.Wait(2)

	s.Play(anim.Indicate(p.a, anim.ScaleFactor(2.5), anim.RunTime(2)))
	s.Wait(1)
	aSq := p.label("a^2")
	aSq.MoveTo(geom.V(1.4, 2.4)).Scale(0.8)
	s.Play(anim.TransformFromCopy(p.a, aSq))
	s.Wait(1)

	s.Play(anim.Indicate(p.b, anim.ScaleFactor(2.5), anim.RunTime(2)))
	s.Wait(1)
	bSq := p.label("b^2")
	bSq.MoveTo(geom.V(2.9, 2.4)).Scale(0.8)
	s.Play(anim.TransformFromCopy(p.b, bSq))
	s.Wait(1)

	s.Play(anim.Indicate(p.hyp, anim.ScaleFactor(1.5), anim.RunTime(2)))
	s.Wait(1)
	cSq := p.label("radius^2")
	cSq.MoveTo(geom.V(4.6, 2.4)).Scale(0.8)
	s.Play(anim.TransformFromCopy(p.hyp, cSq))

	plus := p.label("+")
	plus.MoveTo(geom.V(2.1, 2.4)).Scale(0.8)
	equals := p.label("=")
	equals.MoveTo(geom.V(3.5, 2.35)).Scale(0.8)
	s.Play(anim.Write(plus))
	s.Play(anim.Write(equals))
	s.Wait(3)

	p.formula = mobject.NewGroup(aSq, plus, bSq, equals, cSq)
}

// ratio writes "<name> = side / Radius" with the numerator flown in from the
// triangle and the denominator copied from the hypotenuse label.
func (p *Proof) ratio(s *scene.Scene, name string, at geom.Vec, side *mobject.MathTex, num, den geom.Vec, numScale float64) {
	fn := p.label(name)
	fn.MoveTo(at).Scale(0.8)
	eq := p.label("=")
	eq.Scale(0.8).NextTo(fn, geom.Right, 0.1)
	bar := p.label(fractionBar)
	bar.Scale(fractionBarMag).NextTo(eq, geom.Right, 0.1)
	s.Play(anim.Write(fn))
	s.Play(anim.Write(eq))
	s.Play(anim.Write(bar))
	s.Wait(2)

	s.Play(anim.Indicate(side, anim.ScaleFactor(2.0), anim.RunTime(2)))
	numerator := side.Copy()
	s.Play(anim.Animate(numerator).MoveTo(num).Scale(numScale))
	s.Wait(2)

	s.Play(anim.Indicate(p.hyp, anim.ScaleFactor(1.5), anim.RunTime(2)))
	s.Wait(1)
	denominator := p.label("Radius")
	denominator.MoveTo(den).Scale(0.66)
	s.Play(anim.TransformFromCopy(p.hyp, denominator))
	s.Wait(3)
}

func (p *Proof) ratios(s *scene.Scene) {
	p.ratio(s, SinRatio, geom.V(1.2, 1.5), p.b, geom.V(2.35, 1.8), geom.V(2.4, 1.2), 0.4/0.3)
	p.ratio(s, CosRatio, geom.V(3.7, 1.5), p.a, geom.V(4.9, 1.8), geom.V(5, 1.2), 0.4/0.27)

	// the radius is 1, so both denominators are struck out
	cancelSin := mobject.NewLine(geom.V(2.0, 1.3), geom.V(2.6, 1.1), mobject.Color(render.Red))
	oneSin := p.label("= 1")
	oneSin.NextTo(cancelSin, geom.Down.Mul(0.2), 0.1).Scale(0.65)
	cancelCos := mobject.NewLine(geom.V(4.7, 1.3), geom.V(5.3, 1.1), mobject.Color(render.Red))
	oneCos := p.label("= 1")
	oneCos.NextTo(cancelCos, geom.Down.Mul(0.2), 0.1).Scale(0.65)

	s.Play(anim.Write(cancelSin), anim.Write(oneSin))
	s.Play(anim.Write(cancelCos), anim.Write(oneCos))
	s.Wait(3)
}

// identity squares sinθ = b and cosθ = a and turns a² + b² = radius² into
// the final identity.
func (p *Proof) identity(s *scene.Scene) {
	sinB := p.label(SinEqualsB)
	sinB.MoveTo(geom.V(1.65, 0.4)).Scale(0.8)
	s.Play(anim.Write(sinB))
	cosA := p.label(CosEqualsA)
	cosA.MoveTo(geom.V(4.35, 0.4)).Scale(0.8)
	s.Play(anim.Write(cosA))

	sinSq := p.label(SinSquared)
	sinSq.MoveTo(geom.V(1.6, -0.35)).Scale(0.8)
	s.Play(anim.TransformFromCopy(sinB, sinSq))
	s.Wait(2)
	cosSq := p.label(CosSquared)
	cosSq.MoveTo(geom.V(4.3, -0.35)).Scale(0.8)
	s.Play(anim.TransformFromCopy(cosA, cosSq))
	s.Wait(5)

	s.Play(anim.Transform(p.formula, p.formula.Copy()))
	s.Wait(2)

	final := p.label(Identity)
	final.MoveTo(geom.V(2.9, -1.2)).Scale(0.8)
	s.Play(anim.TransformFromCopy(p.formula, final, anim.RunTime(1.5)))
	s.Wait(3)
}
