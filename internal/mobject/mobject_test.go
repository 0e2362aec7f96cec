package mobject

import (
	"math"
	"testing"

	"go-trig-proof/pkg/geom"
	"go-trig-proof/pkg/render"

	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

func TestCopyIsDeep(t *testing.T) {
	l := NewLine(geom.V(0, 0), geom.V(1, 0))
	g := NewGroup(l)
	c := g.Copy()
	c.Shift(geom.V(5, 5))
	if !l.Start().Eq(geom.V(0, 0), tol) {
		t.Fatal("copy shares points with the original")
	}
	if !SameStructure(g.VMobject, c) {
		t.Fatal("copy changed structure")
	}
}

func TestTransforms(t *testing.T) {
	l := NewLine(geom.V(-1, 0), geom.V(1, 0))
	l.Rotate(math.Pi / 2)
	if !l.Start().Eq(geom.V(0, -1), tol) || !l.End().Eq(geom.V(0, 1), tol) {
		t.Fatalf("rotated line %v -> %v", l.Start(), l.End())
	}
	l.Scale(3)
	if !scalar.EqualWithinAbs(l.Height(), 6, tol) {
		t.Fatalf("height %v", l.Height())
	}
	l.MoveTo(geom.V(2, 2))
	if !l.Center().Eq(geom.V(2, 2), tol) {
		t.Fatalf("centre %v", l.Center())
	}
}

func TestNextTo(t *testing.T) {
	base := NewLine(geom.V(0, 0), geom.V(2, 0))
	dot := NewCircle(0.5)

	dot.NextTo(base, geom.Down, 0.1)
	if got := dot.CriticalPoint(geom.Up); !got.Eq(geom.V(1, -0.1), tol) {
		t.Fatalf("below: top of circle at %v", got)
	}
	dot.NextTo(base, geom.Right, 0.25)
	if got := dot.CriticalPoint(geom.Left); !got.Eq(geom.V(2.25, 0), tol) {
		t.Fatalf("right: left of circle at %v", got)
	}
	// a shorter direction shrinks the buffer too
	dot.NextTo(base, geom.Down.Mul(0.2), 0.1)
	if got := dot.CriticalPoint(geom.Up); !got.Eq(geom.V(1, -0.02), tol) {
		t.Fatalf("scaled buffer: top of circle at %v", got)
	}
}

func TestStyle(t *testing.T) {
	l := NewLine(geom.V(0, 0), geom.V(1, 0), Color(render.Red), StrokeWidth(3))
	if l.Style.StrokeWidth != 3 || l.Style.StrokeColor != render.Red {
		t.Fatalf("style %+v", l.Style)
	}
	l.SetOpacity(0.5)
	if l.Style.StrokeOpacity != 0.5 || l.Style.FillOpacity != 0 {
		t.Fatalf("an unfilled line gained a fill: %+v", l.Style)
	}
	l.SetOpacity(0)
	if l.Style.StrokeOpacity != 0 {
		t.Fatal("opacity not cleared")
	}
	s := LerpStyle(Style{StrokeWidth: 2}, Style{StrokeWidth: 4, StrokeOpacity: 1}, 0.5)
	if s.StrokeWidth != 3 || s.StrokeOpacity != 0.5 {
		t.Fatalf("lerp %+v", s)
	}
}

func TestArc(t *testing.T) {
	a := NewArc(0.4, 0, math.Pi/4)
	a.MoveArcCenterTo(geom.V(-3, 1))
	if c := a.ArcCenter(); !c.Eq(geom.V(-3, 1), 1e-6) {
		t.Fatalf("arc centre %v", c)
	}
	if !a.Paths[0].Start().Eq(geom.V(-2.6, 1), 1e-6) {
		t.Fatalf("arc start %v", a.Paths[0].Start())
	}
	if !scalar.EqualWithinAbs(a.Length(), 0.4*math.Pi/4, 1e-4) {
		t.Fatalf("arc length %v", a.Length())
	}
	mid := a.PointFromProportion(0.5)
	if !scalar.EqualWithinAbs(mid.Dist(geom.V(-3, 1)), 0.4, 1e-4) {
		t.Fatalf("midpoint %v is off the circle", mid)
	}
}

func TestCircle(t *testing.T) {
	c := NewCircle(2, Color(render.LightPeriwinkle))
	if !scalar.EqualWithinAbs(c.Width(), 4, tol) || !c.Center().Eq(geom.Origin, tol) {
		t.Fatalf("circle %v wide at %v", c.Width(), c.Center())
	}
	if !c.Paths[0].Closed {
		t.Fatal("circle should be closed")
	}
	if !scalar.EqualWithinAbs(c.Length(), 4*math.Pi, 1e-3) {
		t.Fatalf("circumference %v", c.Length())
	}
}

func TestInterpolate(t *testing.T) {
	a := NewLine(geom.V(0, 0), geom.V(2, 0))
	b := NewLine(geom.V(0, 2), geom.V(2, 2), Color(render.Red))
	m := a.Copy()
	m.Interpolate(a.VMobject, b.VMobject, 0.5)
	if !m.Paths[0].Start().Eq(geom.V(0, 1), tol) {
		t.Fatalf("midway start %v", m.Paths[0].Start())
	}

	m.PartialFrom(a.VMobject, 0, 0.5)
	if !m.Paths[0].End().Eq(geom.V(1, 0), tol) {
		t.Fatalf("partial end %v", m.Paths[0].End())
	}
	m.Become(b.VMobject)
	if m.Style.StrokeColor != render.Red || !m.Paths[0].End().Eq(geom.V(2, 2), tol) {
		t.Fatal("become did not copy")
	}
	// Become copies the paths
	m.Shift(geom.V(1, 0))
	if !b.End().Eq(geom.V(2, 2), tol) {
		t.Fatal("become shares points")
	}
}

func TestMapBounds(t *testing.T) {
	from := geom.RectFromPoints(geom.V(0, 0), geom.V(2, 1))
	to := geom.RectFromPoints(geom.V(-1, -1), geom.V(3, 1))
	f := MapBounds(from, to)
	if got := f(geom.V(2, 1)); !got.Eq(geom.V(3, 1), tol) {
		t.Fatalf("corner maps to %v", got)
	}
	// a flat box keeps its scale along the flat axis
	flat := geom.RectFromPoints(geom.V(0, 0), geom.V(2, 0))
	g := MapBounds(flat, to)
	if got := g(geom.V(0, 0.5)); !got.Eq(geom.V(-1, 0.5), tol) {
		t.Fatalf("flat box maps to %v", got)
	}
}

func TestAxes(t *testing.T) {
	cfg := DefaultAxisConfig()
	cfg.IncludeNumbers = true
	ax, err := NewAxes(AxesConfig{
		XRange: [3]float64{-1, 1, 1}, YRange: [3]float64{-1, 1, 1},
		XLength: 4, YLength: 4,
		XAxis: cfg, YAxis: cfg,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := ax.C2P(0, 0); !got.Eq(geom.Origin, tol) {
		t.Fatalf("origin at %v", got)
	}
	if got := ax.C2P(1, -1); !got.Eq(geom.V(2, -2), tol) {
		t.Fatalf("(1,-1) at %v", got)
	}
	x, y := ax.P2C(geom.V(1, 1))
	if !scalar.EqualWithinAbs(x, 0.5, tol) || !scalar.EqualWithinAbs(y, 0.5, tol) {
		t.Fatalf("P2C = %v, %v", x, y)
	}
	// 0 is excluded, so each axis labels -1 and 1
	if n := len(ax.XAxis.Numbers.Members()); n != 2 {
		t.Fatalf("%d x labels", n)
	}
	one, err := NewMathTex("1")
	if err != nil {
		t.Fatal(err)
	}
	label := ax.XAxis.Numbers.Members()[1]
	if !scalar.EqualWithinAbs(label.Height(), one.Height()*0.75, 1e-9) {
		t.Fatalf("label height %v, want three quarters of %v", label.Height(), one.Height())
	}

	// C2P follows the axes when they move
	ax.Shift(geom.V(-3, 0))
	if got := ax.C2P(0, 0); !got.Eq(geom.V(-3, 0), tol) {
		t.Fatalf("moved origin at %v", got)
	}
}

func TestNumberPlane(t *testing.T) {
	p, err := NewNumberPlane(PlaneConfig{
		XRange:              [3]float64{-3, 3, 1},
		YRange:              [3]float64{-3, 3, 1},
		BackgroundLineStyle: LineStyle{Color: render.Thistle, Width: 2, Opacity: 0.6},
	})
	if err != nil {
		t.Fatal(err)
	}
	if n := len(p.Background.Members()); n != 14 {
		t.Fatalf("%d grid lines, want 14", n)
	}
	if st := p.Background.Members()[0].Style; st.StrokeOpacity != 0.6 || st.StrokeColor != render.Thistle {
		t.Fatalf("grid style %+v", st)
	}

	plain, err := NewNumberPlane(PlaneConfig{XRange: [3]float64{-1, 1, 1}, YRange: [3]float64{-1, 1, 1}})
	if err != nil {
		t.Fatal(err)
	}
	st := plain.Background.Members()[0].Style
	if st.StrokeColor != render.BlueD || st.StrokeWidth != 2 || st.StrokeOpacity != 1 {
		t.Fatalf("default grid style %+v", st)
	}
}

func TestMathTex(t *testing.T) {
	tex, err := NewMathTex(`\sin^2\theta = b^2`)
	if err != nil {
		t.Fatal(err)
	}
	// s i n 2 θ = b 2
	if n := len(tex.Glyphs()); n != 8 {
		t.Fatalf("%d glyphs", n)
	}
	if !tex.Center().Eq(geom.Origin, tol) {
		t.Fatalf("not centred: %v", tex.Center())
	}
	if h := tex.Height(); h < 0.3 || h > 1.2 {
		t.Fatalf("unexpected height %v", h)
	}
	if tex.String() != `\sin^2\theta = b^2` {
		t.Fatal("markup lost")
	}
	if _, err := NewMathTex(`\frac{1}{2}`); err == nil {
		t.Fatal("unknown command accepted")
	}
}
