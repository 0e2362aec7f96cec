package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

const eps = 1e-9

func TestVecRotate(t *testing.T) {
	got := Right.Rotate(math.Pi / 2)
	if !got.Eq(Up, eps) {
		t.Fatalf("rotate right by pi/2 = %v, want %v", got, Up)
	}
	p := V(2, 1).RotateAbout(V(1, 1), math.Pi)
	if !p.Eq(V(0, 1), eps) {
		t.Fatalf("rotate about pivot = %v", p)
	}
	if n := V(3, 4).Norm(); !scalar.EqualWithinAbs(n.Len(), 1, eps) {
		t.Fatalf("norm length %v", n.Len())
	}
	if z := Origin.Norm(); z != Origin {
		t.Fatalf("zero vector changed: %v", z)
	}
}

func TestPolar(t *testing.T) {
	p := Polar(1, math.Pi/4)
	if !scalar.EqualWithinAbs(p.X, math.Sqrt2/2, eps) || !scalar.EqualWithinAbs(p.Y, math.Sqrt2/2, eps) {
		t.Fatalf("polar(1, pi/4) = %v", p)
	}
}

func TestRect(t *testing.T) {
	var zero Rect
	if !zero.Empty() || !EmptyRect().Empty() {
		t.Fatal("zero rect should be empty")
	}
	r := RectFromPoints(V(-1, 2), V(3, -2), V(0, 0))
	if r.Width() != 4 || r.Height() != 4 {
		t.Fatalf("size %vx%v", r.Width(), r.Height())
	}
	if c := r.Center(); !c.Eq(V(1, 0), eps) {
		t.Fatalf("center %v", c)
	}
	cases := []struct {
		dir, want Vec
	}{
		{Up, V(1, 2)},
		{Down, V(1, -2)},
		{Left, V(-1, 0)},
		{V(1, -1), V(3, -2)},
		{Origin, V(1, 0)},
	}
	for _, c := range cases {
		if got := r.CriticalPoint(c.dir); !got.Eq(c.want, eps) {
			t.Errorf("CriticalPoint(%v) = %v, want %v", c.dir, got, c.want)
		}
	}
	u := r.Union(EmptyRect())
	if u != r {
		t.Fatal("union with empty changed the rect")
	}
}

func TestSamples(t *testing.T) {
	s := Samples(4)
	if !floats.EqualApprox(s, []float64{0, 0.25, 0.5, 0.75, 1}, eps) {
		t.Fatalf("samples %v", s)
	}
	if len(Samples(0)) != 2 {
		t.Fatal("at least one interval expected")
	}
}

func TestBezierSplit(t *testing.T) {
	p0, p1, p2, p3 := V(0, 0), V(1, 2), V(3, 2), V(4, 0)
	a, b, c := SplitCubic(p0, p1, p2, p3, 0.5)
	// the head ends on the curve and, reparametrised, follows it
	if !c.Eq(Cubic(p0, p1, p2, p3, 0.5), eps) {
		t.Fatalf("split end %v", c)
	}
	for _, u := range []float64{0.2, 0.6} {
		if !Cubic(p0, a, b, c, u).Eq(Cubic(p0, p1, p2, p3, u/2), eps) {
			t.Fatalf("cubic head differs at %v", u)
		}
	}
	q1, q2 := SplitQuad(p0, p1, p3, 0.25)
	if !Quad(p0, q1, q2, 0.5).Eq(Quad(p0, p1, p3, 0.125), eps) {
		t.Fatal("quad head differs")
	}
}

func TestFlattenEndpoints(t *testing.T) {
	var p Path
	p.MoveTo(V(0, 0))
	p.QuadTo(V(1, 1), V(2, 0))
	p.CubeTo(V(3, 1), V(4, -1), V(5, 0))
	pts := p.Flatten(0.1)
	if !pts[0].Eq(V(0, 0), eps) || !pts[len(pts)-1].Eq(V(5, 0), eps) {
		t.Fatalf("flatten endpoints %v %v", pts[0], pts[len(pts)-1])
	}
	if len(pts) < 10 {
		t.Fatalf("curves were not subdivided: %d points", len(pts))
	}
}

func TestPartial(t *testing.T) {
	sq := NewPolyline(true, V(0, 0), V(1, 0), V(1, 1), V(0, 1))

	if got := sq.Partial(0, 1); len(got.Segs) != len(sq.Segs) {
		t.Fatalf("full partial should be a copy, got %d segs", len(got.Segs))
	}
	if got := sq.Partial(0.5, 0.5); len(got.Segs) != 0 {
		t.Fatal("empty range should give an empty path")
	}

	// the closing edge counts as a fourth segment
	half := sq.Partial(0, 0.5)
	if !half.Start().Eq(V(0, 0), eps) || !half.End().Eq(V(1, 1), eps) {
		t.Fatalf("half square %v -> %v", half.Start(), half.End())
	}
	mid := sq.Partial(0.125, 0.375)
	if !mid.Start().Eq(V(0.5, 0), eps) || !mid.End().Eq(V(1, 0.5), eps) {
		t.Fatalf("middle piece %v -> %v", mid.Start(), mid.End())
	}
	last := sq.Partial(0.75, 1)
	if !last.End().Eq(V(0, 0), eps) {
		t.Fatalf("closing edge ends at %v", last.End())
	}
}

func TestPartialCurve(t *testing.T) {
	var p Path
	p.MoveTo(V(0, 0))
	p.CubeTo(V(0, 1), V(1, 1), V(1, 0))
	piece := p.Partial(0.25, 0.75)
	want0 := Cubic(V(0, 0), V(0, 1), V(1, 1), V(1, 0), 0.25)
	want1 := Cubic(V(0, 0), V(0, 1), V(1, 1), V(1, 0), 0.75)
	if !piece.Start().Eq(want0, 1e-9) || !piece.End().Eq(want1, 1e-9) {
		t.Fatalf("curve slice %v -> %v, want %v -> %v", piece.Start(), piece.End(), want0, want1)
	}
}

func TestLerpPath(t *testing.T) {
	a := NewPolyline(false, V(0, 0), V(2, 0))
	b := NewPolyline(false, V(0, 2), V(2, 4))
	if !a.SameShape(b) {
		t.Fatal("polylines of equal length should match")
	}
	m := LerpPath(a, b, 0.5)
	if !m.Start().Eq(V(0, 1), eps) || !m.End().Eq(V(2, 2), eps) {
		t.Fatalf("lerp %v -> %v", m.Start(), m.End())
	}
	if a.SameShape(NewPolyline(true, V(0, 0), V(2, 0))) {
		t.Fatal("open and closed paths should not match")
	}
}
