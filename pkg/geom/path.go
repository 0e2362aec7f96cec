// pkg/geom/path.go
package geom

// SegOp identifies how a path segment reaches its end point.
type SegOp uint8

const (
	OpMove SegOp = iota
	OpLine
	OpQuad
	OpCubic
)

// Seg is one path command. Only the first N points are used: 1 for move and
// line, 2 for quadratic, 3 for cubic. The last used point is the end point.
type Seg struct {
	Op  SegOp
	Pts [3]Vec
}

func (s Seg) n() int {
	switch s.Op {
	case OpQuad:
		return 2
	case OpCubic:
		return 3
	}
	return 1
}

// End returns the point the segment finishes on.
func (s Seg) End() Vec { return s.Pts[s.n()-1] }

// Path is a single contour, always starting with a move.
type Path struct {
	Segs   []Seg
	Closed bool
}

// NewPolyline builds a path through pts.
func NewPolyline(closed bool, pts ...Vec) Path {
	p := Path{Closed: closed}
	for i, v := range pts {
		op := OpLine
		if i == 0 {
			op = OpMove
		}
		p.Segs = append(p.Segs, Seg{Op: op, Pts: [3]Vec{v}})
	}
	return p
}

// MoveTo / LineTo / QuadTo / CubeTo append commands.
func (p *Path) MoveTo(a Vec) { p.Segs = append(p.Segs, Seg{Op: OpMove, Pts: [3]Vec{a}}) }
func (p *Path) LineTo(a Vec) { p.Segs = append(p.Segs, Seg{Op: OpLine, Pts: [3]Vec{a}}) }
func (p *Path) QuadTo(a, b Vec) {
	p.Segs = append(p.Segs, Seg{Op: OpQuad, Pts: [3]Vec{a, b}})
}
func (p *Path) CubeTo(a, b, c Vec) {
	p.Segs = append(p.Segs, Seg{Op: OpCubic, Pts: [3]Vec{a, b, c}})
}

// Copy returns a deep copy.
func (p Path) Copy() Path {
	p.Segs = append([]Seg(nil), p.Segs...)
	return p
}

// Start returns the first point of the path.
func (p Path) Start() Vec {
	if len(p.Segs) == 0 {
		return Origin
	}
	return p.Segs[0].Pts[0]
}

// End returns the last point of the path.
func (p Path) End() Vec {
	if len(p.Segs) == 0 {
		return Origin
	}
	return p.Segs[len(p.Segs)-1].End()
}

// Map applies f to every stored point, control points included.
func (p *Path) Map(f func(Vec) Vec) {
	for i := range p.Segs {
		for j := 0; j < p.Segs[i].n(); j++ {
			p.Segs[i].Pts[j] = f(p.Segs[i].Pts[j])
		}
	}
}

// Points returns every stored point; used for bounds and point-wise interpolation.
func (p Path) Points() []Vec {
	var out []Vec
	for _, s := range p.Segs {
		out = append(out, s.Pts[:s.n()]...)
	}
	return out
}

// SameShape reports whether two paths have identical command sequences and can
// be interpolated point by point.
func (p Path) SameShape(o Path) bool {
	if len(p.Segs) != len(o.Segs) || p.Closed != o.Closed {
		return false
	}
	for i := range p.Segs {
		if p.Segs[i].Op != o.Segs[i].Op {
			return false
		}
	}
	return true
}

// LerpPath interpolates two paths of the same shape.
func LerpPath(a, b Path, t float64) Path {
	out := a.Copy()
	for i := range out.Segs {
		for j := 0; j < out.Segs[i].n(); j++ {
			out.Segs[i].Pts[j] = LerpVec(a.Segs[i].Pts[j], b.Segs[i].Pts[j], t)
		}
	}
	return out
}

// Flatten converts the path into a polyline with curves subdivided so that
// chords are roughly tol long.
func (p Path) Flatten(tol float64) []Vec {
	var out []Vec
	var cur Vec
	for _, s := range p.Segs {
		switch s.Op {
		case OpMove:
			cur = s.Pts[0]
			out = append(out, cur)
		case OpLine:
			cur = s.Pts[0]
			out = append(out, cur)
		case OpQuad:
			n := CurveSteps(cur.Dist(s.Pts[0])+s.Pts[0].Dist(s.Pts[1]), tol)
			out = FlattenQuad(out, cur, s.Pts[0], s.Pts[1], n)
			cur = s.Pts[1]
		case OpCubic:
			n := CurveSteps(cur.Dist(s.Pts[0])+s.Pts[0].Dist(s.Pts[1])+s.Pts[1].Dist(s.Pts[2]), tol)
			out = FlattenCubic(out, cur, s.Pts[0], s.Pts[1], s.Pts[2], n)
			cur = s.Pts[2]
		}
	}
	return out
}

// Partial returns the part of the path between proportions a and b of its
// drawable segments (moves excluded). Proportions are by segment count, the
// same way a pen would visit them.
func (p Path) Partial(a, b float64) Path {
	a, b = Clamp01(a), Clamp01(b)
	if b <= a || len(p.Segs) < 2 {
		return Path{}
	}
	if a == 0 && b == 1 {
		return p.Copy()
	}
	// Build the list of drawable segments with their start points.
	type piece struct {
		from Vec
		seg  Seg
	}
	var pieces []piece
	var cur Vec
	for _, s := range p.Segs {
		if s.Op == OpMove {
			cur = s.Pts[0]
			continue
		}
		pieces = append(pieces, piece{from: cur, seg: s})
		cur = s.End()
	}
	if p.Closed && !cur.Eq(p.Start(), 1e-12) {
		pieces = append(pieces, piece{from: cur, seg: Seg{Op: OpLine, Pts: [3]Vec{p.Start()}}})
	}
	n := float64(len(pieces))
	startIdx, endIdx := a*n, b*n

	out := Path{}
	for i, pc := range pieces {
		lo, hi := float64(i), float64(i+1)
		if hi <= startIdx || lo >= endIdx {
			continue
		}
		t0 := Clamp01(startIdx - lo)
		t1 := Clamp01(endIdx - lo)
		from, seg := subSegment(pc.from, pc.seg, t0, t1)
		if len(out.Segs) == 0 || !out.End().Eq(from, 1e-12) {
			out.MoveTo(from)
		}
		out.Segs = append(out.Segs, seg)
	}
	return out
}

// subSegment returns the start point and command for the [t0,t1] slice of seg.
func subSegment(from Vec, s Seg, t0, t1 float64) (Vec, Seg) {
	switch s.Op {
	case OpLine:
		return LerpVec(from, s.Pts[0], t0), Seg{Op: OpLine, Pts: [3]Vec{LerpVec(from, s.Pts[0], t1)}}
	case OpQuad:
		p0, p1, p2 := from, s.Pts[0], s.Pts[1]
		if t1 < 1 {
			p1, p2 = SplitQuad(p0, p1, p2, t1)
		}
		if t0 > 0 {
			// split the remaining head at the rescaled t0 and keep the tail
			u := t0 / t1
			q1 := LerpVec(p1, p2, u)
			_, mid := SplitQuad(p0, p1, p2, u)
			p0, p1 = mid, q1
		}
		return p0, Seg{Op: OpQuad, Pts: [3]Vec{p1, p2}}
	case OpCubic:
		p0, p1, p2, p3 := from, s.Pts[0], s.Pts[1], s.Pts[2]
		if t1 < 1 {
			p1, p2, p3 = SplitCubic(p0, p1, p2, p3, t1)
		}
		if t0 > 0 {
			u := t0 / t1
			// tail of a cubic is the reversed head of the reversed curve
			r1, r2, mid := SplitCubic(p3, p2, p1, p0, 1-u)
			p0, p1, p2 = mid, r2, r1
		}
		return p0, Seg{Op: OpCubic, Pts: [3]Vec{p1, p2, p3}}
	}
	return from, s
}
