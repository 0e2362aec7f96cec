package app

import (
	"context"
	"math"
	"testing"

	"go-trig-proof/internal/scene"
	"go-trig-proof/pkg/geom"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTriangle(t *testing.T) {
	Convey("Given the unit circle axes", t, func() {
		ax, err := NewAxes()
		So(err, ShouldBeNil)
		origin := ax.C2P(0, 0)

		Convey("Vertex lies on the circle", func() {
			v := Vertex(1, math.Pi/4)
			So(v.X, ShouldAlmostEqual, math.Sqrt2/2, 1e-12)
			So(v.Y, ShouldAlmostEqual, math.Sqrt2/2, 1e-12)
			w := Vertex(1, 5*math.Pi/4)
			So(w.X, ShouldAlmostEqual, -math.Sqrt2/2, 1e-12)
		})

		Convey("CreateTriangle puts the sides end to end", func() {
			tri := CreateTriangle(ax, 1, math.Pi/4)
			So(tri.Radius.Start().Eq(origin, 1e-9), ShouldBeTrue)
			So(tri.Horizontal.Start().Eq(origin, 1e-9), ShouldBeTrue)
			So(tri.Vertical.Start().Eq(tri.Horizontal.End(), 1e-9), ShouldBeTrue)
			So(tri.Vertical.End().Eq(tri.Radius.End(), 1e-9), ShouldBeTrue)
			// one axis unit is two scene units
			So(tri.Radius.End().Dist(origin), ShouldAlmostEqual, 2, 1e-9)
			So(tri.Radius.Style.StrokeWidth, ShouldEqual, TriangleStrokeWidth)
		})

		Convey("UpdateTriangle moves the sides in place", func() {
			tri := CreateTriangle(ax, 1, math.Pi/4)
			radius := tri.Radius
			style := tri.Vertical.Style
			UpdateTriangle(tri, ax, 1, 5*math.Pi/4)
			So(tri.Radius, ShouldPointTo, radius)
			So(tri.Vertical.Style, ShouldResemble, style)
			end := tri.Radius.End()
			So(end.Eq(ax.C2P(-math.Sqrt2/2, -math.Sqrt2/2), 1e-9), ShouldBeTrue)
			So(tri.Horizontal.End().Eq(ax.C2P(-math.Sqrt2/2, 0), 1e-9), ShouldBeTrue)
		})

		Convey("Group holds the three sides", func() {
			tri := CreateTriangle(ax, 1, math.Pi/4)
			g := tri.Group()
			So(g.Members(), ShouldHaveLength, 3)
			So(g.Contains(tri.Vertical.VMobject), ShouldBeTrue)
		})
	})
}

func TestProof(t *testing.T) {
	Convey("A dry run of the proof", t, func() {
		p := NewProof()
		s := scene.New(scene.WithFPS(10))
		err := s.Run(context.Background(), p.Construct)
		So(err, ShouldBeNil)

		Convey("creates every label in order", func() {
			var got []string
			for _, tex := range p.Texts {
				got = append(got, tex.Tex)
				So(tex.Glyphs(), ShouldNotBeEmpty)
			}
			So(got, ShouldResemble, Labels())
		})

		Convey("lasts as long as the script says", func() {
			So(s.Time(), ShouldAlmostEqual, 116.5, 1e-9)
			frames := 0
			for _, sec := range s.Sections() {
				frames += sec.Frames
			}
			So(s.Frames(), ShouldEqual, frames)
			So(frames, ShouldEqual, 1165)
		})

		Convey("ends with the identity on screen", func() {
			last := p.Texts[len(p.Texts)-1]
			So(last.Tex, ShouldEqual, Identity)
			So(s.Has(last), ShouldBeTrue)
			So(last.Center().Eq(geom.V(2.9, -1.2), 1e-9), ShouldBeTrue)
		})

		Convey("moved the figure to the left", func() {
			So(p.Axes.C2P(0, 0).Eq(geom.V(-3, 0), 1e-9), ShouldBeTrue)
			So(p.Circle.Center().Eq(geom.V(-3, 0), 1e-9), ShouldBeTrue)
		})

		Convey("left the triangle in the first quadrant", func() {
			So(s.Has(p.Triangle.Radius), ShouldBeTrue)
			end := p.Triangle.Radius.End()
			So(end.X, ShouldBeGreaterThan, -3)
			So(end.Y, ShouldBeGreaterThan, 0)
		})
	})

	Convey("Scene duration is the same through scene.Duration", t, func() {
		total, secs, err := scene.Duration(Construct, 30)
		So(err, ShouldBeNil)
		So(total, ShouldAlmostEqual, 116.5, 1e-9)
		So(secs, ShouldNotBeEmpty)
	})
}
