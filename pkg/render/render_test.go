package render

import (
	"image"
	"image/color"
	"testing"

	"go-trig-proof/pkg/geom"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestCameraToPixel(t *testing.T) {
	cam := NewCamera(160, 80)
	if !scalar.EqualWithinAbs(cam.FrameWidth(), 16, 1e-12) {
		t.Fatalf("frame width %v", cam.FrameWidth())
	}
	x, y := cam.ToPixel(geom.Origin)
	if x != 80 || y != 40 {
		t.Fatalf("origin at %v,%v", x, y)
	}
	x, y = cam.ToPixel(geom.V(1, 1))
	if x != 90 || y != 30 {
		t.Fatalf("(1,1) at %v,%v; y should grow upwards", x, y)
	}
	big := cam.Scaled(2)
	if big.PixelWidth != 320 || big.PixelsPerUnit() != 20 {
		t.Fatalf("scaled camera %+v", big)
	}
}

func TestCanvasFill(t *testing.T) {
	c := NewCanvas(NewCamera(80, 80))
	c.Clear(Black)
	square := []geom.Vec{geom.V(-1, -1), geom.V(1, -1), geom.V(1, 1), geom.V(-1, 1)}
	c.FillPolygons([][]geom.Vec{square}, Red)

	if got := c.Img.RGBAAt(40, 40); got.R != Red.R || got.G != Red.G {
		t.Fatalf("centre pixel %v, want red", got)
	}
	if got := c.Img.RGBAAt(2, 2); got != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("corner pixel %v, want background", got)
	}
}

func TestCanvasHole(t *testing.T) {
	c := NewCanvas(NewCamera(80, 80))
	c.Clear(Black)
	outer := []geom.Vec{geom.V(-2, -2), geom.V(2, -2), geom.V(2, 2), geom.V(-2, 2)}
	inner := []geom.Vec{geom.V(-1, -1), geom.V(-1, 1), geom.V(1, 1), geom.V(1, -1)}
	c.FillPolygons([][]geom.Vec{outer, inner}, White)
	if got := c.Img.RGBAAt(40, 40); got.R != 0 {
		t.Fatalf("hole was filled: %v", got)
	}
	if got := c.Img.RGBAAt(40, 40-15); got.R != 255 {
		t.Fatalf("ring was not filled: %v", got)
	}
}

func TestCanvasStroke(t *testing.T) {
	c := NewCanvas(NewCamera(80, 80))
	c.Clear(Black)
	c.StrokePolyline([]geom.Vec{geom.V(-3, 0), geom.V(3, 0)}, false, 0.5, White)
	if got := c.Img.RGBAAt(40, 40); got.R != 255 {
		t.Fatalf("stroke missing at centre: %v", got)
	}
	if got := c.Img.RGBAAt(40, 20); got.R != 0 {
		t.Fatalf("stroke too wide: %v", got)
	}
	// transparent paint is a no-op
	c.StrokePolyline([]geom.Vec{geom.V(0, -3), geom.V(0, 3)}, false, 0.5, WithAlpha(Red, 0))
	if got := c.Img.RGBAAt(40, 20); got.R != 0 {
		t.Fatalf("transparent stroke painted: %v", got)
	}
}

func TestCanvasSmallFillStaysInBox(t *testing.T) {
	c := NewCanvas(NewCamera(80, 80))
	bg := color.RGBA{10, 20, 30, 255}
	c.Clear(bg)
	tri := []geom.Vec{geom.V(0, 0), geom.V(0.2, 0), geom.V(0, 0.2)}
	c.FillPolygons([][]geom.Vec{tri}, Red)

	if got := c.Img.RGBAAt(40, 39); got == bg {
		t.Fatal("triangle was not drawn")
	}
	// the triangle covers pixels 40..42 x 38..40; allow the antialiasing slack
	near := image.Rect(38, 36, 44, 42)
	b := c.Img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if image.Pt(x, y).In(near) {
				continue
			}
			if got := c.Img.RGBAAt(x, y); got != bg {
				t.Fatalf("pixel %d,%d changed to %v", x, y, got)
			}
		}
	}
}

func TestCanvasOffscreen(t *testing.T) {
	c := NewCanvas(NewCamera(80, 80))
	c.Clear(Black)
	// the frame spans x in [-4, 4]; this square hangs off the left edge
	left := []geom.Vec{geom.V(-10, -1), geom.V(-3, -1), geom.V(-3, 1), geom.V(-10, 1)}
	c.FillPolygons([][]geom.Vec{left}, White)
	if got := c.Img.RGBAAt(5, 40); got.R != 255 {
		t.Fatalf("visible part not filled: %v", got)
	}
	if got := c.Img.RGBAAt(20, 40); got.R != 0 {
		t.Fatalf("fill leaked: %v", got)
	}

	// entirely outside the frame: nothing to draw
	away := []geom.Vec{geom.V(10, 10), geom.V(11, 10), geom.V(11, 11)}
	c.FillPolygons([][]geom.Vec{away}, Red)
	c.StrokePolyline(away, true, 0.1, Red)
	if got := c.Img.RGBAAt(79, 0); got.R != 0 {
		t.Fatalf("corner painted: %v", got)
	}
}

func TestDownsample(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	if Downsample(src, 8, 8) != src {
		t.Fatal("same size should return the source")
	}
	dst := Downsample(src, 4, 4)
	if dst.Bounds().Dx() != 4 || dst.Bounds().Dy() != 4 {
		t.Fatalf("bounds %v", dst.Bounds())
	}
}

func TestColors(t *testing.T) {
	if got := WithAlpha(White, 0.5); got.A != 128 {
		t.Fatalf("alpha %d", got.A)
	}
	if got := WithAlpha(White, 2); got.A != 255 {
		t.Fatalf("opacity above 1 should clamp, got %d", got.A)
	}
	mid := LerpColor(Black, White, 0.5)
	if mid.R != 128 || mid.A != 255 {
		t.Fatalf("lerp %v", mid)
	}
	if got := Darken(WithAlpha(White, 0.5), 0.5); got.R != 128 || got.A != 128 {
		t.Fatalf("darken %v", got)
	}
}
