// pkg/render/canvas.go
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"go-trig-proof/pkg/geom"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// joinSegments is the number of polygon sides used for round joins and caps.
const joinSegments = 12

// Canvas rasterises scene-space polygons into an RGBA frame.
type Canvas struct {
	Img *image.RGBA
	Cam Camera

	rast *vector.Rasterizer
	buf  []geom.Vec

	// contours of the current draw call in pixels, flattened into pts
	pts    []geom.Vec
	starts []int
	box    geom.Rect
}

// NewCanvas allocates a frame of the camera's pixel size.
func NewCanvas(cam Camera) *Canvas {
	return &Canvas{
		Img:  image.NewRGBA(image.Rect(0, 0, cam.PixelWidth, cam.PixelHeight)),
		Cam:  cam,
		rast: vector.NewRasterizer(cam.PixelWidth, cam.PixelHeight),
	}
}

// Clear fills the whole frame with bg.
func (c *Canvas) Clear(bg color.Color) {
	draw.Draw(c.Img, c.Img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

// FillPolygons fills the given closed contours with col. Contours with
// opposite winding cut holes, which is how glyph counters are expressed.
func (c *Canvas) FillPolygons(contours [][]geom.Vec, col color.NRGBA) {
	if col.A == 0 || len(contours) == 0 {
		return
	}
	c.begin()
	for _, pts := range contours {
		if len(pts) < 3 {
			continue
		}
		c.addPixels(c.toPixels(pts))
	}
	c.flush(col)
}

// StrokePolyline strokes a polyline in scene coordinates. width is given in
// scene units. Joins and caps are round.
func (c *Canvas) StrokePolyline(pts []geom.Vec, closed bool, width float64, col color.NRGBA) {
	if col.A == 0 || width <= 0 || len(pts) == 0 {
		return
	}
	c.begin()
	c.strokeInto(pts, closed, width)
	c.flush(col)
}

// StrokePolylines strokes several polylines in one pass so overlaps between
// them are not blended twice.
func (c *Canvas) StrokePolylines(lines [][]geom.Vec, closed []bool, width float64, col color.NRGBA) {
	if col.A == 0 || width <= 0 || len(lines) == 0 {
		return
	}
	c.begin()
	for i, pts := range lines {
		c.strokeInto(pts, i < len(closed) && closed[i], width)
	}
	c.flush(col)
}

func (c *Canvas) strokeInto(pts []geom.Vec, closed bool, width float64) {
	half := width * c.Cam.PixelsPerUnit() / 2
	px := c.toPixels(pts)
	if closed && len(px) > 1 && !px[0].Eq(px[len(px)-1], 1e-9) {
		px = append(px, px[0])
	}
	for i := 0; i+1 < len(px); i++ {
		p, q := px[i], px[i+1]
		d := q.Sub(p)
		if d.Len() < 1e-9 {
			continue
		}
		n := geom.Vec{X: -d.Y, Y: d.X}.Norm().Mul(half)
		c.addOriented([]geom.Vec{p.Add(n), q.Add(n), q.Sub(n), p.Sub(n)})
	}
	for _, p := range px {
		c.addOriented(disc(p, half))
	}
}

func (c *Canvas) begin() {
	c.pts = c.pts[:0]
	c.starts = c.starts[:0]
	c.box = geom.EmptyRect()
}

// flush rasterises the collected contours inside their pixel bounding box
// only, so a small glyph does not cost a pass over the whole frame.
func (c *Canvas) flush(col color.NRGBA) {
	box := pixelBox(c.box).Intersect(c.Img.Bounds())
	if box.Empty() {
		return
	}
	c.rast.Reset(box.Dx(), box.Dy())
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	for i, start := range c.starts {
		end := len(c.pts)
		if i+1 < len(c.starts) {
			end = c.starts[i+1]
		}
		px := c.pts[start:end]
		c.rast.MoveTo(float32(px[0].X-ox), float32(px[0].Y-oy))
		for _, p := range px[1:] {
			c.rast.LineTo(float32(p.X-ox), float32(p.Y-oy))
		}
		c.rast.ClosePath()
	}
	c.rast.DrawOp = draw.Over
	// the rasterizer's origin maps to box.Min
	c.rast.Draw(c.Img, box, image.NewUniform(col), image.Point{})
}

// pixelBox rounds r outwards with one pixel of slack for antialiasing.
func pixelBox(r geom.Rect) image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(
		pixelInt(math.Floor(r.Min.X))-1, pixelInt(math.Floor(r.Min.Y))-1,
		pixelInt(math.Ceil(r.Max.X))+1, pixelInt(math.Ceil(r.Max.Y))+1,
	)
}

// pixelInt keeps far off-screen coordinates inside int range.
func pixelInt(v float64) int {
	const limit = 1 << 24
	return int(math.Max(-limit, math.Min(v, limit)))
}

func (c *Canvas) toPixels(pts []geom.Vec) []geom.Vec {
	c.buf = c.buf[:0]
	for _, p := range pts {
		x, y := c.Cam.ToPixel(p)
		c.buf = append(c.buf, geom.Vec{X: x, Y: y})
	}
	return c.buf
}

// addOriented adds a pixel polygon with positive winding so that
// overlapping stroke pieces saturate instead of cancelling.
func (c *Canvas) addOriented(px []geom.Vec) {
	if signedArea(px) < 0 {
		for i, j := 0, len(px)-1; i < j; i, j = i+1, j-1 {
			px[i], px[j] = px[j], px[i]
		}
	}
	c.addPixels(px)
}

func (c *Canvas) addPixels(px []geom.Vec) {
	if len(px) < 3 {
		return
	}
	c.starts = append(c.starts, len(c.pts))
	for _, p := range px {
		c.pts = append(c.pts, p)
		c.box = c.box.Extend(p)
	}
}

func signedArea(px []geom.Vec) float64 {
	a := 0.0
	for i := range px {
		p, q := px[i], px[(i+1)%len(px)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

func disc(center geom.Vec, r float64) []geom.Vec {
	pts := make([]geom.Vec, joinSegments)
	for i := range pts {
		pts[i] = center.Add(geom.Polar(r, 2*math.Pi*float64(i)/joinSegments))
	}
	return pts
}

// Downsample scales src into a frame of the given size. It is used to turn
// a supersampled frame into the output resolution.
func Downsample(src *image.RGBA, width, height int) *image.RGBA {
	if src.Bounds().Dx() == width && src.Bounds().Dy() == height {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
