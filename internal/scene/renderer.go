package scene

import (
	"image"
	"image/color"

	"go-trig-proof/internal/mobject"
	"go-trig-proof/pkg/render"
)

// Renderer turns the scene's mobject list into frames.
type Renderer struct {
	Background color.Color

	width, height int
	canvas        *render.Canvas
}

// NewRenderer draws at supersample times the output size and scales down.
func NewRenderer(width, height, supersample int) *Renderer {
	cam := render.NewCamera(width, height).Scaled(supersample)
	return &Renderer{
		Background: color.Black,
		width:      width,
		height:     height,
		canvas:     render.NewCanvas(cam),
	}
}

// Camera returns the camera of the output resolution.
func (r *Renderer) Camera() render.Camera {
	return render.NewCamera(r.width, r.height)
}

// Render draws every family in order and returns a new frame. A mobject
// reachable from more than one top-level entry is drawn once.
func (r *Renderer) Render(layers ...[]*mobject.VMobject) *image.RGBA {
	r.canvas.Clear(r.Background)
	seen := make(map[*mobject.VMobject]bool)
	for _, ms := range layers {
		for _, m := range ms {
			for _, f := range m.Family() {
				if seen[f] {
					continue
				}
				seen[f] = true
				f.Draw(r.canvas)
			}
		}
	}
	out := render.Downsample(r.canvas.Img, r.width, r.height)
	if out == r.canvas.Img {
		out = cloneRGBA(out)
	}
	return out
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
