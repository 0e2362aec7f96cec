package output

import (
	"context"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"math"
	"os"
	"path/filepath"

	"go-trig-proof/pkg/render"
)

const (
	gifMaxFPS   = 15
	gifMaxWidth = 640
)

// GIF collects frames and writes an animated GIF on Close. Frames are
// thinned to at most gifMaxFPS and scaled down to gifMaxWidth; repeated
// frames extend the delay of the previous one instead of adding a new one.
type GIF struct {
	path   string
	fps    int
	step   int
	n      int
	last   *image.RGBA
	images []*image.Paletted
	delays []float64 // in 100ths of a second
}

// NewGIF returns a GIF sink for a stream at fps.
func NewGIF(path string, fps int) (*GIF, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("gif: fps must be positive, got %d", fps)
	}
	step := int(math.Ceil(float64(fps) / gifMaxFPS))
	return &GIF{path: path, fps: fps, step: step}, nil
}

func (g *GIF) WriteFrame(ctx context.Context, img *image.RGBA) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	frameTime := 100 / float64(g.fps)
	fresh := img != g.last && g.n%g.step == 0
	g.n++
	if len(g.images) > 0 && !fresh {
		g.delays[len(g.delays)-1] += frameTime
		return nil
	}
	g.last = img
	g.images = append(g.images, quantize(img))
	g.delays = append(g.delays, frameTime)
	return nil
}

// Frames returns the number of GIF frames collected so far.
func (g *GIF) Frames() int { return len(g.images) }

func quantize(img *image.RGBA) *image.Paletted {
	var src image.Image = img
	if w := img.Bounds().Dx(); w > gifMaxWidth {
		h := img.Bounds().Dy() * gifMaxWidth / w
		src = render.Downsample(img, gifMaxWidth, h)
	}
	pimg := image.NewPaletted(src.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), src, src.Bounds().Min)
	return pimg
}

// Close encodes all frames. Rounding of delays is carried over so the total
// running time stays exact.
func (g *GIF) Close() error {
	if len(g.images) == 0 {
		return nil
	}
	out := &gif.GIF{Image: g.images, Delay: make([]int, len(g.delays)), LoopCount: 0}
	carry := 0.0
	for i, d := range g.delays {
		v := math.Round(d + carry)
		carry += d - v
		out.Delay[i] = int(v)
	}
	if dir := filepath.Dir(g.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(g.path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, out); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", g.path, err)
	}
	return f.Close()
}
