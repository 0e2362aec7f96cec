// pkg/render/camera.go
package render

import "go-trig-proof/pkg/geom"

// DefaultFrameHeight is the height of the visible frame in scene units.
const DefaultFrameHeight = 8.0

// Camera maps scene units onto a pixel grid. The frame centre sits in the
// middle of the image and y grows upwards.
type Camera struct {
	FrameHeight float64
	FrameCenter geom.Vec
	PixelWidth  int
	PixelHeight int
}

func NewCamera(pixelWidth, pixelHeight int) Camera {
	return Camera{
		FrameHeight: DefaultFrameHeight,
		PixelWidth:  pixelWidth,
		PixelHeight: pixelHeight,
	}
}

// FrameWidth is the visible width in scene units; it follows the pixel aspect ratio.
func (c Camera) FrameWidth() float64 {
	return c.FrameHeight * float64(c.PixelWidth) / float64(c.PixelHeight)
}

func (c Camera) PixelsPerUnit() float64 {
	return float64(c.PixelHeight) / c.FrameHeight
}

// ToPixel converts a scene point into pixel coordinates.
func (c Camera) ToPixel(v geom.Vec) (float64, float64) {
	k := c.PixelsPerUnit()
	x := float64(c.PixelWidth)/2 + (v.X-c.FrameCenter.X)*k
	y := float64(c.PixelHeight)/2 - (v.Y-c.FrameCenter.Y)*k
	return x, y
}

// Scaled returns the same view rendered at factor times the resolution.
func (c Camera) Scaled(factor int) Camera {
	if factor < 1 {
		factor = 1
	}
	c.PixelWidth *= factor
	c.PixelHeight *= factor
	return c
}
