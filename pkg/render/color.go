// pkg/render/color.go
package render

import (
	"image/color"
	"math"
)

// Palette used by the scene. Hex values follow the X11 / XKCD colour tables
// the animation was authored against.
var (
	Black           = color.NRGBA{0, 0, 0, 255}
	White           = color.NRGBA{255, 255, 255, 255}
	Red             = color.NRGBA{0xFC, 0x62, 0x55, 255}
	Yellow          = color.NRGBA{0xFF, 0xFF, 0x00, 255}
	BlueD           = color.NRGBA{0x29, 0xAB, 0xCA, 255}
	Thistle         = color.NRGBA{0xD8, 0xBF, 0xD8, 255} // X11.THISTLE
	LightPeriwinkle = color.NRGBA{0xC1, 0xC6, 0xFC, 255} // XKCD.LIGHTPERIWINKLE
	MediumOrchid1   = color.NRGBA{0xE0, 0x66, 0xFF, 255} // X11.MEDIUMORCHID1
	MediumPurple1   = color.NRGBA{0xAB, 0x82, 0xFF, 255} // X11.MEDIUMPURPLE1
	Cyan1           = color.NRGBA{0x00, 0xFF, 0xFF, 255} // X11.CYAN1
)

// WithAlpha returns c with its alpha multiplied by opacity.
func WithAlpha(c color.NRGBA, opacity float64) color.NRGBA {
	if opacity <= 0 {
		c.A = 0
		return c
	}
	if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(math.Round(float64(c.A) * opacity))
	return c
}

// LerpColor interpolates two colours channel by channel.
func LerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	l := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{l(a.R, b.R), l(a.G, b.G), l(a.B, b.B), l(a.A, b.A)}
}

// Darken moves c towards black, keeping its alpha. f = 1 leaves it as is.
func Darken(c color.NRGBA, f float64) color.NRGBA {
	d := LerpColor(Black, c, f)
	d.A = c.A
	return d
}
