// internal/ui/progress_bar_rl.go
package ui

import (
	"image/color"

	"go-trig-proof/internal/state"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const rlFontSize = 14

// DrawRL - та же полоса для окна raylib.
func (b *ProgressBar) DrawRL(o state.Overlay) {
	x, y, w, fill := b.barRect(o)
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(b.BarHeight), colorToRL(b.Colors.Track))
	rl.DrawRectangleLines(int32(x), int32(y), int32(w), int32(b.BarHeight), colorToRL(b.Colors.Border))
	if fill > 0 {
		rl.DrawRectangle(int32(x+borderWidth), int32(y+borderWidth), int32(fill), int32(b.BarHeight-borderWidth*2), colorToRL(b.fillColor(o)))
	}

	textY := int32(y) - textLineH - 2
	rl.DrawText(o.Timecode(), barMargin, textY, rlFontSize, rl.White)
	if o.Section != "" {
		rl.DrawText(o.Section, barMargin, textY-textLineH, rlFontSize, rl.White)
	}
	status := o.Status()
	sw := rl.MeasureText(status, rlFontSize)
	rl.DrawText(status, int32(b.Width)-barMargin-sw, textY, rlFontSize, rl.White)
}

// colorToRL переводит color.Color в rl.Color (без премультипликации).
func colorToRL(c color.Color) rl.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}
