// internal/ui/progress_bar.go
package ui

import (
	"image/color"

	"go-trig-proof/internal/state"
	"go-trig-proof/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	barMargin   = 8
	borderWidth = 1
	textLineH   = 16
	pausedShade = 0.55
)

// Цвета полосы прогресса. Без Paused на паузе полоса темнеет.
type BarColors struct {
	Fill   color.Color
	Paused color.Color
	Track  color.Color
	Border color.Color
}

// ProgressBar рисует полосу прогресса и таймкод внизу экрана.
type ProgressBar struct {
	Width, Height float32 // размер экрана
	BarHeight     float32
	Colors        BarColors
}

// NewProgressBar создаёт полосу для экрана заданного размера.
func NewProgressBar(width, height int, barHeight float32, colors BarColors) *ProgressBar {
	if colors.Paused == nil && colors.Fill != nil {
		fill := color.NRGBAModel.Convert(colors.Fill).(color.NRGBA)
		colors.Paused = render.Darken(fill, pausedShade)
	}
	return &ProgressBar{Width: float32(width), Height: float32(height), BarHeight: barHeight, Colors: colors}
}

// barRect - положение полосы и ширина заполненной части.
func (b *ProgressBar) barRect(o state.Overlay) (x, y, w, fill float32) {
	x = barMargin
	y = b.Height - barMargin - b.BarHeight
	w = b.Width - 2*barMargin
	fill = float32(float64(w-2*borderWidth) * o.Progress())
	return
}

func (b *ProgressBar) fillColor(o state.Overlay) color.Color {
	if o.Paused {
		return b.Colors.Paused
	}
	return b.Colors.Fill
}

// Draw рисует полосу средствами ebiten.
func (b *ProgressBar) Draw(screen *ebiten.Image, o state.Overlay) {
	x, y, w, fill := b.barRect(o)
	vector.DrawFilledRect(screen, x, y, w, b.BarHeight, b.Colors.Track, false)
	vector.StrokeRect(screen, x, y, w, b.BarHeight, borderWidth, b.Colors.Border, true)
	if fill > 0 {
		vector.DrawFilledRect(screen, x+borderWidth, y+borderWidth, fill, b.BarHeight-borderWidth*2, b.fillColor(o), true)
	}

	textY := int(y) - textLineH - 2
	ebitenutil.DebugPrintAt(screen, o.Timecode(), barMargin, textY)
	if o.Section != "" {
		ebitenutil.DebugPrintAt(screen, o.Section, barMargin, textY-textLineH)
	}
	status := o.Status()
	// отладочный шрифт ebitenutil - 6 пикселей на символ
	ebitenutil.DebugPrintAt(screen, status, int(b.Width)-barMargin-6*len(status), textY)
}
