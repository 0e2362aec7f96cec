// cmd/trigproof/preview_ebiten.go
package main

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-trig-proof/internal/config"
	"go-trig-proof/internal/state"
	"go-trig-proof/internal/ui"
)

// ebitenInput читает клавиши через inpututil.
type ebitenInput struct{}

func (ebitenInput) TogglePressed() bool  { return inpututil.IsKeyJustPressed(ebiten.KeySpace) }
func (ebitenInput) StepPressed() bool    { return inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) }
func (ebitenInput) RestartPressed() bool { return inpututil.IsKeyJustPressed(ebiten.KeyR) }

// AppGame - ebiten.Game поверх машины состояний проигрывателя.
type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
	bar            *ui.ProgressBar

	frame     *ebiten.Image
	lastFrame *image.RGBA
	target    *ebiten.Image
}

func (a *AppGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.target = screen
	a.stateMachine.Draw(a)
}

// DrawFrame копирует кадр сцены в текстуру; одинаковые кадры не копируются.
func (a *AppGame) DrawFrame(img *image.RGBA) {
	if img != a.lastFrame {
		a.frame.WritePixels(img.Pix)
		a.lastFrame = img
	}
	a.target.DrawImage(a.frame, nil)
}

func (a *AppGame) DrawOverlay(o state.Overlay) {
	a.bar.Draw(a.target, o)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func runEbiten(s config.Settings, player *state.Player, bar *ui.ProgressBar, title string) error {
	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayingState(sm, player, ebitenInput{}))
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          s.Width,
		height:         s.Height,
		bar:            bar,
		frame:          ebiten.NewImage(s.Width, s.Height),
	}
	ebiten.SetWindowSize(s.Width, s.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(app)
}
