// cmd/trigproof/preview_raylib.go
package main

import (
	"image"
	"image/color"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-trig-proof/internal/config"
	"go-trig-proof/internal/state"
	"go-trig-proof/internal/ui"
)

type raylibInput struct{}

func (raylibInput) TogglePressed() bool  { return rl.IsKeyPressed(rl.KeySpace) }
func (raylibInput) StepPressed() bool    { return rl.IsKeyPressed(rl.KeyRight) }
func (raylibInput) RestartPressed() bool { return rl.IsKeyPressed(rl.KeyR) }

// raylibScreen рисует кадр через одну текстуру, обновляемую на месте.
type raylibScreen struct {
	tex       rl.Texture2D
	lastFrame *image.RGBA
	bar       *ui.ProgressBar
}

func (r *raylibScreen) DrawFrame(img *image.RGBA) {
	if img != r.lastFrame {
		// image.RGBA хранит пиксели как R,G,B,A - та же раскладка, что у rl.Color
		pixels := unsafe.Slice((*color.RGBA)(unsafe.Pointer(&img.Pix[0])), len(img.Pix)/4)
		rl.UpdateTexture(r.tex, pixels)
		r.lastFrame = img
	}
	rl.DrawTexture(r.tex, 0, 0, rl.White)
}

func (r *raylibScreen) DrawOverlay(o state.Overlay) {
	r.bar.DrawRL(o)
}

func runRaylib(s config.Settings, player *state.Player, bar *ui.ProgressBar, title string) {
	rl.InitWindow(int32(s.Width), int32(s.Height), title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	blank := rl.GenImageColor(s.Width, s.Height, rl.Black)
	screen := &raylibScreen{tex: rl.LoadTextureFromImage(blank), bar: bar}
	rl.UnloadImage(blank)
	defer rl.UnloadTexture(screen.tex)

	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayingState(sm, player, raylibInput{}))

	for !rl.WindowShouldClose() {
		deltaTime := float64(rl.GetFrameTime())
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		sm.Update(deltaTime)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		sm.Draw(screen)
		rl.EndDrawing()
	}
}
