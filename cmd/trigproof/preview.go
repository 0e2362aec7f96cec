// cmd/trigproof/preview.go
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"go-trig-proof/internal/app"
	"go-trig-proof/internal/config"
	"go-trig-proof/internal/output"
	"go-trig-proof/internal/scene"
	"go-trig-proof/internal/state"
	"go-trig-proof/internal/ui"
)

func newPreviewCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Play the animation in a window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.settings()
			if err != nil {
				return err
			}
			return preview(s)
		},
	}
}

// producer рендерит сцену в канал проигрывателя.
func producer(s config.Settings) state.Producer {
	return func(ctx context.Context, sink output.FrameSink) error {
		renderer := scene.NewRenderer(s.Width, s.Height, s.Supersample)
		renderer.Background = config.BackgroundColor
		sc := scene.New(scene.WithFPS(s.FPS), scene.WithRenderer(renderer), scene.WithSink(sink))
		return sc.Run(ctx, app.Construct)
	}
}

func preview(s config.Settings) error {
	total, sections, err := scene.Duration(app.Construct, s.FPS)
	if err != nil {
		return fmt.Errorf("dry run: %w", err)
	}
	log.Printf("[preview] %s, %.1fs, backend %s", s, total, s.Backend)

	player := state.NewPlayer(producer(s), s.FPS, config.PreviewBuffer, total, sections)
	defer player.Close()

	bar := ui.NewProgressBar(s.Width, s.Height, config.ProgressBarH, ui.BarColors{
		Fill:   config.ProgressColor,
		Track:  config.TrackColor,
		Border: config.OverlayColor,
	})
	title := "trigproof: sin²θ + cos²θ = 1"
	switch s.Backend {
	case "raylib":
		runRaylib(s, player, bar, title)
	default:
		if err := runEbiten(s, player, bar, title); err != nil {
			return err
		}
	}
	return player.Err()
}
