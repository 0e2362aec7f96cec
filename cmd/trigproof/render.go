// cmd/trigproof/render.go
package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"go-trig-proof/internal/app"
	"go-trig-proof/internal/config"
	"go-trig-proof/internal/event"
	"go-trig-proof/internal/output"
	"go-trig-proof/internal/scene"
)

func newRenderCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Render every frame to the configured output",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.settings()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return render(ctx, s)
		},
	}
}

// progressLogger пишет в лог начало каждой анимации и процент готовых кадров.
type progressLogger struct {
	total   int
	step    int
	started time.Time
}

func (p *progressLogger) OnEvent(e event.Event) {
	switch e.Type {
	case event.AnimationStarted:
		info := e.Data.(event.AnimationInfo)
		log.Printf("[render] play #%d %s (%.1fs)", info.Index, info.Name, info.RunTime)
	case event.FrameRendered:
		n := e.Data.(int)
		if p.total > 0 && n%p.step == 0 {
			log.Printf("[render] %.1f%%", float64(n)*100/float64(p.total))
		}
	case event.SceneFinished:
		st := e.Data.(event.SceneStats)
		log.Printf("[render] done: %d plays, %d frames, %.1fs of video in %s",
			st.Plays, st.Frames, st.Duration, time.Since(p.started).Round(time.Millisecond))
	}
}

func render(ctx context.Context, s config.Settings) error {
	log.Printf("[render] %s", s)
	_, sections, err := scene.Duration(app.Construct, s.FPS)
	if err != nil {
		return fmt.Errorf("dry run: %w", err)
	}
	total := 0
	for _, sec := range sections {
		total += sec.Frames
	}

	sink, err := output.New(s)
	if err != nil {
		return err
	}
	logger := &progressLogger{total: total, step: max(1, total/20), started: time.Now()}
	d := event.NewDispatcher()
	for _, t := range []event.EventType{event.AnimationStarted, event.FrameRendered, event.SceneFinished} {
		d.Subscribe(t, logger)
	}

	renderer := scene.NewRenderer(s.Width, s.Height, s.Supersample)
	renderer.Background = config.BackgroundColor
	sc := scene.New(
		scene.WithFPS(s.FPS),
		scene.WithRenderer(renderer),
		scene.WithSink(sink),
		scene.WithDispatcher(d),
	)
	return sc.Run(ctx, app.Construct)
}
