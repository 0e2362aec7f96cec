// internal/state/player.go
package state

import (
	"context"
	"errors"
	"image"
	"log"
	"strings"

	"go-trig-proof/internal/output"
	"go-trig-proof/internal/scene"
)

// Producer renders the scene into sink and closes it when done.
type Producer func(ctx context.Context, sink output.FrameSink) error

// Player pulls frames from a producer goroutine at the scene's frame rate.
// The producer runs ahead by at most buffer frames.
type Player struct {
	produce  Producer
	fps      int
	buffer   int
	duration float64
	sections []scene.Section

	cancel context.CancelFunc
	frames chan *image.RGBA
	done   chan error

	current  *image.RGBA
	index    int
	acc      float64
	finished bool
	err      error
}

// NewPlayer starts producing right away. duration and sections come from a
// dry run and drive the progress overlay.
func NewPlayer(produce Producer, fps, buffer int, duration float64, sections []scene.Section) *Player {
	p := &Player{produce: produce, fps: fps, buffer: buffer, duration: duration, sections: sections}
	p.start()
	return p
}

func (p *Player) start() {
	ctx, cancel := context.WithCancel(context.Background())
	sink := output.NewChannel(p.buffer)
	p.cancel = cancel
	p.frames = sink.C
	p.done = make(chan error, 1)
	p.current, p.index, p.acc, p.finished = nil, 0, 0, false
	go func() {
		p.done <- p.produce(ctx, sink)
	}()
}

// stop cancels the producer, drains what it already queued and waits for it.
func (p *Player) stop() {
	p.cancel()
	for range p.frames {
	}
	err := <-p.done
	if err != nil && !errors.Is(err, context.Canceled) {
		p.err = err
		log.Printf("[preview] scene stopped: %v", err)
	}
}

// Advance moves the clock by dt and takes as many frames as are due. It
// reports whether the last frame has been shown.
func (p *Player) Advance(dt float64) bool {
	if p.finished {
		return true
	}
	p.acc += dt
	frameTime := 1 / float64(p.fps)
	for p.acc >= frameTime {
		select {
		case img, ok := <-p.frames:
			if !ok {
				p.finish()
				return true
			}
			p.current = img
			p.index++
			p.acc -= frameTime
		default:
			// the producer is behind; do not let time run away from it
			p.acc = 0
			return false
		}
	}
	return false
}

// Step shows the next frame regardless of the clock, waiting for it if needed.
func (p *Player) Step() bool {
	if p.finished {
		return true
	}
	img, ok := <-p.frames
	if !ok {
		p.finish()
		return true
	}
	p.current = img
	p.index++
	return false
}

func (p *Player) finish() {
	p.finished = true
	if err := <-p.done; err != nil {
		p.err = err
		log.Printf("[preview] scene failed: %v", err)
	}
	// done is drained; stop must not wait on it again
	p.done <- nil
}

// Restart throws away the running producer and starts from the beginning.
func (p *Player) Restart() {
	p.stop()
	p.start()
}

// Close stops the producer.
func (p *Player) Close() {
	p.stop()
}

func (p *Player) Frame() *image.RGBA { return p.current }
func (p *Player) Finished() bool     { return p.finished }
func (p *Player) Err() error         { return p.err }

// Time is the scene time of the frame on screen.
func (p *Player) Time() float64 {
	return float64(p.index) / float64(p.fps)
}

// Section returns the name of the Play or Wait call at time t.
func (p *Player) Section(t float64) string {
	for _, sec := range p.sections {
		if t >= sec.Start && t < sec.Start+sec.Duration {
			if sec.Wait {
				return "Wait"
			}
			return strings.Join(sec.Names, " + ")
		}
	}
	return ""
}

// Overlay describes the progress bar and labels for the current frame.
func (p *Player) Overlay(paused bool) Overlay {
	t := p.Time()
	return Overlay{
		Time:     t,
		Duration: p.duration,
		Section:  p.Section(t),
		Paused:   paused,
		Finished: p.finished,
	}
}
