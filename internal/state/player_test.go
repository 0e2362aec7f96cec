package state

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"go-trig-proof/internal/output"
	"go-trig-proof/internal/scene"

	. "github.com/smartystreets/goconvey/convey"
)

var errBoom = errors.New("boom")

// frames returns a producer that emits n distinct frames and then fails with err.
func frames(n int, err error) Producer {
	return func(ctx context.Context, sink output.FrameSink) error {
		defer sink.Close()
		for i := 0; i < n; i++ {
			img := image.NewRGBA(image.Rect(0, 0, 1, 1))
			img.Pix[0] = uint8(i)
			if werr := sink.WriteFrame(ctx, img); werr != nil {
				return werr
			}
		}
		return err
	}
}

// advanceUntilDone feeds the player wall-clock sized steps until it finishes.
func advanceUntilDone(p *Player) bool {
	for i := 0; i < 2000; i++ {
		if p.Advance(0.1) {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return false
}

type fakeInput struct {
	toggle, step, restart bool
}

func (f *fakeInput) TogglePressed() bool  { v := f.toggle; f.toggle = false; return v }
func (f *fakeInput) StepPressed() bool    { v := f.step; f.step = false; return v }
func (f *fakeInput) RestartPressed() bool { v := f.restart; f.restart = false; return v }

type fakeScreen struct {
	frame   *image.RGBA
	overlay Overlay
}

func (f *fakeScreen) DrawFrame(img *image.RGBA) { f.frame = img }
func (f *fakeScreen) DrawOverlay(o Overlay)     { f.overlay = o }

func TestPlayer(t *testing.T) {
	sections := []scene.Section{
		{Names: []string{"Write"}, Start: 0, Duration: 0.3},
		{Wait: true, Start: 0.3, Duration: 0.2},
	}

	Convey("Given a player over five frames", t, func() {
		p := NewPlayer(frames(5, nil), 10, 2, 0.5, sections)
		defer p.Close()

		Convey("Step walks frame by frame", func() {
			for i := 0; i < 5; i++ {
				So(p.Step(), ShouldBeFalse)
				So(int(p.Frame().Pix[0]), ShouldEqual, i)
			}
			So(p.Time(), ShouldAlmostEqual, 0.5, 1e-12)
			So(p.Step(), ShouldBeTrue)
			So(p.Finished(), ShouldBeTrue)
			So(p.Err(), ShouldBeNil)
			So(int(p.Frame().Pix[0]), ShouldEqual, 4)
		})

		Convey("Advance plays to the end", func() {
			So(advanceUntilDone(p), ShouldBeTrue)
			So(p.Time(), ShouldAlmostEqual, 0.5, 1e-12)
			So(p.Overlay(false).Progress(), ShouldEqual, 1.0)
		})

		Convey("Restart starts again from the first frame", func() {
			p.Step()
			p.Step()
			p.Restart()
			So(p.Frame(), ShouldBeNil)
			So(p.Time(), ShouldEqual, 0.0)
			So(p.Step(), ShouldBeFalse)
			So(int(p.Frame().Pix[0]), ShouldEqual, 0)
		})

		Convey("Restart after the end works too", func() {
			So(advanceUntilDone(p), ShouldBeTrue)
			p.Restart()
			So(p.Finished(), ShouldBeFalse)
			So(p.Step(), ShouldBeFalse)
		})

		Convey("Section names the call on screen", func() {
			So(p.Section(0.1), ShouldEqual, "Write")
			So(p.Section(0.35), ShouldEqual, "Wait")
			So(p.Section(9), ShouldEqual, "")
		})
	})

	Convey("A failing scene reports its error", t, func() {
		p := NewPlayer(frames(1, errBoom), 10, 2, 0.1, nil)
		defer p.Close()
		So(p.Step(), ShouldBeFalse)
		So(p.Step(), ShouldBeTrue)
		So(p.Err(), ShouldEqual, errBoom)
	})

	Convey("Close stops a producer that is blocked on a full buffer", t, func() {
		p := NewPlayer(frames(1000, nil), 10, 1, 100, nil)
		p.Step()
		p.Close()
		So(p.Err(), ShouldBeNil)
	})
}

func TestStates(t *testing.T) {
	Convey("Given the preview state machine", t, func() {
		p := NewPlayer(frames(3, nil), 10, 4, 0.3, nil)
		defer p.Close()
		in := &fakeInput{}
		screen := &fakeScreen{}
		sm := NewStateMachine()
		playing := NewPlayingState(sm, p, in)
		sm.SetState(playing)

		Convey("space pauses and resumes", func() {
			in.toggle = true
			sm.Update(0)
			paused, ok := sm.Current().(*PausedState)
			So(ok, ShouldBeTrue)

			sm.Draw(screen)
			So(screen.overlay.Paused, ShouldBeTrue)

			in.step = true
			sm.Update(0)
			So(sm.Current() == State(paused), ShouldBeTrue)
			So(p.Time(), ShouldAlmostEqual, 0.1, 1e-12)
			sm.Draw(screen)
			So(screen.frame, ShouldNotBeNil)

			in.toggle = true
			sm.Update(0)
			So(sm.Current() == State(playing), ShouldBeTrue)
		})

		Convey("playing to the end finishes and R replays", func() {
			for i := 0; i < 2000; i++ {
				sm.Update(0.1)
				if _, done := sm.Current().(*FinishedState); done {
					break
				}
				time.Sleep(time.Millisecond)
			}
			_, done := sm.Current().(*FinishedState)
			So(done, ShouldBeTrue)
			sm.Draw(screen)
			So(screen.overlay.Finished, ShouldBeTrue)

			in.restart = true
			sm.Update(0)
			_, replaying := sm.Current().(*PlayingState)
			So(replaying, ShouldBeTrue)
			So(p.Finished(), ShouldBeFalse)
			So(p.Time(), ShouldEqual, 0.0)
		})

		Convey("stepping past the last frame while paused finishes", func() {
			in.toggle = true
			sm.Update(0)
			for i := 0; i < 4; i++ {
				in.step = true
				sm.Update(0)
			}
			_, done := sm.Current().(*FinishedState)
			So(done, ShouldBeTrue)
		})
	})
}
