// Package scene runs a construct function against an ordered set of
// mobjects and turns every Play and Wait call into frames.
package scene

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"

	"go-trig-proof/internal/anim"
	"go-trig-proof/internal/event"
	"go-trig-proof/internal/mobject"
	"go-trig-proof/internal/output"
)

// ErrNoAnimations is returned by Play when called without animations.
var ErrNoAnimations = errors.New("play called without animations")

// Section is one Play or Wait call.
type Section struct {
	Index    int
	Wait     bool
	Names    []string
	Start    float64
	Duration float64
	Frames   int
}

// Scene holds the mobjects on screen and the frame clock. Errors are
// sticky: once a Play or Wait fails every later call returns the same error
// without doing anything, so a construct function may check once at the end.
type Scene struct {
	fps      int
	renderer *Renderer
	sink     output.FrameSink
	events   *event.Dispatcher

	ctx      context.Context
	mobjects []*mobject.VMobject
	sections []Section
	time     float64
	frames   int
	plays    int
	err      error
}

// Option configures a Scene.
type Option func(*Scene)

// WithRenderer sets the renderer. Without one the scene is a dry run that
// only keeps time.
func WithRenderer(r *Renderer) Option { return func(s *Scene) { s.renderer = r } }

// WithSink sets where frames go.
func WithSink(sink output.FrameSink) Option { return func(s *Scene) { s.sink = sink } }

func WithFPS(fps int) Option { return func(s *Scene) { s.fps = fps } }

func WithDispatcher(d *event.Dispatcher) Option { return func(s *Scene) { s.events = d } }

// New returns an empty scene at 30 fps.
func New(opts ...Option) *Scene {
	s := &Scene{fps: 30, ctx: context.Background()}
	for _, o := range opts {
		o(s)
	}
	if s.fps <= 0 {
		s.fps = 30
	}
	return s
}

// Add puts mobjects on top of the scene. A mobject already present moves to
// the top, and top-level entries that belong to an added family are dropped
// so nothing is listed twice.
func (s *Scene) Add(ms ...mobject.Mobject) {
	for _, m := range ms {
		b := m.Base()
		kept := s.mobjects[:0:0]
		for _, cur := range s.mobjects {
			if !b.Contains(cur) {
				kept = append(kept, cur)
			}
		}
		s.mobjects = append(kept, b)
	}
}

// Remove takes mobjects off the scene. Removing a member of a group that is
// on the scene splits that group into its remaining members.
func (s *Scene) Remove(ms ...mobject.Mobject) {
	for _, m := range ms {
		s.mobjects = removeFrom(s.mobjects, m.Base())
	}
}

func removeFrom(list []*mobject.VMobject, target *mobject.VMobject) []*mobject.VMobject {
	var out []*mobject.VMobject
	for _, m := range list {
		switch {
		case m == target:
		case m.Contains(target):
			out = append(out, removeFrom(m.Submobjects, target)...)
		default:
			out = append(out, m)
		}
	}
	return out
}

// Mobjects returns the top-level mobjects in draw order.
func (s *Scene) Mobjects() []*mobject.VMobject {
	return append([]*mobject.VMobject(nil), s.mobjects...)
}

// Has reports whether m is drawn, directly or as part of a family.
func (s *Scene) Has(m mobject.Mobject) bool {
	for _, cur := range s.mobjects {
		if cur.Contains(m.Base()) {
			return true
		}
	}
	return false
}

// Time is the scene time in seconds at the end of the last call.
func (s *Scene) Time() float64 { return s.time }

// Frames is the number of frames emitted so far.
func (s *Scene) Frames() int { return s.frames }

// Sections returns every Play and Wait call so far.
func (s *Scene) Sections() []Section { return append([]Section(nil), s.sections...) }

// Err returns the first error the scene ran into.
func (s *Scene) Err() error { return s.err }

// FrameCount is the number of frames a call of the given length produces:
// one for every whole or partial frame interval.
func FrameCount(seconds float64, fps int) int {
	if seconds <= 0 {
		return 0
	}
	return int(math.Ceil(seconds*float64(fps) - 1e-9))
}

// Play runs the animations together. The call lasts as long as the longest
// of them; shorter ones hold their final state.
func (s *Scene) Play(anims ...anim.Animation) error {
	if s.err != nil {
		return s.err
	}
	if len(anims) == 0 {
		return s.fail(ErrNoAnimations)
	}
	index := s.plays
	s.plays++
	runTime := 0.0
	names := make([]string, len(anims))
	for i, a := range anims {
		names[i] = a.Name()
		runTime = math.Max(runTime, a.RunTime())
		s.events.Dispatch(event.Event{Type: event.AnimationStarted, Data: event.AnimationInfo{Index: index, Name: a.Name(), RunTime: a.RunTime()}})
		a.Begin(s)
	}

	n := FrameCount(runTime, s.fps)
	sec := Section{Index: len(s.sections), Names: names, Start: s.time, Duration: runTime, Frames: n}
	for k := 0; k < n; k++ {
		t := float64(k) / float64(s.fps)
		for _, a := range anims {
			alpha := 1.0
			if rt := a.RunTime(); rt > 0 {
				alpha = math.Min(t/rt, 1)
			}
			a.Interpolate(alpha)
		}
		if err := s.emit(s.draw(anims)); err != nil {
			return s.fail(fmt.Errorf("play %v: %w", names, err))
		}
	}

	for _, a := range anims {
		a.Finish(s)
		s.events.Dispatch(event.Event{Type: event.AnimationFinished, Data: event.AnimationInfo{Index: index, Name: a.Name(), RunTime: a.RunTime()}})
	}
	s.sections = append(s.sections, sec)
	s.time += runTime
	return nil
}

// Wait holds the current picture for the given number of seconds. The frame
// is drawn once and repeated.
func (s *Scene) Wait(seconds float64) error {
	if s.err != nil {
		return s.err
	}
	s.events.Dispatch(event.Event{Type: event.WaitStarted, Data: seconds})
	n := FrameCount(seconds, s.fps)
	var frame *image.RGBA
	if n > 0 {
		frame = s.draw(nil)
	}
	for k := 0; k < n; k++ {
		if err := s.emit(frame); err != nil {
			return s.fail(fmt.Errorf("wait %gs: %w", seconds, err))
		}
	}
	s.sections = append(s.sections, Section{Index: len(s.sections), Wait: true, Start: s.time, Duration: seconds, Frames: n})
	s.time += seconds
	return nil
}

func (s *Scene) draw(anims []anim.Animation) *image.RGBA {
	if s.renderer == nil {
		return nil
	}
	var overlays []*mobject.VMobject
	for _, a := range anims {
		if o, ok := a.(anim.Overlay); ok {
			overlays = append(overlays, o.Overlays()...)
		}
	}
	return s.renderer.Render(s.mobjects, overlays)
}

func (s *Scene) emit(frame *image.RGBA) error {
	if err := s.ctx.Err(); err != nil {
		return err
	}
	if s.sink != nil && frame != nil {
		if err := s.sink.WriteFrame(s.ctx, frame); err != nil {
			return err
		}
	}
	s.frames++
	s.events.Dispatch(event.Event{Type: event.FrameRendered, Data: s.frames})
	return nil
}

func (s *Scene) fail(err error) error {
	if s.err == nil {
		s.err = err
	}
	return s.err
}

// Run calls construct, closes the sink and reports the first error of
// construct, the scene or the sink. Cancelling ctx stops the scene at the
// next frame.
func (s *Scene) Run(ctx context.Context, construct func(*Scene) error) error {
	s.ctx = ctx
	err := construct(s)
	if err == nil {
		err = s.err
	}
	if s.sink != nil {
		if cerr := s.sink.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}
	s.events.Dispatch(event.Event{Type: event.SceneFinished, Data: event.SceneStats{Plays: s.plays, Frames: s.frames, Duration: s.time}})
	return err
}

// Duration runs construct without drawing and returns the scene's length
// together with its sections.
func Duration(construct func(*Scene) error, fps int) (float64, []Section, error) {
	s := New(WithFPS(fps))
	if err := s.Run(context.Background(), construct); err != nil {
		return 0, nil, err
	}
	return s.time, s.sections, nil
}
