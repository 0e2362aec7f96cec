package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatcher(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(FrameRendered, r)

	var waits []float64
	d.Subscribe(WaitStarted, ListenerFunc(func(e Event) {
		waits = append(waits, e.Data.(float64))
	}))

	d.Dispatch(Event{Type: FrameRendered, Data: 1})
	d.Dispatch(Event{Type: WaitStarted, Data: 2.5})
	d.Dispatch(Event{Type: SceneFinished})

	if len(r.got) != 1 || r.got[0].Data != 1 {
		t.Fatalf("frame listener got %v", r.got)
	}
	if len(waits) != 1 || waits[0] != 2.5 {
		t.Fatalf("wait listener got %v", waits)
	}

	d.Unsubscribe(FrameRendered, r)
	d.Dispatch(Event{Type: FrameRendered, Data: 2})
	if len(r.got) != 1 {
		t.Fatalf("unsubscribed listener still called: %v", r.got)
	}
}

func TestUnsubscribeFuncListener(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	f := ListenerFunc(func(Event) { calls++ })
	r := &recorder{}
	d.Subscribe(FrameRendered, f)
	d.Subscribe(FrameRendered, r)

	// a function cannot be identified, so it stays subscribed
	d.Unsubscribe(FrameRendered, f)
	d.Unsubscribe(FrameRendered, r)
	d.Dispatch(Event{Type: FrameRendered})
	if calls != 1 {
		t.Fatalf("func listener called %d times", calls)
	}
	if len(r.got) != 0 {
		t.Fatalf("pointer listener still subscribed: %v", r.got)
	}
}

func TestNilDispatcher(t *testing.T) {
	var d *Dispatcher
	// a scene without listeners dispatches into nil
	d.Dispatch(Event{Type: SceneFinished})
}
