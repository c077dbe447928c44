package ecs

import (
	"testing"

	"github.com/phanxgames/arbor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type stubPlatform struct{}

func (stubPlatform) InvalidateRect(arbor.Rect)          {}
func (stubPlatform) Ticks() uint64                      { return 0 }
func (stubPlatform) MousePosition() (arbor.Point, bool) { return arbor.Point{}, false }
func (stubPlatform) MouseButtons() arbor.Buttons        { return 0 }
func (stubPlatform) SetCursor(arbor.Cursor)             {}

func openFrame(t *testing.T) (*arbor.Frame, *arbor.View, *arbor.View) {
	t.Helper()
	f := arbor.NewFrame(200, 100)
	a := arbor.NewView("a", arbor.Rect{Width: 50, Height: 50})
	b := arbor.NewView("b", arbor.Rect{X: 100, Width: 50, Height: 50})
	a.SetWantsFocus(true)
	b.SetWantsFocus(true)
	f.Root().AddChild(a)
	f.Root().AddChild(b)
	if err := f.Open(stubPlatform{}); err != nil {
		t.Fatal(err)
	}
	return f, a, b
}

func TestAttachSeedsOpenFrame(t *testing.T) {
	f, a, _ := openFrame(t)
	world := donburi.NewWorld()
	bridge := Attach(f, world)

	if got := bridge.Count(); got != 3 {
		t.Fatalf("Count = %d, want 3", got)
	}
	e, ok := bridge.Entity(a)
	if !ok {
		t.Fatal("no entity for a")
	}
	if bridge.View(e) != a {
		t.Errorf("View(entity of a) = %v, want a", bridge.View(e))
	}

	names := map[string]bool{}
	bridge.Each(func(_ donburi.Entity, d *ViewData) { names[d.Name] = true })
	for _, n := range []string{"a", "b"} {
		if !names[n] {
			t.Errorf("Each missed %q", n)
		}
	}
}

func TestBridgeTracksTreeChanges(t *testing.T) {
	f, a, _ := openFrame(t)
	world := donburi.NewWorld()
	bridge := Attach(f, world)

	var received []TreeEvent
	TreeEventType.Subscribe(world, func(_ donburi.World, e TreeEvent) {
		received = append(received, e)
	})

	c := arbor.NewView("c", arbor.Rect{Y: 60, Width: 10, Height: 10})
	f.Root().AddChild(c)
	ce, _ := bridge.Entity(c)
	f.Root().RemoveChild(a, true)
	events.ProcessAllEvents(world)

	if len(received) != 2 {
		t.Fatalf("received %d tree events, want 2", len(received))
	}
	if !received[0].Attached || received[0].Name != "c" || received[0].Entity != ce {
		t.Errorf("first event = %+v, want c attached", received[0])
	}
	if received[1].Attached || received[1].Name != "a" {
		t.Errorf("second event = %+v, want a removed", received[1])
	}
	if world.Valid(received[1].Entity) {
		t.Error("removed view's entity still valid")
	}
	if _, ok := bridge.Entity(a); ok {
		t.Error("bridge still maps a")
	}
	if got := bridge.Count(); got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}
}

func TestBridgePublishesFocus(t *testing.T) {
	f, a, b := openFrame(t)
	world := donburi.NewWorld()
	bridge := Attach(f, world)
	ae, _ := bridge.Entity(a)
	be, _ := bridge.Entity(b)

	var received []FocusEvent
	FocusEventType.Subscribe(world, func(_ donburi.World, e FocusEvent) {
		received = append(received, e)
	})

	f.SetFocusView(a)
	f.SetFocusView(b)
	events.ProcessAllEvents(world)

	want := []FocusEvent{{Current: ae}, {Old: ae, Current: be}}
	if len(received) != len(want) {
		t.Fatalf("received %v, want %v", received, want)
	}
	for i := range want {
		if received[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, received[i], want[i])
		}
	}
}

func TestBridgePublishesMouse(t *testing.T) {
	f, a, _ := openFrame(t)
	world := donburi.NewWorld()
	bridge := Attach(f, world)
	ae, _ := bridge.Entity(a)

	var received []MouseEvent
	MouseEventType.Subscribe(world, func(_ donburi.World, e MouseEvent) {
		received = append(received, e)
	})

	f.OnMouseMoved(arbor.MouseEvent{Position: arbor.Point{X: 10, Y: 10}})
	f.OnMouseDown(arbor.MouseEvent{Position: arbor.Point{X: 10, Y: 10}, Buttons: arbor.ButtonLeft})
	events.ProcessAllEvents(world)

	var entered, down bool
	for _, e := range received {
		switch {
		case e.Kind == MouseEntered && e.Entity == ae:
			entered = true
		case e.Kind == MouseDown:
			down = e.Position == arbor.Point{X: 10, Y: 10} && e.Buttons.IsLeft()
		}
	}
	if !entered {
		t.Errorf("no enter event for a in %v", received)
	}
	if !down {
		t.Errorf("no left down at (10,10) in %v", received)
	}
}

func TestDetachRemovesEntitiesAndObservers(t *testing.T) {
	f, a, _ := openFrame(t)
	world := donburi.NewWorld()
	bridge := Attach(f, world)
	bridge.Detach()

	if got := bridge.Count(); got != 0 {
		t.Errorf("Count after Detach = %d, want 0", got)
	}

	var count int
	FocusEventType.Subscribe(world, func(donburi.World, FocusEvent) { count++ })
	f.SetFocusView(a)
	events.ProcessAllEvents(world)
	if count != 0 {
		t.Errorf("focus events after Detach = %d, want 0", count)
	}
}

func TestAttachBeforeOpen(t *testing.T) {
	f := arbor.NewFrame(100, 100)
	f.Root().AddChild(arbor.NewView("a", arbor.Rect{Width: 10, Height: 10}))
	world := donburi.NewWorld()
	bridge := Attach(f, world)
	if bridge.Count() != 0 {
		t.Fatalf("Count before Open = %d, want 0", bridge.Count())
	}
	if err := f.Open(stubPlatform{}); err != nil {
		t.Fatal(err)
	}
	if got := bridge.Count(); got != 2 {
		t.Errorf("Count after Open = %d, want 2", got)
	}
}

func TestMouseEventKindString(t *testing.T) {
	tests := []struct {
		kind MouseEventKind
		want string
	}{
		{MouseEntered, "entered"},
		{MouseExited, "exited"},
		{MouseDown, "down"},
		{MouseMoved, "moved"},
		{MouseEventKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
