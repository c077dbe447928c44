package host

import (
	"testing"

	"github.com/phanxgames/arbor"
)

func TestInjectClick(t *testing.T) {
	th := newTestHost(t)
	th.InjectClick(20, 20)
	if th.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", th.Pending())
	}

	th.frames(1)
	if th.Pending() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", th.Pending())
	}
	if th.Frame().MouseCaptureView() != th.a {
		t.Error("press did not capture a")
	}

	th.frames(1)
	if th.Pending() != 0 {
		t.Fatalf("expected 0 remaining events after frame 2, got %d", th.Pending())
	}
	assertLog(t, th.log, "moved(a)", "down(a)", "up(a)")
	if th.Frame().MouseCaptureView() != nil {
		t.Error("capture survived the release")
	}
}

func TestInjectDrag(t *testing.T) {
	th := newTestHost(t)
	var moves []arbor.Point
	th.a.Behavior = &arbor.Callbacks{
		MouseDownFunc: func(*arbor.View, *arbor.MouseEvent) arbor.EventResult { return arbor.EventHandled },
		MouseMovedFunc: func(_ *arbor.View, e *arbor.MouseEvent) arbor.EventResult {
			if e.Buttons.IsLeft() {
				moves = append(moves, e.Position)
			}
			return arbor.EventHandled
		},
	}

	// Press at (10,10), three moves, release at (170,10). The pointer
	// arrives at the press point with the button already down; the release
	// move carries no buttons.
	th.InjectDrag(10, 10, 170, 10, 5)
	th.frames(5)

	want := []arbor.Point{{X: 10, Y: 10}, {X: 50, Y: 10}, {X: 90, Y: 10}, {X: 130, Y: 10}}
	if len(moves) != len(want) {
		t.Fatalf("moves = %v, want %v", moves, want)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d = %v, want %v", i, moves[i], want[i])
		}
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	th := newTestHost(t)
	th.InjectDrag(0, 0, 10, 10, 0)
	if th.Pending() != 2 {
		t.Errorf("queued %d events, want press and release", th.Pending())
	}
}

func TestInjectedEventsSuppressRealInput(t *testing.T) {
	th := newTestHost(t)
	th.in.at(120, 10, arbor.ButtonLeft)
	th.InjectHover(10, 10)
	th.frames(1)
	assertLog(t, th.log, "moved(a)")
	if th.Frame().MouseCaptureView() != nil {
		t.Error("real press dispatched while injecting")
	}
}

func TestInjectKeyAndText(t *testing.T) {
	th := newTestHost(t)
	th.Frame().SetFocusView(th.a)
	th.InjectKey(arbor.KeyEvent{Virtual: arbor.VKeyTab})
	th.frames(2)
	if th.Frame().FocusView() != th.b {
		t.Errorf("focus = %v, want b after Tab", th.Frame().FocusView())
	}

	th.InjectText("ok")
	th.frames(2)
	assertLog(t, th.log, "char:o(b)", "char:k(b)")
}

func TestInjectWheel(t *testing.T) {
	th := newTestHost(t)
	var got []float64
	th.b.Behavior = &arbor.Callbacks{
		WheelFunc: func(_ *arbor.View, e *arbor.WheelEvent) arbor.EventResult {
			got = append(got, e.Distance)
			return arbor.EventHandled
		},
	}
	th.InjectWheel(110, 10, -2)
	th.frames(1)
	if len(got) != 1 || got[0] != -2 {
		t.Errorf("wheel distances = %v, want [-2]", got)
	}
}
