package arbor

import (
	"strings"
	"testing"
)

func TestDumpHierarchy(t *testing.T) {
	f, _ := openFrame(t, 200, 200)
	panel := NewContainer("panel", Rect{X: 10, Y: 20, Width: 100, Height: 50})
	button := NewView("button", Rect{Width: 30, Height: 20})
	button.SetWantsFocus(true)
	button.Behavior = &Callbacks{MouseDownFunc: func(*View, *MouseEvent) EventResult { return EventHandled }}
	ghost := NewView("ghost", Rect{Width: 5, Height: 5})
	ghost.SetVisible(false)
	panel.AddChild(button)
	panel.AddChild(ghost)
	f.Root().AddChild(panel)

	f.OnMouseMoved(mouseAt(15, 25))
	f.OnMouseDown(mouseAt(15, 25))
	out := f.DumpHierarchy()

	for _, want := range []string{"root", "panel", "(10,20 100x50)", "button", "focusable", "focus", "captured", "hover", "ghost", "hidden"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Errorf("dump has %d lines, want 4:\n%s", len(lines), out)
	}
}

func TestDumpDetachedLeaf(t *testing.T) {
	out := DumpHierarchy(NewView("lonely", Rect{Width: 1, Height: 2}))
	if !strings.Contains(out, "lonely") || !strings.Contains(out, "1x2") {
		t.Errorf("dump = %q", out)
	}
}
