package arbor

import (
	"fmt"
	"testing"
)

// fakePlatform records invalidations and cursor changes. Ticks only advance
// when a test moves now.
type fakePlatform struct {
	now         uint64
	invalidated []Rect
	cursor      Cursor
	mouse       Point
	mouseInside bool
	buttons     Buttons
}

func (p *fakePlatform) InvalidateRect(r Rect)        { p.invalidated = append(p.invalidated, r) }
func (p *fakePlatform) Ticks() uint64                { return p.now }
func (p *fakePlatform) MousePosition() (Point, bool) { return p.mouse, p.mouseInside }
func (p *fakePlatform) MouseButtons() Buttons        { return p.buttons }
func (p *fakePlatform) SetCursor(c Cursor)           { p.cursor = c }
func (p *fakePlatform) reset()                       { p.invalidated = nil }

// eventLog collects "kind(name)" entries from recorder behaviors.
type eventLog struct {
	entries []string
}

func (l *eventLog) add(kind string, v *View) {
	l.entries = append(l.entries, fmt.Sprintf("%s(%s)", kind, v.Name))
}

func (l *eventLog) reset() { l.entries = nil }

// recorder is a behavior that logs every capability call and returns
// configurable results.
type recorder struct {
	log       *eventLog
	down      EventResult
	moved     EventResult
	up        EventResult
	wheel     EventResult
	key       EventResult
	lastPoint Point
}

func (r *recorder) OnMouseDown(v *View, e *MouseEvent) EventResult {
	r.log.add("down", v)
	r.lastPoint = e.Position
	return r.down
}

func (r *recorder) OnMouseMoved(v *View, e *MouseEvent) EventResult {
	r.log.add("moved", v)
	r.lastPoint = e.Position
	return r.moved
}

func (r *recorder) OnMouseUp(v *View, e *MouseEvent) EventResult {
	r.log.add("up", v)
	r.lastPoint = e.Position
	return r.up
}

func (r *recorder) OnMouseCancel(v *View)                      { r.log.add("cancel", v) }
func (r *recorder) OnMouseEntered(v *View, e *MouseEvent)      { r.log.add("entered", v) }
func (r *recorder) OnMouseExited(v *View, e *MouseEvent)       { r.log.add("exited", v) }
func (r *recorder) TakeFocus(v *View)                          { r.log.add("take", v) }
func (r *recorder) LoseFocus(v *View)                          { r.log.add("lose", v) }
func (r *recorder) Attached(v *View, parent *View)             { r.log.add("attached", v) }
func (r *recorder) Removed(v *View, parent *View)              { r.log.add("removed", v) }
func (r *recorder) OnWheel(v *View, e *WheelEvent) EventResult { r.log.add("wheel", v); return r.wheel }

func (r *recorder) OnKeyDown(v *View, e *KeyEvent) EventResult {
	r.log.add("keydown", v)
	return r.key
}

func (r *recorder) OnKeyUp(v *View, e *KeyEvent) EventResult {
	r.log.add("keyup", v)
	return r.key
}

// dropRecorder is a recorder that also accepts drops.
type dropRecorder struct {
	recorder
	accept bool
}

func (r *dropRecorder) OnDragEnter(v *View, e *DragEvent) DragOperation {
	r.log.add("dragenter", v)
	return DragOperationCopy
}

func (r *dropRecorder) OnDragMove(v *View, e *DragEvent) DragOperation {
	r.log.add("dragmove", v)
	return DragOperationCopy
}

func (r *dropRecorder) OnDragLeave(v *View, e *DragEvent) { r.log.add("dragleave", v) }

func (r *dropRecorder) OnDrop(v *View, e *DragEvent) bool {
	r.log.add("drop", v)
	return r.accept
}

func openFrame(t *testing.T, w, h float64) (*Frame, *fakePlatform) {
	t.Helper()
	f := NewFrame(w, h)
	p := &fakePlatform{}
	if err := f.Open(p); err != nil {
		t.Fatalf("Open: %v", err)
	}
	p.reset()
	return f, p
}

func assertLog(t *testing.T, log *eventLog, want ...string) {
	t.Helper()
	if len(log.entries) != len(want) {
		t.Fatalf("log = %v, want %v", log.entries, want)
	}
	for i := range want {
		if log.entries[i] != want[i] {
			t.Fatalf("log = %v, want %v", log.entries, want)
		}
	}
}

func mouseAt(x, y float64) MouseEvent {
	return MouseEvent{Position: Point{x, y}, Buttons: ButtonLeft}
}

// drawCall is one recorded DrawContext operation.
type drawCall struct {
	op    string
	rect  Rect
	alpha float64
	clip  Rect
}

// recordingContext records fills and strokes in device space.
type recordingContext struct {
	ContextState
	calls []drawCall
}

func newRecordingContext(w, h float64) *recordingContext {
	return &recordingContext{ContextState: NewContextState(Rect{Width: w, Height: h})}
}

func (c *recordingContext) record(op string, r Rect) {
	c.calls = append(c.calls, drawCall{op: op, rect: c.Current().ApplyRect(r), alpha: c.GlobalAlpha(), clip: c.DeviceClip()})
}

func (c *recordingContext) FillRect(r Rect, col Color)              { c.record("fill", r) }
func (c *recordingContext) StrokeRect(r Rect, col Color, w float64) { c.record("stroke", r) }
func (c *recordingContext) DrawBitmap(b Bitmap, dst Rect)           { c.record("bitmap", dst) }
