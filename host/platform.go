package host

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/arbor"
)

// InvalidateRect queues r for the next Draw. Rects already covered by a
// queued rect are dropped.
func (h *Host) InvalidateRect(r arbor.Rect) {
	if r.IsEmpty() {
		return
	}
	h.pending, _ = arbor.CoalesceRect(h.pending, r)
}

// Ticks returns milliseconds since the host was created.
func (h *Host) Ticks() uint64 {
	return uint64(h.clock().Sub(h.start).Milliseconds())
}

// MousePosition returns the pointer position seen by the last Update.
func (h *Host) MousePosition() (arbor.Point, bool) {
	return h.pointer.pos, h.pointer.inside
}

// MouseButtons returns the buttons held at the last Update.
func (h *Host) MouseButtons() arbor.Buttons { return h.pointer.buttons }

// SetCursor records the shape; it is applied to the window on the next
// Update.
func (h *Host) SetCursor(c arbor.Cursor) { h.cursor = c }

// Cursor returns the shape last requested by the frame.
func (h *Host) Cursor() arbor.Cursor { return h.cursor }

func cursorShape(c arbor.Cursor) ebiten.CursorShapeType {
	switch c {
	case arbor.CursorPointer:
		return ebiten.CursorShapePointer
	case arbor.CursorText:
		return ebiten.CursorShapeText
	case arbor.CursorCrosshair:
		return ebiten.CursorShapeCrosshair
	case arbor.CursorEWResize:
		return ebiten.CursorShapeEWResize
	case arbor.CursorNSResize:
		return ebiten.CursorShapeNSResize
	case arbor.CursorNotAllowed:
		return ebiten.CursorShapeNotAllowed
	case arbor.CursorMove:
		return ebiten.CursorShapeMove
	}
	return ebiten.CursorShapeDefault
}

var _ arbor.Platform = (*Host)(nil)
