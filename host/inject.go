package host

import "github.com/phanxgames/arbor"

// syntheticEvent is one queued input event. Pointer events replace the real
// pointer for the frame they are consumed in; key and wheel events are
// delivered on their own.
type syntheticEvent struct {
	pos     arbor.Point
	buttons arbor.Buttons
	key     *arbor.KeyEvent
	wheel   float64
}

// InjectPress queues a left-button press at the given frame coordinates.
// The event is consumed on the next Update.
func (h *Host) InjectPress(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{pos: arbor.Point{X: x, Y: y}, buttons: arbor.ButtonLeft})
}

// InjectMove queues a pointer move with the left button held. Use it
// between InjectPress and InjectRelease to simulate a drag.
func (h *Host) InjectMove(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{pos: arbor.Point{X: x, Y: y}, buttons: arbor.ButtonLeft})
}

// InjectHover queues a pointer move with no button held.
func (h *Host) InjectHover(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{pos: arbor.Point{X: x, Y: y}})
}

// InjectRelease queues a button release at the given frame coordinates.
func (h *Host) InjectRelease(x, y float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{pos: arbor.Point{X: x, Y: y}})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (h *Host) InjectClick(x, y float64) {
	h.InjectPress(x, y)
	h.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2.
func (h *Host) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	h.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		h.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	h.InjectRelease(toX, toY)
}

// InjectKey queues a key down and key up for e.
func (h *Host) InjectKey(e arbor.KeyEvent) {
	down, up := e, e
	down.Type, up.Type = arbor.KeyDown, arbor.KeyUp
	h.injectQueue = append(h.injectQueue, syntheticEvent{key: &down}, syntheticEvent{key: &up})
}

// InjectText queues one key-down character event per rune of s.
func (h *Host) InjectText(s string) {
	for _, r := range s {
		e := arbor.KeyEvent{Type: arbor.KeyDown, Character: r}
		h.injectQueue = append(h.injectQueue, syntheticEvent{key: &e})
	}
}

// InjectWheel queues a vertical wheel step at the given point.
func (h *Host) InjectWheel(x, y, distance float64) {
	h.injectQueue = append(h.injectQueue, syntheticEvent{pos: arbor.Point{X: x, Y: y}, wheel: distance})
}

// Pending reports how many injected events are still queued.
func (h *Host) Pending() int { return len(h.injectQueue) }

// processInjected pops one event from the queue and dispatches it. It
// returns true when an event was consumed, in which case real input is
// skipped for the frame.
func (h *Host) processInjected() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	evt := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]

	switch {
	case evt.key != nil:
		h.dispatchKey(*evt.key)
	case evt.wheel != 0:
		h.frame.OnWheel(arbor.WheelEvent{Position: evt.pos, Axis: arbor.WheelVertical, Distance: evt.wheel, Buttons: h.pointer.buttons})
	default:
		h.dispatchPointer(evt.pos, true, evt.buttons, 0)
	}
	return true
}
