package arbor

// Mouse routing has two states: idle, where the hover chain follows the
// pointer, and tracking, where a view that handled a mouse-down receives
// every move and up until the gesture ends. Entry points take positions in
// frame coordinates; handlers receive them in their parent's space.

// OnMouseDown routes a button press. Mouse observers see it first. During a
// modal session only the modal view's subtree is considered. Otherwise the
// tree is walked front to back; a view that wants focus gets it before its
// handler runs, EventHandled captures the pointer, and an opaque view that
// does not consume the press ends the walk with its result.
func (f *Frame) OnMouseDown(e MouseEvent) EventResult {
	if !f.open {
		return EventNotHandled
	}
	defer f.scope()()
	f.lastMouse = e.Position
	f.mouseInside = true

	if res := f.observeMouseDown(&e); res.Consumed() {
		return EventHandled
	}
	// A capture surviving from a gesture that never saw its mouse-up.
	f.captured = nil

	if m := f.ModalView(); m != nil {
		if !m.visible || !m.mouseEnabled {
			return EventNotHandled
		}
		return f.mouseDownIn(m, m.FrameToLocal(e.Position), e)
	}
	root := f.root
	if !root.visible || !root.mouseEnabled || !root.hitTest(e.Position, e.Buttons) {
		return EventNotHandled
	}
	return f.mouseDownIn(root, e.Position, e)
}

// mouseDownIn delivers a press at p, given in v's parent space.
func (f *Frame) mouseDownIn(v *View, p Point, e MouseEvent) EventResult {
	if v.IsContainer() {
		lp := v.toLocal(p)
		children := append([]*View(nil), v.children...)
		for i := len(children) - 1; i >= 0; i-- {
			c := children[i]
			if c.parent != v || !c.visible || !c.mouseEnabled || !c.hitTest(lp, e.Buttons) {
				continue
			}
			if c.focusable() {
				f.SetFocusView(c)
			}
			res := f.mouseDownIn(c, lp, e)
			if res.Consumed() || !c.transparent {
				return res
			}
		}
	}
	h, ok := v.Behavior.(MouseHandler)
	if !ok {
		return EventNotImplemented
	}
	done := retainPath(v)
	defer done()
	ev := e
	ev.Position = p
	res := h.OnMouseDown(v, &ev)
	if res == EventHandled && v.frame == f {
		f.captured = v
	}
	return res
}

// OnMouseMoved routes pointer motion. Without a capture the hover chain is
// updated first. While captured, only the captured view receives the move,
// and EventNotHandled releases the capture. A move nobody captured is
// offered to the hover chain innermost first.
func (f *Frame) OnMouseMoved(e MouseEvent) EventResult {
	if !f.open {
		return EventNotHandled
	}
	defer f.scope()()
	f.lastMouse = e.Position
	f.mouseInside = true

	if f.captured == nil {
		f.updateHover(e)
	}
	if res := f.observeMouseMoved(&e); res.Consumed() {
		return EventHandled
	}
	if c := f.captured; c != nil {
		res := f.deliverMouse(c, e, MouseHandler.OnMouseMoved)
		if res != EventNotHandled {
			return res
		}
		if f.captured == c {
			f.captured = nil
		}
		f.updateHover(e)
	}
	hover := append([]*View(nil), f.hover...)
	for i := len(hover) - 1; i >= 0; i-- {
		if hover[i].frame != f {
			continue
		}
		if res := f.deliverMouse(hover[i], e, MouseHandler.OnMouseMoved); res == EventHandled {
			return res
		}
	}
	return EventNotHandled
}

// OnMouseUp routes a button release to the captured view and ends the
// gesture.
func (f *Frame) OnMouseUp(e MouseEvent) EventResult {
	if !f.open {
		return EventNotHandled
	}
	defer f.scope()()
	f.lastMouse = e.Position

	res := EventNotHandled
	if c := f.captured; c != nil {
		res = f.deliverMouse(c, e, MouseHandler.OnMouseUp)
		if f.captured == c {
			f.captured = nil
		}
	}
	f.updateHover(e)
	return res
}

// OnMouseExited tells the frame the pointer left the surface. The hover
// chain is emptied unless a gesture is being tracked.
func (f *Frame) OnMouseExited(e MouseEvent) {
	if !f.open {
		return
	}
	defer f.scope()()
	f.mouseInside = false
	if f.captured == nil {
		f.lastMouse = e.Position
		f.clearHover(true)
		f.setCursor(CursorDefault)
	}
}

// CancelMouse interrupts the current gesture: the captured view receives one
// OnMouseCancel, the hover chain is emptied and any drag target is told the
// drag left.
func (f *Frame) CancelMouse() {
	if !f.open {
		return
	}
	defer f.scope()()
	f.cancelCapture()
	f.clearHover(true)
	f.cancelDrag()
}

func (f *Frame) cancelCapture() {
	c := f.captured
	if c == nil {
		return
	}
	f.captured = nil
	if h, ok := c.Behavior.(MouseCanceler); ok {
		done := retainPath(c)
		h.OnMouseCancel(c)
		done()
	}
}

// deliverMouse calls one MouseHandler method on v with the event position
// mapped into v's parent space.
func (f *Frame) deliverMouse(v *View, e MouseEvent, call func(MouseHandler, *View, *MouseEvent) EventResult) EventResult {
	h, ok := v.Behavior.(MouseHandler)
	if !ok {
		return EventNotImplemented
	}
	done := retainPath(v)
	defer done()
	ev := e
	ev.Position = v.FrameToLocal(e.Position)
	return call(h, v, &ev)
}

func (f *Frame) observeMouseDown(e *MouseEvent) EventResult {
	for _, o := range f.mouseObservers.snapshot() {
		if res := o.OnMouseDown(f, e); res.Consumed() {
			return res
		}
	}
	return EventNotHandled
}

func (f *Frame) observeMouseMoved(e *MouseEvent) EventResult {
	for _, o := range f.mouseObservers.snapshot() {
		if res := o.OnMouseMoved(f, e); res.Consumed() {
			return res
		}
	}
	return EventNotHandled
}

// --- Wheel ---

// OnWheel routes a scroll step. It is ignored while a gesture is captured.
// During a modal session only the modal subtree sees it. An opaque view that
// does not consume the step stops it from reaching views behind.
func (f *Frame) OnWheel(e WheelEvent) EventResult {
	if !f.open || f.captured != nil {
		return EventNotHandled
	}
	defer f.scope()()
	if m := f.ModalView(); m != nil {
		if !m.visible || !m.mouseEnabled {
			return EventNotHandled
		}
		return f.wheelIn(m, m.FrameToLocal(e.Position), e)
	}
	root := f.root
	if !root.visible || !root.mouseEnabled || !root.hitArea(e.Position) {
		return EventNotHandled
	}
	return f.wheelIn(root, e.Position, e)
}

func (f *Frame) wheelIn(v *View, p Point, e WheelEvent) EventResult {
	if v.IsContainer() {
		lp := v.toLocal(p)
		children := append([]*View(nil), v.children...)
		for i := len(children) - 1; i >= 0; i-- {
			c := children[i]
			if c.parent != v || !c.visible || !c.mouseEnabled || !c.hitTest(lp, e.Buttons) {
				continue
			}
			res := f.wheelIn(c, lp, e)
			if res.Consumed() || !c.transparent {
				return res
			}
		}
	}
	h, ok := v.Behavior.(WheelHandler)
	if !ok {
		return EventNotImplemented
	}
	done := retainPath(v)
	defer done()
	ev := e
	ev.Position = p
	return h.OnWheel(v, &ev)
}
