package arbor

// OnKeyDown routes a key press. Keyboard hooks run first (last registered
// first), then the focus view and its enabled ancestors, then the modal
// view. An unconsumed Tab moves focus forward, Shift-Tab backward.
func (f *Frame) OnKeyDown(e KeyEvent) EventResult {
	e.Type = KeyDown
	return f.dispatchKey(e)
}

// OnKeyUp routes a key release along the same path as OnKeyDown.
func (f *Frame) OnKeyUp(e KeyEvent) EventResult {
	e.Type = KeyUp
	return f.dispatchKey(e)
}

func (f *Frame) dispatchKey(e KeyEvent) EventResult {
	if !f.open {
		return EventNotHandled
	}
	defer f.scope()()

	hooks := f.keyboardHooks.snapshot()
	for i := len(hooks) - 1; i >= 0; i-- {
		if hooks[i](f, &e).Consumed() {
			return EventHandled
		}
	}

	modal := f.ModalView()
	modalSeen := false
	if fv := f.focusView; fv != nil {
		done := retainPath(fv)
		defer done()
		if sendKey(fv, &e).Consumed() {
			return EventHandled
		}
		modalSeen = fv == modal
		for p := fv.parent; p != nil && !modalSeen; p = p.parent {
			if p.mouseEnabled && sendKey(p, &e).Consumed() {
				return EventHandled
			}
			modalSeen = p == modal
		}
	}
	if modal != nil && !modalSeen {
		done := retainPath(modal)
		defer done()
		if sendKey(modal, &e).Consumed() {
			return EventHandled
		}
	}

	if e.Type == KeyDown && e.Virtual == VKeyTab && e.Modifiers&^ModShift == 0 {
		if f.AdvanceFocus(f.focusView, e.Modifiers&ModShift != 0) {
			return EventHandled
		}
	}
	return EventNotHandled
}

func sendKey(v *View, e *KeyEvent) EventResult {
	h, ok := v.Behavior.(KeyHandler)
	if !ok {
		return EventNotImplemented
	}
	if e.Type == KeyUp {
		return h.OnKeyUp(v, e)
	}
	return h.OnKeyDown(v, e)
}
