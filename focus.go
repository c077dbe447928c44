package arbor

// FocusView returns the view holding keyboard focus, or nil.
func (f *Frame) FocusView() *View { return f.focusView }

// IsActive reports whether the frame's window is active.
func (f *Frame) IsActive() bool { return f.active }

// SetFocusView moves keyboard focus to v, or clears it when v is nil. A
// detached, hidden or disabled view yields no focus. During a modal session
// focus is confined to the modal subtree and requests outside it are
// ignored. While the frame is inactive the request is remembered and applied
// on reactivation.
func (f *Frame) SetFocusView(v *View) {
	if f.inSetFocus {
		return
	}
	if v != nil && (v.frame != f || !v.visible || !v.mouseEnabled) {
		v = nil
	}
	if v != nil && !f.insideModal(v) {
		debugf("focus request for %q outside modal view ignored", v.Name)
		return
	}
	if !f.active {
		f.activeFocusView = v
		return
	}
	old := f.focusView
	if old == v {
		return
	}
	f.inSetFocus = true
	defer func() { f.inSetFocus = false }()

	f.focusView = v
	if v != nil {
		f.invalidateFocusRing(v)
		for p := v.parent; p != nil; p = p.parent {
			p.notifyDescendantFocus(v, true)
		}
	}
	if old != nil {
		f.invalidateFocusRing(old)
		for p := old.parent; p != nil; p = p.parent {
			p.notifyDescendantFocus(old, false)
		}
		if t, ok := old.Behavior.(FocusTarget); ok {
			done := retainPath(old)
			t.LoseFocus(old)
			done()
		}
	}
	if cur := f.focusView; cur != nil && cur == v && cur.wantsFocus {
		if t, ok := cur.Behavior.(FocusTarget); ok {
			done := retainPath(cur)
			t.TakeFocus(cur)
			done()
		}
	}
	for _, o := range f.focusObservers.snapshot() {
		o(f, old, f.focusView)
	}
}

// Activate tells the frame its window gained or lost activation. Losing
// activation remembers and clears the focus view; regaining it restores the
// remembered view, or focuses the first focusable view when none was kept.
func (f *Frame) Activate(state bool) {
	if f.active == state {
		return
	}
	if f.open {
		defer f.scope()()
	}
	if !state {
		keep := f.focusView
		f.SetFocusView(nil)
		f.active = false
		f.activeFocusView = keep
		return
	}
	f.active = true
	keep := f.activeFocusView
	f.activeFocusView = nil
	if keep != nil && keep.frame == f {
		f.SetFocusView(keep)
	} else if f.open {
		f.AdvanceFocus(nil, false)
	}
}

// AdvanceFocus moves focus to the next focusable view after old in
// depth-first tree order, or the previous one when reverse is set. A nil
// old starts from the current focus view, or from the beginning of the tree
// when nothing is focused. Exhausting a container continues with the
// parent's next sibling; exhausting the whole tree (or the modal view)
// clears focus and returns false.
func (f *Frame) AdvanceFocus(old *View, reverse bool) bool {
	if !f.open {
		return false
	}
	defer f.scope()()
	scope := f.root
	if m := f.ModalView(); m != nil {
		if !m.IsContainer() {
			if old != m && m.focusable() {
				f.SetFocusView(m)
				return true
			}
			return false
		}
		scope = m
	}
	if old == nil {
		old = f.focusView
	}
	if old == nil || old == scope || !scope.IsChild(old, true) {
		return f.advanceIn(scope, nil, reverse)
	}
	cur := old
	for p := cur.parent; p != nil; p = p.parent {
		if f.advanceIn(p, cur, reverse) {
			return true
		}
		if p == scope {
			break
		}
		cur = p
	}
	f.SetFocusView(nil)
	return false
}

// advanceIn focuses the first focusable view inside c that comes after
// `after` (a direct child of c), descending into child containers. A nil
// after starts at the first child in traversal order.
func (f *Frame) advanceIn(c *View, after *View, reverse bool) bool {
	n := len(c.children)
	start, step := 0, 1
	if reverse {
		start, step = n-1, -1
	}
	if after != nil {
		idx := c.indexOf(after)
		if idx < 0 {
			return false
		}
		start = idx + step
	}
	for i := start; i >= 0 && i < n; i += step {
		v := c.children[i]
		if v.focusable() && f.insideModal(v) {
			f.SetFocusView(v)
			return true
		}
		if v.IsContainer() && v.visible && f.advanceIn(v, nil, reverse) {
			return true
		}
	}
	return false
}

func (f *Frame) invalidateFocusRing(v *View) {
	if !f.focusCfg.enabled || !v.wantsFocus {
		return
	}
	r, ok := f.focusRect(v)
	if !ok {
		return
	}
	v.InvalidRect(r.Inset(-f.focusCfg.width, -f.focusCfg.width))
}

// focusRect returns the outline of v's focus ring in its parent's space.
func (f *Frame) focusRect(v *View) (Rect, bool) {
	if d, ok := v.Behavior.(FocusDrawing); ok {
		return d.FocusRect(v)
	}
	return v.rect, true
}

func (f *Frame) drawFocusOnTop(v *View) bool {
	if d, ok := v.Behavior.(FocusDrawing); ok {
		return d.DrawFocusOnTop(v)
	}
	return true
}
