package arbor

// hoverPath returns the root-to-leaf chain of views under a frame point:
// the scope (root or modal view) with its ancestors, then the front-most
// visible, mouse-enabled child that passes hitTest at each level, so hover
// agrees with where a press would land.
func (f *Frame) hoverPath(p Point, buttons Buttons) []*View {
	scope := f.root
	if m := f.ModalView(); m != nil {
		scope = m
	}
	q := scope.FrameToLocal(p)
	if !scope.visible || !scope.mouseEnabled || !scope.hitArea(q) {
		return nil
	}
	var path []*View
	for a := scope.parent; a != nil; a = a.parent {
		path = append(path, a)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	path = append(path, scope)

	cur := scope
	for cur.IsContainer() {
		lq := cur.toLocal(q)
		var next *View
		for i := len(cur.children) - 1; i >= 0; i-- {
			c := cur.children[i]
			if c.visible && c.mouseEnabled && c.hitTest(lq, buttons) {
				next = c
				break
			}
		}
		if next == nil {
			break
		}
		path = append(path, next)
		cur, q = next, lq
	}
	return path
}

// updateHover diffs the current chain against the views under e.Position.
// The shared prefix is left alone, views leaving the chain get exited
// innermost first, and views joining it get entered outermost first.
func (f *Frame) updateHover(e MouseEvent) {
	next := f.hoverPath(e.Position, e.Buttons)
	old := f.hover
	common := 0
	for common < len(old) && common < len(next) && old[common] == next[common] {
		common++
	}
	if common == len(old) && common == len(next) {
		return
	}
	f.hover = next
	for i := len(old) - 1; i >= common; i-- {
		f.sendExited(old[i], e)
	}
	for i := common; i < len(next); i++ {
		if next[i].frame != f {
			continue
		}
		f.sendEntered(next[i], e)
	}
	f.updateCursor()
}

// recheckHover recomputes the chain at the platform's pointer position.
func (f *Frame) recheckHover() {
	if f.platform == nil || f.captured != nil {
		return
	}
	p, inside := f.platform.MousePosition()
	if !inside {
		f.clearHover(true)
		return
	}
	f.lastMouse = p
	f.updateHover(MouseEvent{Position: p, Buttons: f.platform.MouseButtons()})
}

// clearHover empties the chain, sending exited innermost first when notify
// is set.
func (f *Frame) clearHover(notify bool) {
	old := f.hover
	f.hover = nil
	if !notify {
		return
	}
	e := MouseEvent{Position: f.lastMouse}
	for i := len(old) - 1; i >= 0; i-- {
		f.sendExited(old[i], e)
	}
}

// removeFromHover truncates the chain at v, sending exited to v and every
// view after it, innermost first.
func (f *Frame) removeFromHover(v *View) {
	idx := -1
	for i, h := range f.hover {
		if h == v {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	old := f.hover
	f.hover = append([]*View(nil), old[:idx]...)
	e := MouseEvent{Position: f.lastMouse}
	for i := len(old) - 1; i >= idx; i-- {
		f.sendExited(old[i], e)
	}
	f.updateCursor()
}

func (f *Frame) sendEntered(v *View, e MouseEvent) {
	done := retainPath(v)
	defer done()
	if h, ok := v.Behavior.(HoverHandler); ok {
		ev := e
		ev.Position = v.FrameToLocal(e.Position)
		h.OnMouseEntered(v, &ev)
	}
	for _, o := range f.mouseObservers.snapshot() {
		o.OnMouseEntered(f, v)
	}
}

func (f *Frame) sendExited(v *View, e MouseEvent) {
	done := retainPath(v)
	defer done()
	if h, ok := v.Behavior.(HoverHandler); ok {
		ev := e
		ev.Position = v.FrameToLocal(e.Position)
		h.OnMouseExited(v, &ev)
	}
	for _, o := range f.mouseObservers.snapshot() {
		o.OnMouseExited(f, v)
	}
}

// updateCursor shows the cursor of the innermost hovered view that sets one.
func (f *Frame) updateCursor() {
	c := CursorDefault
	for i := len(f.hover) - 1; i >= 0; i-- {
		if f.hover[i].Cursor != CursorDefault {
			c = f.hover[i].Cursor
			break
		}
	}
	f.setCursor(c)
}
