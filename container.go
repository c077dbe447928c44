package arbor

import "math"

// --- Children ---

// Children returns the container's children in paint order. The returned
// slice must not be modified.
func (v *View) Children() []*View { return v.children }

// NumChildren returns the number of children.
func (v *View) NumChildren() int { return len(v.children) }

// ChildAt returns the child at index, or nil when out of range.
func (v *View) ChildAt(index int) *View {
	if index < 0 || index >= len(v.children) {
		return nil
	}
	return v.children[index]
}

func (v *View) indexOf(child *View) int {
	for i, c := range v.children {
		if c == child {
			return i
		}
	}
	return -1
}

// IsChild reports whether child is a direct child of v, or any descendant
// when deep is set.
func (v *View) IsChild(child *View, deep bool) bool {
	if child == nil || child == v {
		return false
	}
	if !deep {
		return child.parent == v
	}
	for p := child.parent; p != nil; p = p.parent {
		if p == v {
			return true
		}
	}
	return false
}

// AddChild appends child on top of the container's existing children.
func (v *View) AddChild(child *View) bool {
	return v.AddChildBefore(child, nil)
}

// AddChildBefore inserts child directly beneath before, or on top when
// before is nil. It reports false, and panics in debug mode, when v is not a
// container, child already has a parent, the insertion would create a cycle,
// or before is not a child of v.
func (v *View) AddChildBefore(child, before *View) bool {
	switch {
	case child == nil:
		return violation("cannot add nil child")
	case !v.IsContainer():
		return violation("AddChild on leaf view %q", v.Name)
	case child.disposed || v.disposed:
		return violation("AddChild with disposed view %q", child.Name)
	case child.parent != nil:
		return violation("view %q already has parent %q", child.Name, child.parent.Name)
	case child == v || child.IsChild(v, true):
		return violation("adding %q to %q would create a cycle", child.Name, v.Name)
	}
	index := len(v.children)
	if before != nil {
		index = v.indexOf(before)
		if index < 0 {
			return violation("view %q is not a child of %q", before.Name, v.Name)
		}
	}
	v.children = append(v.children, nil)
	copy(v.children[index+1:], v.children[index:])
	v.children[index] = child
	child.parent = v

	if v.frame != nil {
		child.attach(v.frame)
		child.SetDirty(true)
	}
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(v)
	}
	v.notifyChildAdded(child)
	return true
}

// RemoveChild detaches child from v. If the container is attached, the
// vacated rect is invalidated, any capture, hover, drag-target, focus or
// modal status held inside child's subtree is released, and then the
// subtree receives Removed notifications innermost first. With release set
// the child is disposed afterwards.
func (v *View) RemoveChild(child *View, release bool) bool {
	index := v.indexOf(child)
	if child == nil || index < 0 {
		name := "<nil>"
		if child != nil {
			name = child.Name
		}
		return violation("view %q is not a child of %q", name, v.Name)
	}
	done := retainPath(v)
	defer done()
	child.retain()
	defer child.release()

	if f := v.frame; f != nil {
		defer f.scope()()
		child.invalidateArea()
		f.releaseSubtree(child)
	}
	v.children = append(v.children[:index], v.children[index+1:]...)
	if child.frame != nil {
		child.detach(v)
	}
	child.parent = nil
	v.notifyChildRemoved(child)
	if release {
		child.Dispose()
	}
	return true
}

// RemoveAll removes every child, front-to-back in insertion order.
func (v *View) RemoveAll(release bool) {
	for len(v.children) > 0 {
		v.RemoveChild(v.children[0], release)
	}
}

// ChangeZOrder moves child to newIndex. newIndex must be less than the
// number of children.
func (v *View) ChangeZOrder(child *View, newIndex int) bool {
	old := v.indexOf(child)
	if old < 0 || newIndex < 0 || newIndex >= len(v.children) {
		return false
	}
	if old == newIndex {
		return true
	}
	v.children = append(v.children[:old], v.children[old+1:]...)
	v.children = append(v.children, nil)
	copy(v.children[newIndex+1:], v.children[newIndex:])
	v.children[newIndex] = child
	v.notifyZOrder(child, old, newIndex)
	child.Invalid()
	return true
}

// attach binds v's subtree to f, parents first.
func (v *View) attach(f *Frame) {
	v.frame = f
	if l, ok := v.Behavior.(Lifecycle); ok {
		l.Attached(v, v.parent)
	}
	f.notifyViewAttached(v)
	for _, c := range v.children {
		c.attach(f)
	}
}

// detach unbinds v's subtree, children first.
func (v *View) detach(parent *View) {
	for _, c := range v.children {
		c.detach(v)
	}
	f := v.frame
	if l, ok := v.Behavior.(Lifecycle); ok {
		l.Removed(v, parent)
	}
	v.frame = nil
	if f != nil {
		f.notifyViewRemoved(v)
	}
}

// --- Container properties ---

// Transform returns the container's local transform.
func (v *View) Transform() Transform { return v.transform }

// SetTransform sets the transform applied to the container's children,
// after offsetting by the container's origin.
func (v *View) SetTransform(t Transform) {
	if !v.IsContainer() {
		violation("SetTransform on leaf view %q", v.Name)
		return
	}
	if v.transform == t {
		return
	}
	v.invalidateArea()
	v.transform = t
	v.notifyTransform()
	v.Invalid()
}

// BackgroundColor returns the container background color.
func (v *View) BackgroundColor() Color { return v.background }

// SetBackgroundColor sets the color painted behind the children.
func (v *View) SetBackgroundColor(c Color) {
	if v.background == c {
		return
	}
	v.background = c
	v.SetDirty(true)
}

// BackgroundStyle returns how the background color is painted.
func (v *View) BackgroundStyle() DrawStyle { return v.bgStyle }

// SetBackgroundStyle sets how the background color is painted.
func (v *View) SetBackgroundStyle(s DrawStyle) {
	v.bgStyle = s
	v.SetDirty(true)
}

// Background returns the background bitmap, or nil.
func (v *View) Background() Bitmap { return v.bitmap }

// SetBackground sets a shared background bitmap. The view does not own it.
func (v *View) SetBackground(b Bitmap) {
	v.bitmap = b
	v.SetDirty(true)
}

// AutosizingEnabled reports whether resizing the container lays out its
// children.
func (v *View) AutosizingEnabled() bool { return v.autosizing }

// SetAutosizingEnabled toggles child layout on resize.
func (v *View) SetAutosizingEnabled(state bool) { v.autosizing = state }

// --- Autosizing ---

// autosizeChildren applies a size delta of the container to its children.
// In column or row mode the delta is split evenly across children, each
// shifted by its share of the preceding children's growth. Otherwise the
// sticky edge flags of each child decide.
func (v *View) autosizeChildren(dw, dh float64) {
	dw, dh = v.transform.Inverse().ApplyVector(dw, dh)
	if (dw == 0 && dh == 0) || len(v.children) == 0 {
		return
	}
	n := float64(len(v.children))
	column := v.autosize&AutosizeColumn != 0
	row := v.autosize&AutosizeRow != 0

	for i, c := range append([]*View(nil), v.children...) {
		r := c.rect
		left, top, right, bottom := r.X, r.Y, r.Right(), r.Bottom()
		flags := c.autosize
		counter := float64(i)

		if column {
			left += counter * dw / n
			right += counter*dw/n + dw/n
		} else if flags&AutosizeRight != 0 {
			right += dw
			if flags&AutosizeLeft == 0 {
				left += dw
			}
		}
		if row {
			top += counter * dh / n
			bottom += counter*dh/n + dh/n
		} else if flags&AutosizeBottom != 0 {
			bottom += dh
			if flags&AutosizeTop == 0 {
				top += dh
			}
		}
		if nr := RectFromEdges(left, top, right, bottom); nr != r {
			c.SetRect(nr)
		}
	}
}

// SizeToFit resizes the container to enclose its visible children, keeping
// a trailing margin equal to the leading one. Row and column containers and
// containers without visible children are left alone.
func (v *View) SizeToFit() bool {
	if !v.IsContainer() || v.autosize&(AutosizeRow|AutosizeColumn) != 0 {
		return false
	}
	var bounds Rect
	found := false
	for _, c := range v.children {
		if !c.visible {
			continue
		}
		if !found {
			bounds = c.rect
			found = true
			continue
		}
		bounds = RectFromEdges(
			math.Min(bounds.X, c.rect.X), math.Min(bounds.Y, c.rect.Y),
			math.Max(bounds.Right(), c.rect.Right()), math.Max(bounds.Bottom(), c.rect.Bottom()),
		)
	}
	if !found {
		return false
	}
	r := v.rect
	r.Width = bounds.Right() + bounds.X
	r.Height = bounds.Bottom() + bounds.Y
	v.inSizeToFit = true
	v.SetRect(r)
	v.inSizeToFit = false
	v.mouseArea = r
	return true
}

// --- Hit queries ---

// hitArea reports whether p, in v's parent space, falls in v's mouseable
// area and hit shape.
func (v *View) hitArea(p Point) bool {
	if !v.mouseArea.Contains(p) {
		return false
	}
	if v.HitShape != nil {
		return v.HitShape.Contains(p.Sub(v.rect.Origin()))
	}
	return true
}

// hitTest is hitArea refined by a HitTester behavior.
func (v *View) hitTest(p Point, buttons Buttons) bool {
	if !v.hitArea(p) {
		return false
	}
	if h, ok := v.Behavior.(HitTester); ok {
		return h.HitTest(v, p, buttons)
	}
	return true
}

func (v *View) matches(opts ViewAtOptions) bool {
	if !v.visible && opts&ViewAtIncludeInvisible == 0 {
		return false
	}
	if !v.mouseEnabled && opts&ViewAtMouseEnabled != 0 {
		return false
	}
	return true
}

// ViewAt returns the front-most child under p, given in v's parent space.
// With ViewAtDeep it descends into child containers and returns the deepest
// match; a container without a matching child is skipped unless
// ViewAtIncludeContainers is set.
func (v *View) ViewAt(p Point, opts ViewAtOptions) *View {
	if !v.IsContainer() {
		return nil
	}
	lp := v.toLocal(p)
	for i := len(v.children) - 1; i >= 0; i-- {
		c := v.children[i]
		if !c.matches(opts) || !c.hitArea(lp) {
			continue
		}
		if opts&ViewAtDeep != 0 && c.IsContainer() {
			if r := c.ViewAt(lp, opts); r != nil {
				return r
			}
			if opts&ViewAtIncludeContainers != 0 {
				return c
			}
			continue
		}
		return c
	}
	return nil
}

// ViewsAt returns every view under p, front-most first. With ViewAtDeep a
// container's matching descendants precede the container itself, which is
// only listed with ViewAtIncludeContainers.
func (v *View) ViewsAt(p Point, opts ViewAtOptions) []*View {
	var out []*View
	v.collectViewsAt(p, opts, &out)
	return out
}

func (v *View) collectViewsAt(p Point, opts ViewAtOptions, out *[]*View) {
	if !v.IsContainer() {
		return
	}
	lp := v.toLocal(p)
	for i := len(v.children) - 1; i >= 0; i-- {
		c := v.children[i]
		if !c.matches(opts) || !c.hitArea(lp) {
			continue
		}
		if c.IsContainer() {
			if opts&ViewAtDeep != 0 {
				c.collectViewsAt(lp, opts, out)
			}
			if opts&ViewAtIncludeContainers == 0 {
				continue
			}
		}
		*out = append(*out, c)
	}
}

// ContainerAt returns the deepest container under p (with ViewAtDeep) or the
// front-most direct child container, falling back to v itself.
func (v *View) ContainerAt(p Point, opts ViewAtOptions) *View {
	if !v.IsContainer() {
		return nil
	}
	lp := v.toLocal(p)
	for i := len(v.children) - 1; i >= 0; i-- {
		c := v.children[i]
		if !c.IsContainer() || !c.matches(opts) || !c.hitArea(lp) {
			continue
		}
		if opts&ViewAtDeep != 0 {
			return c.ContainerAt(lp, opts)
		}
		return c
	}
	return v
}
