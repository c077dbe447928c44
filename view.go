package arbor

import (
	"image"
	"sync/atomic"
)

// ViewType distinguishes leaves from containers.
type ViewType uint8

const (
	ViewTypeLeaf ViewType = iota
	ViewTypeContainer
)

// Bitmap is a shared, read-only image owned by the resource provider. Both
// *ebiten.Image and image.Image satisfy it.
type Bitmap interface {
	Bounds() image.Rectangle
}

var nextViewID atomic.Uint32

func nextID() uint32 {
	return nextViewID.Add(1)
}

// View is a node in the view tree. Leaves and containers share this struct;
// only containers (ViewTypeContainer) accept children, carry a transform and
// paint a background color.
//
// A view's rect is expressed in its parent's local space. A container's
// children live in the container's local space: origin at the container's
// top-left corner, then mapped through the container's transform.
type View struct {
	// ID is a unique auto-assigned identifier.
	ID uint32
	// Name is a human-readable label used in debugging and descriptions.
	Name string
	// Type is fixed at construction.
	Type ViewType

	// Behavior supplies drawing and event handling through the capability
	// interfaces in behavior.go. May be nil.
	Behavior any
	// HitShape narrows the hit area inside the mouseable area. Nil means the
	// whole mouseable area is hit.
	HitShape HitShape
	// Cursor is shown while this view is the innermost hovered view.
	Cursor Cursor
	// UserData is an arbitrary value for application use.
	UserData any

	parent   *View
	children []*View
	frame    *Frame

	rect      Rect
	mouseArea Rect
	alpha     float64
	autosize  AutosizeFlags

	visible      bool
	mouseEnabled bool
	transparent  bool
	wantsFocus   bool
	dirty        atomic.Bool

	// container state
	transform   Transform
	background  Color
	bgStyle     DrawStyle
	bitmap      Bitmap
	autosizing  bool
	inSizeToFit bool

	listen *viewListeners

	refs           int
	pendingDispose bool
	disposed       bool
}

func viewDefaults(v *View) {
	v.ID = nextID()
	v.alpha = 1
	v.visible = true
	v.mouseEnabled = true
	v.transform = IdentityTransform
	v.autosizing = true
}

// NewView creates a leaf view occupying r in its future parent's space.
func NewView(name string, r Rect) *View {
	v := &View{Name: name, Type: ViewTypeLeaf, rect: r, mouseArea: r}
	viewDefaults(v)
	return v
}

// NewContainer creates an empty container occupying r.
func NewContainer(name string, r Rect) *View {
	v := &View{Name: name, Type: ViewTypeContainer, rect: r, mouseArea: r}
	viewDefaults(v)
	return v
}

// IsContainer reports whether v can hold children.
func (v *View) IsContainer() bool { return v.Type == ViewTypeContainer }

// Parent returns the containing view, or nil for a root or detached view.
func (v *View) Parent() *View { return v.parent }

// Frame returns the open frame v is attached to, or nil.
func (v *View) Frame() *Frame { return v.frame }

// IsAttached reports whether v belongs to an open frame's tree.
func (v *View) IsAttached() bool { return v.frame != nil }

// IsDisposed reports whether Dispose has completed on v.
func (v *View) IsDisposed() bool { return v.disposed }

// --- Flags ---

// Visible reports whether v is drawn and hit-testable.
func (v *View) Visible() bool { return v.visible }

// SetVisible shows or hides v and invalidates its area.
func (v *View) SetVisible(state bool) {
	if v.visible == state {
		return
	}
	if !state {
		v.invalidateArea()
	}
	v.visible = state
	if state {
		v.Invalid()
	} else if v.frame != nil {
		v.frame.viewHidden(v)
	}
}

// MouseEnabled reports whether v takes part in mouse routing.
func (v *View) MouseEnabled() bool { return v.mouseEnabled }

// SetMouseEnabled enables or disables mouse input for v.
func (v *View) SetMouseEnabled(state bool) {
	if v.mouseEnabled == state {
		return
	}
	v.mouseEnabled = state
	v.SetDirty(true)
}

// Transparent reports whether v lets unhandled events fall through to views
// behind it and skips its background.
func (v *View) Transparent() bool { return v.transparent }

// SetTransparent sets the transparency flag.
func (v *View) SetTransparent(state bool) {
	if v.transparent == state {
		return
	}
	v.transparent = state
	v.SetDirty(true)
}

// WantsFocus reports whether v takes keyboard focus.
func (v *View) WantsFocus() bool { return v.wantsFocus }

// SetWantsFocus opts v in to or out of keyboard focus.
func (v *View) SetWantsFocus(state bool) { v.wantsFocus = state }

// focusable reports whether v may hold focus now.
func (v *View) focusable() bool {
	return v.wantsFocus && v.visible && v.mouseEnabled
}

// Alpha returns the view's opacity multiplier.
func (v *View) Alpha() float64 { return v.alpha }

// SetAlpha sets the opacity multiplier applied while drawing v.
func (v *View) SetAlpha(a float64) {
	if v.alpha == a {
		return
	}
	v.alpha = a
	v.SetDirty(true)
}

// Autosize returns the view's autosize flags.
func (v *View) Autosize() AutosizeFlags { return v.autosize }

// SetAutosize sets how v follows its container's resize. On a container,
// AutosizeRow or AutosizeColumn switch its children to distribution mode.
func (v *View) SetAutosize(flags AutosizeFlags) { v.autosize = flags }

// --- Dirty state ---

// SetDirty marks v as needing a repaint. Safe to call from any goroutine; the
// flag is picked up by the next Frame.Idle.
func (v *View) SetDirty(state bool) {
	v.dirty.Store(state)
}

// IsDirty reports whether v needs repainting. For a container this is also
// true when any visible child that overlaps the container's bounds is dirty.
// The result is computed on every call.
func (v *View) IsDirty() bool {
	if v.dirty.Load() {
		return true
	}
	if !v.IsContainer() {
		return false
	}
	bounds := Rect{Width: v.rect.Width, Height: v.rect.Height}
	local := v.transform.Inverse().ApplyRect(bounds)
	for _, c := range v.children {
		if c.visible && c.IsDirty() && c.rect.Intersects(local) {
			return true
		}
	}
	return false
}

// --- Geometry ---

// Rect returns the view's rect in its parent's space.
func (v *View) Rect() Rect { return v.rect }

// Bounds returns the view's rect at the origin.
func (v *View) Bounds() Rect { return Rect{Width: v.rect.Width, Height: v.rect.Height} }

// MouseArea returns the mouseable area in the parent's space.
func (v *View) MouseArea() Rect { return v.mouseArea }

// SetMouseArea overrides the mouseable area.
func (v *View) SetMouseArea(r Rect) { v.mouseArea = r }

// SetRect moves and resizes v. The mouseable area follows the same edge
// deltas. On an attached container with autosizing enabled, children are
// laid out again according to their autosize flags.
func (v *View) SetRect(r Rect) {
	old := v.rect
	if old == r {
		return
	}
	if globalDebug {
		debugCheckDisposed(v, "SetRect")
	}
	v.invalidateArea()
	if v.IsContainer() && v.autosizing && !v.inSizeToFit && v.frame != nil {
		v.autosizeChildren(r.Width-old.Width, r.Height-old.Height)
	}
	v.rect = r
	v.mouseArea = RectFromEdges(
		v.mouseArea.X+(r.X-old.X),
		v.mouseArea.Y+(r.Y-old.Y),
		v.mouseArea.Right()+(r.Right()-old.Right()),
		v.mouseArea.Bottom()+(r.Bottom()-old.Bottom()),
	)
	if v.IsContainer() {
		for _, c := range v.children {
			if o, ok := c.Behavior.(ParentSizeObserver); ok {
				o.ParentSizeChanged(c)
			}
		}
	}
	v.Invalid()
	v.notifySizeChanged(old)
}

// SetPosition moves v without resizing it.
func (v *View) SetPosition(x, y float64) {
	v.SetRect(Rect{X: x, Y: y, Width: v.rect.Width, Height: v.rect.Height})
}

// localTransform maps points in v's local space to its parent's space.
func (v *View) localTransform() Transform {
	return Translation(v.rect.X, v.rect.Y).Multiply(v.transform)
}

// toLocal maps a point from v's parent space into v's local space.
func (v *View) toLocal(p Point) Point {
	return v.localTransform().Inverse().Apply(p)
}

// GlobalTransform maps points in v's local space to frame coordinates.
func (v *View) GlobalTransform() Transform {
	t := IdentityTransform
	for a := v; a != nil; a = a.parent {
		t = a.localTransform().Multiply(t)
	}
	return t
}

// parentTransform maps points in v's parent space to frame coordinates.
func (v *View) parentTransform() Transform {
	if v.parent == nil {
		return IdentityTransform
	}
	return v.parent.GlobalTransform()
}

// FrameToLocal maps a frame point into the space v's rect is expressed in
// (its parent's local space).
func (v *View) FrameToLocal(p Point) Point {
	return v.parentTransform().Inverse().Apply(p)
}

// LocalToFrame maps a point in v's parent space to frame coordinates.
func (v *View) LocalToFrame(p Point) Point {
	return v.parentTransform().Apply(p)
}

// --- Invalidation ---

// Invalid clears the dirty flag and invalidates v's whole rect.
func (v *View) Invalid() {
	v.SetDirty(false)
	v.invalidateArea()
}

// InvalidRect invalidates r, given in v's parent space.
func (v *View) InvalidRect(r Rect) {
	if v.frame == nil || !v.visible {
		return
	}
	// Rects are collected in the root's local space; the root transform is
	// applied when the batch is flushed.
	root := v.frame.root
	if v == root {
		v.frame.invalidRect(root.localTransform().Inverse().ApplyRect(r))
		return
	}
	t := IdentityTransform
	for a := v.parent; a != nil && a != root; a = a.parent {
		t = a.localTransform().Multiply(t)
	}
	v.frame.invalidRect(t.ApplyRect(r))
}

func (v *View) invalidateArea() {
	v.InvalidRect(v.rect)
}

// --- Lifetime ---

// retain pins v for the duration of a handler call. A Dispose issued while
// pinned is deferred until the matching release.
func (v *View) retain() { v.refs++ }

func (v *View) release() {
	v.refs--
	if v.refs <= 0 {
		v.refs = 0
		if v.pendingDispose {
			v.pendingDispose = false
			v.dispose()
		}
	}
}

// Dispose detaches v from its parent and disposes its subtree. Disposed
// views must not be reused. If v is in the middle of handling an event the
// disposal completes once the handler returns.
func (v *View) Dispose() {
	if v.disposed {
		return
	}
	if v.parent != nil {
		v.parent.RemoveChild(v, false)
	}
	if v.refs > 0 {
		v.pendingDispose = true
		return
	}
	v.dispose()
}

func (v *View) dispose() {
	if v.disposed {
		return
	}
	if v.parent != nil {
		v.parent.RemoveChild(v, false)
	}
	for _, c := range v.children {
		c.parent = nil
		if c.refs > 0 {
			c.pendingDispose = true
			continue
		}
		c.dispose()
	}
	v.children = nil
	v.listen = nil
	v.Behavior = nil
	v.bitmap = nil
	v.disposed = true
}

// retainPath pins v and every ancestor, returning the matching release.
func retainPath(v *View) func() {
	var path []*View
	for a := v; a != nil; a = a.parent {
		a.retain()
		path = append(path, a)
	}
	return func() {
		for _, a := range path {
			a.release()
		}
	}
}
