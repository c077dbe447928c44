package arbor

// A view's Behavior is queried for the capability interfaces below. A view
// whose behavior lacks a capability simply does not take part in that kind of
// dispatch. Every method receives the view it is attached to, so one behavior
// value may be shared by many views.
//
// Points in events are expressed in the coordinate space of the view's parent,
// the same space as View.Rect.

// Drawable paints a view. The context is set up in the parent's local space
// and clipped to the view; update is the part that needs repainting.
type Drawable interface {
	Draw(v *View, ctx DrawContext, update Rect)
}

// HitTester refines hit testing beyond the view's mouseable area. It decides
// presses, wheel routing, hover and drop targets alike; drag routing passes
// no buttons. ViewAt and its siblings only consult the mouseable area and
// HitShape.
type HitTester interface {
	HitTest(v *View, p Point, buttons Buttons) bool
}

// MouseHandler receives button and motion events.
type MouseHandler interface {
	OnMouseDown(v *View, e *MouseEvent) EventResult
	OnMouseMoved(v *View, e *MouseEvent) EventResult
	OnMouseUp(v *View, e *MouseEvent) EventResult
}

// MouseCanceler is told when a captured gesture is interrupted.
type MouseCanceler interface {
	OnMouseCancel(v *View)
}

// HoverHandler is told when the pointer enters or leaves the view.
type HoverHandler interface {
	OnMouseEntered(v *View, e *MouseEvent)
	OnMouseExited(v *View, e *MouseEvent)
}

// WheelHandler receives scroll wheel events.
type WheelHandler interface {
	OnWheel(v *View, e *WheelEvent) EventResult
}

// KeyHandler receives keyboard events.
type KeyHandler interface {
	OnKeyDown(v *View, e *KeyEvent) EventResult
	OnKeyUp(v *View, e *KeyEvent) EventResult
}

// FocusTarget is told when the view gains or loses keyboard focus.
type FocusTarget interface {
	TakeFocus(v *View)
	LoseFocus(v *View)
}

// FocusDrawing customizes the focus ring. FocusRect returns the outline in
// the parent's space; ok=false suppresses the ring.
type FocusDrawing interface {
	FocusRect(v *View) (r Rect, ok bool)
	DrawFocusOnTop(v *View) bool
}

// DropTarget accepts drag-and-drop payloads.
type DropTarget interface {
	OnDragEnter(v *View, e *DragEvent) DragOperation
	OnDragMove(v *View, e *DragEvent) DragOperation
	OnDragLeave(v *View, e *DragEvent)
	OnDrop(v *View, e *DragEvent) bool
}

// Lifecycle is told when a view joins or leaves an open frame's tree.
type Lifecycle interface {
	Attached(v *View, parent *View)
	Removed(v *View, parent *View)
}

// ParentSizeObserver is told after the parent container changed size.
type ParentSizeObserver interface {
	ParentSizeChanged(v *View)
}

// Callbacks adapts plain functions to the capability interfaces. Nil fields
// report EventNotImplemented or do nothing. It does not implement DropTarget;
// use DropCallbacks for views that accept drops.
type Callbacks struct {
	DrawFunc              func(v *View, ctx DrawContext, update Rect)
	HitTestFunc           func(v *View, p Point, buttons Buttons) bool
	MouseDownFunc         func(v *View, e *MouseEvent) EventResult
	MouseMovedFunc        func(v *View, e *MouseEvent) EventResult
	MouseUpFunc           func(v *View, e *MouseEvent) EventResult
	MouseCancelFunc       func(v *View)
	MouseEnteredFunc      func(v *View, e *MouseEvent)
	MouseExitedFunc       func(v *View, e *MouseEvent)
	WheelFunc             func(v *View, e *WheelEvent) EventResult
	KeyDownFunc           func(v *View, e *KeyEvent) EventResult
	KeyUpFunc             func(v *View, e *KeyEvent) EventResult
	TakeFocusFunc         func(v *View)
	LoseFocusFunc         func(v *View)
	AttachedFunc          func(v *View, parent *View)
	RemovedFunc           func(v *View, parent *View)
	ParentSizeChangedFunc func(v *View)
}

func (c *Callbacks) Draw(v *View, ctx DrawContext, update Rect) {
	if c.DrawFunc != nil {
		c.DrawFunc(v, ctx, update)
	}
}

func (c *Callbacks) HitTest(v *View, p Point, buttons Buttons) bool {
	if c.HitTestFunc != nil {
		return c.HitTestFunc(v, p, buttons)
	}
	return true
}

func (c *Callbacks) OnMouseDown(v *View, e *MouseEvent) EventResult {
	if c.MouseDownFunc != nil {
		return c.MouseDownFunc(v, e)
	}
	return EventNotImplemented
}

func (c *Callbacks) OnMouseMoved(v *View, e *MouseEvent) EventResult {
	if c.MouseMovedFunc != nil {
		return c.MouseMovedFunc(v, e)
	}
	return EventNotImplemented
}

func (c *Callbacks) OnMouseUp(v *View, e *MouseEvent) EventResult {
	if c.MouseUpFunc != nil {
		return c.MouseUpFunc(v, e)
	}
	return EventNotImplemented
}

func (c *Callbacks) OnMouseCancel(v *View) {
	if c.MouseCancelFunc != nil {
		c.MouseCancelFunc(v)
	}
}

func (c *Callbacks) OnMouseEntered(v *View, e *MouseEvent) {
	if c.MouseEnteredFunc != nil {
		c.MouseEnteredFunc(v, e)
	}
}

func (c *Callbacks) OnMouseExited(v *View, e *MouseEvent) {
	if c.MouseExitedFunc != nil {
		c.MouseExitedFunc(v, e)
	}
}

func (c *Callbacks) OnWheel(v *View, e *WheelEvent) EventResult {
	if c.WheelFunc != nil {
		return c.WheelFunc(v, e)
	}
	return EventNotImplemented
}

func (c *Callbacks) OnKeyDown(v *View, e *KeyEvent) EventResult {
	if c.KeyDownFunc != nil {
		return c.KeyDownFunc(v, e)
	}
	return EventNotImplemented
}

func (c *Callbacks) OnKeyUp(v *View, e *KeyEvent) EventResult {
	if c.KeyUpFunc != nil {
		return c.KeyUpFunc(v, e)
	}
	return EventNotImplemented
}

func (c *Callbacks) TakeFocus(v *View) {
	if c.TakeFocusFunc != nil {
		c.TakeFocusFunc(v)
	}
}

func (c *Callbacks) LoseFocus(v *View) {
	if c.LoseFocusFunc != nil {
		c.LoseFocusFunc(v)
	}
}

func (c *Callbacks) Attached(v *View, parent *View) {
	if c.AttachedFunc != nil {
		c.AttachedFunc(v, parent)
	}
}

func (c *Callbacks) Removed(v *View, parent *View) {
	if c.RemovedFunc != nil {
		c.RemovedFunc(v, parent)
	}
}

func (c *Callbacks) ParentSizeChanged(v *View) {
	if c.ParentSizeChangedFunc != nil {
		c.ParentSizeChangedFunc(v)
	}
}

// DropCallbacks is Callbacks plus drop handling.
type DropCallbacks struct {
	Callbacks
	DragEnterFunc func(v *View, e *DragEvent) DragOperation
	DragMoveFunc  func(v *View, e *DragEvent) DragOperation
	DragLeaveFunc func(v *View, e *DragEvent)
	DropFunc      func(v *View, e *DragEvent) bool
}

func (c *DropCallbacks) OnDragEnter(v *View, e *DragEvent) DragOperation {
	if c.DragEnterFunc != nil {
		return c.DragEnterFunc(v, e)
	}
	return DragOperationNone
}

func (c *DropCallbacks) OnDragMove(v *View, e *DragEvent) DragOperation {
	if c.DragMoveFunc != nil {
		return c.DragMoveFunc(v, e)
	}
	return DragOperationNone
}

func (c *DropCallbacks) OnDragLeave(v *View, e *DragEvent) {
	if c.DragLeaveFunc != nil {
		c.DragLeaveFunc(v, e)
	}
}

func (c *DropCallbacks) OnDrop(v *View, e *DragEvent) bool {
	if c.DropFunc != nil {
		return c.DropFunc(v, e)
	}
	return false
}
