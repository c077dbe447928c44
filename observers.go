package arbor

// CallbackHandle removes a registered listener, hook or observer.
type CallbackHandle struct {
	id     uint32
	remove func(id uint32)
}

// Remove unregisters the callback. Calling it more than once is harmless.
func (h CallbackHandle) Remove() {
	if h.remove == nil {
		return
	}
	h.remove(h.id)
}

// callbackList is an ordered set of typed callbacks. Removal during
// iteration is safe because each pass iterates a snapshot.
type callbackList[F any] struct {
	nextID  uint32
	entries []callbackEntry[F]
}

type callbackEntry[F any] struct {
	id uint32
	fn F
}

func (l *callbackList[F]) add(fn F) CallbackHandle {
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, callbackEntry[F]{id: id, fn: fn})
	return CallbackHandle{id: id, remove: l.removeID}
}

func (l *callbackList[F]) removeID(id uint32) {
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

func (l *callbackList[F]) snapshot() []F {
	if len(l.entries) == 0 {
		return nil
	}
	out := make([]F, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.fn
	}
	return out
}

// MouseObserver watches pointer traffic at the frame level. OnMouseDown and
// OnMouseMoved run before the tree sees the event and may consume it.
// Positions are in frame coordinates.
type MouseObserver interface {
	OnMouseEntered(f *Frame, v *View)
	OnMouseExited(f *Frame, v *View)
	OnMouseDown(f *Frame, e *MouseEvent) EventResult
	OnMouseMoved(f *Frame, e *MouseEvent) EventResult
}

// MouseObserverFuncs adapts functions to MouseObserver. Nil fields are
// skipped.
type MouseObserverFuncs struct {
	Entered func(f *Frame, v *View)
	Exited  func(f *Frame, v *View)
	Down    func(f *Frame, e *MouseEvent) EventResult
	Moved   func(f *Frame, e *MouseEvent) EventResult
}

func (o MouseObserverFuncs) OnMouseEntered(f *Frame, v *View) {
	if o.Entered != nil {
		o.Entered(f, v)
	}
}

func (o MouseObserverFuncs) OnMouseExited(f *Frame, v *View) {
	if o.Exited != nil {
		o.Exited(f, v)
	}
}

func (o MouseObserverFuncs) OnMouseDown(f *Frame, e *MouseEvent) EventResult {
	if o.Down != nil {
		return o.Down(f, e)
	}
	return EventNotImplemented
}

func (o MouseObserverFuncs) OnMouseMoved(f *Frame, e *MouseEvent) EventResult {
	if o.Moved != nil {
		return o.Moved(f, e)
	}
	return EventNotImplemented
}

// KeyboardHook sees every key event before the focus view does. Hooks run
// most recently registered first.
type KeyboardHook func(f *Frame, e *KeyEvent) EventResult

// FocusObserver is told after focus moved from old to current.
type FocusObserver func(f *Frame, old, current *View)

// ViewObserver is told when any view joins or leaves an open frame's tree.
type ViewObserver interface {
	OnViewAttached(f *Frame, v *View)
	OnViewRemoved(f *Frame, v *View)
}

// Per-view listener kinds.
type (
	// SizeListener is told after a view's rect changed.
	SizeListener func(v *View, old Rect)
	// ChildListener is told when a container gains or loses a child.
	ChildListener func(container, child *View)
	// ZOrderListener is told after a child moved within its container.
	ZOrderListener func(container, child *View, oldIndex, newIndex int)
	// TransformListener is told after a container's transform changed.
	TransformListener func(container *View)
	// DescendantFocusListener is told when a view inside the container gains
	// or loses focus.
	DescendantFocusListener func(container, focus *View, gained bool)
)

// viewListeners groups the typed listener lists of one view. It is allocated
// on first registration.
type viewListeners struct {
	size      callbackList[SizeListener]
	added     callbackList[ChildListener]
	removed   callbackList[ChildListener]
	zorder    callbackList[ZOrderListener]
	transform callbackList[TransformListener]
	focus     callbackList[DescendantFocusListener]
}

func (v *View) listeners() *viewListeners {
	if v.listen == nil {
		v.listen = &viewListeners{}
	}
	return v.listen
}

// OnSizeChanged registers fn to run after the view's rect changes.
func (v *View) OnSizeChanged(fn SizeListener) CallbackHandle {
	return v.listeners().size.add(fn)
}

// OnChildAdded registers fn to run after a child is added to the container.
func (v *View) OnChildAdded(fn ChildListener) CallbackHandle {
	return v.listeners().added.add(fn)
}

// OnChildRemoved registers fn to run after a child is removed.
func (v *View) OnChildRemoved(fn ChildListener) CallbackHandle {
	return v.listeners().removed.add(fn)
}

// OnZOrderChanged registers fn to run after ChangeZOrder moved a child.
func (v *View) OnZOrderChanged(fn ZOrderListener) CallbackHandle {
	return v.listeners().zorder.add(fn)
}

// OnTransformChanged registers fn to run after SetTransform.
func (v *View) OnTransformChanged(fn TransformListener) CallbackHandle {
	return v.listeners().transform.add(fn)
}

// OnDescendantFocus registers fn to run when focus enters or leaves a
// descendant of the container.
func (v *View) OnDescendantFocus(fn DescendantFocusListener) CallbackHandle {
	return v.listeners().focus.add(fn)
}

func (v *View) notifySizeChanged(old Rect) {
	if v.listen == nil {
		return
	}
	for _, fn := range v.listen.size.snapshot() {
		fn(v, old)
	}
}

func (v *View) notifyChildAdded(child *View) {
	if v.listen == nil {
		return
	}
	for _, fn := range v.listen.added.snapshot() {
		fn(v, child)
	}
}

func (v *View) notifyChildRemoved(child *View) {
	if v.listen == nil {
		return
	}
	for _, fn := range v.listen.removed.snapshot() {
		fn(v, child)
	}
}

func (v *View) notifyZOrder(child *View, oldIndex, newIndex int) {
	if v.listen == nil {
		return
	}
	for _, fn := range v.listen.zorder.snapshot() {
		fn(v, child, oldIndex, newIndex)
	}
}

func (v *View) notifyTransform() {
	if v.listen == nil {
		return
	}
	for _, fn := range v.listen.transform.snapshot() {
		fn(v)
	}
}

func (v *View) notifyDescendantFocus(focus *View, gained bool) {
	if v.listen == nil {
		return
	}
	for _, fn := range v.listen.focus.snapshot() {
		fn(v, focus, gained)
	}
}
