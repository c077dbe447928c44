package arbor

// Platform is the native surface a Frame is bound to.
type Platform interface {
	// InvalidateRect schedules a repaint of r, in frame coordinates.
	InvalidateRect(r Rect)
	// Ticks returns a monotonic millisecond counter.
	Ticks() uint64
	// MousePosition returns the pointer position in frame coordinates and
	// whether the pointer is over the surface.
	MousePosition() (Point, bool)
	// MouseButtons returns the buttons currently held.
	MouseButtons() Buttons
	// SetCursor changes the pointer shape.
	SetCursor(c Cursor)
}

// ModalSessionID identifies a modal session started with
// BeginModalSession.
type ModalSessionID uint64

type modalSession struct {
	id    ModalSessionID
	view  *View
	owned bool
}

// Frame is the root of a view tree bound to one native surface. It owns the
// root container together with focus, modal, capture, hover, drag and
// invalidation state. All methods must be called from the UI goroutine.
type Frame struct {
	root     *View
	platform Platform
	cfg      Config
	focusCfg focusStyle

	open   bool
	active bool

	modal       []modalSession
	nextModalID ModalSessionID
	legacyModal ModalSessionID

	focusView       *View
	activeFocusView *View
	inSetFocus      bool

	captured    *View
	hover       []*View
	lastMouse   Point
	mouseInside bool
	cursor      Cursor

	drag *DragSession

	batcher    *InvalidationBatcher
	eventDepth int
	afterEvent []func()

	mouseObservers callbackList[MouseObserver]
	keyboardHooks  callbackList[KeyboardHook]
	focusObservers callbackList[FocusObserver]
	viewObservers  callbackList[ViewObserver]

	animator *Animator
	zoom     float64
}

// FrameOption configures a Frame at construction.
type FrameOption func(*Frame)

// WithConfig applies cfg instead of DefaultConfig.
func WithConfig(cfg Config) FrameOption {
	return func(f *Frame) { f.applyConfig(cfg) }
}

// NewFrame creates a closed frame whose root container covers
// (0, 0, width, height). Build the tree, then call Open.
func NewFrame(width, height float64, opts ...FrameOption) *Frame {
	f := &Frame{
		root:     NewContainer("root", Rect{Width: width, Height: height}),
		animator: NewAnimator(),
		zoom:     1,
		active:   true,
	}
	f.applyConfig(DefaultConfig())
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Frame) applyConfig(cfg Config) {
	f.cfg = cfg
	f.focusCfg = cfg.focusStyle()
	if cfg.Debug {
		SetDebugMode(true)
	}
	if f.batcher != nil {
		f.batcher.SetInterval(cfg.FlushIntervalMS)
	}
}

// Config returns the active configuration.
func (f *Frame) Config() Config { return f.cfg }

// Root returns the root container.
func (f *Frame) Root() *View { return f.root }

// IsOpen reports whether the frame is bound to a platform.
func (f *Frame) IsOpen() bool { return f.open }

// Platform returns the bound platform, or nil when closed.
func (f *Frame) Platform() Platform { return f.platform }

// Animator returns the frame's animation driver.
func (f *Frame) Animator() *Animator { return f.animator }

// Open binds the frame to p and attaches the whole tree.
func (f *Frame) Open(p Platform) error {
	if f.open {
		return ErrFrameOpen
	}
	if p == nil {
		return ErrNoPlatform
	}
	f.platform = p
	f.batcher = NewInvalidationBatcher(p.Ticks, f.cfg.FlushIntervalMS, f.flushRect)
	f.open = true
	defer f.scope()()
	f.root.attach(f)
	f.root.Invalid()
	debugf("frame opened (%vx%v)", f.root.rect.Width, f.root.rect.Height)
	return nil
}

// Close force-clears focus, capture, drag, hover and modal state, then
// removes and disposes every child of the root. The frame can be opened
// again afterwards with a fresh tree.
func (f *Frame) Close() {
	if !f.open {
		return
	}
	f.beginEvent()
	f.hover = nil
	f.captured = nil
	f.drag = nil
	f.modal = nil
	f.legacyModal = 0
	f.SetFocusView(nil)
	f.activeFocusView = nil
	f.setCursor(CursorDefault)
	f.root.RemoveAll(true)
	f.animator.Clear()
	f.endEvent()

	f.root.detach(nil)
	f.afterEvent = nil
	f.open = false
	f.platform = nil
	f.batcher = nil
	debugf("frame closed")
}

// Size returns the root container's size.
func (f *Frame) Size() (width, height float64) {
	return f.root.rect.Width, f.root.rect.Height
}

// SetSize resizes the root container, autosizing its children.
func (f *Frame) SetSize(width, height float64) {
	defer f.scope()()
	r := f.root.rect
	r.Width, r.Height = width, height
	f.root.SetRect(r)
}

// Zoom returns the current zoom factor.
func (f *Frame) Zoom() float64 { return f.zoom }

// SetZoom scales the whole tree about the frame origin. The root container
// keeps its logical size; the transform maps it onto the surface.
func (f *Frame) SetZoom(z float64) bool {
	if z <= 0 {
		return false
	}
	defer f.scope()()
	f.zoom = z
	f.root.SetTransform(Scaling(z, z))
	return true
}

// --- Event turn scoping ---

// scope opens an event turn and returns the function that closes it. Use as
// defer f.scope()().
func (f *Frame) scope() func() {
	f.beginEvent()
	return f.endEvent
}

func (f *Frame) beginEvent() { f.eventDepth++ }

// endEvent closes an event turn. The outermost close flushes the pending
// invalidations and then runs the post-event queue.
func (f *Frame) endEvent() {
	f.eventDepth--
	if f.eventDepth > 0 || !f.open {
		return
	}
	f.eventDepth++
	f.batcher.Flush()
	for len(f.afterEvent) > 0 && f.open {
		queue := f.afterEvent
		f.afterEvent = nil
		for _, fn := range queue {
			fn()
			// A queued Close drops the rest of the queue.
			if !f.open {
				break
			}
		}
	}
	f.eventDepth--
	if f.open {
		f.batcher.Flush()
	}
}

// DoAfterEventProcessing queues fn to run once the current event turn has
// finished dispatching. Outside an event turn it runs immediately.
func (f *Frame) DoAfterEventProcessing(fn func()) {
	if fn == nil {
		return
	}
	if f.eventDepth == 0 {
		fn()
		return
	}
	f.afterEvent = append(f.afterEvent, fn)
}

// InEventProcessing reports whether an event turn is being dispatched.
func (f *Frame) InEventProcessing() bool { return f.eventDepth > 0 }

// --- Invalidation ---

// invalidRect queues r, in the root's local space. Outside an event turn it
// is forwarded at once.
func (f *Frame) invalidRect(r Rect) {
	if !f.open {
		return
	}
	f.batcher.Add(r)
	if f.eventDepth == 0 {
		f.batcher.Flush()
	}
}

// InvalidFrameRect invalidates r given in frame coordinates.
func (f *Frame) InvalidFrameRect(r Rect) {
	f.invalidRect(f.root.localTransform().Inverse().ApplyRect(r))
}

// Batcher returns the frame's invalidation batcher, or nil when closed.
func (f *Frame) Batcher() *InvalidationBatcher { return f.batcher }

func (f *Frame) flushRect(r Rect) {
	if f.platform == nil {
		return
	}
	f.platform.InvalidateRect(f.root.localTransform().ApplyRect(r).Integral())
}

// Idle turns dirty flags set since the last pass into invalidations.
func (f *Frame) Idle() {
	if !f.open {
		return
	}
	defer f.scope()()
	if f.root.IsDirty() {
		f.root.invalidDirty()
	}
}

// Tick advances animations by dt seconds and then runs Idle.
func (f *Frame) Tick(dt float32) {
	if !f.open {
		return
	}
	defer f.scope()()
	f.animator.Update(dt)
	f.Idle()
}

func (v *View) invalidDirty() {
	if !v.visible {
		return
	}
	if v.dirty.Load() {
		v.clearDirtyTree()
		v.invalidateArea()
		return
	}
	for _, c := range v.children {
		c.invalidDirty()
	}
}

func (v *View) clearDirtyTree() {
	v.dirty.Store(false)
	for _, c := range v.children {
		c.clearDirtyTree()
	}
}

// --- Modal sessions ---

// ModalView returns the view of the innermost modal session, or nil.
func (f *Frame) ModalView() *View {
	if len(f.modal) == 0 {
		return nil
	}
	return f.modal[len(f.modal)-1].view
}

// BeginModalSession makes v the exclusive receiver of input. A view without
// a parent is added to the root and removed again when the session ends.
// The pointer capture is cancelled, the hover chain is cleared and focus
// moves into v.
func (f *Frame) BeginModalSession(v *View) (ModalSessionID, bool) {
	if !f.open {
		return 0, false
	}
	if v == nil {
		return 0, violation("BeginModalSession with nil view")
	}
	defer f.scope()()
	owned := false
	if v.parent == nil {
		if !f.root.AddChild(v) {
			return 0, false
		}
		owned = true
	} else if v.frame != f {
		return 0, violation("modal view %q belongs to another tree", v.Name)
	}
	f.nextModalID++
	id := f.nextModalID
	f.modal = append(f.modal, modalSession{id: id, view: v, owned: owned})
	f.initModalSession(v)
	debugf("modal session %d began on %q", id, v.Name)
	return id, true
}

// EndModalSession ends the innermost session. It returns false when id is
// not the innermost session.
func (f *Frame) EndModalSession(id ModalSessionID) bool {
	if len(f.modal) == 0 || f.modal[len(f.modal)-1].id != id {
		return false
	}
	defer f.scope()()
	s := f.modal[len(f.modal)-1]
	f.modal = f.modal[:len(f.modal)-1]
	if f.legacyModal == id {
		f.legacyModal = 0
	}
	if s.owned && s.view.parent != nil {
		s.view.parent.RemoveChild(s.view, true)
	}
	if m := f.ModalView(); m != nil {
		f.initModalSession(m)
	} else {
		f.recheckHover()
	}
	debugf("modal session %d ended", id)
	return true
}

// SetModalView starts a single modal session for v, or ends it when v is
// nil. Only one session may be managed this way at a time.
func (f *Frame) SetModalView(v *View) bool {
	if v == nil {
		if f.legacyModal == 0 {
			return false
		}
		return f.EndModalSession(f.legacyModal)
	}
	if f.legacyModal != 0 {
		return false
	}
	id, ok := f.BeginModalSession(v)
	if ok {
		f.legacyModal = id
	}
	return ok
}

func (f *Frame) initModalSession(v *View) {
	f.cancelCapture()
	f.clearHover(true)
	if v.IsContainer() {
		if !f.advanceIn(v, nil, false) {
			f.SetFocusView(nil)
		}
	} else if v.focusable() {
		f.SetFocusView(v)
	} else {
		f.SetFocusView(nil)
	}
	f.recheckHover()
}

// dropModalSessionsIn discards sessions whose view is inside sub, which is
// being removed from the tree.
func (f *Frame) dropModalSessionsIn(sub *View) {
	if len(f.modal) == 0 {
		return
	}
	top := f.ModalView()
	kept := f.modal[:0]
	for _, s := range f.modal {
		if s.view == sub || sub.IsChild(s.view, true) {
			if f.legacyModal == s.id {
				f.legacyModal = 0
			}
			continue
		}
		kept = append(kept, s)
	}
	f.modal = kept
	if m := f.ModalView(); m != nil && m != top {
		f.DoAfterEventProcessing(func() {
			if f.ModalView() == m {
				f.initModalSession(m)
			}
		})
	}
}

// insideModal reports whether v may receive input under the current modal
// session.
func (f *Frame) insideModal(v *View) bool {
	m := f.ModalView()
	return m == nil || v == m || m.IsChild(v, true)
}

// --- Tree bookkeeping ---

// releaseSubtree drops every piece of frame state held by views in sub.
// Called before sub is detached so that no Removed notification can observe
// stale status.
func (f *Frame) releaseSubtree(sub *View) {
	in := func(v *View) bool { return v != nil && (v == sub || sub.IsChild(v, true)) }
	if in(f.captured) {
		f.captured = nil
	}
	if f.drag != nil && in(f.drag.target) {
		f.drag.target = nil
	}
	f.removeFromHover(sub)
	if in(f.activeFocusView) {
		f.activeFocusView = nil
	}
	if in(f.focusView) {
		f.SetFocusView(nil)
	}
	f.dropModalSessionsIn(sub)
	f.animator.removeSubtree(sub)
}

// viewHidden drops pointer and focus state held by a view that was just
// hidden.
func (f *Frame) viewHidden(v *View) {
	in := func(o *View) bool { return o != nil && (o == v || v.IsChild(o, true)) }
	if in(f.captured) {
		f.cancelCapture()
	}
	f.removeFromHover(v)
	if in(f.focusView) {
		f.SetFocusView(nil)
	}
}

func (f *Frame) notifyViewAttached(v *View) {
	for _, o := range f.viewObservers.snapshot() {
		o.OnViewAttached(f, v)
	}
}

func (f *Frame) notifyViewRemoved(v *View) {
	for _, o := range f.viewObservers.snapshot() {
		o.OnViewRemoved(f, v)
	}
}

// --- Registration ---

// RegisterMouseObserver adds a frame-level mouse observer.
func (f *Frame) RegisterMouseObserver(o MouseObserver) CallbackHandle {
	return f.mouseObservers.add(o)
}

// RegisterKeyboardHook adds a hook that sees key events before the focus
// view.
func (f *Frame) RegisterKeyboardHook(h KeyboardHook) CallbackHandle {
	return f.keyboardHooks.add(h)
}

// RegisterFocusObserver adds an observer told after every focus change.
func (f *Frame) RegisterFocusObserver(o FocusObserver) CallbackHandle {
	return f.focusObservers.add(o)
}

// RegisterViewObserver adds an observer told when views are attached to or
// removed from the tree.
func (f *Frame) RegisterViewObserver(o ViewObserver) CallbackHandle {
	return f.viewObservers.add(o)
}

// --- Queries ---

// ViewAt resolves a frame point to the front-most view under it.
func (f *Frame) ViewAt(p Point, opts ViewAtOptions) *View {
	return f.root.ViewAt(p, opts)
}

// ViewsAt returns every view under a frame point, front-most first.
func (f *Frame) ViewsAt(p Point, opts ViewAtOptions) []*View {
	return f.root.ViewsAt(p, opts)
}

// MouseCaptureView returns the view capturing the pointer, or nil.
func (f *Frame) MouseCaptureView() *View { return f.captured }

// HoverChain returns the root-to-leaf list of views under the pointer. The
// slice must not be modified.
func (f *Frame) HoverChain() []*View { return f.hover }

func (f *Frame) setCursor(c Cursor) {
	if f.cursor == c || f.platform == nil {
		return
	}
	f.cursor = c
	f.platform.SetCursor(c)
}
