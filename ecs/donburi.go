package ecs

import (
	"github.com/phanxgames/arbor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// ViewData is the component stored on each view's entity.
type ViewData struct {
	View *arbor.View
	Name string
}

// ViewComponent tags entities that mirror a view.
var ViewComponent = donburi.NewComponentType[ViewData]()

var viewQuery = donburi.NewQuery(filter.Contains(ViewComponent))

// MouseEventKind identifies the pointer notification carried by a MouseEvent.
type MouseEventKind uint8

const (
	MouseEntered MouseEventKind = iota
	MouseExited
	MouseDown
	MouseMoved
)

func (k MouseEventKind) String() string {
	switch k {
	case MouseEntered:
		return "entered"
	case MouseExited:
		return "exited"
	case MouseDown:
		return "down"
	case MouseMoved:
		return "moved"
	}
	return "unknown"
}

// MouseEvent is published for frame-level pointer traffic. Entity is the
// hovered view's entity for enter and exit, and zero for down and move.
type MouseEvent struct {
	Kind     MouseEventKind
	Entity   donburi.Entity
	Position arbor.Point
	Buttons  arbor.Buttons
}

// FocusEvent is published after every focus change. Either entity may be
// zero when focus was gained from or lost to nothing.
type FocusEvent struct {
	Old     donburi.Entity
	Current donburi.Entity
}

// TreeEvent is published when a view joins or leaves the frame. A removed
// view's entity is already gone from the world when subscribers run.
type TreeEvent struct {
	Attached bool
	Entity   donburi.Entity
	Name     string
}

var (
	// MouseEventType carries MouseEvent values.
	MouseEventType = events.NewEventType[MouseEvent]()
	// FocusEventType carries FocusEvent values.
	FocusEventType = events.NewEventType[FocusEvent]()
	// TreeEventType carries TreeEvent values.
	TreeEventType = events.NewEventType[TreeEvent]()
)

// Bridge mirrors one frame into one world.
type Bridge struct {
	frame    *arbor.Frame
	world    donburi.World
	entities map[*arbor.View]donburi.Entity
	handles  []arbor.CallbackHandle
}

// Attach registers observers on f and creates entities for every view
// already attached to it.
func Attach(f *arbor.Frame, world donburi.World) *Bridge {
	b := &Bridge{frame: f, world: world, entities: make(map[*arbor.View]donburi.Entity)}
	if f.IsOpen() {
		b.seed(f.Root())
	}
	b.handles = append(b.handles,
		f.RegisterViewObserver(b),
		f.RegisterFocusObserver(b.onFocus),
		f.RegisterMouseObserver(arbor.MouseObserverFuncs{
			Entered: func(_ *arbor.Frame, v *arbor.View) { b.publishHover(MouseEntered, v) },
			Exited:  func(_ *arbor.Frame, v *arbor.View) { b.publishHover(MouseExited, v) },
			Down:    b.onMouse(MouseDown),
			Moved:   b.onMouse(MouseMoved),
		}),
	)
	return b
}

// Detach removes the observers and every entity the bridge created.
func (b *Bridge) Detach() {
	for _, h := range b.handles {
		h.Remove()
	}
	b.handles = nil
	for v, e := range b.entities {
		if b.world.Valid(e) {
			b.world.Remove(e)
		}
		delete(b.entities, v)
	}
}

// Entity returns the entity mirroring v.
func (b *Bridge) Entity(v *arbor.View) (donburi.Entity, bool) {
	e, ok := b.entities[v]
	return e, ok
}

// View returns the view mirrored by e, or nil.
func (b *Bridge) View(e donburi.Entity) *arbor.View {
	if !b.world.Valid(e) {
		return nil
	}
	entry := b.world.Entry(e)
	if !entry.HasComponent(ViewComponent) {
		return nil
	}
	return ViewComponent.Get(entry).View
}

// Count returns the number of view entities in the world.
func (b *Bridge) Count() int { return viewQuery.Count(b.world) }

// Each calls fn for every view entity in the world.
func (b *Bridge) Each(fn func(donburi.Entity, *ViewData)) {
	viewQuery.Each(b.world, func(entry *donburi.Entry) {
		fn(entry.Entity(), ViewComponent.Get(entry))
	})
}

func (b *Bridge) seed(v *arbor.View) {
	b.create(v)
	for _, c := range v.Children() {
		b.seed(c)
	}
}

func (b *Bridge) create(v *arbor.View) donburi.Entity {
	if e, ok := b.entities[v]; ok {
		return e
	}
	e := b.world.Create(ViewComponent)
	ViewComponent.SetValue(b.world.Entry(e), ViewData{View: v, Name: v.Name})
	b.entities[v] = e
	return e
}

// OnViewAttached implements arbor.ViewObserver.
func (b *Bridge) OnViewAttached(_ *arbor.Frame, v *arbor.View) {
	e := b.create(v)
	TreeEventType.Publish(b.world, TreeEvent{Attached: true, Entity: e, Name: v.Name})
}

// OnViewRemoved implements arbor.ViewObserver.
func (b *Bridge) OnViewRemoved(_ *arbor.Frame, v *arbor.View) {
	e, ok := b.entities[v]
	if !ok {
		return
	}
	delete(b.entities, v)
	TreeEventType.Publish(b.world, TreeEvent{Entity: e, Name: v.Name})
	if b.world.Valid(e) {
		b.world.Remove(e)
	}
}

func (b *Bridge) onFocus(_ *arbor.Frame, old, current *arbor.View) {
	FocusEventType.Publish(b.world, FocusEvent{Old: b.entities[old], Current: b.entities[current]})
}

func (b *Bridge) publishHover(kind MouseEventKind, v *arbor.View) {
	ev := MouseEvent{Kind: kind, Entity: b.entities[v]}
	if p, ok := b.frame.Platform().MousePosition(); ok {
		ev.Position = p
	}
	MouseEventType.Publish(b.world, ev)
}

func (b *Bridge) onMouse(kind MouseEventKind) func(*arbor.Frame, *arbor.MouseEvent) arbor.EventResult {
	return func(_ *arbor.Frame, e *arbor.MouseEvent) arbor.EventResult {
		MouseEventType.Publish(b.world, MouseEvent{Kind: kind, Position: e.Position, Buttons: e.Buttons})
		return arbor.EventNotImplemented
	}
}

var _ arbor.ViewObserver = (*Bridge)(nil)
