// Package arbor is the view hierarchy and event-dispatch core of a widget
// toolkit.
//
// It provides the view tree, coordinate transforms, hit testing, mouse
// routing with implicit capture, hover tracking, keyboard focus traversal,
// modal sessions, drag-and-drop routing, dirty-rect batching and the paint
// traversal. Concrete widgets, the rasterizer and the native window are
// supplied from outside through small interfaces.
//
// # Views
//
// Every node is a [View]. Leaves come from [NewView], containers from
// [NewContainer]. A view's rect is in its parent's coordinate space; a
// container offsets its children by its own origin and then applies its
// [Transform].
//
//	frame := arbor.NewFrame(800, 600)
//	panel := arbor.NewContainer("panel", arbor.Rect{X: 10, Y: 10, Width: 300, Height: 200})
//	frame.Root().AddChild(panel)
//
//	button := arbor.NewView("ok", arbor.Rect{X: 20, Y: 20, Width: 80, Height: 24})
//	button.Behavior = &arbor.Callbacks{
//		MouseDownFunc: func(v *arbor.View, e *arbor.MouseEvent) arbor.EventResult {
//			return arbor.EventHandled
//		},
//	}
//	panel.AddChild(button)
//
// # Behaviors
//
// Widgets plug in through [View.Behavior]. The router asks the behavior for
// capability interfaces such as [Drawable], [MouseHandler], [KeyHandler] or
// [DropTarget] and skips views that lack them. [Callbacks] and
// [DropCallbacks] adapt plain functions.
//
// # Frames
//
// A [Frame] owns the tree for one native surface. [Frame.Open] binds it to a
// [Platform]; afterwards the platform feeds input through the On* methods
// and paints through [Frame.DrawRect]. Invalidations raised while an event
// is dispatched are coalesced and handed to [Platform.InvalidateRect] when
// the event turn ends.
//
// The host subpackage provides an Ebitengine platform and game loop, raster
// a software drawing context, and ecs a Donburi event bridge.
package arbor
