package arbor

import "github.com/google/uuid"

// DataType tags an item of a drag payload.
type DataType uint8

const (
	DataText DataType = iota
	DataFilePath
	DataBinary
)

func (t DataType) String() string {
	switch t {
	case DataText:
		return "text"
	case DataFilePath:
		return "file"
	case DataBinary:
		return "binary"
	}
	return "unknown"
}

// DataPackage is an opaque, index-enumerable set of typed items supplied by
// the drag source. The tree passes it through unchanged.
type DataPackage interface {
	Count() int
	TypeAt(index int) DataType
	DataAt(index int) []byte
}

// DataItem is one entry of a Payload.
type DataItem struct {
	Type DataType
	Data []byte
}

// Payload is an in-memory DataPackage.
type Payload []DataItem

// TextItem wraps s as a text item.
func TextItem(s string) DataItem { return DataItem{Type: DataText, Data: []byte(s)} }

// FileItem wraps path as a file item.
func FileItem(path string) DataItem { return DataItem{Type: DataFilePath, Data: []byte(path)} }

// Count returns the number of items.
func (p Payload) Count() int { return len(p) }

// TypeAt returns the type of the item at index, or DataBinary when out of
// range.
func (p Payload) TypeAt(index int) DataType {
	if index < 0 || index >= len(p) {
		return DataBinary
	}
	return p[index].Type
}

// DataAt returns the bytes of the item at index, or nil when out of range.
func (p Payload) DataAt(index int) []byte {
	if index < 0 || index >= len(p) {
		return nil
	}
	return p[index].Data
}

// DragSession tracks one drag over a frame, from enter to leave or drop.
type DragSession struct {
	ID   uuid.UUID
	Data DataPackage

	target    *View
	operation DragOperation
}

// Target returns the current drop target, or nil.
func (s *DragSession) Target() *View { return s.target }

// Operation returns the operation the current target last reported.
func (s *DragSession) Operation() DragOperation { return s.operation }

// DragSession returns the active drag session, or nil.
func (f *Frame) DragSession() *DragSession { return f.drag }

// DragTarget returns the view currently receiving drag events, or nil.
func (f *Frame) DragTarget() *View {
	if f.drag == nil {
		return nil
	}
	return f.drag.target
}

// OnDragEnter starts a drag session for data entering the frame at p.
func (f *Frame) OnDragEnter(data DataPackage, p Point, mods KeyModifiers) DragOperation {
	if !f.open {
		return DragOperationNone
	}
	defer f.scope()()
	if f.drag != nil {
		f.cancelDrag()
	}
	f.drag = &DragSession{ID: uuid.New(), Data: data}
	debugf("drag %s entered", f.drag.ID)
	return f.retarget(p, mods)
}

// OnDragMove routes drag motion. When the view under p changes, the old
// target gets OnDragLeave and the new one OnDragEnter; OnDragMove is only
// sent to a target that did not change.
func (f *Frame) OnDragMove(p Point, mods KeyModifiers) DragOperation {
	if !f.open || f.drag == nil {
		return DragOperationNone
	}
	defer f.scope()()
	target := f.dropTargetAt(p)
	if target != f.drag.target {
		return f.retarget(p, mods)
	}
	if target == nil {
		return DragOperationNone
	}
	dt, ok := target.Behavior.(DropTarget)
	if !ok {
		return DragOperationNone
	}
	done := retainPath(target)
	defer done()
	f.drag.operation = dt.OnDragMove(target, f.dragEvent(target, p, mods))
	return f.drag.operation
}

// OnDragLeave ends the drag session without a drop.
func (f *Frame) OnDragLeave(p Point, mods KeyModifiers) {
	if !f.open || f.drag == nil {
		return
	}
	defer f.scope()()
	s := f.drag
	f.leaveTarget(p, mods)
	debugf("drag %s left", s.ID)
	if f.drag == s {
		f.drag = nil
	}
}

// OnDrop delivers the payload to the view under p and ends the session. The
// target receives OnDrop followed by a closing OnDragLeave.
func (f *Frame) OnDrop(p Point, mods KeyModifiers) bool {
	if !f.open || f.drag == nil {
		return false
	}
	defer f.scope()()
	s := f.drag
	if f.dropTargetAt(p) != s.target {
		f.retarget(p, mods)
	}
	ok := false
	if target := s.target; target != nil && f.drag == s {
		if dt, accepts := target.Behavior.(DropTarget); accepts {
			done := retainPath(target)
			ok = dt.OnDrop(target, f.dragEvent(target, p, mods))
			done()
		}
		f.leaveTarget(p, mods)
	}
	debugf("drag %s dropped (accepted=%v)", s.ID, ok)
	if f.drag == s {
		f.drag = nil
	}
	return ok
}

// retarget moves the session to the view under p, sending leave and enter.
func (f *Frame) retarget(p Point, mods KeyModifiers) DragOperation {
	f.leaveTarget(p, mods)
	if f.drag == nil {
		return DragOperationNone
	}
	target := f.dropTargetAt(p)
	f.drag.target = target
	f.drag.operation = DragOperationNone
	if target == nil {
		return DragOperationNone
	}
	dt, ok := target.Behavior.(DropTarget)
	if !ok {
		return DragOperationNone
	}
	done := retainPath(target)
	defer done()
	op := dt.OnDragEnter(target, f.dragEvent(target, p, mods))
	if f.drag != nil && f.drag.target == target {
		f.drag.operation = op
	}
	return op
}

func (f *Frame) leaveTarget(p Point, mods KeyModifiers) {
	if f.drag == nil {
		return
	}
	target := f.drag.target
	if target == nil {
		return
	}
	f.drag.target = nil
	// A target that was detached or stopped accepting drops is dropped
	// silently.
	dt, ok := target.Behavior.(DropTarget)
	if !ok || target.frame != f {
		return
	}
	done := retainPath(target)
	dt.OnDragLeave(target, f.dragEvent(target, p, mods))
	done()
}

// cancelDrag tells the current target the drag left and ends the session.
func (f *Frame) cancelDrag() {
	if f.drag == nil {
		return
	}
	f.leaveTarget(f.lastMouse, 0)
	f.drag = nil
}

func (f *Frame) dragEvent(target *View, p Point, mods KeyModifiers) *DragEvent {
	return &DragEvent{
		Session:   f.drag,
		Data:      f.drag.Data,
		Position:  target.FrameToLocal(p),
		Modifiers: mods,
	}
}

// dropTargetAt returns the deepest view under p that accepts drops, walking
// up from the deepest hovered view.
func (f *Frame) dropTargetAt(p Point) *View {
	path := f.hoverPath(p, 0)
	for i := len(path) - 1; i >= 0; i-- {
		if !f.insideModal(path[i]) {
			break
		}
		if _, ok := path[i].Behavior.(DropTarget); ok {
			return path[i]
		}
	}
	return nil
}
