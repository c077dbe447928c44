package arbor

// MouseEvent describes a pointer button or motion event. Position is in the
// receiving view's parent space and is rewritten before each delivery.
type MouseEvent struct {
	Position  Point
	Buttons   Buttons
	Modifiers KeyModifiers
}

// WheelAxis selects the scroll direction.
type WheelAxis uint8

const (
	WheelVertical WheelAxis = iota
	WheelHorizontal
)

// WheelEvent describes a scroll wheel step.
type WheelEvent struct {
	Position  Point
	Axis      WheelAxis
	Distance  float64
	Buttons   Buttons
	Modifiers KeyModifiers
}

// KeyEventType distinguishes presses from releases.
type KeyEventType uint8

const (
	KeyDown KeyEventType = iota
	KeyUp
)

// VirtualKey names non-character keys.
type VirtualKey uint16

const (
	VKeyNone VirtualKey = iota
	VKeyBack
	VKeyTab
	VKeyReturn
	VKeyEscape
	VKeySpace
	VKeyEnd
	VKeyHome
	VKeyLeft
	VKeyUp
	VKeyRight
	VKeyDown
	VKeyPageUp
	VKeyPageDown
	VKeyInsert
	VKeyDelete
	VKeyEnter
)

// KeyEvent describes a keyboard event. Character is zero for keys that do
// not produce text.
type KeyEvent struct {
	Type      KeyEventType
	Character rune
	Virtual   VirtualKey
	Modifiers KeyModifiers
	Repeat    bool
}

// DragOperation is the effect a drop target would apply.
type DragOperation uint8

const (
	DragOperationNone DragOperation = iota
	DragOperationCopy
	DragOperationMove
)

// DragEvent is delivered to drop targets. Position is in the target's parent
// space.
type DragEvent struct {
	Session   *DragSession
	Data      DataPackage
	Position  Point
	Modifiers KeyModifiers
}
