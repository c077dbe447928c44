package arbor

import "math"

// Point is a 2D position.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Rect is an axis-aligned rectangle. Width and Height are never negative for
// rects produced by this package; the zero Rect is empty.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromEdges builds a Rect from its four edges.
func RectFromEdges(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{r.X, r.Y} }

// IsEmpty reports whether the rect encloses no area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether p lies inside r. The left and top edges are
// inclusive, the right and bottom edges exclusive, so adjacent rects never
// both contain a point on their shared edge.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// ContainsRect reports whether o lies entirely within r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Intersects reports whether r and o share any area.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Intersect returns the overlap of r and o, or the zero Rect.
func (r Rect) Intersect(o Rect) Rect {
	left := math.Max(r.X, o.X)
	top := math.Max(r.Y, o.Y)
	right := math.Min(r.Right(), o.Right())
	bottom := math.Min(r.Bottom(), o.Bottom())
	if right <= left || bottom <= top {
		return Rect{}
	}
	return RectFromEdges(left, top, right, bottom)
}

// Union returns the smallest rect enclosing r and o. Empty operands are
// ignored.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	return RectFromEdges(
		math.Min(r.X, o.X), math.Min(r.Y, o.Y),
		math.Max(r.Right(), o.Right()), math.Max(r.Bottom(), o.Bottom()),
	)
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Inset returns r shrunk by dx on the left and right and dy on the top and
// bottom. Negative values grow the rect.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{r.X + dx, r.Y + dy, math.Max(0, r.Width-2*dx), math.Max(0, r.Height-2*dy)}
}

// Integral expands r outward to whole-unit edges.
func (r Rect) Integral() Rect {
	return RectFromEdges(math.Floor(r.X), math.Floor(r.Y), math.Ceil(r.Right()), math.Ceil(r.Bottom()))
}

// Color is an RGBA color with components in [0, 1], not premultiplied.
type Color struct {
	R, G, B, A float64
}

// RGBA returns premultiplied 16-bit components, satisfying color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	clamp := func(v float64) float64 { return math.Max(0, math.Min(1, v)) }
	alpha := clamp(c.A)
	return uint32(clamp(c.R) * alpha * 0xffff),
		uint32(clamp(c.G) * alpha * 0xffff),
		uint32(clamp(c.B) * alpha * 0xffff),
		uint32(alpha * 0xffff)
}

var (
	ColorTransparent = Color{}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorWhite       = Color{1, 1, 1, 1}
)

// Buttons is a bit set of pointer buttons and modifiers held during a mouse
// event.
type Buttons uint32

const (
	ButtonLeft Buttons = 1 << iota
	ButtonMiddle
	ButtonRight
	ButtonDoubleClick
)

// IsLeft reports whether the left button is set.
func (b Buttons) IsLeft() bool { return b&ButtonLeft != 0 }

// KeyModifiers is a bit set of modifier keys.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// EventResult is returned by every dispatch entry point.
type EventResult uint8

const (
	// EventNotImplemented means the target has no handler for the event.
	EventNotImplemented EventResult = iota
	// EventNotHandled means the target looked at the event and declined it.
	EventNotHandled
	// EventHandled means the event was consumed. For a mouse-down this also
	// captures the pointer for the rest of the gesture.
	EventHandled
	// EventHandledNoCapture consumes a mouse-down without capturing.
	EventHandledNoCapture
)

// Consumed reports whether the result stops propagation.
func (r EventResult) Consumed() bool {
	return r == EventHandled || r == EventHandledNoCapture
}

func (r EventResult) String() string {
	switch r {
	case EventNotImplemented:
		return "not-implemented"
	case EventNotHandled:
		return "not-handled"
	case EventHandled:
		return "handled"
	case EventHandledNoCapture:
		return "handled-no-capture"
	}
	return "unknown"
}

// AutosizeFlags describe how a child follows its container's resize.
// AutosizeRow and AutosizeColumn are read from the container itself and
// distribute the delta across all children.
type AutosizeFlags uint16

const (
	AutosizeLeft AutosizeFlags = 1 << iota
	AutosizeTop
	AutosizeRight
	AutosizeBottom
	AutosizeColumn
	AutosizeRow

	AutosizeNone AutosizeFlags = 0
	AutosizeAll                = AutosizeLeft | AutosizeTop | AutosizeRight | AutosizeBottom
)

// ViewAtOptions control hit queries.
type ViewAtOptions uint8

const (
	// ViewAtDeep recurses into child containers.
	ViewAtDeep ViewAtOptions = 1 << iota
	// ViewAtMouseEnabled skips views with mouse input disabled.
	ViewAtMouseEnabled
	// ViewAtIncludeContainers lets a container be the result when none of
	// its children match.
	ViewAtIncludeContainers
	// ViewAtIncludeInvisible also considers hidden views.
	ViewAtIncludeInvisible
)

// DrawStyle selects how a container paints its background color.
type DrawStyle uint8

const (
	DrawFilled DrawStyle = iota
	DrawStroked
	DrawFilledAndStroked
)

// Cursor is a platform cursor shape.
type Cursor uint8

const (
	CursorDefault Cursor = iota
	CursorPointer
	CursorText
	CursorCrosshair
	CursorEWResize
	CursorNSResize
	CursorNotAllowed
	CursorMove
)
