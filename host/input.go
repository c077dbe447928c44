package host

import (
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/arbor"
)

// Double-click detection window and slop.
const (
	doubleClickMillis = 400
	doubleClickSlop   = 4
)

// Key repeat timing, in ticks.
const (
	repeatDelay    = 30
	repeatInterval = 4
)

// KeyPress is one key transition seen during a frame.
type KeyPress struct {
	Key      ebiten.Key
	Released bool
	Repeat   bool
}

// InputState is the raw input polled for one frame.
type InputState struct {
	Cursor         arbor.Point
	Buttons        arbor.Buttons
	Modifiers      arbor.KeyModifiers
	WheelX, WheelY float64
	Keys           []KeyPress
	Chars          []rune
	Focused        bool
}

func (s *InputState) reset() {
	*s = InputState{Keys: s.Keys[:0], Chars: s.Chars[:0]}
}

// InputSource fills an InputState once per Update.
type InputSource interface {
	Poll(s *InputState)
}

// ebitenInput polls Ebitengine's input state.
type ebitenInput struct{}

func (ebitenInput) Poll(s *InputState) {
	x, y := ebiten.CursorPosition()
	s.Cursor = arbor.Point{X: float64(x), Y: float64(y)}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.Buttons |= arbor.ButtonLeft
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		s.Buttons |= arbor.ButtonMiddle
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		s.Buttons |= arbor.ButtonRight
	}
	s.Modifiers = readModifiers()
	s.WheelX, s.WheelY = ebiten.Wheel()
	s.Focused = ebiten.IsFocused()

	var keys []ebiten.Key
	for _, k := range inpututil.AppendJustPressedKeys(keys) {
		s.Keys = append(s.Keys, KeyPress{Key: k})
	}
	for _, k := range inpututil.AppendPressedKeys(keys[:0]) {
		if d := inpututil.KeyPressDuration(k); d > repeatDelay && (d-repeatDelay)%repeatInterval == 0 {
			s.Keys = append(s.Keys, KeyPress{Key: k, Repeat: true})
		}
	}
	for _, k := range inpututil.AppendJustReleasedKeys(keys[:0]) {
		s.Keys = append(s.Keys, KeyPress{Key: k, Released: true})
	}
	s.Chars = ebiten.AppendInputChars(s.Chars)
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() arbor.KeyModifiers {
	var mods arbor.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= arbor.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= arbor.ModControl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= arbor.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= arbor.ModSuper
	}
	return mods
}

var virtualKeys = map[ebiten.Key]arbor.VirtualKey{
	ebiten.KeyBackspace:   arbor.VKeyBack,
	ebiten.KeyTab:         arbor.VKeyTab,
	ebiten.KeyEnter:       arbor.VKeyReturn,
	ebiten.KeyNumpadEnter: arbor.VKeyEnter,
	ebiten.KeyEscape:      arbor.VKeyEscape,
	ebiten.KeySpace:       arbor.VKeySpace,
	ebiten.KeyEnd:         arbor.VKeyEnd,
	ebiten.KeyHome:        arbor.VKeyHome,
	ebiten.KeyArrowLeft:   arbor.VKeyLeft,
	ebiten.KeyArrowUp:     arbor.VKeyUp,
	ebiten.KeyArrowRight:  arbor.VKeyRight,
	ebiten.KeyArrowDown:   arbor.VKeyDown,
	ebiten.KeyPageUp:      arbor.VKeyPageUp,
	ebiten.KeyPageDown:    arbor.VKeyPageDown,
	ebiten.KeyInsert:      arbor.VKeyInsert,
	ebiten.KeyDelete:      arbor.VKeyDelete,
}

// keyEvents turns one frame of key transitions and typed text into arbor
// key events. Named keys produce down and up events; printable text is
// delivered as key-down characters. Letter and digit keys pressed with
// Control or Super produce no text, so they are reported as characters
// directly.
func keyEvents(s *InputState) []arbor.KeyEvent {
	var out []arbor.KeyEvent
	chord := s.Modifiers&(arbor.ModControl|arbor.ModSuper) != 0
	for _, kp := range s.Keys {
		typ := arbor.KeyDown
		if kp.Released {
			typ = arbor.KeyUp
		}
		if vk, ok := virtualKeys[kp.Key]; ok {
			out = append(out, arbor.KeyEvent{Type: typ, Virtual: vk, Modifiers: s.Modifiers, Repeat: kp.Repeat})
			continue
		}
		if r := keyRune(kp.Key); r != 0 && (chord || kp.Released) {
			out = append(out, arbor.KeyEvent{Type: typ, Character: r, Modifiers: s.Modifiers, Repeat: kp.Repeat})
		}
	}
	if !chord {
		for _, r := range s.Chars {
			if unicode.IsPrint(r) && r != ' ' {
				out = append(out, arbor.KeyEvent{Type: arbor.KeyDown, Character: r, Modifiers: s.Modifiers})
			}
		}
	}
	return out
}

// keyRune maps letter and digit keys to their lower-case character.
func keyRune(k ebiten.Key) rune {
	switch {
	case k >= ebiten.KeyA && k <= ebiten.KeyZ:
		return 'a' + rune(k-ebiten.KeyA)
	case k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9:
		return '0' + rune(k-ebiten.KeyDigit0)
	}
	return 0
}

type pointerState struct {
	pos     arbor.Point
	inside  bool
	buttons arbor.Buttons
}

type clickState struct {
	valid bool
	at    uint64
	pos   arbor.Point
}

const pressButtons = arbor.ButtonLeft | arbor.ButtonMiddle | arbor.ButtonRight

// processInput dispatches one frame of polled input to the frame.
func (h *Host) processInput(s *InputState) {
	if s.Focused != h.focused {
		h.focused = s.Focused
		h.frame.Activate(s.Focused)
	}
	w, ht := h.frame.Size()
	inside := s.Cursor.X >= 0 && s.Cursor.Y >= 0 && s.Cursor.X < w && s.Cursor.Y < ht
	h.dispatchPointer(s.Cursor, inside, s.Buttons, s.Modifiers)

	if s.WheelY != 0 {
		h.frame.OnWheel(arbor.WheelEvent{Position: s.Cursor, Axis: arbor.WheelVertical, Distance: s.WheelY, Buttons: s.Buttons, Modifiers: s.Modifiers})
	}
	if s.WheelX != 0 {
		h.frame.OnWheel(arbor.WheelEvent{Position: s.Cursor, Axis: arbor.WheelHorizontal, Distance: s.WheelX, Buttons: s.Buttons, Modifiers: s.Modifiers})
	}
	for _, e := range keyEvents(s) {
		h.dispatchKey(e)
	}
}

func (h *Host) dispatchKey(e arbor.KeyEvent) {
	if e.Type == arbor.KeyUp {
		h.frame.OnKeyUp(e)
		return
	}
	h.frame.OnKeyDown(e)
}

// dispatchPointer diffs the pointer against the previous frame and sends
// exit, move, down and up events in that order. A button held outside the
// surface keeps the pointer live so captured drags continue.
func (h *Host) dispatchPointer(pos arbor.Point, inside bool, buttons arbor.Buttons, mods arbor.KeyModifiers) {
	prev := h.pointer
	buttons &= pressButtons
	h.pointer = pointerState{pos: pos, inside: inside, buttons: buttons}
	pressed := buttons &^ prev.buttons
	released := prev.buttons &^ buttons

	if !inside && buttons == 0 && released == 0 {
		if prev.inside {
			h.frame.OnMouseExited(arbor.MouseEvent{Position: pos, Modifiers: mods})
		}
		return
	}
	e := arbor.MouseEvent{Position: pos, Buttons: buttons, Modifiers: mods}
	if pos != prev.pos || !prev.inside {
		h.frame.OnMouseMoved(e)
	}
	if pressed != 0 {
		down := e
		down.Buttons = pressed
		if pressed&arbor.ButtonLeft != 0 && h.isDoubleClick(pos) {
			down.Buttons |= arbor.ButtonDoubleClick
		}
		h.frame.OnMouseDown(down)
	}
	if released != 0 {
		up := e
		up.Buttons = released
		h.frame.OnMouseUp(up)
	}
}

// isDoubleClick records a left press and reports whether it completes a
// double click.
func (h *Host) isDoubleClick(pos arbor.Point) bool {
	now := h.Ticks()
	last := h.lastClick
	h.lastClick = clickState{valid: true, at: now, pos: pos}
	if !last.valid {
		return false
	}
	d := pos.Sub(last.pos)
	if now-last.at > doubleClickMillis || d.X*d.X+d.Y*d.Y > doubleClickSlop*doubleClickSlop {
		return false
	}
	h.lastClick = clickState{}
	return true
}
