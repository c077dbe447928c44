// Package host runs an arbor frame inside an Ebitengine game loop. The Host
// is both the frame's Platform and the ebiten.Game: Update polls input and
// feeds it to the frame, Draw repaints only the rects the frame invalidated.
package host

import (
	"errors"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/arbor"
)

// DefaultScreenshotDir is where queued screenshots are written unless the
// host is configured otherwise.
const DefaultScreenshotDir = "screenshots"

// Host drives one arbor.Frame. Create it with New, then call Run.
type Host struct {
	frame *arbor.Frame
	input InputSource
	clock func() time.Time
	start time.Time

	// Background fills invalidated rects before the tree is painted.
	Background arbor.Color
	// ScreenshotDir is the directory Screenshot writes PNG files into.
	ScreenshotDir string

	pending    []arbor.Rect
	fullRedraw bool
	images     imageCache

	pointer   pointerState
	lastClick clickState
	focused   bool
	cursor    arbor.Cursor
	applied   arbor.Cursor

	injectQueue     []syntheticEvent
	runner          *ScriptRunner
	screenshotQueue []string
	updaters        []func(dt float64)

	state InputState
	quit  bool
}

// Option configures a Host.
type Option func(*Host)

// WithInput replaces the Ebitengine input poller.
func WithInput(src InputSource) Option {
	return func(h *Host) { h.input = src }
}

// WithClock replaces time.Now as the source of Ticks.
func WithClock(now func() time.Time) Option {
	return func(h *Host) { h.clock = now }
}

// WithBackground sets the clear color.
func WithBackground(c arbor.Color) Option {
	return func(h *Host) { h.Background = c }
}

// WithScreenshotDir sets the screenshot directory.
func WithScreenshotDir(dir string) Option {
	return func(h *Host) { h.ScreenshotDir = dir }
}

// New opens f on a new host.
func New(f *arbor.Frame, opts ...Option) (*Host, error) {
	h := &Host{
		frame:         f,
		input:         ebitenInput{},
		clock:         time.Now,
		Background:    arbor.ColorWhite,
		ScreenshotDir: DefaultScreenshotDir,
		fullRedraw:    true,
		focused:       true,
		images:        imageCache{},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.start = h.clock()
	if err := f.Open(h); err != nil {
		return nil, err
	}
	return h, nil
}

// Frame returns the hosted frame.
func (h *Host) Frame() *arbor.Frame { return h.frame }

// OnUpdate registers fn to run every Update with the frame delta in seconds,
// before the frame ticks its animations.
func (h *Host) OnUpdate(fn func(dt float64)) {
	h.updaters = append(h.updaters, fn)
}

// Quit ends Run after the current Update.
func (h *Host) Quit() { h.quit = true }

// Run opens a window sized to the frame and blocks until it is closed or
// Quit is called. The frame is closed on return.
func (h *Host) Run(title string) error {
	if !h.frame.IsOpen() {
		return arbor.ErrFrameClosed
	}
	w, ht := h.frame.Size()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(w), int(ht))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)

	err := ebiten.RunGame(h)
	h.frame.Close()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	if h.quit {
		return ebiten.Termination
	}
	if !h.frame.IsOpen() {
		return arbor.ErrFrameClosed
	}
	h.step(1.0 / float64(ebiten.TPS()))
	if h.cursor != h.applied {
		ebiten.SetCursorShape(cursorShape(h.cursor))
		h.applied = h.cursor
	}
	return nil
}

// step runs one frame of input, scripting and animation.
func (h *Host) step(dt float64) {
	if h.runner != nil {
		h.runner.step(h)
	}
	h.state.reset()
	h.input.Poll(&h.state)
	if !h.processInjected() {
		h.processInput(&h.state)
	}
	for _, fn := range h.updaters {
		fn(dt)
	}
	h.frame.Tick(float32(dt))
}

// Draw implements ebiten.Game. The screen is not cleared between frames, so
// only invalidated rects are repainted.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.fullRedraw {
		h.redrawAll(screen.Bounds())
	}
	if len(h.pending) > 0 {
		c := newCanvas(screen, h.images)
		for _, r := range h.pending {
			c.Repaint(h.frame, r, h.Background)
		}
		h.pending = h.pending[:0]
	}
	h.flushScreenshots(screen)
}

// redrawAll replaces the pending rects with the whole surface. Pending rects
// are in surface pixels, so zoom does not enter into it.
func (h *Host) redrawAll(surface image.Rectangle) {
	r := arbor.Rect{
		X:      float64(surface.Min.X),
		Y:      float64(surface.Min.Y),
		Width:  float64(surface.Dx()),
		Height: float64(surface.Dy()),
	}
	h.pending = append(h.pending[:0], r)
	h.fullRedraw = false
}

// Layout implements ebiten.Game. The frame follows the window size one to
// one.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, ht := h.frame.Size()
	if int(w) != outsideWidth || int(ht) != outsideHeight {
		h.frame.SetSize(float64(outsideWidth), float64(outsideHeight))
		h.fullRedraw = true
	}
	return outsideWidth, outsideHeight
}

var _ ebiten.Game = (*Host)(nil)
