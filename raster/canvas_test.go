package raster

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phanxgames/arbor"
)

var (
	red   = arbor.Color{R: 1, A: 1}
	blue  = arbor.Color{B: 1, A: 1}
	empty = color.RGBA{}
)

func newCanvas(w, h int) *Canvas {
	return NewCanvas(image.NewRGBA(image.Rect(0, 0, w, h)))
}

func near(a, b uint8) bool { return math.Abs(float64(a)-float64(b)) <= 2 }

func assertPixel(t *testing.T, img *image.RGBA, x, y int, want color.RGBA) {
	t.Helper()
	got := img.RGBAAt(x, y)
	if !near(got.R, want.R) || !near(got.G, want.G) || !near(got.B, want.B) || !near(got.A, want.A) {
		t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
	}
}

func TestFillRect(t *testing.T) {
	c := newCanvas(20, 20)
	c.FillRect(arbor.Rect{X: 5, Y: 5, Width: 10, Height: 10}, red)

	assertPixel(t, c.Image(), 5, 5, color.RGBA{R: 255, A: 255})
	assertPixel(t, c.Image(), 14, 14, color.RGBA{R: 255, A: 255})
	assertPixel(t, c.Image(), 4, 10, empty)
	assertPixel(t, c.Image(), 15, 10, empty)
}

func TestFillRectTransformAndClip(t *testing.T) {
	c := newCanvas(40, 40)
	c.PushTransform(arbor.Translation(10, 10).Multiply(arbor.Scaling(2, 2)))
	c.SetClipRect(arbor.Rect{Width: 5, Height: 10})
	c.FillRect(arbor.Rect{Width: 10, Height: 10}, red)
	c.PopTransform()

	// Local (0,0,10,10) maps to (10,10,20,20); the clip keeps x < 20.
	assertPixel(t, c.Image(), 10, 10, color.RGBA{R: 255, A: 255})
	assertPixel(t, c.Image(), 19, 29, color.RGBA{R: 255, A: 255})
	assertPixel(t, c.Image(), 20, 15, empty)
	assertPixel(t, c.Image(), 9, 15, empty)

	if got, want := c.ClipRect(), (arbor.Rect{X: 10, Y: 10, Width: 10, Height: 20}); got != want {
		t.Errorf("ClipRect after pop = %v, want %v", got, want)
	}
}

func TestStrokeRectLeavesInterior(t *testing.T) {
	c := newCanvas(20, 20)
	c.StrokeRect(arbor.Rect{X: 4, Y: 4, Width: 12, Height: 12}, blue, 2)

	assertPixel(t, c.Image(), 3, 10, color.RGBA{B: 255, A: 255})
	assertPixel(t, c.Image(), 4, 10, color.RGBA{B: 255, A: 255})
	assertPixel(t, c.Image(), 10, 10, empty)
	assertPixel(t, c.Image(), 1, 10, empty)
}

func TestGlobalAlpha(t *testing.T) {
	c := newCanvas(10, 10)
	c.SetGlobalAlpha(0.5)
	c.FillRect(arbor.Rect{Width: 10, Height: 10}, red)

	assertPixel(t, c.Image(), 5, 5, color.RGBA{R: 128, A: 128})
}

func TestDrawBitmapScales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.SetRGBA(x, y, color.RGBA{G: 255, A: 255})
		}
	}
	c := newCanvas(20, 20)
	c.DrawBitmap(src, arbor.Rect{X: 2, Y: 2, Width: 8, Height: 8})

	assertPixel(t, c.Image(), 5, 5, color.RGBA{G: 255, A: 255})
	assertPixel(t, c.Image(), 15, 15, empty)
}

func TestClear(t *testing.T) {
	c := newCanvas(10, 10)
	c.FillRect(arbor.Rect{Width: 10, Height: 10}, red)
	c.Clear(arbor.Rect{Width: 5, Height: 10}, arbor.Color{})

	assertPixel(t, c.Image(), 2, 2, empty)
	assertPixel(t, c.Image(), 7, 2, color.RGBA{R: 255, A: 255})
}

type stubPlatform struct{}

func (stubPlatform) InvalidateRect(arbor.Rect)          {}
func (stubPlatform) Ticks() uint64                      { return 0 }
func (stubPlatform) MousePosition() (arbor.Point, bool) { return arbor.Point{}, false }
func (stubPlatform) MouseButtons() arbor.Buttons        { return 0 }
func (stubPlatform) SetCursor(arbor.Cursor)             {}

func TestSnapshot(t *testing.T) {
	f := arbor.NewFrame(40, 30)
	panel := arbor.NewContainer("panel", arbor.Rect{X: 10, Y: 10, Width: 20, Height: 10})
	panel.SetBackgroundColor(red)
	f.Root().AddChild(panel)
	if err := f.Open(stubPlatform{}); err != nil {
		t.Fatal(err)
	}

	img := Snapshot(f, arbor.ColorWhite)
	if img.Bounds() != image.Rect(0, 0, 40, 30) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	assertPixel(t, img, 0, 0, color.RGBA{255, 255, 255, 255})
	assertPixel(t, img, 15, 15, color.RGBA{R: 255, A: 255})
	assertPixel(t, img, 35, 15, color.RGBA{255, 255, 255, 255})
}

func TestWritePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(1, 1, color.RGBA{R: 9, G: 8, B: 7, A: 255})
	path := filepath.Join(t.TempDir(), "nested", "shot.png")
	if err := WritePNG(path, img); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	fh, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fh.Close()
	got, err := png.Decode(fh)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r, g, b, _ := got.At(1, 1).RGBA(); r>>8 != 9 || g>>8 != 8 || b>>8 != 7 {
		t.Errorf("pixel = %d,%d,%d, want 9,8,7", r>>8, g>>8, b>>8)
	}
}

func TestScreenshotPath(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	got := ScreenshotPath("shots", "after click", at)
	want := filepath.Join("shots", "20260304_050607_after_click.png")
	if got != want {
		t.Errorf("ScreenshotPath = %q, want %q", got, want)
	}
}

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"focus-ring.v2", "focus-ring.v2"},
		{"  Drag Over  ", "Drag_Over"},
		{"a/b\\c", "a_b_c"},
		{"héllo", "h_llo"},
		{"ok?", "ok_"},
		{"\t", "unlabeled"},
	}
	for _, tt := range tests {
		if got := SanitizeLabel(tt.in); got != tt.want {
			t.Errorf("SanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
