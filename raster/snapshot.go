package raster

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/phanxgames/arbor"
)

// Snapshot paints the whole frame over background into a new image the
// size of the frame.
func Snapshot(f *arbor.Frame, background arbor.Color) *image.RGBA {
	w, h := f.Size()
	img := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	Repaint(NewCanvas(img), f, arbor.Rect{Width: w, Height: h}, background)
	return img
}

// Repaint clears update, in frame coordinates, to background and paints
// the frame over it.
func Repaint(c *Canvas, f *arbor.Frame, update arbor.Rect, background arbor.Color) {
	update = update.Integral()
	c.Clear(update, background)
	c.SetClipRect(update)
	f.DrawRect(c, update)
}

// WritePNG encodes img to a PNG file at path, creating parent directories.
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// ScreenshotPath returns dir/<stamp>_<label>.png for a capture taken at t.
func ScreenshotPath(dir, label string, t time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.png", t.Format("20060102_150405"), SanitizeLabel(label)))
}

// SanitizeLabel keeps ASCII letters, digits, '-' and '.' and turns every
// other rune into '_'. Blank labels become "unlabeled".
func SanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' || ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			return r
		}
		return '_'
	}, label)
}
