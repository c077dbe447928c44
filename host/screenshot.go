package host

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/arbor/raster"
)

// Screenshot queues a labeled screenshot, captured at the end of the next
// Draw and written to ScreenshotDir as a timestamped PNG.
func (h *Host) Screenshot(label string) {
	h.screenshotQueue = append(h.screenshotQueue, label)
}

// flushScreenshots captures the screen once for every queued label.
func (h *Host) flushScreenshots(screen *ebiten.Image) {
	if len(h.screenshotQueue) == 0 {
		return
	}
	img := readScreen(screen)
	now := h.clock()
	for _, label := range h.screenshotQueue {
		path := raster.ScreenshotPath(h.ScreenshotDir, label, now)
		if err := raster.WritePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[arbor] screenshot: %v\n", err)
		}
	}
	h.screenshotQueue = h.screenshotQueue[:0]
}

// readScreen copies the screen into a straight-alpha image.
func readScreen(screen *ebiten.Image) *image.NRGBA {
	bounds := screen.Bounds()
	w, ht := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*ht)
	screen.ReadPixels(pixels)
	return unpremultiply(pixels, w, ht)
}

// unpremultiply converts premultiplied RGBA bytes to an NRGBA image.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	src := &image.RGBA{Pix: pixels, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	img := image.NewNRGBA(src.Rect)
	draw.Draw(img, img.Rect, src, image.Point{}, draw.Src)
	return img
}
