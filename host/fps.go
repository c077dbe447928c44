package host

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/arbor"
)

const fpsRefreshSeconds = 0.5

// fpsView paints an offscreen image refreshed from the host's update loop.
type fpsView struct {
	img     *ebiten.Image
	elapsed float64
}

func (f *fpsView) Draw(v *arbor.View, ctx arbor.DrawContext, _ arbor.Rect) {
	ctx.DrawBitmap(f.img, v.Rect())
}

// NewFPSView returns a 100x32 leaf at (x, y) that shows the actual FPS and
// TPS, refreshed about twice a second. Add it to any container.
func (h *Host) NewFPSView(x, y float64) *arbor.View {
	fv := &fpsView{img: ebiten.NewImage(100, 32)}
	v := arbor.NewView("fps", arbor.Rect{X: x, Y: y, Width: 100, Height: 32})
	v.SetMouseEnabled(false)
	v.Behavior = fv

	h.OnUpdate(func(dt float64) {
		fv.elapsed += dt
		if fv.elapsed < fpsRefreshSeconds {
			return
		}
		fv.elapsed = 0
		fv.img.Clear()
		fv.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(fv.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
		v.Invalid()
	})
	return v
}
