// Package raster implements arbor.DrawContext in software over an
// *image.RGBA, for snapshots, golden tests and headless hosts.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/phanxgames/arbor"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// Canvas draws into an RGBA image. Shapes are anti-aliased and composited
// with the Porter-Duff over operator.
type Canvas struct {
	arbor.ContextState

	dst *image.RGBA
	z   vector.Rasterizer
}

// NewCanvas returns a canvas over dst, clipped to its bounds.
func NewCanvas(dst *image.RGBA) *Canvas {
	b := dst.Bounds()
	return &Canvas{
		ContextState: arbor.NewContextState(arbor.Rect{
			X: float64(b.Min.X), Y: float64(b.Min.Y),
			Width: float64(b.Dx()), Height: float64(b.Dy()),
		}),
		dst: dst,
	}
}

// Image returns the target image.
func (c *Canvas) Image() *image.RGBA { return c.dst }

// Clear fills r, in device space, with col, replacing what was there.
func (c *Canvas) Clear(r arbor.Rect, col arbor.Color) {
	px := pixelRect(r).Intersect(c.dst.Bounds())
	draw.Draw(c.dst, px, image.NewUniform(col), image.Point{}, draw.Src)
}

// pixelRect returns the smallest pixel rectangle covering r.
func pixelRect(r arbor.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	)
}

// clipPixels returns the device clip as pixels, bounded by the image.
func (c *Canvas) clipPixels() image.Rectangle {
	return pixelRect(c.DeviceClip()).Intersect(c.dst.Bounds())
}

// quad maps the corners of r to device space.
func (c *Canvas) quad(r arbor.Rect) [4]arbor.Point {
	t := c.Current()
	return [4]arbor.Point{
		t.Apply(arbor.Point{X: r.X, Y: r.Y}),
		t.Apply(arbor.Point{X: r.Right(), Y: r.Y}),
		t.Apply(arbor.Point{X: r.Right(), Y: r.Bottom()}),
		t.Apply(arbor.Point{X: r.X, Y: r.Bottom()}),
	}
}

// addQuad adds a closed path through q, relative to origin. With reverse
// set the winding is flipped, which cuts a hole in an enclosing quad.
func (c *Canvas) addQuad(q [4]arbor.Point, origin image.Point, reverse bool) {
	ox, oy := float64(origin.X), float64(origin.Y)
	order := [4]int{0, 1, 2, 3}
	if reverse {
		order = [4]int{0, 3, 2, 1}
	}
	c.z.MoveTo(float32(q[order[0]].X-ox), float32(q[order[0]].Y-oy))
	for _, i := range order[1:] {
		c.z.LineTo(float32(q[i].X-ox), float32(q[i].Y-oy))
	}
	c.z.ClosePath()
}

// fill rasterizes the quads added by build and composites col through them.
func (c *Canvas) fill(col arbor.Color, build func(origin image.Point)) {
	col = c.Fade(col)
	if col.A <= 0 {
		return
	}
	clip := c.clipPixels()
	if clip.Empty() {
		return
	}
	c.z.Reset(clip.Dx(), clip.Dy())
	c.z.DrawOp = draw.Over
	build(clip.Min)
	c.z.Draw(c.dst, clip, image.NewUniform(col), image.Point{})
}

func (c *Canvas) FillRect(r arbor.Rect, col arbor.Color) {
	if r.IsEmpty() {
		return
	}
	c.fill(col, func(origin image.Point) {
		c.addQuad(c.quad(r), origin, false)
	})
}

// StrokeRect strokes r with the pen centred on its edges.
func (c *Canvas) StrokeRect(r arbor.Rect, col arbor.Color, width float64) {
	if width <= 0 || r.IsEmpty() {
		return
	}
	outer := r.Inset(-width/2, -width/2)
	inner := r.Inset(width/2, width/2)
	c.fill(col, func(origin image.Point) {
		c.addQuad(c.quad(outer), origin, false)
		if !inner.IsEmpty() {
			c.addQuad(c.quad(inner), origin, true)
		}
	})
}

// DrawBitmap scales b into dst. Bitmaps that are not image.Image values are
// drawn as nothing.
func (c *Canvas) DrawBitmap(b arbor.Bitmap, dst arbor.Rect) {
	src, ok := b.(image.Image)
	if !ok || dst.IsEmpty() {
		return
	}
	sb := src.Bounds()
	if sb.Empty() {
		return
	}
	clip := c.clipPixels()
	if clip.Empty() {
		return
	}
	m := c.Current().
		Multiply(arbor.Translation(dst.X, dst.Y)).
		Multiply(arbor.Scaling(dst.Width/float64(sb.Dx()), dst.Height/float64(sb.Dy()))).
		Multiply(arbor.Translation(-float64(sb.Min.X), -float64(sb.Min.Y)))
	s2d := f64.Aff3{m[0], m[2], m[4], m[1], m[3], m[5]}

	var opts *xdraw.Options
	if a := c.GlobalAlpha(); a < 1 {
		opts = &xdraw.Options{SrcMask: image.NewUniform(color.Alpha16{A: uint16(math.Max(0, a) * 0xffff)})}
	}
	target := c.dst.SubImage(clip).(*image.RGBA)
	xdraw.ApproxBiLinear.Transform(target, s2d, src, sb, xdraw.Over, opts)
}

var _ arbor.DrawContext = (*Canvas)(nil)
