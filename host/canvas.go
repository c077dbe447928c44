package host

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/arbor"
)

// imageCache holds GPU copies of bitmaps that are plain image.Image values.
type imageCache map[arbor.Bitmap]*ebiten.Image

func (c imageCache) lookup(b arbor.Bitmap) *ebiten.Image {
	switch img := b.(type) {
	case *ebiten.Image:
		return img
	case image.Image:
		if e, ok := c[b]; ok {
			return e
		}
		e := ebiten.NewImageFromImage(img)
		c[b] = e
		return e
	}
	return nil
}

var whitePixel *ebiten.Image

// whiteSubImage is the 1x1 white source used for DrawTriangles.
func whiteSubImage() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// Canvas implements arbor.DrawContext on an ebiten image. Axis-aligned
// shapes use the vector rect helpers; rotated ones are tessellated.
type Canvas struct {
	arbor.ContextState

	dst    *ebiten.Image
	images imageCache
}

// NewCanvas returns a canvas over dst, clipped to its bounds.
func NewCanvas(dst *ebiten.Image) *Canvas {
	return newCanvas(dst, imageCache{})
}

func newCanvas(dst *ebiten.Image, images imageCache) *Canvas {
	b := dst.Bounds()
	return &Canvas{
		ContextState: arbor.NewContextState(arbor.Rect{
			X: float64(b.Min.X), Y: float64(b.Min.Y),
			Width: float64(b.Dx()), Height: float64(b.Dy()),
		}),
		dst:    dst,
		images: images,
	}
}

// Repaint clears update, in frame coordinates, to background and paints
// the frame over it.
func (c *Canvas) Repaint(f *arbor.Frame, update arbor.Rect, background arbor.Color) {
	update = update.Integral()
	c.SetClipRect(update)
	if t := c.target(); t != nil {
		t.Fill(background)
	}
	f.DrawRect(c, update)
}

// pixelRect returns the smallest pixel rectangle covering r.
func pixelRect(r arbor.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	)
}

// target returns the destination restricted to the clip, or nil when the
// clip is empty. Sub-images keep the parent's coordinates.
func (c *Canvas) target() *ebiten.Image {
	clip := pixelRect(c.DeviceClip()).Intersect(c.dst.Bounds())
	if clip.Empty() {
		return nil
	}
	return c.dst.SubImage(clip).(*ebiten.Image)
}

// axisAligned reports whether t maps rects to rects.
func axisAligned(t arbor.Transform) bool { return t[1] == 0 && t[2] == 0 }

// rectPath traces r through t.
func rectPath(t arbor.Transform, r arbor.Rect) *vector.Path {
	var p vector.Path
	pts := [4]arbor.Point{
		t.Apply(arbor.Point{X: r.X, Y: r.Y}),
		t.Apply(arbor.Point{X: r.Right(), Y: r.Y}),
		t.Apply(arbor.Point{X: r.Right(), Y: r.Bottom()}),
		t.Apply(arbor.Point{X: r.X, Y: r.Bottom()}),
	}
	p.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, q := range pts[1:] {
		p.LineTo(float32(q.X), float32(q.Y))
	}
	p.Close()
	return &p
}

// drawTriangles paints tessellated vertices in col.
func drawTriangles(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, col arbor.Color) {
	r, g, b, a := col.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	dst.DrawTriangles(vs, is, whiteSubImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (c *Canvas) FillRect(r arbor.Rect, col arbor.Color) {
	col = c.Fade(col)
	dst := c.target()
	if dst == nil || r.IsEmpty() || col.A <= 0 {
		return
	}
	t := c.Current()
	if axisAligned(t) {
		d := t.ApplyRect(r)
		vector.DrawFilledRect(dst, float32(d.X), float32(d.Y), float32(d.Width), float32(d.Height), col, true)
		return
	}
	vs, is := rectPath(t, r).AppendVerticesAndIndicesForFilling(nil, nil)
	drawTriangles(dst, vs, is, col)
}

// StrokeRect strokes r with the pen centred on its edges. The width is
// scaled by the current transform.
func (c *Canvas) StrokeRect(r arbor.Rect, col arbor.Color, width float64) {
	col = c.Fade(col)
	dst := c.target()
	if dst == nil || r.IsEmpty() || width <= 0 || col.A <= 0 {
		return
	}
	t := c.Current()
	sx, sy := t.ApplyVector(1, 0)
	scale := math.Hypot(sx, sy)
	if axisAligned(t) {
		d := t.ApplyRect(r)
		vector.StrokeRect(dst, float32(d.X), float32(d.Y), float32(d.Width), float32(d.Height), float32(width*scale), col, true)
		return
	}
	opts := &vector.StrokeOptions{Width: float32(width * scale), LineJoin: vector.LineJoinMiter, MiterLimit: 4}
	vs, is := rectPath(t, r).AppendVerticesAndIndicesForStroke(nil, nil, opts)
	drawTriangles(dst, vs, is, col)
}

// DrawBitmap scales b into dst. Bitmaps that are neither ebiten images nor
// image.Image values are skipped.
func (c *Canvas) DrawBitmap(b arbor.Bitmap, dst arbor.Rect) {
	target := c.target()
	img := c.images.lookup(b)
	if target == nil || img == nil || dst.IsEmpty() {
		return
	}
	sb := img.Bounds()
	if sb.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Translate(-float64(sb.Min.X), -float64(sb.Min.Y))
	op.GeoM.Scale(dst.Width/float64(sb.Dx()), dst.Height/float64(sb.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	op.GeoM.Concat(geoM(c.Current()))
	op.ColorScale.ScaleAlpha(float32(c.GlobalAlpha()))
	target.DrawImage(img, op)
}

// geoM converts an arbor transform into an ebiten matrix.
func geoM(t arbor.Transform) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, t[0])
	g.SetElement(0, 1, t[2])
	g.SetElement(0, 2, t[4])
	g.SetElement(1, 0, t[1])
	g.SetElement(1, 1, t[3])
	g.SetElement(1, 2, t[5])
	return g
}

var _ arbor.DrawContext = (*Canvas)(nil)
