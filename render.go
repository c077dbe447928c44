package arbor

// DrawContext is the drawing backend. Coordinates are in the current local
// space, which PushTransform concatenates onto. The clip rect is reported and
// set in the same local space.
type DrawContext interface {
	ClipRect() Rect
	SetClipRect(r Rect)
	PushTransform(t Transform)
	PopTransform()
	GlobalAlpha() float64
	SetGlobalAlpha(a float64)
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, c Color, width float64)
	DrawBitmap(b Bitmap, dst Rect)
}

// DrawRect paints the part of the tree that intersects update, given in
// frame coordinates. The context is expected to start in frame space.
func (f *Frame) DrawRect(ctx DrawContext, update Rect) {
	if !f.open || !f.root.visible {
		return
	}
	alpha := ctx.GlobalAlpha()
	ctx.SetGlobalAlpha(alpha * f.root.alpha)
	f.drawView(ctx, f.root, update)
	ctx.SetGlobalAlpha(alpha)
}

// drawView paints v; ctx and update are in v's parent space.
func (f *Frame) drawView(ctx DrawContext, v *View, update Rect) {
	if v.IsContainer() {
		f.drawContainer(ctx, v, update)
		return
	}
	if v.bitmap != nil {
		ctx.DrawBitmap(v.bitmap, v.rect)
	}
	if d, ok := v.Behavior.(Drawable); ok {
		d.Draw(v, ctx, update)
	}
	v.SetDirty(false)
}

// drawContainer clips to the container, paints its background, then paints
// each visible child overlapping the update area back to front with the
// child's clip and alpha. The focus ring of a focused direct child is drawn
// under the child or, by default, after all children, clipped to the clip
// the container started with.
func (f *Frame) drawContainer(ctx DrawContext, v *View, update Rect) {
	area := update.Intersect(v.rect)
	if area.IsEmpty() {
		return
	}
	oldClip := ctx.ClipRect()
	clip := area.Intersect(oldClip)
	if clip.IsEmpty() {
		return
	}
	ctx.SetClipRect(clip)
	f.drawBackground(ctx, v, clip)

	lt := v.localTransform()
	inv := lt.Inverse()
	ctx.PushTransform(lt)
	local := inv.ApplyRect(clip)
	alpha := ctx.GlobalAlpha()

	focus := f.focusView
	ring := f.focusCfg.enabled && focus != nil && focus.parent == v && focus.visible && focus.wantsFocus
	onTop := ring && f.drawFocusOnTop(focus)

	for _, c := range append([]*View(nil), v.children...) {
		if !c.visible || !c.rect.Intersects(local) {
			continue
		}
		if ring && !onTop && c == focus {
			ctx.SetClipRect(local)
			ctx.SetGlobalAlpha(alpha)
			f.drawFocusRing(ctx, c)
		}
		childClip := c.rect.Intersect(local)
		ctx.SetClipRect(childClip)
		ctx.SetGlobalAlpha(alpha * c.alpha)
		f.drawView(ctx, c, childClip)
	}
	ctx.SetGlobalAlpha(alpha)
	if onTop && focus.parent == v {
		ctx.SetClipRect(inv.ApplyRect(oldClip))
		f.drawFocusRing(ctx, focus)
	}
	ctx.PopTransform()
	ctx.SetClipRect(oldClip)
	v.SetDirty(false)
}

func (f *Frame) drawBackground(ctx DrawContext, v *View, clip Rect) {
	if v.bitmap != nil {
		ctx.DrawBitmap(v.bitmap, v.rect)
	} else if !v.transparent && v.background.A > 0 {
		switch v.bgStyle {
		case DrawFilled:
			ctx.FillRect(v.rect, v.background)
		case DrawStroked:
			ctx.StrokeRect(v.rect, v.background, 1)
		case DrawFilledAndStroked:
			ctx.FillRect(v.rect, v.background)
			ctx.StrokeRect(v.rect, v.background, 1)
		}
	}
	if d, ok := v.Behavior.(Drawable); ok {
		d.Draw(v, ctx, clip)
	}
}

func (f *Frame) drawFocusRing(ctx DrawContext, v *View) {
	r, ok := f.focusRect(v)
	if !ok {
		return
	}
	w := f.focusCfg.width
	ctx.StrokeRect(r.Inset(-w/2, -w/2), f.focusCfg.color, w)
}

// ContextState is the transform, clip and alpha bookkeeping every
// DrawContext needs. Backends embed it and supply the drawing methods,
// reading Current and DeviceClip to place their output.
type ContextState struct {
	stack []Transform
	clip  Rect
	alpha float64
}

// NewContextState starts in device space with the given clip and full
// opacity.
func NewContextState(clip Rect) ContextState {
	return ContextState{stack: []Transform{IdentityTransform}, clip: clip, alpha: 1}
}

// Current returns the local-to-device transform.
func (s *ContextState) Current() Transform {
	if len(s.stack) == 0 {
		return IdentityTransform
	}
	return s.stack[len(s.stack)-1]
}

// DeviceClip returns the clip in device space.
func (s *ContextState) DeviceClip() Rect { return s.clip }

// ClipRect returns the clip in the current local space.
func (s *ContextState) ClipRect() Rect { return s.Current().Inverse().ApplyRect(s.clip) }

// SetClipRect replaces the clip; r is in the current local space and is
// stored as its device-space bounding box.
func (s *ContextState) SetClipRect(r Rect) { s.clip = s.Current().ApplyRect(r) }

func (s *ContextState) PushTransform(t Transform) {
	s.stack = append(s.stack, s.Current().Multiply(t))
}

func (s *ContextState) PopTransform() {
	if len(s.stack) > 1 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

func (s *ContextState) GlobalAlpha() float64 { return s.alpha }

func (s *ContextState) SetGlobalAlpha(a float64) { s.alpha = a }

// Fade returns c with its alpha scaled by the global alpha.
func (s *ContextState) Fade(c Color) Color {
	c.A *= s.alpha
	return c
}
