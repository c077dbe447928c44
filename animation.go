package arbor

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation drives up to four float values of one view through gween
// tweens. Each step writes the values through its apply function and marks
// the view dirty. An animation stops on its own when the view leaves the
// tree.
type Animation struct {
	View *View
	Name string
	// OnDone runs once after the last step, unless the animation was
	// removed first.
	OnDone func(v *View)

	tweens [4]*gween.Tween
	values [4]float64
	count  int
	apply  func(v *View, values []float64)
	done   bool
}

// Done reports whether the animation has finished or was removed.
func (a *Animation) Done() bool { return a.done }

func (a *Animation) step(dt float32) {
	if a.done {
		return
	}
	allDone := true
	for i := 0; i < a.count; i++ {
		val, finished := a.tweens[i].Update(dt)
		a.values[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	a.apply(a.View, a.values[:a.count])
	a.View.SetDirty(true)
	a.done = allDone
	if a.done && a.OnDone != nil {
		a.OnDone(a.View)
	}
}

// Animator runs the animations of one frame. Frame.Tick advances it; there
// is no global animation clock.
type Animator struct {
	anims []*Animation
}

// NewAnimator creates an empty animator.
func NewAnimator() *Animator { return &Animator{} }

// Animate starts animating values from -> to over duration seconds using
// fn. An animation of the same view with the same name is replaced. At most
// four values are animated.
func (a *Animator) Animate(v *View, name string, from, to []float64, duration float32, fn ease.TweenFunc, apply func(v *View, values []float64)) *Animation {
	n := min(len(from), len(to), 4)
	anim := &Animation{View: v, Name: name, count: n, apply: apply}
	for i := 0; i < n; i++ {
		anim.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
		anim.values[i] = from[i]
	}
	a.Remove(v, name)
	a.anims = append(a.anims, anim)
	return anim
}

// AnimateRect moves and resizes v to target.
func (a *Animator) AnimateRect(v *View, target Rect, duration float32, fn ease.TweenFunc) *Animation {
	r := v.Rect()
	return a.Animate(v, "rect",
		[]float64{r.X, r.Y, r.Width, r.Height},
		[]float64{target.X, target.Y, target.Width, target.Height},
		duration, fn,
		func(v *View, vals []float64) {
			v.SetRect(Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]})
		})
}

// AnimateAlpha fades v to alpha.
func (a *Animator) AnimateAlpha(v *View, alpha float64, duration float32, fn ease.TweenFunc) *Animation {
	return a.Animate(v, "alpha", []float64{v.Alpha()}, []float64{alpha}, duration, fn,
		func(v *View, vals []float64) { v.SetAlpha(vals[0]) })
}

// AnimateTransform tweens a container's translation, uniform scale and
// rotation.
func (a *Animator) AnimateTransform(v *View, tx, ty, scale, angle float64, duration float32, fn ease.TweenFunc) *Animation {
	return a.Animate(v, "transform", []float64{0, 0, 1, 0}, []float64{tx, ty, scale, angle}, duration, fn,
		func(v *View, vals []float64) {
			v.SetTransform(ComposeTransform(vals[0], vals[1], vals[2], vals[2], vals[3]))
		})
}

// Update advances every animation by dt seconds and drops finished ones.
func (a *Animator) Update(dt float32) {
	running := append([]*Animation(nil), a.anims...)
	for _, anim := range running {
		anim.step(dt)
	}
	kept := a.anims[:0]
	for _, anim := range a.anims {
		if !anim.done {
			kept = append(kept, anim)
		}
	}
	clear(a.anims[len(kept):])
	a.anims = kept
}

// Remove stops the named animation of v. It reports whether one was found.
func (a *Animator) Remove(v *View, name string) bool {
	for i, anim := range a.anims {
		if anim.View == v && anim.Name == name {
			anim.done = true
			a.anims = append(a.anims[:i], a.anims[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAll stops every animation of v.
func (a *Animator) RemoveAll(v *View) {
	a.removeIf(func(o *View) bool { return o == v })
}

func (a *Animator) removeSubtree(sub *View) {
	a.removeIf(func(o *View) bool { return o == sub || sub.IsChild(o, true) })
}

func (a *Animator) removeIf(match func(*View) bool) {
	kept := a.anims[:0]
	for _, anim := range a.anims {
		if match(anim.View) {
			anim.done = true
			continue
		}
		kept = append(kept, anim)
	}
	clear(a.anims[len(kept):])
	a.anims = kept
}

// Clear stops every animation.
func (a *Animator) Clear() {
	for _, anim := range a.anims {
		anim.done = true
	}
	a.anims = nil
}

// Len returns the number of running animations.
func (a *Animator) Len() int { return len(a.anims) }
