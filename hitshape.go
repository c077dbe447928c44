package arbor

// HitShape narrows a view's hit area inside its mouseable area. Points are
// relative to the view's top-left corner.
type HitShape interface {
	Contains(p Point) bool
}

// HitRect restricts hits to a sub-rectangle, e.g. the grip of a slider.
type HitRect Rect

func (r HitRect) Contains(p Point) bool { return Rect(r).Contains(p) }

// HitCircle accepts points inside or on the circle.
type HitCircle struct {
	Center Point
	Radius float64
}

func (c HitCircle) Contains(p Point) bool {
	d := p.Sub(c.Center)
	return d.X*d.X+d.Y*d.Y <= c.Radius*c.Radius
}

// HitEllipse accepts points inside the ellipse inscribed in Bounds.
type HitEllipse struct {
	Bounds Rect
}

func (e HitEllipse) Contains(p Point) bool {
	rx, ry := e.Bounds.Width/2, e.Bounds.Height/2
	if rx <= 0 || ry <= 0 {
		return false
	}
	nx := (p.X - e.Bounds.X - rx) / rx
	ny := (p.Y - e.Bounds.Y - ry) / ry
	return nx*nx+ny*ny <= 1
}

// HitPolygon is a simple polygon, convex or not. Hits use the even-odd
// rule, so a self-overlapping outline leaves holes.
type HitPolygon []Point

func (poly HitPolygon) Contains(p Point) bool {
	if len(poly) < 3 {
		return false
	}
	inside := false
	j := len(poly) - 1
	for i, a := range poly {
		b := poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// HitFunc adapts a function to HitShape.
type HitFunc func(p Point) bool

func (f HitFunc) Contains(p Point) bool { return f(p) }
