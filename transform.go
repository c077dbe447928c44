package arbor

import "math"

// Transform is a 2D affine matrix stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Transform [6]float64

// IdentityTransform leaves points unchanged.
var IdentityTransform = Transform{1, 0, 0, 1, 0, 0}

// Translation returns a pure translation.
func Translation(tx, ty float64) Transform { return Transform{1, 0, 0, 1, tx, ty} }

// Scaling returns a pure scale about the origin.
func Scaling(sx, sy float64) Transform { return Transform{sx, 0, 0, sy, 0, 0} }

// Rotation returns a rotation by angle radians about the origin.
func Rotation(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	return Transform{cos, sin, -sin, cos, 0, 0}
}

// ComposeTransform builds translate · scale · rotate, so points are rotated
// first, then scaled, then translated.
func ComposeTransform(tx, ty, sx, sy, angle float64) Transform {
	return Translation(tx, ty).Multiply(Scaling(sx, sy)).Multiply(Rotation(angle))
}

// Multiply returns t * o, which applies o first and then t.
func (t Transform) Multiply(o Transform) Transform {
	return Transform{
		t[0]*o[0] + t[2]*o[1],
		t[1]*o[0] + t[3]*o[1],
		t[0]*o[2] + t[2]*o[3],
		t[1]*o[2] + t[3]*o[3],
		t[0]*o[4] + t[2]*o[5] + t[4],
		t[1]*o[4] + t[3]*o[5] + t[5],
	}
}

// Inverse returns the inverse matrix, or the identity when t is singular.
func (t Transform) Inverse() Transform {
	det := t[0]*t[3] - t[2]*t[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityTransform
	}
	invDet := 1.0 / det
	a := t[3] * invDet
	b := -t[1] * invDet
	c := -t[2] * invDet
	d := t[0] * invDet
	return Transform{
		a, b, c, d,
		-(a*t[4] + c*t[5]),
		-(b*t[4] + d*t[5]),
	}
}

// IsIdentity reports whether t leaves every point unchanged.
func (t Transform) IsIdentity() bool { return t == IdentityTransform }

// Apply maps a point through t.
func (t Transform) Apply(p Point) Point {
	return Point{t[0]*p.X + t[2]*p.Y + t[4], t[1]*p.X + t[3]*p.Y + t[5]}
}

// ApplyVector maps a displacement through t, ignoring translation.
func (t Transform) ApplyVector(dx, dy float64) (float64, float64) {
	return t[0]*dx + t[2]*dy, t[1]*dx + t[3]*dy
}

// ApplyRect maps the four corners of r through t and returns their bounding
// box.
func (t Transform) ApplyRect(r Rect) Rect {
	if t.IsIdentity() {
		return r
	}
	p0 := t.Apply(Point{r.X, r.Y})
	p1 := t.Apply(Point{r.Right(), r.Y})
	p2 := t.Apply(Point{r.X, r.Bottom()})
	p3 := t.Apply(Point{r.Right(), r.Bottom()})
	return RectFromEdges(
		math.Min(math.Min(p0.X, p1.X), math.Min(p2.X, p3.X)),
		math.Min(math.Min(p0.Y, p1.Y), math.Min(p2.Y, p3.Y)),
		math.Max(math.Max(p0.X, p1.X), math.Max(p2.X, p3.X)),
		math.Max(math.Max(p0.Y, p1.Y), math.Max(p2.Y, p3.Y)),
	)
}
