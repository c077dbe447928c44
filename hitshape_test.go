package arbor

import "testing"

func TestHitShapes(t *testing.T) {
	ell := HitEllipse{Bounds: Rect{Width: 100, Height: 40}}
	// An L: the bottom-right square is missing.
	lshape := HitPolygon{{0, 0}, {50, 0}, {50, 25}, {25, 25}, {25, 50}, {0, 50}}
	star := HitPolygon{{50, 0}, {80, 100}, {0, 35}, {100, 35}, {20, 100}}

	tests := []struct {
		name  string
		shape HitShape
		p     Point
		want  bool
	}{
		{"rect inside", HitRect{X: 10, Y: 20, Width: 100, Height: 50}, Point{50, 40}, true},
		{"rect top-left edge", HitRect{X: 10, Y: 20, Width: 100, Height: 50}, Point{10, 20}, true},
		{"rect right edge", HitRect{X: 10, Y: 20, Width: 100, Height: 50}, Point{110, 40}, false},
		{"circle centre", HitCircle{Center: Point{50, 50}, Radius: 25}, Point{50, 50}, true},
		{"circle circumference", HitCircle{Center: Point{50, 50}, Radius: 25}, Point{75, 50}, true},
		{"circle diagonal", HitCircle{Center: Point{50, 50}, Radius: 25}, Point{70, 70}, false},
		{"ellipse centre", ell, Point{50, 20}, true},
		{"ellipse wide end", ell, Point{95, 20}, true},
		{"ellipse corner", ell, Point{5, 5}, false},
		{"empty ellipse", HitEllipse{}, Point{}, false},
		{"L arm", lshape, Point{10, 40}, true},
		{"L notch", lshape, Point{40, 40}, false},
		{"star point", star, Point{50, 10}, true},
		{"star centre hole", star, Point{50, 50}, false},
		{"degenerate polygon", HitPolygon{{0, 0}, {10, 0}}, Point{5, 0}, false},
		{"func", HitFunc(func(p Point) bool { return p.X > p.Y }), Point{3, 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestHitPolygonWindingIndependent(t *testing.T) {
	tri := HitPolygon{{0, 0}, {100, 0}, {0, 100}}
	rev := HitPolygon{{0, 100}, {100, 0}, {0, 0}}
	for _, p := range []Point{{20, 20}, {80, 80}, {-1, 5}} {
		if tri.Contains(p) != rev.Contains(p) {
			t.Errorf("winding changed the result at %v", p)
		}
	}
}
