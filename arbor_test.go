package arbor

import "testing"

func TestRectContainsHalfOpen(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Point{50, 40}, true},
		{"top-left corner", Point{10, 20}, true},
		{"right edge", Point{110, 40}, false},
		{"bottom edge", Point{50, 70}, false},
		{"outside left", Point{5, 40}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectIntersectUnion(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{5, 5, 10, 10}
	if got, want := a.Intersect(b), (Rect{5, 5, 5, 5}); got != want {
		t.Errorf("Intersect = %v, want %v", got, want)
	}
	if got, want := a.Union(b), (Rect{0, 0, 15, 15}); got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
	if got := a.Intersect(Rect{20, 20, 5, 5}); !got.IsEmpty() {
		t.Errorf("disjoint Intersect = %v, want empty", got)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty Union = %v, want %v", got, b)
	}
}

func TestRectContainsRect(t *testing.T) {
	outer := Rect{0, 0, 100, 100}
	if !outer.ContainsRect(Rect{10, 10, 20, 20}) {
		t.Error("inner rect not contained")
	}
	if !outer.ContainsRect(outer) {
		t.Error("rect does not contain itself")
	}
	if outer.ContainsRect(Rect{90, 90, 20, 20}) {
		t.Error("overhanging rect contained")
	}
}

func TestRectIntegral(t *testing.T) {
	got := Rect{X: 1.5, Y: 2.2, Width: 3.1, Height: 1}.Integral()
	if want := (Rect{1, 2, 4, 2}); got != want {
		t.Errorf("Integral = %v, want %v", got, want)
	}
}

func TestEventResultConsumed(t *testing.T) {
	tests := []struct {
		r    EventResult
		want bool
	}{
		{EventNotImplemented, false},
		{EventNotHandled, false},
		{EventHandled, true},
		{EventHandledNoCapture, true},
	}
	for _, tt := range tests {
		if got := tt.r.Consumed(); got != tt.want {
			t.Errorf("%v.Consumed() = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestColorRGBAPremultiplied(t *testing.T) {
	r, g, b, a := Color{R: 1, G: 0.5, B: 0, A: 0.5}.RGBA()
	if a != 0x7fff {
		t.Errorf("a = %#x, want 0x7fff", a)
	}
	if r != 0x7fff || b != 0 {
		t.Errorf("r, b = %#x, %#x, want 0x7fff, 0", r, b)
	}
	if g == 0 || g >= r {
		t.Errorf("g = %#x, want between 0 and r", g)
	}
}
