package layout

import "testing"

func TestNewRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.X != 5 || r.Y != 10 {
		t.Errorf("NewRect() origin = (%g, %g), want (5, 10)", r.X, r.Y)
	}
	if r.Width != 20 || r.Height != 15 {
		t.Errorf("NewRect() size = %gx%g, want 20x15", r.Width, r.Height)
	}
	if got := r.TopLeft(); got != (Point{X: 5, Y: 10}) {
		t.Errorf("TopLeft() = %+v, want {5 10}", got)
	}
	if got := r.Size(); got != NewSize(20, 15) {
		t.Errorf("Size() = %v, want (20, 15)", got)
	}
}

func TestRect_RightBottom(t *testing.T) {
	type tc struct {
		rect   Rect
		right  float64
		bottom float64
	}

	tests := map[string]tc{
		"standard rect": {
			rect:   NewRect(5, 10, 20, 15),
			right:  25,
			bottom: 25,
		},
		"negative position": {
			rect:   NewRect(-5, -5, 10, 10),
			right:  5,
			bottom: 5,
		},
		"zero size": {
			rect:   NewRect(5, 5, 0, 0),
			right:  5,
			bottom: 5,
		},
		"fractional": {
			rect:   NewRect(0.5, 0.25, 10, 10),
			right:  10.5,
			bottom: 10.25,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %g, want %g", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %g, want %g", got, tt.bottom)
			}
		})
	}
}

func TestRect_Translate(t *testing.T) {
	got := NewRect(10, 20, 30, 40).Translate(-5, 15)
	if want := NewRect(5, 35, 30, 40); got != want {
		t.Errorf("Translate(-5, 15) = %v, want %v", got, want)
	}
}

func TestRect_Intersect(t *testing.T) {
	type tc struct {
		a, b     Rect
		expected Rect
	}

	tests := map[string]tc{
		"overlapping rects": {
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(10, 10, 20, 20),
			expected: NewRect(10, 10, 10, 10),
		},
		"one inside other": {
			a:        NewRect(0, 0, 100, 100),
			b:        NewRect(20, 20, 30, 30),
			expected: NewRect(20, 20, 30, 30),
		},
		"adjacent horizontal (no overlap)": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: Rect{},
		},
		"disjoint": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(50, 50, 10, 10),
			expected: Rect{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.expected {
				t.Errorf("Intersect() = %v, want %v", got, tt.expected)
			}
			if got := tt.b.Intersect(tt.a); got != tt.expected {
				t.Errorf("Intersect() (reversed) = %v, want %v", got, tt.expected)
			}
			if got, want := tt.a.Intersects(tt.b), !tt.expected.IsEmpty(); got != want {
				t.Errorf("Intersects() = %v, want %v", got, want)
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	type tc struct {
		a, b     Rect
		expected Rect
	}

	tests := map[string]tc{
		"overlapping rects": {
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(10, 10, 20, 20),
			expected: NewRect(0, 0, 30, 30),
		},
		"disjoint rects": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(20, 20, 10, 10),
			expected: NewRect(0, 0, 30, 30),
		},
		"one empty": {
			a:        NewRect(10, 10, 20, 20),
			b:        Rect{},
			expected: NewRect(10, 10, 20, 20),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.expected {
				t.Errorf("Union() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRect_IsFinite(t *testing.T) {
	if !NewRect(0, 0, 10, 10).IsFinite() {
		t.Error("finite rect reported as not finite")
	}
	if NewRect(0, 0, InfiniteSize.Width, 10).IsFinite() {
		t.Error("infinite width reported as finite")
	}
	if NewRect(UnsetSize.Width, 0, 10, 10).IsFinite() {
		t.Error("NaN x reported as finite")
	}
}

func TestPoint_Add(t *testing.T) {
	got := Point{X: 10, Y: 20}.Add(ThicknessLTRB(1.5, 2, 0, 0).TopLeft())
	if want := (Point{X: 11.5, Y: 22}); got != want {
		t.Errorf("Add() = %+v, want %+v", got, want)
	}
	if r := RectFrom(got, NewSize(3, 4)); r != NewRect(11.5, 22, 3, 4) {
		t.Errorf("RectFrom() = %v", r)
	}
}
