package geometry

import "testing"

func TestOverlapArea(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want int64
	}{
		{"full overlap", NewRect(0, 0, 10, 10), NewRect(0, 0, 10, 10), 100},
		{"partial overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 15, 15), 25},
		{"flush edge does not overlap", NewRect(0, 0, 10, 10), NewRect(10, 0, 20, 10), 0},
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(20, 20, 30, 30), 0},
		{"contained", NewRect(0, 0, 10, 10), NewRect(2, 2, 8, 8), 36},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := OverlapArea(c.a, c.b); got != c.want {
				t.Errorf("OverlapArea(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
			}
			// Overlap area is symmetric.
			if got := OverlapArea(c.b, c.a); got != c.want {
				t.Errorf("OverlapArea(%v, %v) = %d, want %d", c.b, c.a, got, c.want)
			}
		})
	}
}

func TestRectDerived(t *testing.T) {
	r := NewRect(0, 0, 10, 20)
	if r.Dx() != 10 {
		t.Errorf("Dx() = %d, want 10", r.Dx())
	}
	if r.Dy() != 20 {
		t.Errorf("Dy() = %d, want 20", r.Dy())
	}
	if r.Cx() != 5 {
		t.Errorf("Cx() = %d, want 5", r.Cx())
	}
	if r.Area() != 200 {
		t.Errorf("Area() = %d, want 200", r.Area())
	}
}

func TestFloatRectRoundTrip(t *testing.T) {
	fr := FloatRect{Lx: 1.5, Ly: 2.5, Ux: 10.5, Uy: 20.5}
	b := fr.ToBounds()
	got := FromBounds(b)
	if got != fr {
		t.Errorf("FromBounds(ToBounds(fr)) = %v, want %v", got, fr)
	}
}

func TestNewRectPanicsOnInverted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on inverted rectangle")
		}
	}()
	NewRect(10, 0, 0, 10)
}
