package sashiko

import (
	"math"
	"testing"
)

func TestVec2_Arithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add = %v, want {4 2}", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub = %v, want {2 6}", got)
	}
	if got := a.Mul(2); got != V(6, 8) {
		t.Errorf("Mul = %v, want {6 8}", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v, want -5", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := a.Distance(V(0, 0)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestVec2_Normalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("normalized length = %v, want 1", n.Length())
	}
	if got := V(0, 0).Normalize(); got != V(0, 0) {
		t.Errorf("zero vector normalized to %v, want zero", got)
	}
}

func TestVec2_Perp(t *testing.T) {
	if got := V(1, 0).Perp(); got != V(0, 1) {
		t.Errorf("Perp = %v, want {0 1}", got)
	}
}

func TestVec2_Lerp(t *testing.T) {
	a, b := V(0, 0), V(10, 20)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != V(5, 10) {
		t.Errorf("Lerp(0.5) = %v, want {5 10}", got)
	}
}

func TestNormalizedRect(t *testing.T) {
	r := NormalizedRect(V(10, 2), V(3, 8))
	if r.Min != V(3, 2) || r.Max != V(10, 8) {
		t.Errorf("NormalizedRect = %v, want Min {3 2} Max {10 8}", r)
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{Min: V(0, 0), Max: V(10, 10)}
	if !r.Contains(V(5, 5)) {
		t.Error("interior point not contained")
	}
	if !r.Contains(V(10, 0)) {
		t.Error("edge point not contained, want inclusive bounds")
	}
	if r.Contains(V(11, 5)) {
		t.Error("outside point contained")
	}
}

func TestRect_Overlaps(t *testing.T) {
	a := Rect{Min: V(0, 0), Max: V(10, 10)}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", Rect{Min: V(5, 5), Max: V(15, 15)}, true},
		{"touching edge", Rect{Min: V(10, 0), Max: V(20, 10)}, true},
		{"disjoint", Rect{Min: V(11, 11), Max: V(20, 20)}, false},
		{"contained", Rect{Min: V(2, 2), Max: V(8, 8)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}
