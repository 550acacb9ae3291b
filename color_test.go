package sashiko

import (
	"image/color"
	"math"
	"testing"
)

func colorsNear(a, b RGBA) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"short rgb", "#f00", RGBA{R: 1, A: 1}},
		{"short rgba", "#f008", RGBA{R: 1, A: 136.0 / 255}},
		{"long rgb", "#00ff00", RGBA{G: 1, A: 1}},
		{"long rgba", "#0000ff80", RGBA{B: 1, A: 128.0 / 255}},
		{"no hash", "ffffff", RGBA{R: 1, G: 1, B: 1, A: 1}},
		{"uppercase", "#FF0000", RGBA{R: 1, A: 1}},
		{"invalid length", "#ff", RGBA{A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.hex); !colorsNear(got, tt.want) {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestRGBA_Color(t *testing.T) {
	got := RGB(1, 0.5, 0).Color()
	want := color.NRGBA{R: 255, G: 127, B: 0, A: 255}
	if got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
}

func TestRGBA_WithAlpha(t *testing.T) {
	c := White.WithAlpha(0.25)
	if c.R != 1 || c.A != 0.25 {
		t.Errorf("WithAlpha = %v, want white at alpha 0.25", c)
	}
}

func TestRGBA_Lerp(t *testing.T) {
	mid := Black.Lerp(White, 0.5)
	if !colorsNear(mid, RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}) {
		t.Errorf("Lerp = %v, want mid gray", mid)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	if !colorsNear(got, RGBA{R: 1, A: 1}) {
		t.Errorf("FromColor = %v, want opaque red", got)
	}
}
