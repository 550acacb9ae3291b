package sashiko

import (
	"math"
	"testing"
)

func TestNewDash(t *testing.T) {
	tests := []struct {
		name      string
		lengths   []float64
		wantNil   bool
		wantArray []float64
	}{
		{
			name:    "empty input returns nil",
			lengths: []float64{},
			wantNil: true,
		},
		{
			name:    "all zeros returns nil",
			lengths: []float64{0, 0},
			wantNil: true,
		},
		{
			name:      "simple dash-gap pattern",
			lengths:   []float64{5, 3},
			wantArray: []float64{5, 3},
		},
		{
			name:      "negative values become absolute",
			lengths:   []float64{-5, 3},
			wantArray: []float64{5, 3},
		},
		{
			name:      "zero gap is kept",
			lengths:   []float64{5, 0},
			wantArray: []float64{5, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewDash(tt.lengths...)
			if tt.wantNil {
				if got != nil {
					t.Errorf("NewDash() = %v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("NewDash() = nil, want non-nil")
			}
			if len(got.Array) != len(tt.wantArray) {
				t.Fatalf("NewDash().Array length = %d, want %d", len(got.Array), len(tt.wantArray))
			}
			for i, v := range got.Array {
				if v != tt.wantArray[i] {
					t.Errorf("NewDash().Array[%d] = %v, want %v", i, v, tt.wantArray[i])
				}
			}
		})
	}
}

func TestDash_IsDashed(t *testing.T) {
	tests := []struct {
		name string
		dash *Dash
		want bool
	}{
		{name: "nil dash", dash: nil, want: false},
		{name: "valid dash", dash: NewDash(5, 3), want: true},
		{name: "empty array", dash: &Dash{Array: []float64{}}, want: false},
		{name: "all zeros", dash: &Dash{Array: []float64{0, 0}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dash.IsDashed(); got != tt.want {
				t.Errorf("IsDashed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStitchDash(t *testing.T) {
	const tolerance = 1e-9

	tests := []struct {
		name     string
		drawable float64
		raw      float64
		size     StitchSize
		gap      float64
		gridSize float64
		wantNil  bool
		wantDash float64
		wantGap  float64
	}{
		{
			name:     "zero drawable length returns nil",
			drawable: 0, raw: 10, size: SizeSmall, gap: 6, gridSize: 20,
			wantNil: true,
		},
		{
			name:     "negative drawable length returns nil",
			drawable: -2, raw: 4, size: SizeSmall, gap: 6, gridSize: 20,
			wantNil: true,
		},
		{
			name:     "half-cell segment is a single full dash",
			drawable: 4, raw: 10, size: SizeSmall, gap: 6, gridSize: 20,
			wantDash: 4, wantGap: 0,
		},
		{
			name:     "small: two dashes per cell",
			drawable: 194, raw: 200, size: SizeSmall, gap: 6, gridSize: 20,
			// 10 cells * 2 = 20 dashes, 19 gaps: (194 - 114) / 20.
			wantDash: 4, wantGap: 6,
		},
		{
			name:     "medium: one and a half dashes per cell",
			drawable: 194, raw: 200, size: SizeMedium, gap: 6, gridSize: 20,
			// 15 dashes, 14 gaps: (194 - 84) / 15.
			wantDash: 110.0 / 15, wantGap: 6,
		},
		{
			name:     "large: medium count forced even then paired",
			drawable: 194, raw: 200, size: SizeLarge, gap: 6, gridSize: 20,
			// 15 -> 16 dashes -> 8 super-dashes, 7 gaps: (194 - 42) / 8.
			wantDash: 19, wantGap: 6,
		},
		{
			name:     "minimum length reduces dash count",
			drawable: 20, raw: 30, size: SizeSmall, gap: 10, gridSize: 20,
			// 3 dashes give length 0; reduced to 2: (20 - 10) / 2.
			wantDash: 5, wantGap: 10,
		},
		{
			name:     "large pairing collapses to single dash",
			drawable: 24, raw: 30, size: SizeLarge, gap: 6, gridSize: 20,
			// 1.5 cells -> 2 dashes -> 1 super-dash spanning everything.
			wantDash: 24, wantGap: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StitchDash(tt.drawable, tt.raw, tt.size, tt.gap, tt.gridSize)
			if tt.wantNil {
				if got != nil {
					t.Errorf("StitchDash() = %v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("StitchDash() = nil, want non-nil")
			}
			if math.Abs(got.DashLength()-tt.wantDash) > tolerance {
				t.Errorf("DashLength() = %v, want %v", got.DashLength(), tt.wantDash)
			}
			if math.Abs(got.GapLength()-tt.wantGap) > tolerance {
				t.Errorf("GapLength() = %v, want %v", got.GapLength(), tt.wantGap)
			}
		})
	}
}

// dashCount recovers the dash count from a computed pattern over a
// drawable length.
func dashCount(d *Dash, drawable float64) int {
	if d.GapLength() == 0 {
		return 1
	}
	return int(math.Round((drawable + d.GapLength()) / (d.DashLength() + d.GapLength())))
}

func TestStitchDash_Monotonicity(t *testing.T) {
	// For a fixed size class and gap, a longer segment never yields fewer
	// dashes, and dash length never falls below the class floor while more
	// than one dash remains.
	for _, size := range []StitchSize{SizeSmall, SizeMedium, SizeLarge} {
		t.Run(size.String(), func(t *testing.T) {
			const gap = 6.0
			prevCount := 0
			for raw := 20.0; raw <= 600; raw += 10 {
				drawable := raw - gap
				d := StitchDash(drawable, raw, size, gap, 20)
				if d == nil {
					t.Fatalf("StitchDash(raw=%v) = nil, want non-nil", raw)
				}
				count := dashCount(d, drawable)
				if count < prevCount {
					t.Errorf("dash count dropped from %d to %d at raw=%v", prevCount, count, raw)
				}
				prevCount = count
				if count > 1 && d.DashLength() < minDashLength(size) {
					t.Errorf("DashLength() = %v below floor %v at raw=%v", d.DashLength(), minDashLength(size), raw)
				}
			}
		})
	}
}
