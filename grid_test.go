package sashiko

import (
	"errors"
	"testing"
)

// testGeometry is the stock configuration used across the package tests:
// 20px grid cells, 10x10-cell tiles, a 4x4-tile artboard. The canvas is
// 1200x1200px with the artboard at (200,200)-(1000,1000).
func testGeometry() Geometry {
	return Geometry{
		GridSize:  20,
		TileSize:  IVec2{X: 10, Y: 10},
		TileCount: IVec2{X: 4, Y: 4},
	}
}

func TestGeometry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		geom    Geometry
		wantErr bool
	}{
		{
			name: "valid configuration",
			geom: testGeometry(),
		},
		{
			name:    "zero grid size",
			geom:    Geometry{GridSize: 0, TileSize: IVec2{X: 10, Y: 10}, TileCount: IVec2{X: 4, Y: 4}},
			wantErr: true,
		},
		{
			name:    "negative grid size",
			geom:    Geometry{GridSize: -5, TileSize: IVec2{X: 10, Y: 10}, TileCount: IVec2{X: 4, Y: 4}},
			wantErr: true,
		},
		{
			name:    "zero tile size component",
			geom:    Geometry{GridSize: 20, TileSize: IVec2{X: 0, Y: 10}, TileCount: IVec2{X: 4, Y: 4}},
			wantErr: true,
		},
		{
			name:    "zero tile count component",
			geom:    Geometry{GridSize: 20, TileSize: IVec2{X: 10, Y: 10}, TileCount: IVec2{X: 4, Y: 0}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.geom.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidGeometry) {
					t.Errorf("Validate() = %v, want ErrInvalidGeometry", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestGeometry_DerivedSizes(t *testing.T) {
	g := testGeometry()

	if got := g.TilePixelSize(); got != (Vec2{X: 200, Y: 200}) {
		t.Errorf("TilePixelSize() = %v, want {200 200}", got)
	}
	if got := g.ArtboardPixelSize(); got != (Vec2{X: 800, Y: 800}) {
		t.Errorf("ArtboardPixelSize() = %v, want {800 800}", got)
	}
	if got := g.ArtboardOffset(); got != (Vec2{X: 200, Y: 200}) {
		t.Errorf("ArtboardOffset() = %v, want {200 200}", got)
	}
	if got := g.CanvasPixelSize(); got != (Vec2{X: 1200, Y: 1200}) {
		t.Errorf("CanvasPixelSize() = %v, want {1200 1200}", got)
	}
	if got := g.TilesAcross(); got != (IVec2{X: 4, Y: 4}) {
		t.Errorf("TilesAcross() = %v, want {4 4}", got)
	}
}

func TestGeometry_DerivedSizesPerAxis(t *testing.T) {
	// Tile size and count may differ per axis.
	g := Geometry{GridSize: 10, TileSize: IVec2{X: 6, Y: 4}, TileCount: IVec2{X: 3, Y: 5}}

	if got := g.TilePixelSize(); got != (Vec2{X: 60, Y: 40}) {
		t.Errorf("TilePixelSize() = %v, want {60 40}", got)
	}
	if got := g.ArtboardPixelSize(); got != (Vec2{X: 180, Y: 200}) {
		t.Errorf("ArtboardPixelSize() = %v, want {180 200}", got)
	}
	if got := g.TilesAcross(); got != (IVec2{X: 3, Y: 5}) {
		t.Errorf("TilesAcross() = %v, want {3 5}", got)
	}
}

func TestGeometry_ArtboardRect(t *testing.T) {
	g := testGeometry()
	art := g.ArtboardRect()
	if art.Min != (Vec2{X: 200, Y: 200}) || art.Max != (Vec2{X: 1000, Y: 1000}) {
		t.Errorf("ArtboardRect() = %v, want {200 200}-{1000 1000}", art)
	}
}
