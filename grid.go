package sashiko

import (
	"fmt"
	"math"
)

// marginTiles is the margin around the artboard, in tiles per side. The
// margin lets boundary-crossing stitches bleed past the artboard edge and
// gives the author room to place points slightly outside the tileable area.
const marginTiles = 1

// Geometry is the grid/tile configuration of a pattern. All derived sizes
// (tile pixel size, artboard, canvas) are computed on demand and never
// stored, so a configuration edit can never leave them stale.
type Geometry struct {
	// GridSize is the pixel size of one grid cell. Must be > 0.
	GridSize float64

	// TileSize is the size of one repeating tile in grid cells per axis.
	// Each component must be >= 1.
	TileSize IVec2

	// TileCount is the number of tiles composing the artboard per axis.
	// Each component must be >= 1.
	TileCount IVec2
}

// Validate checks the configuration invariants. It returns an error
// wrapping ErrInvalidGeometry naming the offending field; the rest of the
// engine assumes Validate has passed.
func (g Geometry) Validate() error {
	if g.GridSize <= 0 || math.IsNaN(g.GridSize) || math.IsInf(g.GridSize, 0) {
		return fmt.Errorf("%w: grid size %v, must be > 0", ErrInvalidGeometry, g.GridSize)
	}
	if g.TileSize.X < 1 || g.TileSize.Y < 1 {
		return fmt.Errorf("%w: tile size %+v, components must be >= 1", ErrInvalidGeometry, g.TileSize)
	}
	if g.TileCount.X < 1 || g.TileCount.Y < 1 {
		return fmt.Errorf("%w: tile count %+v, components must be >= 1", ErrInvalidGeometry, g.TileCount)
	}
	return nil
}

// TilePixelSize returns the pixel size of one tile per axis.
func (g Geometry) TilePixelSize() Vec2 {
	return Vec2{
		X: float64(g.TileSize.X) * g.GridSize,
		Y: float64(g.TileSize.Y) * g.GridSize,
	}
}

// ArtboardPixelSize returns the pixel size of the artboard, the rectangle
// containing all repeated tiles.
func (g Geometry) ArtboardPixelSize() Vec2 {
	tile := g.TilePixelSize()
	return Vec2{
		X: float64(g.TileCount.X) * tile.X,
		Y: float64(g.TileCount.Y) * tile.Y,
	}
}

// ArtboardOffset returns the pixel position of the artboard's top-left
// corner inside the canvas, i.e. the margin width per axis.
func (g Geometry) ArtboardOffset() Vec2 {
	return g.TilePixelSize().Mul(marginTiles)
}

// CanvasPixelSize returns the pixel size of the full drawing surface:
// the artboard plus the margin on every side.
func (g Geometry) CanvasPixelSize() Vec2 {
	art := g.ArtboardPixelSize()
	margin := g.TilePixelSize().Mul(2 * marginTiles)
	return art.Add(margin)
}

// TilesAcross returns how many tiles cover the artboard per axis, by
// ceiling division of the artboard by the tile size. When the artboard does
// not divide evenly the last tile is clipped; outer (margin) tile indices
// then range from -1 to TilesAcross inclusive.
func (g Geometry) TilesAcross() IVec2 {
	art := g.ArtboardPixelSize()
	tile := g.TilePixelSize()
	return IVec2{
		X: int(math.Ceil(art.X / tile.X)),
		Y: int(math.Ceil(art.Y / tile.Y)),
	}
}

// CanvasRect returns the canvas bounds as a pixel rectangle.
func (g Geometry) CanvasRect() Rect {
	return Rect{Max: g.CanvasPixelSize()}
}

// ArtboardRect returns the artboard bounds as a pixel rectangle inside the
// canvas.
func (g Geometry) ArtboardRect() Rect {
	off := g.ArtboardOffset()
	return Rect{Min: off, Max: off.Add(g.ArtboardPixelSize())}
}
