package sashiko

import "math"

// snapTolerancePx is the maximum pixel distance between a click and the
// grid intersection it snaps to. Clicks farther away place no point.
const snapTolerancePx = 10.0

// SnapToGrid snaps a canvas pixel position to the nearest grid
// intersection, returned in canvas grid coordinates (margin included).
// It reports false when no intersection lies within the snap tolerance.
func SnapToGrid(px Vec2, g Geometry) (IVec2, bool) {
	col := math.Round(px.X / g.GridSize)
	row := math.Round(px.Y / g.GridSize)
	snapped := Vec2{X: col * g.GridSize, Y: row * g.GridSize}
	if px.Distance(snapped) > snapTolerancePx {
		return IVec2{}, false
	}
	return IVec2{X: int(col), Y: int(row)}, true
}

// NormalizeSegment converts a completed two-click segment, given as snapped
// canvas grid coordinates, into stitch coordinates.
//
// Identical points cancel the segment, and a segment outside the drawable
// area (the artboard expanded by one tile on every side) is discarded; both
// report ok=false. When repeat is requested and the segment touches the
// artboard, the coordinates are re-expressed relative to the segment's home
// tile and repeat=true is returned: a line running along a tile boundary
// normalizes modulo the tile size so every repeat of that boundary maps to
// coordinate 0, and any other line anchors to the tile of an endpoint not
// itself sitting on a boundary (the end point's tile wins when the start is
// on a boundary), so inward-drawn lines belong to the tile they visually
// start from. Otherwise the artboard-absolute coordinates are kept and
// repeat=false.
//
// Rendering the result for its home tile reproduces the authored pixel
// positions exactly.
func NormalizeSegment(a, b IVec2, g Geometry, repeat bool) (start, end Vec2, rep, ok bool) {
	if a == b {
		return Vec2{}, Vec2{}, false, false
	}

	// Canvas grid to artboard-relative grid coordinates.
	margin := Vec2{
		X: float64(marginTiles * g.TileSize.X),
		Y: float64(marginTiles * g.TileSize.Y),
	}
	start = a.Vec2().Sub(margin)
	end = b.Vec2().Sub(margin)

	tileX := float64(g.TileSize.X)
	tileY := float64(g.TileSize.Y)
	artboard := Rect{Max: Vec2{
		X: float64(g.TileCount.X) * tileX,
		Y: float64(g.TileCount.Y) * tileY,
	}}
	drawable := Rect{
		Min: Vec2{X: -tileX, Y: -tileY},
		Max: artboard.Max.Add(Vec2{X: tileX, Y: tileY}),
	}

	seg := NormalizedRect(start, end)
	if !seg.Overlaps(drawable) {
		return Vec2{}, Vec2{}, false, false
	}

	if !repeat || !seg.Overlaps(artboard) {
		return start, end, false, true
	}

	start.X, end.X = normalizeAxis(start.X, end.X, tileX)
	start.Y, end.Y = normalizeAxis(start.Y, end.Y, tileY)
	return start, end, true, true
}

// normalizeAxis re-expresses one axis of a segment relative to its home
// tile. A boundary-running pair (equal values on a tile multiple) maps to
// coordinate 0; otherwise the home tile is the floor-division tile of an
// endpoint not on a boundary, preferring the end point when the start sits
// on one.
func normalizeAxis(va, vb, tile float64) (float64, float64) {
	if math.Abs(va-vb) < geomEps && onTileBoundary(va, tile) {
		return 0, 0
	}

	home := math.Floor(va / tile)
	if onTileBoundary(va, tile) && !onTileBoundary(vb, tile) {
		home = math.Floor(vb / tile)
	}
	return va - home*tile, vb - home*tile
}

// onTileBoundary reports whether a grid coordinate lies on a tile multiple.
func onTileBoundary(v, tile float64) bool {
	m := math.Abs(math.Mod(v, tile))
	return m < geomEps || math.Abs(m-tile) < geomEps
}
