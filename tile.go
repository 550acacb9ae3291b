package sashiko

import "math"

// geomEps is the positional tolerance, in grid units, for boundary and
// crossing classification.
const geomEps = 1e-6

// touchingMaxCells bounds the "just touching" rule: a segment no longer
// than this many grid cells with an endpoint outside the tile is treated as
// touching the boundary, not crossing it. Short diagonal segments anchored
// at a corner would otherwise leak into margin tiles.
const touchingMaxCells = 1.5

// RenderedInstance is one tile placement of a stitch in absolute canvas
// pixels. The renderer rebuilds the full instance list on every redraw and
// the hit tester consumes it until the next redraw invalidates it; nothing
// persists instances.
type RenderedInstance struct {
	StitchID string
	Start    Vec2
	End      Vec2
}

// Bounds returns the instance's endpoint bounding box.
func (ri RenderedInstance) Bounds() Rect {
	return NormalizedRect(ri.Start, ri.End)
}

// axisClass captures how a stitch relates to the tile bounds on one axis.
type axisClass struct {
	lo, hi   float64
	crossNeg bool // extends past the tile's low edge
	crossPos bool // extends past the tile's high edge
	boundary bool // runs along a tile edge on this axis
}

// classifyAxis classifies one axis of a repeated stitch. tile is the tile
// size on this axis in grid cells, lenCells the full segment length, and
// otherExtent the segment's extent on the other axis. A boundary-runner has
// zero extent on this axis, sits exactly on a tile edge, and has nonzero
// extent on the other axis (a single corner point does not qualify).
func classifyAxis(a, b, tile, lenCells, otherExtent float64) axisClass {
	c := axisClass{lo: math.Min(a, b), hi: math.Max(a, b)}

	if c.hi-c.lo < geomEps {
		onEdge := math.Abs(c.lo) < geomEps || math.Abs(c.lo-tile) < geomEps
		c.boundary = onEdge && otherExtent > geomEps
		return c
	}

	if lenCells > touchingMaxCells {
		c.crossNeg = c.lo < -geomEps
		c.crossPos = c.hi > tile+geomEps
	}
	return c
}

// axisTileRange returns the inclusive tile-index range a stitch occupies on
// one axis, out of the candidate range [-1, n] (one ring of margin tiles).
//
// A stitch belongs to exactly one home tile per axis; the range is derived
// from that principle rather than per-corner special cases:
//   - interior segments repeat once per artboard tile, no margin copies
//   - boundary-runners also appear in the low-side margin tile, never the
//     high-side one, so every repeat of the shared edge is drawn exactly once
//   - crossing segments bleed into the margin tiles on the sides they cross
//     toward; a segment anchored at a tile edge and extending entirely
//     outward is shifted one index over, which both avoids the doubled
//     corner and keeps the last interior tile's incoming portion drawn
func axisTileRange(c axisClass, tile float64, n int) (int, int) {
	switch {
	case c.boundary:
		return -1, n - 1
	case c.crossNeg && c.hi <= geomEps:
		// Entirely on the low side of its anchor edge.
		return 0, n
	case c.crossPos && c.lo >= tile-geomEps:
		// Entirely at or beyond the high edge (mirror case; normalization
		// re-homes these, so it is rarely hit).
		return -1, n - 1
	case c.crossNeg || c.crossPos:
		return -1, n
	default:
		return 0, n - 1
	}
}

// TileInstances enumerates every tile placement of a stitch as absolute
// pixel endpoints. For repeated stitches the per-axis eligibility above is
// the only boundary logic; the renderer and the hit tester both work from
// this output, so drawing and selection can never disagree about where a
// stitch appears.
//
// Non-repeated stitches yield exactly one artboard-absolute instance.
// Zero-length stitches yield nothing. Instances whose bounding box lies
// entirely outside the canvas are dropped.
func TileInstances(st *Stitch, g Geometry) []RenderedInstance {
	if st.Start.Distance(st.End) < geomEps {
		return nil
	}

	canvas := g.CanvasRect()
	off := g.ArtboardOffset()

	if !st.Repeat {
		inst := RenderedInstance{
			StitchID: st.ID,
			Start:    off.Add(st.Start.Mul(g.GridSize)),
			End:      off.Add(st.End.Mul(g.GridSize)),
		}
		if !inst.Bounds().Overlaps(canvas) {
			return nil
		}
		return []RenderedInstance{inst}
	}

	tileX := float64(g.TileSize.X)
	tileY := float64(g.TileSize.Y)
	lenCells := st.Start.Distance(st.End)

	cx := classifyAxis(st.Start.X, st.End.X, tileX, lenCells, math.Abs(st.Start.Y-st.End.Y))
	cy := classifyAxis(st.Start.Y, st.End.Y, tileY, lenCells, math.Abs(st.Start.X-st.End.X))

	n := g.TilesAcross()
	colMin, colMax := axisTileRange(cx, tileX, n.X)
	rowMin, rowMax := axisTileRange(cy, tileY, n.Y)

	var out []RenderedInstance
	for row := rowMin; row <= rowMax; row++ {
		for col := colMin; col <= colMax; col++ {
			inst := RenderedInstance{
				StitchID: st.ID,
				Start: Vec2{
					X: off.X + (st.Start.X+float64(col)*tileX)*g.GridSize,
					Y: off.Y + (st.Start.Y+float64(row)*tileY)*g.GridSize,
				},
				End: Vec2{
					X: off.X + (st.End.X+float64(col)*tileX)*g.GridSize,
					Y: off.Y + (st.End.Y+float64(row)*tileY)*g.GridSize,
				},
			}
			if !inst.Bounds().Overlaps(canvas) {
				continue
			}
			out = append(out, inst)
		}
	}
	return out
}
