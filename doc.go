// Package sashiko implements the geometry engine for a repeating-tile
// needlework pattern canvas.
//
// # Overview
//
// A pattern is authored as line segments ("stitches") on a grid inside one
// tile; the engine repeats each stitch across a tiled artboard, renders it
// with a dashed stitch appearance, and hit-tests pointer input against the
// visible, tiled instances for selection.
//
// # Quick Start
//
//	import "github.com/stitchworks/sashiko"
//
//	geom := sashiko.Geometry{
//		GridSize:  20,
//		TileSize:  sashiko.IVec2{X: 10, Y: 10},
//		TileCount: sashiko.IVec2{X: 4, Y: 4},
//	}
//	p := sashiko.NewPattern(geom)
//	p.Add(sashiko.NewStitch(sashiko.Vec2{X: 2, Y: 2}, sashiko.Vec2{X: 8, Y: 8}, true))
//
//	cv := sashiko.NewSoftCanvas(geom)
//	r := sashiko.NewRenderer(cv, sashiko.DefaultAppearance())
//	instances := r.Redraw(p, nil)
//
//	// instances feed hit-testing until the next Redraw
//	id, ok := sashiko.HitPoint(sashiko.Vec2{X: 120, Y: 60}, instances)
//
// # Architecture
//
// The engine is built from small pure pieces:
//   - Geometry: grid/tile/artboard derived sizes
//   - TileInstances: per-stitch tile repetition with boundary handling
//   - StitchDash: dash/gap computation per size class
//   - Renderer: strokes instances onto a Canvas, returns the instance cache
//   - NormalizeSegment: authored segments to tile-relative coordinates
//   - HitPoint / HitRect: selection against the instance cache
//
// Rendering goes through the Canvas interface; SoftCanvas is the software
// raster implementation and RecordingCanvas a headless fake for tests.
//
// # Coordinate System
//
// Pattern coordinates are in grid cells; pixel coordinates have the origin
// at the canvas top-left, X increasing right, Y increasing down. The canvas
// is the artboard plus one tile of margin on every side.
package sashiko
