package sashiko

import "math"

// gridDotSize is the side of the square dots marking grid intersections.
const gridDotSize = 2.0

// Renderer strokes a pattern's tiled stitch instances onto a Canvas.
//
// A Renderer holds no per-frame state: Redraw returns the instance cache
// for the frame it drew, and the caller hands that slice to the hit tester.
// The previous frame's cache is invalid the moment Redraw is called again.
type Renderer struct {
	canvas     Canvas
	appearance Appearance
}

// NewRenderer creates a renderer drawing onto the given canvas.
func NewRenderer(c Canvas, app Appearance) *Renderer {
	return &Renderer{canvas: c, appearance: app}
}

// SetAppearance replaces the renderer's appearance configuration.
// Takes effect on the next Redraw.
func (r *Renderer) SetAppearance(app Appearance) {
	r.appearance = app
}

// Redraw repaints the whole surface: background, grid dots, tile and
// artboard outlines, then every tile instance of every stitch, in pattern
// order. Selected stitches stroke in HighlightColor.
//
// The returned slice holds one entry per instance that was actually
// stroked (instances whose dash pattern degenerates are skipped) and is
// the sole input for hit-testing until the next Redraw.
func (r *Renderer) Redraw(p *Pattern, sel Selection) []RenderedInstance {
	g := p.Geometry
	app := r.appearance

	r.canvas.Clear(app.Background)
	if app.GridVisible {
		r.drawGridDots(g)
	}
	r.drawTileOutlines(g)
	r.drawArtboardOutline(g)

	var skipped int
	instances := make([]RenderedInstance, 0, len(p.Stitches))
	for _, st := range p.Stitches {
		color := app.StitchColor
		if st.Color != nil {
			color = *st.Color
		}
		if sel.Has(st.ID) {
			color = HighlightColor
		}

		for _, inst := range TileInstances(st, g) {
			if !r.strokeInstance(inst, st, g, color) {
				skipped++
				continue
			}
			instances = append(instances, inst)
		}
	}

	Logger().Debug("redraw",
		"stitches", len(p.Stitches),
		"instances", len(instances),
		"skipped", skipped)
	return instances
}

// strokeInstance draws one tile placement. It reports whether anything was
// stroked; a degenerate dash pattern skips the instance.
func (r *Renderer) strokeInstance(inst RenderedInstance, st *Stitch, g Geometry, color RGBA) bool {
	raw := inst.Start.Distance(inst.End)
	inset := st.Gap / 2
	drawable := raw - 2*inset

	dash := StitchDash(drawable, raw, st.Size, st.Gap, g.GridSize)
	if dash == nil {
		return false
	}
	width := st.Width.Pixels()

	if st.Curvature != 0 {
		return r.strokeArcInstance(inst, st, inset, width, dash, color)
	}

	// Shrink both ends so the visual gap centers on the grid dot.
	dir := inst.End.Sub(inst.Start).Normalize()
	a := inst.Start.Add(dir.Mul(inset))
	b := inst.End.Sub(dir.Mul(inset))
	r.canvas.StrokeSegment(a, b, width, dash, color)
	return true
}

// strokeArcInstance draws one placement as a circular arc with the stitch's
// bulge, trimming the angular span by inset/radius at each end.
func (r *Renderer) strokeArcInstance(inst RenderedInstance, st *Stitch, inset, width float64, dash *Dash, color RGBA) bool {
	center, radius, a1, sweep, ok := arcThrough(inst.Start, inst.End, st.Curvature)
	if !ok {
		return false
	}

	trim := inset / radius
	if math.Abs(sweep) <= 2*trim {
		return false
	}
	t := math.Copysign(trim, sweep)
	r.canvas.StrokeArc(center, radius, a1+t, a1+sweep-t, width, dash, color)
	return true
}

func (r *Renderer) drawGridDots(g Geometry) {
	size := g.CanvasPixelSize()
	cols := int(math.Floor(size.X/g.GridSize + geomEps))
	rows := int(math.Floor(size.Y/g.GridSize + geomEps))
	half := gridDotSize / 2
	for row := 0; row <= rows; row++ {
		for col := 0; col <= cols; col++ {
			p := Vec2{X: float64(col) * g.GridSize, Y: float64(row) * g.GridSize}
			r.canvas.FillRect(Rect{
				Min: p.Sub(Vec2{X: half, Y: half}),
				Max: p.Add(Vec2{X: half, Y: half}),
			}, r.appearance.GridColor)
		}
	}
}

func (r *Renderer) drawTileOutlines(g Geometry) {
	art := g.ArtboardRect()
	tile := g.TilePixelSize()
	n := g.TilesAcross()
	for col := 1; col < n.X; col++ {
		x := art.Min.X + float64(col)*tile.X
		r.canvas.StrokeSegment(Vec2{X: x, Y: art.Min.Y}, Vec2{X: x, Y: art.Max.Y}, 1, nil, r.appearance.TileOutline)
	}
	for row := 1; row < n.Y; row++ {
		y := art.Min.Y + float64(row)*tile.Y
		r.canvas.StrokeSegment(Vec2{X: art.Min.X, Y: y}, Vec2{X: art.Max.X, Y: y}, 1, nil, r.appearance.TileOutline)
	}
}

func (r *Renderer) drawArtboardOutline(g Geometry) {
	art := g.ArtboardRect()
	c := r.appearance.ArtboardOutline
	corners := [4]Vec2{
		art.Min,
		{X: art.Max.X, Y: art.Min.Y},
		art.Max,
		{X: art.Min.X, Y: art.Max.Y},
	}
	for i := range corners {
		r.canvas.StrokeSegment(corners[i], corners[(i+1)%4], 1, nil, c)
	}
}

// arcThrough computes the circle through a chord with a sagitta bulge.
// curvature is the signed bulge as a percentage of the chord length;
// positive bulges toward the chord normal's counter-clockwise side.
// The returned sweep runs from a1 (the start endpoint's angle) to the end
// endpoint, through the bulge apex; a bulge over half the chord length
// produces a major arc.
func arcThrough(start, end Vec2, curvature float64) (center Vec2, radius, a1, sweep float64, ok bool) {
	chord := start.Distance(end)
	if chord < geomEps {
		return Vec2{}, 0, 0, 0, false
	}

	sagitta := math.Abs(curvature) / 100 * chord
	if sagitta < geomEps {
		return Vec2{}, 0, 0, 0, false
	}

	// Sagitta relation: r = (c^2/4 + s^2) / 2s.
	radius = (chord*chord/4 + sagitta*sagitta) / (2 * sagitta)

	mid := start.Lerp(end, 0.5)
	normal := end.Sub(start).Normalize().Perp()
	side := math.Copysign(1, curvature)
	center = mid.Sub(normal.Mul(side * (radius - sagitta)))

	a1 = math.Atan2(start.Y-center.Y, start.X-center.X)
	a2 := math.Atan2(end.Y-center.Y, end.X-center.X)
	sweep = shortestAngleDelta(a2 - a1)
	if sagitta > chord/2 {
		// The apex lies on the far side: take the long way around.
		sweep -= math.Copysign(2*math.Pi, sweep)
	}
	return center, radius, a1, sweep, true
}

// shortestAngleDelta normalizes an angle difference into (-pi, pi].
func shortestAngleDelta(d float64) float64 {
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
