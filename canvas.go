package sashiko

// Canvas is the drawing capability the renderer depends on. Implementations
// draw in absolute canvas pixels; the engine never touches a concrete
// drawing API, so rendering stays headless and unit-testable.
//
// StrokeArc sweeps from angle a1 to a2 in radians, in the literal direction
// of the difference (a2 > a1 counter-clockwise in screen coordinates).
// A nil dash means a solid stroke.
type Canvas interface {
	// Clear fills the whole surface with a color.
	Clear(c RGBA)

	// FillRect fills an axis-aligned rectangle.
	FillRect(r Rect, c RGBA)

	// StrokeSegment strokes a straight line between two points.
	StrokeSegment(a, b Vec2, width float64, dash *Dash, c RGBA)

	// StrokeArc strokes a circular arc around center.
	StrokeArc(center Vec2, radius, a1, a2, width float64, dash *Dash, c RGBA)
}

// CanvasOp is one recorded drawing command.
type CanvasOp struct {
	Kind   string // "clear", "fillrect", "segment", "arc"
	A, B   Vec2   // segment endpoints, or rect min/max
	Center Vec2
	Radius float64
	Angle1 float64
	Angle2 float64
	Width  float64
	Dash   *Dash
	Color  RGBA
}

// RecordingCanvas records drawing commands instead of rasterising them.
// Tests use it to assert on what the renderer drew without a pixel surface.
type RecordingCanvas struct {
	Ops []CanvasOp
}

// NewRecordingCanvas creates an empty recording canvas.
func NewRecordingCanvas() *RecordingCanvas {
	return &RecordingCanvas{}
}

// Clear implements Canvas. It also drops previously recorded commands,
// mirroring the clear-and-redraw-every-frame contract.
func (rc *RecordingCanvas) Clear(c RGBA) {
	rc.Ops = rc.Ops[:0]
	rc.Ops = append(rc.Ops, CanvasOp{Kind: "clear", Color: c})
}

// FillRect implements Canvas.
func (rc *RecordingCanvas) FillRect(r Rect, c RGBA) {
	rc.Ops = append(rc.Ops, CanvasOp{Kind: "fillrect", A: r.Min, B: r.Max, Color: c})
}

// StrokeSegment implements Canvas.
func (rc *RecordingCanvas) StrokeSegment(a, b Vec2, width float64, dash *Dash, c RGBA) {
	rc.Ops = append(rc.Ops, CanvasOp{Kind: "segment", A: a, B: b, Width: width, Dash: dash, Color: c})
}

// StrokeArc implements Canvas.
func (rc *RecordingCanvas) StrokeArc(center Vec2, radius, a1, a2, width float64, dash *Dash, c RGBA) {
	rc.Ops = append(rc.Ops, CanvasOp{
		Kind: "arc", Center: center, Radius: radius,
		Angle1: a1, Angle2: a2, Width: width, Dash: dash, Color: c,
	})
}

// Segments returns the recorded segment strokes.
func (rc *RecordingCanvas) Segments() []CanvasOp {
	return rc.opsOfKind("segment")
}

// Arcs returns the recorded arc strokes.
func (rc *RecordingCanvas) Arcs() []CanvasOp {
	return rc.opsOfKind("arc")
}

func (rc *RecordingCanvas) opsOfKind(kind string) []CanvasOp {
	var out []CanvasOp
	for _, op := range rc.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

var _ Canvas = (*RecordingCanvas)(nil)
