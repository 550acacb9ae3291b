package sashiko

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// arcFlattenStep is the maximum angular step, in radians, when flattening
// arc dashes into polygon bands.
const arcFlattenStep = 0.2

// CanvasOption configures a SoftCanvas during creation.
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	scale float64
}

// WithScale sets a resolution multiplier: all geometry is scaled up before
// rasterisation, so the output stays sharp instead of being pixel-upscaled.
func WithScale(scale float64) CanvasOption {
	return func(o *canvasOptions) {
		if scale > 0 {
			o.scale = scale
		}
	}
}

// SoftCanvas is the software Canvas implementation. It rasterises strokes
// onto a Pixmap with the x/image vector rasteriser: every dash becomes a
// filled quad (or, for arcs, a flattened ring band), anti-aliased and
// alpha-blended over the surface.
type SoftCanvas struct {
	pixmap *Pixmap
	scale  float64
	ras    *vector.Rasterizer
}

// NewSoftCanvas creates a software canvas sized for the geometry's canvas
// (artboard plus margin), optionally at a resolution multiplier.
func NewSoftCanvas(g Geometry, opts ...CanvasOption) *SoftCanvas {
	o := canvasOptions{scale: 1}
	for _, opt := range opts {
		opt(&o)
	}

	size := g.CanvasPixelSize().Mul(o.scale)
	w := int(math.Ceil(size.X))
	h := int(math.Ceil(size.Y))
	return &SoftCanvas{
		pixmap: NewPixmap(w, h),
		scale:  o.scale,
		ras:    vector.NewRasterizer(w, h),
	}
}

// Pixmap returns the underlying pixel buffer.
func (s *SoftCanvas) Pixmap() *Pixmap {
	return s.pixmap
}

// Image returns the rendered surface as an image.
func (s *SoftCanvas) Image() *image.RGBA {
	return s.pixmap.ToImage()
}

// Clear implements Canvas.
func (s *SoftCanvas) Clear(c RGBA) {
	s.pixmap.Clear(c)
}

// FillRect implements Canvas.
func (s *SoftCanvas) FillRect(r Rect, c RGBA) {
	min := r.Min.Mul(s.scale)
	max := r.Max.Mul(s.scale)
	s.fillPoly([]Vec2{
		min,
		{X: max.X, Y: min.Y},
		max,
		{X: min.X, Y: max.Y},
	}, c)
}

// StrokeSegment implements Canvas. Each dash is filled as a quad of the
// stroke width centered on the segment.
func (s *SoftCanvas) StrokeSegment(a, b Vec2, width float64, dash *Dash, c RGBA) {
	a = a.Mul(s.scale)
	b = b.Mul(s.scale)
	length := a.Distance(b)
	if length < geomEps {
		return
	}

	dir := b.Sub(a).Normalize()
	half := dir.Perp().Mul(width * s.scale / 2)

	for _, span := range dashSpans(length, scaleDash(dash, s.scale)) {
		p0 := a.Add(dir.Mul(span[0]))
		p1 := a.Add(dir.Mul(span[1]))
		s.fillPoly([]Vec2{
			p0.Add(half),
			p1.Add(half),
			p1.Sub(half),
			p0.Sub(half),
		}, c)
	}
}

// StrokeArc implements Canvas. Dashes are measured along the arc length and
// each dash is flattened into a ring band polygon.
func (s *SoftCanvas) StrokeArc(center Vec2, radius, a1, a2, width float64, dash *Dash, c RGBA) {
	center = center.Mul(s.scale)
	radius *= s.scale
	sweep := a2 - a1
	length := math.Abs(sweep) * radius
	if length < geomEps || radius < geomEps {
		return
	}

	sign := math.Copysign(1, sweep)
	hw := width * s.scale / 2

	for _, span := range dashSpans(length, scaleDash(dash, s.scale)) {
		ang0 := a1 + sign*span[0]/radius
		ang1 := a1 + sign*span[1]/radius
		s.fillPoly(arcBand(center, radius, hw, ang0, ang1), c)
	}
}

// arcBand builds the polygon outline of an arc segment stroked at half
// width hw: the outer radius walked forward, the inner radius walked back.
func arcBand(center Vec2, radius, hw, ang0, ang1 float64) []Vec2 {
	steps := int(math.Ceil(math.Abs(ang1-ang0)/arcFlattenStep)) + 1
	if steps < 2 {
		steps = 2
	}

	pts := make([]Vec2, 0, 2*steps)
	for i := 0; i < steps; i++ {
		a := ang0 + (ang1-ang0)*float64(i)/float64(steps-1)
		pts = append(pts, center.Add(Vec2{X: math.Cos(a), Y: math.Sin(a)}.Mul(radius+hw)))
	}
	for i := steps - 1; i >= 0; i-- {
		a := ang0 + (ang1-ang0)*float64(i)/float64(steps-1)
		pts = append(pts, center.Add(Vec2{X: math.Cos(a), Y: math.Sin(a)}.Mul(radius-hw)))
	}
	return pts
}

// fillPoly rasterises a closed polygon with anti-aliasing, blending it over
// the pixmap.
func (s *SoftCanvas) fillPoly(pts []Vec2, c RGBA) {
	if len(pts) < 3 || c.A <= 0 {
		return
	}

	s.ras.Reset(s.pixmap.Width(), s.pixmap.Height())
	s.ras.DrawOp = draw.Over
	s.ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		s.ras.LineTo(float32(p.X), float32(p.Y))
	}
	s.ras.ClosePath()
	s.ras.Draw(s.pixmap, s.pixmap.Bounds(), image.NewUniform(c.Color()), image.Point{})
}

// scaleDash returns the dash with all lengths multiplied by the factor.
func scaleDash(d *Dash, factor float64) *Dash {
	if d == nil || factor == 1 {
		return d
	}
	scaled := make([]float64, len(d.Array))
	for i, l := range d.Array {
		scaled[i] = l * factor
	}
	return &Dash{Array: scaled}
}

// dashSpans walks the dash pattern along a stroke of the given length and
// returns the on-dash intervals. A nil or degenerate pattern yields one
// solid span.
func dashSpans(total float64, d *Dash) [][2]float64 {
	if total <= 0 {
		return nil
	}
	if !d.IsDashed() {
		return [][2]float64{{0, total}}
	}

	arr := d.effectiveArray()
	var cycle float64
	for _, l := range arr {
		cycle += l
	}
	if cycle <= 0 {
		return [][2]float64{{0, total}}
	}

	var spans [][2]float64
	pos := 0.0
	for i := 0; pos < total; i++ {
		l := arr[i%len(arr)]
		if i%2 == 0 && l > 0 {
			spans = append(spans, [2]float64{pos, math.Min(pos+l, total)})
		}
		pos += l
	}
	return spans
}

var _ Canvas = (*SoftCanvas)(nil)
