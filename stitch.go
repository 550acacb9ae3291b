package sashiko

import "github.com/google/uuid"

// StitchSize is the semantic size class of a stitch. It controls how many
// dashes appear per grid cell, not the stroke width.
type StitchSize int

const (
	SizeSmall StitchSize = iota
	SizeMedium
	SizeLarge
)

// String returns the size class name.
func (s StitchSize) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

// StitchWidth is the stroke width class of a stitch.
type StitchWidth int

const (
	WidthThin StitchWidth = iota
	WidthNormal
	WidthThick
)

// String returns the width class name.
func (w StitchWidth) String() string {
	switch w {
	case WidthThin:
		return "thin"
	case WidthNormal:
		return "normal"
	case WidthThick:
		return "thick"
	default:
		return "unknown"
	}
}

// Pixels returns the stroke width in pixels.
func (w StitchWidth) Pixels() float64 {
	switch w {
	case WidthThin:
		return 1.5
	case WidthThick:
		return 4
	default:
		return 2.5
	}
}

// Stitch is one authored line segment, straight or single-arc.
//
// Start and End are grid coordinates. When Repeat is true they are relative
// to the stitch's home tile, nominally within [0, TileSize] but allowed to
// extend outside it to express lines crossing a tile boundary. When Repeat
// is false they are artboard-absolute and the stitch is drawn exactly once.
// Repeat is the single source of truth for the coordinate format; it is
// never re-inferred from coordinate magnitude.
type Stitch struct {
	ID    string
	Start Vec2
	End   Vec2

	// Repeat marks the stitch for tile repetition.
	Repeat bool

	Size  StitchSize
	Width StitchWidth

	// Gap is the inter-dash gap in pixels. Also sets the end inset that
	// centers the visual gap on the underlying grid dot. Must be > 0.
	Gap float64

	// Color is the per-stitch color; nil uses the appearance default.
	Color *RGBA

	// Curvature is the signed arc bulge as a percentage of the chord
	// length. Zero draws a straight segment.
	Curvature float64
}

// NewStitch creates a stitch between two grid points with default
// appearance properties and a fresh id.
func NewStitch(start, end Vec2, repeat bool) *Stitch {
	return &Stitch{
		ID:     uuid.NewString(),
		Start:  start,
		End:    end,
		Repeat: repeat,
		Size:   SizeMedium,
		Width:  WidthNormal,
		Gap:    6,
	}
}

// Pattern is the authored document: grid configuration plus the ordered
// list of stitches. The pattern owns its stitches; the renderer and hit
// tester never mutate them.
type Pattern struct {
	Geometry Geometry
	Stitches []*Stitch
}

// NewPattern creates an empty pattern with the given geometry.
func NewPattern(g Geometry) *Pattern {
	return &Pattern{Geometry: g}
}

// Add appends a stitch to the pattern and returns it.
func (p *Pattern) Add(st *Stitch) *Stitch {
	p.Stitches = append(p.Stitches, st)
	return st
}

// Remove deletes the stitch with the given id. It reports whether a stitch
// was removed.
func (p *Pattern) Remove(id string) bool {
	for i, st := range p.Stitches {
		if st.ID == id {
			p.Stitches = append(p.Stitches[:i], p.Stitches[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the stitch with the given id, or nil.
func (p *Pattern) Find(id string) *Stitch {
	for _, st := range p.Stitches {
		if st.ID == id {
			return st
		}
	}
	return nil
}
