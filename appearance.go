package sashiko

// HighlightColor is the fixed color selected stitches render in,
// overriding any per-stitch color.
var HighlightColor = Hex("#e8452c")

// Appearance configures how the surface is painted: background and guide
// colors plus the defaults applied to newly authored stitches.
type Appearance struct {
	Background      RGBA
	GridColor       RGBA
	GridVisible     bool
	TileOutline     RGBA
	ArtboardOutline RGBA

	// Defaults for newly authored stitches.
	StitchColor RGBA
	StitchSize  StitchSize
	StitchWidth StitchWidth
	StitchGap   float64

	// RepeatByDefault marks new stitches for tile repetition.
	RepeatByDefault bool
}

// DefaultAppearance returns the stock indigo-cloth appearance.
func DefaultAppearance() Appearance {
	return Appearance{
		Background:      Hex("#1f2a44"),
		GridColor:       White.WithAlpha(0.25),
		GridVisible:     true,
		TileOutline:     White.WithAlpha(0.12),
		ArtboardOutline: White.WithAlpha(0.4),
		StitchColor:     Hex("#f2ead8"),
		StitchSize:      SizeMedium,
		StitchWidth:     WidthNormal,
		StitchGap:       6,
		RepeatByDefault: true,
	}
}

// Mode is the active pointer-interaction mode.
type Mode int

const (
	ModeSelect Mode = iota
	ModeDraw
	ModePan
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeSelect:
		return "select"
	case ModeDraw:
		return "draw"
	case ModePan:
		return "pan"
	default:
		return "unknown"
	}
}

// DrawingState is the transient authoring state: the active mode and, in
// draw mode, the pending first point of a two-click segment. It is not part
// of the persisted pattern.
type DrawingState struct {
	Mode       Mode
	FirstPoint *IVec2
}

// Selection is the set of selected stitch ids.
type Selection map[string]bool

// NewSelection creates an empty selection.
func NewSelection() Selection {
	return make(Selection)
}

// Has reports whether the id is selected.
func (s Selection) Has(id string) bool {
	return s != nil && s[id]
}

// Toggle flips the id's membership.
func (s Selection) Toggle(id string) {
	if s[id] {
		delete(s, id)
	} else {
		s[id] = true
	}
}

// Replace clears the selection and selects only the given ids.
func (s Selection) Replace(ids ...string) {
	clear(s)
	for _, id := range ids {
		s[id] = true
	}
}
