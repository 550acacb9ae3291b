package sashiko

import "math"

const (
	// hitThresholdPx is the maximum distance between a click and a stitch
	// instance for the click to count as a hit.
	hitThresholdPx = 5.0

	// dragThresholdPx is the per-axis size below which a drag rectangle is
	// treated as a click.
	dragThresholdPx = 4.0
)

// pointSegmentDistance returns the distance from p to the segment ab,
// using the closed-form projection clamped to the segment.
func pointSegmentDistance(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Distance(a.Add(ab.Mul(t)))
}

// HitPoint finds the stitch whose rendered instance lies closest to the
// click point, within the hit threshold. Cache order is pattern draw order,
// so on equal distance a later (topmost) stitch wins. Reports false when
// nothing is within threshold.
func HitPoint(p Vec2, cache []RenderedInstance) (string, bool) {
	best := hitThresholdPx
	var id string
	var found bool
	for _, inst := range cache {
		d := pointSegmentDistance(p, inst.Start, inst.End)
		if d <= best {
			best = d
			id = inst.StitchID
			found = true
		}
	}
	return id, found
}

// IsClickDrag reports whether a drag from a to b is small enough, on both
// axes, to be treated as a click instead of a rectangle selection.
func IsClickDrag(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < dragThresholdPx && math.Abs(a.Y-b.Y) < dragThresholdPx
}

// HitRect returns the ids of all stitches with a rendered instance caught
// by the drag rectangle: an endpoint inside it, or a bounding box overlap.
// Ids are returned once each, in cache order.
func HitRect(r Rect, cache []RenderedInstance) []string {
	var ids []string
	seen := make(map[string]bool)
	for _, inst := range cache {
		if seen[inst.StitchID] {
			continue
		}
		if r.Contains(inst.Start) || r.Contains(inst.End) || r.Overlaps(inst.Bounds()) {
			seen[inst.StitchID] = true
			ids = append(ids, inst.StitchID)
		}
	}
	return ids
}
