package sashiko

import "math"

// Dash defines a dash pattern for stroking.
// A dash pattern consists of alternating dash and gap lengths.
// For example, [5, 3] creates a pattern of 5 units dash, 3 units gap.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// If the array has an odd number of elements, it is logically duplicated
	// to create an even-length pattern (e.g., [5] becomes [5, 5]).
	Array []float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Returns nil if no lengths are provided or all lengths are zero.
func NewDash(lengths ...float64) *Dash {
	if len(lengths) == 0 {
		return nil
	}

	allZeroOrNeg := true
	for _, l := range lengths {
		if l > 0 {
			allZeroOrNeg = false
			break
		}
	}
	if allZeroOrNeg {
		return nil
	}

	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
	}

	return &Dash{Array: normalized}
}

// DashLength returns the length of the first dash in the pattern.
func (d *Dash) DashLength() float64 {
	if d == nil || len(d.Array) == 0 {
		return 0
	}
	return d.Array[0]
}

// GapLength returns the length of the first gap in the pattern.
func (d *Dash) GapLength() float64 {
	if d == nil || len(d.Array) < 2 {
		return 0
	}
	return d.Array[1]
}

// IsDashed returns true if this represents a dashed line (not solid).
// Returns false for nil Dash or empty/all-zero arrays.
func (d *Dash) IsDashed() bool {
	if d == nil || len(d.Array) == 0 {
		return false
	}
	for _, l := range d.Array {
		if l > 0 {
			return true
		}
	}
	return false
}

// effectiveArray returns the array with odd-length arrays duplicated.
// This is used internally for pattern iteration.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}

	if len(d.Array)%2 == 0 {
		return d.Array
	}

	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}

// Dashes-per-cell ratio per size class. Large reuses medium's subdivision
// and then merges dash pairs, so its entry matches medium.
func dashesPerCell(size StitchSize) float64 {
	switch size {
	case SizeSmall:
		return 2
	default:
		return 1.5
	}
}

// Minimum legible dash length in pixels per size class. Dashes shorter than
// the floor read as dots, so the calculator trades dash count for length
// before it ever goes below these.
func minDashLength(size StitchSize) float64 {
	switch size {
	case SizeSmall:
		return 3
	case SizeLarge:
		return 8
	default:
		return 4
	}
}

// StitchDash computes the dash pattern for one stitch instance.
//
// drawable is the strokeable length after the end insets, raw the full
// segment length; raw/gridSize gives the cell count the subdivision is
// based on, so dash density follows the grid rather than the inset stroke.
// gap is the inter-dash gap in pixels.
//
// The target dash count is max(1, round(cells x ratio)). SizeLarge forces
// the count even, then pairs adjacent dashes into single longer dashes
// separated by one gap. While the resulting dash length falls below the
// size class floor and more than one dash remains, the count is reduced
// (by two for SizeLarge, preserving the pairing) and the division redone.
// A single remaining dash spans the whole drawable length with no gap.
//
// Returns nil when nothing should be drawn (degenerate or too-short
// segment); the caller skips the instance.
func StitchDash(drawable, raw float64, size StitchSize, gap, gridSize float64) *Dash {
	if drawable <= 0 || raw <= 0 || gridSize <= 0 {
		return nil
	}
	if gap < 0 {
		gap = 0
	}

	cells := raw / gridSize
	count := int(math.Round(cells * dashesPerCell(size)))
	if count < 1 {
		count = 1
	}
	if size == SizeLarge && count%2 != 0 {
		count++
	}

	floor := minDashLength(size)
	for {
		// Pairing merges two dashes and the gap between them into one.
		effective := count
		if size == SizeLarge {
			effective = count / 2
		}
		if effective <= 1 {
			return NewDash(drawable, 0)
		}

		dashLen := (drawable - float64(effective-1)*gap) / float64(effective)
		if dashLen >= floor {
			return NewDash(dashLen, gap)
		}

		if size == SizeLarge {
			count -= 2
		} else {
			count--
		}
	}
}
