package sashiko

import "errors"

// ErrInvalidGeometry is returned when the grid/tile configuration cannot
// describe a drawable artboard: a non-positive grid size, or a tile size or
// tile count component below one. Callers are expected to clamp
// configuration before handing it to the engine; the engine itself assumes
// pre-validated geometry everywhere past Validate.
var ErrInvalidGeometry = errors.New("sashiko: invalid geometry")
