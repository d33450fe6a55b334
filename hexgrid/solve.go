package hexgrid

import (
	"fmt"
	"math"
)

// SolveDimensions derives the hexagon circumradius and spacing constants
// for a row of numX hexagons across faceWidth with the given margin
// between adjacent hexagon edges.
//
// The count constraint always governs the width axis exactly, so hex
// size is deterministic and reproducible; the height axis is never
// constrained to an integer row count.
//
// PointyTop — hexagons pack edge-to-edge along the width axis:
//
//	hexWidth   = (faceWidth − (numX−1)·margin) / numX
//	radius     = hexWidth / √3
//	hexHeight  = 2·radius
//	rowSpacing = 0.75·hexHeight + margin·√3/2
//	colSpacing = hexWidth + margin
//
// FlatTop — same-row hexagons meet vertex-to-vertex, so a row of numX
// hexagons spans r + (numX−1)·3r + r = (3·numX−1)·r plus margins:
//
//	radius     = (faceWidth − (numX−1)·margin) / (3·numX − 1)
//	hexWidth   = 2·radius
//	hexHeight  = √3·radius
//	rowSpacing = 0.5·hexHeight + 0.5·margin
//	colSpacing = 3·radius + margin
//
// Errors:
//   - ErrNonPositiveSize — faceWidth ≤ 0.
//   - ErrHexCount        — numX < 1.
//   - ErrNegativeMargin  — margin < 0.
//   - ErrMarginTooLarge  — margin forces a non-positive hexagon size
//     (wrapped with the count attempted).
func SolveDimensions(faceWidth float64, numX int, margin float64, o Orientation) (Dimensions, error) {
	if faceWidth <= 0 {
		return Dimensions{}, ErrNonPositiveSize
	}
	if numX < 1 {
		return Dimensions{}, ErrHexCount
	}
	if margin < 0 {
		return Dimensions{}, ErrNegativeMargin
	}

	sqrt3 := math.Sqrt(3)
	usable := faceWidth - float64(numX-1)*margin

	var d Dimensions
	switch o {
	case FlatTop:
		d.Radius = usable / float64(3*numX-1)
		if d.Radius <= 0 {
			return Dimensions{}, fmt.Errorf("%w for %d hexagons", ErrMarginTooLarge, numX)
		}
		d.HexWidth = 2 * d.Radius
		d.HexHeight = sqrt3 * d.Radius
		d.RowSpacing = 0.5*d.HexHeight + 0.5*margin
		d.ColSpacing = 3*d.Radius + margin
	default:
		d.HexWidth = usable / float64(numX)
		if d.HexWidth <= 0 {
			return Dimensions{}, fmt.Errorf("%w for %d hexagons", ErrMarginTooLarge, numX)
		}
		d.Radius = d.HexWidth / sqrt3
		d.HexHeight = 2 * d.Radius
		d.RowSpacing = 0.75*d.HexHeight + margin*sqrt3/2
		d.ColSpacing = d.HexWidth + margin
	}
	d.RowOffset = d.ColSpacing / 2

	return d, nil
}
