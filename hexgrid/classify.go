package hexgrid

// Area-window bounds as fractions of a full hexagon's area. The ceiling
// admits slight over-area from margin geometry; the floor rejects sliver
// artifacts. Partial mode relaxes the floor so genuine corner fragments
// of clipped hexagons survive.
const (
	areaFloorFull    = 0.1
	areaFloorPartial = 0.03
	areaCeil         = 1.1
)

// ClassifyRegions selects the closed regions that correspond to a
// hexagon cutout, full or partial, by area against the expected area of
// a full hexagon with the given circumradius. A region is accepted when
//
//	area ∈ (floor·expected, 1.1·expected]
//
// with floor = 0.1 normally or 0.03 when allowPartial. Regions outside
// the window — slivers from overlapping margins, or merged duplicates —
// are discarded. Returns the accepted indices in input order.
//
// Errors:
//   - ErrNonPositiveSize — radius ≤ 0.
//   - ErrNoValidRegions  — zero regions passed; signals a geometry
//     problem upstream (overlapping hexagons, region outside bounds)
//     rather than a silent no-op.
func ClassifyRegions(regions []Region, radius float64, allowPartial bool) ([]int, error) {
	if radius <= 0 {
		return nil, ErrNonPositiveSize
	}

	expected := HexArea(radius)
	floor := areaFloorFull
	if allowPartial {
		floor = areaFloorPartial
	}
	minArea := floor * expected
	maxArea := areaCeil * expected

	var accepted []int
	for i, r := range regions {
		if r.Area > minArea && r.Area <= maxArea {
			accepted = append(accepted, i)
		}
	}
	if len(accepted) == 0 {
		return nil, ErrNoValidRegions
	}

	return accepted, nil
}
