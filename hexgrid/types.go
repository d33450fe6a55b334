// Package hexgrid defines core types, options, and sentinel errors
// for the honeycomb layout engine.
package hexgrid

// Orientation selects how hexagons sit relative to the width axis.
//
// The two orientations are not plain rotations of one another: the
// packing formula along the width axis differs structurally (see
// SolveDimensions).
type Orientation int

const (
	// PointyTop puts vertices at top/bottom and flat edges left/right,
	// so numX hexagons fit flush edge-to-edge along the width axis.
	PointyTop Orientation = iota
	// FlatTop puts flat edges at top/bottom and vertices left/right.
	// Same-row hexagons meet vertex-to-vertex, so a row of numX hexagons
	// spans (3·numX−1)·radius plus margins.
	FlatTop
)

// String returns "pointy" or "flat".
func (o Orientation) String() string {
	if o == FlatTop {
		return "flat"
	}
	return "pointy"
}

// Point is a 2D coordinate in the layout frame. Layout coordinates are
// offsets from the region center; host coordinates are absolute in the
// working plane.
type Point struct {
	X, Y float64
}

// Segment is a single hexagon boundary edge between two vertices.
type Segment struct {
	A, B Point
}

// Dimensions holds the solved hexagon size and the spacing constants
// derived from it. All values are strictly positive for a valid solve.
type Dimensions struct {
	// Radius is the circumradius: center to any vertex.
	Radius float64
	// HexWidth is the extent along the width axis
	// (flat-to-flat for PointyTop, vertex-to-vertex for FlatTop).
	HexWidth float64
	// HexHeight is the extent along the height axis.
	HexHeight float64
	// RowSpacing is the center-to-center distance between adjacent rows.
	RowSpacing float64
	// ColSpacing is the center-to-center distance within a row.
	ColSpacing float64
	// RowOffset is the horizontal shift applied to odd-indexed rows,
	// always ColSpacing/2.
	RowOffset float64
}

// Region is a closed region formed by realized boundary edges. The host
// environment computes areas after materializing the emitted segments;
// the classifier only inspects Area. Min and Max carry the bounding
// extent for host bookkeeping and are ignored by classification.
type Region struct {
	Area     float64
	Min, Max Point
}

// LayoutOptions configures ComputeLayout.
//
// Fields:
//   - Orientation  — PointyTop (default) or FlatTop.
//   - StartFromMin — rows grow upward from the minimum height coordinate
//     when true, downward from the maximum when false. The frame resolver
//     sets this so the first row hugs the user-selected edge.
//   - AllowPartial — when true, rows and columns clipped by the region
//     boundary are still emitted (the host trims them via classification);
//     when false only hexagons that fit entirely inside are emitted.
type LayoutOptions struct {
	Orientation  Orientation
	StartFromMin bool
	AllowPartial bool
}

// DefaultLayoutOptions returns LayoutOptions with default settings:
// PointyTop, StartFromMin=true, AllowPartial=false.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		Orientation:  PointyTop,
		StartFromMin: true,
		AllowPartial: false,
	}
}

// Layout is the result of ComputeLayout: the solved dimensions plus the
// ordered hex center list. Centers are row-major, rows emitted outward
// from the start side, columns left-to-right within a row.
type Layout struct {
	Radius      float64
	Dim         Dimensions
	Orientation Orientation
	Centers     []Point

	rowIdx []int // emission row index per center, parallel to Centers
}

// Rows groups Centers by the row they were emitted in, preserving
// emission order. Grouping follows the generator's own row counter, not
// y-coordinate proximity, so partial rows stay intact.
func (l *Layout) Rows() [][]Point {
	var rows [][]Point
	var cur []Point
	for i, p := range l.Centers {
		if i > 0 && l.rowIdx[i] != l.rowIdx[i-1] {
			rows = append(rows, cur)
			cur = nil
		}
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		rows = append(rows, cur)
	}
	return rows
}
