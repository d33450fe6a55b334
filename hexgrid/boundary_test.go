package hexgrid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"hexcomb/hexgrid"
)

//----------------------------------------------------------------------------//
// Vertices Tests
//----------------------------------------------------------------------------//

// TestVertices_PointyTopStartsAtTop verifies the pointy-top phase: the
// first vertex sits directly above the center.
func TestVertices_PointyTopStartsAtTop(t *testing.T) {
	v := hexgrid.Vertices(hexgrid.Point{X: 1, Y: 2}, 0.5, hexgrid.PointyTop)
	require.InDelta(t, 1.0, v[0].X, 1e-12)
	require.InDelta(t, 2.5, v[0].Y, 1e-12)

	// Flat edges land left/right: vertices 1 and 2 share an x coordinate.
	require.InDelta(t, v[1].X, v[2].X, 1e-12)
}

// TestVertices_FlatTopStartsAtRight verifies the flat-top phase: the
// first vertex sits directly right of the center.
func TestVertices_FlatTopStartsAtRight(t *testing.T) {
	v := hexgrid.Vertices(hexgrid.Point{}, 2, hexgrid.FlatTop)
	require.InDelta(t, 2.0, v[0].X, 1e-12)
	require.InDelta(t, 0.0, v[0].Y, 1e-12)

	// Flat edges land top/bottom: vertices 1 and 2 share a y coordinate.
	require.InDelta(t, v[1].Y, v[2].Y, 1e-12)
}

// TestVertices_AreaRoundTrip verifies that the polygon area of the six
// emitted vertices matches the closed-form hexagon area within 1%.
func TestVertices_AreaRoundTrip(t *testing.T) {
	for _, o := range []hexgrid.Orientation{hexgrid.PointyTop, hexgrid.FlatTop} {
		for _, r := range []float64{0.25, 1.0, 3.7} {
			v := hexgrid.Vertices(hexgrid.Point{X: -2, Y: 5}, r, o)
			area := hexgrid.PolygonArea(v[:])
			expected := hexgrid.HexArea(r)
			require.InEpsilon(t, expected, area, 0.01, "orientation %v radius %v", o, r)
		}
	}
}

//----------------------------------------------------------------------------//
// EmitBoundary Tests
//----------------------------------------------------------------------------//

// TestEmitBoundary_SegmentsChain verifies that the six segments form a
// closed chain: each segment ends where the next begins.
func TestEmitBoundary_SegmentsChain(t *testing.T) {
	segs := hexgrid.EmitBoundary(hexgrid.Point{X: 3, Y: -1}, 1.2, hexgrid.PointyTop, true, hexgrid.Point{X: 10, Y: 20})
	for i := 0; i < 6; i++ {
		next := segs[(i+1)%6]
		require.InDelta(t, segs[i].B.X, next.A.X, 1e-12)
		require.InDelta(t, segs[i].B.Y, next.A.Y, 1e-12)
	}
}

// TestEmitBoundary_AxisAlignedTranslates verifies the identity mapping
// plus origin translation when the hex-count axis is the primary axis.
func TestEmitBoundary_AxisAlignedTranslates(t *testing.T) {
	origin := hexgrid.Point{X: 7, Y: -4}
	center := hexgrid.Point{X: 1, Y: 2}
	segs := hexgrid.EmitBoundary(center, 1, hexgrid.FlatTop, true, origin)
	v := hexgrid.Vertices(center, 1, hexgrid.FlatTop)
	for i := 0; i < 6; i++ {
		require.InDelta(t, origin.X+v[i].X, segs[i].A.X, 1e-12)
		require.InDelta(t, origin.Y+v[i].Y, segs[i].A.Y, 1e-12)
	}
}

// TestEmitBoundary_RotatedRemap verifies the 90° frame remap: with
// axisAligned=false every local coordinate (x, y) maps to (y, -x).
func TestEmitBoundary_RotatedRemap(t *testing.T) {
	origin := hexgrid.Point{X: 2, Y: 3}
	center := hexgrid.Point{X: 1.5, Y: -0.5}

	aligned := hexgrid.EmitBoundary(center, 0.8, hexgrid.PointyTop, true, hexgrid.Point{})
	rotated := hexgrid.EmitBoundary(center, 0.8, hexgrid.PointyTop, false, origin)

	for i := 0; i < 6; i++ {
		require.InDelta(t, origin.X+aligned[i].A.Y, rotated[i].A.X, 1e-12)
		require.InDelta(t, origin.Y-aligned[i].A.X, rotated[i].A.Y, 1e-12)
		require.InDelta(t, origin.X+aligned[i].B.Y, rotated[i].B.X, 1e-12)
		require.InDelta(t, origin.Y-aligned[i].B.X, rotated[i].B.Y, 1e-12)
	}
}

// TestEmitBoundary_RotationPreservesArea verifies that the remap is a
// rigid motion: polygon area is unchanged.
func TestEmitBoundary_RotationPreservesArea(t *testing.T) {
	center := hexgrid.Point{X: 0.3, Y: 0.9}
	segs := hexgrid.EmitBoundary(center, 1.1, hexgrid.FlatTop, false, hexgrid.Point{X: 5, Y: 5})
	pts := make([]hexgrid.Point, 6)
	for i, s := range segs {
		pts[i] = s.A
	}
	require.InEpsilon(t, hexgrid.HexArea(1.1), hexgrid.PolygonArea(pts), 0.01)
}

// TestHexArea matches the closed form against a unit hexagon.
func TestHexArea(t *testing.T) {
	require.InDelta(t, 3*math.Sqrt(3)/2, hexgrid.HexArea(1), 1e-12)
	require.InDelta(t, 4*hexgrid.HexArea(1), hexgrid.HexArea(2), 1e-12)
}
