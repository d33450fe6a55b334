package hexgrid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"hexcomb/hexgrid"
)

//----------------------------------------------------------------------------//
// SolveDimensions Tests
//----------------------------------------------------------------------------//

// TestSolveDimensions_PointyTopSpansWidth verifies that with zero margin
// numX hexagons exactly span the face width edge-to-edge.
func TestSolveDimensions_PointyTopSpansWidth(t *testing.T) {
	d, err := hexgrid.SolveDimensions(10.0, 5, 0, hexgrid.PointyTop)
	require.NoError(t, err)

	// face_width = num_x * hex_width when margin is zero
	require.InDelta(t, 10.0, 5*d.HexWidth, 1e-9)
	require.InDelta(t, 2.0, d.HexWidth, 1e-9)

	// Pointy-top identities: width = sqrt(3)*r, height = 2r
	require.InDelta(t, d.HexWidth, math.Sqrt(3)*d.Radius, 1e-9)
	require.InDelta(t, d.HexHeight, 2*d.Radius, 1e-9)
}

// TestSolveDimensions_FlatTopTripleRadius verifies the flat-top packing
// formula: a row of n hexagons spans (3n-1)*r, so r = W/(3n-1).
func TestSolveDimensions_FlatTopTripleRadius(t *testing.T) {
	d, err := hexgrid.SolveDimensions(10.0, 5, 0, hexgrid.FlatTop)
	require.NoError(t, err)

	// radius = 10 / (3*5 - 1) = 10/14
	require.InDelta(t, 10.0/14.0, d.Radius, 1e-4)
	require.InDelta(t, 2*d.Radius, d.HexWidth, 1e-9)
	require.InDelta(t, math.Sqrt(3)*d.Radius, d.HexHeight, 1e-9)

	// Same-row spacing is vertex-to-vertex: 3r + margin
	require.InDelta(t, 3*d.Radius, d.ColSpacing, 1e-9)
	// Interlocked rows sit half a hex height apart at zero margin
	require.InDelta(t, 0.5*d.HexHeight, d.RowSpacing, 1e-9)
}

// TestSolveDimensions_RowOffsetIsHalfColSpacing checks the brick-offset
// invariant for both orientations with and without margin.
func TestSolveDimensions_RowOffsetIsHalfColSpacing(t *testing.T) {
	for _, o := range []hexgrid.Orientation{hexgrid.PointyTop, hexgrid.FlatTop} {
		for _, margin := range []float64{0, 0.1, 0.5} {
			d, err := hexgrid.SolveDimensions(10.0, 4, margin, o)
			require.NoError(t, err)
			require.InDelta(t, d.ColSpacing/2, d.RowOffset, 1e-12)
		}
	}
}

// TestSolveDimensions_MarginShrinksRadius verifies that increasing the
// margin strictly decreases the radius for a fixed width and count.
func TestSolveDimensions_MarginShrinksRadius(t *testing.T) {
	for _, o := range []hexgrid.Orientation{hexgrid.PointyTop, hexgrid.FlatTop} {
		base, err := hexgrid.SolveDimensions(10.0, 5, 0, o)
		require.NoError(t, err)

		prev := base.Radius
		for _, margin := range []float64{0.1, 0.3, 0.6} {
			d, err := hexgrid.SolveDimensions(10.0, 5, margin, o)
			require.NoError(t, err)
			require.Less(t, d.Radius, prev, "orientation %v margin %v", o, margin)
			prev = d.Radius
		}
	}
}

// TestSolveDimensions_Errors verifies input validation and the
// margin-too-large failure path.
func TestSolveDimensions_Errors(t *testing.T) {
	cases := []struct {
		name   string
		width  float64
		numX   int
		margin float64
		o      hexgrid.Orientation
		err    error
	}{
		{"ZeroWidth", 0, 5, 0, hexgrid.PointyTop, hexgrid.ErrNonPositiveSize},
		{"NegativeWidth", -1, 5, 0, hexgrid.FlatTop, hexgrid.ErrNonPositiveSize},
		{"ZeroCount", 10, 0, 0, hexgrid.PointyTop, hexgrid.ErrHexCount},
		{"NegativeMargin", 10, 5, -0.1, hexgrid.PointyTop, hexgrid.ErrNegativeMargin},
		{"MarginTooLargePointy", 1, 10, 1, hexgrid.PointyTop, hexgrid.ErrMarginTooLarge},
		{"MarginTooLargeFlat", 1, 10, 1, hexgrid.FlatTop, hexgrid.ErrMarginTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hexgrid.SolveDimensions(tc.width, tc.numX, tc.margin, tc.o)
			if !errors.Is(err, tc.err) {
				t.Errorf("SolveDimensions error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestSolveDimensions_MarginTooLargeMessage checks that the error names
// the count attempted, since it is shown to the user.
func TestSolveDimensions_MarginTooLargeMessage(t *testing.T) {
	_, err := hexgrid.SolveDimensions(1, 10, 1, hexgrid.PointyTop)
	require.ErrorIs(t, err, hexgrid.ErrMarginTooLarge)
	require.Contains(t, err.Error(), "10 hexagons")
}
