package frame

import "math"

const (
	// alignThreshold separates "edge runs along the primary axis" from
	// "edge runs along the secondary axis" on the absolute dot product of
	// unit directions. Assumes near-rectangular, near-axis-aligned input;
	// skewed quadrilaterals are resolved heuristically.
	alignThreshold = 0.9
	// planarTol is the maximum out-of-plane distance for a corner of a
	// candidate region.
	planarTol = 1e-6
)

// Resolve maps a selected boundary edge and its adjoining planar regions
// into a 2D layout frame on the working plane.
//
// When several candidate regions share the selected edge, the largest
// coplanar one wins — most likely the intended patterning target.
// The hex-count axis is whichever plane axis the edge runs parallel to:
// |edgeDir · planeX| > 0.9 selects the primary axis, anything else the
// secondary. StartFromMin compares the edge midpoint against the region
// center along the height axis, so the first hex row always starts
// adjacent to the selected edge.
//
// Errors:
//   - ErrNoPlanarRegion   — no candidate lies in the working plane.
//   - ErrGeometryAnalysis — zero-length edge or collapsed region.
func Resolve(edge Edge, regions []Quad, plane Plane) (Frame, error) {
	normal := plane.XAxis.Cross(plane.YAxis)

	best := -1
	bestArea := 0.0
	for i, q := range regions {
		if !coplanar(q, plane, normal) {
			continue
		}
		if a := q.area(); a > bestArea {
			best, bestArea = i, a
		}
	}
	if best < 0 {
		return Frame{}, ErrNoPlanarRegion
	}
	q := regions[best]

	// Extents along the parametric edges.
	uLen := q.Corners[1].Sub(q.Corners[0]).Norm()
	vLen := q.Corners[2].Sub(q.Corners[1]).Norm()
	if uLen == 0 || vLen == 0 {
		return Frame{}, ErrGeometryAnalysis
	}

	edgeVec := edge.End.Sub(edge.Start)
	edgeLen := edgeVec.Norm()
	if edgeLen == 0 {
		return Frame{}, ErrGeometryAnalysis
	}
	dot := math.Abs(edgeVec.Dot(plane.XAxis)) / edgeLen

	// Region center and edge midpoint in plane coordinates.
	center := plane.project(midpoint(q.Corners[0], q.Corners[2]))
	edgeMid := plane.project(midpoint(edge.Start, edge.End))

	if dot > alignThreshold {
		// Hex-count axis is the primary axis; rows stack along y.
		return Frame{
			Width:        uLen,
			Height:       vLen,
			AxisAligned:  true,
			Origin:       center,
			StartFromMin: edgeMid.Y < center.Y,
		}, nil
	}
	// Hex-count axis is the secondary axis; rows stack along x.
	return Frame{
		Width:        vLen,
		Height:       uLen,
		AxisAligned:  false,
		Origin:       center,
		StartFromMin: edgeMid.X < center.X,
	}, nil
}

// coplanar reports whether every corner of q lies in the working plane.
func coplanar(q Quad, plane Plane, normal Vec3) bool {
	for _, c := range q.Corners {
		if math.Abs(c.Sub(plane.Origin).Dot(normal)) > planarTol {
			return false
		}
	}
	return true
}

func midpoint(a, b Vec3) Vec3 {
	return Vec3{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2, Z: (a.Z + b.Z) / 2}
}
