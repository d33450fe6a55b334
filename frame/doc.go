// Package frame resolves a 3D selection — a boundary edge and the
// planar region it bounds — into the 2D layout frame the hexgrid engine
// works in.
//
// What:
//
//   - Picks the intended region when several candidates share the
//     selected edge (largest coplanar quad wins).
//   - Decides which plane axis carries the hex count: the one the edge
//     runs parallel to, via an absolute dot-product threshold of 0.9.
//   - Anchors row growth to the selected edge's side of the region
//     (Frame.StartFromMin).
//
// Why:
//
//	The layout engine is pure 2D; everything host-specific (B-rep faces,
//	parametric evaluators, sketch transforms) is reduced here to plain
//	data: a Quad of corner points, an Edge of two points, and a Plane.
//	Any CAD kernel that can hand over those three shapes can drive the
//	engine.
//
// The axis decision assumes near-rectangular, near-axis-aligned input;
// it is not robust to skewed quadrilaterals. Coplanarity is checked to
// 1e-6 in host length units.
//
// Errors:
//
//   - ErrNoPlanarRegion: no candidate region lies in the working plane.
//   - ErrGeometryAnalysis: degenerate edge or collapsed region.
package frame
