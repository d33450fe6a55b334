package frame

import "errors"

// Sentinel errors for frame resolution.
var (
	// ErrNoPlanarRegion indicates no candidate region lies in the working
	// plane.
	ErrNoPlanarRegion = errors.New("frame: no planar region found")
	// ErrGeometryAnalysis indicates degenerate input geometry: a
	// zero-length edge or a collapsed region.
	ErrGeometryAnalysis = errors.New("frame: geometry analysis failed")
)
