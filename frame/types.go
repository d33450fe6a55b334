// Package frame defines the plain-data geometric types and sentinel
// errors for resolving a 3D selection into a 2D layout frame.
package frame

import (
	"math"

	"hexcomb/hexgrid"
)

// Vec3 is a point or direction in the host's 3D coordinate system.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v − o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Dot returns the dot product v·o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v×o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Plane is a 2D working plane embedded in the host's 3D space. XAxis and
// YAxis must be unit length and orthogonal; plane coordinates of a 3D
// point p are ((p−Origin)·XAxis, (p−Origin)·YAxis).
type Plane struct {
	Origin Vec3
	XAxis  Vec3
	YAxis  Vec3
}

// project returns the plane coordinates of p.
func (pl Plane) project(p Vec3) hexgrid.Point {
	d := p.Sub(pl.Origin)
	return hexgrid.Point{X: d.Dot(pl.XAxis), Y: d.Dot(pl.YAxis)}
}

// Quad is a candidate planar region given by its four parametric corner
// points in order (u0,v0), (u1,v0), (u1,v1), (u0,v1). The first edge
// (corner 0 → corner 1) runs along the plane's primary axis for a face
// sketched on the working plane.
type Quad struct {
	Corners [4]Vec3
}

// area returns the quad's area via the diagonal cross product.
func (q Quad) area() float64 {
	d1 := q.Corners[2].Sub(q.Corners[0])
	d2 := q.Corners[3].Sub(q.Corners[1])
	return d1.Cross(d2).Norm() / 2
}

// Edge is the user-selected boundary edge, as a pair of 3D points.
type Edge struct {
	Start, End Vec3
}

// Frame is the resolved 2D layout frame.
//
// Width is the region extent along whichever plane axis the selected
// edge runs parallel to — the hex-count axis. Height is the extent along
// the perpendicular axis. Origin is the region center in plane
// coordinates; all layout coordinates are offsets from it.
// StartFromMin anchors the first hex row to the selected edge's side of
// the region along the height axis.
type Frame struct {
	Width        float64
	Height       float64
	AxisAligned  bool
	Origin       hexgrid.Point
	StartFromMin bool
}
