package hexgrid

import "math"

// Vertices returns the six boundary vertices of a hexagon around center,
// counter-clockwise. FlatTop starts at angle 0° (vertex to the right);
// PointyTop starts at 90° (vertex at the top), so the flat edges land
// left/right where same-row hexagons touch.
func Vertices(center Point, radius float64, o Orientation) [6]Point {
	phase := 0.0
	if o == PointyTop {
		phase = math.Pi / 2
	}
	var v [6]Point
	for i := 0; i < 6; i++ {
		a := phase + float64(i)*math.Pi/3
		v[i] = Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}
	return v
}

// EmitBoundary converts a hex center into the six line segments the host
// materializes, expressed in host 2D coordinates.
//
// Layout coordinates place the hex-count axis on x. When axisAligned is
// true that matches the host frame and offsets map identity; when false
// the whole local frame is rotated 90°, remapping (x, y) → (y, −x),
// before translating by origin (the region center in host coordinates).
func EmitBoundary(center Point, radius float64, o Orientation, axisAligned bool, origin Point) [6]Segment {
	v := Vertices(center, radius, o)
	var segs [6]Segment
	for i := 0; i < 6; i++ {
		segs[i] = Segment{
			A: toHost(v[i], axisAligned, origin),
			B: toHost(v[(i+1)%6], axisAligned, origin),
		}
	}
	return segs
}

// toHost remaps a layout-frame point into the host 2D frame.
func toHost(p Point, axisAligned bool, origin Point) Point {
	if !axisAligned {
		p = Point{X: p.Y, Y: -p.X}
	}
	return Point{X: origin.X + p.X, Y: origin.Y + p.Y}
}

// HexArea returns the area of a regular hexagon with the given
// circumradius: (3√3/2)·r².
func HexArea(radius float64) float64 {
	return 3 * math.Sqrt(3) / 2 * radius * radius
}

// PolygonArea returns the absolute area of a simple polygon via the
// shoelace formula.
func PolygonArea(pts []Point) float64 {
	var sum float64
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return math.Abs(sum) / 2
}
