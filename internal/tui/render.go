package tui

import (
	"strings"

	"hexcomb/hexgrid"
)

// canvas is a braille micro-pixel buffer: each terminal cell carries a
// 2x4 grid of dots, so a w×h cell canvas has 2w×4h addressable pixels.
type canvas struct {
	w, h  int
	cells [][]uint8
}

// Dot bit per (row, column) inside one braille cell.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

func newCanvas(w, h int) *canvas {
	cells := make([][]uint8, h)
	for i := range cells {
		cells[i] = make([]uint8, w)
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) set(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= c.w || cy >= c.h {
		return
	}
	c.cells[cy][cx] |= brailleBits[my%4][mx%2]
}

// line draws a micro-pixel segment with Bresenham's algorithm.
func (c *canvas) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *canvas) String() string {
	rows := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		row := make([]rune, c.w)
		for x := 0; x < c.w; x++ {
			if mask := c.cells[y][x]; mask != 0 {
				row[x] = rune(0x2800 + int(mask))
			} else {
				row[x] = ' '
			}
		}
		rows[y] = string(row)
	}
	return strings.Join(rows, "\n")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// renderLayout draws the face outline and every hexagon boundary into a
// w×h cell braille canvas, scaled to fit with aspect ratio preserved.
func (m Model) renderLayout(w, h int) string {
	c := newCanvas(w, h)
	if m.layout == nil || w < 2 || h < 2 {
		return c.String()
	}

	// World bounds: the face plus half a hex of overhang so partial-mode
	// overspill hexes stay visible.
	pad := max(m.layout.Dim.HexWidth, m.layout.Dim.HexHeight) / 2
	minX, maxX := -m.faceW/2-pad, m.faceW/2+pad
	minY, maxY := -m.faceH/2-pad, m.faceH/2+pad

	mw, mh := float64(w*2-1), float64(h*4-1)
	scale := min(mw/(maxX-minX), mh/(maxY-minY))
	offX := (mw - (maxX-minX)*scale) / 2
	offY := (mh - (maxY-minY)*scale) / 2

	// Layout y grows upward, screen y grows downward.
	px := func(p hexgrid.Point) (int, int) {
		x := offX + (p.X-minX)*scale
		y := mh - (offY + (p.Y-minY)*scale)
		return int(x + 0.5), int(y + 0.5)
	}

	// Face outline.
	corners := []hexgrid.Point{
		{X: -m.faceW / 2, Y: -m.faceH / 2},
		{X: m.faceW / 2, Y: -m.faceH / 2},
		{X: m.faceW / 2, Y: m.faceH / 2},
		{X: -m.faceW / 2, Y: m.faceH / 2},
	}
	for i := range corners {
		x0, y0 := px(corners[i])
		x1, y1 := px(corners[(i+1)%4])
		c.line(x0, y0, x1, y1)
	}

	// Hexagon boundaries.
	for _, center := range m.layout.Centers {
		v := hexgrid.Vertices(center, m.layout.Radius, m.layout.Orientation)
		for i := 0; i < 6; i++ {
			x0, y0 := px(v[i])
			x1, y1 := px(v[(i+1)%6])
			c.line(x0, y0, x1, y1)
		}
	}

	return c.String()
}
