package hexgrid

// boundaryEps absorbs floating-point flicker on past-the-boundary
// comparisons, so a hexagon exactly flush with the region edge is kept.
const boundaryEps = 0.001

// ComputeLayout solves hexagon dimensions for the region and walks rows
// and columns to produce the ordered hex center list.
//
// Coordinates are offsets from the region center; the region spans
// [−width/2, width/2] × [−height/2, height/2]. Rows start adjacent to
// the edge selected by opts.StartFromMin and grow toward the far edge;
// odd-indexed rows shift by Dim.RowOffset (the honeycomb brick offset).
//
// With AllowPartial=false only whole hexagons are emitted: each row holds
// at most numX centers, and a row whose near side would cross the far
// height boundary is not emitted. With AllowPartial=true the walk starts
// one row and one column early and runs past numX until a hexagon no
// longer overlaps the region at all, so clipped hexagons along every
// boundary are included.
//
// Errors:
//   - any SolveDimensions error (width axis).
//   - ErrNonPositiveSize — height ≤ 0.
//   - ErrNoFittingHexes  — the walk emitted zero centers.
func ComputeLayout(width, height float64, numX int, margin float64, opts LayoutOptions) (*Layout, error) {
	if height <= 0 {
		return nil, ErrNonPositiveSize
	}
	dim, err := SolveDimensions(width, numX, margin, opts.Orientation)
	if err != nil {
		return nil, err
	}

	halfW := dim.HexWidth / 2
	halfH := dim.HexHeight / 2
	minX, maxX := -width/2, width/2
	minY, maxY := -height/2, height/2

	startX := minX + halfW
	startY := minY + halfH
	sign := 1.0
	if !opts.StartFromMin {
		startY = maxY - halfH
		sign = -1.0
	}

	l := &Layout{Radius: dim.Radius, Dim: dim, Orientation: opts.Orientation}

	firstRow := 0
	firstCol := 0
	if opts.AllowPartial {
		// Catch partial hexes straddling the start edges.
		firstRow = -1
		firstCol = -1
	}

	for row := firstRow; ; row++ {
		y := startY + float64(row)*dim.RowSpacing*sign

		if opts.AllowPartial {
			// Stop only once the hexagon clears the far edge entirely.
			if sign > 0 && y-halfH > maxY+boundaryEps {
				break
			}
			if sign < 0 && y+halfH < minY-boundaryEps {
				break
			}
			// The pre-row may sit entirely outside the start edge.
			if sign > 0 && y+halfH < minY-boundaryEps {
				continue
			}
			if sign < 0 && y-halfH > maxY+boundaryEps {
				continue
			}
		} else {
			// Whole hexagons only: stop before the near side crosses.
			if sign > 0 && y+halfH > maxY+boundaryEps {
				break
			}
			if sign < 0 && y-halfH < minY-boundaryEps {
				break
			}
		}

		xOff := 0.0
		if row%2 != 0 {
			xOff = dim.RowOffset
		}

		for col := firstCol; ; col++ {
			x := startX + float64(col)*dim.ColSpacing + xOff
			if opts.AllowPartial {
				if x-halfW > maxX+boundaryEps {
					break
				}
				if x+halfW < minX-boundaryEps {
					continue
				}
			} else {
				if col >= numX || x+halfW > maxX+boundaryEps {
					break
				}
			}
			l.Centers = append(l.Centers, Point{X: x, Y: y})
			l.rowIdx = append(l.rowIdx, row)
		}
	}

	if len(l.Centers) == 0 {
		return nil, ErrNoFittingHexes
	}

	return l, nil
}
