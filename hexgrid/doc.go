// Package hexgrid computes honeycomb hexagon layouts for a rectangular
// region: hexagon sizing, center tiling, boundary vertex emission, and
// area-window classification of the closed regions the host builds from
// the emitted edges.
//
// What:
//
//   - SolveDimensions derives circumradius and spacing constants from
//     (faceWidth, numX, margin, orientation). numX always governs the
//     width axis exactly; the height axis is filled by as many rows as
//     fit.
//   - ComputeLayout walks rows and columns to emit row-major hex centers
//     with the classic brick offset, honoring the partial-hex policy.
//   - Vertices/EmitBoundary turn a center into six ordered vertices and
//     edge segments, optionally remapped 90° into the host frame.
//   - ClassifyRegions filters closed-region areas back into valid
//     hexagon cutouts, discarding slivers and merged artifacts.
//
// Why:
//
//   - CAD hex patterning: cut a honeycomb from a selected face with an
//     exact hex count along a chosen edge and a fixed margin.
//   - Any 2D honeycomb fill where the pattern must reach the far edge of
//     the region (partial rows) while the count axis stays exact.
//
// The package is pure and deterministic: identical inputs always produce
// identical centers, boundaries and classifications. No I/O, no shared
// state; safe for concurrent use on independent inputs.
//
// Complexity:
//
//   - SolveDimensions: O(1).
//   - ComputeLayout: O(R×C) for R rows and C columns emitted.
//   - EmitBoundary: O(1) per hexagon.
//   - ClassifyRegions: O(n) over candidate regions.
//
// Errors:
//
//   - ErrNonPositiveSize: a face dimension or radius is not positive.
//   - ErrHexCount: requested hex count below 1.
//   - ErrNegativeMargin: negative margin.
//   - ErrMarginTooLarge: margin leaves no positive hexagon size.
//   - ErrNoFittingHexes: region too small for a single hexagon.
//   - ErrNoValidRegions: classification accepted zero regions.
package hexgrid
