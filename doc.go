// Package hexcomb computes honeycomb hexagon tilings that fit a
// rectangular planar region — from hexagon sizing through center
// generation, boundary emission and region classification.
//
// What is hexcomb?
//
//	A pure, deterministic layout engine originally built as the math core
//	of a CAD hex-cutting tool:
//		• Dimension solving: circumradius and spacing constants from
//		  (faceWidth, numX, margin, orientation)
//		• Tiling: row-major hex centers with brick offset and a
//		  partial-hex overspill policy
//		• Boundary emission: six ordered vertices per hexagon, with an
//		  optional 90° frame remap into host 2D coordinates
//		• Classification: area-window filtering of the closed regions the
//		  host materializes from the emitted edges
//		• Frame resolution: mapping a selected 3D edge and its planar
//		  region into a 2D layout frame
//
// Everything runs to completion on immutable inputs: no I/O, no shared
// state, safe to call concurrently on independent inputs.
//
// Packages:
//
//	hexgrid/ — dimension solver, tiling generator, boundary emitter,
//	           region classifier
//	frame/   — plain-data 3D selection → 2D layout frame resolver
//	cmd/hexview — interactive terminal preview of a layout
//
// Quick sketch (pointy-top, numX=3):
//
//	 ⬡ ⬡ ⬡
//	⬡ ⬡ ⬡
//	 ⬡ ⬡ ⬡
//
// The host environment owns everything around the math: geometry
// selection, parameter dialogs, the subtractive operation and history
// grouping. hexcomb only ever sees plain coordinates and areas.
package hexcomb
