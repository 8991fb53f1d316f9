// Package layout implements the geometry and span-sizing primitives behind
// the two-pass Measure/Arrange engine.
//
// It holds float64 sizes, rectangles and thicknesses, the [SizeSpec] grammar
// for grid spans (absolute, auto and star), and [ResolveGrid], which sizes the
// rows and columns of a grid and places its children. Types are re-exported
// through the root panel package for public consumption.
//
// Nothing in this package caches or logs; it is a pure function of its
// inputs plus whatever the supplied [Layoutable] children report.
package layout
