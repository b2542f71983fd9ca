// Package render holds presentation-only configuration for external
// visualizers: graph layout choice, node/font sizing, and the per-day
// color palette. Nothing in this package is ever consulted by the
// scheduling core — changing a color or a layout cannot change a
// graph, a coloring, or a validation result.
//
// Options are decoded from loosely-typed input (JSON maps) with
// mapstructure and validated against enumerated bounds.
package render
