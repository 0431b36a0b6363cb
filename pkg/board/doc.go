// Package board defines the core data model for idea boards: nodes, edges,
// boards, and the geometry constants that every layout computation shares.
//
// # Overview
//
// A board is an insertion-ordered collection of nodes plus the edges that
// connect them. Nodes carry a top-left position in board-local coordinates
// and optional width/height; absent dimensions fall back to defaults and all
// dimensions are clamped to the engine's bounds.
//
// # Geometry Contract
//
// The constants in this package (padding, gap, column count, node dimension
// bounds) form a contract with the rendering layer's own sizing rules. The
// front-end bakes the same values into its CSS; a mismatch between the two is
// a defect, not a configuration choice. They are deliberately constants
// rather than configuration.
//
// # Purity
//
// Nothing in this package performs I/O. Layout packages consume node slices
// from here and return new slices; they never mutate their inputs.
package board
