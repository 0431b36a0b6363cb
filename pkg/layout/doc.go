// Package layout implements node placement for idea boards.
//
// # Overview
//
// Two placement strategies are provided:
//
//   - Masonry: deterministic multi-column packing where each node joins the
//     currently shortest column ([ArrangeAll], [NextSlot],
//     [RearrangeAfterResize]).
//   - Free-flow: single-node placement adjacent to a reference node that
//     never moves any other node ([PlaceNext], [PlaceBranch]).
//
// Every function is a pure function of the node slice passed in: inputs are
// never mutated, results are new slices or plain points. Placement is total
// over its input domain — empty boards, single nodes, and missing dimensions
// all have defined behavior via defaulting and clamping, so there are no
// error returns.
//
// # Determinism
//
// Masonry packing sorts nodes by creation time ascending with a stable
// tie-break on input order, and breaks column-height ties toward the lowest
// column index. The same input therefore always produces the same positions,
// and no two packed nodes overlap.
package layout
