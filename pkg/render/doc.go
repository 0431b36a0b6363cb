// Package render bridges the canonical node list and the rendering layer.
//
// # Overview
//
// The rendering layer re-diffs its node list on every pass and uses
// referential equality as its change signal. Handing it freshly-allocated
// objects for unrelated state changes (a text edit, say) makes it treat
// every node as changed, which can cascade into further state updates and,
// in the worst case, an unbounded update loop.
//
// [Cache.Build] converts a node list plus selection state into render
// shells, reusing the previously returned shell pointer for every node whose
// render-relevant fields (position, selection, width, height) did not
// change. When nothing changed at all, the previously returned slice itself
// is returned. Pointer stability is the correctness contract here, not a
// performance nicety.
//
// # Ownership
//
// A Cache is scoped to one board and must be owned by a single logical
// caller (the rendering boundary). It is deliberately an explicit object
// passed around by the caller rather than hidden package state, so cache
// scope is a visible contract and tests can construct as many as they need.
package render
