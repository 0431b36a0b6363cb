package layout

import (
	"github.com/edenso/boardkit/pkg/board"
)

// =============================================================================
// Free-Flow Placement
// =============================================================================

// PlaceNext returns the slot for a node appended in free-flow mode:
// immediately to the right of the most recently created node, at the same y.
// No existing node moves. An empty board yields the padding corner.
//
// The most recent node is the one with the latest CreatedAt; ties go to the
// later slice position so repeated appends walk rightward deterministically.
func PlaceNext(nodes []board.Node) board.Point {
	if len(nodes) == 0 {
		return board.Point{X: board.Padding, Y: board.Padding}
	}

	latest := 0
	for i := 1; i < len(nodes); i++ {
		if !nodes[i].CreatedAt.Before(nodes[latest].CreatedAt) {
			latest = i
		}
	}

	src := &nodes[latest]
	w, _ := src.Dims()
	return board.Point{X: src.Position.X + w + board.Gap, Y: src.Position.Y}
}

// PlaceBranch returns the slot for a node branched from parent in free-flow
// mode: to the parent's right, stacking downward in steps of
// (DefaultHeight + Gap) past any node already occupying that spot. Multiple
// branches from one parent fan out vertically without overlap, and no
// existing node ever moves.
//
// The branch is assumed to take default dimensions; its final size is the
// caller's concern.
func PlaceBranch(parent *board.Node, nodes []board.Node) board.Point {
	pw, _ := parent.Dims()
	slot := board.Point{
		X: parent.Position.X + pw + board.Gap,
		Y: parent.Position.Y,
	}

	// len(nodes)+1 steps always suffice: each occupied slot is caused by at
	// least one distinct node.
	for range len(nodes) + 1 {
		candidate := board.Rect{X: slot.X, Y: slot.Y, W: board.DefaultWidth, H: board.DefaultHeight}
		if !collides(candidate, nodes) {
			break
		}
		slot.Y += board.DefaultHeight + board.Gap
	}
	return slot
}

// collides reports whether r overlaps any node's bounding box.
func collides(r board.Rect, nodes []board.Node) bool {
	for i := range nodes {
		if r.Intersects(nodes[i].Bounds()) {
			return true
		}
	}
	return false
}
