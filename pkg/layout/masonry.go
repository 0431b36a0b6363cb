package layout

import (
	"sort"

	"github.com/edenso/boardkit/pkg/board"
)

// =============================================================================
// Masonry Packing
// =============================================================================

// ArrangeAll packs every node into the masonry grid and returns a new slice
// with updated positions. Node identity and content are preserved; only
// Position changes. The result keeps the input's order.
//
// Nodes are assigned in creation order (CreatedAt ascending, stable tie-break
// on input order) to the column with the smallest running height, ties going
// to the lowest column index.
func ArrangeAll(nodes []board.Node) []board.Node {
	out := make([]board.Node, len(nodes))
	copy(out, nodes)
	if len(nodes) == 0 {
		return out
	}

	order := make([]int, len(nodes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return nodes[order[a]].CreatedAt.Before(nodes[order[b]].CreatedAt)
	})

	var next [board.Columns]float64
	for i := range next {
		next[i] = board.Padding
	}

	for _, idx := range order {
		c := shortestColumn(next)
		_, h := out[idx].Dims()
		out[idx].Position = board.Point{X: board.ColumnX(c), Y: next[c]}
		next[c] += h + board.Gap
	}
	return out
}

// NextSlot returns the position for one additional node appended to a
// masonry board, without repositioning anything. Column occupancy is derived
// from the nodes' actual positions, so the slot is correct even on boards
// whose nodes were hand-moved before a mode switch.
//
// An empty board yields the padding corner.
func NextSlot(nodes []board.Node) board.Point {
	next := columnFloors(nodes)
	c := shortestColumn(next)
	return board.Point{X: board.ColumnX(c), Y: next[c]}
}

// RearrangeAfterResize restacks only the column containing the resized node,
// closing or opening the vertical gap its new height created. Every other
// column is untouched, which keeps the call cheap enough for once-per-frame
// use during a resize drag.
//
// If resizedID is not on the board the input is returned repacked into a new
// slice with no position changes.
func RearrangeAfterResize(nodes []board.Node, resizedID string) []board.Node {
	out := make([]board.Node, len(nodes))
	copy(out, nodes)

	col := -1
	for i := range nodes {
		if nodes[i].ID == resizedID {
			col = board.ColumnFor(nodes[i].Position.X)
			break
		}
	}
	if col < 0 {
		return out
	}

	members := make([]int, 0, len(nodes))
	for i := range nodes {
		if board.ColumnFor(nodes[i].Position.X) == col {
			members = append(members, i)
		}
	}
	sort.SliceStable(members, func(a, b int) bool {
		return nodes[members[a]].Position.Y < nodes[members[b]].Position.Y
	})

	y := board.Padding
	for _, idx := range members {
		out[idx].Position = board.Point{X: board.ColumnX(col), Y: y}
		_, h := out[idx].Dims()
		y += h + board.Gap
	}
	return out
}

// shortestColumn returns the index of the column with the smallest next free
// y coordinate, ties broken toward the lowest index.
func shortestColumn(next [board.Columns]float64) int {
	c := 0
	for i := 1; i < board.Columns; i++ {
		if next[i] < next[c] {
			c = i
		}
	}
	return c
}

// columnFloors computes, per column, the y coordinate the next node in that
// column would occupy, derived from the actual node positions.
func columnFloors(nodes []board.Node) [board.Columns]float64 {
	var bottom [board.Columns]float64
	for i := range nodes {
		c := board.ColumnFor(nodes[i].Position.X)
		_, h := nodes[i].Dims()
		if end := nodes[i].Position.Y + h; end > bottom[c] {
			bottom[c] = end
		}
	}

	var next [board.Columns]float64
	for c := range next {
		if bottom[c] == 0 {
			next[c] = board.Padding
		} else {
			next[c] = bottom[c] + board.Gap
		}
	}
	return next
}
