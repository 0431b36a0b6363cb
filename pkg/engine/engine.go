// Package engine dispatches placement operations by board layout mode.
//
// The layout strategies in [github.com/edenso/boardkit/pkg/layout] are pure
// and mode-agnostic; Engine is the thin coordinator that picks the right one
// for a board's mode, applies dimension clamping, and emits observability
// events. Like the strategies it wraps, Engine never mutates its inputs.
//
// Boards with an unknown mode are treated as masonry, the default.
package engine

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/edenso/boardkit/pkg/board"
	bkerrors "github.com/edenso/boardkit/pkg/errors"
	"github.com/edenso/boardkit/pkg/layout"
	"github.com/edenso/boardkit/pkg/observability"
)

// Engine computes node placements for boards.
type Engine struct {
	logger *log.Logger
}

// New creates an engine. A nil logger falls back to the default logger.
func New(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{logger: logger}
}

// NextSlot returns the position for a node appended to the board: the next
// masonry slot in masonry mode, the spot right of the most recent node in
// free-flow mode.
func (e *Engine) NextSlot(ctx context.Context, b *board.Board) board.Point {
	observability.Layout().OnPlace(ctx, string(b.Mode), "append")
	if b.Mode == board.ModeFreeFlow {
		return layout.PlaceNext(b.Nodes)
	}
	return layout.NextSlot(b.Nodes)
}

// PlaceBranch returns the position for a node branched from the parent with
// the given id. Free-flow boards fan branches out beside the parent; masonry
// boards simply hand out the next grid slot.
func (e *Engine) PlaceBranch(ctx context.Context, b *board.Board, parentID string) (board.Point, error) {
	parent := b.Node(parentID)
	if parent == nil {
		return board.Point{}, bkerrors.New(bkerrors.ErrCodeNodeNotFound, "branch parent %s not on board %s", parentID, b.ID)
	}

	observability.Layout().OnPlace(ctx, string(b.Mode), "branch")
	if b.Mode == board.ModeFreeFlow {
		return layout.PlaceBranch(parent, b.Nodes), nil
	}
	return layout.NextSlot(b.Nodes), nil
}

// Arrange repacks the whole board ("tidy up", or a switch into masonry
// mode) and returns the new node slice. Free-flow boards are returned
// unchanged: free-flow trades automatic tidiness for layout stability.
func (e *Engine) Arrange(ctx context.Context, b *board.Board) []board.Node {
	if b.Mode == board.ModeFreeFlow {
		out := make([]board.Node, len(b.Nodes))
		copy(out, b.Nodes)
		return out
	}

	start := time.Now()
	observability.Layout().OnArrangeStart(ctx, string(b.Mode), len(b.Nodes))
	out := layout.ArrangeAll(b.Nodes)
	observability.Layout().OnArrangeComplete(ctx, string(b.Mode), time.Since(start))
	e.logger.Debug("arranged board", "board", b.ID, "nodes", len(out))
	return out
}

// Resize applies new dimensions to one node and returns the resulting node
// slice. Dimensions are clamped to the engine bounds, never rejected. In
// masonry mode the node's column is restacked; in free-flow mode every other
// node's position is untouched.
func (e *Engine) Resize(ctx context.Context, b *board.Board, nodeID string, width, height float64) ([]board.Node, error) {
	idx := b.NodeIndex(nodeID)
	if idx < 0 {
		return nil, bkerrors.New(bkerrors.ErrCodeNodeNotFound, "node %s not on board %s", nodeID, b.ID)
	}

	out := make([]board.Node, len(b.Nodes))
	copy(out, b.Nodes)
	out[idx].Width = board.ClampWidth(width)
	out[idx].Height = board.ClampHeight(height)

	if b.Mode == board.ModeFreeFlow {
		return out, nil
	}

	start := time.Now()
	observability.Layout().OnArrangeStart(ctx, string(b.Mode), len(out))
	out = layout.RearrangeAfterResize(out, nodeID)
	observability.Layout().OnArrangeComplete(ctx, string(b.Mode), time.Since(start))
	return out, nil
}
