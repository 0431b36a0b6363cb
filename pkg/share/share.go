// Package share implements node duplication and cross-board sharing.
//
// # Overview
//
// Duplication and sharing both copy a node's content into a new node with a
// fresh id and a computed position:
//
//   - [Duplicate] places the copy immediately beside its source, regardless
//     of the board's layout mode — a duplicate is user-initiated and should
//     appear at its origin.
//   - [Share] copies a node into a different board, placing it at that
//     board's next masonry slot (or the padding corner when empty). It is
//     the one flow in the engine that touches storage.
//
// Copies are deep and independent: mutating the source afterwards never
// changes the copy. Sharing additionally resets transient UI flags and
// strips fields that are meaningless outside their origin board, such as an
// attached calendar event.
//
// # Failure Modes
//
// Empty user or board identifiers are rejected before any lookup is
// attempted; a failure from the destination board's storage layer propagates
// to the caller. There is no silent fallback — a duplicate or ambiguous
// placement is worse than a visible error.
package share

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/edenso/boardkit/pkg/board"
	bkerrors "github.com/edenso/boardkit/pkg/errors"
	"github.com/edenso/boardkit/pkg/layout"
	"github.com/edenso/boardkit/pkg/observability"
	"github.com/edenso/boardkit/pkg/store"
)

// Duplicate returns a new node cloned from src: fresh id, deep-copied
// content, positioned immediately to the source's right. The position rule
// applies unconditionally, in both layout modes.
func Duplicate(src *board.Node) board.Node {
	n := src.Clone()
	n.ID = uuid.NewString()
	n.CreatedAt = time.Now().UTC()

	w, _ := src.Dims()
	n.Position = board.Point{
		X: src.Position.X + w + board.Gap,
		Y: src.Position.Y,
	}
	return n
}

// SharePosition returns the placement for a node entering destNodes: the
// padding corner for an empty board, otherwise the next masonry slot of the
// existing grid. The destination's own layout mode does not matter — a
// shared node always respects whatever grid already exists there.
func SharePosition(destNodes []board.Node) board.Point {
	if len(destNodes) == 0 {
		return board.Point{X: board.Padding, Y: board.Padding}
	}
	return layout.NextSlot(destNodes)
}

// Share copies src into the board destBoardID owned by userID and persists
// the result. It returns the shared copy as stored.
//
// The copy is deep and independent of src, its transient flags
// (IsGenerating, IsPromptCollapsed) are reset, and any attached calendar
// event is stripped. Identifier validation happens before any storage
// lookup; storage failures propagate to the caller with no partial writes.
func Share(ctx context.Context, s store.Store, userID, destBoardID string, src *board.Node) (board.Node, error) {
	if err := bkerrors.ValidateUserID(userID); err != nil {
		return board.Node{}, err
	}
	if err := bkerrors.ValidateBoardID(destBoardID); err != nil {
		return board.Node{}, err
	}

	dest, err := s.Get(ctx, destBoardID)
	observability.Store().OnLoad(ctx, destBoardID, err)
	if errors.Is(err, store.ErrNotFound) {
		return board.Node{}, bkerrors.Wrap(bkerrors.ErrCodeBoardNotFound, err, "destination board %s", destBoardID)
	}
	if err != nil {
		return board.Node{}, err
	}
	if dest.OwnerID != userID {
		return board.Node{}, bkerrors.New(bkerrors.ErrCodeForbidden, "board %s is not owned by the caller", destBoardID)
	}

	n := src.Clone()
	n.ID = uuid.NewString()
	n.CreatedAt = time.Now().UTC()
	n.Position = SharePosition(dest.Nodes)
	n.IsGenerating = false
	n.IsPromptCollapsed = false
	n.CalendarEvent = nil
	observability.Layout().OnPlace(ctx, string(dest.Mode), "share")

	dest.Nodes = append(dest.Nodes, n)
	dest.UpdatedAt = n.CreatedAt

	err = s.Put(ctx, dest)
	observability.Store().OnSave(ctx, destBoardID, len(dest.Nodes), err)
	if err != nil {
		return board.Node{}, err
	}
	return n, nil
}
