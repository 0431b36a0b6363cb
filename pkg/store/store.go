// Package store provides board persistence backends.
//
// This package defines the Store interface for loading and saving boards,
// with implementations for different deployments:
//   - memory: In-memory storage for development/testing
//   - file: JSON files under a data directory, for CLI usage
//   - mongo: MongoDB-backed storage for the hosted platform
//
// The layout engine itself never touches a Store; only the cross-board
// sharing flow and the API layer do. Store failures are never retried or
// swallowed here — they propagate to the caller, which decides user-facing
// messaging.
package store

import (
	"context"
	"errors"

	"github.com/edenso/boardkit/pkg/board"
)

// ErrNotFound is returned when a requested board does not exist.
var ErrNotFound = errors.New("board not found")

// Store is the interface for board storage backends.
//
// Implementations return defensive copies: mutating a returned board never
// affects stored state until it is Put back.
type Store interface {
	// Get retrieves a board by id. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*board.Board, error)

	// Put stores a board, replacing any existing board with the same id.
	Put(ctx context.Context, b *board.Board) error

	// Delete removes a board. Deleting a missing board is not an error.
	Delete(ctx context.Context, id string) error

	// List returns all boards owned by the given user, newest first.
	List(ctx context.Context, ownerID string) ([]*board.Board, error)
}
