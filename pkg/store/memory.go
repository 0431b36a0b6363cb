package store

import (
	"context"
	"sort"
	"sync"

	"github.com/edenso/boardkit/pkg/board"
)

// MemoryStore is an in-memory board store for development and tests.
// Safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	boards map[string]*board.Board
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{boards: make(map[string]*board.Board)}
}

// Get retrieves a deep copy of the board with the given id.
func (s *MemoryStore) Get(ctx context.Context, id string) (*board.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.boards[id]
	if !ok {
		return nil, ErrNotFound
	}
	return b.Clone(), nil
}

// Put stores a deep copy of the board.
func (s *MemoryStore) Put(ctx context.Context, b *board.Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.boards[b.ID] = b.Clone()
	return nil
}

// Delete removes a board. Missing boards are ignored.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.boards, id)
	return nil
}

// List returns copies of all boards owned by ownerID, newest first.
func (s *MemoryStore) List(ctx context.Context, ownerID string) ([]*board.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*board.Board
	for _, b := range s.boards {
		if b.OwnerID == ownerID {
			out = append(out, b.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
