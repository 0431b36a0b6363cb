package share

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/edenso/boardkit/pkg/board"
	bkerrors "github.com/edenso/boardkit/pkg/errors"
	"github.com/edenso/boardkit/pkg/layout"
	"github.com/edenso/boardkit/pkg/store"
)

func sourceNode() *board.Node {
	return &board.Node{
		ID:                "src",
		Position:          board.Point{X: 50, Y: 50},
		Width:             280,
		Height:            160,
		Title:             "idea",
		Content:           "body",
		Meta:              map[string]any{"color": "blue"},
		IsGenerating:      true,
		IsPromptCollapsed: true,
		CalendarEvent:     &board.CalendarEvent{EventID: "ev-1"},
		CreatedAt:         time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestDuplicatePosition(t *testing.T) {
	src := sourceNode()
	dup := Duplicate(src)

	want := board.Point{X: 50 + 280 + board.Gap, Y: 50}
	if dup.Position != want {
		t.Errorf("duplicate position = %v, want %v", dup.Position, want)
	}
	if dup.ID == src.ID || dup.ID == "" {
		t.Errorf("duplicate id = %q, want a fresh id", dup.ID)
	}
	if dup.Title != "idea" || dup.Content != "body" {
		t.Error("duplicate did not carry content")
	}
}

func TestDuplicateIsolation(t *testing.T) {
	src := sourceNode()
	dup := Duplicate(src)

	src.Meta["color"] = "red"
	src.CalendarEvent.EventID = "changed"

	if dup.Meta["color"] != "blue" {
		t.Error("duplicate shares the source's metadata map")
	}
	if dup.CalendarEvent.EventID != "ev-1" {
		t.Error("duplicate shares the source's calendar event")
	}
}

func TestSharePositionEmptyBoard(t *testing.T) {
	got := SharePosition(nil)
	want := board.Point{X: board.Padding, Y: board.Padding}
	if got != want {
		t.Errorf("SharePosition(empty) = %v, want %v", got, want)
	}
}

func TestSharePositionNonEmptyBoard(t *testing.T) {
	dest := layout.ArrangeAll([]board.Node{
		{ID: "a", Height: 200, CreatedAt: time.Unix(1, 0)},
	})

	got := SharePosition(dest)
	if got != layout.NextSlot(dest) {
		t.Errorf("SharePosition = %v, want the next masonry slot %v", got, layout.NextSlot(dest))
	}
}

func TestShare(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	_ = s.Put(ctx, &board.Board{ID: "dest", OwnerID: "github:1", Mode: board.ModeFreeFlow})

	src := sourceNode()
	shared, err := Share(ctx, s, "github:1", "dest", src)
	if err != nil {
		t.Fatalf("Share: %v", err)
	}

	if shared.IsGenerating || shared.IsPromptCollapsed {
		t.Error("transient flags were not reset on share")
	}
	if shared.CalendarEvent != nil {
		t.Error("calendar event was not stripped on share")
	}
	want := board.Point{X: board.Padding, Y: board.Padding}
	if shared.Position != want {
		t.Errorf("shared position = %v, want %v", shared.Position, want)
	}

	// Persisted?
	dest, err := s.Get(ctx, "dest")
	if err != nil {
		t.Fatal(err)
	}
	if len(dest.Nodes) != 1 || dest.Nodes[0].ID != shared.ID {
		t.Errorf("destination board nodes = %+v, want the shared copy", dest.Nodes)
	}

	// Clone isolation across the storage boundary.
	src.Meta["color"] = "red"
	dest, _ = s.Get(ctx, "dest")
	if dest.Nodes[0].Meta["color"] != "blue" {
		t.Error("shared copy aliases the source's metadata")
	}
}

func TestShareIntoPackedBoard(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	nodes := layout.ArrangeAll([]board.Node{
		{ID: "a", Height: 120, CreatedAt: time.Unix(1, 0)},
		{ID: "b", Height: 300, CreatedAt: time.Unix(2, 0)},
	})
	_ = s.Put(ctx, &board.Board{ID: "dest", OwnerID: "github:1", Mode: board.ModeMasonry, Nodes: nodes})

	wantSlot := layout.NextSlot(nodes)
	shared, err := Share(ctx, s, "github:1", "dest", sourceNode())
	if err != nil {
		t.Fatalf("Share: %v", err)
	}
	if shared.Position != wantSlot {
		t.Errorf("shared position = %v, want next masonry slot %v", shared.Position, wantSlot)
	}
}

func TestShareValidation(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()

	tests := []struct {
		name     string
		userID   string
		boardID  string
		wantCode bkerrors.Code
	}{
		{"NoUser", "", "dest", bkerrors.ErrCodeUnauthorized},
		{"NoBoard", "github:1", "", bkerrors.ErrCodeInvalidBoard},
		{"MissingBoard", "github:1", "nope", bkerrors.ErrCodeBoardNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Share(ctx, s, tt.userID, tt.boardID, sourceNode())
			if !bkerrors.Is(err, tt.wantCode) {
				t.Errorf("Share code = %v, want %v", bkerrors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestShareForbidden(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	_ = s.Put(ctx, &board.Board{ID: "dest", OwnerID: "github:2"})

	_, err := Share(ctx, s, "github:1", "dest", sourceNode())
	if !bkerrors.Is(err, bkerrors.ErrCodeForbidden) {
		t.Errorf("Share into foreign board code = %v, want FORBIDDEN", bkerrors.GetCode(err))
	}
}

func TestShareStorageErrorPropagates(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("backend down")
	s := &failingStore{err: boom}

	_, err := Share(ctx, s, "github:1", "dest", sourceNode())
	if !errors.Is(err, boom) {
		t.Errorf("Share err = %v, want the storage error to propagate", err)
	}
}

// failingStore fails every operation with a fixed error.
type failingStore struct{ err error }

func (f *failingStore) Get(context.Context, string) (*board.Board, error) {
	return nil, f.err
}
func (f *failingStore) Put(context.Context, *board.Board) error { return f.err }
func (f *failingStore) Delete(context.Context, string) error    { return f.err }
func (f *failingStore) List(context.Context, string) ([]*board.Board, error) {
	return nil, f.err
}
