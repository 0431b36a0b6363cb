package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/edenso/boardkit/pkg/board"
	bkerrors "github.com/edenso/boardkit/pkg/errors"
	"github.com/edenso/boardkit/pkg/render"
	"github.com/edenso/boardkit/pkg/share"
	"github.com/edenso/boardkit/pkg/store"
)

// =============================================================================
// Helpers
// =============================================================================

// loadOwnedBoard loads a board and verifies the requesting user owns it.
func (s *Server) loadOwnedBoard(r *http.Request, boardID string) (*board.Board, error) {
	sess := sessionFromContext(r.Context())
	if sess == nil {
		return nil, bkerrors.New(bkerrors.ErrCodeUnauthorized, "not authenticated")
	}
	if err := bkerrors.ValidateBoardID(boardID); err != nil {
		return nil, err
	}

	b, err := s.boards.Get(r.Context(), boardID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, bkerrors.Wrap(bkerrors.ErrCodeBoardNotFound, err, "board %s", boardID)
	}
	if err != nil {
		return nil, bkerrors.Wrap(bkerrors.ErrCodeStorage, err, "load board %s", boardID)
	}
	if b.OwnerID != sess.UserID {
		return nil, bkerrors.New(bkerrors.ErrCodeForbidden, "board %s is not owned by %s", boardID, sess.UserID)
	}
	return b, nil
}

// saveBoard persists a board with a fresh UpdatedAt.
func (s *Server) saveBoard(r *http.Request, b *board.Board) error {
	b.UpdatedAt = time.Now().UTC()
	if err := s.boards.Put(r.Context(), b); err != nil {
		return bkerrors.Wrap(bkerrors.ErrCodeStorage, err, "save board %s", b.ID)
	}
	return nil
}

// =============================================================================
// Board CRUD
// =============================================================================

// boardSummary is the list-view shape of a board.
type boardSummary struct {
	ID        string     `json:"id"`
	Title     string     `json:"title,omitempty"`
	Mode      board.Mode `json:"mode"`
	NodeCount int        `json:"node_count"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (s *Server) handleListBoards(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	boards, err := s.boards.List(r.Context(), sess.UserID)
	if err != nil {
		writeError(w, bkerrors.Wrap(bkerrors.ErrCodeStorage, err, "list boards"))
		return
	}

	out := make([]boardSummary, 0, len(boards))
	for _, b := range boards {
		out = append(out, boardSummary{
			ID:        b.ID,
			Title:     b.Title,
			Mode:      b.Mode,
			NodeCount: len(b.Nodes),
			UpdatedAt: b.UpdatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type createBoardRequest struct {
	Title string     `json:"title"`
	Mode  board.Mode `json:"mode"`
}

func (s *Server) handleCreateBoard(w http.ResponseWriter, r *http.Request) {
	var req createBoardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Mode == "" {
		req.Mode = board.ModeMasonry
	}
	if !req.Mode.Valid() {
		writeError(w, bkerrors.New(bkerrors.ErrCodeInvalidMode, "unknown layout mode %q", req.Mode))
		return
	}

	sess := sessionFromContext(r.Context())
	now := time.Now().UTC()
	b := &board.Board{
		ID:        uuid.NewString(),
		OwnerID:   sess.UserID,
		Title:     req.Title,
		Mode:      req.Mode,
		Nodes:     []board.Node{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.boards.Put(r.Context(), b); err != nil {
		writeError(w, bkerrors.Wrap(bkerrors.ErrCodeStorage, err, "save board %s", b.ID))
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	b, err := s.loadOwnedBoard(r, chi.URLParam(r, "boardID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleDeleteBoard(w http.ResponseWriter, r *http.Request) {
	b, err := s.loadOwnedBoard(r, chi.URLParam(r, "boardID"))
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.boards.Delete(r.Context(), b.ID); err != nil {
		writeError(w, bkerrors.Wrap(bkerrors.ErrCodeStorage, err, "delete board %s", b.ID))
		return
	}

	s.shellsMu.Lock()
	delete(s.shells, b.ID)
	s.shellsMu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

// handleShells returns the render shells for a board. The optional selected
// query parameter is a comma-separated list of node ids to mark as selected.
func (s *Server) handleShells(w http.ResponseWriter, r *http.Request) {
	b, err := s.loadOwnedBoard(r, chi.URLParam(r, "boardID"))
	if err != nil {
		writeError(w, err)
		return
	}

	var selected map[string]bool
	if raw := r.URL.Query().Get("selected"); raw != "" {
		selected = make(map[string]bool)
		for _, id := range strings.Split(raw, ",") {
			selected[id] = true
		}
	}

	// Build under the lock; a board's cache is not safe for concurrent use.
	s.shellsMu.Lock()
	cache, ok := s.shells[b.ID]
	if !ok {
		cache = render.NewCache()
		s.shells[b.ID] = cache
	}
	shells := cache.Build(b.Nodes, selected)
	s.shellsMu.Unlock()

	writeJSON(w, http.StatusOK, shells)
}

// =============================================================================
// Layout Operations
// =============================================================================

func (s *Server) handleArrange(w http.ResponseWriter, r *http.Request) {
	b, err := s.loadOwnedBoard(r, chi.URLParam(r, "boardID"))
	if err != nil {
		writeError(w, err)
		return
	}

	b.Nodes = s.engine.Arrange(r.Context(), b)
	if err := s.saveBoard(r, b); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

type createNodeRequest struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// newNode builds a node from a create request; zero dimensions keep the
// defaults, anything else is clamped.
func newNode(req createNodeRequest, pos board.Point) board.Node {
	n := board.Node{
		ID:        uuid.NewString(),
		Position:  pos,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}
	if req.Width != 0 {
		n.Width = board.ClampWidth(req.Width)
	}
	if req.Height != 0 {
		n.Height = board.ClampHeight(req.Height)
	}
	return n
}

func (s *Server) handleAppendNode(w http.ResponseWriter, r *http.Request) {
	b, err := s.loadOwnedBoard(r, chi.URLParam(r, "boardID"))
	if err != nil {
		writeError(w, err)
		return
	}
	var req createNodeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	n := newNode(req, s.engine.NextSlot(r.Context(), b))
	b.Nodes = append(b.Nodes, n)
	if err := s.saveBoard(r, b); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

func (s *Server) handleBranch(w http.ResponseWriter, r *http.Request) {
	b, err := s.loadOwnedBoard(r, chi.URLParam(r, "boardID"))
	if err != nil {
		writeError(w, err)
		return
	}
	var req createNodeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	parentID := chi.URLParam(r, "nodeID")
	pos, err := s.engine.PlaceBranch(r.Context(), b, parentID)
	if err != nil {
		writeError(w, err)
		return
	}

	n := newNode(req, pos)
	b.Nodes = append(b.Nodes, n)
	b.Edges = append(b.Edges, board.Edge{From: parentID, To: n.ID})
	if err := s.saveBoard(r, b); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

type resizeRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (s *Server) handleResize(w http.ResponseWriter, r *http.Request) {
	b, err := s.loadOwnedBoard(r, chi.URLParam(r, "boardID"))
	if err != nil {
		writeError(w, err)
		return
	}
	var req resizeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	nodes, err := s.engine.Resize(r.Context(), b, chi.URLParam(r, "nodeID"), req.Width, req.Height)
	if err != nil {
		writeError(w, err)
		return
	}

	b.Nodes = nodes
	if err := s.saveBoard(r, b); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// =============================================================================
// Duplicate & Share
// =============================================================================

func (s *Server) handleDuplicate(w http.ResponseWriter, r *http.Request) {
	b, err := s.loadOwnedBoard(r, chi.URLParam(r, "boardID"))
	if err != nil {
		writeError(w, err)
		return
	}

	src := b.Node(chi.URLParam(r, "nodeID"))
	if src == nil {
		writeError(w, bkerrors.New(bkerrors.ErrCodeNodeNotFound, "node %s not on board %s", chi.URLParam(r, "nodeID"), b.ID))
		return
	}

	dup := share.Duplicate(src)
	b.Nodes = append(b.Nodes, dup)
	if err := s.saveBoard(r, b); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dup)
}

type shareRequest struct {
	DestBoardID string `json:"dest_board_id"`
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	b, err := s.loadOwnedBoard(r, chi.URLParam(r, "boardID"))
	if err != nil {
		writeError(w, err)
		return
	}

	src := b.Node(chi.URLParam(r, "nodeID"))
	if src == nil {
		writeError(w, bkerrors.New(bkerrors.ErrCodeNodeNotFound, "node %s not on board %s", chi.URLParam(r, "nodeID"), b.ID))
		return
	}

	var req shareRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	sess := sessionFromContext(r.Context())
	shared, err := share.Share(r.Context(), s.boards, sess.UserID, req.DestBoardID, src)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, shared)
}
