package board

import "time"

// Layout modes.
const (
	// ModeMasonry packs nodes into a shortest-column-first grid.
	ModeMasonry Mode = "masonry"

	// ModeFreeFlow leaves node positions user-driven; only the node directly
	// affected by an event ever moves.
	ModeFreeFlow Mode = "free-flow"
)

// Mode selects how a board arranges its nodes.
type Mode string

// Valid reports whether m is a known layout mode.
func (m Mode) Valid() bool {
	return m == ModeMasonry || m == ModeFreeFlow
}

// Board is one canvas: an insertion-ordered node list, the edges connecting
// the nodes, and the board's layout mode. The layout engine treats boards as
// read-only inputs; ownership of board state lives with the caller.
type Board struct {
	ID        string    `json:"id" bson:"_id"`
	OwnerID   string    `json:"owner_id" bson:"owner_id"`
	Title     string    `json:"title,omitempty" bson:"title,omitempty"`
	Mode      Mode      `json:"mode" bson:"mode"`
	Nodes     []Node    `json:"nodes" bson:"nodes"`
	Edges     []Edge    `json:"edges,omitempty" bson:"edges,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Clone returns a deep copy of the board: nodes are cloned individually and
// the edge slice is copied, so the result shares no mutable state with b.
func (b *Board) Clone() *Board {
	out := *b
	if b.Nodes != nil {
		out.Nodes = make([]Node, len(b.Nodes))
		for i := range b.Nodes {
			out.Nodes[i] = b.Nodes[i].Clone()
		}
	}
	if b.Edges != nil {
		out.Edges = make([]Edge, len(b.Edges))
		copy(out.Edges, b.Edges)
	}
	return &out
}

// NodeIndex returns the index of the node with the given id, or -1.
func (b *Board) NodeIndex(id string) int {
	for i := range b.Nodes {
		if b.Nodes[i].ID == id {
			return i
		}
	}
	return -1
}

// Node returns a pointer to the node with the given id, or nil.
// The pointer aliases the board's slice; callers that need an independent
// copy should Clone it.
func (b *Board) Node(id string) *Node {
	if i := b.NodeIndex(id); i >= 0 {
		return &b.Nodes[i]
	}
	return nil
}
