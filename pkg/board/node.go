package board

import (
	"time"
)

// =============================================================================
// Node
// =============================================================================

// Node is a single card on a board.
//
// Width and Height are optional: zero means "use the default dimension".
// Position is the top-left corner in board-local coordinates.
type Node struct {
	ID        string    `json:"id" bson:"id"`
	Position  Point     `json:"position" bson:"position"`
	Width     float64   `json:"width,omitempty" bson:"width,omitempty"`
	Height    float64   `json:"height,omitempty" bson:"height,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`

	// Content fields. The layout engine never reads these; they exist so
	// duplication and sharing can deep-clone them.
	Title   string         `json:"title,omitempty" bson:"title,omitempty"`
	Content string         `json:"content,omitempty" bson:"content,omitempty"`
	Meta    map[string]any `json:"meta,omitempty" bson:"meta,omitempty"`

	// Transient UI flags. Reset to defaults when a node is shared into
	// another board.
	IsGenerating      bool `json:"is_generating,omitempty" bson:"is_generating,omitempty"`
	IsPromptCollapsed bool `json:"is_prompt_collapsed,omitempty" bson:"is_prompt_collapsed,omitempty"`

	// CalendarEvent links the node to an external calendar entry. It is
	// meaningless outside the origin board and is stripped on share.
	CalendarEvent *CalendarEvent `json:"calendar_event,omitempty" bson:"calendar_event,omitempty"`
}

// CalendarEvent is an attached calendar entry (owned by the calendar
// integration, opaque to layout).
type CalendarEvent struct {
	EventID  string    `json:"event_id" bson:"event_id"`
	Title    string    `json:"title,omitempty" bson:"title,omitempty"`
	StartsAt time.Time `json:"starts_at" bson:"starts_at"`
	EndsAt   time.Time `json:"ends_at" bson:"ends_at"`
}

// Dims returns the node's effective dimensions: defaults applied when unset,
// clamped to the engine bounds otherwise.
func (n *Node) Dims() (w, h float64) {
	return ClampWidth(n.Width), ClampHeight(n.Height)
}

// Bounds returns the node's clamped bounding box.
func (n *Node) Bounds() Rect {
	w, h := n.Dims()
	return Rect{X: n.Position.X, Y: n.Position.Y, W: w, H: h}
}

// Clone returns a deep, independent copy of the node. Mutating the original's
// content after cloning never affects the copy: the metadata map and the
// calendar event are copied, not aliased.
func (n *Node) Clone() Node {
	out := *n
	if n.Meta != nil {
		out.Meta = make(map[string]any, len(n.Meta))
		for k, v := range n.Meta {
			out.Meta[k] = v
		}
	}
	if n.CalendarEvent != nil {
		ev := *n.CalendarEvent
		out.CalendarEvent = &ev
	}
	return out
}

// =============================================================================
// Edge
// =============================================================================

// Edge is a directed connection between two nodes on the same board.
type Edge struct {
	From string `json:"from" bson:"from"`
	To   string `json:"to" bson:"to"`
}
