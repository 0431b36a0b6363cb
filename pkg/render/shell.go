package render

import (
	"github.com/edenso/boardkit/pkg/board"
)

// ShellType is the node type tag the rendering layer dispatches on.
// Boards currently render a single card type.
const ShellType = "card"

// Shell is the minimal object the rendering layer needs per node. Data is a
// stable per-id placeholder, never the node's content, so content edits never
// invalidate a shell.
type Shell struct {
	ID       string      `json:"id"`
	Type     string      `json:"type"`
	Position board.Point `json:"position"`
	Data     *ShellData  `json:"data"`
	Selected bool        `json:"selected"`
	Width    float64     `json:"width,omitempty"`
	Height   float64     `json:"height,omitempty"`
}

// ShellData is the identity-stable payload placeholder. The rendering layer
// resolves actual node content by id through its own store subscription.
type ShellData struct {
	NodeID string `json:"node_id"`
}

// Cache holds the previously built shells for one board. The zero value is
// not usable; construct with NewCache.
type Cache struct {
	shells map[string]*Shell
	data   map[string]*ShellData
	prev   []*Shell
}

// NewCache creates an empty shell cache for a single board.
func NewCache() *Cache {
	return &Cache{
		shells: make(map[string]*Shell),
		data:   make(map[string]*ShellData),
	}
}

// Build returns render shells for nodes, reusing cached shell pointers for
// nodes whose position, selection, width, and height are unchanged. When
// every shell is reused and the list length and order match the previous
// call, the previous slice itself is returned.
//
// selected may be nil, meaning nothing is selected.
func (c *Cache) Build(nodes []board.Node, selected map[string]bool) []*Shell {
	out := make([]*Shell, len(nodes))
	next := make(map[string]*Shell, len(nodes))
	reusedAll := len(c.prev) == len(nodes)

	for i := range nodes {
		n := &nodes[i]
		sel := selected[n.ID]

		if prev, ok := c.shells[n.ID]; ok && shellCurrent(prev, n, sel) {
			out[i] = prev
			next[n.ID] = prev
			if reusedAll && c.prev[i] != prev {
				reusedAll = false
			}
			continue
		}
		reusedAll = false

		data, ok := c.data[n.ID]
		if !ok {
			data = &ShellData{NodeID: n.ID}
			c.data[n.ID] = data
		}
		s := &Shell{
			ID:       n.ID,
			Type:     ShellType,
			Position: n.Position,
			Data:     data,
			Selected: sel,
			Width:    n.Width,
			Height:   n.Height,
		}
		out[i] = s
		next[n.ID] = s
	}

	// Drop cache entries for removed nodes so a long-lived board cannot leak.
	c.shells = next
	for id := range c.data {
		if _, ok := next[id]; !ok {
			delete(c.data, id)
		}
	}

	if reusedAll {
		return c.prev
	}
	c.prev = out
	return out
}

// shellCurrent reports whether a cached shell still reflects the node's
// render-relevant fields.
func shellCurrent(s *Shell, n *board.Node, selected bool) bool {
	return s.Position == n.Position &&
		s.Selected == selected &&
		s.Width == n.Width &&
		s.Height == n.Height
}
