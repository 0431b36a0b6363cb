package render

import (
	"testing"
	"time"

	"github.com/edenso/boardkit/pkg/board"
)

func shellNode(id string, x, y float64) board.Node {
	return board.Node{
		ID:        id,
		Position:  board.Point{X: x, Y: y},
		Content:   "original",
		CreatedAt: time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC),
	}
}

func TestBuildIdempotent(t *testing.T) {
	c := NewCache()
	nodes := []board.Node{shellNode("a", 24, 24), shellNode("b", 320, 24)}

	first := c.Build(nodes, nil)
	second := c.Build(nodes, nil)

	if len(first) != 2 {
		t.Fatalf("Build returned %d shells, want 2", len(first))
	}
	if !sameSlice(first, second) {
		t.Error("identical input did not return the previous slice reference")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("shell %d was reallocated on identical input", i)
		}
	}
}

func TestBuildContentEditKeepsShell(t *testing.T) {
	c := NewCache()
	nodes := []board.Node{shellNode("a", 24, 24)}
	first := c.Build(nodes, nil)

	edited := []board.Node{shellNode("a", 24, 24)}
	edited[0].Content = "rewritten by the user"
	edited[0].Title = "new title"

	second := c.Build(edited, nil)
	if first[0] != second[0] {
		t.Error("content-only edit produced a new shell")
	}
	if !sameSlice(first, second) {
		t.Error("content-only edit produced a new slice")
	}
}

func TestBuildPositionChangeReplacesOneShell(t *testing.T) {
	c := NewCache()
	nodes := []board.Node{shellNode("a", 24, 24), shellNode("b", 320, 24)}
	first := c.Build(nodes, nil)

	moved := []board.Node{shellNode("a", 24, 200), shellNode("b", 320, 24)}
	second := c.Build(moved, nil)

	if first[0] == second[0] {
		t.Error("moved node kept its stale shell")
	}
	if first[1] != second[1] {
		t.Error("unmoved node's shell was reallocated")
	}
	if sameSlice(first, second) {
		t.Error("changed build returned the previous slice reference")
	}
	if second[0].Position.Y != 200 {
		t.Errorf("new shell position.Y = %v, want 200", second[0].Position.Y)
	}
}

func TestBuildSelectionChange(t *testing.T) {
	c := NewCache()
	nodes := []board.Node{shellNode("a", 24, 24), shellNode("b", 320, 24)}
	first := c.Build(nodes, nil)

	second := c.Build(nodes, map[string]bool{"b": true})
	if first[0] != second[0] {
		t.Error("unselected node's shell changed")
	}
	if first[1] == second[1] {
		t.Error("selected node kept its unselected shell")
	}
	if !second[1].Selected {
		t.Error("new shell does not carry the selection flag")
	}

	// Deselect: shell must change again, back to Selected=false.
	third := c.Build(nodes, nil)
	if third[1].Selected {
		t.Error("deselection did not clear the flag")
	}
}

func TestBuildDataPlaceholderStable(t *testing.T) {
	c := NewCache()
	nodes := []board.Node{shellNode("a", 24, 24)}
	first := c.Build(nodes, nil)

	// Move the node: the shell is replaced but the data placeholder survives.
	moved := []board.Node{shellNode("a", 24, 400)}
	second := c.Build(moved, nil)

	if first[0] == second[0] {
		t.Fatal("moved node kept its shell")
	}
	if first[0].Data != second[0].Data {
		t.Error("data placeholder was reallocated across shell rebuilds")
	}
}

func TestBuildReorderReturnsNewSlice(t *testing.T) {
	c := NewCache()
	a, b := shellNode("a", 24, 24), shellNode("b", 320, 24)
	first := c.Build([]board.Node{a, b}, nil)
	second := c.Build([]board.Node{b, a}, nil)

	if sameSlice(first, second) {
		t.Error("reordered input returned the previous slice reference")
	}
	// Individual shells are still reused: nothing render-relevant changed.
	if first[0] != second[1] || first[1] != second[0] {
		t.Error("reorder reallocated unchanged shells")
	}
}

func TestBuildDropsRemovedNodes(t *testing.T) {
	c := NewCache()
	c.Build([]board.Node{shellNode("a", 24, 24), shellNode("b", 320, 24)}, nil)
	c.Build([]board.Node{shellNode("b", 320, 24)}, nil)

	if _, ok := c.shells["a"]; ok {
		t.Error("removed node still cached")
	}
	if _, ok := c.data["a"]; ok {
		t.Error("removed node's data placeholder still cached")
	}
}

func TestBuildEmpty(t *testing.T) {
	c := NewCache()
	out := c.Build(nil, nil)
	if len(out) != 0 {
		t.Errorf("Build(nil) returned %d shells", len(out))
	}
}

// sameSlice reports whether two slices share the same backing array start,
// i.e. the stabilizer returned the previous slice itself.
func sameSlice(a, b []*Shell) bool {
	return len(a) == len(b) && len(a) > 0 && &a[0] == &b[0]
}
