package export

import (
	"strings"
	"testing"

	"github.com/edenso/boardkit/pkg/board"
)

func testBoard() *board.Board {
	return &board.Board{
		ID:   "b1",
		Mode: board.ModeMasonry,
		Nodes: []board.Node{
			{ID: "n1", Title: "Roadmap"},
			{ID: "n2", Title: "Q3 goals", Width: 320, Height: 200},
			{ID: "n3"},
		},
		Edges: []board.Edge{
			{From: "n1", To: "n2"},
			{From: "n1", To: "n3"},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testBoard(), Options{})

	if !strings.HasPrefix(dot, "digraph board {") {
		t.Errorf("missing digraph header:\n%s", dot)
	}
	for _, want := range []string{
		`"n1" [label="Roadmap"];`,
		`"n2" [label="Q3 goals"];`,
		`"n3" [label="n3"];`,
		`"n1" -> "n2";`,
		`"n1" -> "n3";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testBoard(), Options{Detailed: true})

	if !strings.Contains(dot, "id: n2") {
		t.Errorf("detailed label missing node id:\n%s", dot)
	}
	if !strings.Contains(dot, "320×200") {
		t.Errorf("detailed label missing dimensions:\n%s", dot)
	}
	// Unsized nodes report defaults.
	if !strings.Contains(dot, "280×160") {
		t.Errorf("detailed label missing default dimensions:\n%s", dot)
	}
}

func TestToDOTEmptyBoard(t *testing.T) {
	dot := ToDOT(&board.Board{ID: "empty", Mode: board.ModeMasonry}, Options{})
	if !strings.Contains(dot, "digraph board {") || !strings.Contains(dot, "}") {
		t.Errorf("empty board should still produce a valid graph:\n%s", dot)
	}
}
