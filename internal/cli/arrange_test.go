package cli

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/edenso/boardkit/pkg/board"
	"github.com/edenso/boardkit/pkg/boardio"
)

func testCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func writeTestBoard(t *testing.T, b *board.Board) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.json")
	if err := boardio.ExportFile(b, path); err != nil {
		t.Fatalf("write test board: %v", err)
	}
	return path
}

func TestRunArrange(t *testing.T) {
	base := time.Now()
	path := writeTestBoard(t, &board.Board{
		ID:   "b1",
		Mode: board.ModeMasonry,
		Nodes: []board.Node{
			{ID: "a", Position: board.Point{X: 500, Y: 500}, CreatedAt: base},
			{ID: "b", Position: board.Point{X: 5, Y: 5}, CreatedAt: base.Add(time.Second)},
		},
	})
	output := filepath.Join(t.TempDir(), "arranged.json")

	if err := testCLI().runArrange(context.Background(), path, output); err != nil {
		t.Fatalf("runArrange() error: %v", err)
	}

	got, err := boardio.ImportFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := board.Point{X: board.ColumnX(0), Y: board.Padding}
	if got.Nodes[0].Position != want {
		t.Errorf("node a position = %+v, want %+v", got.Nodes[0].Position, want)
	}

	// The input file is untouched.
	original, err := boardio.ImportFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if original.Nodes[0].Position.X != 500 {
		t.Error("arrange modified the input file")
	}
}

func TestRunArrangeDefaultOutput(t *testing.T) {
	path := writeTestBoard(t, &board.Board{ID: "b1", Mode: board.ModeMasonry})

	if err := testCLI().runArrange(context.Background(), path, ""); err != nil {
		t.Fatalf("runArrange() error: %v", err)
	}

	arranged := filepath.Join(filepath.Dir(path), "board.arranged.json")
	if _, err := boardio.ImportFile(arranged); err != nil {
		t.Errorf("default output not written: %v", err)
	}
}

func TestRunArrangeMissingInput(t *testing.T) {
	err := testCLI().runArrange(context.Background(), "/nonexistent/board.json", "")
	if err == nil {
		t.Error("expected error for missing input")
	}
}

func TestRunAdd(t *testing.T) {
	path := writeTestBoard(t, &board.Board{ID: "b1", Mode: board.ModeMasonry})

	if err := testCLI().runAdd(context.Background(), path, "idea", "some text", 0, 0); err != nil {
		t.Fatalf("runAdd() error: %v", err)
	}

	got, err := boardio.ImportFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Nodes) != 1 {
		t.Fatalf("nodes = %d, want 1", len(got.Nodes))
	}
	n := got.Nodes[0]
	if n.Title != "idea" || n.Content != "some text" {
		t.Errorf("node content = %q/%q", n.Title, n.Content)
	}
	want := board.Point{X: board.Padding, Y: board.Padding}
	if n.Position != want {
		t.Errorf("position = %+v, want %+v", n.Position, want)
	}
}

func TestRunBranch(t *testing.T) {
	path := writeTestBoard(t, &board.Board{
		ID:   "b1",
		Mode: board.ModeFreeFlow,
		Nodes: []board.Node{
			{ID: "parent", Position: board.Point{X: 100, Y: 100}, CreatedAt: time.Now()},
		},
	})

	if err := testCLI().runBranch(context.Background(), path, "parent", "child", ""); err != nil {
		t.Fatalf("runBranch() error: %v", err)
	}

	got, err := boardio.ImportFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Nodes) != 2 {
		t.Fatalf("nodes = %d, want 2", len(got.Nodes))
	}
	if len(got.Edges) != 1 || got.Edges[0].From != "parent" {
		t.Errorf("edges = %+v, want parent edge", got.Edges)
	}

	// Free-flow branch lands right of the parent.
	child := got.Nodes[1]
	wantX := 100.0 + board.DefaultWidth + board.Gap
	if child.Position.X != wantX {
		t.Errorf("child x = %v, want %v", child.Position.X, wantX)
	}
}

func TestRunBranchMissingParent(t *testing.T) {
	path := writeTestBoard(t, &board.Board{ID: "b1", Mode: board.ModeMasonry})

	err := testCLI().runBranch(context.Background(), path, "ghost", "", "")
	if err == nil {
		t.Error("expected error for missing parent")
	}
}
