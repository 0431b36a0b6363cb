// Package boardio provides JSON import and export for board files.
//
// # Overview
//
// The CLI works on plain board files: one JSON object per board holding the
// node list, edges, and layout mode. The format matches the wire and
// storage representation of [board.Board], so a board exported from the API
// can be arranged or rendered locally and re-imported byte-compatibly.
//
// # JSON Format
//
//	{
//	  "id": "b1",
//	  "mode": "masonry",
//	  "nodes": [
//	    {"id": "n1", "position": {"x": 24, "y": 24}, "created_at": "..."}
//	  ],
//	  "edges": [
//	    {"from": "n1", "to": "n2"}
//	  ]
//	}
package boardio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/edenso/boardkit/pkg/board"
)

// ReadJSON decodes a board from r. Node ids must be unique within the
// board; edges must reference known node ids. A missing mode defaults to
// masonry. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*board.Board, error) {
	var b board.Board
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if b.Mode == "" {
		b.Mode = board.ModeMasonry
	}
	if !b.Mode.Valid() {
		return nil, fmt.Errorf("unknown layout mode %q", b.Mode)
	}

	seen := make(map[string]bool, len(b.Nodes))
	for i := range b.Nodes {
		id := b.Nodes[i].ID
		if id == "" {
			return nil, fmt.Errorf("node %d: missing id", i)
		}
		if seen[id] {
			return nil, fmt.Errorf("node %s: duplicate id", id)
		}
		seen[id] = true
	}
	for _, e := range b.Edges {
		if !seen[e.From] || !seen[e.To] {
			return nil, fmt.Errorf("edge %s->%s: unknown node", e.From, e.To)
		}
	}

	return &b, nil
}

// WriteJSON encodes a board as indented JSON and writes it to w.
// The output round-trips through [ReadJSON].
func WriteJSON(b *board.Board, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ImportFile reads a board file at path.
func ImportFile(path string) (*board.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	b, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return b, nil
}

// ExportFile writes a board to a file at path, replacing any existing file.
func ExportFile(b *board.Board, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := WriteJSON(b, f); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	return f.Close()
}
