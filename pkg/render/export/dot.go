// Package export renders boards as node-link diagrams using Graphviz.
//
// This is an offline snapshot format: node cards become boxes, edges become
// arrows. Positions are Graphviz's own (a board's pixel coordinates rarely
// read well on paper); the point of an export is the structure, not the
// canvas geometry.
package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/edenso/boardkit/pkg/board"
)

// Options configures board export.
type Options struct {
	// Detailed includes node ids and dimensions in labels.
	// When false, only the title (or id) is shown.
	Detailed bool
}

// ToDOT converts a board to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG] or [RenderPNG].
func ToDOT(b *board.Board, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph board {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for i := range b.Nodes {
		n := &b.Nodes[i]
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, nodeLabel(n, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, e := range b.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(n *board.Node, detailed bool) string {
	label := n.Title
	if label == "" {
		label = n.ID
	}
	if !detailed {
		return label
	}

	w, h := n.Dims()
	parts := []string{
		fmt.Sprintf("id: %s", n.ID),
		fmt.Sprintf("%.0f×%.0f", w, h),
	}
	return label + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
