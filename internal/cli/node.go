package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/edenso/boardkit/pkg/board"
	"github.com/edenso/boardkit/pkg/boardio"
	"github.com/edenso/boardkit/pkg/engine"
)

// addCommand creates the add command for appending a node to a board file.
func (c *CLI) addCommand() *cobra.Command {
	var (
		title   string
		content string
		width   float64
		height  float64
	)

	cmd := &cobra.Command{
		Use:   "add [board.json]",
		Short: "Add a node to a board",
		Long: `Add a node to a board.

The node is placed at the board's next slot: the shortest masonry column
on masonry boards, right of the most recent node on free-flow boards.
The board file is updated in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAdd(cmd.Context(), args[0], title, content, width, height)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "node title")
	cmd.Flags().StringVar(&content, "content", "", "node content")
	cmd.Flags().Float64Var(&width, "width", 0, "node width (default: engine default)")
	cmd.Flags().Float64Var(&height, "height", 0, "node height (default: engine default)")

	return cmd
}

func (c *CLI) runAdd(ctx context.Context, path, title, content string, width, height float64) error {
	b, err := boardio.ImportFile(path)
	if err != nil {
		return fmt.Errorf("load board %s: %w", path, err)
	}

	eng := engine.New(c.Logger)
	n := buildNode(title, content, width, height, eng.NextSlot(ctx, b))
	b.Nodes = append(b.Nodes, n)
	b.UpdatedAt = time.Now().UTC()

	if err := boardio.ExportFile(b, path); err != nil {
		return fmt.Errorf("write board %s: %w", path, err)
	}

	printSuccess("Node added")
	printKeyValue("id", n.ID)
	printKeyValue("position", fmt.Sprintf("%.0f, %.0f", n.Position.X, n.Position.Y))

	return nil
}

// branchCommand creates the branch command for growing a node off a parent.
func (c *CLI) branchCommand() *cobra.Command {
	var (
		title   string
		content string
	)

	cmd := &cobra.Command{
		Use:   "branch [board.json] [parent-node-id]",
		Short: "Branch a new node off an existing one",
		Long: `Branch a new node off an existing one.

On free-flow boards the child lands right of its parent, fanning downward
past occupied spots. On masonry boards it takes the next grid slot. An
edge from parent to child is recorded either way.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBranch(cmd.Context(), args[0], args[1], title, content)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "node title")
	cmd.Flags().StringVar(&content, "content", "", "node content")

	return cmd
}

func (c *CLI) runBranch(ctx context.Context, path, parentID, title, content string) error {
	b, err := boardio.ImportFile(path)
	if err != nil {
		return fmt.Errorf("load board %s: %w", path, err)
	}

	eng := engine.New(c.Logger)
	pos, err := eng.PlaceBranch(ctx, b, parentID)
	if err != nil {
		return err
	}

	n := buildNode(title, content, 0, 0, pos)
	b.Nodes = append(b.Nodes, n)
	b.Edges = append(b.Edges, board.Edge{From: parentID, To: n.ID})
	b.UpdatedAt = time.Now().UTC()

	if err := boardio.ExportFile(b, path); err != nil {
		return fmt.Errorf("write board %s: %w", path, err)
	}

	printSuccess("Node branched")
	printKeyValue("id", n.ID)
	printKeyValue("parent", parentID)
	printKeyValue("position", fmt.Sprintf("%.0f, %.0f", n.Position.X, n.Position.Y))

	return nil
}

// buildNode assembles a node with a fresh id; zero dimensions keep the
// engine defaults, anything else is clamped.
func buildNode(title, content string, width, height float64, pos board.Point) board.Node {
	n := board.Node{
		ID:        uuid.NewString(),
		Position:  pos,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if width != 0 {
		n.Width = board.ClampWidth(width)
	}
	if height != 0 {
		n.Height = board.ClampHeight(height)
	}
	return n
}
