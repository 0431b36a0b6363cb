package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edenso/boardkit/pkg/boardio"
	"github.com/edenso/boardkit/pkg/engine"
)

// arrangeCommand creates the arrange command for repacking a board file.
func (c *CLI) arrangeCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "arrange [board.json]",
		Short: "Repack a board into the masonry grid",
		Long: `Repack a board into the masonry grid.

The arrange command takes a board.json file and recomputes every node
position with the shortest-column-first masonry packer. Nodes keep their
creation order; free-flow boards are left untouched.

The result is written to a new file by default so the input stays intact.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runArrange(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.arranged.json)")

	return cmd
}

// runArrange loads the board, repacks it, and writes the output file.
func (c *CLI) runArrange(ctx context.Context, input, output string) error {
	b, err := boardio.ImportFile(input)
	if err != nil {
		return fmt.Errorf("load board %s: %w", input, err)
	}

	eng := engine.New(c.Logger)

	spinner := newSpinnerWithContext(ctx, "Arranging board...")
	spinner.Start()
	b.Nodes = eng.Arrange(ctx, b)
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".arranged.json"
	}

	if err := boardio.ExportFile(b, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Board arranged")
	printFile(outputPath)
	printStats(len(b.Nodes), len(b.Edges))
	printNewline()
	printNextStep("Render", "boardkit render "+outputPath)

	return nil
}
