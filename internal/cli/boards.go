package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/edenso/boardkit/pkg/board"
)

// boardsCommand creates the boards command for browsing stored boards.
func (c *CLI) boardsCommand() *cobra.Command {
	var (
		dir   string
		owner string
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "boards",
		Short: "Browse stored boards",
		Long: `Browse stored boards.

Lists the boards in the local data directory, newest first. Without
--plain an interactive picker opens; selecting a board prints its
details. Use --dir to point at a different data directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBoards(cmd.Context(), dir, owner, plain)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "data directory (default: XDG data dir)")
	cmd.Flags().StringVar(&owner, "owner", "local", "owner whose boards to list")
	cmd.Flags().BoolVar(&plain, "plain", false, "print a plain list instead of the picker")

	return cmd
}

func (c *CLI) runBoards(ctx context.Context, dir, owner string, plain bool) error {
	s, err := newLocalStore(dir)
	if err != nil {
		return fmt.Errorf("open board store: %w", err)
	}

	boards, err := s.List(ctx, owner)
	if err != nil {
		return fmt.Errorf("list boards: %w", err)
	}
	if len(boards) == 0 {
		printInfo("No boards found")
		return nil
	}

	if plain {
		for _, b := range boards {
			title := b.Title
			if title == "" {
				title = b.ID
			}
			printKeyValue(title, fmt.Sprintf("%s, %d nodes", b.Mode, len(b.Nodes)))
		}
		return nil
	}

	model := NewBoardListModel(boards)
	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	result, ok := final.(BoardListModel)
	if !ok || result.Selected == nil {
		return nil
	}

	printBoardDetails(result.Selected.Board)
	return nil
}

// printBoardDetails prints one board's summary after selection.
func printBoardDetails(b *board.Board) {
	printNewline()
	printSuccess("%s", b.Title)
	printKeyValue("id", b.ID)
	printKeyValue("mode", string(b.Mode))
	printKeyValue("nodes", fmt.Sprintf("%d", len(b.Nodes)))
	printKeyValue("edges", fmt.Sprintf("%d", len(b.Edges)))
	printNewline()
	printNextStep("Render", "boardkit render <exported file>")
}
