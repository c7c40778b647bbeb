package board

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	ops "github.com/wifak939/taskboard/internal/board"
	"github.com/wifak939/taskboard/internal/cli"
	"github.com/wifak939/taskboard/internal/models"
)

const markdownWidth = 80

// view wraps a board so the formatter prints it as the TUI lays it out
type view struct {
	board *models.Board
}

func (v view) MarshalJSON() ([]byte, error) {
	return v.board.MarshalJSON()
}

// PrintHuman implements cli.HumanPrinter
func (v view) PrintHuman(w io.Writer) error {
	for i, id := range v.board.ColumnIDs() {
		col, _ := v.board.Column(id)
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "== %s (%d) ==\n", col.Name, len(col.Items))
		if len(col.Items) == 0 {
			fmt.Fprintln(w, "   Drop tasks here")
		}
		for _, t := range col.Items {
			if _, err := fmt.Fprintf(w, "   %s  (%s)\n", t.Content, t.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every column and its tasks",
		Long: `Print every column and its tasks in display order.

Examples:
  taskboard board show
  taskboard board show --markdown
  taskboard board show --json
`,
		Args: cli.Args(cobra.NoArgs),
		RunE: runShow,
	}

	cmd.Flags().Bool("markdown", false, "Render the board as styled markdown")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}

	b := c.App.Store.Board()
	markdown, _ := cmd.Flags().GetBool("markdown")
	if !markdown || c.Formatter.JSON {
		return c.Formatter.Success(view{board: b})
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(markdownWidth),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(ops.Markdown(b))
	if err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	_, err = fmt.Fprint(output(cmd, c), out)
	return err
}

// output is where commands that bypass the formatter write
func output(cmd *cobra.Command, c *cli.CLI) io.Writer {
	if c.Formatter.Out != nil {
		return c.Formatter.Out
	}
	return cmd.OutOrStdout()
}
