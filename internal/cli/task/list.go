package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/wifak939/taskboard/internal/cli"
	"github.com/wifak939/taskboard/internal/models"
)

// ColumnListing is one column in the output of task list
type ColumnListing struct {
	ID    models.ColumnID `json:"id"`
	Name  string          `json:"name"`
	Items []models.Task   `json:"items"`
}

// Listing is the output of task list, columns in display order
type Listing []ColumnListing

// PrintHuman implements cli.HumanPrinter
func (l Listing) PrintHuman(w io.Writer) error {
	for i, col := range l {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%s) - %d tasks\n", col.Name, col.ID, len(col.Items))
		if len(col.Items) == 0 {
			fmt.Fprintln(w, "  (empty)")
		}
		for _, t := range col.Items {
			if _, err := fmt.Fprintf(w, "  [%s] %s\n", t.ID, t.Content); err != nil {
				return err
			}
		}
	}
	return nil
}

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list [column]",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long:    "List the tasks of every column, or of a single column.",
		Args:    cli.Args(cobra.MaximumNArgs(1)),
		RunE:    runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}

	b := c.App.Store.Board()
	ids := b.ColumnIDs()
	if len(args) == 1 {
		id := models.ColumnID(args[0])
		if !b.Has(id) {
			return fmt.Errorf("%w: %q", models.ErrColumnNotFound, id)
		}
		ids = []models.ColumnID{id}
	}

	listing := make(Listing, 0, len(ids))
	for _, id := range ids {
		col, _ := b.Column(id)
		items := col.Items
		if items == nil {
			items = []models.Task{}
		}
		listing = append(listing, ColumnListing{ID: id, Name: col.Name, Items: items})
	}

	// Quiet mode prints every task id, one per line
	if c.Formatter.Quiet {
		out := cmd.OutOrStdout()
		if c.Formatter.Out != nil {
			out = c.Formatter.Out
		}
		for _, col := range listing {
			for _, t := range col.Items {
				fmt.Fprintln(out, t.ID)
			}
		}
		return nil
	}

	return c.Formatter.Success(listing)
}
