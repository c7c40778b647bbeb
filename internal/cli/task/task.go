// Package task implements the task sub-commands
package task

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/wifak939/taskboard/internal/cli"
	"github.com/wifak939/taskboard/internal/models"
)

// Cmd returns the task command with its subcommands
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(RemoveCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}

// Result is what add, rm and move report
type Result struct {
	Action string          `json:"action"`
	From   models.ColumnID `json:"from,omitempty"`
	Column models.ColumnID `json:"column"`
	Task   models.Task     `json:"task"`
}

// GetID implements cli.Identifier
func (r Result) GetID() string {
	return string(r.Task.ID)
}

// PrintHuman implements cli.HumanPrinter
func (r Result) PrintHuman(w io.Writer) error {
	var err error
	switch r.Action {
	case "added":
		_, err = fmt.Fprintf(w, "Added task %s to %s: %s\n", r.Task.ID, r.Column, r.Task.Content)
	case "removed":
		_, err = fmt.Fprintf(w, "Removed task %s from %s\n", r.Task.ID, r.Column)
	case "moved":
		_, err = fmt.Fprintf(w, "Moved task %s from %s to %s\n", r.Task.ID, r.From, r.Column)
	default:
		_, err = fmt.Fprintf(w, "%s task %s\n", r.Action, r.Task.ID)
	}
	return err
}

// findInColumn returns the task with id in column, or an error naming what
// is missing
func findInColumn(b *models.Board, columnID models.ColumnID, id models.TaskID) (models.Task, error) {
	col, ok := b.Column(columnID)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %q", models.ErrColumnNotFound, columnID)
	}
	i := col.IndexOf(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("%w: %q in %q", cli.ErrTaskNotFound, id, columnID)
	}
	return col.Items[i], nil
}
