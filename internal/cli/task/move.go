package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wifak939/taskboard/internal/cli"
	"github.com/wifak939/taskboard/internal/models"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <from> <to> <id>",
		Short: "Move a task to the end of another column",
		Long: `Move a task to the end of another column. Moving a task to the column it
is already in changes nothing.

Examples:
  taskboard task move todo done 1
`,
		Args: cli.Args(cobra.ExactArgs(3)),
		RunE: runMove,
	}
}

func runMove(cmd *cobra.Command, args []string) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}

	from, to := models.ColumnID(args[0]), models.ColumnID(args[1])
	b := c.App.Store.Board()

	task, err := findInColumn(b, from, models.TaskID(args[2]))
	if err != nil {
		return err
	}
	if !b.Has(to) {
		return fmt.Errorf("%w: %q", models.ErrColumnNotFound, to)
	}

	if err := c.App.Store.MoveTask(from, to, task.ID); err != nil {
		return err
	}
	return c.Formatter.Success(Result{Action: "moved", From: from, Column: to, Task: task})
}
