package task

import (
	"github.com/spf13/cobra"
	"github.com/wifak939/taskboard/internal/cli"
	"github.com/wifak939/taskboard/internal/models"
)

// RemoveCmd returns the task rm subcommand
func RemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <column> <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a task from a column",
		Args:    cli.Args(cobra.ExactArgs(2)),
		RunE:    runRemove,
	}
}

func runRemove(cmd *cobra.Command, args []string) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}

	columnID := models.ColumnID(args[0])
	task, err := findInColumn(c.App.Store.Board(), columnID, models.TaskID(args[1]))
	if err != nil {
		return err
	}

	if err := c.App.Store.RemoveTask(columnID, task.ID); err != nil {
		return err
	}
	return c.Formatter.Success(Result{Action: "removed", Column: columnID, Task: task})
}
