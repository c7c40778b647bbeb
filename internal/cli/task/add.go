package task

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wifak939/taskboard/internal/cli"
	"github.com/wifak939/taskboard/internal/models"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <column> <text...>",
		Short: "Add a task to the end of a column",
		Long: `Add a task to the end of a column. The remaining arguments are joined
with spaces to form the task text; "-" reads the text from stdin.

Examples:
  taskboard task add todo buy milk

  # JSON output for agents
  taskboard task add todo "write report" --json

  # Quiet mode for bash capture
  TASK_ID=$(taskboard task add todo "write report" --quiet)

  echo "from a pipe" | taskboard task add done -
`,
		Args: cli.Args(cobra.MinimumNArgs(2)),
		RunE: runAdd,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}

	columnID := models.ColumnID(args[0])
	text := strings.Join(args[1:], " ")
	if text == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read task text: %w", err)
		}
		text = strings.TrimRight(string(data), "\n")
	}
	if models.IsBlank(text) {
		return cli.ErrBlankTask
	}

	id, err := c.App.Store.AddTask(columnID, text)
	if err != nil {
		return err
	}

	_, task, _ := c.App.Store.Board().FindTask(id)
	return c.Formatter.Success(Result{Action: "added", Column: columnID, Task: task})
}
