package board

import (
	"errors"
	"fmt"
	"io"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"
	"github.com/wifak939/taskboard/internal/cli"
)

// ResetResult is what board reset reports
type ResetResult struct {
	Reset bool `json:"reset"`
	Tasks int  `json:"tasks"`
}

// PrintHuman implements cli.HumanPrinter
func (r ResetResult) PrintHuman(w io.Writer) error {
	if !r.Reset {
		_, err := fmt.Fprintln(w, "Board left unchanged")
		return err
	}
	_, err := fmt.Fprintf(w, "Board reset to the default columns (%d tasks)\n", r.Tasks)
	return err
}

// confirmReset asks before the board is replaced. Tests swap it out.
var confirmReset = func() (bool, error) {
	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Reset the board to the default columns?").
			Description("Every task on the board is replaced.").
			Affirmative("Yes").
			Negative("No").
			Value(&confirm),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirm, nil
}

// ResetCmd returns the board reset subcommand
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the board with the default columns",
		Long: `Replace the board with the default "To Do", "En cours" and "Done" columns.
Asks for confirmation unless --force is given. --json and --quiet never
prompt, so they require --force.
`,
		Args: cli.Args(cobra.NoArgs),
		RunE: runReset,
	}

	cmd.Flags().Bool("force", false, "Reset without asking")

	return cmd
}

func runReset(cmd *cobra.Command, args []string) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	if !force {
		if c.Formatter.JSON || c.Formatter.Quiet {
			return fmt.Errorf("%w: --force is required with --json or --quiet", cli.ErrUsage)
		}
		ok, err := confirmReset()
		if err != nil {
			return fmt.Errorf("failed to confirm reset: %w", err)
		}
		if !ok {
			return c.Formatter.Success(ResetResult{})
		}
	}

	c.App.Store.Reset()
	return c.Formatter.Success(ResetResult{Reset: true, Tasks: c.App.Store.Board().TotalTasks()})
}
