package board

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wifak939/taskboard/internal/cli"
	"github.com/wifak939/taskboard/internal/persistence"
)

// ExportCmd returns the board export subcommand
func ExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the board in its stored JSON form",
		Long: `Print the board exactly as it is persisted under the "columns" key.

Examples:
  taskboard board export > board.json
`,
		Args: cli.Args(cobra.NoArgs),
		RunE: runExport,
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}

	data, err := persistence.Serialize(c.App.Store.Board())
	if err != nil {
		return fmt.Errorf("failed to serialize board: %w", err)
	}

	_, err = fmt.Fprintln(output(cmd, c), data)
	return err
}
