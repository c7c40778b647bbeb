// Package board implements the board sub-commands
package board

import (
	"github.com/spf13/cobra"
)

// Cmd returns the board command with its subcommands
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show, export or reset the whole board",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(ResetCmd())

	return cmd
}
