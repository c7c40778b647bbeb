// Package cmd wires the command tree: the TUI at the root, task and board
// sub-commands below it.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/wifak939/taskboard/internal/cli"
	boardcmd "github.com/wifak939/taskboard/internal/cli/board"
	taskcmd "github.com/wifak939/taskboard/internal/cli/task"
	"github.com/wifak939/taskboard/internal/config"
	"github.com/wifak939/taskboard/internal/launcher"
	"github.com/wifak939/taskboard/internal/logging"
)

// launch starts the TUI; tests replace it
var launch = launcher.Launch

// runner holds what one invocation opens so Run can release it whatever
// the outcome
type runner struct {
	storage string
	dbPath  string
	json    bool
	quiet   bool

	stdout    io.Writer
	stderr    io.Writer
	formatter *cli.OutputFormatter
	session   *cli.CLI
	logFile   io.Closer
}

func (r *runner) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "taskboard",
		Short: "Taskboard - a terminal kanban board",
		Long: `Taskboard is a kanban board for the terminal. Run it without arguments
to open the board, or use the task and board commands to script it.`,
		Args:              cli.Args(cobra.NoArgs),
		PersistentPreRunE: r.prepare,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := r.loadConfig(cmd)
			if err != nil {
				return err
			}
			return launch(cmd.Context(), cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	})

	// Global flags
	root.PersistentFlags().StringVar(&r.storage, "storage", "", "Storage backend: sqlite, file or memory")
	root.PersistentFlags().StringVar(&r.dbPath, "db", "", "Database file (sqlite) or directory (file)")
	root.PersistentFlags().BoolVar(&r.json, "json", false, "Output in JSON format")
	root.PersistentFlags().BoolVar(&r.quiet, "quiet", false, "Minimal output (ids only)")

	root.AddCommand(taskcmd.Cmd())
	root.AddCommand(boardcmd.Cmd())

	return root
}

// loadConfig reads the config file and applies the storage flags on top
func (r *runner) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cmd.Flags().Changed("storage") {
		cfg.Storage.Backend = r.storage
	}
	if cmd.Flags().Changed("db") {
		cfg.Storage.Path = r.dbPath
	}
	return cfg, nil
}

// prepare opens the session sub-commands run against. The root command
// opens its own in the launcher.
func (r *runner) prepare(cmd *cobra.Command, _ []string) error {
	r.formatter = &cli.OutputFormatter{JSON: r.json, Quiet: r.quiet, Out: r.stdout, Err: r.stderr}
	if !cmd.HasParent() {
		return nil
	}

	cfg, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	logFile, err := logging.Init(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(r.stderr, "warning: logging disabled: %v\n", err)
	} else {
		r.logFile = logFile
	}

	session, err := cli.NewCLI(cmd.Context(), cfg.Storage, r.formatter)
	if err != nil {
		return err
	}
	r.session = session
	cmd.SetContext(cli.WithCLI(cmd.Context(), session))
	return nil
}

func (r *runner) close() {
	if r.session != nil {
		if err := r.session.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}
	if r.logFile != nil {
		r.logFile.Close()
	}
}

// Run executes the command line args and returns the process exit code
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := &runner{stdout: stdout, stderr: stderr}
	defer r.close()

	root := r.command()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	formatter := r.formatter
	if formatter == nil {
		formatter = &cli.OutputFormatter{JSON: r.json, Out: stdout, Err: stderr}
	}
	if errors.Is(err, cli.ErrNoCLI) {
		formatter.Error("INITIALIZATION_ERROR", err.Error())
		return cli.ExitError
	}
	return cli.Report(formatter, err)
}

// Execute runs the command line of the current process
func Execute() int {
	return Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}
