package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <invocation>",
	Short: "Execute a single invocation string and exit",
	Long: `Run dispatches one invocation string, e.g.

  taskcall run "noParams()"
  taskcall run "params('x', 1, true)"
  taskcall run "clearTempFiles(48)"

The exit code is 0 when the task completed and 1 otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := buildLogger()
		d, err := buildDispatcher(logger)
		if err != nil {
			return err
		}
		defer func() { _ = d.Stop(context.Background()) }()

		ok := d.Execute(cmd.Context(), args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok=%v\n", args[0], ok)
		if !ok {
			os.Exit(1)
		}
		return nil
	},
}
