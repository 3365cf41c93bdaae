package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered task names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := buildLogger()
		d, err := buildDispatcher(logger)
		if err != nil {
			return err
		}
		for _, name := range d.Tasks() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}
