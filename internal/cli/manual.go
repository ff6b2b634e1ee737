package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/orgcount/internal/command"
)

var manualCmd = &cobra.Command{
	Use:   "manual",
	Short: "Print the command language manual",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		PrintInfo(cmd.OutOrStdout(), command.Manual)
	},
}
