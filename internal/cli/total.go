package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// departmentTotal is the JSON shape of one total line.
type departmentTotal struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

var totalCmd = &cobra.Command{
	Use:   "total [NAME...]",
	Short: "Print the organization total for departments",
	Long: `Print the total headcount of the organization each named department belongs to.

Without names, every registered department is listed in alphabetical order.`,
	Example: `  orgcount total BACKEND
  orgcount total --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, eng, _, err := newEngine(cmd)
		if err != nil {
			return err
		}

		names := args
		if len(names) == 0 {
			names, err = eng.Departments(ctx)
			if err != nil {
				return err
			}
		}

		totals := make([]departmentTotal, 0, len(names))
		for _, name := range names {
			total, err := eng.TotalHeadcount(ctx, name)
			if err != nil {
				return err
			}
			totals = append(totals, departmentTotal{Name: name, Total: total})
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, totals)
		}
		if len(totals) == 0 {
			PrintWarning(out, "No departments registered")
			return nil
		}
		for _, t := range totals {
			PrintInfo(out, fmt.Sprintf("%-12s %d", t.Name, t.Total))
		}
		return nil
	},
}
