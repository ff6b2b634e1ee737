package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	treeRun    []string
	treeYAML   bool
	treeExport bool
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the organization chart",
	Long: `Print every tree of the organization with each department's own headcount
and the total of its subtree. Roots are marked with *.

--run applies commands before printing. --export prints a seed document that
rebuilds the organization and can be passed back with --seed.`,
	Example: `  orgcount tree
  orgcount tree --run "QA, 4" --run "DEV>QA" --json
  orgcount tree --export > org.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, eng, _, err := newEngine(cmd)
		if err != nil {
			return err
		}

		for _, line := range treeRun {
			if _, err := eng.ExecuteLine(ctx, line); err != nil {
				return fmt.Errorf("command %q failed: %w", line, err)
			}
		}

		out := cmd.OutOrStdout()
		if treeExport {
			doc, err := eng.Export(ctx)
			if err != nil {
				return err
			}
			data, err := doc.Marshal()
			if err != nil {
				return fmt.Errorf("failed to encode seed document: %w", err)
			}
			_, err = out.Write(data)
			return err
		}

		chart, err := eng.Chart(ctx)
		if err != nil {
			return err
		}
		switch {
		case jsonOutput:
			return outputJSON(out, chart)
		case treeYAML:
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(chart); err != nil {
				return fmt.Errorf("failed to encode chart: %w", err)
			}
			return enc.Close()
		default:
			PrintChart(out, chart)
			return nil
		}
	},
}

func init() {
	treeCmd.Flags().StringArrayVar(&treeRun, "run", nil, "Apply a command before printing (repeatable)")
	treeCmd.Flags().BoolVar(&treeYAML, "yaml", false, "Output in YAML format")
	treeCmd.Flags().BoolVar(&treeExport, "export", false, "Print a seed document for the organization")
	treeCmd.MarkFlagsMutuallyExclusive("yaml", "export")
}
