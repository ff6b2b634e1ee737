package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	execFile      string
	execKeepGoing bool
)

var execCmd = &cobra.Command{
	Use:   "exec [COMMAND...]",
	Short: "Run commands non-interactively",
	Long: `Run commands given as arguments, then commands read from --file, in order.

Flags must come before the first command; everything after it is a command.
Put -- before the commands when the first one is a delete such as -DEV.

Blank lines and lines starting with # in the file are skipped. Use --file -
to read from standard input. Execution stops at the first failing command
unless --keep-going is set; the exit status is non-zero if any command failed.`,
	Example: `  orgcount exec "HR, 5" "DEV>HR" DEV
  orgcount exec --keep-going -- -BACKEND DEV
  orgcount exec --no-seed --file org.txt
  cat org.txt | orgcount exec --file - --keep-going`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lines := append([]string{}, args...)
		if execFile != "" {
			fromFile, err := readScript(cmd, execFile)
			if err != nil {
				return err
			}
			lines = append(lines, fromFile...)
		}
		if len(lines) == 0 {
			return fmt.Errorf("no commands given; pass them as arguments or with --file")
		}

		ctx, eng, _, err := newEngine(cmd)
		if err != nil {
			return err
		}

		failed := 0
		for i, line := range lines {
			outcome, err := eng.ExecuteLine(ctx, line)
			writeOutcome(cmd.OutOrStdout(), cmd.ErrOrStderr(), line, outcome, err)
			if err == nil {
				continue
			}
			failed++
			if !execKeepGoing {
				return fmt.Errorf("command %d %q failed: %w", i+1, line, err)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %s failed", failed, formatCount(len(lines), "command"))
		}
		if !jsonOutput {
			PrintSuccess(cmd.ErrOrStderr(), fmt.Sprintf("%s executed", formatCount(len(lines), "command")))
		}
		return nil
	},
}

func init() {
	execCmd.Flags().StringVarP(&execFile, "file", "f", "", "Read commands from a file, or - for standard input")
	execCmd.Flags().BoolVar(&execKeepGoing, "keep-going", false, "Continue after a failing command")
	execCmd.Flags().SetInterspersed(false)
}

// readScript reads command lines from path, or from stdin when path is "-".
func readScript(cmd *cobra.Command, path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open command file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read command file: %w", err)
	}
	return lines, nil
}
