package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/orgcount/internal/command"
	"github.com/danieljhkim/orgcount/internal/engine"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start a line-by-line command session",
	Long: `Read commands from standard input one line at a time and print each answer.

The session ends on exit, quit, or end of input. Run "orgcount manual" for
the command language.`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	replCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print the manual when the session starts")
}

func runREPL(cmd *cobra.Command, args []string) error {
	ctx, eng, cfg, err := newEngine(cmd)
	if err != nil {
		return err
	}

	if !quiet && !jsonOutput {
		PrintInfo(cmd.OutOrStdout(), command.Manual)
		PrintInfo(cmd.OutOrStdout(), "")
	}
	prompt := cfg.Prompt
	if jsonOutput {
		prompt = ""
	}
	return repl(ctx, eng, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), prompt)
}

// repl executes lines from in until exit, quit, or end of input. Failed
// commands are reported and the session continues.
func repl(ctx context.Context, eng *engine.Engine, in io.Reader, out, errOut io.Writer, prompt string) error {
	scanner := bufio.NewScanner(in)
	for {
		if prompt != "" {
			_, _ = fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			if prompt != "" {
				_, _ = fmt.Fprintln(out)
			}
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case isExit(line):
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}
		outcome, err := eng.ExecuteLine(ctx, line)
		writeOutcome(out, errOut, line, outcome, err)
	}
}

func isExit(line string) bool {
	switch strings.ToLower(line) {
	case "exit", "quit":
		return true
	default:
		return false
	}
}
