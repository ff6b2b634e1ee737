package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// execute runs the root command with args and stdin and returns what it
// wrote to stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	color.NoColor = true
	resetFlags(rootCmd)
	for _, key := range []string{"ORGCOUNT_SEED_FILE", "ORGCOUNT_NO_SEED", "ORGCOUNT_LOG_LEVEL", "ORGCOUNT_LOG_FORMAT", "ORGCOUNT_PROMPT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("ORGCOUNT_LOG_LEVEL", "silent")
	t.Setenv("ORGCOUNT_LOG_FORMAT", "text")
	t.Setenv("ORGCOUNT_PROMPT", "> ")

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag of cmd and its subcommands to its default
// so state does not leak between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func assertContains(t *testing.T, output string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}
