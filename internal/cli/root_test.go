package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/danieljhkim/orgcount/internal/command"
	"github.com/danieljhkim/orgcount/internal/config"
)

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := execute(t, "", "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	assertContains(t, stdout, "orgcount", "Interactive Sessions:", "Organization:", "CLI & Tooling:", "console", "tree")
}

func TestRootCommand_Version(t *testing.T) {
	SetVersion("1.2.3")
	t.Cleanup(func() { SetVersion("dev") })

	stdout, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(stdout) != "1.2.3" {
		t.Errorf("version output = %q, want 1.2.3", stdout)
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	_, _, err := execute(t, "", "invalid-command")
	if err == nil {
		t.Error("expected error for invalid command")
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	for _, name := range []string{"repl", "console", "exec", "tree", "total", "manual", "version", "completion"} {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{name})
			if err != nil || cmd == rootCmd {
				t.Errorf("subcommand %q not registered", name)
			}
		})
	}
}

func TestRootCommand_StartsREPL(t *testing.T) {
	stdout, _, err := execute(t, "DEV\n")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	firstLine, _, _ := strings.Cut(command.Manual, "\n")
	assertContains(t, stdout, firstLine, "Current department is the root. Current: [ DEV ], Total: [ 80 ]")
}

func TestManualCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "manual")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(stdout) != strings.TrimSpace(command.Manual) {
		t.Errorf("manual output differs from command.Manual")
	}
}

func TestGlobalFlags_InvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "", "tree", "--log-level", "chatty")
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSetVersion(t *testing.T) {
	t.Cleanup(func() { SetVersion("dev") })

	tests := []struct {
		name    string
		version string
		want    string
	}{
		{"normal version", "1.2.3", "1.2.3"},
		{"empty version keeps previous", "", "1.2.3"},
		{"dev version", "dev", "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersion(tt.version)
			if rootCmd.Version != tt.want {
				t.Errorf("SetVersion(%q): Version = %q, want %q", tt.version, rootCmd.Version, tt.want)
			}
		})
	}
}
