package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/orgcount/internal/engine"
)

func TestTreeCommand_Text(t *testing.T) {
	stdout, _, err := execute(t, "", "tree", "--run", "QA, 4", "--run", "BACKEND>QA")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	assertContains(t, stdout,
		"▸ Organization (5 departments, 1 tree)",
		"*DEV  headcount 10, total 84",
		"├── BACKEND  headcount 20, total 24",
		"│   └── QA  headcount 4, total 4",
		"└── DEVOPS  headcount 30, total 30",
	)
}

func TestTreeCommand_Empty(t *testing.T) {
	stdout, _, err := execute(t, "", "tree", "--no-seed")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	assertContains(t, stdout, "No departments registered.")
}

func TestTreeCommand_RunFailure(t *testing.T) {
	if _, _, err := execute(t, "", "tree", "--run", "DEVOPS>DEV"); err == nil {
		t.Error("expected error when a --run command fails")
	}
}

func TestTreeCommand_JSON(t *testing.T) {
	stdout, _, err := execute(t, "", "tree", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var chart engine.ChartResult
	if err := json.Unmarshal([]byte(stdout), &chart); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if chart.Departments != 4 || len(chart.Trees) != 1 {
		t.Fatalf("unexpected chart: %+v", chart)
	}
	dev := chart.Trees[0]
	if dev.Name != "DEV" || !dev.Root || dev.Total != 80 || len(dev.Children) != 3 {
		t.Errorf("unexpected DEV node: %+v", dev)
	}
}

func TestTreeCommand_YAML(t *testing.T) {
	stdout, _, err := execute(t, "", "tree", "--yaml")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var chart engine.ChartResult
	if err := yaml.Unmarshal([]byte(stdout), &chart); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, stdout)
	}
	if len(chart.Trees) != 1 || chart.Trees[0].Total != 80 {
		t.Errorf("unexpected chart: %+v", chart)
	}
}

func TestTreeCommand_ExportReseeds(t *testing.T) {
	exported, _, err := execute(t, "", "tree", "--no-seed", "--export",
		"--run", "A, 10", "--run", "B, 10", "--run", "C, 10",
		"--run", "A>B", "--run", "B>C", "--run", "D, 20", "--run", "*>D", "--run", "D>B")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "org.yaml")
	if err := os.WriteFile(path, []byte(exported), 0644); err != nil {
		t.Fatalf("failed to write export: %v", err)
	}

	stdout, _, err := execute(t, "", "tree", "--seed", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	assertContains(t, stdout,
		"▸ Organization (4 departments, 2 trees)",
		"A  headcount 10, total 10",
		"*D  headcount 20, total 40",
		"└── B  headcount 10, total 20",
		"    └── C  headcount 10, total 10",
	)
}

func TestTreeCommand_MissingSeed(t *testing.T) {
	_, _, err := execute(t, "", "tree", "--seed", filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
