package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/danieljhkim/orgcount/internal/engine"
	"github.com/danieljhkim/orgcount/internal/hierarchy"
)

var (
	// fatih/color disables these automatically when output is not a TTY
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgBlue, color.Bold)
	rootColor    = color.New(color.FgCyan, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// PrintSection prints a section header
func PrintSection(w io.Writer, title string) {
	_, _ = headerColor.Fprintf(w, "▸ %s\n", title)
}

// PrintSuccess prints a success message with a checkmark
func PrintSuccess(w io.Writer, msg string) {
	_, _ = successColor.Fprintf(w, "✓ %s\n", msg)
}

// PrintWarning prints a warning message with a warning symbol
func PrintWarning(w io.Writer, msg string) {
	_, _ = warningColor.Fprintf(w, "⚠ %s\n", msg)
}

// PrintError prints an error message
func PrintError(w io.Writer, msg string) {
	_, _ = errorColor.Fprintf(w, "✗ %s\n", msg)
}

// PrintInfo prints an informational message
func PrintInfo(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, msg)
}

// PrintRelation prints a query answer, flagging organizations without a root.
func PrintRelation(w io.Writer, rel hierarchy.Relation) {
	text := engine.FormatRelation(rel)
	if rel.Kind == hierarchy.RelationDangling {
		caveat, answer, _ := strings.Cut(text, "\n")
		PrintWarning(w, caveat)
		PrintInfo(w, answer)
		return
	}
	PrintInfo(w, text)
}

// PrintChart prints every tree of the organization.
func PrintChart(w io.Writer, chart *engine.ChartResult) {
	if len(chart.Trees) == 0 {
		_, _ = dimColor.Fprintln(w, "No departments registered.")
		return
	}

	PrintSection(w, fmt.Sprintf("Organization (%s, %s)", formatCount(chart.Departments, "department"), formatCount(len(chart.Trees), "tree")))
	for _, tree := range chart.Trees {
		printChartNode(w, tree, "", "")
	}
}

func printChartNode(w io.Writer, n engine.ChartNode, prefix, branch string) {
	_, _ = fmt.Fprint(w, prefix+branch)
	if n.Root {
		_, _ = rootColor.Fprintf(w, "*%s", n.Name)
	} else {
		_, _ = fmt.Fprint(w, n.Name)
	}
	_, _ = dimColor.Fprintf(w, "  headcount %d, total %d\n", n.Headcount, n.Total)

	childPrefix := prefix
	switch branch {
	case "├── ":
		childPrefix += "│   "
	case "└── ":
		childPrefix += "    "
	}
	for i, c := range n.Children {
		if i == len(n.Children)-1 {
			printChartNode(w, c, childPrefix, "└── ")
		} else {
			printChartNode(w, c, childPrefix, "├── ")
		}
	}
}
