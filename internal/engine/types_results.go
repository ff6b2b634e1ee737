package engine

import (
	"time"

	"github.com/danieljhkim/orgcount/internal/command"
	"github.com/danieljhkim/orgcount/internal/hierarchy"
)

// DepartmentResult represents a single department after a create or update.
type DepartmentResult struct {
	// Name is the department name
	Name string `json:"name" yaml:"name"`

	// Headcount is the department's own headcount
	Headcount int `json:"headcount" yaml:"headcount"`

	// Aggregate is the headcount of the department and all its subordinates
	Aggregate int `json:"aggregate" yaml:"aggregate"`
}

// RelationResult represents the answer to a department query.
type RelationResult struct {
	hierarchy.Relation `yaml:",inline"`
}

// Outcome is the result of executing one command. Exactly one of
// Department and Relation is set, except for deletes which never succeed.
type Outcome struct {
	Command    command.Command   `json:"-" yaml:"-"`
	Department *DepartmentResult `json:"department,omitempty" yaml:"department,omitempty"`
	Relation   *RelationResult   `json:"relation,omitempty" yaml:"relation,omitempty"`
}

// ChartNode is one department in an org chart.
type ChartNode struct {
	Name         string      `json:"name" yaml:"name"`
	Headcount    int         `json:"headcount" yaml:"headcount"`
	Total        int         `json:"total" yaml:"total"`
	Root         bool        `json:"root,omitempty" yaml:"root,omitempty"`
	RegisteredAt time.Time   `json:"registeredAt" yaml:"registeredAt"`
	Children     []ChartNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// ChartResult is the whole organization, one entry per tree.
type ChartResult struct {
	// Session identifies the engine that produced the chart
	Session string `json:"session" yaml:"session"`

	// Departments is the number of registered departments
	Departments int `json:"departments" yaml:"departments"`

	// Trees holds the top department of every tree in registration order
	Trees []ChartNode `json:"trees" yaml:"trees"`
}
