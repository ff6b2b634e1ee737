package engine

import (
	"fmt"

	"github.com/danieljhkim/orgcount/internal/hierarchy"
)

// NoRootCaveat precedes the answer for departments whose organization has no
// root yet.
const NoRootCaveat = "No root department is set; showing the highest superior of the current department."

// FormatDepartment renders a department after a create or update.
func FormatDepartment(d *DepartmentResult) string {
	return fmt.Sprintf("Current: [ %s ], Headcount: [ %d ]", d.Name, d.Headcount)
}

// FormatRelation renders a query answer.
func FormatRelation(r hierarchy.Relation) string {
	switch r.Kind {
	case hierarchy.RelationSelf:
		return fmt.Sprintf("Current department is the root. Current: [ %s ], Total: [ %d ]", r.Current, r.Total)
	case hierarchy.RelationRooted:
		return fmt.Sprintf("Current: [ %s ], Root: [ %s ], Total: [ %d ]", r.Current, r.Root, r.Total)
	default:
		return fmt.Sprintf("%s\nCurrent: [ %s ], Highest: [ %s ], Total: [ %d ]", NoRootCaveat, r.Current, r.Root, r.Total)
	}
}

// FormatOutcome renders the result of an executed command.
func FormatOutcome(o *Outcome) string {
	switch {
	case o == nil:
		return ""
	case o.Relation != nil:
		return FormatRelation(o.Relation.Relation)
	case o.Department != nil:
		return FormatDepartment(o.Department)
	default:
		return o.Command.String()
	}
}
