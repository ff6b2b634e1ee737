package engine

import "github.com/danieljhkim/orgcount/internal/command"

// CreateRequest represents a request to register a department.
type CreateRequest struct {
	// Name is the department name (uppercase letters only)
	Name string

	// Headcount is the department's own headcount (0..1000)
	Headcount int
}

// RelateRequest represents a request to place a department in the hierarchy.
type RelateRequest struct {
	// Superior is the new superior, or command.TargetWildcard to make
	// Subordinate a root
	Superior command.Target

	// Subordinate is the department being placed
	Subordinate string
}

// UpdateRequest represents a request to change a department's headcount.
type UpdateRequest struct {
	Name      string
	Headcount int
}

// DeleteRequest represents a request to delete a department.
type DeleteRequest struct {
	Name string
}
