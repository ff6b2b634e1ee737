package hierarchy

import (
	"fmt"
	"regexp"
	"slices"
)

// MaxHeadcount bounds both local headcounts and cached aggregates.
const MaxHeadcount = 1000

// NodeID addresses a department inside a Forest.
type NodeID int

// NoNode is the absent parent or root reference.
const NoNode NodeID = -1

var namePattern = regexp.MustCompile(`^[A-Z]+$`)

// node is the arena entry. parent and root are back-references only;
// children is the owning side of the relation.
type node struct {
	name      string
	local     int
	aggregate int
	// populated distinguishes a computed aggregate of 0 from "not computed yet".
	populated bool
	children  []NodeID
	parent    NodeID
	root      NodeID
	isRoot    bool
}

// Node is a read-only snapshot of a department.
type Node struct {
	ID        NodeID   `json:"id"`
	Name      string   `json:"name"`
	Headcount int      `json:"headcount"`
	Aggregate int      `json:"aggregate"`
	Parent    NodeID   `json:"parent"`
	Root      NodeID   `json:"root"`
	IsRoot    bool     `json:"isRoot"`
	Children  []NodeID `json:"children,omitempty"`
}

// HasParent reports whether the department is attached to a superior.
func (n Node) HasParent() bool {
	return n.Parent != NoNode
}

// ValidateName checks that name is a non-empty run of uppercase letters.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// ValidateHeadcount checks that n lies in 0..MaxHeadcount.
func ValidateHeadcount(n int) error {
	if n < 0 || n > MaxHeadcount {
		return fmt.Errorf("%w: got %d", ErrInvalidHeadcount, n)
	}
	return nil
}

func (n *node) snapshot(id NodeID, aggregate int) Node {
	return Node{
		ID:        id,
		Name:      n.name,
		Headcount: n.local,
		Aggregate: aggregate,
		Parent:    n.parent,
		Root:      n.root,
		IsRoot:    n.isRoot,
		Children:  slices.Clone(n.children),
	}
}
