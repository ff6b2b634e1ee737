package hierarchy

import "fmt"

// RelationKind classifies how a department resolves its organizational unit.
type RelationKind int

const (
	// RelationSelf means the department is itself a root.
	RelationSelf RelationKind = iota
	// RelationRooted means the department belongs to a tree with a promoted root.
	RelationRooted
	// RelationDangling means no root was ever promoted in the department's tree;
	// the highest ancestor stands in for it.
	RelationDangling
)

func (k RelationKind) String() string {
	switch k {
	case RelationSelf:
		return "self"
	case RelationRooted:
		return "rooted"
	case RelationDangling:
		return "dangling"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name in JSON and YAML output.
func (k RelationKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Relation is the answer to a department query.
type Relation struct {
	Kind RelationKind `json:"kind"`

	// Current is the queried department.
	Current string `json:"current"`

	// Root is the promoted root, or the highest ancestor when Kind is
	// RelationDangling. Equals Current for RelationSelf.
	Root string `json:"root"`

	// Total is the aggregate headcount of Root.
	Total int `json:"total"`
}

// TotalHeadcount returns the aggregate headcount of the organizational unit
// containing id: the promoted root's aggregate, or the highest ancestor's
// when the tree has no root.
func (f *Forest) TotalHeadcount(id NodeID) (int, error) {
	if !f.valid(id) {
		return 0, ErrUnknownNode
	}
	if f.nodes[id].isRoot {
		return f.peekSum(id), nil
	}
	return f.peekSum(f.rootOrHighest(id)), nil
}

// Describe resolves the relation summary for id. It never mutates the forest.
func (f *Forest) Describe(id NodeID) (Relation, error) {
	if !f.valid(id) {
		return Relation{}, ErrUnknownNode
	}

	n := &f.nodes[id]
	switch {
	case n.isRoot:
		return Relation{
			Kind:    RelationSelf,
			Current: n.name,
			Root:    n.name,
			Total:   f.peekSum(id),
		}, nil
	case n.root != NoNode:
		return Relation{
			Kind:    RelationRooted,
			Current: n.name,
			Root:    f.nodes[n.root].name,
			Total:   f.peekSum(n.root),
		}, nil
	default:
		highest := f.rootOrHighest(id)
		return Relation{
			Kind:    RelationDangling,
			Current: n.name,
			Root:    f.nodes[highest].name,
			Total:   f.peekSum(highest),
		}, nil
	}
}

// rootOrHighest walks up from id to the first promoted root, or to the top
// of the tree when there is none.
func (f *Forest) rootOrHighest(id NodeID) NodeID {
	for !f.nodes[id].isRoot && f.nodes[id].parent != NoNode {
		id = f.nodes[id].parent
	}
	return id
}

// String renders the relation on one line, mostly for logs and test failures.
func (r Relation) String() string {
	return fmt.Sprintf("%s current=%s root=%s total=%d", r.Kind, r.Current, r.Root, r.Total)
}
