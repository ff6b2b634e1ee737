package hierarchy

// Forest is the arena holding every department and its links.
type Forest struct {
	nodes []node
}

// New creates an empty Forest.
func New() *Forest {
	return &Forest{}
}

// NewNode validates name and headcount and adds an unattached department.
// Name uniqueness is the caller's concern; the forest only hands out IDs.
func (f *Forest) NewNode(name string, headcount int) (NodeID, error) {
	if err := ValidateName(name); err != nil {
		return NoNode, err
	}
	if err := ValidateHeadcount(headcount); err != nil {
		return NoNode, err
	}

	f.nodes = append(f.nodes, node{
		name:   name,
		local:  headcount,
		parent: NoNode,
		root:   NoNode,
	})
	return NodeID(len(f.nodes) - 1), nil
}

// Len returns the number of departments in the forest.
func (f *Forest) Len() int {
	return len(f.nodes)
}

// Node returns a snapshot of the department with the given ID.
func (f *Forest) Node(id NodeID) (Node, error) {
	if !f.valid(id) {
		return Node{}, ErrUnknownNode
	}
	return f.nodes[id].snapshot(id, f.peekSum(id)), nil
}

// Trees returns the top department of every tree, in creation order.
// Unattached departments are single-node trees.
func (f *Forest) Trees() []NodeID {
	var tops []NodeID
	for i := range f.nodes {
		if f.nodes[i].parent == NoNode {
			tops = append(tops, NodeID(i))
		}
	}
	return tops
}

// Walk visits id and its subtree depth-first, children in insertion order.
func (f *Forest) Walk(id NodeID, fn func(n Node, depth int)) error {
	if !f.valid(id) {
		return ErrUnknownNode
	}
	f.walk(id, 0, fn)
	return nil
}

func (f *Forest) walk(id NodeID, depth int, fn func(n Node, depth int)) {
	fn(f.nodes[id].snapshot(id, f.peekSum(id)), depth)
	for _, child := range f.nodes[id].children {
		f.walk(child, depth+1, fn)
	}
}

func (f *Forest) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(f.nodes)
}

// top follows parent links to the highest ancestor of id.
func (f *Forest) top(id NodeID) NodeID {
	for f.nodes[id].parent != NoNode {
		id = f.nodes[id].parent
	}
	return id
}

// isAncestor reports whether ancestor lies on the parent chain of id.
func (f *Forest) isAncestor(ancestor, id NodeID) bool {
	for cur := f.nodes[id].parent; cur != NoNode; cur = f.nodes[cur].parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}
