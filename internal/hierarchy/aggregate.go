package hierarchy

// subtreeSum returns the aggregate of id, computing and caching it on first
// touch.
func (f *Forest) subtreeSum(id NodeID) int {
	if f.nodes[id].populated {
		return f.nodes[id].aggregate
	}
	return f.recomputeSubtreeSum(id)
}

// recomputeSubtreeSum rebuilds the aggregate of id from its local headcount
// and its children's subtree sums, and caches the result.
func (f *Forest) recomputeSubtreeSum(id NodeID) int {
	sum := f.nodes[id].local
	for _, child := range f.nodes[id].children {
		sum += f.subtreeSum(child)
	}
	f.nodes[id].aggregate = sum
	f.nodes[id].populated = true
	return sum
}

// propagateToAncestors refreshes the aggregate of every ancestor of id, from
// the direct parent up to the top of the tree. The cache of id itself must
// already be current.
func (f *Forest) propagateToAncestors(id NodeID) {
	for cur := f.nodes[id].parent; cur != NoNode; cur = f.nodes[cur].parent {
		f.recomputeSubtreeSum(cur)
	}
}

// peekSum is subtreeSum without writing the cache. Queries use it so that a
// read never mutates the forest.
func (f *Forest) peekSum(id NodeID) int {
	n := &f.nodes[id]
	if n.populated {
		return n.aggregate
	}
	sum := n.local
	for _, child := range n.children {
		sum += f.peekSum(child)
	}
	return sum
}
