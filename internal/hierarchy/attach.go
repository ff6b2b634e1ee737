package hierarchy

import (
	"fmt"
	"slices"
)

// Attach makes child a direct subordinate of parent.
//
// A child that already hangs under another department is moved: it is
// detached from its former parent, whose ancestor chain is recomputed, and
// then appended to parent. The root of parent's tree (or the absence of
// one) is propagated through the moved subtree, and parent's chain is
// recomputed up to the top of the tree.
//
// Attach is a no-op when child is already a direct child of parent. It fails
// without changing anything when child is a root, when the move would create
// a cycle, or when the destination tree would exceed MaxHeadcount.
func (f *Forest) Attach(parent, child NodeID) error {
	if !f.valid(parent) || !f.valid(child) {
		return ErrUnknownNode
	}
	if f.nodes[child].isRoot {
		return fmt.Errorf("%w: %s", ErrRootCannotBeSubordinated, f.nodes[child].name)
	}
	if f.nodes[child].parent == parent {
		return nil
	}
	if parent == child || f.isAncestor(child, parent) {
		return fmt.Errorf("%w: %s>%s", ErrCycle, f.nodes[parent].name, f.nodes[child].name)
	}

	moved := f.peekSum(child)
	destTop := f.top(parent)
	total := f.peekSum(destTop)
	if f.top(child) != destTop {
		total += moved
	}
	if total > MaxHeadcount {
		return fmt.Errorf("%w: %s would grow to %d", ErrInvalidHeadcount, f.nodes[destTop].name, total)
	}

	f.detach(child)

	f.nodes[parent].children = append(f.nodes[parent].children, child)
	f.nodes[child].parent = parent
	f.propagateRoot(child, f.effectiveRoot(parent))

	f.recomputeSubtreeSum(parent)
	f.propagateToAncestors(parent)
	return nil
}

// detach unlinks id from its parent, if any, and refreshes the former
// parent's chain. The detached subtree keeps its own caches.
func (f *Forest) detach(id NodeID) {
	former := f.nodes[id].parent
	if former == NoNode {
		return
	}

	siblings := f.nodes[former].children
	if i := slices.Index(siblings, id); i >= 0 {
		f.nodes[former].children = slices.Delete(siblings, i, i+1)
	}
	f.nodes[id].parent = NoNode

	f.recomputeSubtreeSum(former)
	f.propagateToAncestors(former)
}

// effectiveRoot is the root a new child of id inherits.
func (f *Forest) effectiveRoot(id NodeID) NodeID {
	if f.nodes[id].isRoot {
		return id
	}
	return f.nodes[id].root
}

// propagateRoot sets root on id and its subtree. Recursion stops at the
// first node that already carries root, since its subtree carries it too.
func (f *Forest) propagateRoot(id, root NodeID) {
	if f.nodes[id].root == root {
		return
	}
	f.nodes[id].root = root
	for _, child := range f.nodes[id].children {
		f.propagateRoot(child, root)
	}
}
