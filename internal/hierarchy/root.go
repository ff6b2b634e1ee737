package hierarchy

import "fmt"

// SetAsRoot promotes id to the root of its tree.
//
// It fails with ErrRootAlreadySet when id already carries a root reference,
// whether inherited from an ancestor or from an earlier promotion of id
// itself. A department that still hangs under a rootless superior is
// detached from it first, since a root never has a parent.
func (f *Forest) SetAsRoot(id NodeID) error {
	if !f.valid(id) {
		return ErrUnknownNode
	}
	if root := f.nodes[id].root; root != NoNode {
		return fmt.Errorf("%w: %s belongs to %s", ErrRootAlreadySet, f.nodes[id].name, f.nodes[root].name)
	}

	f.detach(id)

	f.nodes[id].isRoot = true
	f.propagateRoot(id, id)
	f.recomputeSubtreeSum(id)
	return nil
}
