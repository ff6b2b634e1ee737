package hierarchy

import "fmt"

// UpdateHeadcount replaces the local headcount of id and refreshes the
// aggregates of id and all its ancestors.
func (f *Forest) UpdateHeadcount(id NodeID, headcount int) error {
	if !f.valid(id) {
		return ErrUnknownNode
	}
	if err := ValidateHeadcount(headcount); err != nil {
		return err
	}

	top := f.top(id)
	total := f.peekSum(top) - f.nodes[id].local + headcount
	if total > MaxHeadcount {
		return fmt.Errorf("%w: %s would grow to %d", ErrInvalidHeadcount, f.nodes[top].name, total)
	}

	f.nodes[id].local = headcount
	f.recomputeSubtreeSum(id)
	f.propagateToAncestors(id)
	return nil
}
