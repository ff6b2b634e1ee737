package hierarchy

import "errors"

var (
	// ErrInvalidName indicates a department name that is not made of uppercase letters.
	ErrInvalidName = errors.New("department name must contain only uppercase English letters")

	// ErrInvalidHeadcount indicates a headcount or aggregate outside 0..1000.
	ErrInvalidHeadcount = errors.New("headcount must be an integer between 0 and 1000")

	// ErrRootCannotBeSubordinated indicates an attempt to attach a root under another department.
	ErrRootCannotBeSubordinated = errors.New("a root department cannot become a subordinate of another department")

	// ErrRootAlreadySet indicates the department already belongs to a tree with a root.
	ErrRootAlreadySet = errors.New("department already has a root department")

	// ErrCycle indicates an attach that would make a department its own ancestor.
	ErrCycle = errors.New("a department cannot be subordinated to itself or to one of its subordinates")

	// ErrUnknownNode indicates a NodeID that does not belong to the forest.
	ErrUnknownNode = errors.New("unknown department")
)
