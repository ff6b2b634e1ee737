// Package hierarchy implements the department forest and its cached
// headcount aggregates.
//
// Departments live in an arena owned by Forest and are addressed by NodeID.
// Parent, root and child links are indices into that arena, so reparenting
// is an index rewrite followed by a bounded walk that refreshes the cached
// aggregates of the affected ancestor chains.
//
// Key components:
//   - Forest: the arena plus the mutation operations (Attach, SetAsRoot, UpdateHeadcount)
//   - Node: a read-only snapshot of one department
//   - Relation: the query projection used to answer "which tree am I in and how big is it"
//
// Invariants maintained after every successful call:
//   - child is in parent.children if and only if child.parent == parent
//   - a promoted root never appears in any children list
//   - aggregate == local headcount + sum of all descendants' local headcount
//   - a node's root reference equals the promoted root at the top of its tree,
//     or NoNode when that tree has no promoted root
//   - no aggregate exceeds MaxHeadcount
//
// A failed call leaves the forest exactly as it was.
//
// Forest is not safe for concurrent use. Callers that share one must hold a
// lock around each operation, including its propagation.
package hierarchy
