package hierarchy

import (
	"errors"
	"reflect"
	"testing"
)

func mustNode(t *testing.T, f *Forest, name string, headcount int) NodeID {
	t.Helper()
	id, err := f.NewNode(name, headcount)
	if err != nil {
		t.Fatalf("NewNode(%q, %d) error = %v", name, headcount, err)
	}
	return id
}

func mustAttach(t *testing.T, f *Forest, parent, child NodeID) {
	t.Helper()
	if err := f.Attach(parent, child); err != nil {
		t.Fatalf("Attach(%d, %d) error = %v", parent, child, err)
	}
}

func mustRoot(t *testing.T, f *Forest, id NodeID) {
	t.Helper()
	if err := f.SetAsRoot(id); err != nil {
		t.Fatalf("SetAsRoot(%d) error = %v", id, err)
	}
}

func mustDescribe(t *testing.T, f *Forest, id NodeID) Relation {
	t.Helper()
	rel, err := f.Describe(id)
	if err != nil {
		t.Fatalf("Describe(%d) error = %v", id, err)
	}
	return rel
}

// dump captures the full observable state of the forest, caches included.
func dump(f *Forest) []node {
	out := make([]node, len(f.nodes))
	for i, n := range f.nodes {
		n.children = append([]NodeID(nil), n.children...)
		out[i] = n
	}
	return out
}

func assertUnchanged(t *testing.T, before []node, f *Forest) {
	t.Helper()
	if after := dump(f); !reflect.DeepEqual(before, after) {
		t.Errorf("forest changed by failed call:\nbefore %+v\nafter  %+v", before, after)
	}
}

func assertErrorIs(t *testing.T, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("error = %v, want %v", err, want)
	}
}

// bruteSum recomputes an aggregate from local headcounts only.
func bruteSum(f *Forest, id NodeID) int {
	sum := f.nodes[id].local
	for _, c := range f.nodes[id].children {
		sum += bruteSum(f, c)
	}
	return sum
}

// checkInvariants verifies every structural and cache invariant by brute force.
func checkInvariants(t *testing.T, f *Forest) {
	t.Helper()
	for i := range f.nodes {
		id := NodeID(i)
		n := f.nodes[i]

		seen := map[NodeID]bool{}
		for _, c := range n.children {
			if seen[c] {
				t.Errorf("%s lists child %s twice", n.name, f.nodes[c].name)
			}
			seen[c] = true
			if f.nodes[c].parent != id {
				t.Errorf("%s lists %s as child but its parent is %d", n.name, f.nodes[c].name, f.nodes[c].parent)
			}
		}
		if n.parent != NoNode {
			count := 0
			for _, c := range f.nodes[n.parent].children {
				if c == id {
					count++
				}
			}
			if count != 1 {
				t.Errorf("%s appears %d times in its parent's children", n.name, count)
			}
		}

		if n.isRoot && n.parent != NoNode {
			t.Errorf("root %s has parent %s", n.name, f.nodes[n.parent].name)
		}

		want := bruteSum(f, id)
		if got := f.peekSum(id); got != want {
			t.Errorf("%s aggregate = %d, want %d", n.name, got, want)
		}
		if n.populated && n.aggregate != want {
			t.Errorf("%s cached aggregate = %d, want %d", n.name, n.aggregate, want)
		}
		if want > MaxHeadcount || want < 0 {
			t.Errorf("%s aggregate %d out of bounds", n.name, want)
		}

		top := f.top(id)
		wantRoot := NoNode
		if f.nodes[top].isRoot {
			wantRoot = top
		}
		if n.root != wantRoot {
			t.Errorf("%s root = %d, want %d", n.name, n.root, wantRoot)
		}
	}
}
