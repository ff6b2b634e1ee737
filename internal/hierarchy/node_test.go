package hierarchy

import "testing"

func TestNewNode_Validation(t *testing.T) {
	tests := []struct {
		name      string
		dept      string
		headcount int
		wantErr   error
	}{
		{name: "valid", dept: "DEV", headcount: 10},
		{name: "lower bound", dept: "A", headcount: 0},
		{name: "upper bound", dept: "B", headcount: 1000},
		{name: "empty name", dept: "", headcount: 1, wantErr: ErrInvalidName},
		{name: "lowercase", dept: "dev", headcount: 1, wantErr: ErrInvalidName},
		{name: "digits", dept: "DEV1", headcount: 1, wantErr: ErrInvalidName},
		{name: "wildcard is not a department", dept: "*", headcount: 1, wantErr: ErrInvalidName},
		{name: "negative", dept: "C", headcount: -1, wantErr: ErrInvalidHeadcount},
		{name: "too large", dept: "D", headcount: 1001, wantErr: ErrInvalidHeadcount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New()
			id, err := f.NewNode(tt.dept, tt.headcount)
			if tt.wantErr != nil {
				assertErrorIs(t, err, tt.wantErr)
				if f.Len() != 0 {
					t.Errorf("Len() = %d after failed NewNode, want 0", f.Len())
				}
				return
			}
			if err != nil {
				t.Fatalf("NewNode() error = %v", err)
			}

			n, err := f.Node(id)
			if err != nil {
				t.Fatalf("Node() error = %v", err)
			}
			if n.HasParent() || n.Root != NoNode || n.IsRoot || len(n.Children) != 0 {
				t.Errorf("fresh node has links: %+v", n)
			}
			if n.Aggregate != tt.headcount {
				t.Errorf("Aggregate = %d, want %d", n.Aggregate, tt.headcount)
			}
		})
	}
}

func TestForest_UnknownNode(t *testing.T) {
	f := New()
	a := mustNode(t, f, "A", 1)

	if _, err := f.Node(NodeID(7)); err != ErrUnknownNode {
		t.Errorf("Node() error = %v, want ErrUnknownNode", err)
	}
	if err := f.Attach(a, NoNode); err != ErrUnknownNode {
		t.Errorf("Attach() error = %v, want ErrUnknownNode", err)
	}
	if err := f.SetAsRoot(NodeID(3)); err != ErrUnknownNode {
		t.Errorf("SetAsRoot() error = %v, want ErrUnknownNode", err)
	}
	if err := f.UpdateHeadcount(NodeID(3), 1); err != ErrUnknownNode {
		t.Errorf("UpdateHeadcount() error = %v, want ErrUnknownNode", err)
	}
	if _, err := f.TotalHeadcount(NoNode); err != ErrUnknownNode {
		t.Errorf("TotalHeadcount() error = %v, want ErrUnknownNode", err)
	}
	if _, err := f.Describe(NoNode); err != ErrUnknownNode {
		t.Errorf("Describe() error = %v, want ErrUnknownNode", err)
	}
}

func TestForest_TreesAndWalk(t *testing.T) {
	f := New()
	dev := mustNode(t, f, "DEV", 10)
	backend := mustNode(t, f, "BACKEND", 20)
	lone := mustNode(t, f, "LONE", 3)
	frontend := mustNode(t, f, "FRONTEND", 20)
	api := mustNode(t, f, "API", 5)

	mustRoot(t, f, dev)
	mustAttach(t, f, dev, backend)
	mustAttach(t, f, dev, frontend)
	mustAttach(t, f, backend, api)

	tops := f.Trees()
	if len(tops) != 2 || tops[0] != dev || tops[1] != lone {
		t.Fatalf("Trees() = %v, want [%d %d]", tops, dev, lone)
	}

	var visited []string
	var depths []int
	if err := f.Walk(dev, func(n Node, depth int) {
		visited = append(visited, n.Name)
		depths = append(depths, depth)
	}); err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	wantNames := []string{"DEV", "BACKEND", "API", "FRONTEND"}
	wantDepths := []int{0, 1, 2, 1}
	for i := range wantNames {
		if i >= len(visited) || visited[i] != wantNames[i] || depths[i] != wantDepths[i] {
			t.Fatalf("Walk visited %v at depths %v, want %v at %v", visited, depths, wantNames, wantDepths)
		}
	}
}
