package hierarchy

import (
	"encoding/json"
	"testing"
)

func TestDescribe_DoesNotWriteCaches(t *testing.T) {
	f := New()
	a := mustNode(t, f, "A", 3)

	before := dump(f)
	if _, err := f.Describe(a); err != nil {
		t.Fatalf("Describe() error = %v", err)
	}
	if _, err := f.TotalHeadcount(a); err != nil {
		t.Fatalf("TotalHeadcount() error = %v", err)
	}
	assertUnchanged(t, before, f)
}

func TestRelationKind_JSON(t *testing.T) {
	rel := Relation{Kind: RelationRooted, Current: "DEV", Root: "IT", Total: 40}

	data, err := json.Marshal(rel)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"kind":"rooted","current":"DEV","root":"IT","total":40}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
	if got := RelationKind(42).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
}
