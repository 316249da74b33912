package symbol

import "testing"

func TestInternAssignsStableIDs(t *testing.T) {
	tab := NewTable()

	fID, err := tab.Intern("F")
	if err != nil {
		t.Fatalf("Intern failed: %v", err)
	}
	plusID, err := tab.Intern("+")
	if err != nil {
		t.Fatalf("Intern failed: %v", err)
	}
	if fID == plusID {
		t.Errorf("Expected distinct IDs, got %d for both", fID)
	}

	again, err := tab.Intern("F")
	if err != nil {
		t.Fatalf("Intern failed: %v", err)
	}
	if again != fID {
		t.Errorf("Expected stable ID %d for re-intern, got %d", fID, again)
	}
	if tab.Len() != 2 {
		t.Errorf("Expected 2 interned symbols, got %d", tab.Len())
	}
}

func TestResolveAndName(t *testing.T) {
	tab := NewTable()
	id, _ := tab.Intern("Leaf")

	got, ok := tab.Resolve("Leaf")
	if !ok || got != id {
		t.Errorf("Expected Resolve to return %d, got %d (ok=%v)", id, got, ok)
	}
	if _, ok := tab.Resolve("Missing"); ok {
		t.Error("Expected Resolve to fail for unknown name")
	}

	name, ok := tab.Name(id)
	if !ok || name != "Leaf" {
		t.Errorf("Expected Name to return Leaf, got %q (ok=%v)", name, ok)
	}
	if _, ok := tab.Name(ID(99)); ok {
		t.Error("Expected Name to fail for unassigned ID")
	}
}
