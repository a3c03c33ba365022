package journal

import (
	"slices"
	"testing"
)

func TestCategories(t *testing.T) {
	want := []string{"Family", "Gratitude", "Hobbies", "Meditation", "Sport", "Work"}
	if got := Categories(); !slices.Equal(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestActivitiesReturnsCopy(t *testing.T) {
	lines := Activities("Work")
	if len(lines) != 4 {
		t.Fatalf("expected 4 Work activities, got %d", len(lines))
	}
	lines[0] = "mutated"
	if Activities("Work")[0] == "mutated" {
		t.Error("Activities must not expose the catalog storage")
	}
	if Activities("Unknown") != nil {
		t.Error("expected nil for unknown category")
	}
	if HasCategory("Unknown") || !HasCategory("Sport") {
		t.Error("HasCategory returned an unexpected result")
	}
}
