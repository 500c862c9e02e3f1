// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"errors"
	"testing"
)

func TestNewGroup_RejectsEmptyGroup(t *testing.T) {
	_, err := NewGroup(GroupSpec{Label: "nobody"})
	if !errors.Is(err, ErrDegenerateGroup) {
		t.Fatalf("expected ErrDegenerateGroup, got %v", err)
	}
}

func TestNewGroup_RejectsUnnamedMember(t *testing.T) {
	_, err := NewGroup(GroupSpec{Members: []Person{{Name: "Alice"}, {Score: 3}}})
	if !errors.Is(err, ErrInvalidPerson) {
		t.Fatalf("expected ErrInvalidPerson, got %v", err)
	}
}

func TestGroup_DerivedMetrics(t *testing.T) {
	tests := []struct {
		name    string
		scores  []uint
		total   uint
		size    uint
		average float64
	}{
		{"single member", []uint{10}, 10, 1, 10},
		{"pair", []uint{7, 8}, 15, 2, 7.5},
		{"zero scores", []uint{0, 0, 0}, 0, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGroup(t, tt.name, tt.scores...)
			if g.TotalScore() != tt.total {
				t.Errorf("TotalScore() = %d, want %d", g.TotalScore(), tt.total)
			}
			if g.Size() != tt.size {
				t.Errorf("Size() = %d, want %d", g.Size(), tt.size)
			}
			if g.AverageScore() != tt.average {
				t.Errorf("AverageScore() = %v, want %v", g.AverageScore(), tt.average)
			}
		})
	}
}

func TestGroup_BuildingPreferencesAbsentVersusEmpty(t *testing.T) {
	members := []Person{{Name: "Alice", Score: 1}}

	absent, err := NewGroup(GroupSpec{Members: members})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := absent.BuildingPreferences(); ok {
		t.Error("expected no building preferences")
	}
	if got := absent.effectiveBuildings([]string{"A"}); len(got) != 1 || got[0] != "A" {
		t.Errorf("expected default order, got %v", got)
	}

	empty, err := NewGroup(GroupSpec{Members: members, BuildingPreferences: []string{}})
	if err != nil {
		t.Fatal(err)
	}
	prefs, ok := empty.BuildingPreferences()
	if !ok || len(prefs) != 0 {
		t.Errorf("expected present but empty preferences, got %v (ok=%v)", prefs, ok)
	}
	if got := empty.effectiveBuildings([]string{"A"}); len(got) != 0 {
		t.Errorf("expected no candidates, got %v", got)
	}
}

func TestNewGroup_CopiesInput(t *testing.T) {
	members := []Person{{Name: "Alice", Score: 1}}
	prefs := []string{"H1"}
	g, err := NewGroup(GroupSpec{Members: members, HouseholdPreferences: prefs})
	if err != nil {
		t.Fatal(err)
	}

	members[0].Name = "Mallory"
	prefs[0] = "H9"

	if g.Members()[0].Name != "Alice" {
		t.Error("group shares its members slice with the caller")
	}
	if g.HouseholdPreferences()[0] != "H1" {
		t.Error("group shares its preference slice with the caller")
	}
}

func TestGroup_DefaultLabel(t *testing.T) {
	g, err := NewGroup(GroupSpec{Members: []Person{{Name: "Alice", Score: 10}, {Name: "Bob", Score: 20}}})
	if err != nil {
		t.Fatal(err)
	}
	if g.Label() != "Alice [10], Bob [20]" {
		t.Errorf("unexpected default label %q", g.Label())
	}
}
