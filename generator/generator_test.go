// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package generator

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerate_Shape(t *testing.T) {
	f, err := Generate(Params{Groups: 4, Households: 6, Buildings: 3, Seed: 7})
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"Building 1", "Building 2", "Building 3"}, f.Buildings); diff != "" {
		t.Errorf("buildings mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(f.Buildings, f.Order()); diff != "" {
		t.Errorf("default order should follow buildings (-want +got):\n%s", diff)
	}
	if len(f.Groups) != 4 || len(f.Households) != 6 {
		t.Fatalf("expected 4 groups and 6 households, got %d and %d", len(f.Groups), len(f.Households))
	}

	// group 3 has 5 members scoring 30+4j
	g3 := f.Groups[2]
	if len(g3.Members) != 5 {
		t.Fatalf("expected 5 members in group 3, got %d", len(g3.Members))
	}
	if g3.Members[0].Name != "Person 1 in group 3" || g3.Members[0].Score != 34 {
		t.Errorf("unexpected first member %+v", g3.Members[0])
	}
	if g3.Members[4].Score != 50 {
		t.Errorf("expected last member score 50, got %d", g3.Members[4].Score)
	}

	declared := map[string]bool{}
	for _, b := range f.Buildings {
		declared[b] = true
	}
	for _, h := range f.Households {
		if h.Capacity < MinCapacity || h.Capacity > MaxCapacity {
			t.Errorf("household %s capacity %d out of range", h.Name, h.Capacity)
		}
		if !declared[h.Building] {
			t.Errorf("household %s in undeclared building %s", h.Name, h.Building)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	p := Params{Groups: 5, Households: 12, Buildings: 4, Seed: 42}
	a, err := Generate(p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(p)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different instances (-a +b):\n%s", diff)
	}
}

func TestGenerate_BuildsValidBallot(t *testing.T) {
	f, err := Generate(Params{Groups: 20, Households: 5, Buildings: 3, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	b, err := f.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	res, err := b.AllocateRooms(f.Order())
	if err != nil {
		t.Fatalf("AllocateRooms() failed: %v", err)
	}
	if len(res.Placements)+len(res.Unplaced) != 20 {
		t.Errorf("expected 20 groups accounted for, got %d", len(res.Placements)+len(res.Unplaced))
	}
}

func TestGenerate_InvalidParams(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{"no groups", Params{Groups: 0, Households: 1, Buildings: 1}},
		{"no households", Params{Groups: 1, Households: 0, Buildings: 1}},
		{"no buildings", Params{Groups: 1, Households: 1, Buildings: 0}},
		{"negative", Params{Groups: -3, Households: 1, Buildings: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Generate(tt.p); !errors.Is(err, ErrInvalidParams) {
				t.Errorf("expected ErrInvalidParams, got %v", err)
			}
		})
	}
}
