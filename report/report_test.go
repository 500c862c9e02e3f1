// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/danielhkuo/room-ballot/ballot"
)

func group(t *testing.T, label string, prefs []string, scores ...uint) *ballot.Group {
	t.Helper()
	members := make([]ballot.Person, len(scores))
	for i, s := range scores {
		members[i] = ballot.Person{Name: label + string(rune('A'+i)), Score: s}
	}
	g, err := ballot.NewGroup(ballot.GroupSpec{Label: label, Members: members, HouseholdPreferences: prefs})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func allocate(t *testing.T) (*ballot.Ballot, *ballot.Result) {
	t.Helper()
	b := ballot.NewBallot(
		[]string{"A", "B"},
		[]*ballot.Household{
			ballot.NewHousehold("H1", "A", 2),
			ballot.NewHousehold("H2", "B", 3),
		},
		[]*ballot.Group{
			group(t, "pref", []string{"H2"}, 10),
			group(t, "first", nil, 4, 6),
			group(t, "second", nil, 20, 20),
			group(t, "stuck", nil, 30, 30, 30),
		},
	)
	res, err := b.AllocateRooms([]string{"A", "B"})
	if err != nil {
		t.Fatal(err)
	}
	return b, res
}

func TestSummarize(t *testing.T) {
	b, res := allocate(t)
	s := Summarize(b, res)

	if s.Groups != 4 || s.PlacedGroups != 3 || s.UnplacedGroups != 1 {
		t.Errorf("unexpected group counts: %+v", s)
	}
	if s.PlacedPeople != 5 || s.UnplacedPeople != 3 {
		t.Errorf("unexpected people counts: placed=%d unplaced=%d", s.PlacedPeople, s.UnplacedPeople)
	}
	if s.Capacity != 5 || s.Occupancy != 5 {
		t.Errorf("expected 5/5 places, got %d/%d", s.Occupancy, s.Capacity)
	}
	if s.Utilisation() != 100 {
		t.Errorf("expected full utilisation, got %v", s.Utilisation())
	}

	// first -> H1 (building rank 0), pref -> H2 (household rank 0), second -> H2 (building rank 1)
	if got := s.Choices[ballot.TierHousehold]; len(got) != 1 || got[0] != 1 {
		t.Errorf("unexpected household choices %v", got)
	}
	if got := s.Choices[ballot.TierBuilding]; len(got) != 2 || got[0] != 1 || got[1] != 1 {
		t.Errorf("unexpected building choices %v", got)
	}

	if math.Abs(s.Placed.Mean-(5+10+20)/3.0) > 1e-9 {
		t.Errorf("unexpected placed mean %v", s.Placed.Mean)
	}
	if s.Unplaced.Mean != 30 || s.Unplaced.StdDev != 0 {
		t.Errorf("unexpected unplaced stats %+v", s.Unplaced)
	}
}

func TestSummarize_EmptyBallot(t *testing.T) {
	b := ballot.NewBallot(nil, nil, nil)
	res, err := b.AllocateRooms(nil)
	if err != nil {
		t.Fatal(err)
	}
	s := Summarize(b, res)
	if s.Groups != 0 || s.Utilisation() != 0 || s.Placed.Mean != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestPrint(t *testing.T) {
	b, res := allocate(t)

	var buf bytes.Buffer
	Print(&buf, b, Summarize(b, res))
	out := buf.String()

	for _, want := range []string{
		"HOUSEHOLDS (2):",
		"firstA [4], firstB [6]",
		"PLACED: 3 of 4 groups (5 people)",
		"1st household choice: 1",
		"2nd building choice: 1",
		"UNPLACED: 1 groups (3 people)",
		"CAPACITY: 5 of 5 places filled (100.0%)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}
