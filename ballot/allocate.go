// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"log/slog"
	"sort"
)

// Tier says which stage of the search placed a group.
type Tier int

const (
	TierHousehold Tier = iota + 1
	TierBuilding
)

func (t Tier) String() string {
	switch t {
	case TierHousehold:
		return "household"
	case TierBuilding:
		return "building"
	default:
		return "unknown"
	}
}

// Placement records where a group went. Rank is the 0-based position of the
// satisfied entry in the list that produced the placement: the household
// preferences for TierHousehold, the effective building order for TierBuilding.
type Placement struct {
	Group     *Group
	Household *Household
	Tier      Tier
	Rank      int
}

// Result is the outcome of one allocation pass. Both slices are in processing
// order (ascending average score).
type Result struct {
	Placements []Placement
	Unplaced   []*Group
}

// AllocateRooms runs the single greedy pass over the pending groups.
//
// Groups are served in ascending order of average score, ties keeping their
// queue order. Each group tries its household preferences in rank order, then
// the households of each building in its building order (its own, or
// defaultOrder when it has none) in accommodation order, and otherwise stays
// unplaced. Placements are never revisited.
//
// On a configuration error no household is left modified and the ballot stays
// pending. On success Pending is replaced by the unplaced residual.
func (b *Ballot) AllocateRooms(defaultOrder []string) (*Result, error) {
	if b.allocated {
		return nil, ErrAlreadyAllocated
	}
	if err := b.Validate(defaultOrder); err != nil {
		return nil, err
	}

	declared := make(map[string]bool, len(b.Buildings))
	for _, name := range b.Buildings {
		declared[name] = true
	}
	byName := make(map[string]*Household, len(b.Accommodation))
	for _, h := range b.Accommodation {
		byName[h.name] = h
	}

	// Lower average score is served first
	queue := append([]*Group(nil), b.Pending...)
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].AverageScore() < queue[j].AverageScore()
	})

	marks := make([]int, len(b.Accommodation))
	for i, h := range b.Accommodation {
		marks[i] = len(h.placed)
	}

	result := &Result{
		Placements: make([]Placement, 0, len(queue)),
		Unplaced:   make([]*Group, 0),
	}
	for _, g := range queue {
		p, ok, err := b.place(g, byName, declared, defaultOrder)
		if err != nil {
			b.rollback(marks)
			return nil, err
		}
		if !ok {
			slog.Debug("group unplaced", "group", g.label, "size", g.Size())
			result.Unplaced = append(result.Unplaced, g)
			continue
		}
		slog.Debug("group placed",
			"group", g.label,
			"household", p.Household.name,
			"tier", p.Tier.String(),
			"rank", p.Rank,
		)
		result.Placements = append(result.Placements, p)
	}

	b.Pending = result.Unplaced
	b.allocated = true

	slog.Info("allocation completed",
		"groups", len(queue),
		"placed", len(result.Placements),
		"unplaced", len(result.Unplaced),
	)
	return result, nil
}

// place tries the household tier, then the building tier, stopping at the first
// admission.
func (b *Ballot) place(
	g *Group,
	byName map[string]*Household,
	declared map[string]bool,
	defaultOrder []string,
) (Placement, bool, error) {
	for rank, name := range g.householdPreferences {
		if name == "" {
			continue
		}
		h := byName[name]
		if err := h.AttemptAdmit(g); err != nil {
			continue
		}
		return Placement{Group: g, Household: h, Tier: TierHousehold, Rank: rank}, true, nil
	}

	buildings := g.effectiveBuildings(defaultOrder)
	if err := checkBuildings(g, buildings, declared); err != nil {
		return Placement{}, false, err
	}
	for rank, building := range buildings {
		for _, h := range b.Accommodation {
			if h.building != building {
				continue
			}
			if err := h.AttemptAdmit(g); err != nil {
				continue
			}
			return Placement{Group: g, Household: h, Tier: TierBuilding, Rank: rank}, true, nil
		}
	}

	return Placement{}, false, nil
}

// rollback undoes every admission made since marks were taken.
func (b *Ballot) rollback(marks []int) {
	for i, h := range b.Accommodation {
		h.truncate(marks[i])
	}
}
