// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballot implements the room ballot: groups of people are assigned to
fixed-capacity households in buildings.

# Entities

  - Person: name and score
  - Group: members plus ranked household and building preferences
  - Household: named unit in a building with a capacity
  - Ballot: declared buildings, households, and the pending group queue

Groups are built through NewGroup, which rejects empty groups:

	g, err := ballot.NewGroup(ballot.GroupSpec{
		Label:                "smiths",
		Members:              []ballot.Person{{Name: "Alice", Score: 10}, {Name: "Bob", Score: 20}},
		HouseholdPreferences: []string{"Flat 3", "", "Flat 1"},
	})

# Capacity

A household admits a group when occupancy + group size <= capacity. The
boundary is inclusive. AttemptAdmit is the only way a group enters a
household; a refusal leaves the household unchanged.

# Allocation

	b := ballot.NewBallot(buildings, households, groups)
	res, err := b.AllocateRooms([]string{"North", "South"})

The pass is greedy and single-shot:

 1. Pending groups are stably sorted by ascending average score.
 2. Each group tries its household preferences in rank order.
 3. Then each building of its building order (its own, or the default order)
    is scanned for a household that admits it.
 4. Groups nobody admits end up in res.Unplaced, which also replaces
    b.Pending.

A ballot can only be allocated once; a second call returns ErrAlreadyAllocated.

# Errors

Configuration problems are fatal and reported as *ConfigurationError
(errors.Is(err, ErrConfigurationInconsistency)):

  - default order is not a permutation of the declared buildings
  - a household sits in an undeclared building
  - a household preference names an unknown household
  - a group's own building preference names an undeclared building

The last one is only detected when a group reaches the building tier. Any
admissions made earlier in the pass are rolled back before the error is
returned, so callers never observe a half-allocated ballot.
*/
package ballot
