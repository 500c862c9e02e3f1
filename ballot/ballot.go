// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import "slices"

// Ballot is one allocation round: the declared buildings, the households on
// offer, and the groups still waiting for a place.
//
// A Ballot is allocated at most once. After AllocateRooms succeeds, Pending holds
// the groups that could not be placed.
type Ballot struct {
	Buildings     []string
	Accommodation []*Household
	Pending       []*Group

	allocated bool
}

// NewBallot creates a pending-only ballot. The slices are copied; the households
// and groups are not, so they must not be shared with another ballot.
func NewBallot(buildings []string, accommodation []*Household, pending []*Group) *Ballot {
	return &Ballot{
		Buildings:     slices.Clone(buildings),
		Accommodation: slices.Clone(accommodation),
		Pending:       slices.Clone(pending),
	}
}

// Household looks a household up by name, returning nil when there is none.
func (b *Ballot) Household(name string) *Household {
	for _, h := range b.Accommodation {
		if h.name == name {
			return h
		}
	}
	return nil
}

// Allocated reports whether AllocateRooms has already completed on this ballot.
func (b *Ballot) Allocated() bool { return b.allocated }

// Capacity is the total number of places across all households.
func (b *Ballot) Capacity() uint {
	var n uint
	for _, h := range b.Accommodation {
		n += h.capacity
	}
	return n
}
