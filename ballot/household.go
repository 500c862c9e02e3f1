// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import "slices"

// Household is a fixed-capacity unit inside a building. Groups only enter it
// through AttemptAdmit.
type Household struct {
	name     string
	building string
	capacity uint
	placed   []*Group
}

// NewHousehold creates an empty household.
func NewHousehold(name, building string, capacity uint) *Household {
	return &Household{
		name:     name,
		building: building,
		capacity: capacity,
	}
}

func (h *Household) Name() string     { return h.name }
func (h *Household) Building() string { return h.building }
func (h *Household) Capacity() uint   { return h.capacity }

// Groups returns the placed groups in arrival order.
func (h *Household) Groups() []*Group { return slices.Clone(h.placed) }

// Occupancy is the number of people currently placed.
func (h *Household) Occupancy() uint {
	var n uint
	for _, g := range h.placed {
		n += g.Size()
	}
	return n
}

// Remaining is the number of free places left.
func (h *Household) Remaining() uint {
	return h.capacity - h.Occupancy()
}

// Occupants flattens the placed groups' members in arrival order.
func (h *Household) Occupants() []Person {
	var people []Person
	for _, g := range h.placed {
		people = append(people, g.members...)
	}
	return people
}

// Roster renders the occupants for export, e.g. "Alice [10], Bob [20]".
func (h *Household) Roster() string {
	return Roster(h.Occupants())
}

// CanFit reports whether g fits in the remaining capacity. A group that exactly
// fills the household fits.
func (h *Household) CanFit(g *Group) bool {
	return h.Occupancy()+g.Size() <= h.capacity
}

// AttemptAdmit places g if it fits. Otherwise the household is left unchanged and
// a *CapacityExceededError is returned.
func (h *Household) AttemptAdmit(g *Group) error {
	if !h.CanFit(g) {
		return &CapacityExceededError{
			Household: h.name,
			Capacity:  h.capacity,
			Occupancy: h.Occupancy(),
			Required:  g.Size(),
		}
	}
	h.placed = append(h.placed, g)
	return nil
}

// truncate drops admissions made after the household held n groups.
func (h *Household) truncate(n int) {
	clear(h.placed[n:])
	h.placed = h.placed[:n]
}
