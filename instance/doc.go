// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package instance reads and writes ballot instance files.

# Format

	buildings: [North, South]
	default_order: [South, North]   # optional, defaults to buildings
	households:
	  - name: Flat 1
	    building: North
	    capacity: 4
	groups:
	  - label: smiths
	    members:
	      - {name: Alice, score: 10}
	      - {name: Bob, score: 20}
	    household_preferences: [Flat 1, null]
	    building_preferences: [South]

A null household preference keeps its rank but names nothing. Omitting
building_preferences makes the group follow the default order; an explicit
empty list means the group accepts no building.

# Usage

	f, err := instance.Load("round1.yaml")
	b, err := f.Build()
	res, err := b.AllocateRooms(f.Order())

Build always returns a new ballot, so a second allocation means building
again from the same file.
*/
package instance
