// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package export turns an allocated ballot into CSV tables.

# Households

	Household name,Building,Size,Occupants
	Flat 1,North,3,"Alice [10], Bob [20]"

Occupants lists every member in arrival order as "name [score]", joined with
", ". Empty households have an empty occupants field.

# Unplaced groups

	Position,Group,Size,Average score,Members
	1,jones,2,27.50,"Dan [25], Eve [30]"

Rows follow the residual order, which is the order groups were served in.
*/
package export
