// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/danielhkuo/room-ballot/ballot"
)

// Column headers of the household table. Downstream consumers match on them.
var HouseholdHeader = []string{"Household name", "Building", "Size", "Occupants"}

var UnplacedHeader = []string{"Position", "Group", "Size", "Average score", "Members"}

// Row is one household of an allocated ballot.
type Row struct {
	Household string
	Building  string
	Capacity  uint
	Occupants string
}

// Rows lists households in accommodation order. Occupants is the household
// roster, e.g. "Alice [10], Bob [20]".
func Rows(b *ballot.Ballot) []Row {
	rows := make([]Row, len(b.Accommodation))
	for i, h := range b.Accommodation {
		rows[i] = Row{
			Household: h.Name(),
			Building:  h.Building(),
			Capacity:  h.Capacity(),
			Occupants: h.Roster(),
		}
	}
	return rows
}

// WriteHouseholds writes the household table as CSV.
func WriteHouseholds(w io.Writer, b *ballot.Ballot) error {
	return WriteRows(w, Rows(b))
}

// WriteRows writes rows under HouseholdHeader.
func WriteRows(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(HouseholdHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.Household,
			r.Building,
			strconv.FormatUint(uint64(r.Capacity), 10),
			r.Occupants,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write household %q: %w", r.Household, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteUnplaced writes the residual groups as CSV, keeping their order.
func WriteUnplaced(w io.Writer, groups []*ballot.Group) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(UnplacedHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, g := range groups {
		record := []string{
			strconv.Itoa(i + 1),
			g.Label(),
			strconv.FormatUint(uint64(g.Size()), 10),
			strconv.FormatFloat(g.AverageScore(), 'f', 2, 64),
			ballot.Roster(g.Members()),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write group %q: %w", g.Label(), err)
		}
	}
	cw.Flush()
	return cw.Error()
}
