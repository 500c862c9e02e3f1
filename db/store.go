// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/room-ballot/ballot"
	"github.com/danielhkuo/room-ballot/export"
)

var ErrRunNotFound = errors.New("allocation run not found")

// Run is the record of one completed allocation.
type Run struct {
	ID           string
	Digest       string
	DefaultOrder []string
	CreatedAt    time.Time
	Households   []HouseholdResult
	Placements   []PlacementRecord
	Unplaced     []UnplacedRecord
}

type HouseholdResult struct {
	export.Row
	Occupancy uint
}

type PlacementRecord struct {
	Group        string
	Household    string
	Tier         string
	Rank         int
	Size         uint
	AverageScore float64
}

type UnplacedRecord struct {
	Group        string
	Size         uint
	AverageScore float64
	Members      string
}

// NewRun captures an allocated ballot and its result under a fresh run id.
func NewRun(digest string, order []string, b *ballot.Ballot, res *ballot.Result) Run {
	run := Run{
		ID:           uuid.NewString(),
		Digest:       digest,
		DefaultOrder: append([]string(nil), order...),
		CreatedAt:    time.Now().UTC(),
	}

	for i, row := range export.Rows(b) {
		run.Households = append(run.Households, HouseholdResult{
			Row:       row,
			Occupancy: b.Accommodation[i].Occupancy(),
		})
	}
	for _, p := range res.Placements {
		run.Placements = append(run.Placements, PlacementRecord{
			Group:        p.Group.Label(),
			Household:    p.Household.Name(),
			Tier:         p.Tier.String(),
			Rank:         p.Rank,
			Size:         p.Group.Size(),
			AverageScore: p.Group.AverageScore(),
		})
	}
	for _, g := range res.Unplaced {
		run.Unplaced = append(run.Unplaced, UnplacedRecord{
			Group:        g.Label(),
			Size:         g.Size(),
			AverageScore: g.AverageScore(),
			Members:      ballot.Roster(g.Members()),
		})
	}
	return run
}

// SaveRun stores the run and all of its rows in one transaction.
func SaveRun(ctx context.Context, db *sql.DB, run Run) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO allocation_run (id, instance_digest, default_order, group_count, placed_count, unplaced_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, run.ID, run.Digest, strings.Join(run.DefaultOrder, "\n"),
		len(run.Placements)+len(run.Unplaced), len(run.Placements), len(run.Unplaced), run.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for i, h := range run.Households {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO household_result (run_id, position, household_name, building, capacity, occupancy, occupants)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, run.ID, i, h.Household, h.Building, int64(h.Capacity), int64(h.Occupancy), h.Occupants)
		if err != nil {
			return fmt.Errorf("failed to insert household %q: %w", h.Household, err)
		}
	}

	for i, p := range run.Placements {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO placement (run_id, position, group_label, household_name, tier, choice_rank, group_size, average_score)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, run.ID, i, p.Group, p.Household, p.Tier, p.Rank, int64(p.Size), p.AverageScore)
		if err != nil {
			return fmt.Errorf("failed to insert placement of %q: %w", p.Group, err)
		}
	}

	for i, u := range run.Unplaced {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO unplaced_group (run_id, position, group_label, group_size, average_score, members)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, run.ID, i, u.Group, int64(u.Size), u.AverageScore, u.Members)
		if err != nil {
			return fmt.Errorf("failed to insert unplaced group %q: %w", u.Group, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}
	return nil
}

// LoadHouseholdResults returns the stored household table of a run in export order.
func LoadHouseholdResults(ctx context.Context, db *sql.DB, runID string) ([]HouseholdResult, error) {
	var exists int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM allocation_run WHERE id = $1`, runID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	rows, err := db.QueryContext(ctx, `
		SELECT household_name, building, capacity, occupancy, occupants
		FROM household_result
		WHERE run_id = $1
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query households: %w", err)
	}
	defer rows.Close()

	var results []HouseholdResult
	for rows.Next() {
		var h HouseholdResult
		var capacity, occupancy int64
		if err := rows.Scan(&h.Household, &h.Building, &capacity, &occupancy, &h.Occupants); err != nil {
			return nil, err
		}
		h.Capacity = uint(capacity)
		h.Occupancy = uint(occupancy)
		results = append(results, h)
	}

	return results, rows.Err()
}

// LoadUnplaced returns the stored residual of a run in residual order.
func LoadUnplaced(ctx context.Context, db *sql.DB, runID string) ([]UnplacedRecord, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT group_label, group_size, average_score, members
		FROM unplaced_group
		WHERE run_id = $1
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query unplaced groups: %w", err)
	}
	defer rows.Close()

	var results []UnplacedRecord
	for rows.Next() {
		var u UnplacedRecord
		var size int64
		if err := rows.Scan(&u.Group, &size, &u.AverageScore, &u.Members); err != nil {
			return nil, err
		}
		u.Size = uint(size)
		results = append(results, u)
	}

	return results, rows.Err()
}
