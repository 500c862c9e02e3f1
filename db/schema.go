// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

var ErrUnsupportedDatabase = errors.New("unsupported database type")

// Open connects to a sqlite file or a PostgreSQL server and verifies the
// connection.
func Open(dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case TypeSQLite:
		driver = "sqlite"
	case TypePostgres:
		driver = "postgres"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDatabase, dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return conn, nil
}

// CreateSchema creates all tables needed for run records.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Allocation runs
CREATE TABLE IF NOT EXISTS allocation_run (
    id TEXT PRIMARY KEY,
    instance_digest TEXT NOT NULL,
    default_order TEXT NOT NULL,
    group_count INTEGER NOT NULL,
    placed_count INTEGER NOT NULL,
    unplaced_count INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_allocation_run_digest ON allocation_run(instance_digest);

-- Household table as exported
CREATE TABLE IF NOT EXISTS household_result (
    run_id TEXT NOT NULL REFERENCES allocation_run(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    household_name TEXT NOT NULL,
    building TEXT NOT NULL,
    capacity INTEGER NOT NULL CHECK (capacity >= 0),
    occupancy INTEGER NOT NULL CHECK (occupancy >= 0 AND occupancy <= capacity),
    occupants TEXT NOT NULL,
    PRIMARY KEY (run_id, household_name)
);

-- Placements in processing order
CREATE TABLE IF NOT EXISTS placement (
    run_id TEXT NOT NULL REFERENCES allocation_run(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    group_label TEXT NOT NULL,
    household_name TEXT NOT NULL,
    tier TEXT NOT NULL CHECK (tier IN ('household', 'building')),
    choice_rank INTEGER NOT NULL,
    group_size INTEGER NOT NULL,
    average_score REAL NOT NULL,
    PRIMARY KEY (run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_placement_household ON placement(run_id, household_name);

-- Residual groups
CREATE TABLE IF NOT EXISTS unplaced_group (
    run_id TEXT NOT NULL REFERENCES allocation_run(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    group_label TEXT NOT NULL,
    group_size INTEGER NOT NULL,
    average_score REAL NOT NULL,
    members TEXT NOT NULL,
    PRIMARY KEY (run_id, position)
);
`
