// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/room-ballot/ballot"
	"github.com/danielhkuo/room-ballot/cliparse"
	"github.com/danielhkuo/room-ballot/db"
)

// SampleInstance allocates to Flat 1 = "Alice [10], Bob [20], Dan [30]",
// an empty Flat 2, and leaves "solo" unplaced.
const SampleInstance = `
buildings: [North, South]
default_order: [South, North]
households:
  - name: Flat 1
    building: North
    capacity: 3
  - name: Flat 2
    building: South
    capacity: 2
groups:
  - label: smiths
    members:
      - {name: Alice, score: 10}
      - {name: Bob, score: 20}
    household_preferences: [null, Flat 1]
  - label: solo
    members:
      - {name: Carol, score: 5}
    building_preferences: []
  - label: jones
    members:
      - {name: Dan, score: 30}
    building_preferences: [North]
`

// TestDBPath returns a sqlite file path inside the test's temp dir
func TestDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "runs.db")
}

// SetupTestDB opens a fresh sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBPath(t))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// GetTestConfig returns a test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Groups:       4,
		Households:   3,
		Buildings:    2,
		Seed:         7,
		DatabaseType: db.TypeSQLite,
		LogLevel:     "info",
	}
}

// WriteInstance writes content to a YAML file and returns its path
func WriteInstance(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ballot.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write instance: %v", err)
	}
	return path
}

// NewTestGroup builds a group whose members are named after the label
func NewTestGroup(t *testing.T, label string, scores ...uint) *ballot.Group {
	t.Helper()

	members := make([]ballot.Person, len(scores))
	for i, s := range scores {
		members[i] = ballot.Person{Name: label + string(rune('A'+i)), Score: s}
	}
	g, err := ballot.NewGroup(ballot.GroupSpec{Label: label, Members: members})
	if err != nil {
		t.Fatalf("Failed to create group %q: %v", label, err)
	}
	return g
}

// AllocatedBallot returns a small ballot after its allocation pass:
// H1 (A, 2) holds "pair", H2 (B, 1) is empty and "crowd" is unplaced.
func AllocatedBallot(t *testing.T) (*ballot.Ballot, *ballot.Result) {
	t.Helper()

	b := ballot.NewBallot(
		[]string{"A", "B"},
		[]*ballot.Household{
			ballot.NewHousehold("H1", "A", 2),
			ballot.NewHousehold("H2", "B", 1),
		},
		[]*ballot.Group{
			NewTestGroup(t, "crowd", 25, 30, 35),
			NewTestGroup(t, "pair", 10, 20),
		},
	)
	res, err := b.AllocateRooms([]string{"A", "B"})
	if err != nil {
		t.Fatalf("Failed to allocate: %v", err)
	}
	return b, res
}
