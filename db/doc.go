// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db stores records of completed allocation runs.

# Connecting

	conn, err := db.Open(db.TypeSQLite, "file:ballot.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - allocation_run: one row per run, keyed by a uuid
  - household_result: the exported household table
  - placement: where each placed group went, in processing order
  - unplaced_group: the residual, in processing order

# Relationships

	allocation_run 1──* household_result
	allocation_run 1──* placement
	allocation_run 1──* unplaced_group

# Saving

	run := db.NewRun(file.Digest, order, b, res)
	err := db.SaveRun(ctx, conn, run)

Runs are a record of outcomes. Nothing reads them back into an allocation.
*/
package db
