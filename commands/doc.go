// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package commands wires the room-ballot command tree.

# Commands

	room-ballot generate [-g 20 -n 5 -b 3 --seed 1] [-o sample.yaml]
	room-ballot validate [-i ballot.yaml] [--order "North,South"]
	room-ballot allocate [-i ballot.yaml] [-o households.csv] [-u unplaced.csv] [-d runs.db]
	room-ballot runs show <run-id> -d runs.db

validate and allocate generate a sample instance when no --instance is given.

# Output

allocate writes the household CSV to --output (stdout by default) and the
summary report to stderr. When --database-url is set the run is stored and
its id is printed as "RUN: <id>".

All commands are wrapped with middleware.WithLogging.
*/
package commands
