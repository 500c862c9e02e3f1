// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the room-ballot CLI.

room-ballot runs a housing ballot: groups of residents are placed into
households, highest priority first, by household preference and then by
building preference. Groups that fit nowhere are reported as unplaced.

# Running

	go run . allocate -i ballot.yaml -o households.csv -u unplaced.csv

Without an instance file a sample ballot is generated:

	go run . allocate -g 20 -n 5 -b 3 --seed 1

# Configuration

Every flag can also be set with a BALLOT_ environment variable or a .env file:

  - BALLOT_INSTANCE (-i): instance YAML file
  - BALLOT_ORDER (--order): default building order, comma separated
  - BALLOT_DATABASE_URL (-d): where run records are stored
  - BALLOT_DATABASE_TYPE (-t): sqlite (default) or postgres
  - BALLOT_LOG_LEVEL (--log-level): debug, info, warn or error

# Architecture

  - ballot: domain model, validator and allocation pass
  - instance: YAML instance files
  - generator: seeded sample instances
  - export: household and unplaced CSV tables
  - report: console summary
  - db: run record storage
  - commands: cobra command tree
  - middleware: command logging and output helpers
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
