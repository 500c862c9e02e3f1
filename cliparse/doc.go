// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Commands that own their flag set register the flags and resolve later:

	cliparse.BindFlags(cmd.Flags())
	cfg, err := cliparse.Load(cmd.Flags())

# Config Fields

  - Groups, Households, Buildings: sample generation sizes (20, 5, 3)
  - Seed: sample generation seed (default: 1)
  - InstancePath: instance YAML file; a sample is generated when empty
  - OutputPath: where the command writes its main output (stdout when empty)
  - UnplacedPath: CSV of unplaced groups
  - DefaultOrder: building order overriding the instance's own
  - DatabaseURL, DatabaseType: run record storage (sqlite or postgres)
  - LogLevel: debug, info, warn or error

# CLI Flags

	-g, --groups         Sample group count
	-n, --households     Sample household count
	-b, --buildings      Sample building count
	    --seed           Sample seed
	-i, --instance       Instance YAML file
	-o, --output         Output file
	-u, --unplaced       Unplaced groups CSV
	    --order          Default building order (repeat or comma separate)
	-d, --database-url   Database URL
	-t, --database-type  sqlite or postgres
	    --log-level      Log level

# Environment Variables

Flags fall back to environment variables with the BALLOT_ prefix:

	BALLOT_GROUPS        → --groups
	BALLOT_DATABASE_URL  → --database-url
	BALLOT_ORDER         → --order (comma separated)

A .env file in the working directory is loaded first. CLI flags take
precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - a generation count is below 1
  - the database type is not sqlite or postgres
  - the log level is unknown
*/
package cliparse
