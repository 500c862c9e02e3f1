// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/room-ballot/db"
	"github.com/danielhkuo/room-ballot/export"
)

var ErrNoDatabase = errors.New("no database configured (set --database-url or BALLOT_DATABASE_URL)")

func (a *app) runShow(cmd *cobra.Command, args []string) error {
	if a.cfg.DatabaseURL == "" {
		return ErrNoDatabase
	}

	conn, err := db.Open(a.cfg.DatabaseType, a.cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	results, err := db.LoadHouseholdResults(cmd.Context(), conn, args[0])
	if err != nil {
		return err
	}

	unplaced, err := db.LoadUnplaced(cmd.Context(), conn, args[0])
	if err != nil {
		return err
	}
	slog.Info("run loaded", "run_id", args[0], "households", len(results), "unplaced", len(unplaced))

	rows := make([]export.Row, len(results))
	for i, r := range results {
		rows[i] = r.Row
	}
	return export.WriteRows(cmd.OutOrStdout(), rows)
}
