// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/room-ballot/db"
	"github.com/danielhkuo/room-ballot/export"
	"github.com/danielhkuo/room-ballot/generator"
	"github.com/danielhkuo/room-ballot/instance"
	"github.com/danielhkuo/room-ballot/middleware"
	"github.com/danielhkuo/room-ballot/report"
)

// loadInstance reads --instance, or generates a sample when it is empty.
// Generated samples go through the YAML codec so they carry a digest.
func (a *app) loadInstance() (*instance.File, error) {
	if a.cfg.InstancePath != "" {
		return instance.Load(a.cfg.InstancePath)
	}

	f, err := a.generate()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := instance.Write(&buf, f); err != nil {
		return nil, err
	}
	return instance.Parse(&buf)
}

func (a *app) generate() (*instance.File, error) {
	return generator.Generate(generator.Params{
		Groups:     a.cfg.Groups,
		Households: a.cfg.Households,
		Buildings:  a.cfg.Buildings,
		Seed:       a.cfg.Seed,
	})
}

// order prefers --order over the instance's own default order.
func (a *app) order(f *instance.File) []string {
	if a.cfg.DefaultOrder != nil {
		return a.cfg.DefaultOrder
	}
	return f.Order()
}

func (a *app) runGenerate(cmd *cobra.Command, _ []string) error {
	f, err := a.generate()
	if err != nil {
		return err
	}

	w, closeFn, err := middleware.OpenOutput(a.cfg.OutputPath, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeFn()

	if err := instance.Write(w, f); err != nil {
		return err
	}
	return closeFn()
}

func (a *app) runValidate(cmd *cobra.Command, _ []string) error {
	f, err := a.loadInstance()
	if err != nil {
		return err
	}

	b, err := f.Build()
	if err != nil {
		return err
	}
	if err := b.Validate(a.order(f)); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "instance is consistent: %d buildings, %d households, %d groups\n",
		len(b.Buildings), len(b.Accommodation), len(b.Pending))
	return nil
}

// runAllocate prints the report on stderr so stdout stays a clean CSV.
func (a *app) runAllocate(cmd *cobra.Command, _ []string) error {
	f, err := a.loadInstance()
	if err != nil {
		return err
	}

	b, err := f.Build()
	if err != nil {
		return err
	}
	order := a.order(f)

	res, err := b.AllocateRooms(order)
	if err != nil {
		return err
	}

	report.Print(cmd.ErrOrStderr(), b, report.Summarize(b, res))

	w, closeFn, err := middleware.OpenOutput(a.cfg.OutputPath, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeFn()
	if err := export.WriteHouseholds(w, b); err != nil {
		return err
	}
	if err := closeFn(); err != nil {
		return err
	}

	if a.cfg.UnplacedPath != "" {
		uw, closeUnplaced, err := middleware.OpenOutput(a.cfg.UnplacedPath, nil)
		if err != nil {
			return err
		}
		defer closeUnplaced()
		if err := export.WriteUnplaced(uw, res.Unplaced); err != nil {
			return err
		}
		if err := closeUnplaced(); err != nil {
			return err
		}
	}

	if a.cfg.DatabaseURL == "" {
		return nil
	}

	conn, err := db.Open(a.cfg.DatabaseType, a.cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.CreateSchema(conn); err != nil {
		return err
	}

	run := db.NewRun(f.Digest, order, b, res)
	if err := db.SaveRun(cmd.Context(), conn, run); err != nil {
		return err
	}
	slog.Info("run saved", "run_id", run.ID, "digest", f.Digest)
	fmt.Fprintf(cmd.ErrOrStderr(), "RUN: %s\n", run.ID)
	return nil
}
