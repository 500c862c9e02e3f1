// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/room-ballot/cliparse"
	"github.com/danielhkuo/room-ballot/middleware"
)

// app holds the configuration resolved before any subcommand runs.
type app struct {
	cfg cliparse.Config
}

// NewRootCommand builds the room-ballot command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:               "room-ballot",
		Short:             "Allocate groups of residents to households",
		SilenceUsage:      true,
		PersistentPreRunE: a.configure,
	}
	cliparse.BindFlags(root.PersistentFlags())

	root.AddCommand(a.generateCmd())
	root.AddCommand(a.validateCmd())
	root.AddCommand(a.allocateCmd())
	root.AddCommand(a.runsCmd())

	return root
}

// configure resolves flags and environment, then installs the logger on the
// command's stderr.
func (a *app) configure(cmd *cobra.Command, _ []string) error {
	cfg, err := cliparse.Load(cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Level()})
	slog.SetDefault(slog.New(handler))
	return nil
}

func (a *app) generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write a sample instance file",
		Args:  cobra.NoArgs,
		RunE:  middleware.WithLogging("generate", a.runGenerate),
	}
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check an instance for configuration inconsistencies",
		Args:  cobra.NoArgs,
		RunE:  middleware.WithLogging("validate", a.runValidate),
	}
}

func (a *app) allocateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "allocate",
		Short: "Run the allocation pass and export the household table",
		Args:  cobra.NoArgs,
		RunE:  middleware.WithLogging("allocate", a.runAllocate),
	}
}

func (a *app) runsCmd() *cobra.Command {
	runs := &cobra.Command{
		Use:   "runs",
		Short: "Inspect stored allocation runs",
	}
	runs.AddCommand(&cobra.Command{
		Use:   "show [run-id]",
		Short: "Print the household table of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  middleware.WithLogging("runs show", a.runShow),
	})
	return runs
}
