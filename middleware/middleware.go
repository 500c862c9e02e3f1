// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// RunFunc is the signature of a cobra RunE hook.
type RunFunc func(cmd *cobra.Command, args []string) error

// WithLogging wraps a command with start, completion and failure logging
func WithLogging(name string, next RunFunc) RunFunc {
	return func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		slog.Info("command started",
			"command", name,
			"args", args,
		)

		err := next(cmd, args)

		duration := time.Since(start)
		if err != nil {
			slog.Error("command failed",
				"command", name,
				"duration_ms", duration.Milliseconds(),
				"error", err,
			)
			return err
		}

		slog.Info("command completed",
			"command", name,
			"duration_ms", duration.Milliseconds(),
		)
		return nil
	}
}

// OpenOutput returns a writer for path, or fallback when path is empty.
// The returned close function must always be called.
func OpenOutput(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return fallback, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, f.Close, nil
}
