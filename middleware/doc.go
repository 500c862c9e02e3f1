// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides wrappers and helpers shared by the CLI commands.

# Command Logging

Wrap a command's RunE with logging:

	cmd.RunE = middleware.WithLogging("allocate", runAllocate)

Logs "command started" (command, args), then either "command completed"
(duration_ms) or "command failed" (duration_ms, error). The wrapped error is
returned unchanged.

# Output Files

	w, closeFn, err := middleware.OpenOutput(cfg.OutputPath, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeFn()

An empty path selects the fallback writer, which is never closed.
*/
package middleware
