// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"os"

	"github.com/danielhkuo/room-ballot/commands"
)

func main() {
	// cobra prints the error; the logger is installed once flags are parsed
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
