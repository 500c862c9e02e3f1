// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package report summarises an allocation for the console: placed and unplaced
// counts, how deep into their preference lists groups had to go, score spread
// and capacity utilisation.
package report
