// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package generator builds sample ballot instances for trying the allocator.

	f, err := generator.Generate(generator.Params{
		Groups:     20,
		Households: 5,
		Buildings:  3,
		Seed:       1,
	})

Buildings are named "Building 1".."Building n" and the default order is the
declared order. Groups carry no preferences, so every group goes through the
default building order.
*/
package generator
