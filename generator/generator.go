// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/danielhkuo/room-ballot/instance"
)

const (
	MinCapacity = 1
	MaxCapacity = 10
)

var ErrInvalidParams = errors.New("invalid generation parameters")

// Params controls the size of a sample ballot.
type Params struct {
	Groups     int
	Households int
	Buildings  int
	Seed       uint64
}

func (p Params) validate() error {
	if p.Groups < 1 {
		return fmt.Errorf("%w: need at least one group, got %d", ErrInvalidParams, p.Groups)
	}
	if p.Households < 1 {
		return fmt.Errorf("%w: need at least one household, got %d", ErrInvalidParams, p.Households)
	}
	if p.Buildings < 1 {
		return fmt.Errorf("%w: need at least one building, got %d", ErrInvalidParams, p.Buildings)
	}
	return nil
}

// Generate produces a sample instance. The same Params always give the same file.
//
// Group i (1-based) has 2i-1 members; member j scores i*10 + j*4, so later groups
// are both larger and higher scoring. Household capacities are uniform in
// [MinCapacity, MaxCapacity] and households are spread uniformly over buildings.
func Generate(p Params) (*instance.File, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(p.Seed, p.Seed^0x9e3779b97f4a7c15))

	buildings := make([]string, p.Buildings)
	for i := range buildings {
		buildings[i] = fmt.Sprintf("Building %d", i+1)
	}

	groups := make([]instance.GroupSpec, p.Groups)
	for i := 1; i <= p.Groups; i++ {
		members := make([]instance.MemberSpec, 2*i-1)
		for j := 1; j <= len(members); j++ {
			members[j-1] = instance.MemberSpec{
				Name:  fmt.Sprintf("Person %d in group %d", j, i),
				Score: uint(i*10 + j*4),
			}
		}
		groups[i-1] = instance.GroupSpec{
			Label:   fmt.Sprintf("Group %d", i),
			Members: members,
		}
	}

	households := make([]instance.HouseholdSpec, p.Households)
	for i := range households {
		households[i] = instance.HouseholdSpec{
			Name:     fmt.Sprintf("Household %d", i+1),
			Building: buildings[rng.IntN(len(buildings))],
			Capacity: uint(MinCapacity + rng.IntN(MaxCapacity-MinCapacity+1)),
		}
	}

	return &instance.File{
		Buildings:    buildings,
		DefaultOrder: append([]string(nil), buildings...),
		Households:   households,
		Groups:       groups,
	}, nil
}
