// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

// Validate checks that the ballot is structurally consistent with defaultOrder.
// It runs before any household is touched; the first violation found is returned
// as a *ConfigurationError.
//
// Building preferences of individual groups are not checked here. The engine
// checks them when a group actually falls through to the building tier.
func (b *Ballot) Validate(defaultOrder []string) error {
	declared := make(map[string]bool, len(b.Buildings))
	for _, name := range b.Buildings {
		if declared[name] {
			return &ConfigurationError{Kind: KindDuplicateBuilding, Building: name}
		}
		declared[name] = true
	}

	// The default order must be a permutation of the declared buildings
	ordered := make(map[string]bool, len(defaultOrder))
	for _, name := range defaultOrder {
		if ordered[name] {
			return &ConfigurationError{
				Kind:     KindDuplicateOrderEntry,
				Building: name,
				Detail:   "listed more than once in the default order",
			}
		}
		if !declared[name] {
			return &ConfigurationError{
				Kind:     KindOrderMismatch,
				Building: name,
				Detail:   "in the default order but not declared by the ballot",
			}
		}
		ordered[name] = true
	}
	for _, name := range b.Buildings {
		if !ordered[name] {
			return &ConfigurationError{
				Kind:     KindOrderMismatch,
				Building: name,
				Detail:   "declared by the ballot but missing from the default order",
			}
		}
	}

	households := make(map[string]bool, len(b.Accommodation))
	for _, h := range b.Accommodation {
		if households[h.name] {
			return &ConfigurationError{Kind: KindDuplicateHousehold, Household: h.name}
		}
		households[h.name] = true
		if !declared[h.building] {
			return &ConfigurationError{
				Kind:      KindUndeclaredBuilding,
				Building:  h.building,
				Household: h.name,
				Detail:    "household is in a building the ballot does not declare",
			}
		}
	}

	seen := make(map[*Group]bool, len(b.Pending))
	for _, g := range b.Pending {
		if seen[g] {
			return &ConfigurationError{
				Kind:   KindDuplicateGroup,
				Group:  g.label,
				Detail: "group is queued more than once",
			}
		}
		seen[g] = true
		for _, name := range g.householdPreferences {
			if name != "" && !households[name] {
				return &ConfigurationError{
					Kind:      KindUnknownHousehold,
					Household: name,
					Group:     g.label,
					Detail:    "household preference does not name a household of the ballot",
				}
			}
		}
	}

	return nil
}

// checkBuildings is the per-group check made when a group reaches the building tier.
func checkBuildings(g *Group, buildings []string, declared map[string]bool) error {
	for _, name := range buildings {
		if !declared[name] {
			return &ConfigurationError{
				Kind:     KindUndeclaredPreference,
				Building: name,
				Group:    g.label,
				Detail:   "building preference is not declared by the ballot",
			}
		}
	}
	return nil
}
