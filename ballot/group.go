// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Person is a single applicant. Score is the priority metric the engine averages
// over a group.
type Person struct {
	Name  string `validate:"required"`
	Score uint
}

// String renders the person the way exported rosters show them.
func (p Person) String() string {
	return fmt.Sprintf("%s [%d]", p.Name, p.Score)
}

// Roster joins members as "name [score]" separated by ", ".
func Roster(members []Person) string {
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = m.String()
	}
	return strings.Join(parts, ", ")
}

// GroupSpec is the input to NewGroup.
type GroupSpec struct {
	Label   string
	Members []Person `validate:"dive"`

	// Ranked household names. An empty entry means no preference at that rank.
	HouseholdPreferences []string

	// Ranked building names. Nil means "use the default order"; a non-nil empty
	// slice means the group has no building candidates at all.
	BuildingPreferences []string
}

// Group is an atomic placement unit: it is placed whole or not at all.
type Group struct {
	label                string
	members              []Person
	householdPreferences []string
	buildingPreferences  []string
}

// NewGroup builds a group, rejecting zero-member groups so the average score is
// always defined.
func NewGroup(spec GroupSpec) (*Group, error) {
	if len(spec.Members) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrDegenerateGroup, spec.Label)
	}
	if err := validate.Struct(spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPerson, err)
	}

	g := &Group{
		label:                spec.Label,
		members:              slices.Clone(spec.Members),
		householdPreferences: slices.Clone(spec.HouseholdPreferences),
	}
	if spec.BuildingPreferences != nil {
		g.buildingPreferences = append([]string{}, spec.BuildingPreferences...)
	}
	if g.label == "" {
		g.label = Roster(g.members)
	}
	return g, nil
}

func (g *Group) Label() string { return g.label }

// Members returns a copy of the group's members in their original order.
func (g *Group) Members() []Person { return slices.Clone(g.members) }

// HouseholdPreferences returns the ranked household names, including empty entries.
func (g *Group) HouseholdPreferences() []string { return slices.Clone(g.householdPreferences) }

// BuildingPreferences returns the group's own building order and whether it has one.
func (g *Group) BuildingPreferences() ([]string, bool) {
	if g.buildingPreferences == nil {
		return nil, false
	}
	return append([]string{}, g.buildingPreferences...), true
}

func (g *Group) Size() uint { return uint(len(g.members)) }

func (g *Group) TotalScore() uint {
	var total uint
	for _, m := range g.members {
		total += m.Score
	}
	return total
}

// AverageScore is TotalScore / Size. NewGroup guarantees Size > 0.
func (g *Group) AverageScore() float64 {
	return float64(g.TotalScore()) / float64(g.Size())
}

// effectiveBuildings picks the group's own building order, falling back to def.
func (g *Group) effectiveBuildings(def []string) []string {
	if g.buildingPreferences != nil {
		return g.buildingPreferences
	}
	return def
}
