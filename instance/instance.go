// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package instance

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/room-ballot/ballot"
)

var (
	ErrEmptyInstance   = errors.New("instance file is empty")
	ErrInvalidInstance = errors.New("invalid instance file")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// File is the on-disk description of one ballot round.
type File struct {
	Buildings    []string        `yaml:"buildings"`
	DefaultOrder []string        `yaml:"default_order,omitempty"`
	Households   []HouseholdSpec `yaml:"households" validate:"dive"`
	Groups       []GroupSpec     `yaml:"groups" validate:"dive"`

	// Digest is the sha256 of the bytes the file was parsed from.
	Digest string `yaml:"-"`
}

type HouseholdSpec struct {
	Name     string `yaml:"name" validate:"required"`
	Building string `yaml:"building" validate:"required"`
	Capacity uint   `yaml:"capacity"`
}

type MemberSpec struct {
	Name  string `yaml:"name" validate:"required"`
	Score uint   `yaml:"score"`
}

type GroupSpec struct {
	Label   string       `yaml:"label,omitempty"`
	Members []MemberSpec `yaml:"members" validate:"required,min=1,dive"`

	// null entries mean "no preference at this rank"
	HouseholdPreferences []*string `yaml:"household_preferences,omitempty"`

	// Omitted means the group follows the default order; an explicit [] means
	// the group accepts no building at all.
	BuildingPreferences *[]string `yaml:"building_preferences,omitempty"`
}

// Parse decodes a YAML instance. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read instance: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInstance
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode instance: %w", err)
	}

	sum := sha256.Sum256(data)
	f.Digest = hex.EncodeToString(sum[:])

	return &f, nil
}

// Load reads and parses the instance file at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open instance: %w", err)
	}
	defer fh.Close()

	return Parse(fh)
}

// Write encodes f as YAML.
func Write(w io.Writer, f *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("failed to encode instance: %w", err)
	}
	return enc.Close()
}

// Validate checks the shape of the file. Cross references between buildings,
// households and preferences are left to the ballot's own validator.
func (f *File) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInstance, err)
	}
	return nil
}

// Order returns the default building order, which falls back to the declared
// building order when the file does not give one.
func (f *File) Order() []string {
	if f.DefaultOrder == nil {
		return slices.Clone(f.Buildings)
	}
	return slices.Clone(f.DefaultOrder)
}

// Build creates a fresh pending-only ballot. Every call returns an independent
// household and group graph.
func (f *File) Build() (*ballot.Ballot, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	households := make([]*ballot.Household, len(f.Households))
	for i, h := range f.Households {
		households[i] = ballot.NewHousehold(h.Name, h.Building, h.Capacity)
	}

	groups := make([]*ballot.Group, len(f.Groups))
	for i, gs := range f.Groups {
		g, err := gs.build()
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", i+1, err)
		}
		groups[i] = g
	}

	return ballot.NewBallot(f.Buildings, households, groups), nil
}

func (gs GroupSpec) build() (*ballot.Group, error) {
	spec := ballot.GroupSpec{
		Label:   gs.Label,
		Members: make([]ballot.Person, len(gs.Members)),
	}
	for i, m := range gs.Members {
		spec.Members[i] = ballot.Person{Name: m.Name, Score: m.Score}
	}
	if len(gs.HouseholdPreferences) > 0 {
		spec.HouseholdPreferences = make([]string, len(gs.HouseholdPreferences))
		for i, name := range gs.HouseholdPreferences {
			if name != nil {
				spec.HouseholdPreferences[i] = *name
			}
		}
	}
	if gs.BuildingPreferences != nil {
		spec.BuildingPreferences = append([]string{}, *gs.BuildingPreferences...)
	}
	return ballot.NewGroup(spec)
}
