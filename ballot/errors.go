// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDegenerateGroup            = errors.New("group has no members")
	ErrInvalidPerson              = errors.New("invalid person")
	ErrCapacityExceeded           = errors.New("household capacity exceeded")
	ErrConfigurationInconsistency = errors.New("inconsistent ballot configuration")
	ErrAlreadyAllocated           = errors.New("ballot has already been allocated")
)

// CapacityExceededError reports a rejected admission. It is the normal signal for
// the engine to move on to the next candidate and never aborts a pass.
type CapacityExceededError struct {
	Household string
	Capacity  uint
	Occupancy uint
	Required  uint
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("household %q cannot take %d more: occupancy=%d, capacity=%d",
		e.Household, e.Required, e.Occupancy, e.Capacity)
}

func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// ConfigKind identifies which consistency rule a ballot broke.
type ConfigKind string

const (
	KindDuplicateBuilding    ConfigKind = "duplicate_building"
	KindDuplicateOrderEntry  ConfigKind = "duplicate_order_entry"
	KindOrderMismatch        ConfigKind = "order_mismatch"
	KindDuplicateHousehold   ConfigKind = "duplicate_household"
	KindDuplicateGroup       ConfigKind = "duplicate_group"
	KindUndeclaredBuilding   ConfigKind = "undeclared_building"
	KindUnknownHousehold     ConfigKind = "unknown_household"
	KindUndeclaredPreference ConfigKind = "undeclared_preference"
)

// ConfigurationError is fatal: the allocator refuses to run on the ballot.
type ConfigurationError struct {
	Kind      ConfigKind
	Building  string
	Household string
	Group     string
	Detail    string
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Building != "" {
		fmt.Fprintf(&b, ": building %q", e.Building)
	}
	if e.Household != "" {
		fmt.Fprintf(&b, ": household %q", e.Household)
	}
	if e.Group != "" {
		fmt.Fprintf(&b, ": group %q", e.Group)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfigurationInconsistency
}
