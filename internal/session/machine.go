// Package session holds a voter's in-progress classification of one
// subject: a cascade-invalidation state machine per hierarchy family,
// backed by a durable scratch store so an unfinished session survives a
// reload. Nothing here touches the vote store until Commit.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/taxonomy"
)

type State string

const (
	StateEmpty        State = "empty"
	StatePrimarySet   State = "primary_set"
	StateSecondarySet State = "secondary_set"
	StateTertiarySet  State = "tertiary_set"
)

var (
	ErrDuplicateSelection = errors.New("selection equals an ancestor value")
	ErrMissingAncestor    = errors.New("ancestor level is not set")
	ErrInvalidValue       = errors.New("value not in axis domain")
)

// Machine enforces the ordering and no-duplicate-ancestor rules of one
// hierarchy family. It is owned by a single voter and needs no locking.
type Machine struct {
	hierarchy  taxonomy.Hierarchy
	selections []string
}

func NewMachine(h taxonomy.Hierarchy) *Machine {
	return &Machine{
		hierarchy:  h,
		selections: make([]string, len(h.Axes)),
	}
}

// Restore replays selections through a fresh machine in primary-first
// order. Entries that have become invalid (out of order, duplicate of an
// ancestor, unknown value) are dropped silently; restoring is a merge,
// not a user action.
func Restore(h taxonomy.Hierarchy, selections map[string]string) *Machine {
	m := NewMachine(h)
	for level, axisName := range h.Axes {
		v, ok := selections[axisName]
		if !ok || v == "" {
			break
		}
		if err := m.set(level, v); err != nil {
			break
		}
	}
	return m
}

func (m *Machine) SetPrimary(value string) error {
	return m.set(0, value)
}

func (m *Machine) SetSecondary(value string) error {
	return m.set(1, value)
}

func (m *Machine) SetTertiary(value string) error {
	return m.set(2, value)
}

// set records value at level and clears every level below it. A failed
// set leaves the machine untouched.
func (m *Machine) set(level int, value string) error {
	const op = "session.Machine.set"

	axisName := m.hierarchy.Axes[level]
	canonical, ok := taxonomy.Canonical(axisName, value)
	if !ok {
		return fmt.Errorf("%s: %q on %s: %w", op, value, axisName, ErrInvalidValue)
	}

	if level > 0 && m.selections[level-1] == "" {
		return fmt.Errorf("%s: %s: %w", op, axisName, ErrMissingAncestor)
	}

	for _, ancestor := range m.selections[:level] {
		if strings.EqualFold(ancestor, canonical) {
			return fmt.Errorf("%s: %q: %w", op, canonical, ErrDuplicateSelection)
		}
	}

	m.selections[level] = canonical
	for i := level + 1; i < len(m.selections); i++ {
		m.selections[i] = ""
	}

	return nil
}

// Selections returns the populated axes as an axis -> value map.
func (m *Machine) Selections() map[string]string {
	out := make(map[string]string, len(m.selections))
	for i, v := range m.selections {
		if v != "" {
			out[m.hierarchy.Axes[i]] = v
		}
	}
	return out
}

// fullSelections includes cleared axes as empty strings. The scratch
// store needs the tombstones: without them a cascade-cleared child has
// no record and a committed vote for it would resurrect on resume.
func (m *Machine) fullSelections() map[string]string {
	out := make(map[string]string, len(m.selections))
	for i, v := range m.selections {
		out[m.hierarchy.Axes[i]] = v
	}
	return out
}

func (m *Machine) State() State {
	switch {
	case m.selections[2] != "":
		return StateTertiarySet
	case m.selections[1] != "":
		return StateSecondarySet
	case m.selections[0] != "":
		return StatePrimarySet
	default:
		return StateEmpty
	}
}

// Committable reports whether the session can be committed: only the
// primary selection is mandatory.
func (m *Machine) Committable() bool {
	return m.selections[0] != ""
}

func (m *Machine) Hierarchy() taxonomy.Hierarchy {
	return m.hierarchy
}
