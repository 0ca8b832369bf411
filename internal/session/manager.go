package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/taxonomy"
)

// CommittedVotes is the slice of the vote store the manager needs to
// build a resume baseline.
type CommittedVotes interface {
	GetVotesByVoter(ctx context.Context, voterID int64, subjectID uuid.UUID) (map[string]string, error)
}

// Manager resumes, edits and commits voting sessions. Committed votes
// form the baseline and scratch edits overlay them; the merged result is
// replayed through the state machine so a stale overlay can never
// resurrect an invalid child selection.
type Manager struct {
	store *Store
	votes CommittedVotes
}

func NewManager(store *Store, votes CommittedVotes) *Manager {
	return &Manager{store: store, votes: votes}
}

func (m *Manager) Resume(ctx context.Context, voterID int64, subjectID uuid.UUID, family string) (*Machine, error) {
	const op = "session.Manager.Resume"

	hierarchy, ok := taxonomy.HierarchyByFamily(family)
	if !ok {
		return nil, fmt.Errorf("%s: unknown hierarchy family %q", op, family)
	}

	committed, err := m.votes.GetVotesByVoter(ctx, voterID, subjectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	scratch, err := m.store.Load(ctx, voterID, subjectID, family)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	merged := make(map[string]string, len(hierarchy.Axes))
	for _, axisName := range hierarchy.Axes {
		if v, ok := committed[axisName]; ok {
			merged[axisName] = v
		}
		// A present-but-empty scratch entry is a tombstone: the edit
		// cleared this axis, so it must hide the committed value.
		if v, ok := scratch[axisName]; ok {
			merged[axisName] = v
		}
	}

	return Restore(hierarchy, merged), nil
}

// Set applies one transition at the given level (0 primary, 1 secondary,
// 2 tertiary) and persists the resulting selections as scratch state.
func (m *Manager) Set(ctx context.Context, voterID int64, subjectID uuid.UUID, family string, level int, value string) (*Machine, error) {
	const op = "session.Manager.Set"

	machine, err := m.Resume(ctx, voterID, subjectID, family)
	if err != nil {
		return nil, err
	}

	if level < 0 || level >= len(machine.hierarchy.Axes) {
		return nil, fmt.Errorf("%s: level %d out of range", op, level)
	}

	if err := machine.set(level, value); err != nil {
		return nil, err
	}

	// Save every axis, cleared ones as empty strings, so an ancestor
	// change invalidates committed children across resumes too.
	if err := m.store.Save(ctx, voterID, subjectID, family, machine.fullSelections()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return machine, nil
}

// Commit casts one vote per populated axis in primary-first order, then
// drops the scratch state. cast is the service-provided vote path, so
// validation and notification stay with the vote store. clear receives
// the unpopulated tail of the chain so stale child votes from an earlier
// commit are invalidated in the vote store as well.
func (m *Manager) Commit(ctx context.Context, voterID int64, subjectID uuid.UUID, family string, cast func(ctx context.Context, axisName, value string) error, clear func(ctx context.Context, axes []string) error) error {
	const op = "session.Manager.Commit"

	machine, err := m.Resume(ctx, voterID, subjectID, family)
	if err != nil {
		return err
	}

	if !machine.Committable() {
		return fmt.Errorf("%s: %w", op, ErrMissingAncestor)
	}

	selections := machine.Selections()
	var stale []string
	for _, axisName := range machine.hierarchy.Axes {
		value, ok := selections[axisName]
		if !ok {
			stale = append(stale, axisName)
			continue
		}
		if err := cast(ctx, axisName, value); err != nil {
			return fmt.Errorf("%s: %s: %w", op, axisName, err)
		}
	}

	if len(stale) > 0 {
		if err := clear(ctx, stale); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := m.store.Delete(ctx, voterID, subjectID, family); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Discard abandons the in-progress edit without touching committed votes.
func (m *Manager) Discard(ctx context.Context, voterID int64, subjectID uuid.UUID, family string) error {
	const op = "session.Manager.Discard"

	if err := m.store.Delete(ctx, voterID, subjectID, family); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
