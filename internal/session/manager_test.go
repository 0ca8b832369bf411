package session

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/taxonomy"
)

type fakeVotes struct {
	votes map[string]string
}

func (f *fakeVotes) GetVotesByVoter(_ context.Context, _ int64, _ uuid.UUID) (map[string]string, error) {
	if f.votes == nil {
		return map[string]string{}, nil
	}
	return f.votes, nil
}

func newTestManager(t *testing.T, committed map[string]string) *Manager {
	t.Helper()
	return NewManager(newTestStore(t), &fakeVotes{votes: committed})
}

func TestManager_ResumeEmptySession(t *testing.T) {
	m := newTestManager(t, nil)

	machine, err := m.Resume(context.Background(), 1, uuid.New(), taxonomy.FamilyGeographic)
	require.NoError(t, err)
	assert.Equal(t, StateEmpty, machine.State())
}

func TestManager_ResumeUnknownFamily(t *testing.T) {
	m := newTestManager(t, nil)

	_, err := m.Resume(context.Background(), 1, uuid.New(), "zodiac")
	assert.Error(t, err)
}

func TestManager_CommittedVotesFormBaseline(t *testing.T) {
	m := newTestManager(t, map[string]string{
		taxonomy.AxisPrimaryGeographic:   "Southern Europe",
		taxonomy.AxisSecondaryGeographic: "Eastern Europe",
	})

	machine, err := m.Resume(context.Background(), 1, uuid.New(), taxonomy.FamilyGeographic)
	require.NoError(t, err)

	assert.Equal(t, StateSecondarySet, machine.State())
	assert.Equal(t, "Southern Europe", machine.Selections()[taxonomy.AxisPrimaryGeographic])
}

func TestManager_ScratchOverlaysBaseline(t *testing.T) {
	ctx := context.Background()
	subjectID := uuid.New()
	store := newTestStore(t)
	m := NewManager(store, &fakeVotes{votes: map[string]string{
		taxonomy.AxisPrimaryGeographic: "Southern Europe",
	}})

	// An uncommitted edit moved the primary; on resume the scratch value
	// wins over the committed one.
	require.NoError(t, store.Save(ctx, 1, subjectID, taxonomy.FamilyGeographic, map[string]string{
		taxonomy.AxisPrimaryGeographic: "North Africa",
	}))

	machine, err := m.Resume(ctx, 1, subjectID, taxonomy.FamilyGeographic)
	require.NoError(t, err)
	assert.Equal(t, "North Africa", machine.Selections()[taxonomy.AxisPrimaryGeographic])
}

func TestManager_OverlayInvalidatingChildDropsIt(t *testing.T) {
	ctx := context.Background()
	subjectID := uuid.New()
	store := newTestStore(t)
	m := NewManager(store, &fakeVotes{votes: map[string]string{
		taxonomy.AxisPrimaryGeographic:   "Southern Europe",
		taxonomy.AxisSecondaryGeographic: "Eastern Europe",
	}})

	// Scratch primary equals the committed secondary; the merged replay
	// must drop the now-duplicate child rather than keep a corrupt pair.
	require.NoError(t, store.Save(ctx, 1, subjectID, taxonomy.FamilyGeographic, map[string]string{
		taxonomy.AxisPrimaryGeographic: "Eastern Europe",
	}))

	machine, err := m.Resume(ctx, 1, subjectID, taxonomy.FamilyGeographic)
	require.NoError(t, err)

	assert.Equal(t, StatePrimarySet, machine.State())
	assert.Equal(t, map[string]string{
		taxonomy.AxisPrimaryGeographic: "Eastern Europe",
	}, machine.Selections())
}

func TestManager_SetPersistsScratch(t *testing.T) {
	ctx := context.Background()
	subjectID := uuid.New()
	store := newTestStore(t)
	m := NewManager(store, &fakeVotes{})

	_, err := m.Set(ctx, 1, subjectID, taxonomy.FamilyGeographic, 0, "Southern Europe")
	require.NoError(t, err)
	machine, err := m.Set(ctx, 1, subjectID, taxonomy.FamilyGeographic, 1, "Eastern Europe")
	require.NoError(t, err)
	assert.Equal(t, StateSecondarySet, machine.State())

	// Survives a "reload": a fresh resume sees the same state.
	resumed, err := m.Resume(ctx, 1, subjectID, taxonomy.FamilyGeographic)
	require.NoError(t, err)
	assert.Equal(t, machine.Selections(), resumed.Selections())
}

func TestManager_SetRejectsDuplicateWithoutPersisting(t *testing.T) {
	ctx := context.Background()
	subjectID := uuid.New()
	m := newTestManager(t, nil)

	_, err := m.Set(ctx, 1, subjectID, taxonomy.FamilyGeographic, 0, "North Africa")
	require.NoError(t, err)

	_, err = m.Set(ctx, 1, subjectID, taxonomy.FamilyGeographic, 1, "North Africa")
	require.ErrorIs(t, err, ErrDuplicateSelection)

	machine, err := m.Resume(ctx, 1, subjectID, taxonomy.FamilyGeographic)
	require.NoError(t, err)
	assert.Equal(t, StatePrimarySet, machine.State())
}

func TestManager_PrimaryChangeInvalidatesCommittedChildren(t *testing.T) {
	ctx := context.Background()
	subjectID := uuid.New()
	store := newTestStore(t)
	m := NewManager(store, &fakeVotes{votes: map[string]string{
		taxonomy.AxisPrimaryGeographic:   "Southern Europe",
		taxonomy.AxisSecondaryGeographic: "Eastern Europe",
		taxonomy.AxisTertiaryGeographic:  "Northern Europe",
	}})

	// Moving the primary clears the committed children; they must stay
	// cleared on a fresh resume, not resurrect from the vote store.
	_, err := m.Set(ctx, 1, subjectID, taxonomy.FamilyGeographic, 0, "North Africa")
	require.NoError(t, err)

	machine, err := m.Resume(ctx, 1, subjectID, taxonomy.FamilyGeographic)
	require.NoError(t, err)
	assert.Equal(t, StatePrimarySet, machine.State())
	assert.Equal(t, map[string]string{
		taxonomy.AxisPrimaryGeographic: "North Africa",
	}, machine.Selections())

	var cast [][2]string
	var cleared []string
	err = m.Commit(ctx, 1, subjectID, taxonomy.FamilyGeographic,
		func(_ context.Context, axisName, value string) error {
			cast = append(cast, [2]string{axisName, value})
			return nil
		},
		func(_ context.Context, axes []string) error {
			cleared = append(cleared, axes...)
			return nil
		},
	)
	require.NoError(t, err)

	assert.Equal(t, [][2]string{
		{taxonomy.AxisPrimaryGeographic, "North Africa"},
	}, cast)
	assert.Equal(t, []string{
		taxonomy.AxisSecondaryGeographic,
		taxonomy.AxisTertiaryGeographic,
	}, cleared)
}

func TestManager_CommitCastsInOrderAndClearsScratch(t *testing.T) {
	ctx := context.Background()
	subjectID := uuid.New()
	store := newTestStore(t)
	m := NewManager(store, &fakeVotes{})

	_, err := m.Set(ctx, 7, subjectID, taxonomy.FamilyGeographic, 0, "Southern Europe")
	require.NoError(t, err)
	_, err = m.Set(ctx, 7, subjectID, taxonomy.FamilyGeographic, 1, "Eastern Europe")
	require.NoError(t, err)

	var cast [][2]string
	var cleared []string
	err = m.Commit(ctx, 7, subjectID, taxonomy.FamilyGeographic,
		func(_ context.Context, axisName, value string) error {
			cast = append(cast, [2]string{axisName, value})
			return nil
		},
		func(_ context.Context, axes []string) error {
			cleared = append(cleared, axes...)
			return nil
		},
	)
	require.NoError(t, err)

	assert.Equal(t, [][2]string{
		{taxonomy.AxisPrimaryGeographic, "Southern Europe"},
		{taxonomy.AxisSecondaryGeographic, "Eastern Europe"},
	}, cast)
	assert.Equal(t, []string{taxonomy.AxisTertiaryGeographic}, cleared)

	loaded, err := store.Load(ctx, 7, subjectID, taxonomy.FamilyGeographic)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestManager_CommitRequiresPrimary(t *testing.T) {
	m := newTestManager(t, nil)

	err := m.Commit(context.Background(), 1, uuid.New(), taxonomy.FamilyGeographic,
		func(context.Context, string, string) error { return nil },
		func(context.Context, []string) error { return nil },
	)
	assert.ErrorIs(t, err, ErrMissingAncestor)
}

func TestManager_DiscardLeavesCommittedVotes(t *testing.T) {
	ctx := context.Background()
	subjectID := uuid.New()
	store := newTestStore(t)
	m := NewManager(store, &fakeVotes{votes: map[string]string{
		taxonomy.AxisPrimaryGeographic: "Southern Europe",
	}})

	_, err := m.Set(ctx, 1, subjectID, taxonomy.FamilyGeographic, 0, "North Africa")
	require.NoError(t, err)

	require.NoError(t, m.Discard(ctx, 1, subjectID, taxonomy.FamilyGeographic))

	machine, err := m.Resume(ctx, 1, subjectID, taxonomy.FamilyGeographic)
	require.NoError(t, err)
	assert.Equal(t, "Southern Europe", machine.Selections()[taxonomy.AxisPrimaryGeographic])
}
