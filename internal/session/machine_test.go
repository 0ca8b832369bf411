package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/taxonomy"
)

func geoHierarchy(t *testing.T) taxonomy.Hierarchy {
	t.Helper()
	h, ok := taxonomy.HierarchyByFamily(taxonomy.FamilyGeographic)
	require.True(t, ok)
	return h
}

func TestMachine_PrimaryClearsDescendants(t *testing.T) {
	m := NewMachine(geoHierarchy(t))

	require.NoError(t, m.SetPrimary("Southern Europe"))
	require.NoError(t, m.SetSecondary("Eastern Europe"))
	require.NoError(t, m.SetTertiary("Northern Europe"))
	require.Equal(t, StateTertiarySet, m.State())

	// Changing the primary invalidates both descendants.
	require.NoError(t, m.SetPrimary("North Africa"))

	assert.Equal(t, StatePrimarySet, m.State())
	assert.Equal(t, map[string]string{
		taxonomy.AxisPrimaryGeographic: "North Africa",
	}, m.Selections())
}

func TestMachine_SecondaryClearsTertiaryOnly(t *testing.T) {
	m := NewMachine(geoHierarchy(t))

	require.NoError(t, m.SetPrimary("Southern Europe"))
	require.NoError(t, m.SetSecondary("Eastern Europe"))
	require.NoError(t, m.SetTertiary("Northern Europe"))

	require.NoError(t, m.SetSecondary("Western Europe"))

	assert.Equal(t, StateSecondarySet, m.State())
	assert.Equal(t, map[string]string{
		taxonomy.AxisPrimaryGeographic:   "Southern Europe",
		taxonomy.AxisSecondaryGeographic: "Western Europe",
	}, m.Selections())
}

func TestMachine_DuplicateAncestorRejected(t *testing.T) {
	m := NewMachine(geoHierarchy(t))

	require.NoError(t, m.SetPrimary("North Africa"))

	err := m.SetSecondary("North Africa")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateSelection)

	// Rejected transition leaves the session untouched.
	assert.Equal(t, StatePrimarySet, m.State())
	assert.Equal(t, map[string]string{
		taxonomy.AxisPrimaryGeographic: "North Africa",
	}, m.Selections())
}

func TestMachine_DuplicateCheckIsCaseInsensitive(t *testing.T) {
	m := NewMachine(geoHierarchy(t))

	require.NoError(t, m.SetPrimary("North Africa"))
	err := m.SetSecondary("north africa")
	assert.ErrorIs(t, err, ErrDuplicateSelection)
}

func TestMachine_TertiaryCheckedAgainstBothAncestors(t *testing.T) {
	m := NewMachine(geoHierarchy(t))

	require.NoError(t, m.SetPrimary("Southern Europe"))
	require.NoError(t, m.SetSecondary("Eastern Europe"))

	assert.ErrorIs(t, m.SetTertiary("Southern Europe"), ErrDuplicateSelection)
	assert.ErrorIs(t, m.SetTertiary("Eastern Europe"), ErrDuplicateSelection)
	assert.NoError(t, m.SetTertiary("Northern Europe"))
}

func TestMachine_OrderingEnforced(t *testing.T) {
	m := NewMachine(geoHierarchy(t))

	assert.ErrorIs(t, m.SetSecondary("Eastern Europe"), ErrMissingAncestor)
	assert.ErrorIs(t, m.SetTertiary("Eastern Europe"), ErrMissingAncestor)

	require.NoError(t, m.SetPrimary("Southern Europe"))
	assert.ErrorIs(t, m.SetTertiary("Eastern Europe"), ErrMissingAncestor)
}

func TestMachine_InvalidValueRejected(t *testing.T) {
	m := NewMachine(geoHierarchy(t))

	err := m.SetPrimary("Narnia")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, StateEmpty, m.State())
}

func TestMachine_Committable(t *testing.T) {
	m := NewMachine(geoHierarchy(t))
	assert.False(t, m.Committable())

	// Only the primary is mandatory.
	require.NoError(t, m.SetPrimary("Southern Europe"))
	assert.True(t, m.Committable())
}

func TestRestore_ReplaysValidSelections(t *testing.T) {
	h := geoHierarchy(t)

	m := Restore(h, map[string]string{
		taxonomy.AxisPrimaryGeographic:   "Southern Europe",
		taxonomy.AxisSecondaryGeographic: "Eastern Europe",
		taxonomy.AxisTertiaryGeographic:  "Northern Europe",
	})

	assert.Equal(t, StateTertiarySet, m.State())
}

func TestRestore_DropsInvalidTail(t *testing.T) {
	h := geoHierarchy(t)

	// Secondary duplicates the primary: it and everything below drop.
	m := Restore(h, map[string]string{
		taxonomy.AxisPrimaryGeographic:   "Southern Europe",
		taxonomy.AxisSecondaryGeographic: "Southern Europe",
		taxonomy.AxisTertiaryGeographic:  "Northern Europe",
	})

	assert.Equal(t, StatePrimarySet, m.State())
	assert.Equal(t, map[string]string{
		taxonomy.AxisPrimaryGeographic: "Southern Europe",
	}, m.Selections())
}

func TestRestore_GapStopsReplay(t *testing.T) {
	h := geoHierarchy(t)

	// No secondary: the tertiary cannot survive on its own.
	m := Restore(h, map[string]string{
		taxonomy.AxisPrimaryGeographic:  "Southern Europe",
		taxonomy.AxisTertiaryGeographic: "Northern Europe",
	})

	assert.Equal(t, StatePrimarySet, m.State())
}

func TestMachine_PhenotypeFamilyUsesSameRules(t *testing.T) {
	h, ok := taxonomy.HierarchyByFamily(taxonomy.FamilyPhenotype)
	require.True(t, ok)

	m := NewMachine(h)
	require.NoError(t, m.SetPrimary("Nordid"))
	require.ErrorIs(t, m.SetSecondary("Nordid"), ErrDuplicateSelection)
	require.NoError(t, m.SetSecondary("Hallstatt Nordid"))
	assert.Equal(t, StateSecondarySet, m.State())
}
