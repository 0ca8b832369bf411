package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValues_TreeAxisFlattensInDeclaredOrder(t *testing.T) {
	values, err := Values(AxisPrimaryGeographic)
	require.NoError(t, err)

	// Depth-first: region label first, then its subregions.
	assert.Equal(t, "Europe", values[0])
	assert.Equal(t, "Northern Europe", values[1])
	assert.Contains(t, values, "Southern Europe")
	assert.Contains(t, values, "Horn of Africa")
	assert.Contains(t, values, "Polynesia")
}

func TestValues_UnknownAxis(t *testing.T) {
	_, err := Values("shoe_size")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownAxis)
}

func TestValues_SharedDomainAcrossHierarchyLevels(t *testing.T) {
	primary, err := Values(AxisPrimaryGeographic)
	require.NoError(t, err)
	tertiary, err := Values(AxisTertiaryGeographic)
	require.NoError(t, err)

	assert.Equal(t, primary, tertiary)
}

func TestIsValid_CaseInsensitive(t *testing.T) {
	assert.True(t, IsValid(AxisHairColor, "Black"))
	assert.True(t, IsValid(AxisHairColor, "black"))
	assert.True(t, IsValid(AxisHairColor, " BLACK "))
	assert.False(t, IsValid(AxisHairColor, "Chartreuse"))
	assert.False(t, IsValid("no_such_axis", "Black"))
}

func TestCanonical_RestoresDeclaredSpelling(t *testing.T) {
	canonical, ok := Canonical(AxisPrimaryPhenotype, "gracile mediterranid")
	require.True(t, ok)
	assert.Equal(t, "Gracile Mediterranid", canonical)
}

func TestTree_MainGroupAndSubgroupBothSelectable(t *testing.T) {
	// A main group label and a subgroup under it are independent leaves
	// of the same axis.
	assert.True(t, IsValid(AxisPrimaryPhenotype, "Nordid"))
	assert.True(t, IsValid(AxisPrimaryPhenotype, "Hallstatt Nordid"))
	assert.True(t, IsValid(AxisPrimaryPhenotype, "Europid"))
}

func TestTree_PreservesDeclaredOrder(t *testing.T) {
	tree, err := Tree(AxisPrimaryPhenotype)
	require.NoError(t, err)

	require.NotEmpty(t, tree)
	assert.Equal(t, "Europid", tree[0].Label)
	require.NotEmpty(t, tree[0].Children)
	assert.Equal(t, "Nordid", tree[0].Children[0].Label)
}

func TestTree_FlatAxis(t *testing.T) {
	tree, err := Tree(AxisEyeColor)
	require.NoError(t, err)

	require.Len(t, tree, 7)
	for _, g := range tree {
		assert.Empty(t, g.Children)
	}
}

func TestHierarchies(t *testing.T) {
	hs := Hierarchies()
	require.Len(t, hs, 2)

	geo, ok := HierarchyByFamily(FamilyGeographic)
	require.True(t, ok)
	assert.Equal(t, []string{AxisPrimaryGeographic, AxisSecondaryGeographic, AxisTertiaryGeographic}, geo.Axes)

	_, ok = HierarchyByFamily("astral")
	assert.False(t, ok)
}
