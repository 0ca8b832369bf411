package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/entity"
)

func TestCompute_RanksByCount(t *testing.T) {
	entries := Compute([]string{"Black", "Black", "Brown"})

	require.Len(t, entries, 2)
	assert.Equal(t, entity.AggregateEntry{Value: "Black", Count: 2, Percent: 66.7}, entries[0])
	assert.Equal(t, entity.AggregateEntry{Value: "Brown", Count: 1, Percent: 33.3}, entries[1])
}

func TestCompute_Empty(t *testing.T) {
	entries := Compute(nil)
	require.NotNil(t, entries)
	assert.Empty(t, entries)

	_, ok := MostVoted(nil)
	assert.False(t, ok)
}

func TestCompute_SingleVote(t *testing.T) {
	entries := Compute([]string{"Green"})

	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Count)
	assert.InDelta(t, 100.0, entries[0].Percent, 0.01)

	top, ok := MostVoted([]string{"Green"})
	require.True(t, ok)
	assert.Equal(t, "Green", top)
}

func TestCompute_TieKeepsFirstSeenOrder(t *testing.T) {
	// Brown was cast first, so it wins the 2-2 tie.
	values := []string{"Brown", "Black", "Black", "Brown"}

	entries := Compute(values)
	require.Len(t, entries, 2)
	assert.Equal(t, "Brown", entries[0].Value)
	assert.Equal(t, "Black", entries[1].Value)

	top, ok := MostVoted(values)
	require.True(t, ok)
	assert.Equal(t, "Brown", top)
}

func TestCompute_CountsSumToTotal(t *testing.T) {
	values := []string{"A", "B", "A", "C", "A", "B", "D"}

	entries := Compute(values)

	var count int
	var percent float64
	for _, e := range entries {
		count += e.Count
		percent += e.Percent
	}
	assert.Equal(t, len(values), count)
	assert.InDelta(t, 100.0, percent, 0.3)
}
