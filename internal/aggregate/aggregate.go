// Package aggregate computes vote breakdowns for one subject and axis.
// It is pure: callers feed it the current vote values and get a ranked
// result back, so a cached implementation can be layered on without
// touching the math.
package aggregate

import (
	"math"
	"sort"

	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/entity"
)

// Compute groups values, counts them and ranks by count descending.
// Ties keep first-seen order, so with values ordered by cast time the
// earliest-cast classification wins a tie. An empty input yields an
// empty result, never an error.
func Compute(values []string) []entity.AggregateEntry {
	if len(values) == 0 {
		return []entity.AggregateEntry{}
	}

	counts := make(map[string]int, len(values))
	order := make([]string, 0, len(values))
	for _, v := range values {
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	total := len(values)
	entries := make([]entity.AggregateEntry, 0, len(order))
	for _, v := range order {
		entries = append(entries, entity.AggregateEntry{
			Value:   v,
			Count:   counts[v],
			Percent: round1(100 * float64(counts[v]) / float64(total)),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	return entries
}

// MostVoted returns the top-ranked value, or false when no votes exist.
func MostVoted(values []string) (string, bool) {
	entries := Compute(values)
	if len(entries) == 0 {
		return "", false
	}
	return entries[0].Value, true
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
