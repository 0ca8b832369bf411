package entity

// AggregateEntry is one row of a per-subject, per-axis vote breakdown.
// Percent is 100 * Count / total votes for the axis.
type AggregateEntry struct {
	Value   string  `json:"value"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}
