// Package analytics turns comment and consultation collections into chart-ready series.
//
// Every function here is pure: inputs are never mutated and results never alias them.
// Groups keep the order in which their labels were first encountered so that ranking
// can break ties by that order.
package analytics

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// Entry is one label of a Tally with its count.
type Entry[K comparable] struct {
	Label K   `json:"label"`
	Count int `json:"count"`
}

// Tally is a label→count mapping that remembers first-encounter order.
type Tally[K comparable] struct {
	keys   []K
	counts map[K]int
}

// CountBy groups items by key and counts each group.
func CountBy[T any, K comparable](items []T, key func(T) K) Tally[K] {
	return CountOver(items, nil, key)
}

// CountOver is CountBy with labels pre-seeded at zero, in the given order, so that
// empty groups are still reported.
func CountOver[T any, K comparable](items []T, labels []K, key func(T) K) Tally[K] {
	t := Tally[K]{counts: make(map[K]int, len(labels))}
	for _, l := range labels {
		t.add(l, 0)
	}
	for _, item := range items {
		t.add(key(item), 1)
	}
	return t
}

func (t *Tally[K]) add(k K, n int) {
	if _, ok := t.counts[k]; !ok {
		t.keys = append(t.keys, k)
	}
	t.counts[k] += n
}

// Count returns the count for k, zero when absent.
func (t Tally[K]) Count(k K) int { return t.counts[k] }

// Len returns the number of labels.
func (t Tally[K]) Len() int { return len(t.keys) }

// Total returns the sum of all counts.
func (t Tally[K]) Total() int {
	total := 0
	for _, n := range t.counts {
		total += n
	}
	return total
}

// Map returns the counts as a plain map.
func (t Tally[K]) Map() map[K]int {
	out := make(map[K]int, len(t.counts))
	for k, n := range t.counts {
		out[k] = n
	}
	return out
}

// Entries returns the groups in first-encounter order.
func (t Tally[K]) Entries() []Entry[K] {
	out := make([]Entry[K], len(t.keys))
	for i, k := range t.keys {
		out[i] = Entry[K]{Label: k, Count: t.counts[k]}
	}
	return out
}

// NonZero returns the groups with a positive count, in first-encounter order.
func (t Tally[K]) NonZero() []Entry[K] {
	out := make([]Entry[K], 0, len(t.keys))
	for _, e := range t.Entries() {
		if e.Count > 0 {
			out = append(out, e)
		}
	}
	return out
}

// Ranked returns the groups by descending count. Equal counts keep first-encounter order.
func (t Tally[K]) Ranked() []Entry[K] {
	return Rank(t.Entries(), func(e Entry[K]) float64 { return float64(e.Count) })
}

// Top returns the label with the highest count and false when the tally is empty.
func (t Tally[K]) Top() (K, bool) {
	ranked := t.Ranked()
	if len(ranked) == 0 {
		var zero K
		return zero, false
	}
	return ranked[0].Label, true
}

// Average is the mean of a numeric field over one group.
type Average[K comparable] struct {
	Label K       `json:"label"`
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
}

// AverageBy groups items by key and averages value within each group.
func AverageBy[T any, K comparable](items []T, key func(T) K, value func(T) float64) []Average[K] {
	return AverageOver(items, nil, key, value)
}

// AverageOver is AverageBy with labels pre-seeded so empty groups are reported with
// Count 0 and Mean 0.
func AverageOver[T any, K comparable](items []T, labels []K, key func(T) K, value func(T) float64) []Average[K] {
	var order []K
	sums := make(map[K]decimal.Decimal, len(labels))
	counts := make(map[K]int, len(labels))
	touch := func(k K) {
		if _, ok := sums[k]; !ok {
			order = append(order, k)
			sums[k] = decimal.Zero
		}
	}
	for _, l := range labels {
		touch(l)
	}
	for _, item := range items {
		k := key(item)
		touch(k)
		sums[k] = sums[k].Add(decimal.NewFromFloat(value(item)))
		counts[k]++
	}

	out := make([]Average[K], len(order))
	for i, k := range order {
		out[i] = Average[K]{Label: k, Count: counts[k], Mean: divide(sums[k], counts[k])}
	}
	return out
}

// Mean averages value over items and returns 0 for an empty slice.
func Mean[T any](items []T, value func(T) float64) float64 {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(decimal.NewFromFloat(value(item)))
	}
	return divide(sum, len(items))
}

func divide(sum decimal.Decimal, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum.Div(decimal.NewFromInt(int64(n))).InexactFloat64()
}

// Rank returns a copy of entries ordered by descending score. The sort is stable, so
// entries with equal scores keep their input order.
func Rank[E any](entries []E, score func(E) float64) []E {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b E) int {
		return cmp.Compare(score(b), score(a))
	})
	return out
}

// TopN returns at most n entries of Rank(entries, score).
func TopN[E any](entries []E, n int, score func(E) float64) []E {
	ranked := Rank(entries, score)
	if n < 0 {
		n = 0
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Percent returns part as a percentage of total, 0 when total is 0.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round1(float64(part) / float64(total) * 100)
}

// Round1 rounds v half away from zero to one decimal place.
func Round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}
