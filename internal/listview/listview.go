// Package listview implements the derivation steps every list section
// shares: case-insensitive substring filtering, direction-toggling sort and
// calendar-day grouping. Collections are small and unpaginated, so each
// view is recomputed from the full in-memory slice on every request.
package listview

import (
	"sort"
	"strings"

	"github.com/noah-isme/kindy-portal/pkg/format"
)

// Order is a sort direction.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// SortState tracks the active sort field and direction.
type SortState struct {
	Field string
	Order Order
}

// Toggle returns the state after clicking a sort field: the same field
// flips the direction, a different field resets to descending.
func (s SortState) Toggle(field string) SortState {
	if s.Field == field {
		if s.Order == OrderAsc {
			return SortState{Field: field, Order: OrderDesc}
		}
		return SortState{Field: field, Order: OrderAsc}
	}
	return SortState{Field: field, Order: OrderDesc}
}

// Normalize fills in defaults for states arriving from query parameters.
func (s SortState) Normalize(defaultField string) SortState {
	if s.Field == "" {
		s.Field = defaultField
	}
	if s.Order != OrderAsc {
		s.Order = OrderDesc
	}
	return s
}

// Filter keeps items whose searchable fields contain the query,
// case-insensitively. A blank query returns the input untouched, order
// included.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return items
	}

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), query) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}

// Sort returns a sorted copy. cmp is the ascending comparison; isNull may
// be nil. Items with a null sort key always land after non-null items, in
// both directions — the direction flip applies only to comparable values.
func Sort[T any](items []T, order Order, cmp func(a, b T) int, isNull func(T) bool) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if isNull != nil {
			aNull, bNull := isNull(a), isNull(b)
			switch {
			case aNull && bNull:
				return false
			case aNull:
				return false
			case bNull:
				return true
			}
		}
		c := cmp(a, b)
		if order == OrderDesc {
			c = -c
		}
		return c < 0
	})

	return sorted
}

// CompareFloat is an ascending float comparator.
func CompareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// CompareInt is an ascending int comparator.
func CompareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// CompareString is an ascending string comparator.
func CompareString(a, b string) int {
	return strings.Compare(a, b)
}

// CompareDate compares two backend timestamps chronologically. Unparseable
// values compare as the zero time.
func CompareDate(a, b string) int {
	ta, _ := format.ParseAnyDate(a)
	tb, _ := format.ParseAnyDate(b)
	switch {
	case ta.Before(tb):
		return -1
	case ta.After(tb):
		return 1
	}
	return 0
}

// Group is one calendar-day bucket of a grouped view.
type Group[T any] struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
	Items []T    `json:"items"`
}

// GroupByDay buckets items by the local calendar day of the selected
// timestamp field, newest day first. Items with unparseable timestamps
// gather in a bucket keyed by the raw value.
func GroupByDay[T any](items []T, dateOf func(T) string) []Group[T] {
	buckets := make(map[string][]T)
	labels := make(map[string]string)
	var keys []string

	for _, item := range items {
		raw := dateOf(item)
		key := raw
		label := raw
		if t, err := format.ParseAnyDate(raw); err == nil {
			day := t.Local()
			key = day.Format("2006-01-02")
			label = format.Date(day)
		}
		if _, seen := buckets[key]; !seen {
			keys = append(keys, key)
			labels[key] = label
		}
		buckets[key] = append(buckets[key], item)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	groups := make([]Group[T], 0, len(keys))
	for _, key := range keys {
		groups = append(groups, Group[T]{
			Key:   key,
			Label: labels[key],
			Count: len(buckets[key]),
			Items: buckets[key],
		})
	}
	return groups
}
