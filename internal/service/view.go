package service

import (
	"github.com/noah-isme/kindy-portal/internal/listview"
)

// ListQuery carries the common list-view controls arriving from query
// parameters: free-text search, sort field/direction and an optional
// group-by timestamp field.
type ListQuery struct {
	Search    string
	SortField string
	SortOrder listview.Order
	GroupBy   string
}

// Sort normalizes the query's sort state against a default field.
func (q ListQuery) Sort(defaultField string) listview.SortState {
	return listview.SortState{Field: q.SortField, Order: q.SortOrder}.Normalize(defaultField)
}

// ListView is the render-ready shape shared by every list section. Groups
// is populated only when a group-by field was requested; Items always
// carries the filtered, sorted collection.
type ListView[T any] struct {
	Items  []T                 `json:"items"`
	Groups []listview.Group[T] `json:"groups,omitempty"`
	Sort   listview.SortState  `json:"sort"`
	Total  int                 `json:"total"`
}
