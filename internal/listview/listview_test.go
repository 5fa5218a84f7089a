package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name   string
	Ref    string
	Amount float64
	Date   string
	Last   *string
}

func strPtr(s string) *string { return &s }

func searchFields(r row) []string { return []string{r.Name, r.Ref} }

func TestFilterEmptyQueryReturnsInputUnchanged(t *testing.T) {
	rows := []row{{Name: "Budi"}, {Name: "Aisyah"}, {Name: "Citra"}}

	assert.Equal(t, rows, Filter(rows, "", searchFields))
	assert.Equal(t, rows, Filter(rows, "   ", searchFields))
}

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	rows := []row{
		{Name: "Budi Santoso", Ref: "TRF-001"},
		{Name: "Aisyah Putri", Ref: "CASH-01"},
		{Name: "Citra", Ref: "trf-777"},
	}

	byName := Filter(rows, "AISY", searchFields)
	require.Len(t, byName, 1)
	assert.Equal(t, "Aisyah Putri", byName[0].Name)

	byRef := Filter(rows, "trf", searchFields)
	assert.Len(t, byRef, 2)

	assert.Empty(t, Filter(rows, "zzz", searchFields))
}

func TestSortToggleSemantics(t *testing.T) {
	s := SortState{}.Normalize("createdAt")
	assert.Equal(t, SortState{Field: "createdAt", Order: OrderDesc}, s)

	// Same field flips direction both ways.
	s = s.Toggle("createdAt")
	assert.Equal(t, OrderAsc, s.Order)
	s = s.Toggle("createdAt")
	assert.Equal(t, OrderDesc, s.Order)

	// A new field resets to descending.
	s = s.Toggle("createdAt") // asc again
	s = s.Toggle("amount")
	assert.Equal(t, SortState{Field: "amount", Order: OrderDesc}, s)
}

func TestSortDirections(t *testing.T) {
	rows := []row{{Amount: 200}, {Amount: 50}, {Amount: 125}}
	cmp := func(a, b row) int { return CompareFloat(a.Amount, b.Amount) }

	asc := Sort(rows, OrderAsc, cmp, nil)
	assert.Equal(t, []float64{50, 125, 200}, amounts(asc))

	desc := Sort(rows, OrderDesc, cmp, nil)
	assert.Equal(t, []float64{200, 125, 50}, amounts(desc))

	// Input untouched.
	assert.Equal(t, []float64{200, 50, 125}, amounts(rows))
}

func TestSortNullsAlwaysLast(t *testing.T) {
	rows := []row{
		{Name: "no-date"},
		{Name: "old", Last: strPtr("2024-01-10T00:00:00Z")},
		{Name: "new", Last: strPtr("2024-06-01T00:00:00Z")},
		{Name: "also-no-date"},
	}
	cmp := func(a, b row) int { return CompareDate(*a.Last, *b.Last) }
	isNull := func(r row) bool { return r.Last == nil }

	desc := Sort(rows, OrderDesc, cmp, isNull)
	assert.Equal(t, []string{"new", "old", "no-date", "also-no-date"}, names(desc))

	asc := Sort(rows, OrderAsc, cmp, isNull)
	assert.Equal(t, []string{"old", "new", "no-date", "also-no-date"}, names(asc))
}

func TestGroupByDayBucketsAndOrder(t *testing.T) {
	rows := []row{
		{Name: "a", Date: "2024-03-05T08:00:00Z"},
		{Name: "b", Date: "2024-03-05T21:30:00Z"},
		{Name: "c", Date: "2024-03-01T10:00:00Z"},
		{Name: "d", Date: "2024-04-12T10:00:00Z"},
	}

	groups := GroupByDay(rows, func(r row) string { return r.Date })
	require.Len(t, groups, 3)

	// Newest day first.
	assert.Equal(t, "2024-04-12", groups[0].Key)
	assert.Equal(t, "2024-03-05", groups[1].Key)
	assert.Equal(t, "2024-03-01", groups[2].Key)

	// Counts sum to the input length.
	total := 0
	for _, g := range groups {
		assert.Equal(t, len(g.Items), g.Count)
		total += g.Count
	}
	assert.Equal(t, len(rows), total)

	assert.Equal(t, 2, groups[1].Count)
	assert.Equal(t, "12-Apr-24", groups[0].Label)
}

func TestGroupByDayKeepsUnparseableDates(t *testing.T) {
	rows := []row{
		{Name: "good", Date: "2024-03-05T08:00:00Z"},
		{Name: "bad", Date: "not-a-date"},
	}

	groups := GroupByDay(rows, func(r row) string { return r.Date })
	require.Len(t, groups, 2)

	total := 0
	for _, g := range groups {
		total += g.Count
	}
	assert.Equal(t, 2, total)
}

func amounts(rows []row) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = r.Amount
	}
	return out
}

func names(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}
