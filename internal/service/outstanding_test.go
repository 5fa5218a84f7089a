package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/kindy-portal/internal/listview"
	"github.com/noah-isme/kindy-portal/internal/models"
)

type stubOutstandingBackend struct {
	rows []models.StudentOutstanding
}

func (s *stubOutstandingBackend) Outstanding(ctx context.Context) ([]models.StudentOutstanding, error) {
	return s.rows, nil
}

func outstandingFixtures() []models.StudentOutstanding {
	return []models.StudentOutstanding{
		{ID: "s1", Name: "Budi", TotalInvoice: 500000, TotalPayment: 300000, Outstanding: 200000, No: 1},
		{ID: "s2", Name: "Aisyah", TotalInvoice: 400000, TotalPayment: 400000, Outstanding: 0, No: 2},
		{ID: "s3", Name: "Citra", TotalInvoice: 300000, TotalPayment: 350000, Outstanding: -50000, No: 3},
		{ID: "s4", Name: "Dewi", TotalInvoice: 600000, TotalPayment: 100000, Outstanding: 500000, No: 4},
	}
}

func TestOutstandingFilters(t *testing.T) {
	svc := NewOutstandingService(&stubOutstandingBackend{rows: outstandingFixtures()}, nil)

	all, err := svc.List(context.Background(), ListQuery{}, OutstandingFilterAll)
	require.NoError(t, err)
	assert.Equal(t, 4, all.Total)

	owing, err := svc.List(context.Background(), ListQuery{}, OutstandingFilterOutstanding)
	require.NoError(t, err)
	assert.Equal(t, 2, owing.Total)
	for _, r := range owing.Items {
		assert.Greater(t, r.Outstanding, 0.0)
	}

	overpaid, err := svc.List(context.Background(), ListQuery{}, OutstandingFilterOverpaid)
	require.NoError(t, err)
	require.Equal(t, 1, overpaid.Total)
	assert.Equal(t, "Citra", overpaid.Items[0].Name)
}

func TestOutstandingStatsComputedBeforeFilter(t *testing.T) {
	svc := NewOutstandingService(&stubOutstandingBackend{rows: outstandingFixtures()}, nil)

	view, err := svc.List(context.Background(), ListQuery{}, OutstandingFilterOverpaid)
	require.NoError(t, err)

	assert.Equal(t, 700000.0, view.Stats.TotalOutstanding)
	assert.Equal(t, 50000.0, view.Stats.TotalOverpaid)
	assert.Equal(t, 2, view.Stats.OutstandingCount)
	assert.Equal(t, 1, view.Stats.OverpaidCount)
	assert.Equal(t, 1800000.0, view.Stats.TotalInvoice)
	assert.Equal(t, 1150000.0, view.Stats.TotalPayment)
}

func TestOutstandingSortAndSearch(t *testing.T) {
	svc := NewOutstandingService(&stubOutstandingBackend{rows: outstandingFixtures()}, nil)

	view, err := svc.List(context.Background(), ListQuery{SortField: "outstanding", SortOrder: listview.OrderDesc}, OutstandingFilterAll)
	require.NoError(t, err)
	require.Len(t, view.Items, 4)
	assert.Equal(t, "Dewi", view.Items[0].Name)
	assert.Equal(t, "Citra", view.Items[3].Name)

	byName, err := svc.List(context.Background(), ListQuery{Search: "bud"}, OutstandingFilterAll)
	require.NoError(t, err)
	require.Equal(t, 1, byName.Total)
	assert.Equal(t, "Budi", byName.Items[0].Name)
}
