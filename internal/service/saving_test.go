package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/kindy-portal/internal/listview"
	"github.com/noah-isme/kindy-portal/internal/models"
)

type stubSavingBackend struct {
	rows []models.StudentSavingSummary
}

func (s *stubSavingBackend) SavingSummaries(ctx context.Context) ([]models.StudentSavingSummary, error) {
	return s.rows, nil
}

func savingFixtures() []models.StudentSavingSummary {
	old := "2024-01-10T00:00:00Z"
	recent := "2024-06-01T00:00:00Z"
	return []models.StudentSavingSummary{
		{ID: "s1", Name: "Budi", TotalSaving: 150000, LastTransaction: &old, No: 1},
		{ID: "s2", Name: "Aisyah", TotalSaving: 0, LastTransaction: nil, No: 2},
		{ID: "s3", Name: "Citra", TotalSaving: 75000, LastTransaction: &recent, No: 3},
	}
}

func TestSavingDefaultListKeepsEveryone(t *testing.T) {
	svc := NewSavingService(&stubSavingBackend{rows: savingFixtures()}, nil)

	view, err := svc.List(context.Background(), ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 3, view.Total)
}

func TestSavingAmountSortDropsZeroBalances(t *testing.T) {
	svc := NewSavingService(&stubSavingBackend{rows: savingFixtures()}, nil)

	view, err := svc.List(context.Background(), ListQuery{SortField: "totalSaving", SortOrder: listview.OrderDesc})
	require.NoError(t, err)
	require.Equal(t, 2, view.Total)
	assert.Equal(t, "Budi", view.Items[0].Name)
	assert.Equal(t, "Citra", view.Items[1].Name)
}

func TestSavingLastTransactionSortPutsNullsLast(t *testing.T) {
	rows := savingFixtures()
	rows[1].TotalSaving = 20000 // non-zero but never transacted
	svc := NewSavingService(&stubSavingBackend{rows: rows}, nil)

	view, err := svc.List(context.Background(), ListQuery{SortField: "lastTransaction", SortOrder: listview.OrderDesc})
	require.NoError(t, err)
	require.Equal(t, 3, view.Total)
	assert.Equal(t, "Citra", view.Items[0].Name)
	assert.Equal(t, "Budi", view.Items[1].Name)
	assert.Equal(t, "Aisyah", view.Items[2].Name)

	asc, err := svc.List(context.Background(), ListQuery{SortField: "lastTransaction", SortOrder: listview.OrderAsc})
	require.NoError(t, err)
	assert.Equal(t, "Aisyah", asc.Items[2].Name, "null last transaction sorts last in both directions")
}
