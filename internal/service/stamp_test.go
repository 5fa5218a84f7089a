package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/kindy-portal/internal/models"
	"github.com/noah-isme/kindy-portal/internal/sentlog"
)

type stubStampBackend struct {
	tasks []models.WhatsAppTask
}

func (s *stubStampBackend) WhatsAppTasks(ctx context.Context) ([]models.WhatsAppTask, error) {
	return s.tasks, nil
}

func stampFixtures() []models.WhatsAppTask {
	return []models.WhatsAppTask{
		{ID: "t1", Name: "Budi", Phone: "+628111", Key: "stamp-1", WALink: "https://wa.me/628111?text=stamp-1", No: 1},
		{ID: "t2", Name: "Aisyah", Phone: "+628222", Key: "stamp-2", WALink: "https://wa.me/628222?text=stamp-2", No: 2},
		{ID: "t3", Name: "Citra", Phone: "+628333", Key: "stamp-3", WALink: "https://wa.me/628333?text=stamp-3", No: 3},
	}
}

func TestStampMarkSentHidesTask(t *testing.T) {
	svc := NewStampService(&stubStampBackend{tasks: stampFixtures()}, sentlog.NewMemoryStore(), nil)
	ctx := context.Background()

	link, err := svc.MarkSent(ctx, "t2")
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/628222?text=stamp-2", link)

	view, err := svc.List(ctx, "", false)
	require.NoError(t, err)
	require.Equal(t, 2, view.Total)
	for _, task := range view.Items {
		assert.NotEqual(t, "t2", task.ID)
	}
}

func TestStampShowSentIncludesMarkedTasks(t *testing.T) {
	svc := NewStampService(&stubStampBackend{tasks: stampFixtures()}, sentlog.NewMemoryStore(), nil)
	ctx := context.Background()

	_, err := svc.MarkSent(ctx, "t1")
	require.NoError(t, err)

	view, err := svc.List(ctx, "", true)
	require.NoError(t, err)
	require.Equal(t, 3, view.Total)

	var sentCount int
	for _, task := range view.Items {
		if task.Sent {
			sentCount++
			assert.Equal(t, "t1", task.ID)
		}
	}
	assert.Equal(t, 1, sentCount)
}

func TestStampSearchMatchesNamePhoneAndID(t *testing.T) {
	svc := NewStampService(&stubStampBackend{tasks: stampFixtures()}, sentlog.NewMemoryStore(), nil)
	ctx := context.Background()

	byName, err := svc.List(ctx, "aisy", false)
	require.NoError(t, err)
	assert.Equal(t, 1, byName.Total)

	byPhone, err := svc.List(ctx, "628333", false)
	require.NoError(t, err)
	assert.Equal(t, 1, byPhone.Total)

	byID, err := svc.List(ctx, "t1", false)
	require.NoError(t, err)
	assert.Equal(t, 1, byID.Total)
}

func TestStampMarkSentUnknownTask(t *testing.T) {
	svc := NewStampService(&stubStampBackend{tasks: stampFixtures()}, sentlog.NewMemoryStore(), nil)

	_, err := svc.MarkSent(context.Background(), "missing")
	require.Error(t, err)
}

func TestStampClearSentRestoresTasks(t *testing.T) {
	svc := NewStampService(&stubStampBackend{tasks: stampFixtures()}, sentlog.NewMemoryStore(), nil)
	ctx := context.Background()

	_, err := svc.MarkSent(ctx, "t1")
	require.NoError(t, err)
	require.NoError(t, svc.ClearSent(ctx))

	view, err := svc.List(ctx, "", false)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Total)
}
