package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/kindy-portal/internal/listview"
	"github.com/noah-isme/kindy-portal/internal/models"
)

type stubPaymentBackend struct {
	payments    []models.Payment
	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
	lastCreate  models.CreatePaymentRequest
	lastUpdate  models.UpdatePaymentRequest
	lastUpdated string
}

func (s *stubPaymentBackend) Payments(ctx context.Context) ([]models.Payment, error) {
	s.listCalls++
	return s.payments, nil
}

func (s *stubPaymentBackend) CreatePayment(ctx context.Context, req models.CreatePaymentRequest) error {
	s.createCalls++
	s.lastCreate = req
	s.payments = append(s.payments, models.Payment{
		ID:          "p-new",
		StudentName: "New Student",
		Amount:      req.Amount,
		Date:        req.Date,
		Reference:   req.Reference,
		No:          len(s.payments) + 1,
	})
	return nil
}

func (s *stubPaymentBackend) UpdatePayment(ctx context.Context, id string, req models.UpdatePaymentRequest) error {
	s.updateCalls++
	s.lastUpdated = id
	s.lastUpdate = req
	return nil
}

func (s *stubPaymentBackend) DeletePayment(ctx context.Context, id string) error {
	s.deleteCalls++
	kept := s.payments[:0]
	for _, p := range s.payments {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.payments = kept
	return nil
}

func (s *stubPaymentBackend) Students(ctx context.Context) ([]models.Student, error) {
	return nil, nil
}

func (s *stubPaymentBackend) StudentUnpaidInvoices(ctx context.Context, studentID string) ([]models.Invoice, error) {
	return nil, nil
}

func paymentFixtures() []models.Payment {
	return []models.Payment{
		{ID: "p1", StudentName: "Budi", Reference: "TRF-001", Amount: 150000, Date: "2024-03-05", CreatedAt: "2024-03-05T08:00:00Z", No: 1},
		{ID: "p2", StudentName: "Aisyah", Reference: "CASH-02", Amount: 50000, Date: "2024-03-05", CreatedAt: "2024-03-05T12:00:00Z", No: 2},
		{ID: "p3", StudentName: "Citra", Reference: "TRF-003", Amount: 275000, Date: "2024-04-01", CreatedAt: "2024-04-01T09:00:00Z", No: 3},
	}
}

func TestPaymentListSearchAndSort(t *testing.T) {
	backend := &stubPaymentBackend{payments: paymentFixtures()}
	svc := NewPaymentService(backend, time.Minute, nil, nil)

	view, err := svc.List(context.Background(), ListQuery{Search: "trf"})
	require.NoError(t, err)
	assert.Equal(t, 2, view.Total)

	view, err = svc.List(context.Background(), ListQuery{SortField: "amount", SortOrder: listview.OrderAsc})
	require.NoError(t, err)
	require.Len(t, view.Items, 3)
	assert.Equal(t, "p2", view.Items[0].ID)
	assert.Equal(t, "p3", view.Items[2].ID)
}

func TestPaymentListGroupByDay(t *testing.T) {
	backend := &stubPaymentBackend{payments: paymentFixtures()}
	svc := NewPaymentService(backend, time.Minute, nil, nil)

	view, err := svc.List(context.Background(), ListQuery{GroupBy: "createdAt"})
	require.NoError(t, err)
	require.Len(t, view.Groups, 2)
	assert.Equal(t, "2024-04-01", view.Groups[0].Key)
	assert.Equal(t, 2, view.Groups[1].Count)
}

func TestPaymentCreateFlowBlocksInvalidPayload(t *testing.T) {
	backend := &stubPaymentBackend{payments: paymentFixtures()}
	svc := NewPaymentService(backend, time.Minute, nil, nil)

	_, err := svc.BeginCreate(models.CreatePaymentRequest{StudentID: "s1"})
	require.Error(t, err)
	assert.Zero(t, backend.createCalls, "invalid payload must never reach the backend")
}

func TestPaymentCreateFlowRefetchesCollection(t *testing.T) {
	backend := &stubPaymentBackend{payments: paymentFixtures()}
	svc := NewPaymentService(backend, time.Minute, nil, nil)

	flow, err := svc.BeginCreate(models.CreatePaymentRequest{
		StudentID: "s1",
		Amount:    100000,
		Date:      "2024-05-01",
		Reference: "TRF-099",
	})
	require.NoError(t, err)
	assert.Zero(t, backend.createCalls, "nothing is submitted before confirmation")

	refreshed, err := svc.ConfirmCreate(context.Background(), flow.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, backend.createCalls)
	assert.Len(t, refreshed, 4)
}

func TestPaymentUpdateFlow(t *testing.T) {
	backend := &stubPaymentBackend{payments: paymentFixtures()}
	svc := NewPaymentService(backend, time.Minute, nil, nil)

	flow, err := svc.BeginUpdate(PaymentUpdate{
		ID: "p1",
		UpdatePaymentRequest: models.UpdatePaymentRequest{
			Amount:    175000,
			Date:      "2024-03-06",
			Reference: "TRF-001b",
		},
	})
	require.NoError(t, err)

	_, err = svc.ConfirmUpdate(context.Background(), flow.ID)
	require.NoError(t, err)
	assert.Equal(t, "p1", backend.lastUpdated)
	assert.Equal(t, 175000.0, backend.lastUpdate.Amount)
}

func TestPaymentDeleteRefetches(t *testing.T) {
	backend := &stubPaymentBackend{payments: paymentFixtures()}
	svc := NewPaymentService(backend, time.Minute, nil, nil)

	refreshed, err := svc.Delete(context.Background(), "p2")
	require.NoError(t, err)
	assert.Equal(t, 1, backend.deleteCalls)
	assert.Len(t, refreshed, 2)
}
