package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/kindy-portal/internal/formflow"
	"github.com/noah-isme/kindy-portal/internal/listview"
	"github.com/noah-isme/kindy-portal/internal/models"
)

type paymentBackend interface {
	Payments(ctx context.Context) ([]models.Payment, error)
	CreatePayment(ctx context.Context, req models.CreatePaymentRequest) error
	UpdatePayment(ctx context.Context, id string, req models.UpdatePaymentRequest) error
	DeletePayment(ctx context.Context, id string) error
	Students(ctx context.Context) ([]models.Student, error)
	StudentUnpaidInvoices(ctx context.Context, studentID string) ([]models.Invoice, error)
}

// PaymentUpdate is the edit-payment flow payload.
type PaymentUpdate struct {
	ID string `json:"id" validate:"required"`
	models.UpdatePaymentRequest
}

// PaymentService serves the admin payment section: the searchable,
// sortable, day-groupable payment list and its add/edit/delete flows.
// Every mutation re-fetches the full collection; the portal keeps no
// copy of the data between requests.
type PaymentService struct {
	backend     paymentBackend
	createFlows *formflow.Store[models.CreatePaymentRequest]
	updateFlows *formflow.Store[PaymentUpdate]
	logger      *zap.Logger
}

// NewPaymentService constructs the payment service.
func NewPaymentService(backend paymentBackend, flowTTL time.Duration, validate *validator.Validate, logger *zap.Logger) *PaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentService{
		backend:     backend,
		createFlows: formflow.NewStore[models.CreatePaymentRequest](flowTTL, validate),
		updateFlows: formflow.NewStore[PaymentUpdate](flowTTL, validate),
		logger:      logger,
	}
}

func paymentSearchFields(p models.Payment) []string {
	return []string{p.StudentName, p.Reference}
}

func paymentDateField(field string) func(models.Payment) string {
	switch field {
	case "updatedAt":
		return func(p models.Payment) string { return p.UpdatedAt }
	case "date":
		return func(p models.Payment) string { return p.Date }
	}
	return func(p models.Payment) string { return p.CreatedAt }
}

// List fetches all payments and derives the requested view.
func (s *PaymentService) List(ctx context.Context, q ListQuery) (*ListView[models.Payment], error) {
	payments, err := s.backend.Payments(ctx)
	if err != nil {
		return nil, err
	}
	return derivePaymentView(payments, q), nil
}

func derivePaymentView(payments []models.Payment, q ListQuery) *ListView[models.Payment] {
	filtered := listview.Filter(payments, q.Search, paymentSearchFields)
	sortState := q.Sort("createdAt")

	var cmp func(a, b models.Payment) int
	switch sortState.Field {
	case "name":
		cmp = func(a, b models.Payment) int { return listview.CompareString(a.StudentName, b.StudentName) }
	case "amount":
		cmp = func(a, b models.Payment) int { return listview.CompareFloat(a.Amount, b.Amount) }
	case "date":
		cmp = func(a, b models.Payment) int { return listview.CompareDate(a.Date, b.Date) }
	case "no":
		cmp = func(a, b models.Payment) int { return listview.CompareInt(a.No, b.No) }
	default:
		cmp = func(a, b models.Payment) int { return listview.CompareDate(a.CreatedAt, b.CreatedAt) }
	}
	sorted := listview.Sort(filtered, sortState.Order, cmp, nil)

	view := &ListView[models.Payment]{Items: sorted, Sort: sortState, Total: len(sorted)}
	if q.GroupBy != "" {
		view.Groups = listview.GroupByDay(sorted, paymentDateField(q.GroupBy))
	}
	return view
}

// Students lists students for the add-payment picker.
func (s *PaymentService) Students(ctx context.Context) ([]models.Student, error) {
	return s.backend.Students(ctx)
}

// UnpaidInvoices lists a student's unpaid invoices so a payment can be
// attached to one.
func (s *PaymentService) UnpaidInvoices(ctx context.Context, studentID string) ([]models.Invoice, error) {
	return s.backend.StudentUnpaidInvoices(ctx, studentID)
}

// BeginCreate validates an add-payment payload and opens a confirmation
// flow. Nothing reaches the backend until the flow is confirmed.
func (s *PaymentService) BeginCreate(req models.CreatePaymentRequest) (*formflow.Flow[models.CreatePaymentRequest], error) {
	return s.createFlows.Begin(req)
}

// ConfirmCreate submits a confirmed add-payment flow and returns the
// refreshed collection.
func (s *PaymentService) ConfirmCreate(ctx context.Context, flowID string) ([]models.Payment, error) {
	_, err := s.createFlows.Confirm(ctx, flowID, func(ctx context.Context, req models.CreatePaymentRequest) error {
		return s.backend.CreatePayment(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return s.backend.Payments(ctx)
}

// BeginUpdate validates an edit-payment payload and opens a confirmation
// flow.
func (s *PaymentService) BeginUpdate(req PaymentUpdate) (*formflow.Flow[PaymentUpdate], error) {
	return s.updateFlows.Begin(req)
}

// ConfirmUpdate submits a confirmed edit-payment flow and returns the
// refreshed collection.
func (s *PaymentService) ConfirmUpdate(ctx context.Context, flowID string) ([]models.Payment, error) {
	_, err := s.updateFlows.Confirm(ctx, flowID, func(ctx context.Context, req PaymentUpdate) error {
		return s.backend.UpdatePayment(ctx, req.ID, req.UpdatePaymentRequest)
	})
	if err != nil {
		return nil, err
	}
	return s.backend.Payments(ctx)
}

// CancelFlow abandons a pending add or edit flow.
func (s *PaymentService) CancelFlow(flowID string) {
	s.createFlows.Cancel(flowID)
	s.updateFlows.Cancel(flowID)
}

// Delete removes a payment and returns the refreshed collection.
func (s *PaymentService) Delete(ctx context.Context, id string) ([]models.Payment, error) {
	if err := s.backend.DeletePayment(ctx, id); err != nil {
		return nil, err
	}
	return s.backend.Payments(ctx)
}
