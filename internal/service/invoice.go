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

type invoiceBackend interface {
	Invoices(ctx context.Context) ([]models.Invoice, error)
	CreateInvoice(ctx context.Context, req models.CreateInvoiceRequest) error
	UpdateInvoice(ctx context.Context, id string, req models.UpdateInvoiceRequest) error
	DeleteInvoice(ctx context.Context, id string) error
	Students(ctx context.Context) ([]models.Student, error)
}

// InvoiceUpdate is the edit-invoice flow payload.
type InvoiceUpdate struct {
	ID string `json:"id" validate:"required"`
	models.UpdateInvoiceRequest
}

// InvoiceService serves the admin invoice section. Amounts, discounts,
// paid and outstanding figures are backend-computed and displayed
// verbatim; this service never recomputes them.
type InvoiceService struct {
	backend     invoiceBackend
	createFlows *formflow.Store[models.CreateInvoiceRequest]
	updateFlows *formflow.Store[InvoiceUpdate]
	logger      *zap.Logger
}

// NewInvoiceService constructs the invoice service.
func NewInvoiceService(backend invoiceBackend, flowTTL time.Duration, validate *validator.Validate, logger *zap.Logger) *InvoiceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceService{
		backend:     backend,
		createFlows: formflow.NewStore[models.CreateInvoiceRequest](flowTTL, validate),
		updateFlows: formflow.NewStore[InvoiceUpdate](flowTTL, validate),
		logger:      logger,
	}
}

func invoiceSearchFields(inv models.Invoice) []string {
	return []string{inv.StudentName, inv.Name}
}

func invoiceDateField(field string) func(models.Invoice) string {
	switch field {
	case "updatedAt":
		return func(inv models.Invoice) string { return inv.UpdatedAt }
	case "dueDate":
		return func(inv models.Invoice) string { return inv.DueDate }
	}
	return func(inv models.Invoice) string { return inv.CreatedAt }
}

// List fetches all invoices and derives the requested view.
func (s *InvoiceService) List(ctx context.Context, q ListQuery) (*ListView[models.Invoice], error) {
	invoices, err := s.backend.Invoices(ctx)
	if err != nil {
		return nil, err
	}

	filtered := listview.Filter(invoices, q.Search, invoiceSearchFields)
	sortState := q.Sort("createdAt")

	var cmp func(a, b models.Invoice) int
	switch sortState.Field {
	case "name":
		cmp = func(a, b models.Invoice) int { return listview.CompareString(a.StudentName, b.StudentName) }
	case "amount":
		cmp = func(a, b models.Invoice) int { return listview.CompareFloat(a.Amount, b.Amount) }
	case "outstanding":
		cmp = func(a, b models.Invoice) int { return listview.CompareFloat(a.Outstanding, b.Outstanding) }
	case "dueDate":
		cmp = func(a, b models.Invoice) int { return listview.CompareDate(a.DueDate, b.DueDate) }
	case "no":
		cmp = func(a, b models.Invoice) int { return listview.CompareInt(a.No, b.No) }
	default:
		cmp = func(a, b models.Invoice) int { return listview.CompareDate(a.CreatedAt, b.CreatedAt) }
	}
	sorted := listview.Sort(filtered, sortState.Order, cmp, nil)

	view := &ListView[models.Invoice]{Items: sorted, Sort: sortState, Total: len(sorted)}
	if q.GroupBy != "" {
		view.Groups = listview.GroupByDay(sorted, invoiceDateField(q.GroupBy))
	}
	return view, nil
}

// Students lists students for the add-invoice picker.
func (s *InvoiceService) Students(ctx context.Context) ([]models.Student, error) {
	return s.backend.Students(ctx)
}

// BeginCreate validates an add-invoice payload and opens a confirmation flow.
func (s *InvoiceService) BeginCreate(req models.CreateInvoiceRequest) (*formflow.Flow[models.CreateInvoiceRequest], error) {
	return s.createFlows.Begin(req)
}

// ConfirmCreate submits a confirmed add-invoice flow and returns the
// refreshed collection.
func (s *InvoiceService) ConfirmCreate(ctx context.Context, flowID string) ([]models.Invoice, error) {
	_, err := s.createFlows.Confirm(ctx, flowID, func(ctx context.Context, req models.CreateInvoiceRequest) error {
		return s.backend.CreateInvoice(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return s.backend.Invoices(ctx)
}

// BeginUpdate validates an edit-invoice payload and opens a confirmation
// flow. The payload carries the due date as end_date, which is what the
// backend expects on update.
func (s *InvoiceService) BeginUpdate(req InvoiceUpdate) (*formflow.Flow[InvoiceUpdate], error) {
	return s.updateFlows.Begin(req)
}

// ConfirmUpdate submits a confirmed edit-invoice flow and returns the
// refreshed collection.
func (s *InvoiceService) ConfirmUpdate(ctx context.Context, flowID string) ([]models.Invoice, error) {
	_, err := s.updateFlows.Confirm(ctx, flowID, func(ctx context.Context, req InvoiceUpdate) error {
		return s.backend.UpdateInvoice(ctx, req.ID, req.UpdateInvoiceRequest)
	})
	if err != nil {
		return nil, err
	}
	return s.backend.Invoices(ctx)
}

// CancelFlow abandons a pending add or edit flow.
func (s *InvoiceService) CancelFlow(flowID string) {
	s.createFlows.Cancel(flowID)
	s.updateFlows.Cancel(flowID)
}

// Delete removes an invoice and returns the refreshed collection.
func (s *InvoiceService) Delete(ctx context.Context, id string) ([]models.Invoice, error) {
	if err := s.backend.DeleteInvoice(ctx, id); err != nil {
		return nil, err
	}
	return s.backend.Invoices(ctx)
}
