package upstream

import (
	"context"
	"net/http"

	"github.com/noah-isme/kindy-portal/internal/models"
)

// Admin-side endpoint paths. The navigation prober reuses these, so keep
// them in one place.
const (
	PathAdminLogin       = "/kindy/admin/login"
	PathAdminStudents    = "/kindy/admin/student"
	PathAdminSavings     = "/kindy/admin/student/saving"
	PathAdminInfaq       = "/kindy/admin/student/infaq"
	PathAdminOutstanding = "/kindy/admin/student/outstanding"
	PathAdminWhatsApp    = "/kindy/admin/wa"
	PathAdminInvoices    = "/kindy/admin/invoice"
	PathAdminPayments    = "/kindy/admin/payment"
	PathAdminSetor       = "/kindy/admin/setor"
	PathAdminSetorDelta  = "/kindy/admin/setor/delta"
)

// AdminClient wraps the admin resource endpoints.
type AdminClient struct {
	c *Client
}

// NewAdminClient constructs an AdminClient.
func NewAdminClient(c *Client) *AdminClient {
	return &AdminClient{c: c}
}

// Login exchanges the admin key for a session cookie. The cookie arrives
// on the Result for relay to the browser; the portal itself stores nothing.
func (a *AdminClient) Login(ctx context.Context, key string) (*Result, error) {
	return a.c.Do(ctx, http.MethodPost, PathAdminLogin, map[string]string{"key": key})
}

// Students returns all students.
func (a *AdminClient) Students(ctx context.Context) ([]models.Student, error) {
	res, err := a.c.Do(ctx, http.MethodGet, PathAdminStudents, nil)
	if err != nil {
		return nil, err
	}
	return Data[[]models.Student](res)
}

// SavingSummaries returns per-student savings aggregates.
func (a *AdminClient) SavingSummaries(ctx context.Context) ([]models.StudentSavingSummary, error) {
	res, err := a.c.Do(ctx, http.MethodGet, PathAdminSavings, nil)
	if err != nil {
		return nil, err
	}
	return Data[[]models.StudentSavingSummary](res)
}

// InfaqSummaries returns per-student infaq aggregates.
func (a *AdminClient) InfaqSummaries(ctx context.Context) ([]models.StudentInfaqSummary, error) {
	res, err := a.c.Do(ctx, http.MethodGet, PathAdminInfaq, nil)
	if err != nil {
		return nil, err
	}
	return Data[[]models.StudentInfaqSummary](res)
}

// Outstanding returns per-student outstanding balances.
func (a *AdminClient) Outstanding(ctx context.Context) ([]models.StudentOutstanding, error) {
	res, err := a.c.Do(ctx, http.MethodGet, PathAdminOutstanding, nil)
	if err != nil {
		return nil, err
	}
	return Data[[]models.StudentOutstanding](res)
}

// WhatsAppTasks returns the credential-dispatch task list.
func (a *AdminClient) WhatsAppTasks(ctx context.Context) ([]models.WhatsAppTask, error) {
	res, err := a.c.Do(ctx, http.MethodGet, PathAdminWhatsApp, nil)
	if err != nil {
		return nil, err
	}
	return Data[[]models.WhatsAppTask](res)
}

// Invoices returns every invoice.
func (a *AdminClient) Invoices(ctx context.Context) ([]models.Invoice, error) {
	res, err := a.c.Do(ctx, http.MethodGet, PathAdminInvoices, nil)
	if err != nil {
		return nil, err
	}
	return Data[[]models.Invoice](res)
}

// CreateInvoice adds an invoice.
func (a *AdminClient) CreateInvoice(ctx context.Context, req models.CreateInvoiceRequest) error {
	_, err := a.c.Do(ctx, http.MethodPost, PathAdminInvoices, req)
	return err
}

// UpdateInvoice edits an invoice.
func (a *AdminClient) UpdateInvoice(ctx context.Context, id string, req models.UpdateInvoiceRequest) error {
	_, err := a.c.Do(ctx, http.MethodPut, PathAdminInvoices+"/"+id, req)
	return err
}

// DeleteInvoice removes an invoice.
func (a *AdminClient) DeleteInvoice(ctx context.Context, id string) error {
	_, err := a.c.Do(ctx, http.MethodDelete, PathAdminInvoices+"/"+id, nil)
	return err
}

// StudentUnpaidInvoices returns a student's unpaid invoices for the
// payment attachment picker.
func (a *AdminClient) StudentUnpaidInvoices(ctx context.Context, studentID string) ([]models.Invoice, error) {
	res, err := a.c.Do(ctx, http.MethodGet, PathAdminInvoices+"/student/"+studentID, nil)
	if err != nil {
		return nil, err
	}
	return Data[[]models.Invoice](res)
}

// Payments returns every payment.
func (a *AdminClient) Payments(ctx context.Context) ([]models.Payment, error) {
	res, err := a.c.Do(ctx, http.MethodGet, PathAdminPayments, nil)
	if err != nil {
		return nil, err
	}
	return Data[[]models.Payment](res)
}

// CreatePayment records a payment.
func (a *AdminClient) CreatePayment(ctx context.Context, req models.CreatePaymentRequest) error {
	_, err := a.c.Do(ctx, http.MethodPost, PathAdminPayments, req)
	return err
}

// UpdatePayment edits a payment.
func (a *AdminClient) UpdatePayment(ctx context.Context, id string, req models.UpdatePaymentRequest) error {
	_, err := a.c.Do(ctx, http.MethodPut, PathAdminPayments+"/"+id, req)
	return err
}

// DeletePayment removes a payment.
func (a *AdminClient) DeletePayment(ctx context.Context, id string) error {
	_, err := a.c.Do(ctx, http.MethodDelete, PathAdminPayments+"/"+id, nil)
	return err
}

// Setor returns all operator deposit records.
func (a *AdminClient) Setor(ctx context.Context) ([]models.Setor, error) {
	res, err := a.c.Do(ctx, http.MethodGet, PathAdminSetor, nil)
	if err != nil {
		return nil, err
	}
	return Data[[]models.Setor](res)
}

// SetorDelta returns the collected-versus-deposited reconciliation.
func (a *AdminClient) SetorDelta(ctx context.Context) (models.SetorDelta, error) {
	res, err := a.c.Do(ctx, http.MethodGet, PathAdminSetorDelta, nil)
	if err != nil {
		return models.SetorDelta{}, err
	}
	return Data[models.SetorDelta](res)
}

// CreateSetor records a deposit.
func (a *AdminClient) CreateSetor(ctx context.Context, req models.CreateSetorRequest) error {
	_, err := a.c.Do(ctx, http.MethodPost, PathAdminSetor, req)
	return err
}
