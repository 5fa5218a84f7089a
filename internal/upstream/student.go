package upstream

import (
	"context"
	"io"
	"net/http"

	"github.com/noah-isme/kindy-portal/internal/models"
)

// Student-side endpoint paths.
const (
	PathStudentStamp       = "/kindy/student/stamp"
	PathStudentProfile     = "/kindy/student/me"
	PathStudentStats       = "/kindy/student/me/stat"
	PathStudentFin         = "/kindy/student/me/fin"
	PathStudentLang        = "/kindy/student/me/lang"
	PathStudentConfirm     = "/kindy/student/me/confirm"
	PathStudentFullDay     = "/kindy/student/fd"
	PathStudentFullDayDate = "/kindy/student/fd/date"
	PathStudentSavings     = "/kindy/student/saving"
	PathStudentWithdraw    = "/kindy/student/saving/withdraw"
	PathStudentInvoices    = "/kindy/student/invoice"
	PathStudentInfaq       = "/kindy/student/infaq"
	PathStudentPayments    = "/kindy/student/payment"
	PathInsurance          = "/kindy/insurance"
)

// StudentClient wraps the student-facing endpoints.
type StudentClient struct {
	c *Client
}

// NewStudentClient constructs a StudentClient.
func NewStudentClient(c *Client) *StudentClient {
	return &StudentClient{c: c}
}

// StampLogin exchanges a one-time stamp token for a session cookie.
func (s *StudentClient) StampLogin(ctx context.Context, key string) (*Result, error) {
	return s.c.Do(ctx, http.MethodPost, PathStudentStamp, map[string]string{"key": key})
}

// Profile returns the logged-in student's record.
func (s *StudentClient) Profile(ctx context.Context) (models.Student, error) {
	res, err := s.c.Do(ctx, http.MethodGet, PathStudentProfile, nil)
	if err != nil {
		return models.Student{}, err
	}
	return Data[models.Student](res)
}

// Stats returns the student's financial summary.
func (s *StudentClient) Stats(ctx context.Context) (models.StudentStats, error) {
	res, err := s.c.Do(ctx, http.MethodGet, PathStudentStats, nil)
	if err != nil {
		return models.StudentStats{}, err
	}
	return Data[models.StudentStats](res)
}

// SetFinancialInfo updates the student's receiving bank account.
func (s *StudentClient) SetFinancialInfo(ctx context.Context, req models.FinancialInfoRequest) error {
	_, err := s.c.Do(ctx, http.MethodPatch, PathStudentFin, req)
	return err
}

// ChangeLanguage switches the portal language.
func (s *StudentClient) ChangeLanguage(ctx context.Context, req models.LanguageRequest) error {
	_, err := s.c.Do(ctx, http.MethodPatch, PathStudentLang, req)
	return err
}

// ConfirmPayment forwards a multipart payment confirmation, optionally
// carrying a receipt image.
func (s *StudentClient) ConfirmPayment(ctx context.Context, contentType string, body io.Reader) error {
	_, err := s.c.DoMultipart(ctx, PathStudentConfirm, contentType, body)
	return err
}

// FullDayDate returns the monthly cutoff for Full Day changes.
func (s *StudentClient) FullDayDate(ctx context.Context) (models.FullDayInfo, error) {
	res, err := s.c.Do(ctx, http.MethodGet, PathStudentFullDayDate, nil)
	if err != nil {
		return models.FullDayInfo{}, err
	}
	return Data[models.FullDayInfo](res)
}

// ChangeFullDay joins or leaves the Full Day program.
func (s *StudentClient) ChangeFullDay(ctx context.Context, req models.FullDayRequest) error {
	_, err := s.c.Do(ctx, http.MethodPatch, PathStudentFullDay, req)
	return err
}

// Savings returns the student's savings ledger.
func (s *StudentClient) Savings(ctx context.Context) ([]models.Saving, error) {
	res, err := s.c.Do(ctx, http.MethodGet, PathStudentSavings, nil)
	if err != nil {
		return nil, err
	}
	return Data[[]models.Saving](res)
}

// Withdraw files a withdrawal request.
func (s *StudentClient) Withdraw(ctx context.Context, req models.WithdrawRequest) error {
	_, err := s.c.Do(ctx, http.MethodPost, PathStudentWithdraw, req)
	return err
}

// Invoices returns the student's invoices.
func (s *StudentClient) Invoices(ctx context.Context) ([]models.Invoice, error) {
	res, err := s.c.Do(ctx, http.MethodGet, PathStudentInvoices, nil)
	if err != nil {
		return nil, err
	}
	return Data[[]models.Invoice](res)
}

// Infaq returns the student's infaq ledger.
func (s *StudentClient) Infaq(ctx context.Context) ([]models.Infaq, error) {
	res, err := s.c.Do(ctx, http.MethodGet, PathStudentInfaq, nil)
	if err != nil {
		return nil, err
	}
	return Data[[]models.Infaq](res)
}

// Payments returns the student's payments.
func (s *StudentClient) Payments(ctx context.Context) ([]models.Payment, error) {
	res, err := s.c.Do(ctx, http.MethodGet, PathStudentPayments, nil)
	if err != nil {
		return nil, err
	}
	return Data[[]models.Payment](res)
}

// Insurance returns the group insurance policy details.
func (s *StudentClient) Insurance(ctx context.Context) (models.InsuranceInfo, error) {
	res, err := s.c.Do(ctx, http.MethodGet, PathInsurance, nil)
	if err != nil {
		return models.InsuranceInfo{}, err
	}
	return Data[models.InsuranceInfo](res)
}
