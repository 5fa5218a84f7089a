package service

import (
	"context"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/kindy-portal/internal/models"
	appErrors "github.com/noah-isme/kindy-portal/pkg/errors"
)

type studentBackend interface {
	Profile(ctx context.Context) (models.Student, error)
	Stats(ctx context.Context) (models.StudentStats, error)
	SetFinancialInfo(ctx context.Context, req models.FinancialInfoRequest) error
	ChangeLanguage(ctx context.Context, req models.LanguageRequest) error
	ConfirmPayment(ctx context.Context, contentType string, body io.Reader) error
	FullDayDate(ctx context.Context) (models.FullDayInfo, error)
	ChangeFullDay(ctx context.Context, req models.FullDayRequest) error
	Savings(ctx context.Context) ([]models.Saving, error)
	Withdraw(ctx context.Context, req models.WithdrawRequest) error
	Invoices(ctx context.Context) ([]models.Invoice, error)
	Infaq(ctx context.Context) ([]models.Infaq, error)
	Payments(ctx context.Context) ([]models.Payment, error)
	Insurance(ctx context.Context) (models.InsuranceInfo, error)
}

type orgFinBackend interface {
	FinancialInfo(ctx context.Context) (models.OrgFinancialInfo, error)
}

// StudentOverview is the student landing view: profile, financial summary
// and the school's receiving account, fetched together.
type StudentOverview struct {
	Profile models.Student          `json:"profile"`
	Stats   models.StudentStats     `json:"stats"`
	Org     models.OrgFinancialInfo `json:"org"`
}

// FullDayView reports Full Day enrollment alongside the monthly change
// cutoff.
type FullDayView struct {
	Enrolled   bool `json:"enrolled"`
	ChangeDate int  `json:"change_date"`
}

// SavingsView pairs the savings ledger with the current balance so the
// withdraw form can cap its amount.
type SavingsView struct {
	Items   []models.Saving `json:"items"`
	Balance float64         `json:"balance"`
	Total   int             `json:"total"`
}

// StudentService serves the parent-facing portal.
type StudentService struct {
	backend  studentBackend
	org      orgFinBackend
	validate *validator.Validate
	logger   *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(backend studentBackend, org orgFinBackend, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{backend: backend, org: org, validate: validate, logger: logger}
}

// Overview fetches profile, stats and the org account in parallel. Any
// single failure fails the overview; a partial landing page would show
// wrong balances next to a right name.
func (s *StudentService) Overview(ctx context.Context) (*StudentOverview, error) {
	var overview StudentOverview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		overview.Profile, err = s.backend.Profile(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		overview.Stats, err = s.backend.Stats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		overview.Org, err = s.org.FinancialInfo(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &overview, nil
}

// Profile returns the student record.
func (s *StudentService) Profile(ctx context.Context) (models.Student, error) {
	return s.backend.Profile(ctx)
}

// UpdateFinancialInfo validates and stores the receiving bank account,
// then returns the refreshed profile.
func (s *StudentService) UpdateFinancialInfo(ctx context.Context, req models.FinancialInfoRequest) (models.Student, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Student{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "please fill in all required fields")
	}
	if err := s.backend.SetFinancialInfo(ctx, req); err != nil {
		return models.Student{}, err
	}
	return s.backend.Profile(ctx)
}

// ChangeLanguage switches the portal language and returns the refreshed
// profile.
func (s *StudentService) ChangeLanguage(ctx context.Context, req models.LanguageRequest) (models.Student, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Student{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "language must be EN or ID")
	}
	if err := s.backend.ChangeLanguage(ctx, req); err != nil {
		return models.Student{}, err
	}
	return s.backend.Profile(ctx)
}

// FullDay reports enrollment and the monthly change cutoff. Enrollment is
// detected from the recurring fee schedule; the backend has no dedicated
// flag.
func (s *StudentService) FullDay(ctx context.Context) (*FullDayView, error) {
	var (
		profile models.Student
		info    models.FullDayInfo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = s.backend.Profile(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		info, err = s.backend.FullDayDate(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &FullDayView{Enrolled: fullDayEnrolled(profile), ChangeDate: info.Date}, nil
}

// ToggleFullDay joins or leaves the Full Day program and returns the
// refreshed view.
func (s *StudentService) ToggleFullDay(ctx context.Context, join bool) (*FullDayView, error) {
	if err := s.backend.ChangeFullDay(ctx, models.FullDayRequest{IsJoin: join}); err != nil {
		return nil, err
	}
	return s.FullDay(ctx)
}

func fullDayEnrolled(st models.Student) bool {
	for _, fee := range st.RecurringFees {
		if strings.Contains(strings.ToLower(fee.Name), "full day") {
			return true
		}
	}
	return false
}

// Savings fetches the ledger and balance together.
func (s *StudentService) Savings(ctx context.Context) (*SavingsView, error) {
	var (
		items []models.Saving
		stats models.StudentStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.backend.Savings(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.backend.Stats(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &SavingsView{Items: items, Balance: stats.Saving, Total: len(items)}, nil
}

// Withdraw files a withdrawal request after checking it against the
// current balance, then returns the refreshed savings view. The request
// stays in REQUEST status until the backend confirms the transfer.
func (s *StudentService) Withdraw(ctx context.Context, req models.WithdrawRequest) (*SavingsView, error) {
	if req.Amount <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "withdrawal amount must be positive")
	}

	stats, err := s.backend.Stats(ctx)
	if err != nil {
		return nil, err
	}
	if req.Amount > stats.Saving {
		return nil, appErrors.Clone(appErrors.ErrValidation, "withdrawal exceeds savings balance")
	}

	if err := s.backend.Withdraw(ctx, req); err != nil {
		return nil, err
	}
	return s.Savings(ctx)
}

// Invoices returns the student's invoices.
func (s *StudentService) Invoices(ctx context.Context) ([]models.Invoice, error) {
	return s.backend.Invoices(ctx)
}

// Payments returns the student's payments.
func (s *StudentService) Payments(ctx context.Context) ([]models.Payment, error) {
	return s.backend.Payments(ctx)
}

// Infaq returns the student's infaq ledger.
func (s *StudentService) Infaq(ctx context.Context) ([]models.Infaq, error) {
	return s.backend.Infaq(ctx)
}

// Insurance returns the group insurance details.
func (s *StudentService) Insurance(ctx context.Context) (models.InsuranceInfo, error) {
	return s.backend.Insurance(ctx)
}

// ConfirmPayment streams a multipart payment confirmation through to the
// backend untouched; any receipt image stays inside the multipart body.
func (s *StudentService) ConfirmPayment(ctx context.Context, contentType string, body io.Reader) error {
	return s.backend.ConfirmPayment(ctx, contentType, body)
}
