package service

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/kindy-portal/internal/models"
	appErrors "github.com/noah-isme/kindy-portal/pkg/errors"
)

type stubStudentBackend struct {
	profile       models.Student
	stats         models.StudentStats
	savings       []models.Saving
	fullDayInfo   models.FullDayInfo
	profileErr    error
	statsErr      error
	withdrawCalls int
	fullDayCalls  int
	lastFullDay   models.FullDayRequest
	finCalls      int
	langCalls     int
}

func (s *stubStudentBackend) Profile(ctx context.Context) (models.Student, error) {
	return s.profile, s.profileErr
}

func (s *stubStudentBackend) Stats(ctx context.Context) (models.StudentStats, error) {
	return s.stats, s.statsErr
}

func (s *stubStudentBackend) SetFinancialInfo(ctx context.Context, req models.FinancialInfoRequest) error {
	s.finCalls++
	return nil
}

func (s *stubStudentBackend) ChangeLanguage(ctx context.Context, req models.LanguageRequest) error {
	s.langCalls++
	s.profile.Lang = req.Lang
	return nil
}

func (s *stubStudentBackend) ConfirmPayment(ctx context.Context, contentType string, body io.Reader) error {
	return nil
}

func (s *stubStudentBackend) FullDayDate(ctx context.Context) (models.FullDayInfo, error) {
	return s.fullDayInfo, nil
}

func (s *stubStudentBackend) ChangeFullDay(ctx context.Context, req models.FullDayRequest) error {
	s.fullDayCalls++
	s.lastFullDay = req
	if req.IsJoin {
		s.profile.RecurringFees = append(s.profile.RecurringFees, models.RecurringFee{Name: "Full Day Program", Amount: 300000})
	} else {
		s.profile.RecurringFees = nil
	}
	return nil
}

func (s *stubStudentBackend) Savings(ctx context.Context) ([]models.Saving, error) {
	return s.savings, nil
}

func (s *stubStudentBackend) Withdraw(ctx context.Context, req models.WithdrawRequest) error {
	s.withdrawCalls++
	return nil
}

func (s *stubStudentBackend) Invoices(ctx context.Context) ([]models.Invoice, error) { return nil, nil }
func (s *stubStudentBackend) Infaq(ctx context.Context) ([]models.Infaq, error)      { return nil, nil }
func (s *stubStudentBackend) Payments(ctx context.Context) ([]models.Payment, error) {
	return nil, nil
}

func (s *stubStudentBackend) Insurance(ctx context.Context) (models.InsuranceInfo, error) {
	return models.InsuranceInfo{}, nil
}

type stubOrgFin struct {
	info models.OrgFinancialInfo
	err  error
}

func (s *stubOrgFin) FinancialInfo(ctx context.Context) (models.OrgFinancialInfo, error) {
	return s.info, s.err
}

func TestOverviewCombinesAllThreeFetches(t *testing.T) {
	backend := &stubStudentBackend{
		profile: models.Student{ID: "s1", Name: "Budi"},
		stats:   models.StudentStats{Saving: 150000, Outstanding: 50000},
	}
	org := &stubOrgFin{info: models.OrgFinancialInfo{Ent: "BSI", Num: "1234567890"}}
	svc := NewStudentService(backend, org, nil, nil)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Budi", overview.Profile.Name)
	assert.Equal(t, 150000.0, overview.Stats.Saving)
	assert.Equal(t, "BSI", overview.Org.Ent)
}

func TestOverviewFailsWhenAnyFetchFails(t *testing.T) {
	backend := &stubStudentBackend{statsErr: appErrors.ServerError(500)}
	svc := NewStudentService(backend, &stubOrgFin{}, nil, nil)

	_, err := svc.Overview(context.Background())
	require.Error(t, err)
}

func TestWithdrawGuards(t *testing.T) {
	backend := &stubStudentBackend{stats: models.StudentStats{Saving: 100000}}
	svc := NewStudentService(backend, &stubOrgFin{}, nil, nil)
	ctx := context.Background()

	_, err := svc.Withdraw(ctx, models.WithdrawRequest{Amount: 0})
	require.Error(t, err)

	_, err = svc.Withdraw(ctx, models.WithdrawRequest{Amount: -500})
	require.Error(t, err)

	_, err = svc.Withdraw(ctx, models.WithdrawRequest{Amount: 100001})
	require.Error(t, err)
	assert.Contains(t, appErrors.FromError(err).Message, "exceeds savings balance")

	assert.Zero(t, backend.withdrawCalls, "guarded requests must never reach the backend")

	_, err = svc.Withdraw(ctx, models.WithdrawRequest{Amount: 100000})
	require.NoError(t, err)
	assert.Equal(t, 1, backend.withdrawCalls)
}

func TestFullDayDetectionFromRecurringFees(t *testing.T) {
	backend := &stubStudentBackend{
		profile: models.Student{
			RecurringFees: []models.RecurringFee{
				{Name: "Monthly Tuition", Amount: 500000},
				{Name: "FULL DAY program", Amount: 300000},
			},
		},
		fullDayInfo: models.FullDayInfo{Date: 25},
	}
	svc := NewStudentService(backend, &stubOrgFin{}, nil, nil)

	view, err := svc.FullDay(context.Background())
	require.NoError(t, err)
	assert.True(t, view.Enrolled)
	assert.Equal(t, 25, view.ChangeDate)
}

func TestToggleFullDayRefetchesProfile(t *testing.T) {
	backend := &stubStudentBackend{fullDayInfo: models.FullDayInfo{Date: 25}}
	svc := NewStudentService(backend, &stubOrgFin{}, nil, nil)

	view, err := svc.ToggleFullDay(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 1, backend.fullDayCalls)
	assert.True(t, backend.lastFullDay.IsJoin)
	assert.True(t, view.Enrolled)

	view, err = svc.ToggleFullDay(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, view.Enrolled)
}

func TestUpdateFinancialInfoValidation(t *testing.T) {
	backend := &stubStudentBackend{}
	svc := NewStudentService(backend, &stubOrgFin{}, nil, nil)

	_, err := svc.UpdateFinancialInfo(context.Background(), models.FinancialInfoRequest{Ent: "BSI"})
	require.Error(t, err)
	assert.Zero(t, backend.finCalls)

	_, err = svc.UpdateFinancialInfo(context.Background(), models.FinancialInfoRequest{
		Ent: "BSI", Num: "1234567890", Name: "Budi Santoso",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, backend.finCalls)
}

func TestChangeLanguageValidation(t *testing.T) {
	backend := &stubStudentBackend{profile: models.Student{Lang: "ID"}}
	svc := NewStudentService(backend, &stubOrgFin{}, nil, nil)

	_, err := svc.ChangeLanguage(context.Background(), models.LanguageRequest{Lang: "FR"})
	require.Error(t, err)

	profile, err := svc.ChangeLanguage(context.Background(), models.LanguageRequest{Lang: "EN"})
	require.NoError(t, err)
	assert.Equal(t, "EN", profile.Lang)
}
