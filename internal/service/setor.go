package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/kindy-portal/internal/formflow"
	"github.com/noah-isme/kindy-portal/internal/listview"
	"github.com/noah-isme/kindy-portal/internal/models"
)

type setorBackend interface {
	Setor(ctx context.Context) ([]models.Setor, error)
	SetorDelta(ctx context.Context) (models.SetorDelta, error)
	CreateSetor(ctx context.Context, req models.CreateSetorRequest) error
}

// SetorView combines the deposit history with the reconciliation delta:
// how much collected cash has not been deposited yet.
type SetorView struct {
	Items  []models.Setor                 `json:"items"`
	Groups []listview.Group[models.Setor] `json:"groups,omitempty"`
	Delta  models.SetorDelta              `json:"delta"`
	Total  int                            `json:"total"`
}

// SetorService serves the operator deposit-control section.
type SetorService struct {
	backend setorBackend
	flows   *formflow.Store[models.CreateSetorRequest]
	logger  *zap.Logger
}

// NewSetorService constructs the setor service.
func NewSetorService(backend setorBackend, flowTTL time.Duration, validate *validator.Validate, logger *zap.Logger) *SetorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SetorService{
		backend: backend,
		flows:   formflow.NewStore[models.CreateSetorRequest](flowTTL, validate),
		logger:  logger,
	}
}

// View fetches the deposit list and the delta in parallel; if either
// fails the whole view fails.
func (s *SetorService) View(ctx context.Context, groupByDay bool) (*SetorView, error) {
	var (
		items []models.Setor
		delta models.SetorDelta
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.backend.Setor(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		delta, err = s.backend.SetorDelta(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	view := &SetorView{Items: items, Delta: delta, Total: len(items)}
	if groupByDay {
		view.Groups = listview.GroupByDay(items, func(st models.Setor) string { return st.CreatedAt })
	}
	return view, nil
}

// BeginCreate validates a deposit payload and opens a confirmation flow.
// Amount must be positive and the type one of bank or amil.
func (s *SetorService) BeginCreate(req models.CreateSetorRequest) (*formflow.Flow[models.CreateSetorRequest], error) {
	return s.flows.Begin(req)
}

// ConfirmCreate submits a confirmed deposit and returns the refreshed view.
func (s *SetorService) ConfirmCreate(ctx context.Context, flowID string) (*SetorView, error) {
	_, err := s.flows.Confirm(ctx, flowID, func(ctx context.Context, req models.CreateSetorRequest) error {
		return s.backend.CreateSetor(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return s.View(ctx, false)
}

// CancelFlow abandons a pending deposit flow.
func (s *SetorService) CancelFlow(flowID string) {
	s.flows.Cancel(flowID)
}
