package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/kindy-portal/internal/listview"
	"github.com/noah-isme/kindy-portal/internal/models"
)

type savingBackend interface {
	SavingSummaries(ctx context.Context) ([]models.StudentSavingSummary, error)
}

// SavingService serves the admin savings overview: per-student aggregate
// balances with a nullable last-transaction timestamp.
type SavingService struct {
	backend savingBackend
	logger  *zap.Logger
}

// NewSavingService constructs the saving service.
func NewSavingService(backend savingBackend, logger *zap.Logger) *SavingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SavingService{backend: backend, logger: logger}
}

// List fetches all summaries and derives the requested view. Sorting by
// balance or last transaction narrows the list to students who actually
// hold savings; name and number sorts keep everyone.
func (s *SavingService) List(ctx context.Context, q ListQuery) (*ListView[models.StudentSavingSummary], error) {
	rows, err := s.backend.SavingSummaries(ctx)
	if err != nil {
		return nil, err
	}

	sortState := q.Sort("no")
	if sortState.Field == "totalSaving" || sortState.Field == "lastTransaction" {
		active := make([]models.StudentSavingSummary, 0, len(rows))
		for _, r := range rows {
			if r.TotalSaving > 0 {
				active = append(active, r)
			}
		}
		rows = active
	}

	filtered := listview.Filter(rows, q.Search, func(r models.StudentSavingSummary) []string {
		return []string{r.Name}
	})

	var cmp func(a, b models.StudentSavingSummary) int
	var isNull func(models.StudentSavingSummary) bool
	switch sortState.Field {
	case "name":
		cmp = func(a, b models.StudentSavingSummary) int { return listview.CompareString(a.Name, b.Name) }
	case "totalSaving":
		cmp = func(a, b models.StudentSavingSummary) int { return listview.CompareFloat(a.TotalSaving, b.TotalSaving) }
	case "lastTransaction":
		cmp = func(a, b models.StudentSavingSummary) int {
			return listview.CompareDate(*a.LastTransaction, *b.LastTransaction)
		}
		isNull = func(r models.StudentSavingSummary) bool { return r.LastTransaction == nil }
	default:
		cmp = func(a, b models.StudentSavingSummary) int { return listview.CompareInt(a.No, b.No) }
	}
	sorted := listview.Sort(filtered, sortState.Order, cmp, isNull)

	return &ListView[models.StudentSavingSummary]{Items: sorted, Sort: sortState, Total: len(sorted)}, nil
}
