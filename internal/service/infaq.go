package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/kindy-portal/internal/listview"
	"github.com/noah-isme/kindy-portal/internal/models"
)

type infaqBackend interface {
	InfaqSummaries(ctx context.Context) ([]models.StudentInfaqSummary, error)
}

// InfaqService serves the admin infaq overview, the charity counterpart
// of the savings section.
type InfaqService struct {
	backend infaqBackend
	logger  *zap.Logger
}

// NewInfaqService constructs the infaq service.
func NewInfaqService(backend infaqBackend, logger *zap.Logger) *InfaqService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InfaqService{backend: backend, logger: logger}
}

// List fetches all summaries and derives the requested view. Sorting by
// total or last contribution narrows the list to students who have
// contributed.
func (s *InfaqService) List(ctx context.Context, q ListQuery) (*ListView[models.StudentInfaqSummary], error) {
	rows, err := s.backend.InfaqSummaries(ctx)
	if err != nil {
		return nil, err
	}

	sortState := q.Sort("no")
	if sortState.Field == "totalInfaq" || sortState.Field == "lastContribution" {
		active := make([]models.StudentInfaqSummary, 0, len(rows))
		for _, r := range rows {
			if r.TotalInfaq > 0 {
				active = append(active, r)
			}
		}
		rows = active
	}

	filtered := listview.Filter(rows, q.Search, func(r models.StudentInfaqSummary) []string {
		return []string{r.Name}
	})

	var cmp func(a, b models.StudentInfaqSummary) int
	var isNull func(models.StudentInfaqSummary) bool
	switch sortState.Field {
	case "name":
		cmp = func(a, b models.StudentInfaqSummary) int { return listview.CompareString(a.Name, b.Name) }
	case "totalInfaq":
		cmp = func(a, b models.StudentInfaqSummary) int { return listview.CompareFloat(a.TotalInfaq, b.TotalInfaq) }
	case "lastContribution":
		cmp = func(a, b models.StudentInfaqSummary) int {
			return listview.CompareDate(*a.LastContribution, *b.LastContribution)
		}
		isNull = func(r models.StudentInfaqSummary) bool { return r.LastContribution == nil }
	default:
		cmp = func(a, b models.StudentInfaqSummary) int { return listview.CompareInt(a.No, b.No) }
	}
	sorted := listview.Sort(filtered, sortState.Order, cmp, isNull)

	return &ListView[models.StudentInfaqSummary]{Items: sorted, Sort: sortState, Total: len(sorted)}, nil
}
