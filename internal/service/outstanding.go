package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/kindy-portal/internal/listview"
	"github.com/noah-isme/kindy-portal/internal/models"
)

// Outstanding balance filters. Outstanding means the student still owes
// money (positive balance), overpaid means payments exceed invoices.
const (
	OutstandingFilterAll         = "all"
	OutstandingFilterOutstanding = "outstanding"
	OutstandingFilterOverpaid    = "overpaid"
)

type outstandingBackend interface {
	Outstanding(ctx context.Context) ([]models.StudentOutstanding, error)
}

// OutstandingStats summarizes the whole collection, computed before the
// balance filter is applied so the headline numbers never change as the
// admin flips filters.
type OutstandingStats struct {
	TotalOutstanding float64 `json:"total_outstanding"`
	TotalOverpaid    float64 `json:"total_overpaid"`
	OutstandingCount int     `json:"outstanding_count"`
	OverpaidCount    int     `json:"overpaid_count"`
	TotalInvoice     float64 `json:"total_invoice"`
	TotalPayment     float64 `json:"total_payment"`
}

// OutstandingView is the outstanding section view model.
type OutstandingView struct {
	Items  []models.StudentOutstanding `json:"items"`
	Sort   listview.SortState          `json:"sort"`
	Filter string                      `json:"filter"`
	Stats  OutstandingStats            `json:"stats"`
	Total  int                         `json:"total"`
}

// OutstandingService serves the per-student balance overview.
type OutstandingService struct {
	backend outstandingBackend
	logger  *zap.Logger
}

// NewOutstandingService constructs the outstanding service.
func NewOutstandingService(backend outstandingBackend, logger *zap.Logger) *OutstandingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OutstandingService{backend: backend, logger: logger}
}

// List fetches all balances and derives the requested view.
func (s *OutstandingService) List(ctx context.Context, q ListQuery, filter string) (*OutstandingView, error) {
	rows, err := s.backend.Outstanding(ctx)
	if err != nil {
		return nil, err
	}

	stats := outstandingStats(rows)

	switch filter {
	case OutstandingFilterOutstanding:
		rows = keepOutstanding(rows, func(r models.StudentOutstanding) bool { return r.Outstanding > 0 })
	case OutstandingFilterOverpaid:
		rows = keepOutstanding(rows, func(r models.StudentOutstanding) bool { return r.Outstanding < 0 })
	default:
		filter = OutstandingFilterAll
	}

	filtered := listview.Filter(rows, q.Search, func(r models.StudentOutstanding) []string {
		return []string{r.Name}
	})

	sortState := q.Sort("outstanding")
	var cmp func(a, b models.StudentOutstanding) int
	switch sortState.Field {
	case "name":
		cmp = func(a, b models.StudentOutstanding) int { return listview.CompareString(a.Name, b.Name) }
	case "totalInvoice":
		cmp = func(a, b models.StudentOutstanding) int { return listview.CompareFloat(a.TotalInvoice, b.TotalInvoice) }
	case "no":
		cmp = func(a, b models.StudentOutstanding) int { return listview.CompareInt(a.No, b.No) }
	default:
		cmp = func(a, b models.StudentOutstanding) int { return listview.CompareFloat(a.Outstanding, b.Outstanding) }
	}
	sorted := listview.Sort(filtered, sortState.Order, cmp, nil)

	return &OutstandingView{
		Items:  sorted,
		Sort:   sortState,
		Filter: filter,
		Stats:  stats,
		Total:  len(sorted),
	}, nil
}

func outstandingStats(rows []models.StudentOutstanding) OutstandingStats {
	var stats OutstandingStats
	for _, r := range rows {
		stats.TotalInvoice += r.TotalInvoice
		stats.TotalPayment += r.TotalPayment
		switch {
		case r.Outstanding > 0:
			stats.TotalOutstanding += r.Outstanding
			stats.OutstandingCount++
		case r.Outstanding < 0:
			stats.TotalOverpaid += -r.Outstanding
			stats.OverpaidCount++
		}
	}
	return stats
}

func keepOutstanding(rows []models.StudentOutstanding, keep func(models.StudentOutstanding) bool) []models.StudentOutstanding {
	out := make([]models.StudentOutstanding, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
