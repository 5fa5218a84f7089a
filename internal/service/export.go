package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/kindy-portal/internal/models"
	appErrors "github.com/noah-isme/kindy-portal/pkg/errors"
	"github.com/noah-isme/kindy-portal/pkg/export"
	"github.com/noah-isme/kindy-portal/pkg/format"
)

type exportBackend interface {
	Payments(ctx context.Context) ([]models.Payment, error)
	Outstanding(ctx context.Context) ([]models.StudentOutstanding, error)
}

// ExportService renders admin collections into downloadable documents.
type ExportService struct {
	backend exportBackend
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	enabled bool
	logger  *zap.Logger
}

// NewExportService constructs the export service.
func NewExportService(backend exportBackend, enabled bool, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		backend: backend,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		enabled: enabled,
		logger:  logger,
	}
}

// Enabled reports whether exports are switched on.
func (s *ExportService) Enabled() bool {
	return s.enabled
}

// PaymentsCSV renders the full payment history as CSV.
func (s *ExportService) PaymentsCSV(ctx context.Context) ([]byte, error) {
	if !s.enabled {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "exports are disabled")
	}
	payments, err := s.backend.Payments(ctx)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{
		Columns: []export.Column{
			{Header: "No"},
			{Header: "Student"},
			{Header: "Amount", Numeric: true},
			{Header: "Date"},
			{Header: "Reference"},
		},
		Rows: make([][]string, 0, len(payments)),
	}
	for _, p := range payments {
		date := p.Date
		if t, err := format.ParseAnyDate(p.Date); err == nil {
			date = format.Date(t)
		}
		data.Rows = append(data.Rows, []string{
			strconv.Itoa(p.No),
			p.StudentName,
			format.Currency(p.Amount),
			date,
			p.Reference,
		})
	}
	return s.csv.Render(data)
}

// OutstandingPDF renders the per-student balance overview as a PDF.
func (s *ExportService) OutstandingPDF(ctx context.Context) ([]byte, error) {
	if !s.enabled {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "exports are disabled")
	}
	rows, err := s.backend.Outstanding(ctx)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{
		Columns: []export.Column{
			{Header: "No"},
			{Header: "Student"},
			{Header: "Invoiced", Numeric: true},
			{Header: "Paid", Numeric: true},
			{Header: "Outstanding", Numeric: true},
		},
		Rows: make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		data.Rows = append(data.Rows, []string{
			strconv.Itoa(r.No),
			r.Name,
			format.Currency(r.TotalInvoice),
			format.Currency(r.TotalPayment),
			format.Currency(r.Outstanding),
		})
	}
	return s.pdf.Render(data, "Outstanding Balances")
}
