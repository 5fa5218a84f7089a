package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kindy-portal/pkg/response"
)

type exportService interface {
	PaymentsCSV(ctx context.Context) ([]byte, error)
	OutstandingPDF(ctx context.Context) ([]byte, error)
}

// ExportHandler serves document downloads.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// PaymentsCSV downloads the payment history as CSV.
func (h *ExportHandler) PaymentsCSV(c *gin.Context) {
	data, err := h.service.PaymentsCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="payments.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// OutstandingPDF downloads the balance overview as PDF.
func (h *ExportHandler) OutstandingPDF(c *gin.Context) {
	data, err := h.service.OutstandingPDF(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="outstanding.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
