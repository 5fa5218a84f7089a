package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kindy-portal/internal/formflow"
	"github.com/noah-isme/kindy-portal/internal/models"
	"github.com/noah-isme/kindy-portal/internal/service"
	appErrors "github.com/noah-isme/kindy-portal/pkg/errors"
	"github.com/noah-isme/kindy-portal/pkg/response"
)

type invoiceService interface {
	List(ctx context.Context, q service.ListQuery) (*service.ListView[models.Invoice], error)
	Students(ctx context.Context) ([]models.Student, error)
	BeginCreate(req models.CreateInvoiceRequest) (*formflow.Flow[models.CreateInvoiceRequest], error)
	ConfirmCreate(ctx context.Context, flowID string) ([]models.Invoice, error)
	BeginUpdate(req service.InvoiceUpdate) (*formflow.Flow[service.InvoiceUpdate], error)
	ConfirmUpdate(ctx context.Context, flowID string) ([]models.Invoice, error)
	CancelFlow(flowID string)
	Delete(ctx context.Context, id string) ([]models.Invoice, error)
}

// InvoiceHandler serves the admin invoice section.
type InvoiceHandler struct {
	service invoiceService
}

// NewInvoiceHandler constructs the handler.
func NewInvoiceHandler(service invoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// List returns the invoice list view.
func (h *InvoiceHandler) List(c *gin.Context) {
	view, err := h.service.List(c.Request.Context(), listQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSONWithCount(c, http.StatusOK, view, view.Total)
}

// Students returns the student picker for the add-invoice form.
func (h *InvoiceHandler) Students(c *gin.Context) {
	students, err := h.service.Students(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// BeginCreate opens an add-invoice confirmation flow.
func (h *InvoiceHandler) BeginCreate(c *gin.Context) {
	var req models.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	flow, err := h.service.BeginCreate(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, flow)
}

// BeginUpdate opens an edit-invoice confirmation flow.
func (h *InvoiceHandler) BeginUpdate(c *gin.Context) {
	var req models.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	flow, err := h.service.BeginUpdate(service.InvoiceUpdate{ID: c.Param("id"), UpdateInvoiceRequest: req})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, flow)
}

// Confirm submits a pending flow and returns the refreshed collection.
func (h *InvoiceHandler) Confirm(c *gin.Context) {
	flowID := c.Param("flowId")

	invoices, err := h.service.ConfirmCreate(c.Request.Context(), flowID)
	if err != nil && appErrors.FromError(err).Code == appErrors.ErrNotFound.Code {
		invoices, err = h.service.ConfirmUpdate(c.Request.Context(), flowID)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSONWithCount(c, http.StatusOK, invoices, len(invoices))
}

// Cancel abandons a pending flow.
func (h *InvoiceHandler) Cancel(c *gin.Context) {
	h.service.CancelFlow(c.Param("flowId"))
	response.NoContent(c)
}

// Delete removes an invoice and returns the refreshed collection.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	invoices, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSONWithCount(c, http.StatusOK, invoices, len(invoices))
}
