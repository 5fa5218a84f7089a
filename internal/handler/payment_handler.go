package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kindy-portal/internal/formflow"
	"github.com/noah-isme/kindy-portal/internal/models"
	"github.com/noah-isme/kindy-portal/internal/service"
	appErrors "github.com/noah-isme/kindy-portal/pkg/errors"
	"github.com/noah-isme/kindy-portal/pkg/response"
)

type paymentService interface {
	List(ctx context.Context, q service.ListQuery) (*service.ListView[models.Payment], error)
	Students(ctx context.Context) ([]models.Student, error)
	UnpaidInvoices(ctx context.Context, studentID string) ([]models.Invoice, error)
	BeginCreate(req models.CreatePaymentRequest) (*formflow.Flow[models.CreatePaymentRequest], error)
	ConfirmCreate(ctx context.Context, flowID string) ([]models.Payment, error)
	BeginUpdate(req service.PaymentUpdate) (*formflow.Flow[service.PaymentUpdate], error)
	ConfirmUpdate(ctx context.Context, flowID string) ([]models.Payment, error)
	CancelFlow(flowID string)
	Delete(ctx context.Context, id string) ([]models.Payment, error)
}

// PaymentHandler serves the admin payment section.
type PaymentHandler struct {
	service paymentService
}

// NewPaymentHandler constructs the handler.
func NewPaymentHandler(service paymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// List returns the payment list view.
func (h *PaymentHandler) List(c *gin.Context) {
	view, err := h.service.List(c.Request.Context(), listQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSONWithCount(c, http.StatusOK, view, view.Total)
}

// Students returns the student picker for the add-payment form.
func (h *PaymentHandler) Students(c *gin.Context) {
	students, err := h.service.Students(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// UnpaidInvoices returns a student's unpaid invoices for attachment.
func (h *PaymentHandler) UnpaidInvoices(c *gin.Context) {
	studentID := strings.TrimSpace(c.Param("studentId"))
	if studentID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "student id is required"))
		return
	}
	invoices, err := h.service.UnpaidInvoices(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, invoices)
}

// BeginCreate opens an add-payment confirmation flow.
func (h *PaymentHandler) BeginCreate(c *gin.Context) {
	var req models.CreatePaymentRequest
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

// BeginUpdate opens an edit-payment confirmation flow.
func (h *PaymentHandler) BeginUpdate(c *gin.Context) {
	var req models.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	flow, err := h.service.BeginUpdate(service.PaymentUpdate{ID: c.Param("id"), UpdatePaymentRequest: req})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, flow)
}

// Confirm submits a pending flow and returns the refreshed collection.
// The same endpoint serves add and edit flows; flow IDs are unique across
// both.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	flowID := c.Param("flowId")

	payments, err := h.service.ConfirmCreate(c.Request.Context(), flowID)
	if err != nil && appErrors.FromError(err).Code == appErrors.ErrNotFound.Code {
		payments, err = h.service.ConfirmUpdate(c.Request.Context(), flowID)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSONWithCount(c, http.StatusOK, payments, len(payments))
}

// Cancel abandons a pending flow.
func (h *PaymentHandler) Cancel(c *gin.Context) {
	h.service.CancelFlow(c.Param("flowId"))
	response.NoContent(c)
}

// Delete removes a payment and returns the refreshed collection.
func (h *PaymentHandler) Delete(c *gin.Context) {
	payments, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSONWithCount(c, http.StatusOK, payments, len(payments))
}
