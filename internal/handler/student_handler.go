package handler

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kindy-portal/internal/models"
	"github.com/noah-isme/kindy-portal/internal/service"
	appErrors "github.com/noah-isme/kindy-portal/pkg/errors"
	"github.com/noah-isme/kindy-portal/pkg/response"
)

type studentService interface {
	Overview(ctx context.Context) (*service.StudentOverview, error)
	Profile(ctx context.Context) (models.Student, error)
	UpdateFinancialInfo(ctx context.Context, req models.FinancialInfoRequest) (models.Student, error)
	ChangeLanguage(ctx context.Context, req models.LanguageRequest) (models.Student, error)
	FullDay(ctx context.Context) (*service.FullDayView, error)
	ToggleFullDay(ctx context.Context, join bool) (*service.FullDayView, error)
	Savings(ctx context.Context) (*service.SavingsView, error)
	Withdraw(ctx context.Context, req models.WithdrawRequest) (*service.SavingsView, error)
	Invoices(ctx context.Context) ([]models.Invoice, error)
	Payments(ctx context.Context) ([]models.Payment, error)
	Infaq(ctx context.Context) ([]models.Infaq, error)
	Insurance(ctx context.Context) (models.InsuranceInfo, error)
	ConfirmPayment(ctx context.Context, contentType string, body io.Reader) error
}

// StudentHandler serves the parent-facing portal surface.
type StudentHandler struct {
	service studentService
}

// NewStudentHandler constructs the handler.
func NewStudentHandler(service studentService) *StudentHandler {
	return &StudentHandler{service: service}
}

// Overview returns profile, financial summary and the school account.
func (h *StudentHandler) Overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview)
}

// Profile returns the student record.
func (h *StudentHandler) Profile(c *gin.Context) {
	profile, err := h.service.Profile(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile)
}

// UpdateFinancialInfo stores the receiving bank account.
func (h *StudentHandler) UpdateFinancialInfo(c *gin.Context) {
	var req models.FinancialInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	profile, err := h.service.UpdateFinancialInfo(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile)
}

// ChangeLanguage switches the portal language.
func (h *StudentHandler) ChangeLanguage(c *gin.Context) {
	var req models.LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	profile, err := h.service.ChangeLanguage(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile)
}

// FullDay reports enrollment and the monthly change cutoff.
func (h *StudentHandler) FullDay(c *gin.Context) {
	view, err := h.service.FullDay(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view)
}

// ToggleFullDay joins or leaves the Full Day program.
func (h *StudentHandler) ToggleFullDay(c *gin.Context) {
	var req models.FullDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	view, err := h.service.ToggleFullDay(c.Request.Context(), req.IsJoin)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view)
}

// Savings returns the ledger and balance.
func (h *StudentHandler) Savings(c *gin.Context) {
	view, err := h.service.Savings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSONWithCount(c, http.StatusOK, view, view.Total)
}

// Withdraw files a withdrawal request.
func (h *StudentHandler) Withdraw(c *gin.Context) {
	var req models.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	view, err := h.service.Withdraw(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSONWithCount(c, http.StatusOK, view, view.Total)
}

// Invoices returns the student's invoices.
func (h *StudentHandler) Invoices(c *gin.Context) {
	invoices, err := h.service.Invoices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSONWithCount(c, http.StatusOK, invoices, len(invoices))
}

// Payments returns the student's payments.
func (h *StudentHandler) Payments(c *gin.Context) {
	payments, err := h.service.Payments(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSONWithCount(c, http.StatusOK, payments, len(payments))
}

// Infaq returns the student's infaq ledger.
func (h *StudentHandler) Infaq(c *gin.Context) {
	entries, err := h.service.Infaq(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSONWithCount(c, http.StatusOK, entries, len(entries))
}

// Insurance returns the group insurance details.
func (h *StudentHandler) Insurance(c *gin.Context) {
	info, err := h.service.Insurance(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, info)
}

// ConfirmPayment streams the multipart confirmation form to the backend.
func (h *StudentHandler) ConfirmPayment(c *gin.Context) {
	contentType := c.GetHeader("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "multipart form expected"))
		return
	}
	if err := h.service.ConfirmPayment(c.Request.Context(), contentType, c.Request.Body); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"confirmed": true})
}
