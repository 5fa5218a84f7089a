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

type setorService interface {
	View(ctx context.Context, groupByDay bool) (*service.SetorView, error)
	BeginCreate(req models.CreateSetorRequest) (*formflow.Flow[models.CreateSetorRequest], error)
	ConfirmCreate(ctx context.Context, flowID string) (*service.SetorView, error)
	CancelFlow(flowID string)
}

// SetorHandler serves the deposit-control section.
type SetorHandler struct {
	service setorService
}

// NewSetorHandler constructs the handler.
func NewSetorHandler(service setorService) *SetorHandler {
	return &SetorHandler{service: service}
}

// View returns the deposit list and the reconciliation delta.
func (h *SetorHandler) View(c *gin.Context) {
	view, err := h.service.View(c.Request.Context(), c.Query("group_by") == "day")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSONWithCount(c, http.StatusOK, view, view.Total)
}

// BeginCreate opens a deposit confirmation flow.
func (h *SetorHandler) BeginCreate(c *gin.Context) {
	var req models.CreateSetorRequest
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

// Confirm submits a pending deposit and returns the refreshed view.
func (h *SetorHandler) Confirm(c *gin.Context) {
	view, err := h.service.ConfirmCreate(c.Request.Context(), c.Param("flowId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSONWithCount(c, http.StatusOK, view, view.Total)
}

// Cancel abandons a pending deposit flow.
func (h *SetorHandler) Cancel(c *gin.Context) {
	h.service.CancelFlow(c.Param("flowId"))
	response.NoContent(c)
}
