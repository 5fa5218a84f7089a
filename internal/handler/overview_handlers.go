package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kindy-portal/internal/models"
	"github.com/noah-isme/kindy-portal/internal/service"
	"github.com/noah-isme/kindy-portal/pkg/response"
)

type outstandingService interface {
	List(ctx context.Context, q service.ListQuery, filter string) (*service.OutstandingView, error)
}

// OutstandingHandler serves the per-student balance overview.
type OutstandingHandler struct {
	service outstandingService
}

// NewOutstandingHandler constructs the handler.
func NewOutstandingHandler(service outstandingService) *OutstandingHandler {
	return &OutstandingHandler{service: service}
}

// List returns the outstanding view; the filter query parameter selects
// all, outstanding or overpaid rows.
func (h *OutstandingHandler) List(c *gin.Context) {
	view, err := h.service.List(c.Request.Context(), listQuery(c), c.DefaultQuery("filter", service.OutstandingFilterAll))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSONWithCount(c, http.StatusOK, view, view.Total)
}

type savingService interface {
	List(ctx context.Context, q service.ListQuery) (*service.ListView[models.StudentSavingSummary], error)
}

// SavingHandler serves the admin savings overview.
type SavingHandler struct {
	service savingService
}

// NewSavingHandler constructs the handler.
func NewSavingHandler(service savingService) *SavingHandler {
	return &SavingHandler{service: service}
}

// List returns the savings summary view.
func (h *SavingHandler) List(c *gin.Context) {
	view, err := h.service.List(c.Request.Context(), listQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSONWithCount(c, http.StatusOK, view, view.Total)
}

type infaqService interface {
	List(ctx context.Context, q service.ListQuery) (*service.ListView[models.StudentInfaqSummary], error)
}

// InfaqHandler serves the admin infaq overview.
type InfaqHandler struct {
	service infaqService
}

// NewInfaqHandler constructs the handler.
func NewInfaqHandler(service infaqService) *InfaqHandler {
	return &InfaqHandler{service: service}
}

// List returns the infaq summary view.
func (h *InfaqHandler) List(c *gin.Context) {
	view, err := h.service.List(c.Request.Context(), listQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSONWithCount(c, http.StatusOK, view, view.Total)
}

type openAsService interface {
	List(ctx context.Context, query string) (*service.ListView[service.OpenAsRow], error)
}

// OpenAsHandler serves the open-as roster.
type OpenAsHandler struct {
	service openAsService
}

// NewOpenAsHandler constructs the handler.
func NewOpenAsHandler(service openAsService) *OpenAsHandler {
	return &OpenAsHandler{service: service}
}

// List returns the searchable roster with portal links.
func (h *OpenAsHandler) List(c *gin.Context) {
	view, err := h.service.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSONWithCount(c, http.StatusOK, view, view.Total)
}
