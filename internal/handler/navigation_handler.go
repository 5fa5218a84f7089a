package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kindy-portal/internal/service"
	"github.com/noah-isme/kindy-portal/pkg/response"
)

type navigationService interface {
	Sections(ctx context.Context) service.NavigationView
}

// NavigationHandler serves the admin section list.
type NavigationHandler struct {
	service navigationService
}

// NewNavigationHandler constructs the handler.
func NewNavigationHandler(service navigationService) *NavigationHandler {
	return &NavigationHandler{service: service}
}

// Sections returns the sections this admin may see, with the first
// accessible one pre-selected.
func (h *NavigationHandler) Sections(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Sections(c.Request.Context()))
}
