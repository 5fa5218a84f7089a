package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kindy-portal/internal/service"
	"github.com/noah-isme/kindy-portal/pkg/response"
)

type stampService interface {
	List(ctx context.Context, query string, showSent bool) (*service.StampView, error)
	MarkSent(ctx context.Context, taskID string) (string, error)
	ClearSent(ctx context.Context) error
}

// StampHandler serves the WhatsApp credential checklist.
type StampHandler struct {
	service stampService
}

// NewStampHandler constructs the handler.
func NewStampHandler(service stampService) *StampHandler {
	return &StampHandler{service: service}
}

// List returns the task list; sent tasks are hidden unless show_sent is
// set.
func (h *StampHandler) List(c *gin.Context) {
	view, err := h.service.List(c.Request.Context(), c.Query("q"), c.Query("show_sent") == "true")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSONWithCount(c, http.StatusOK, view, view.Total)
}

// MarkSent records a task as sent and returns the WhatsApp deep link.
func (h *StampHandler) MarkSent(c *gin.Context) {
	link, err := h.service.MarkSent(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"wa_link": link})
}

// ClearSent resets the sent checklist.
func (h *StampHandler) ClearSent(c *gin.Context) {
	if err := h.service.ClearSent(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
