package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kindy-portal/internal/service"
	"github.com/noah-isme/kindy-portal/internal/upstream"
	appErrors "github.com/noah-isme/kindy-portal/pkg/errors"
	"github.com/noah-isme/kindy-portal/pkg/response"
)

type gateService interface {
	AdminGate(ctx context.Context) service.GateState
	AdminLogin(ctx context.Context, key string) (*upstream.Result, error)
	StudentGate(ctx context.Context, stampToken string) (service.GateState, *upstream.Result)
}

// GateHandler serves the entry checks and logins for both portal surfaces.
type GateHandler struct {
	service gateService
}

// NewGateHandler constructs the handler.
func NewGateHandler(service gateService) *GateHandler {
	return &GateHandler{service: service}
}

type adminLoginRequest struct {
	Key string `json:"key" binding:"required"`
}

// AdminGate reports whether the caller may enter the admin portal.
func (h *GateHandler) AdminGate(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.AdminGate(c.Request.Context()))
}

// AdminLogin forwards the admin key and relays the backend's session
// cookies to the browser.
func (h *GateHandler) AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "key is required"))
		return
	}

	res, err := h.service.AdminLogin(c.Request.Context(), req.Key)
	if err != nil {
		response.Error(c, err)
		return
	}
	relayCookies(c, res)
	response.JSON(c, http.StatusOK, service.GateState{Status: service.GateAuthenticated})
}

// StudentGate admits a student. A stamp token in the query is exchanged
// for a session and then stripped from the URL with a redirect, so the
// credential never lingers in the address bar or browser history.
func (h *GateHandler) StudentGate(c *gin.Context) {
	token := strings.TrimSpace(c.Query("stamp"))

	state, res := h.service.StudentGate(c.Request.Context(), token)
	relayCookies(c, res)

	if token != "" && state.Status == service.GateAuthenticated {
		c.Redirect(http.StatusFound, c.Request.URL.Path)
		return
	}
	response.JSON(c, http.StatusOK, state)
}

// relayCookies copies the backend's Set-Cookie headers onto the response.
func relayCookies(c *gin.Context, res *upstream.Result) {
	if res == nil {
		return
	}
	for _, cookie := range res.Cookies {
		http.SetCookie(c.Writer, cookie)
	}
}
