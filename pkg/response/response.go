package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/kindy-portal/pkg/errors"
)

// Meta carries collection metadata.
type Meta struct {
	TotalCount *int `json:"total_count,omitempty"`
}

// Envelope is the wire contract shared with the upstream backend:
// status is "success" or "error", data holds the payload and message the
// human-readable error text.
type Envelope struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// JSON sends a success envelope.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, Envelope{Status: "success", Data: data})
}

// JSONWithCount sends a success envelope with a total_count meta field.
func JSONWithCount(c *gin.Context, status int, data interface{}, total int) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, Envelope{Status: "success", Data: data, Meta: &Meta{TotalCount: &total}})
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error sends an error envelope. Network errors from the upstream carry no
// HTTP status of their own and surface as 502.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	status := appErr.Status
	if status == 0 {
		status = http.StatusBadGateway
	}
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, Envelope{Status: "error", Message: appErr.Message})
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
