package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kindy-portal/internal/upstream"
)

// Session copies the browser's Cookie header onto the request context so
// every backend call made while serving the request carries the caller's
// session. The portal never reads or stores the cookies itself; the backend
// owns authentication.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader("Cookie"); raw != "" {
			c.Request = c.Request.WithContext(upstream.WithCookies(c.Request.Context(), raw))
		}
		c.Next()
	}
}
