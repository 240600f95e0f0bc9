// Package requestid tags every request with an id for log correlation.
package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderName is the request/response header carrying the id.
const HeaderName = "X-Request-Id"

// ContextKey is the gin context key the id is stored under.
const ContextKey = "request_id"

// Middleware honors an inbound X-Request-Id and generates one otherwise.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextKey, id)
		c.Writer.Header().Set(HeaderName, id)
		c.Next()
	}
}

// Get returns the request id from the gin context.
func Get(c *gin.Context) string {
	return c.GetString(ContextKey)
}
