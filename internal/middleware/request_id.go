package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"honorly/pkg/log"
)

const headerRequestID = "X-Request-ID"

// RequestID tags each request with an id that flows into every log line.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Header(headerRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
