package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sjperalta/statutory-api/pkg/logger"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestID assigns every request an id, echoes it in the response and
// attaches a logger carrying it to the request context
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set("requestID", id)
		c.Header(RequestIDHeader, id)

		ctx := logger.WithContext(c.Request.Context(), logger.Log.With("request_id", id))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetRequestID extracts the request id from the Gin context
func GetRequestID(c *gin.Context) string {
	id, exists := c.Get("requestID")
	if !exists {
		return ""
	}
	return id.(string)
}
