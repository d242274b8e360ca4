package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rental-viewer/utils"
)

const (
	requestIDKey    = "requestID"
	requestIDHeader = "X-Request-ID"
)

// requestID tags every request with an ID, reusing the client's
// X-Request-ID when it is a valid UUID.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestLogger(logger *utils.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		logf := logger.Info
		switch {
		case status >= 500:
			logf = logger.Error
		case status >= 400:
			logf = logger.Warn
		}
		logf("[http] %s %s %d %v id=%s", c.Request.Method, c.Request.URL.RequestURI(), status,
			time.Since(start).Truncate(time.Microsecond), c.GetString(requestIDKey))
	}
}
